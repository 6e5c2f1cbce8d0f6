package git

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// maxRepositorySearchDepth bounds the workspace walk. Three levels supports
// both flat (owner/repo) and nested layouts without descending into large
// checked-out trees.
const maxRepositorySearchDepth = 3

// FindRepositories finds all git repositories in a workspace.
//
// Searches for directories named exactly ".git" up to
// maxRepositorySearchDepth levels below the workspace root and records
// their parent directories. The repository list is recomputed on every
// call so it always reflects the live filesystem. Unreadable directories
// are skipped; partial results are acceptable, not an error.
//
// Returns relative paths, sorted lexicographically for reproducible
// ordering across runs.
func FindRepositories(workspaceDir string) ([]string, error) {
	var repos []string

	err := filepath.WalkDir(workspaceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(workspaceDir, path)
		if relErr != nil || rel == "." {
			return nil
		}
		if d.Name() == ".git" {
			repos = append(repos, filepath.Dir(rel))
			return fs.SkipDir
		}
		if depth := strings.Count(rel, string(filepath.Separator)) + 1; depth >= maxRepositorySearchDepth {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", workspaceDir, err)
	}

	sort.Strings(repos)
	return repos, nil
}
