package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// RepoStatus is the working state of one repository, relative to its
// workspace root. The three counters are independent: a renamed index
// entry with further local edits counts as both staged and modified.
type RepoStatus struct {
	PathRelative   string
	CurrentBranch  string
	StagedCount    int
	ModifiedCount  int
	UntrackedCount int
	HasChanges     bool
}

// Status queries branch and working-tree state for a single repository.
// Returns ok=false when the path is not a repository or any query fails;
// such repositories are silently excluded from aggregation.
func Status(ctx context.Context, workspaceDir, repoPathRelative string) (RepoStatus, bool) {
	absPath := filepath.Join(workspaceDir, repoPathRelative)

	if _, err := os.Stat(filepath.Join(absPath, ".git")); err != nil {
		return RepoStatus{}, false
	}

	branch, ok := currentBranch(ctx, absPath)
	if !ok {
		return RepoStatus{}, false
	}

	out, err := outputGit(ctx, absPath, "status", "--porcelain")
	if err != nil {
		return RepoStatus{}, false
	}
	staged, modified, untracked := parsePorcelain(string(out))

	return RepoStatus{
		PathRelative:   repoPathRelative,
		CurrentBranch:  branch,
		StagedCount:    staged,
		ModifiedCount:  modified,
		UntrackedCount: untracked,
		HasChanges:     staged > 0 || modified > 0 || untracked > 0,
	}, true
}

// currentBranch returns the checked-out branch name, or a detached-HEAD
// rendering when no branch is checked out.
func currentBranch(ctx context.Context, absPath string) (string, bool) {
	out, err := outputGit(ctx, absPath, "branch", "--show-current")
	if err != nil {
		return "", false
	}
	branch := strings.TrimSpace(string(out))
	if branch != "" {
		return branch, true
	}

	rev, err := outputGit(ctx, absPath, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "(detached)", true
	}
	return fmt.Sprintf("(detached at %s)", strings.TrimSpace(string(rev))), true
}

// parsePorcelain classifies `git status --porcelain` lines by their
// two-character status code.
func parsePorcelain(text string) (staged, modified, untracked int) {
	for _, line := range strings.Split(text, "\n") {
		if len(line) < 2 {
			continue
		}
		index, worktree := line[0], line[1]

		// Untracked files are special-cased: both columns are '?'.
		if index == '?' && worktree == '?' {
			untracked++
			continue
		}
		if index != ' ' && index != '?' {
			staged++
		}
		if worktree != ' ' && worktree != '?' {
			modified++
		}
	}
	return staged, modified, untracked
}

// StatusAll aggregates the status of every repository in the workspace.
// Per-repository queries run concurrently; they are cheap and local, so
// the fan-out is bounded only by the repository count. Results are sorted
// by path for stable output.
func StatusAll(ctx context.Context, workspaceDir string) ([]RepoStatus, error) {
	repos, err := FindRepositories(workspaceDir)
	if err != nil {
		return nil, err
	}

	type result struct {
		status RepoStatus
		ok     bool
	}
	results := make([]result, len(repos))

	g := new(errgroup.Group)
	for i, rel := range repos {
		g.Go(func() error {
			status, ok := Status(ctx, workspaceDir, rel)
			results[i] = result{status: status, ok: ok}
			return nil // failed queries are excluded, never fatal
		})
	}
	_ = g.Wait()

	statuses := make([]RepoStatus, 0, len(repos))
	for _, r := range results {
		if r.ok {
			statuses = append(statuses, r.status)
		}
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].PathRelative < statuses[j].PathRelative
	})

	return statuses, nil
}
