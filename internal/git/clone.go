package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stefreak/nut/internal/lockfile"
)

// CloneInfo describes one repository to clone. LatestCommit and
// DefaultBranch come from the repository listing collaborator and are
// empty only for empty upstream repositories.
type CloneInfo struct {
	FullName      string // "<owner>/<repo>"
	CloneURL      string // real remote URL (https or ssh form)
	LatestCommit  string // tip of the default branch, if known
	DefaultBranch string
}

// CloneOptions are shared across all clones of one scheduler run.
type CloneOptions struct {
	WorkspaceDir string
	CacheDir     string // host-level mirror cache dir, e.g. <cache_root>/github.com
}

// Clone materializes one repository in the workspace through the tiered
// cache:
//
//  1. An existing workspace checkout is fast-forwarded (or fetch-only when
//     a non-default branch is checked out) when its origin ref is behind
//     the known upstream commit; nothing happens when it is current.
//  2. Otherwise the shared mirror cache is created or refreshed, so N
//     workspaces cloning the same repository pay the network cost once.
//  3. The workspace checkout is then cloned locally from the mirror and
//     its origin remote repointed at the real URL; the mirror path is a
//     transport optimization and never surfaces to the user.
//
// Without commit metadata (empty upstream repository) cache handling is
// skipped entirely.
func Clone(ctx context.Context, opts CloneOptions, info CloneInfo) error {
	workspaceRepoDir := filepath.Join(opts.WorkspaceDir, info.FullName)

	if info.DefaultBranch != "" && info.LatestCommit != "" {
		if exists(workspaceRepoDir) {
			return updateWorkspaceRepo(ctx, workspaceRepoDir, info.DefaultBranch, info.LatestCommit)
		}
		if err := ensureCacheRepo(ctx, opts.CacheDir, info); err != nil {
			return err
		}
	}

	// The checkout may exist even without metadata (e.g. an empty upstream
	// cloned earlier, or an external process raced us).
	if exists(workspaceRepoDir) {
		return nil
	}

	return cloneFromCache(ctx, opts, info)
}

// updateWorkspaceRepo brings an existing checkout up to date with the
// known upstream commit. When the user is on a branch other than the
// default, only remote refs are fetched and the working tree is left
// alone.
func updateWorkspaceRepo(ctx context.Context, workspaceRepoDir, defaultBranch, latestCommit string) error {
	originBranch := "origin/" + defaultBranch
	out, err := outputGit(ctx, workspaceRepoDir, "rev-parse", originBranch)
	if err != nil {
		return &OpError{Op: "rev-parse " + originBranch + " in workspace repository", Err: err}
	}
	if strings.TrimSpace(string(out)) == latestCommit {
		return nil
	}

	out, err = outputGit(ctx, workspaceRepoDir, "branch", "--show-current")
	if err != nil {
		return &OpError{Op: "read current branch in workspace repository", Err: err}
	}

	if strings.TrimSpace(string(out)) != defaultBranch {
		if err := runGit(ctx, workspaceRepoDir, "fetch", "origin"); err != nil {
			return &OpError{Op: "fetch origin in workspace repository", Err: err}
		}
		return nil
	}
	if err := runGit(ctx, workspaceRepoDir, "pull"); err != nil {
		return &OpError{Op: "pull in workspace repository", Err: err}
	}
	return nil
}

// ensureCacheRepo creates or refreshes the bare mirror for info. The
// mirror is guarded by an advisory lock so concurrent schedulers working
// on the same repository serialize instead of corrupting the cache.
func ensureCacheRepo(ctx context.Context, cacheDir string, info CloneInfo) error {
	cacheRepoDir := filepath.Join(cacheDir, info.FullName)

	if err := os.MkdirAll(filepath.Dir(cacheRepoDir), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(cacheRepoDir), err)
	}

	lock := lockfile.New(cacheRepoDir + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock cache repository %s: %w", cacheRepoDir, err)
	}
	defer lock.Unlock()

	if exists(cacheRepoDir) {
		originBranch := "origin/" + info.DefaultBranch
		out, err := outputGit(ctx, cacheRepoDir, "rev-parse", originBranch)
		if err != nil {
			return &OpError{Op: "rev-parse " + originBranch + " in cache repository", Err: err}
		}
		if strings.TrimSpace(string(out)) == info.LatestCommit {
			return nil
		}
		if err := runGit(ctx, cacheRepoDir, "remote", "update", "--prune"); err != nil {
			return &OpError{Op: "update cache repository", Err: err}
		}
		return nil
	}

	if err := runGit(ctx, cacheDir, "clone", info.CloneURL, info.FullName, "--mirror", "--bare"); err != nil {
		return &OpError{Op: "clone cache repository", Err: err}
	}
	return nil
}

// cloneFromCache clones locally (hard-linked, no network) from the mirror
// into the workspace and repoints origin at the real remote URL.
func cloneFromCache(ctx context.Context, opts CloneOptions, info CloneInfo) error {
	cacheRepoDir := filepath.Join(opts.CacheDir, info.FullName)

	if err := runGit(ctx, opts.WorkspaceDir, "clone", "--local", cacheRepoDir, info.FullName); err != nil {
		return &OpError{Op: "clone workspace repository", Err: err}
	}

	workspaceRepoDir := filepath.Join(opts.WorkspaceDir, info.FullName)
	if err := runGit(ctx, workspaceRepoDir, "remote", "set-url", "origin", info.CloneURL); err != nil {
		return &OpError{Op: "set remote url in workspace repository", Err: err}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
