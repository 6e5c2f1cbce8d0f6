//go:build integration

package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// TestStatus_CleanAndDirty tests branch and counter reporting against real
// repositories in one workspace.
func TestStatus_CleanAndDirty(t *testing.T) {
	t.Parallel()

	workspaceDir := resolvePath(t, t.TempDir())

	setupUpstreamRepo(t, workspaceDir, "owner/clean")
	dirtyRepo, _ := setupUpstreamRepo(t, workspaceDir, "owner/dirty")

	// One staged, one modified, one untracked file
	if err := os.WriteFile(filepath.Join(dirtyRepo, "staged.txt"), []byte("s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	runGitCmd(t, dirtyRepo, "add", "staged.txt")
	if err := os.WriteFile(filepath.Join(dirtyRepo, "README.md"), []byte("changed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dirtyRepo, "untracked.txt"), []byte("u\n"), 0644); err != nil {
		t.Fatal(err)
	}

	statuses, err := StatusAll(context.Background(), workspaceDir)
	if err != nil {
		t.Fatalf("StatusAll failed: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("StatusAll returned %d repos, want 2", len(statuses))
	}

	// Sorted by path: owner/clean before owner/dirty
	clean, dirty := statuses[0], statuses[1]

	if clean.PathRelative != "owner/clean" {
		t.Errorf("statuses[0].PathRelative = %q, want owner/clean", clean.PathRelative)
	}
	if clean.HasChanges {
		t.Errorf("clean repo reported changes: %+v", clean)
	}
	if clean.CurrentBranch != "main" {
		t.Errorf("clean branch = %q, want main", clean.CurrentBranch)
	}

	if dirty.PathRelative != "owner/dirty" {
		t.Errorf("statuses[1].PathRelative = %q, want owner/dirty", dirty.PathRelative)
	}
	if !dirty.HasChanges {
		t.Error("dirty repo reported no changes")
	}
	if dirty.StagedCount != 1 || dirty.ModifiedCount != 1 || dirty.UntrackedCount != 1 {
		t.Errorf("dirty counters = %d/%d/%d, want 1/1/1",
			dirty.StagedCount, dirty.ModifiedCount, dirty.UntrackedCount)
	}
}

// TestStatus_DetachedHead tests the detached HEAD rendering.
func TestStatus_DetachedHead(t *testing.T) {
	t.Parallel()

	workspaceDir := resolvePath(t, t.TempDir())
	repoPath, tip := setupUpstreamRepo(t, workspaceDir, "repo")

	runGitCmd(t, repoPath, "checkout", "--detach", tip)

	status, ok := Status(context.Background(), workspaceDir, "repo")
	if !ok {
		t.Fatal("Status ok = false for a valid repository")
	}
	want := "(detached at " + tip[:7] + ")"
	if status.CurrentBranch != want {
		t.Errorf("CurrentBranch = %q, want %q", status.CurrentBranch, want)
	}
}

// TestStatusAll_SkipsBrokenRepo tests that a directory with a corrupt
// .git is silently excluded instead of failing the aggregation.
func TestStatusAll_SkipsBrokenRepo(t *testing.T) {
	t.Parallel()

	workspaceDir := resolvePath(t, t.TempDir())
	setupUpstreamRepo(t, workspaceDir, "good")

	// A .git directory that is not a repository
	if err := os.MkdirAll(filepath.Join(workspaceDir, "broken", ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	statuses, err := StatusAll(context.Background(), workspaceDir)
	if err != nil {
		t.Fatalf("StatusAll failed: %v", err)
	}
	if len(statuses) != 1 {
		t.Fatalf("StatusAll returned %d repos, want 1", len(statuses))
	}
	if statuses[0].PathRelative != "good" {
		t.Errorf("PathRelative = %q, want good", statuses[0].PathRelative)
	}
}
