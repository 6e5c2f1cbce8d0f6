//go:build integration

package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCmd runs git with args in dir and fails the test on error.
func runGitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// setupUpstreamRepo creates a repo with an initial commit that acts as the
// remote to clone from. Returns its path and the tip commit of the default
// branch.
func setupUpstreamRepo(t *testing.T, dir, name string) (path, tip string) {
	t.Helper()

	dir = resolvePath(t, dir)
	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCmd(t, repoPath, "init", "-b", "main")
	runGitCmd(t, repoPath, "config", "user.email", "test@test.com")
	runGitCmd(t, repoPath, "config", "user.name", "Test User")
	runGitCmd(t, repoPath, "config", "commit.gpgsign", "false")

	readme := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readme, []byte("# "+name+"\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCmd(t, repoPath, "add", "README.md")
	runGitCmd(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath, runGitCmd(t, repoPath, "rev-parse", "HEAD")
}

// commitFile adds a commit to the repo and returns the new tip.
func commitFile(t *testing.T, repoPath, name, content string) string {
	t.Helper()

	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	runGitCmd(t, repoPath, "add", name)
	runGitCmd(t, repoPath, "commit", "-m", "Add "+name)
	return runGitCmd(t, repoPath, "rev-parse", "HEAD")
}
