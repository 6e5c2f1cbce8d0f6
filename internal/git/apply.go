package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/stefreak/nut/internal/cmd"
)

// ErrApplyMissingCommand is returned when apply is invoked without a
// command: use 'nut apply -- <command>' or 'nut apply --script <path>'.
var ErrApplyMissingCommand = errors.New("no command provided for apply")

// Apply executes argv in every repository of the workspace, sequentially,
// with the repository as working directory. Each run is framed by a
// `==> <repo-path> <==` header and a trailing blank line so the combined
// output stays readable in a terminal.
//
// A command that exits non-zero or dies on a signal is reported for that
// repository and the loop continues; only a command that cannot be
// spawned at all aborts the run.
func Apply(ctx context.Context, workspaceDir string, argv []string, stdout, stderr io.Writer) error {
	if len(argv) == 0 {
		return ErrApplyMissingCommand
	}

	repos, err := FindRepositories(workspaceDir)
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		fmt.Fprintln(stdout, "No repositories found in workspace")
		return nil
	}

	for _, rel := range repos {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprintf(stdout, "==> %s <==\n", rel)

		dir := filepath.Join(workspaceDir, rel)
		err := cmd.StreamContext(ctx, dir, stdout, stderr, argv[0], argv[1:]...)
		switch {
		case err == nil:
		case cmd.IsSpawnError(err):
			return fmt.Errorf("command execution failed in repository %s: %w", rel, err)
		default:
			fmt.Fprintf(stderr, "\ncommand execution failed in repository %s: %s\n", rel, cmd.ExitReason(err))
		}

		fmt.Fprintln(stdout)
	}

	return nil
}

// ValidateScript resolves a script path and verifies it can be executed.
// Called once before the apply loop; a script that fails the check is
// fatal before any repository is touched.
func ValidateScript(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid script path %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("invalid script path %s: %w", path, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("invalid script path %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("invalid script path %s: is a directory", path)
	}

	// Executable-bit check only makes sense where the filesystem has one.
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		return "", fmt.Errorf("script is not executable: %s (try chmod +x)", path)
	}

	return resolved, nil
}
