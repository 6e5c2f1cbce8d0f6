package workspace

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Enter spawns the user's shell inside the workspace directory with
// EnvWorkspaceID set and nut's own directory prepended to PATH, so the
// shell and everything started from it can resolve the workspace without
// extra flags. Returns when the shell exits.
func Enter(w Workspace) error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	env := append(os.Environ(), EnvWorkspaceID+"="+w.ID.String())
	if exe, err := os.Executable(); err == nil {
		env = append(env, "PATH="+filepath.Dir(exe)+string(os.PathListSeparator)+os.Getenv("PATH"))
	}

	cmd := exec.Command(shell)
	cmd.Dir = w.Path
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		// A non-zero shell exit mirrors the user's last command; only a
		// shell that could not start is an error here.
		if _, ok := err.(*exec.ExitError); ok {
			return nil
		}
		return fmt.Errorf("failed to spawn shell %s: %w", shell, err)
	}
	return nil
}
