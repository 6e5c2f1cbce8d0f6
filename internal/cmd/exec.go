package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"github.com/stefreak/nut/internal/log"
)

// Run executes a command and returns stderr in the error message if it fails
func Run(cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// Output executes a command and returns stdout, with stderr in error if it fails
func Output(cmd *exec.Cmd) ([]byte, error) {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, err
	}
	return output, nil
}

// RunContext executes a command with context support and verbose logging.
// dir may be empty to run in the current working directory.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return Run(cmd)
}

// OutputContext executes a command with context support and verbose logging,
// returning stdout.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return Output(cmd)
}

// StreamContext executes a command with stdout and stderr connected to the
// given writers. Used where command output must reach the terminal
// unfiltered, e.g. per-repository apply runs.
func StreamContext(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// IsSpawnError reports whether err means the command could not be started
// at all (missing or unusable executable), as opposed to the command
// running and failing.
func IsSpawnError(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr)
}

// ExitReason describes how a finished command failed: a non-zero exit code
// or the terminating signal number.
func ExitReason(err error) string {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return err.Error()
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return fmt.Sprintf("command terminated by signal %d", int(ws.Signal()))
	}
	return fmt.Sprintf("command exited with status code %d", exitErr.ExitCode())
}
