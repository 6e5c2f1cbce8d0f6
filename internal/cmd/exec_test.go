package cmd

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		if err := Run(exec.Command("true")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure includes stderr", func(t *testing.T) {
		t.Parallel()
		err := Run(exec.Command("sh", "-c", "echo boom >&2; exit 1"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "boom" {
			t.Errorf("error = %q, want %q", err.Error(), "boom")
		}
	})

	t.Run("failure without stderr keeps exit error", func(t *testing.T) {
		t.Parallel()
		err := Run(exec.Command("false"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Errorf("error = %v, want *exec.ExitError", err)
		}
	})
}

func TestOutput(t *testing.T) {
	t.Parallel()

	t.Run("returns stdout", func(t *testing.T) {
		t.Parallel()
		out, err := Output(exec.Command("sh", "-c", "echo hello"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.TrimSpace(string(out)); got != "hello" {
			t.Errorf("output = %q, want %q", got, "hello")
		}
	})

	t.Run("failure includes stderr", func(t *testing.T) {
		t.Parallel()
		_, err := Output(exec.Command("sh", "-c", "echo nope >&2; exit 2"))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "nope" {
			t.Errorf("error = %q, want %q", err.Error(), "nope")
		}
	})
}

func TestRunContext(t *testing.T) {
	t.Parallel()

	t.Run("runs in dir", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := RunContext(context.Background(), dir, "sh", "-c", "touch marker"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := OutputContext(context.Background(), dir, "sh", "-c", "ls")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := strings.TrimSpace(string(out)); got != "marker" {
			t.Errorf("ls output = %q, want %q", got, "marker")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := RunContext(ctx, "", "sleep", "10"); err == nil {
			t.Fatal("expected error for cancelled context, got nil")
		}
	})
}

func TestIsSpawnError(t *testing.T) {
	t.Parallel()

	t.Run("missing executable", func(t *testing.T) {
		t.Parallel()
		err := Run(exec.Command("definitely-not-a-real-command-12345"))
		if !IsSpawnError(err) {
			t.Errorf("IsSpawnError(%v) = false, want true", err)
		}
	})

	t.Run("exit failure is not a spawn error", func(t *testing.T) {
		t.Parallel()
		err := Run(exec.Command("false"))
		if IsSpawnError(err) {
			t.Errorf("IsSpawnError(%v) = true, want false", err)
		}
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		if IsSpawnError(nil) {
			t.Error("IsSpawnError(nil) = true, want false")
		}
	})
}

func TestExitReason(t *testing.T) {
	t.Parallel()

	t.Run("exit code", func(t *testing.T) {
		t.Parallel()
		cmd := exec.Command("sh", "-c", "exit 3")
		err := cmd.Run()
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if got := ExitReason(err); got != "command exited with status code 3" {
			t.Errorf("ExitReason = %q, want %q", got, "command exited with status code 3")
		}
	})

	t.Run("signal", func(t *testing.T) {
		t.Parallel()
		cmd := exec.Command("sh", "-c", "kill -TERM $$")
		err := cmd.Run()
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if got := ExitReason(err); got != "command terminated by signal 15" {
			t.Errorf("ExitReason = %q, want %q", got, "command terminated by signal 15")
		}
	})

	t.Run("non-exit error passes through", func(t *testing.T) {
		t.Parallel()
		err := errors.New("some other failure")
		if got := ExitReason(err); got != "some other failure" {
			t.Errorf("ExitReason = %q, want %q", got, "some other failure")
		}
	})
}
