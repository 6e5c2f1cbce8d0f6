package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	t.Run("Print", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf).Print("a", "b")
		if got := buf.String(); got != "ab" {
			t.Errorf("Print output = %q, want %q", got, "ab")
		}
	})

	t.Run("Printf", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf).Printf("%d repos", 3)
		if got := buf.String(); got != "3 repos" {
			t.Errorf("Printf output = %q, want %q", got, "3 repos")
		}
	})

	t.Run("Println", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		New(&buf).Println("done")
		if got := buf.String(); got != "done\n" {
			t.Errorf("Println output = %q, want %q", got, "done\n")
		}
	})
}

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		p := FromContext(ctx)
		p.Print("x")
		if got := buf.String(); got != "x" {
			t.Errorf("printer from context wrote %q, want %q", got, "x")
		}
	})

	t.Run("fallback writes to stdout", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil for empty context")
		}
		if p.Writer() != os.Stdout {
			t.Error("fallback printer should write to os.Stdout")
		}
	})
}
