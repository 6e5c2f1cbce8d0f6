package git

import (
	"context"
	"strings"
	"testing"
)

func TestCloneAll_InvalidParallel(t *testing.T) {
	t.Parallel()

	opts := CloneOptions{WorkspaceDir: t.TempDir(), CacheDir: t.TempDir()}
	repos := []CloneInfo{{FullName: "owner/repo", CloneURL: "https://example.com/owner/repo.git"}}

	for _, parallel := range []int{0, -1} {
		err := CloneAll(context.Background(), opts, repos, parallel)
		if err == nil {
			t.Fatalf("CloneAll(parallel=%d) returned nil, want error", parallel)
		}
		if !strings.Contains(err.Error(), "parallel count") {
			t.Errorf("CloneAll(parallel=%d) error = %q, want parallel count message", parallel, err)
		}
	}
}

func TestCloneAll_Empty(t *testing.T) {
	t.Parallel()

	opts := CloneOptions{WorkspaceDir: t.TempDir(), CacheDir: t.TempDir()}
	if err := CloneAll(context.Background(), opts, nil, 4); err != nil {
		t.Fatalf("CloneAll with no repos failed: %v", err)
	}
}
