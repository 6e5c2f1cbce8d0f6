package github

import (
	"strings"
	"testing"
)

func TestProtocolCloneURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		protocol Protocol
		host     string
		fullName string
		want     string
	}{
		{"https", ProtocolHTTPS, "github.com", "golang/go", "https://github.com/golang/go.git"},
		{"ssh", ProtocolSSH, "github.com", "golang/go", "git@github.com:golang/go.git"},
		{"enterprise host", ProtocolSSH, "github.example.com", "team/tool", "git@github.example.com:team/tool.git"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.protocol.CloneURL(tt.host, tt.fullName); got != tt.want {
				t.Errorf("CloneURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFullName(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		owner, repo, err := ParseFullName("golang/go")
		if err != nil {
			t.Fatalf("ParseFullName failed: %v", err)
		}
		if owner != "golang" || repo != "go" {
			t.Errorf("ParseFullName = (%q, %q), want (golang, go)", owner, repo)
		}
	})

	invalid := []string{"", "golang", "golang/", "/go", "a/b/c"}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := ParseFullName(name); err == nil {
				t.Errorf("ParseFullName(%q) = nil error, want error", name)
			}
		})
	}
}

func TestParseRepo(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		repo, err := parseRepo([]byte(`{"full_name":"golang/go","default_branch":"master","stars":1}`))
		if err != nil {
			t.Fatalf("parseRepo failed: %v", err)
		}
		if repo.FullName != "golang/go" {
			t.Errorf("FullName = %q, want golang/go", repo.FullName)
		}
		if repo.DefaultBranch != "master" {
			t.Errorf("DefaultBranch = %q, want master", repo.DefaultBranch)
		}
	})

	t.Run("missing full name", func(t *testing.T) {
		t.Parallel()
		if _, err := parseRepo([]byte(`{"default_branch":"main"}`)); err == nil {
			t.Error("expected error for missing full name, got nil")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := parseRepo([]byte(`not json`))
		if err == nil {
			t.Fatal("expected error for invalid json, got nil")
		}
		if !strings.Contains(err.Error(), "decode") {
			t.Errorf("error = %q, want decode message", err)
		}
	})
}
