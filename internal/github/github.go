package github

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/stefreak/nut/internal/cmd"
	"github.com/stefreak/nut/internal/log"
)

// ErrGHNotFound indicates gh CLI is not installed or not in PATH
var ErrGHNotFound = fmt.Errorf("gh not found: please install GitHub CLI (https://cli.github.com)")

// ErrGHNotAuthenticated indicates gh CLI is installed but not authenticated
var ErrGHNotAuthenticated = fmt.Errorf("gh not authenticated: please run 'gh auth login' or pass --github-token")

// CheckGH verifies that gh CLI is available and authenticated
func CheckGH() error {
	_, err := exec.LookPath("gh")
	if err != nil {
		return ErrGHNotFound
	}

	ghCmd := exec.Command("gh", "auth", "status")
	var stderr bytes.Buffer
	ghCmd.Stderr = &stderr

	if err := ghCmd.Run(); err != nil {
		// gh auth status exits non-zero when not authenticated
		errMsg := strings.TrimSpace(stderr.String())
		if strings.Contains(errMsg, "not logged") || strings.Contains(errMsg, "no accounts") {
			return ErrGHNotAuthenticated
		}
		if errMsg != "" {
			return fmt.Errorf("gh auth check failed: %s", errMsg)
		}
		return ErrGHNotAuthenticated
	}

	return nil
}

// Protocol is the URL scheme used for cloning.
type Protocol string

const (
	ProtocolHTTPS Protocol = "https"
	ProtocolSSH   Protocol = "ssh"
)

// CloneURL renders the clone URL for a repository on the given host.
func (p Protocol) CloneURL(host, fullName string) string {
	if p == ProtocolSSH {
		return fmt.Sprintf("git@%s:%s.git", host, fullName)
	}
	return fmt.Sprintf("https://%s/%s.git", host, fullName)
}

// PreferredProtocol returns the user's git protocol preference from gh
// config, falling back to HTTPS (the gh default) when gh is unavailable
// or the preference is unset.
func PreferredProtocol(ctx context.Context, host string) Protocol {
	out, err := cmd.OutputContext(ctx, "", "gh", "config", "get", "git_protocol", "-h", host)
	if err != nil {
		return ProtocolHTTPS
	}
	switch strings.TrimSpace(string(out)) {
	case "ssh":
		return ProtocolSSH
	case "https":
		return ProtocolHTTPS
	default:
		return ProtocolHTTPS
	}
}

// ParseFullName splits and validates an "<owner>/<repo>" repository name.
func ParseFullName(fullName string) (owner, repo string, err error) {
	parts := strings.Split(fullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository name %q: must look like 'owner/repo'", fullName)
	}
	return parts[0], parts[1], nil
}

// Client queries repository metadata through the gh CLI. Token is
// optional; when set it is passed to gh via GH_TOKEN, otherwise gh's own
// stored credentials apply.
type Client struct {
	Token string
}

// output runs gh with the client's token in the environment.
func (c Client) output(ctx context.Context, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command("gh", args...)
	ghCmd := exec.CommandContext(ctx, "gh", args...)
	if c.Token != "" {
		ghCmd.Env = append(os.Environ(), "GH_TOKEN="+c.Token)
	}
	return cmd.Output(ghCmd)
}
