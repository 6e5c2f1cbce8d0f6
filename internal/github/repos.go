package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Repo is the repository metadata the clone pipeline needs.
type Repo struct {
	FullName      string `json:"fullName"`
	DefaultBranch string `json:"defaultBranch"`
}

// Search finds repositories matching a GitHub search query
// (https://github.com/search syntax, e.g. "owner:foo language:go -fork:true").
func (c Client) Search(ctx context.Context, query string) ([]Repo, error) {
	out, err := c.output(ctx, "search", "repos",
		"--json", "fullName,defaultBranch",
		"--limit", "1000",
		query)
	if err != nil {
		return nil, fmt.Errorf("repository search failed: %w", err)
	}

	var repos []Repo
	if err := json.Unmarshal(out, &repos); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return repos, nil
}

// Lookup fetches metadata for a single repository by full name.
func (c Client) Lookup(ctx context.Context, fullName string) (Repo, error) {
	if _, _, err := ParseFullName(fullName); err != nil {
		return Repo{}, err
	}

	out, err := c.output(ctx, "api", "repos/"+fullName)
	if err != nil {
		return Repo{}, fmt.Errorf("failed to look up repository %s: %w", fullName, err)
	}
	return parseRepo(out)
}

// parseRepo decodes the REST representation of a repository.
func parseRepo(data []byte) (Repo, error) {
	var resp struct {
		FullName      string `json:"full_name"`
		DefaultBranch string `json:"default_branch"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return Repo{}, fmt.Errorf("failed to decode repository metadata: %w", err)
	}
	if resp.FullName == "" {
		return Repo{}, fmt.Errorf("repository metadata is missing the full name")
	}
	return Repo{FullName: resp.FullName, DefaultBranch: resp.DefaultBranch}, nil
}

// LatestCommit returns the tip commit SHA of the given branch. Empty
// repositories have no commits; callers treat a failed query as absent
// metadata, not an error.
func (c Client) LatestCommit(ctx context.Context, fullName, branch string) (string, error) {
	if branch == "" {
		return "", fmt.Errorf("repository %s has no default branch", fullName)
	}

	out, err := c.output(ctx, "api",
		fmt.Sprintf("repos/%s/commits/%s", fullName, url.PathEscape(branch)),
		"--jq", ".sha")
	if err != nil {
		return "", fmt.Errorf("failed to query latest commit of %s: %w", fullName, err)
	}

	sha := strings.TrimSpace(string(out))
	if sha == "" {
		return "", fmt.Errorf("empty commit sha for %s", fullName)
	}
	return sha, nil
}
