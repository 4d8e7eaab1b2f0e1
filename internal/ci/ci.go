// Package ci provides helpers for discovering GitHub Actions metadata.
package ci

import (
	"encoding/json"
	"os"
	"strings"
)

// LookupFunc fetches environment variables and defaults to os.Getenv.
type LookupFunc func(string) string

// Environment captures canonical GitHub Actions metadata derived from environment variables.
// See https://docs.github.com/en/actions/reference/workflows-and-actions/variables.
type Environment struct {
	ServerURL      string // ServerURL is the scheme and host of the GitHub server (e.g. https://github.com).
	APIURL         string // APIURL is the REST API endpoint of the GitHub server.
	RunID          string // RunID identifies the workflow run.
	Reference      string // Reference is the fully qualified git reference (e.g. refs/pull/42/merge).
	RepositoryName string // RepositoryName is the repository slug without owner.
	Owner          string // Owner is the repository owner or organization.
	EventPath      string // EventPath is the file holding the webhook payload that triggered the run.
}

// IsGitHubActions reports whether the lookup exposes GitHub Actions variables.
func IsGitHubActions(lookup LookupFunc) bool {
	if lookup == nil {
		lookup = os.Getenv
	}
	return strings.EqualFold(lookup("GITHUB_ACTIONS"), "true") || lookup("GITHUB_REPOSITORY") != ""
}

func getEnvironment(lookup LookupFunc) Environment {
	if lookup == nil {
		lookup = os.Getenv
	}

	owner, repoName := splitFullName(lookup("GITHUB_REPOSITORY"))
	if o := lookup("GITHUB_REPOSITORY_OWNER"); o != "" {
		owner = o
	}

	return Environment{
		ServerURL:      strings.TrimRight(lookup("GITHUB_SERVER_URL"), "/"),
		APIURL:         strings.TrimRight(lookup("GITHUB_API_URL"), "/"),
		RunID:          lookup("GITHUB_RUN_ID"),
		Reference:      lookup("GITHUB_REF"),
		RepositoryName: repoName,
		Owner:          owner,
		EventPath:      lookup("GITHUB_EVENT_PATH"),
	}
}

func splitFullName(fullName string) (string, string) {
	i := strings.LastIndex(fullName, "/")
	if i <= 0 || i == len(fullName)-1 {
		return "", ""
	}
	return fullName[:i], fullName[i+1:]
}

// eventPayload is the part of the webhook payload that identifies the pull request.
type eventPayload struct {
	Number      int `json:"number"`
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue *struct {
		Number int `json:"number"`
	} `json:"issue"`
}

// pullRequestFromEvent reads the pull request number from the event payload, which is the only
// reliable source for pull_request_target and issue_comment triggers.
func pullRequestFromEvent(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var ev eventPayload
	if err := json.Unmarshal(data, &ev); err != nil {
		return 0, err
	}
	switch {
	case ev.PullRequest != nil && ev.PullRequest.Number > 0:
		return ev.PullRequest.Number, nil
	case ev.Issue != nil && ev.Issue.Number > 0:
		return ev.Issue.Number, nil
	default:
		return ev.Number, nil
	}
}
