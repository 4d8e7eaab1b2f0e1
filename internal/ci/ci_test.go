package ci

import (
	"os"
	"path/filepath"
	"testing"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) string { return env[key] }
}

func TestIsGitHubActions(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "actions flag", env: map[string]string{"GITHUB_ACTIONS": "true"}, want: true},
		{name: "repository only", env: map[string]string{"GITHUB_REPOSITORY": "acme/shop"}, want: true},
		{name: "gitlab", env: map[string]string{"GITLAB_CI": "true", "CI": "true"}, want: false},
		{name: "empty", env: nil, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsGitHubActions(mapLookup(tc.env)); got != tc.want {
				t.Fatalf("IsGitHubActions() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGetEnvironment(t *testing.T) {
	env := getEnvironment(mapLookup(map[string]string{
		"GITHUB_REPOSITORY": "acme/shop",
		"GITHUB_SERVER_URL": "https://github.com/",
		"GITHUB_API_URL":    "https://api.github.com",
		"GITHUB_RUN_ID":     "987654",
		"GITHUB_REF":        "refs/pull/42/merge",
		"GITHUB_EVENT_PATH": "/home/runner/work/_temp/_github_workflow/event.json",
	}))

	if env.Owner != "acme" {
		t.Fatalf("expected owner acme, got %q", env.Owner)
	}
	if env.RepositoryName != "shop" {
		t.Fatalf("expected repository shop, got %q", env.RepositoryName)
	}
	if env.ServerURL != "https://github.com" {
		t.Fatalf("expected trimmed server URL, got %q", env.ServerURL)
	}
	if env.RunID != "987654" {
		t.Fatalf("expected run id 987654, got %q", env.RunID)
	}
	if env.Reference != "refs/pull/42/merge" {
		t.Fatalf("unexpected reference %q", env.Reference)
	}
	if env.EventPath == "" {
		t.Fatalf("expected event path to be set")
	}
}

func TestGetEnvironmentOwnerOverride(t *testing.T) {
	env := getEnvironment(mapLookup(map[string]string{
		"GITHUB_REPOSITORY":       "acme/shop",
		"GITHUB_REPOSITORY_OWNER": "Acme-Org",
	}))
	if env.Owner != "Acme-Org" {
		t.Fatalf("expected owner from GITHUB_REPOSITORY_OWNER, got %q", env.Owner)
	}
}

func TestSplitFullName(t *testing.T) {
	testCases := []struct {
		in        string
		wantOwner string
		wantRepo  string
	}{
		{in: "acme/shop", wantOwner: "acme", wantRepo: "shop"},
		{in: "acme/", wantOwner: "", wantRepo: ""},
		{in: "/shop", wantOwner: "", wantRepo: ""},
		{in: "shop", wantOwner: "", wantRepo: ""},
	}

	for _, tc := range testCases {
		owner, repo := splitFullName(tc.in)
		if owner != tc.wantOwner || repo != tc.wantRepo {
			t.Fatalf("splitFullName(%q) = (%q, %q), want (%q, %q)", tc.in, owner, repo, tc.wantOwner, tc.wantRepo)
		}
	}
}

func TestPullRequestFromEvent(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{name: "pull_request", payload: `{"number": 42, "pull_request": {"number": 42}}`, want: 42},
		{name: "pull_request_target", payload: `{"pull_request": {"number": 7}}`, want: 7},
		{name: "issue_comment", payload: `{"issue": {"number": 9, "pull_request": null}}`, want: 9},
		{name: "push", payload: `{"ref": "refs/heads/main"}`, want: 0},
		{name: "broken", payload: `{`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "event.json")
			if err := os.WriteFile(path, []byte(tc.payload), 0o644); err != nil {
				t.Fatal(err)
			}

			got, err := pullRequestFromEvent(path)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("pullRequestFromEvent() = %d, want %d", got, tc.want)
			}
		})
	}
}
