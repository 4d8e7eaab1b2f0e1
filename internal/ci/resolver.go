package ci

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Resolution contains CI metadata resolved for the pull request comment.
type Resolution struct {
	Detected    bool
	ServerURL   string
	APIURL      string
	Owner       string
	Repository  string
	PullRequest int
	RunID       string
}

// ResolveFromEnvironment collects pull request metadata from the process environment.
// Fields that cannot be resolved are left empty for the caller to fill from flags.
func ResolveFromEnvironment(log hclog.Logger) Resolution {
	return resolveWithLookup(log, nil)
}

func resolveWithLookup(log hclog.Logger, lookup LookupFunc) Resolution {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if !IsGitHubActions(lookup) {
		log.Debug("GitHub Actions environment is not detected")
		return Resolution{}
	}

	env := getEnvironment(lookup)
	res := Resolution{
		Detected:   true,
		ServerURL:  env.ServerURL,
		APIURL:     env.APIURL,
		Owner:      env.Owner,
		Repository: env.RepositoryName,
		RunID:      env.RunID,
	}

	if env.EventPath != "" {
		pr, err := pullRequestFromEvent(env.EventPath)
		if err != nil {
			log.Debug("unable to read event payload", "path", env.EventPath, "error", err)
		} else if pr > 0 {
			res.PullRequest = pr
		}
	}
	if res.PullRequest == 0 {
		res.PullRequest = extractPRFromRef(env.Reference)
	}

	log.Debug("hydrated from CI environment",
		"owner", res.Owner, "repository", res.Repository, "pr", res.PullRequest, "runID", res.RunID)
	return res
}

// extractPRFromRef parses refs/pull/<n>/merge and refs/pull/<n>/head.
func extractPRFromRef(ref string) int {
	parts := strings.Split(ref, "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] != "pull" {
			continue
		}
		if n, err := strconv.Atoi(parts[i+1]); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
