// Package cmd holds helpers shared by the CLI commands: argument modes and
// resolution of the pull request target from flags, URL, CI environment and git metadata.
package cmd

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/ssd-reporter/internal/ci"
	"github.com/scan-io-git/ssd-reporter/internal/config"
	"github.com/scan-io-git/ssd-reporter/internal/git"
	"github.com/scan-io-git/ssd-reporter/internal/prcomment"
	"github.com/scan-io-git/ssd-reporter/pkg/shared/files"
	"github.com/scan-io-git/ssd-reporter/pkg/shared/vcsurl"
)

// Mode constants
const (
	ModeSingleURL = "single-url"
	ModeFlags     = "flags"
)

// FindingsFileName is appended when the findings path points to a folder.
const FindingsFileName = "diff-scan-findings.json"

// DetermineMode determines the mode based on the provided arguments.
func DetermineMode(args []string) string {
	if len(args) > 0 {
		return ModeSingleURL
	}
	return ModeFlags
}

// TargetOptions are the flags shared by commands that address a pull request.
type TargetOptions struct {
	Owner         string
	Repository    string
	PullRequestID int
	ServerURL     string
	RunID         string
	UploadURL     string
	FindingsPath  string
	SourceFolder  string
}

// Target is a fully resolved pull request target.
type Target struct {
	prcomment.Target
	APIURL       string
	FindingsPath string
}

// MetadataCollector reads repository metadata from a local checkout.
type MetadataCollector func(sourceFolder string) (*git.RepositoryMetadata, error)

// ResolveTarget merges the sources in precedence order: flags, positional URL, CI environment, git metadata.
func ResolveTarget(logger hclog.Logger, cfg *config.Config, opts TargetOptions, args []string) (Target, error) {
	return resolveTarget(logger, cfg, opts, args, ci.ResolveFromEnvironment(logger), git.CollectRepositoryMetadata)
}

func resolveTarget(logger hclog.Logger, cfg *config.Config, opts TargetOptions, args []string, env ci.Resolution, collect MetadataCollector) (Target, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	var fromURL vcsurl.VCSURL
	if DetermineMode(args) == ModeSingleURL {
		u, err := vcsurl.ParsePullRequest(args[0])
		if err != nil {
			return Target{}, fmt.Errorf("failed to extract data from provided URL %q: %w", args[0], err)
		}
		fromURL = *u
	}

	t := Target{}
	t.Owner = firstSet(opts.Owner, fromURL.Namespace, env.Owner)
	t.Repo = firstSet(opts.Repository, fromURL.Repository, env.Repository)
	t.PullRequest = firstSet(opts.PullRequestID, fromURL.PullRequestID, env.PullRequest)
	t.RunID = firstSet(opts.RunID, env.RunID)
	t.UploadURL = strings.TrimRight(firstSet(opts.UploadURL, cfg.SSD.UploadURL), "/")

	urlServer, urlAPI := "", ""
	if fromURL.ParsedURL != nil {
		urlServer, urlAPI = fromURL.ServerURL(), fromURL.APIURL()
	}
	t.ServerURL = firstSet(opts.ServerURL, urlServer, env.ServerURL)
	t.APIURL = resolveAPIURL(cfg.GitHub.APIURL, urlAPI, env.APIURL)

	if (t.Owner == "" || t.Repo == "" || t.ServerURL == "") && collect != nil {
		source := firstSet(opts.SourceFolder, ".")
		md, err := collect(source)
		if err != nil {
			logger.Debug("git metadata fallback failed", "source", source, "ciDetected", env.Detected, "error", err)
		}
		if md != nil {
			logger.Debug("collected git metadata",
				"root", md.RepoRootFolder, "subfolder", md.Subfolder,
				"branch", valueOf(md.BranchName), "commit", valueOf(md.CommitHash), "remote", md.RemoteURL)
			t.Owner = firstSet(t.Owner, md.Owner)
			t.Repo = firstSet(t.Repo, md.Repository)
			t.ServerURL = firstSet(t.ServerURL, md.ServerURL)
			if t.APIURL == config.DefaultGitHubAPIURL && md.APIURL != "" {
				t.APIURL = md.APIURL
			}
		}
	}
	t.ServerURL = strings.TrimRight(t.ServerURL, "/")

	findingsPath := firstSet(opts.FindingsPath, cfg.Findings.Path)
	if findingsPath == "" {
		p, err := config.DefaultFindingsFile()
		if err != nil {
			return Target{}, err
		}
		findingsPath = p
	}
	path, _, err := files.DetermineFileFullPath(findingsPath, FindingsFileName)
	if err != nil {
		return Target{}, fmt.Errorf("invalid findings path: %w", err)
	}
	t.FindingsPath = path

	logger.Debug("resolved pull request target", "ciDetected", env.Detected,
		"owner", t.Owner, "repository", t.Repo, "pr", t.PullRequest,
		"serverURL", t.ServerURL, "apiURL", t.APIURL, "runID", t.RunID, "findings", t.FindingsPath)
	return t, nil
}

// resolveAPIURL keeps an explicitly configured API URL; the default public endpoint
// gives way to the one implied by the pull request URL or the CI environment.
func resolveAPIURL(configured, fromURL, fromEnv string) string {
	if configured != "" && configured != config.DefaultGitHubAPIURL {
		return configured
	}
	return firstSet(fromURL, fromEnv, configured, config.DefaultGitHubAPIURL)
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstSet[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
