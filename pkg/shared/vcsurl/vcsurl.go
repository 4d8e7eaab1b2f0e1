package vcsurl

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

type Protocol int

const (
	SSH Protocol = iota
	HTTP
)

// PublicGitHubHost is the host of github.com; every other host is treated as GitHub Enterprise.
const PublicGitHubHost = "github.com"

// define allows schemes: http, https and ssh
var validSchemes = []string{"http", "https", "ssh"}

var scpLikeURL = regexp.MustCompile(`^(?:[\w.-]+@)?([^:/]+):(.*)$`)

// function to check whether the scheme is valid
func isValidScheme(scheme string) bool {
	for _, validScheme := range validSchemes {
		if scheme == validScheme {
			return true
		}
	}
	return false
}

// VCSURL represents a parsed GitHub repository or pull request URL.
type VCSURL struct {
	Host          string
	Namespace     string
	Repository    string
	PullRequestID int
	ParsedURL     *url.URL
	Raw           string
}

// Protocol returns the protocol of the VCS URL (HTTP or SSH)
func (u *VCSURL) Protocol() Protocol {
	if u.ParsedURL.Scheme == "http" || u.ParsedURL.Scheme == "https" {
		return HTTP
	}
	return SSH
}

// ServerURL returns the web root of the GitHub server the URL points to.
// SSH remotes are mapped to https on the same host.
func (u *VCSURL) ServerURL() string {
	if u.Protocol() == HTTP {
		return fmt.Sprintf("%s://%s", u.ParsedURL.Scheme, u.ParsedURL.Host)
	}
	return "https://" + u.Host
}

// APIURL returns the REST API root for the server: api.github.com for github.com
// and <server>/api/v3 for GitHub Enterprise.
func (u *VCSURL) APIURL() string {
	if strings.EqualFold(u.Host, PublicGitHubHost) {
		return "https://api.github.com"
	}
	return u.ServerURL() + "/api/v3"
}

// GetPathDirs splits the URL path into non-empty segments.
func GetPathDirs(path string) []string {
	var pathDirs []string
	for _, dir := range strings.Split(path, "/") {
		if dir != "" {
			pathDirs = append(pathDirs, dir)
		}
	}
	return pathDirs
}

// Parse parses a GitHub repository URL. Supported forms:
//
//	https://github.com/<owner>/<repo>[.git]
//	https://github.com/<owner>/<repo>/pull/<id>[/files]
//	git@github.com:<owner>/<repo>.git
//	ssh://git@github.com[:port]/<owner>/<repo>.git
func Parse(raw string) (*VCSURL, error) {
	vcsURL := VCSURL{Raw: raw}

	spec := strings.TrimSpace(raw)
	// preparse special type of URLs like "git@<host>:<path>"
	if !strings.Contains(spec, "://") {
		parts := scpLikeURL.FindStringSubmatch(spec)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid URL: %q", raw)
		}
		spec = fmt.Sprintf("ssh://%s/%s", parts[1], strings.TrimPrefix(parts[2], "/"))
	}

	parsedURL, err := url.ParseRequestURI(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if !isValidScheme(parsedURL.Scheme) {
		return nil, fmt.Errorf("invalid scheme: %q", raw)
	}
	if parsedURL.Hostname() == "" {
		return nil, fmt.Errorf("missing host: %q", raw)
	}
	vcsURL.ParsedURL = parsedURL
	vcsURL.Host = parsedURL.Hostname()

	return parseGithub(vcsURL)
}

// ParsePullRequest parses a pull request URL and fails when the URL does not carry a PR number.
func ParsePullRequest(raw string) (*VCSURL, error) {
	u, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.PullRequestID == 0 {
		return nil, fmt.Errorf("not a pull request URL: %q", raw)
	}
	return u, nil
}

// parseGithub processes GitHub URLs to extract repository information.
func parseGithub(u VCSURL) (*VCSURL, error) {
	pathDirs := GetPathDirs(u.ParsedURL.Path)
	if len(pathDirs) < 2 {
		return nil, fmt.Errorf("invalid Github URL: %q", u.Raw)
	}

	u.Namespace = pathDirs[0]
	u.Repository = strings.TrimSuffix(pathDirs[1], ".git")
	if u.Repository == "" {
		return nil, fmt.Errorf("invalid Github URL: %q", u.Raw)
	}

	// PR case - https://github.com/<owner>/<repo>/pull/<id>
	if len(pathDirs) > 3 && pathDirs[2] == "pull" {
		id, err := strconv.Atoi(pathDirs[3])
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid pull request number %q in %q", pathDirs[3], u.Raw)
		}
		u.PullRequestID = id
	}

	return &u, nil
}
