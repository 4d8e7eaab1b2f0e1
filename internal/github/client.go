// Package github implements the pull request comments client on top of go-github.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v47/github"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"

	"github.com/scan-io-git/ssd-reporter/internal/config"
	"github.com/scan-io-git/ssd-reporter/internal/prcomment"
	"github.com/scan-io-git/ssd-reporter/pkg/shared/httpclient"
)

const commentsPerPage = 100

// Client talks to the GitHub issue comments API.
type Client struct {
	client *github.Client
	logger hclog.Logger
}

var _ prcomment.Client = (*Client)(nil)

// New builds a client from the global configuration. Without a token the client is anonymous
// and can only list comments of public repositories.
func New(logger hclog.Logger, cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	httpClient := httpclient.NewHTTPClient(logger.Named("http"), cfg)

	if cfg.GitHub.Token == "" {
		logger.Warn("no token provided, anonymous GitHub access will be used and creating comments will fail")
	} else {
		httpClient.Transport = &oauth2.Transport{
			Base:   httpClient.Transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token}),
		}
	}

	gh, err := newGitHubClient(httpClient, cfg.GitHub.APIURL)
	if err != nil {
		return nil, err
	}
	logger.Debug("github client initialized", "baseURL", gh.BaseURL.String())

	return &Client{client: gh, logger: logger}, nil
}

// newGitHubClient returns a github.com client for the public API URL and an enterprise client otherwise.
func newGitHubClient(httpClient *http.Client, apiURL string) (*github.Client, error) {
	apiURL = strings.TrimRight(apiURL, "/")
	if apiURL == "" || apiURL == config.DefaultGitHubAPIURL {
		return github.NewClient(httpClient), nil
	}

	gh, err := github.NewEnterpriseClient(apiURL+"/", apiURL+"/", httpClient)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
	}
	return gh, nil
}

// ListComments returns every comment of the issue, following pagination.
func (c *Client) ListComments(ctx context.Context, owner, repo string, number int) ([]prcomment.Comment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: commentsPerPage},
	}

	var result []prcomment.Comment
	for {
		page, resp, err := c.client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("list comments %s/%s#%d: %w", owner, repo, number, err)
		}
		for _, ic := range page {
			result = append(result, toComment(ic))
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	c.logger.Debug("listed PR comments", "owner", owner, "repo", repo, "number", number, "count", len(result))
	return result, nil
}

// CreateComment posts a new comment on the issue.
func (c *Client) CreateComment(ctx context.Context, owner, repo string, number int, body string) (prcomment.Comment, error) {
	ic, _, err := c.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{Body: github.String(body)})
	if err != nil {
		return prcomment.Comment{}, fmt.Errorf("create comment %s/%s#%d: %w", owner, repo, number, err)
	}
	return toComment(ic), nil
}

// UpdateComment replaces the body of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, owner, repo string, commentID int64, body string) (prcomment.Comment, error) {
	ic, _, err := c.client.Issues.EditComment(ctx, owner, repo, commentID, &github.IssueComment{Body: github.String(body)})
	if err != nil {
		return prcomment.Comment{}, fmt.Errorf("update comment %d in %s/%s: %w", commentID, owner, repo, err)
	}
	return toComment(ic), nil
}
