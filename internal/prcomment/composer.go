// Package prcomment posts the diff scan summary to a pull request, keeping a single results comment per pull request.
package prcomment

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/ssd-reporter/internal/comment"
	"github.com/scan-io-git/ssd-reporter/internal/findings"
)

// Options configures a Composer.
type Options struct {
	FindingsPath string
	TopIssues    int
	// DryRun renders and logs the comment without calling the API.
	DryRun bool
}

// Composer builds the comment body from the findings file and publishes it.
type Composer struct {
	client Client
	logger hclog.Logger
	opts   Options
}

// New returns a Composer. client may be nil only in dry-run mode.
func New(client Client, logger hclog.Logger, opts Options) *Composer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.TopIssues < 1 {
		opts.TopIssues = comment.DefaultTopIssues
	}
	return &Composer{client: client, logger: logger, opts: opts}
}

// Run publishes the comment for target. Findings read and parse errors are turned into a
// fallback comment; only API failures and invalid targets are returned.
func (c *Composer) Run(ctx context.Context, target Target) (Result, error) {
	if err := target.Validate(); err != nil {
		return Result{}, err
	}
	if c.client == nil && !c.opts.DryRun {
		return Result{}, fmt.Errorf("comments client is not configured")
	}

	links := target.Links()
	c.logger.Info("looking for findings file", "path", c.opts.FindingsPath)

	doc, err := findings.Load(c.opts.FindingsPath)
	switch {
	case errors.Is(err, findings.ErrNotFound):
		c.logger.Info("diff scan findings file not found, creating simple comment")
		return c.create(ctx, target, KindNoFindings, comment.NoFindings(links))
	case err != nil:
		c.logger.Error("error processing findings file", "error", err)
		return c.create(ctx, target, KindFallback, comment.Fallback(links, err))
	}

	report := findings.Normalize(doc)
	c.logger.Debug("findings loaded",
		"newIssues", report.TotalNewIssues,
		"existingIssues", report.TotalExistingIssues,
		"buildStatus", report.BuildStatus,
		"interruptForOldIssues", report.InterruptForOldIssues,
	)
	return c.upsert(ctx, target, comment.Results(report, links, c.opts.TopIssues))
}

// upsert updates the first bot comment carrying the marker or creates a new one.
func (c *Composer) upsert(ctx context.Context, target Target, body string) (Result, error) {
	if c.opts.DryRun {
		return c.skip(KindResults, body), nil
	}

	comments, err := c.client.ListComments(ctx, target.Owner, target.Repo, target.PullRequest)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list comments of PR #%d: %w", target.PullRequest, err)
	}

	existing, found := FindResultsComment(comments)
	if !found {
		return c.create(ctx, target, KindResults, body)
	}

	updated, err := c.client.UpdateComment(ctx, target.Owner, target.Repo, existing.ID, body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to update comment %d: %w", existing.ID, err)
	}
	c.logger.Info("updated existing PR comment", "id", updated.ID, "url", updated.URL)
	return Result{Kind: KindResults, Action: ActionUpdated, Body: body, Comment: updated}, nil
}

func (c *Composer) create(ctx context.Context, target Target, kind Kind, body string) (Result, error) {
	if c.opts.DryRun {
		return c.skip(kind, body), nil
	}

	created, err := c.client.CreateComment(ctx, target.Owner, target.Repo, target.PullRequest, body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create comment on PR #%d: %w", target.PullRequest, err)
	}
	c.logger.Info("created new PR comment", "id", created.ID, "url", created.URL, "kind", kind)
	return Result{Kind: kind, Action: ActionCreated, Body: body, Comment: created}, nil
}

func (c *Composer) skip(kind Kind, body string) Result {
	c.logger.Info("dry run, comment is not published", "kind", kind)
	c.logger.Debug("comment body", "body", body)
	return Result{Kind: kind, Action: ActionSkipped, Body: body}
}

// FindResultsComment returns the first bot comment that carries the results marker.
func FindResultsComment(comments []Comment) (Comment, bool) {
	for _, cm := range comments {
		if cm.IsBot() && comment.HasMarker(cm.Body) {
			return cm, true
		}
	}
	return Comment{}, false
}
