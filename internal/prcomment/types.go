package prcomment

import (
	"context"
	"fmt"
	"strings"

	"github.com/scan-io-git/ssd-reporter/internal/comment"
)

// botUserType is the GitHub user type of app and Actions accounts.
const botUserType = "Bot"

// Comment is an issue comment as seen by the composer.
type Comment struct {
	ID          int64
	Body        string
	AuthorLogin string
	AuthorType  string
	URL         string
}

// IsBot reports whether the comment was authored by a bot account.
func (c Comment) IsBot() bool {
	return strings.EqualFold(c.AuthorType, botUserType)
}

// Client is the subset of the issue-comments API the composer needs.
type Client interface {
	ListComments(ctx context.Context, owner, repo string, number int) ([]Comment, error)
	CreateComment(ctx context.Context, owner, repo string, number int, body string) (Comment, error)
	UpdateComment(ctx context.Context, owner, repo string, commentID int64, body string) (Comment, error)
}

// Target identifies the pull request and the run the comment refers to.
type Target struct {
	Owner       string
	Repo        string
	PullRequest int
	ServerURL   string
	RunID       string
	UploadURL   string
}

// Validate names every missing field.
func (t Target) Validate() error {
	var missing []string
	fields := []struct {
		name  string
		value string
	}{
		{"owner", t.Owner},
		{"repository", t.Repo},
		{"server-url", t.ServerURL},
		{"run-id", t.RunID},
		{"upload-url", t.UploadURL},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if t.PullRequest <= 0 {
		missing = append(missing, "pull-request-id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required values: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Links returns the link set rendered into comment bodies.
func (t Target) Links() comment.Links {
	return comment.Links{
		ServerURL:   t.ServerURL,
		Owner:       t.Owner,
		Repo:        t.Repo,
		RunID:       t.RunID,
		UploadURL:   t.UploadURL,
		PullRequest: t.PullRequest,
	}
}

// Kind is the flavour of comment that was produced.
type Kind string

const (
	KindResults    Kind = "results"
	KindNoFindings Kind = "no-findings"
	KindFallback   Kind = "fallback"
)

// Action is what happened on the pull request.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
)

// Result describes the outcome of a composer run.
type Result struct {
	Kind    Kind
	Action  Action
	Body    string
	Comment Comment
}
