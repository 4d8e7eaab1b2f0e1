package github

import (
	"github.com/google/go-github/v47/github"

	"github.com/scan-io-git/ssd-reporter/internal/prcomment"
)

// safeString safely dereferences a string pointer, returning an empty string if the pointer is nil.
func safeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// safeInt64 safely dereferences an int64 pointer, returning 0 if the pointer is nil.
func safeInt64(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}

// toComment converts a GitHub issue comment, handling nil fields safely.
func toComment(ic *github.IssueComment) prcomment.Comment {
	if ic == nil {
		return prcomment.Comment{}
	}

	c := prcomment.Comment{
		ID:   safeInt64(ic.ID),
		Body: safeString(ic.Body),
		URL:  safeString(ic.HTMLURL),
	}
	if ic.User != nil {
		c.AuthorLogin = safeString(ic.User.Login)
		c.AuthorType = safeString(ic.User.Type)
	}
	return c
}
