package prcomment

import (
	"bytes"
	"testing"

	cmdutil "github.com/scan-io-git/ssd-reporter/internal/cmd"
	"github.com/scan-io-git/ssd-reporter/internal/config"
	composer "github.com/scan-io-git/ssd-reporter/internal/prcomment"
)

func TestValidatePRCommentArgs(t *testing.T) {
	t.Run("valid flags mode", func(t *testing.T) {
		opts := &RunOptionsPRComment{TargetOptions: cmdutil.TargetOptions{PullRequestID: 42}, Limit: 10}
		if err := validatePRCommentArgs(opts, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("single url", func(t *testing.T) {
		opts := &RunOptionsPRComment{}
		if err := validatePRCommentArgs(opts, []string{"https://github.com/acme/shop/pull/1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		opts := &RunOptionsPRComment{}
		err := validatePRCommentArgs(opts, []string{"a", "b"})
		want := "provide at most one pull request URL, got: a, b"
		if err == nil || err.Error() != want {
			t.Fatalf("unexpected error\nwant: %q\n got: %v", want, err)
		}
	})

	t.Run("negative values", func(t *testing.T) {
		opts := &RunOptionsPRComment{TargetOptions: cmdutil.TargetOptions{PullRequestID: -1}, Limit: -1}
		err := validatePRCommentArgs(opts, nil)
		want := "'pull-request-id' cannot be negative; 'limit' cannot be negative"
		if err == nil || err.Error() != want {
			t.Fatalf("unexpected error\nwant: %q\n got: %v", want, err)
		}
	})

	t.Run("limit too large", func(t *testing.T) {
		opts := &RunOptionsPRComment{Limit: config.MaxTopIssues + 1}
		if err := validatePRCommentArgs(opts, nil); err == nil {
			t.Fatal("expected error for limit above maximum")
		}
	})
}

func TestResolveLimit(t *testing.T) {
	cfg := &config.Config{Findings: config.Findings{TopIssues: 8}}

	if got := resolveLimit(3, cfg); got != 3 {
		t.Fatalf("flag should win, got %d", got)
	}
	if got := resolveLimit(0, cfg); got != 8 {
		t.Fatalf("config should be used, got %d", got)
	}
	if got := resolveLimit(0, nil); got != config.DefaultTopIssues {
		t.Fatalf("default expected, got %d", got)
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, composer.Result{
		Kind:    composer.KindResults,
		Action:  composer.ActionUpdated,
		Comment: composer.Comment{ID: 99, URL: "https://github.com/acme/shop/pull/42#issuecomment-99"},
	})
	want := "updated results comment 99: https://github.com/acme/shop/pull/42#issuecomment-99\n"
	if buf.String() != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, buf.String())
	}

	buf.Reset()
	printResult(&buf, composer.Result{Kind: composer.KindNoFindings, Action: composer.ActionSkipped, Body: "body"})
	want = "Dry run, no-findings comment was not posted:\n\nbody\n"
	if buf.String() != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, buf.String())
	}
}
