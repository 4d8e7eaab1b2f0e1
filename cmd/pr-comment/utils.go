package prcomment

import (
	"fmt"
	"io"

	"github.com/scan-io-git/ssd-reporter/internal/config"
	composer "github.com/scan-io-git/ssd-reporter/internal/prcomment"
)

// resolveLimit returns the flag value when set and the configured top_issues otherwise.
func resolveLimit(limit int, cfg *config.Config) int {
	if limit > 0 {
		return limit
	}
	if cfg != nil && cfg.Findings.TopIssues > 0 {
		return cfg.Findings.TopIssues
	}
	return config.DefaultTopIssues
}

// printResult reports the outcome; a dry run prints the rendered body.
func printResult(w io.Writer, result composer.Result) {
	switch result.Action {
	case composer.ActionSkipped:
		fmt.Fprintf(w, "Dry run, %s comment was not posted:\n\n%s\n", result.Kind, result.Body)
	default:
		fmt.Fprintf(w, "%s %s comment %d", result.Action, result.Kind, result.Comment.ID)
		if result.Comment.URL != "" {
			fmt.Fprintf(w, ": %s", result.Comment.URL)
		}
		fmt.Fprintln(w)
	}
}
