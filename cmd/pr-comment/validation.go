package prcomment

import (
	"fmt"
	"strings"

	cmdutil "github.com/scan-io-git/ssd-reporter/internal/cmd"
	"github.com/scan-io-git/ssd-reporter/internal/config"
)

// validatePRCommentArgs validates the shape of the command arguments. Values that may still
// come from the environment are checked after resolution.
func validatePRCommentArgs(options *RunOptionsPRComment, args []string) error {
	var issues []string

	if cmdutil.DetermineMode(args) == cmdutil.ModeSingleURL && len(args) != 1 {
		issues = append(issues, fmt.Sprintf("provide at most one pull request URL, got: %s", strings.Join(args, ", ")))
	}
	if options.PullRequestID < 0 {
		issues = append(issues, "'pull-request-id' cannot be negative")
	}
	if options.Limit < 0 {
		issues = append(issues, "'limit' cannot be negative")
	} else if options.Limit > config.MaxTopIssues {
		issues = append(issues, fmt.Sprintf("'limit' cannot exceed %d", config.MaxTopIssues))
	}

	if len(issues) > 0 {
		return fmt.Errorf("%s", strings.Join(issues, "; "))
	}
	return nil
}
