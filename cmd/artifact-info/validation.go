package artifactinfo

import (
	"fmt"
	"strings"

	cmdutil "github.com/scan-io-git/ssd-reporter/internal/cmd"
)

// validateArtifactInfoArgs validates the shape of the command arguments.
func validateArtifactInfoArgs(options *cmdutil.TargetOptions, args []string) error {
	var issues []string

	if len(args) > 1 {
		issues = append(issues, fmt.Sprintf("provide at most one pull request URL, got: %s", strings.Join(args, ", ")))
	}
	if options.PullRequestID < 0 {
		issues = append(issues, "'pull-request-id' cannot be negative")
	}

	if len(issues) > 0 {
		return fmt.Errorf("%s", strings.Join(issues, "; "))
	}
	return nil
}
