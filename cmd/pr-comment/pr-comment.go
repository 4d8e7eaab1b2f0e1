package prcomment

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	cmdutil "github.com/scan-io-git/ssd-reporter/internal/cmd"
	"github.com/scan-io-git/ssd-reporter/internal/config"
	"github.com/scan-io-git/ssd-reporter/internal/github"
	composer "github.com/scan-io-git/ssd-reporter/internal/prcomment"
	"github.com/scan-io-git/ssd-reporter/pkg/shared/errors"
)

// RunOptionsPRComment holds the arguments of the pr-comment command.
type RunOptionsPRComment struct {
	cmdutil.TargetOptions
	Limit  int
	DryRun bool
}

// Global variables for configuration and command arguments
var (
	AppConfig        *config.Config
	logger           hclog.Logger
	prCommentOptions RunOptionsPRComment

	examplePRCommentUsage = `  # Inside a GitHub Actions pull_request workflow, everything is resolved from the environment
  ssd-reporter pr-comment --upload-url https://ssd.example.com

  # Comment on a pull request addressed by URL
  ssd-reporter pr-comment --run-id 987654 --upload-url https://ssd.example.com https://github.com/acme/shop/pull/42

  # Explicit flags with a custom findings file, printing the body without posting it
  ssd-reporter pr-comment --owner acme --repository shop --pull-request-id 42 --server-url https://github.com --run-id 987654 --upload-url https://ssd.example.com --findings ./diff-scan-findings.json --dry-run`

	// PRCommentCmd represents the pr-comment command.
	PRCommentCmd = &cobra.Command{
		Use:                   "pr-comment [--owner OWNER --repository REPO --pull-request-id ID] [--server-url URL] [--run-id ID] [--upload-url URL] [--findings PATH] [--limit N] [--dry-run] [PR_URL]",
		Short:                 "Create or update the security scan results comment on a pull request",
		Example:               examplePRCommentUsage,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE:                  runPRComment,
	}
)

// Init wires config and logger into the command package.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
	PRCommentCmd.Long = generateLongDescription(AppConfig)
}

func runPRComment(cmd *cobra.Command, args []string) error {
	if err := validatePRCommentArgs(&prCommentOptions, args); err != nil {
		logger.Error("invalid command arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid arguments: %w", err), 1)
	}

	target, err := cmdutil.ResolveTarget(logger, AppConfig, prCommentOptions.TargetOptions, args)
	if err != nil {
		logger.Error("failed to resolve pull request target", "error", err)
		return errors.NewCommandError(fmt.Errorf("failed to resolve pull request target: %w", err), 1)
	}
	if err := target.Validate(); err != nil {
		logger.Error("pull request target is incomplete", "error", err)
		return errors.NewCommandError(err, 1)
	}

	var client composer.Client
	if !prCommentOptions.DryRun {
		ghCfg := *AppConfig
		ghCfg.GitHub.APIURL = target.APIURL
		gh, err := github.New(logger.Named("github"), &ghCfg)
		if err != nil {
			logger.Error("failed to initialize GitHub client", "error", err)
			return errors.NewCommandError(fmt.Errorf("failed to initialize GitHub client: %w", err), 1)
		}
		client = gh
	}

	c := composer.New(client, logger, composer.Options{
		FindingsPath: target.FindingsPath,
		TopIssues:    resolveLimit(prCommentOptions.Limit, AppConfig),
		DryRun:       prCommentOptions.DryRun,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result, err := c.Run(ctx, target.Target)
	if err != nil {
		logger.Error("failed to publish pull request comment", "error", err)
		return errors.NewCommandError(err, 1)
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// generateLongDescription documents the resolution order of the pull request target.
func generateLongDescription(cfg *config.Config) string {
	apiURL := config.DefaultGitHubAPIURL
	if cfg != nil && cfg.GitHub.APIURL != "" {
		apiURL = cfg.GitHub.APIURL
	}
	return fmt.Sprintf(`Create or update the security scan results comment on a pull request.

The comment is built from the diff scan findings file. When the file is missing a short
"scan completed" comment is posted; when it cannot be parsed a fallback comment with the
error is posted. A previous results comment written by a bot is updated in place.

Target values are resolved in order: flags, PR URL argument, GitHub Actions environment,
origin remote of the git repository in --source.

GitHub API: %s`, apiURL)
}

func init() {
	PRCommentCmd.Flags().StringVar(&prCommentOptions.Owner, "owner", "", "Owner or organization of the repository")
	PRCommentCmd.Flags().StringVar(&prCommentOptions.Repository, "repository", "", "Repository name")
	PRCommentCmd.Flags().IntVar(&prCommentOptions.PullRequestID, "pull-request-id", 0, "Pull request number")
	PRCommentCmd.Flags().StringVar(&prCommentOptions.ServerURL, "server-url", "", "GitHub server URL used to build run links (e.g., https://github.com)")
	PRCommentCmd.Flags().StringVar(&prCommentOptions.RunID, "run-id", "", "Workflow run identifier")
	PRCommentCmd.Flags().StringVar(&prCommentOptions.UploadURL, "upload-url", "", "Base URL of the SSD portal (defaults to $SSD_UPLOAD_URL)")
	PRCommentCmd.Flags().StringVarP(&prCommentOptions.FindingsPath, "findings", "f", "", "Path to the diff scan findings file or its folder")
	PRCommentCmd.Flags().StringVarP(&prCommentOptions.SourceFolder, "source", "s", "", "Repository folder used to resolve owner and repository from the origin remote")
	PRCommentCmd.Flags().IntVar(&prCommentOptions.Limit, "limit", 0, fmt.Sprintf("Number of top issues listed in the comment (0 = findings.top_issues, max %d)", config.MaxTopIssues))
	PRCommentCmd.Flags().BoolVar(&prCommentOptions.DryRun, "dry-run", false, "Print the comment body without calling the GitHub API")
	PRCommentCmd.Flags().BoolP("help", "h", false, "Show help for pr-comment command.")
}
