package artifactinfo

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/scan-io-git/ssd-reporter/internal/artifact"
	cmdutil "github.com/scan-io-git/ssd-reporter/internal/cmd"
	"github.com/scan-io-git/ssd-reporter/internal/config"
	"github.com/scan-io-git/ssd-reporter/pkg/shared/errors"
)

// Global variables for configuration and command arguments
var (
	AppConfig           *config.Config
	logger              hclog.Logger
	artifactInfoOptions cmdutil.TargetOptions

	exampleArtifactInfoUsage = `  # Inside a GitHub Actions workflow
  ssd-reporter artifact-info --upload-url https://ssd.example.com

  # Explicit values
  ssd-reporter artifact-info --owner acme --repository shop --pull-request-id 42 --server-url https://github.com --run-id 987654 --upload-url https://ssd.example.com --findings ./diff-scan-findings.json`

	// ArtifactInfoCmd represents the artifact-info command.
	ArtifactInfoCmd = &cobra.Command{
		Use:                   "artifact-info [--owner OWNER --repository REPO --pull-request-id ID] [--server-url URL] [--run-id ID] [--upload-url URL] [--findings PATH] [PR_URL]",
		Short:                 "Print where the diff scan summary artifact can be downloaded",
		Long:                  "Print the artifact name, download links and a short description of the diff scan findings file. Missing or unreadable files are reported, not treated as failures.",
		Example:               exampleArtifactInfoUsage,
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		RunE:                  runArtifactInfo,
	}
)

// Init wires config and logger into the command package.
func Init(cfg *config.Config, l hclog.Logger) {
	AppConfig = cfg
	logger = l
}

func runArtifactInfo(cmd *cobra.Command, args []string) error {
	if err := validateArtifactInfoArgs(&artifactInfoOptions, args); err != nil {
		logger.Error("invalid command arguments", "error", err)
		return errors.NewCommandError(fmt.Errorf("invalid arguments: %w", err), 1)
	}

	target, err := cmdutil.ResolveTarget(logger, AppConfig, artifactInfoOptions, args)
	if err != nil {
		logger.Error("failed to resolve pull request target", "error", err)
		return errors.NewCommandError(fmt.Errorf("failed to resolve pull request target: %w", err), 1)
	}
	if err := target.Validate(); err != nil {
		logger.Warn("artifact links may be incomplete", "error", err)
	}

	artifact.New(cmd.OutOrStdout(), logger, target.FindingsPath).Report(target.Links())
	return nil
}

func init() {
	ArtifactInfoCmd.Flags().StringVar(&artifactInfoOptions.Owner, "owner", "", "Owner or organization of the repository")
	ArtifactInfoCmd.Flags().StringVar(&artifactInfoOptions.Repository, "repository", "", "Repository name")
	ArtifactInfoCmd.Flags().IntVar(&artifactInfoOptions.PullRequestID, "pull-request-id", 0, "Pull request number")
	ArtifactInfoCmd.Flags().StringVar(&artifactInfoOptions.ServerURL, "server-url", "", "GitHub server URL used to build run links (e.g., https://github.com)")
	ArtifactInfoCmd.Flags().StringVar(&artifactInfoOptions.RunID, "run-id", "", "Workflow run identifier")
	ArtifactInfoCmd.Flags().StringVar(&artifactInfoOptions.UploadURL, "upload-url", "", "Base URL of the SSD portal (defaults to $SSD_UPLOAD_URL)")
	ArtifactInfoCmd.Flags().StringVarP(&artifactInfoOptions.FindingsPath, "findings", "f", "", "Path to the diff scan findings file or its folder")
	ArtifactInfoCmd.Flags().StringVarP(&artifactInfoOptions.SourceFolder, "source", "s", "", "Repository folder used to resolve owner and repository from the origin remote")
	ArtifactInfoCmd.Flags().BoolP("help", "h", false, "Show help for artifact-info command.")
}
