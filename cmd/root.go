package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	artifactinfo "github.com/scan-io-git/ssd-reporter/cmd/artifact-info"
	prcomment "github.com/scan-io-git/ssd-reporter/cmd/pr-comment"
	"github.com/scan-io-git/ssd-reporter/cmd/version"
	"github.com/scan-io-git/ssd-reporter/internal/config"
	"github.com/scan-io-git/ssd-reporter/internal/logger"
	cmderrors "github.com/scan-io-git/ssd-reporter/pkg/shared/errors"
)

// ConfigPathEnv points to the configuration file when --config is not given.
const ConfigPathEnv = "SSD_REPORTER_CONFIG"

var (
	cfgFile   string
	AppConfig *config.Config
	Logger    hclog.Logger
	rootCmd   = &cobra.Command{
		Use:                   "ssd-reporter [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "ssd-reporter publishes diff scan results to GitHub pull requests.",
		Long: `ssd-reporter turns the diff scan findings file into a single, continuously updated
pull request comment and prints where the scan summary artifact can be downloaded.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $SSD_REPORTER_CONFIG or config.yml)")

	rootCmd.AddCommand(prcomment.PRCommentCmd)
	rootCmd.AddCommand(artifactinfo.ArtifactInfoCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		var cmdErr *cmderrors.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode != 0 {
			return cmdErr.ExitCode
		}
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = os.Getenv(ConfigPathEnv)
	}
	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing config file function is crashed - %v \n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	Logger = logger.NewLogger(AppConfig, "core")
	Logger.Debug("configuration loaded", "path", cfgFile)

	prcomment.Init(AppConfig, Logger.Named("pr-comment"))
	artifactinfo.Init(AppConfig, Logger.Named("artifact-info"))
	version.Init(AppConfig)
}
