// Package cmd contains the cobra command tree for the genie CLI: export,
// import, update, clone, validate, and info operations against a workspace's
// Genie Spaces API.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ekaya-inc/genie-spaces/pkg/client"
	"github.com/ekaya-inc/genie-spaces/pkg/config"
	"github.com/ekaya-inc/genie-spaces/pkg/logging"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

var (
	// verbose enables debug-level logging on stderr.
	verbose bool
	// flagHost and flagToken override the environment credentials.
	flagHost  string
	flagToken string
)

var rootCmd = &cobra.Command{
	Use:   "genie",
	Short: "Manage Genie Space configurations via the import/export API",
	Long: `genie exports, imports, updates, and clones Genie Space configurations
through the workspace import/export API.

Credentials come from DATABRICKS_HOST and DATABRICKS_TOKEN (or an optional
genie.yaml for the host), overridable with --host and --token. The validate
command is purely local and needs no credentials.

Examples:
  genie export 01ef1a2b3c4d5e6f -o my-space.json
  genie import my-space.json -w abc123 -p "/Workspace/Users/me/Genie Spaces"
  genie update 01ef1a2b3c4d5e6f --title "New Title"
  genie clone 01ef1a2b3c4d5e6f -w def456 -p "/Workspace/Shared/Spaces"
  genie validate my-space.json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "workspace URL (overrides DATABRICKS_HOST)")
	rootCmd.PersistentFlags().StringVarP(&flagToken, "token", "t", "", "personal access token (overrides DATABRICKS_TOKEN)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(cloneCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(infoCmd)
}

// Execute runs the CLI. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger() *zap.Logger {
	logger, err := logging.NewLogger(verbose)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newClient loads configuration, applies flag overrides, and constructs a
// workspace client.
func newClient() (*client.Client, error) {
	cfg, err := config.Load(Version)
	if err != nil {
		return nil, err
	}
	host := cfg.Host
	if flagHost != "" {
		host = flagHost
	}
	token := cfg.Token
	if flagToken != "" {
		token = flagToken
	}
	return client.NewClient(host, token, newLogger(), client.WithTimeout(cfg.Timeout()))
}
