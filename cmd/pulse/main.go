package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pulse",
		Short: "Social Pulse analytics dashboard",
		Long: `Social Pulse renders the social media analytics dashboard: traffic
sentiment, top positive and negative words, per-platform sentiment volumes
and user perception.

Run without arguments to open the dashboard in the terminal, or use
"pulse serve" to serve it to a browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, runTUI)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default is $HOME/.config/pulse/config.yml)")
	root.PersistentFlags().String("skin", "", "color skin name")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd, runServe)
		},
	}
	cmd.Flags().String("listen", "", "listen address (default "+defaultListenAddr+")")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Social Pulse\n")
			fmt.Fprintf(out, "  Version:    %s\n", version)
			fmt.Fprintf(out, "  Commit:     %s\n", commit)
			fmt.Fprintf(out, "  Built:      %s\n", buildTime)
			fmt.Fprintf(out, "  Go version: %s\n", goVersion)
		},
	}
}

// withRuntime loads the configuration and logger shared by every surface,
// then runs fn.
func withRuntime(cmd *cobra.Command, fn func(cliConfig, *zap.Logger) error) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("command", cmd.Name()),
		zap.String("version", version),
		zap.String("config", cfg.ConfigPath),
	)
	return fn(cfg, logger)
}
