// Package cmd provides the Cobra CLI for walletnet.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/net2share/go-corelib/tui"
	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/handlers"
	"github.com/net2share/walletnet/internal/menu"
	"github.com/spf13/cobra"
)

// Version and BuildTime are set at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "walletnet",
	Short: "Wallet network settings",
	Long:  "Wallet network settings - server, transport and proxy selection",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
			return cmd.Help()
		}

		menu.Version = Version
		menu.BuildTime = BuildTime
		tui.SetAppInfo("walletnet", Version, BuildTime)
		tui.BeginSession()
		defer tui.EndSession()

		return menu.RunInteractive()
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Register all action-based commands
	RegisterActionsWithRoot(rootCmd)
}

// setupLogging migrates a legacy config and installs the default logger at
// the level from --log-level or the config file.
func setupLogging(cmd *cobra.Command) error {
	cfg, err := config.LoadOrMigrate()
	if err != nil {
		slog.Warn("failed to load config", "err", err)
		cfg = config.Default()
	}

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if level == "" {
		level = "info"
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersionInfo sets version information for the CLI.
func SetVersionInfo(version, buildTime string) {
	Version = version
	BuildTime = buildTime
	handlers.AppVersion = version
	rootCmd.Version = version + " (built " + buildTime + ")"
}
