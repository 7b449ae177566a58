package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simple-file-explorer/internal/app"
	"simple-file-explorer/internal/config"
	"simple-file-explorer/internal/logger"
)

// launchOptions are the command-line overrides of the environment config
type launchOptions struct {
	roots      []string
	logLevel   string
	showHidden bool
}

func newRootCmd() *cobra.Command {
	opts := &launchOptions{}

	cmd := &cobra.Command{
		Use:   "simple-file-explorer",
		Short: "Browse drives and files in a small desktop window",
		Long: `Opens a window with a drive selector and a directory tree.

Right-click an entry to open, copy, paste or delete it. Settings are read
from EXPLORER_* environment variables; flags take precedence.`,
		Example: `  # Browse the mounted drives
  simple-file-explorer

  # Also offer a project folder in the drive list
  simple-file-explorer --root ~/projects --show-hidden`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			return run(cfg)
		},
	}

	cmd.Flags().StringSliceVar(&opts.roots, "root", nil, "Extra directory listed as a drive (repeatable)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.showHidden, "show-hidden", false, "List hidden files and folders")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// apply overrides cfg with the flags the user actually set
func (o *launchOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("root") {
		cfg.Roots = append(cfg.Roots, o.roots...)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("show-hidden") {
		cfg.ShowHidden = o.showHidden
	}
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.JSONLogs)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to start explorer: %w", err)
	}
	return application.Run()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the explorer version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.AppName, app.AppVersion)
		},
	}
}
