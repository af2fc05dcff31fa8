// Package cmd provides Cobra CLI commands for shade.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli"
	"github.com/bnema/shade/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "shade",
		Short: "Inspect and edit interface documents from the command line",
		Long: `Shade - the metadata layer of an interface designer.

Shade loads widget catalogs, reads interface documents into a tree of
shadow widgets backed by an in-memory toolkit and lets you inspect them,
duplicate subtrees and change properties before writing them back.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/shade/config.toml)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
