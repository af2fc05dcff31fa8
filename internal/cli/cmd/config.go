package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/application/usecase"
	"github.com/bnema/shade/internal/cli/styles"
)

var (
	configSection string
	configJSON    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List configuration keys with their defaults",
	RunE:  runConfigKeys,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		used := a.ConfigManager.ConfigFileUsed()
		if used == "" {
			used = a.Theme.Subtle.Render("no config file, using defaults")
		}
		fmt.Fprintln(cmd.OutOrStdout(), used)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configPathCmd)
	configKeysCmd.Flags().StringVar(&configSection, "section", "", "only show one section")
	configKeysCmd.Flags().BoolVar(&configJSON, "json", false, "output as JSON")
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	out, err := a.GetConfigSchemaUC.Execute(a.Ctx(), usecase.GetConfigSchemaInput{Section: configSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(a.Theme)
	if configJSON {
		data, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), data)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(out.Keys))
	return nil
}
