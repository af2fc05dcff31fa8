package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/infrastructure/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect widget catalogs",
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of catalog files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := catalog.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var catalogClassesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the loaded widget classes",
	RunE:  runCatalogClasses,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogSchemaCmd)
	catalogCmd.AddCommand(catalogClassesCmd)
}

func runCatalogClasses(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	t := a.Theme
	for _, class := range a.Catalog.Classes() {
		line := t.WidgetName.Render(class.Name)
		if class.Parent != "" {
			line += " " + t.Subtle.Render("< "+class.Parent)
		}
		var tags []string
		if class.Toplevel {
			tags = append(tags, "toplevel")
		}
		if class.UsePlaceholders {
			tags = append(tags, "placeholders")
		}
		if len(tags) > 0 {
			line += " " + t.MutedBadge(strings.Join(tags, " "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
