package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/logging"
)

var treeProps bool

var treeCmd = &cobra.Command{
	Use:   "tree FILE",
	Short: "Print the widget tree of an interface file",
	Long: `Load an interface file and print its widgets as a tree.

Placeholders (empty container slots) are shown in place. With --props,
changed properties, packing values and signal handlers are listed under
each widget.`,
	Args: cobra.ExactArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().BoolVarP(&treeProps, "props", "p", false, "show changed properties and signals")
}

func runTree(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithPath(a.Ctx(), args[0])

	doc, err := loadDocument(ctx, a, args[0])
	if err != nil {
		return err
	}

	r := styles.NewTreeRenderer(a.Theme, a.Session)
	r.ShowProperties = treeProps
	fmt.Fprintln(cmd.OutOrStdout(), r.Render(filepath.Base(args[0]), doc.Toplevels()))
	return nil
}
