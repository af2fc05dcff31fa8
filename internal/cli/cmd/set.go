package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/application/usecase"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/logging"
)

var (
	setPacking bool
	setOutput  string
)

var setCmd = &cobra.Command{
	Use:   "set FILE WIDGET PROPERTY VALUE",
	Short: "Set a widget property",
	Long: `Set a property of a widget and print the widget.

Object properties take widget names separated by spaces. Properties that
can only be set at construction rebuild the widget, keeping its children.
Use --packing for properties the parent container defines.`,
	Example: `  shade set main.yaml window1 title "Preferences" -o main.yaml
  shade set main.yaml box1 orientation vertical
  shade set main.yaml label1 expand false --packing`,
	Args: cobra.ExactArgs(4),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.Flags().BoolVar(&setPacking, "packing", false, "set a packing property")
	setCmd.Flags().StringVarP(&setOutput, "output", "o", "", "write the document to this file")
}

func runSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithPath(a.Ctx(), args[0])

	doc, err := loadDocument(ctx, a, args[0])
	if err != nil {
		return err
	}

	out, err := a.SetPropertyUC.Execute(ctx, usecase.SetPropertyInput{
		Project:  doc,
		Widget:   args[1],
		Property: args[2],
		Value:    args[3],
		Packing:  setPacking,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if out.Rebuilt {
		fmt.Fprintln(w, a.Theme.WarningStyle.Render(styles.IconWrench+" "+out.Node.Name()+" rebuilt"))
	}
	r := styles.NewTreeRenderer(a.Theme, a.Session)
	r.ShowProperties = true
	fmt.Fprintln(w, r.RenderNode(out.Node))

	if err := saveDocument(ctx, a, doc, setOutput); err != nil {
		return err
	}
	if setOutput != "" {
		fmt.Fprintln(w, a.Theme.SuccessStyle.Render(styles.IconCheck+" saved "+setOutput))
	}
	return nil
}
