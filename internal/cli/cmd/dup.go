package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/application/usecase"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/logging"
)

var (
	dupCut    bool
	dupPaste  bool
	dupInto   string
	dupOutput string
)

var dupCmd = &cobra.Command{
	Use:   "dup FILE WIDGET",
	Short: "Duplicate a widget subtree through the clipboard",
	Long: `Copy (or cut) a widget with all its children and print the copy.

A copy gets fresh names and no signal handlers. A cut removes the widget
from the document and keeps an exact copy, signal handlers included.
With --paste the clipboard content is pasted back, into the free slot of
--into or as a new toplevel, and -o writes the resulting document.`,
	Example: `  shade dup main.yaml label1
  shade dup main.yaml label1 --paste --into box1 -o main.yaml
  shade dup main.yaml window1 --cut --paste`,
	Args: cobra.ExactArgs(2),
	RunE: runDup,
}

func init() {
	rootCmd.AddCommand(dupCmd)
	dupCmd.Flags().BoolVar(&dupCut, "cut", false, "cut the widget instead of copying it")
	dupCmd.Flags().BoolVar(&dupPaste, "paste", false, "paste the clipboard content back into the document")
	dupCmd.Flags().StringVar(&dupInto, "into", "", "parent widget to paste into")
	dupCmd.Flags().StringVarP(&dupOutput, "output", "o", "", "write the document to this file")
}

func runDup(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithPath(a.Ctx(), args[0])

	doc, err := loadDocument(ctx, a, args[0])
	if err != nil {
		return err
	}

	input := usecase.ClipboardInput{Project: doc, Widget: args[1]}
	if dupCut {
		_, err = a.ClipboardUC.Cut(ctx, input)
	} else {
		_, err = a.ClipboardUC.Copy(ctx, input)
	}
	if err != nil {
		return err
	}

	shown := a.ClipboardUC.Content()
	if dupPaste {
		shown, err = a.ClipboardUC.Paste(ctx, usecase.PasteInput{Project: doc, Parent: dupInto})
		if err != nil {
			return err
		}
	}

	r := styles.NewTreeRenderer(a.Theme, a.Session)
	r.ShowProperties = true
	fmt.Fprintln(cmd.OutOrStdout(), r.RenderNode(shown))

	if err := saveDocument(ctx, a, doc, dupOutput); err != nil {
		return err
	}
	if dupOutput != "" {
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.SuccessStyle.Render(styles.IconCheck+" saved "+dupOutput))
	}
	return nil
}
