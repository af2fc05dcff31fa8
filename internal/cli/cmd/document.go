package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/shade/internal/application/usecase"
	"github.com/bnema/shade/internal/cli"
	"github.com/bnema/shade/internal/infrastructure/project"
	"github.com/bnema/shade/internal/logging"
)

// loadDocument reads path into a new document. Widgets that fail to load
// are logged and skipped.
func loadDocument(ctx context.Context, a *cli.App, path string) (*project.Document, error) {
	doc := a.NewDocument()
	_, err := a.LoadInterfaceUC.Execute(ctx, usecase.LoadInterfaceInput{Path: path, Project: doc})
	if err != nil {
		if doc.Len() == 0 {
			return nil, err
		}
		logging.FromContext(ctx).Warn().Err(err).Str("path", path).Msg("interface loaded partially")
	}
	return doc, nil
}

// saveDocument writes doc to path when path is set.
func saveDocument(ctx context.Context, a *cli.App, doc *project.Document, path string) error {
	if path == "" {
		return nil
	}
	if _, err := a.SaveInterfaceUC.Execute(ctx, usecase.SaveInterfaceInput{Path: path, Project: doc}); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
