package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/shadow"
	"github.com/bnema/shade/internal/logging"
)

// LoadInterfaceUseCase reads an interface file into a project.
type LoadInterfaceUseCase struct {
	codec   port.InterfaceCodec
	session *shadow.Session
}

// NewLoadInterfaceUseCase creates a new LoadInterfaceUseCase.
func NewLoadInterfaceUseCase(codec port.InterfaceCodec, session *shadow.Session) *LoadInterfaceUseCase {
	return &LoadInterfaceUseCase{
		codec:   codec,
		session: session,
	}
}

// LoadInterfaceInput contains the parameters for loading.
type LoadInterfaceInput struct {
	Path    string
	Project port.Project
}

// LoadInterfaceOutput lists the toplevels added to the project.
type LoadInterfaceOutput struct {
	Toplevels []*shadow.Node
}

// Execute decodes the file and builds every toplevel it declares. Toplevels
// that fail to build are skipped; the others are still added and the
// failures are reported together.
func (uc *LoadInterfaceUseCase) Execute(ctx context.Context, input LoadInterfaceInput) (*LoadInterfaceOutput, error) {
	ctx = logging.WithPath(ctx, input.Path)
	log := logging.FromContext(ctx)

	iface, err := uc.codec.ReadFile(ctx, input.Path)
	if err != nil {
		return nil, fmt.Errorf("load interface: %w", err)
	}

	nodes, readErr := uc.session.ReadInterface(input.Project, iface)
	for _, n := range nodes {
		input.Project.AddNode(n)
	}

	log.Info().
		Int("toplevels", len(nodes)).
		Str("document", input.Project.Name()).
		Msg("interface loaded")

	out := &LoadInterfaceOutput{Toplevels: nodes}
	if readErr != nil {
		return out, fmt.Errorf("load interface: %w", readErr)
	}
	return out, nil
}
