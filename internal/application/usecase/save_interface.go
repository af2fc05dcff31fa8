package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
	"github.com/bnema/shade/internal/logging"
)

// SaveInterfaceUseCase writes the toplevels of a project to a file.
type SaveInterfaceUseCase struct {
	codec   port.InterfaceCodec
	session *shadow.Session
}

// NewSaveInterfaceUseCase creates a new SaveInterfaceUseCase.
func NewSaveInterfaceUseCase(codec port.InterfaceCodec, session *shadow.Session) *SaveInterfaceUseCase {
	return &SaveInterfaceUseCase{
		codec:   codec,
		session: session,
	}
}

// SaveInterfaceInput contains the parameters for saving.
type SaveInterfaceInput struct {
	Path    string
	Project port.Project
}

// SaveInterfaceOutput returns what was written.
type SaveInterfaceOutput struct {
	Interface *entity.Interface
}

// Execute serializes every toplevel in project order and stores the result.
func (uc *SaveInterfaceUseCase) Execute(ctx context.Context, input SaveInterfaceInput) (*SaveInterfaceOutput, error) {
	ctx = logging.WithPath(ctx, input.Path)
	log := logging.FromContext(ctx)

	iface := uc.session.WriteInterface(input.Project.Toplevels())
	if err := uc.codec.WriteFile(ctx, input.Path, iface); err != nil {
		return nil, fmt.Errorf("save interface: %w", err)
	}

	log.Info().Int("toplevels", len(iface.Toplevels)).Msg("interface saved")
	return &SaveInterfaceOutput{Interface: iface}, nil
}
