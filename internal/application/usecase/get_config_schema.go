package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

// GetConfigSchemaUseCase lists the configuration keys, optionally one section only.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{provider: provider}
}

type GetConfigSchemaInput struct {
	// Section is matched case-insensitively. Empty means every section.
	Section string
}

type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKey
	Sections []entity.ConfigSection
}

// Execute returns ErrUnknownSection when Section names no known section.
func (uc *GetConfigSchemaUseCase) Execute(ctx context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	sections := entity.GroupConfigKeys(uc.provider.Keys())
	if input.Section != "" {
		sections = pickSection(sections, input.Section)
		if len(sections) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, input.Section)
		}
	}

	out := &GetConfigSchemaOutput{Keys: []entity.ConfigKey{}, Sections: sections}
	for _, s := range sections {
		out.Keys = append(out.Keys, s.Keys...)
	}
	logging.FromContext(ctx).Debug().
		Int("sections", len(sections)).
		Int("keys", len(out.Keys)).
		Msg("config schema listed")
	return out, nil
}

func pickSection(sections []entity.ConfigSection, name string) []entity.ConfigSection {
	for _, s := range sections {
		if strings.EqualFold(s.Name, name) {
			return []entity.ConfigSection{s}
		}
	}
	return nil
}
