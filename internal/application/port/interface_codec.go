package port

import (
	"context"

	"github.com/bnema/shade/internal/domain/entity"
)

// InterfaceCodec reads and writes serialized interface documents.
type InterfaceCodec interface {
	// ReadFile parses the interface document at path.
	ReadFile(ctx context.Context, path string) (*entity.Interface, error)

	// WriteFile stores iface at path, replacing any existing file.
	WriteFile(ctx context.Context, path string, iface *entity.Interface) error
}
