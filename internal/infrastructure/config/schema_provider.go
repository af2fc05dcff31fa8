package config

import (
	"fmt"
	"strings"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionCatalog   = "Catalog"
	SectionLogging   = "Logging"
	SectionDocument  = "Document"
	SectionClipboard = "Clipboard"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// Keys returns every key in display order: catalog, logging, document, clipboard.
func (p *SchemaProvider) Keys() []entity.ConfigKey {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKey, 0, 8)
	keys = append(keys, p.getCatalogKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDocumentKeys(defaults)...)
	keys = append(keys, p.getClipboardKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getCatalogKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "catalog.paths",
			Type:        "[]string",
			Default:     strings.Join(defaults.Catalog.Paths, ","),
			Description: "Catalog files or directories loaded after the builtin catalog",
			Section:     SectionCatalog,
		},
		{
			Key:         "catalog.watch",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Catalog.Watch),
			Description: "Reload catalogs when their files change",
			Section:     SectionCatalog,
		},
		{
			Key:         "catalog.builtin",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Catalog.Builtin),
			Description: "Include the embedded base catalog",
			Section:     SectionCatalog,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Env:         "SHADE_LOG_LEVEL",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"text", "json", "console"},
			Env:         "SHADE_LOG_FORMAT",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDocumentKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "document.name",
			Type:        "string",
			Default:     defaults.Document.Name,
			Description: "Name of documents that are not read from a file",
			Section:     SectionDocument,
		},
	}
}

func (*SchemaProvider) getClipboardKeys(defaults *Config) []entity.ConfigKey {
	return []entity.ConfigKey{
		{
			Key:         "clipboard.exact_on_cut",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Clipboard.ExactOnCut),
			Description: "Keep signal handlers on widgets that are cut and pasted",
			Section:     SectionClipboard,
		},
	}
}
