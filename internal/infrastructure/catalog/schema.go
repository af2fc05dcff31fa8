package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of catalog files, for editor completion.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&File{})

	schema.ID = "https://github.com/bnema/shade/catalog.schema.json"
	schema.Title = "Shade Widget Catalog"
	schema.Description = "Widget class metadata consumed by the shade interface editor"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
