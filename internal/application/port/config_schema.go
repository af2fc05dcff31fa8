package port

import "github.com/bnema/shade/internal/domain/entity"

// ConfigSchemaProvider lists the configuration keys shade understands.
type ConfigSchemaProvider interface {
	// Keys returns every key, grouped by section in display order.
	Keys() []entity.ConfigKey
}
