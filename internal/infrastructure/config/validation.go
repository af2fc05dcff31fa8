package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateCatalog(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	keys := NewSchemaProvider().Keys()
	for _, kv := range []struct{ key, value string }{
		{"logging.level", config.Logging.Level},
		{"logging.format", config.Logging.Format},
	} {
		if kv.value == "" {
			continue
		}
		for _, k := range keys {
			if k.Key == kv.key && !k.Accepts(kv.value) {
				validationErrors = append(validationErrors, fmt.Sprintf(
					"%s must be one of: %s (got: %s)",
					k.Key, strings.Join(k.Values, ", "), kv.value,
				))
			}
		}
	}
	return validationErrors
}

func validateCatalog(config *Config) []string {
	if !config.Catalog.Builtin && len(config.Catalog.Paths) == 0 {
		return []string{"catalog.paths must not be empty when catalog.builtin is false"}
	}
	return nil
}
