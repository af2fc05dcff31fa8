package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Logging.Level = "fatal" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "no catalog at all",
			mutate:  func(c *Config) { c.Catalog.Builtin = false },
			wantErr: "catalog.paths",
		},
		{
			name: "only user catalogs",
			mutate: func(c *Config) {
				c.Catalog.Builtin = false
				c.Catalog.Paths = []string{"widgets.yaml"}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSchemaProvider_Keys(t *testing.T) {
	keys := NewSchemaProvider().Keys()

	byKey := make(map[string]string, len(keys))
	for _, k := range keys {
		byKey[k.Key] = k.Default
		assert.NotEmpty(t, k.Section, k.Key)
		assert.NotEmpty(t, k.Description, k.Key)
	}
	assert.Equal(t, "info", byKey["logging.level"])
	assert.Equal(t, "true", byKey["clipboard.exact_on_cut"])
	assert.Equal(t, "untitled", byKey["document.name"])
	assert.Contains(t, byKey, "catalog.paths")
}
