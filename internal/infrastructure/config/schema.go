// Package config loads shade settings with viper from a TOML file and
// SHADE_ environment variables.
package config

// Config holds all settings.
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog" toml:"catalog"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Document  DocumentConfig  `mapstructure:"document" toml:"document"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" toml:"clipboard"`
}

// CatalogConfig selects the widget catalogs.
type CatalogConfig struct {
	// Paths lists catalog files or directories loaded after the builtin one.
	Paths []string `mapstructure:"paths" toml:"paths"`
	// Watch reloads the catalogs when a file changes.
	Watch bool `mapstructure:"watch" toml:"watch"`
	// Builtin includes the embedded base catalog.
	Builtin bool `mapstructure:"builtin" toml:"builtin"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// DocumentConfig holds defaults for new documents.
type DocumentConfig struct {
	Name string `mapstructure:"name" toml:"name"`
}

// ClipboardConfig controls cut and paste.
type ClipboardConfig struct {
	// ExactOnCut keeps signal handlers on widgets that are cut.
	ExactOnCut bool `mapstructure:"exact_on_cut" toml:"exact_on_cut"`
}
