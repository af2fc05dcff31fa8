package config

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Paths:   []string{},
			Watch:   false,
			Builtin: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Document: DocumentConfig{
			Name: "untitled",
		},
		Clipboard: ClipboardConfig{
			ExactOnCut: true,
		},
	}
}

// setDefaults registers every default with viper so that environment
// variables can override keys missing from the file.
func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("catalog.paths", d.Catalog.Paths)
	m.viper.SetDefault("catalog.watch", d.Catalog.Watch)
	m.viper.SetDefault("catalog.builtin", d.Catalog.Builtin)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)

	m.viper.SetDefault("document.name", d.Document.Name)

	m.viper.SetDefault("clipboard.exact_on_cut", d.Clipboard.ExactOnCut)
}
