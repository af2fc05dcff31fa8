package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []ChangeFunc
	watching  bool
}

// NewManager creates a new configuration manager. An explicit file path
// replaces the search in the config directory and the working directory.
func NewManager(file string) (*Manager, error) {
	v := viper.New()

	v.SetConfigType("toml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	// SHADE_CATALOG_WATCH, SHADE_DOCUMENT_NAME, ...
	v.SetEnvPrefix("SHADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SHADE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SHADE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]ChangeFunc, 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file in the search path is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w\nCheck the file format (must be valid TOML) and permissions", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}

	paths := make([]string, 0, len(config.Catalog.Paths))
	for _, p := range config.Catalog.Paths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	config.Catalog.Paths = paths

	config.Document.Name = strings.TrimSpace(config.Document.Name)
	if config.Document.Name == "" {
		config.Document.Name = DefaultConfig().Document.Name
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Catalog.Paths = append([]string(nil), m.config.Catalog.Paths...)
	return &configCopy
}

// ConfigFileUsed returns the file the configuration was read from, or an
// empty string when only defaults and the environment apply.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}
