package config

import (
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ChangeFunc receives the configuration before and after a reload.
type ChangeFunc func(prev, cur *Config)

// Watch reloads the config file whenever it changes on disk. A file that
// fails to parse or validate is logged and the previous configuration kept.
func (m *Manager) Watch(logger zerolog.Logger) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}

	log := logger.With().Str("component", "config").Logger()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")
		prev, cur, err := m.reload()
		if err != nil {
			log.Warn().Err(err).Msg("config reload rejected")
			return
		}
		m.notify(prev, cur)
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers fn for every successful reload.
func (m *Manager) OnConfigChange(fn ChangeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

func (m *Manager) notify(prev, cur *Config) {
	m.mu.RLock()
	callbacks := slices.Clone(m.callbacks)
	m.mu.RUnlock()
	for _, fn := range callbacks {
		fn(prev, cur)
	}
}

func (m *Manager) reload() (prev, cur *Config, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, nil, err
	}
	cur, err = m.unmarshalConfig()
	if err != nil {
		return nil, nil, err
	}
	normalizeConfig(cur)
	if err := validateConfig(cur); err != nil {
		return nil, nil, err
	}
	prev, m.config = m.config, cur
	if prev == nil {
		prev = DefaultConfig()
	}
	return prev, cur, nil
}

// CatalogChanged reports whether a reload touched the catalog section.
func CatalogChanged(prev, cur *Config) bool {
	return prev.Catalog.Builtin != cur.Catalog.Builtin ||
		!slices.Equal(prev.Catalog.Paths, cur.Catalog.Paths)
}
