package entity

import "strings"

// ConfigKey documents one configuration key, as listed by `shade config keys`.
type ConfigKey struct {
	// Key is the dotted path, e.g. "catalog.paths".
	Key         string   `json:"key"`
	Type        string   `json:"type"`
	Default     string   `json:"default"`
	Description string   `json:"description"`
	Values      []string `json:"values,omitempty"`
	// Env names an environment variable that overrides the key, if any.
	Env     string `json:"env,omitempty"`
	Section string `json:"section"`
}

// Name returns the key without its section prefix.
func (k ConfigKey) Name() string {
	if i := strings.LastIndexByte(k.Key, '.'); i >= 0 {
		return k.Key[i+1:]
	}
	return k.Key
}

// Accepts reports whether value is allowed for an enumerated key.
// Keys without values accept anything.
func (k ConfigKey) Accepts(value string) bool {
	if len(k.Values) == 0 {
		return true
	}
	for _, v := range k.Values {
		if v == value {
			return true
		}
	}
	return false
}

// ConfigSection is a run of keys sharing a section.
type ConfigSection struct {
	Name string
	Keys []ConfigKey
}

// GroupConfigKeys groups keys by section, keeping sections in order of first
// appearance.
func GroupConfigKeys(keys []ConfigKey) []ConfigSection {
	var sections []ConfigSection
	index := make(map[string]int)
	for _, k := range keys {
		i, ok := index[k.Section]
		if !ok {
			i = len(sections)
			index[k.Section] = i
			sections = append(sections, ConfigSection{Name: k.Section})
		}
		sections[i].Keys = append(sections[i].Keys, k)
	}
	return sections
}
