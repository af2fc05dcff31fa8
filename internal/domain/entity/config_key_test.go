package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigKey_Name(t *testing.T) {
	assert.Equal(t, "exact_on_cut", ConfigKey{Key: "clipboard.exact_on_cut"}.Name())
	assert.Equal(t, "flat", ConfigKey{Key: "flat"}.Name())
}

func TestConfigKey_Accepts(t *testing.T) {
	level := ConfigKey{Key: "logging.level", Values: []string{"info", "debug"}}
	assert.True(t, level.Accepts("debug"))
	assert.False(t, level.Accepts("fatal"))
	assert.True(t, ConfigKey{Key: "document.name"}.Accepts("anything"))
}

func TestGroupConfigKeys(t *testing.T) {
	sections := GroupConfigKeys([]ConfigKey{
		{Key: "logging.level", Section: "Logging"},
		{Key: "catalog.paths", Section: "Catalog"},
		{Key: "logging.format", Section: "Logging"},
	})

	require.Len(t, sections, 2)
	assert.Equal(t, "Logging", sections[0].Name)
	assert.Len(t, sections[0].Keys, 2)
	assert.Equal(t, "logging.format", sections[0].Keys[1].Key)
	assert.Equal(t, "Catalog", sections[1].Name)
	assert.Empty(t, GroupConfigKeys(nil))
}
