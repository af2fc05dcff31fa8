package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
)

const spinnerCatalog = `classes:
  - name: Spinner
    parent: Widget
    generic_name: spinner
    properties:
      - id: active
        type: bool
`

const scaleCatalog = `name: extras
classes:
  - name: Scale
    parent: Widget
    properties:
      - id: digits
        type: int
        default: 1
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParse(t *testing.T) {
	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := Parse([]byte("classes:\n  - name: W\n    colour: red\n"))
		assert.Error(t, err)
	})

	t.Run("accepts empty documents", func(t *testing.T) {
		f, err := Parse(nil)
		require.NoError(t, err)
		assert.Empty(t, f.Classes)
	})

	t.Run("decodes scalar defaults", func(t *testing.T) {
		f, err := Parse([]byte(scaleCatalog))
		require.NoError(t, err)
		assert.Equal(t, "extras", f.Name)
		assert.Equal(t, 1, f.Classes[0].Properties[0].Default)
	})
}

func TestLoader_Load(t *testing.T) {
	t.Run("reads directories in name order on top of the builtin catalog", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "10-spinner.yaml"), spinnerCatalog)
		writeFile(t, filepath.Join(dir, "20-scale.yml"), scaleCatalog)
		writeFile(t, filepath.Join(dir, "notes.txt"), "not a catalog")

		classes, err := NewLoader(zerolog.Nop()).Load(context.Background(), dir)

		require.NoError(t, err)
		spinner := classByName(t, classes, "Spinner")
		assert.NotNil(t, spinner.Property("sensitive"))
		assert.Equal(t, 1, classByName(t, classes, "Scale").Property("digits").Default)
		classByName(t, classes, "Window")
	})

	t.Run("can leave the builtin catalog out", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "standalone.yaml")
		writeFile(t, path, "classes:\n  - name: Thing\n")

		l := NewLoader(zerolog.Nop())
		l.WithBuiltin = false
		classes, err := l.Load(context.Background(), path)

		require.NoError(t, err)
		require.Len(t, classes, 1)
		assert.Equal(t, "Thing", classes[0].Name)
	})

	t.Run("fails on missing paths", func(t *testing.T) {
		_, err := NewLoader(zerolog.Nop()).Load(context.Background(), filepath.Join(t.TempDir(), "missing"))
		assert.ErrorContains(t, err, "catalog path")
	})

	t.Run("reports the broken file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "broken.yaml"), "classes: [")

		_, err := NewLoader(zerolog.Nop()).Load(context.Background(), dir)

		assert.ErrorContains(t, err, "broken.yaml")
	})

	t.Run("fails when a parent is missing without the builtin catalog", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "spinner.yaml"), spinnerCatalog)

		l := NewLoader(zerolog.Nop())
		l.WithBuiltin = false
		_, err := l.Load(context.Background(), dir)

		assert.ErrorContains(t, err, `unknown class "Widget"`)
	})
}

type stubAdaptor struct {
	shadow.Adaptor
	class *entity.WidgetClass
}

func (a stubAdaptor) Class() *entity.WidgetClass { return a.class }

func stubFactory(c *entity.WidgetClass) shadow.Adaptor { return stubAdaptor{class: c} }

func TestCatalog(t *testing.T) {
	c := New(stubFactory, []*entity.WidgetClass{{Name: "Label"}, {Name: "Box"}})

	a, ok := c.Adaptor("Label")
	require.True(t, ok)
	assert.Equal(t, "Label", a.Class().Name)
	_, ok = c.Adaptor("Window")
	assert.False(t, ok)

	names := func() []string {
		var out []string
		for _, class := range c.Classes() {
			out = append(out, class.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Box", "Label"}, names())

	c.Replace([]*entity.WidgetClass{{Name: "Window"}})
	_, ok = c.Adaptor("Label")
	assert.False(t, ok)
	assert.Equal(t, []string{"Window"}, names())
}

func TestLoader_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	writeFile(t, path, spinnerCatalog)

	l := NewLoader(zerolog.Nop())
	classes, err := l.Load(context.Background(), dir)
	require.NoError(t, err)
	cat := New(stubFactory, classes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded := make(chan struct{}, 16)
	require.NoError(t, l.Watch(ctx, cat, []string{dir}, func([]*entity.WidgetClass) {
		reloaded <- struct{}{}
	}))

	writeFile(t, path, spinnerCatalog+scaleCatalog[len("name: extras\nclasses:\n"):])

	require.Eventually(t, func() bool {
		_, ok := cat.Adaptor("Scale")
		return ok && len(reloaded) > 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Shade Widget Catalog", doc["title"])
	assert.Contains(t, string(data), "ClassSpec")
	assert.Contains(t, string(data), "generic_name")
}
