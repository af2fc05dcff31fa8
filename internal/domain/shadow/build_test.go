package shadow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
)

func TestSession_Create(t *testing.T) {
	t.Run("generates names from the class", func(t *testing.T) {
		f := newFixture(t)

		first := f.create(t, "Box", nil)
		second := f.create(t, "Box", nil)

		assert.Equal(t, "box1", first.Name())
		assert.Equal(t, "box2", second.Name())
	})

	t.Run("uses the requested name while it is free", func(t *testing.T) {
		f := newFixture(t)

		// Arrange
		main, err := f.session.Create("Window", shadow.BuildOptions{Name: "main", Document: f.doc})
		require.NoError(t, err)
		f.doc.AddNode(main)

		// Act
		clash, err := f.session.Create("Window", shadow.BuildOptions{Name: "main", Document: f.doc})
		require.NoError(t, err)

		// Assert
		assert.Equal(t, "main", main.Name())
		assert.Equal(t, "window1", clash.Name())
	})

	t.Run("applies catalog defaults for user creations", func(t *testing.T) {
		f := newFixture(t)

		label := f.create(t, "Label", nil)
		box := f.create(t, "Box", nil)

		v, ok := label.PropertyValue("label")
		require.True(t, ok)
		assert.Equal(t, "label", v)
		assert.False(t, label.PropertyIsOriginalDefault("label"))

		size, _ := box.PropertyValue("size")
		assert.Equal(t, 3, size)
		assert.Len(t, live(box).Children(), 3)
		assert.Equal(t, 3, placeholders(live(box)))
	})

	t.Run("leaves values alone for other reasons", func(t *testing.T) {
		f := newFixture(t)

		box, err := f.session.Create("Box", shadow.BuildOptions{Document: f.doc, Reason: entity.CreateLoad})
		require.NoError(t, err)

		assert.Empty(t, live(box).Children())
		w, h := f.tk.Size(box.Object())
		assert.Zero(t, w)
		assert.Zero(t, h)
	})

	t.Run("sizes toplevels and gives them a slot", func(t *testing.T) {
		f := newFixture(t)

		window := f.create(t, "Window", nil)

		w, h := window.SizeHint()
		assert.Equal(t, 440, w)
		assert.Equal(t, 250, h)
		lw, lh := f.tk.Size(window.Object())
		assert.Equal(t, 440, lw)
		assert.Equal(t, 250, lh)
		assert.Equal(t, 1, placeholders(live(window)))
		assert.True(t, window.Visible())
		assert.True(t, live(window).Visible())
	})

	t.Run("wraps internal children", func(t *testing.T) {
		f := newFixture(t)

		dialog := f.create(t, "Dialog", nil)

		children := dialog.Children()
		require.Len(t, children, 2)
		vbox := children[0]
		assert.Equal(t, "dialog1-vbox", vbox.Name())
		assert.Equal(t, "vbox", vbox.Internal())
		assert.True(t, vbox.IsInternal())
		assert.Same(t, dialog, vbox.Parent())
		assert.Equal(t, 3, placeholders(live(vbox)))
		assert.True(t, f.doc.HasNode(vbox))

		obj, ok := dialog.Adaptor().InternalChild(dialog.Object(), "action_area")
		require.True(t, ok)
		area := f.session.NodeForObject(obj)
		require.NotNil(t, area)
		assert.Same(t, children[1], area)
		assert.True(t, area.Anarchist())
		assert.Equal(t, "dialog1-action_area", area.Name())
		assert.Empty(t, area.PackingProperties())
		assert.Empty(t, area.PackingActions())
		assert.True(t, f.doc.HasNode(area))
		assert.NotContains(t, live(dialog).Slots(), live(area))
		assert.True(t, dialog.HasDescendant("Container"))
	})

	t.Run("fails on unknown classes", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.session.Create("Spinner", shadow.BuildOptions{Document: f.doc})

		assert.ErrorIs(t, err, shadow.ErrUnknownClass)
	})
}

func TestSession_AddChild(t *testing.T) {
	t.Run("takes the place of a placeholder", func(t *testing.T) {
		f := newFixture(t)

		window := f.create(t, "Window", nil)
		box := f.create(t, "Box", window)

		kids := live(window).Children()
		require.Len(t, kids, 1)
		assert.Same(t, live(box), kids[0])
		assert.Same(t, window, box.Parent())
		assert.Same(t, window, box.Toplevel())
		assert.True(t, window.IsAncestorOf(box))
		assert.Empty(t, box.PackingProperties())
	})

	t.Run("applies packing defaults per child class", func(t *testing.T) {
		f := newFixture(t)

		box := f.create(t, "Box", nil)
		label := f.create(t, "Label", box)
		entry := f.create(t, "Entry", box)

		expand, ok := label.PackPropertyValue("expand")
		require.True(t, ok)
		assert.Equal(t, true, expand)
		fill, _ := label.PackPropertyValue("fill")
		assert.Equal(t, true, fill)
		expand, _ = entry.PackPropertyValue("expand")
		assert.Equal(t, false, expand)

		got, ok := live(label).ChildValue("expand")
		require.True(t, ok)
		assert.Equal(t, true, got)
	})

	t.Run("keeps the slot count of the container", func(t *testing.T) {
		f := newFixture(t)

		box := f.create(t, "Box", nil)
		f.create(t, "Label", box)

		assert.Len(t, live(box).Children(), 3)
		assert.Equal(t, 2, placeholders(live(box)))
	})

	t.Run("exposes packing actions of the container", func(t *testing.T) {
		f := newFixture(t)

		box := f.create(t, "Box", nil)
		label := f.create(t, "Label", box)

		assert.NotNil(t, label.PackAction("insert_before"))
		assert.NotNil(t, label.Action("edit/copy"))
		assert.True(t, label.RemovePackAction("remove_slot"))
		assert.Nil(t, label.PackAction("remove_slot"))
	})
}

func TestPlaceholderRelation(t *testing.T) {
	f := newFixture(t)

	window := f.create(t, "Window", nil)
	box := f.create(t, "Box", window)
	dialog := f.create(t, "Dialog", nil)

	assert.True(t, shadow.PlaceholderRelation(window, box))
	assert.False(t, shadow.PlaceholderRelation(box, dialog))
	assert.False(t, shadow.PlaceholderRelation(dialog, box))
}
