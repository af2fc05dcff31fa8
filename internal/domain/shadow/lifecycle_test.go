package shadow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Destroy(t *testing.T) {
	t.Run("releases the whole subtree", func(t *testing.T) {
		f := newFixture(t)
		window, box, label := sampleTree(t, f)
		obj := live(window)

		f.session.Destroy(window)

		assert.True(t, window.Destroyed())
		assert.True(t, box.Destroyed())
		assert.True(t, label.Destroyed())
		assert.Nil(t, window.Object())
		assert.Zero(t, label.Signals().Len())
		assert.Zero(t, f.session.Registry().Len())
		assert.True(t, obj.Destroyed())
	})

	t.Run("leaves internal objects to their owner", func(t *testing.T) {
		f := newFixture(t)
		dialog := f.create(t, "Dialog", nil)
		vbox := dialog.Children()[0]
		obj := live(vbox)

		f.session.Destroy(vbox)

		assert.True(t, vbox.Destroyed())
		assert.False(t, obj.Destroyed())
		assert.Nil(t, f.session.NodeForObject(obj))
	})

	t.Run("releases widgets inside anarchist internal children", func(t *testing.T) {
		f := newFixture(t)
		dialog := f.create(t, "Dialog", nil)
		area := dialog.Children()[1]
		button := f.create(t, "Button", area)
		obj := live(button)

		f.session.Destroy(dialog)

		assert.True(t, area.Destroyed())
		assert.True(t, button.Destroyed())
		assert.True(t, obj.Destroyed())
		assert.Zero(t, f.session.Registry().Len())
	})

	t.Run("drops references held by released nodes", func(t *testing.T) {
		f := newFixture(t)
		_, box, label := sampleTree(t, f)
		entry := f.create(t, "Entry", box)
		require.True(t, label.SetPropertyValue("mnemonic-widget", entry.Object()))
		require.Len(t, entry.PropRefs(), 1)

		f.session.Destroy(label)

		assert.Empty(t, entry.PropRefs())
	})
}

func TestSession_ShowHide(t *testing.T) {
	f := newFixture(t)
	label := f.create(t, "Label", nil)

	f.session.Hide(label)
	assert.False(t, label.Visible())
	assert.False(t, live(label).Visible())

	f.session.Show(label)
	assert.True(t, label.Visible())
	assert.True(t, live(label).Visible())
}

func TestSession_Superuser(t *testing.T) {
	f := newFixture(t)

	f.session.PushSuperuser()
	f.session.PushSuperuser()
	f.session.PopSuperuser()
	assert.True(t, f.session.Superuser())
	f.session.PopSuperuser()
	assert.False(t, f.session.Superuser())

	// Popping an empty stack is logged and recovered.
	f.session.PopSuperuser()
	assert.False(t, f.session.Superuser())
	f.session.PushSuperuser()
	assert.True(t, f.session.Superuser())
}
