package shadow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
)

// sampleTree builds window1 > box1 > [placeholder, placeholder, label1].
func sampleTree(t *testing.T, f *fixture) (window, box, label *shadow.Node) {
	t.Helper()
	window = f.create(t, "Window", nil)
	box = f.create(t, "Box", window)
	label = f.create(t, "Label", box)

	require.True(t, window.SetPropertyValue("title", "Main"))
	require.True(t, label.SetPackPropertyValue("padding", 4))
	f.session.AddSignalHandler(label, &entity.Signal{Name: "activate-link", Handler: "on_link"})
	return window, box, label
}

func TestSession_Duplicate(t *testing.T) {
	t.Run("copies the subtree", func(t *testing.T) {
		f := newFixture(t)
		window, _, _ := sampleTree(t, f)

		// Act
		dup := f.session.Duplicate(window, true)

		// Assert
		require.NotNil(t, dup)
		assert.Equal(t, "window1", dup.Name())
		assert.False(t, f.doc.HasNode(dup))
		assert.NotSame(t, window.Object(), dup.Object())
		title, _ := dup.PropertyValue("title")
		assert.Equal(t, "Main", title)

		w, h := f.tk.Size(dup.Object())
		assert.Equal(t, 440, w)
		assert.Equal(t, 250, h)

		boxes := dup.Children()
		require.Len(t, boxes, 1)
		assert.Equal(t, "box1", boxes[0].Name())
		kids := live(boxes[0]).Children()
		require.Len(t, kids, 3)
		assert.True(t, kids[0].IsPlaceholder())
		assert.True(t, kids[1].IsPlaceholder())

		labels := boxes[0].Children()
		require.Len(t, labels, 1)
		padding, _ := labels[0].PackPropertyValue("padding")
		assert.Equal(t, 4, padding)
		got, _ := live(labels[0]).ChildValue("padding")
		assert.Equal(t, 4, got)
		assert.Equal(t, "label1", labels[0].Name())
		assert.False(t, f.session.Superuser())
	})

	t.Run("names a plain copy with free names", func(t *testing.T) {
		f := newFixture(t)
		window, _, _ := sampleTree(t, f)

		dup := f.session.Duplicate(window, false)

		require.NotNil(t, dup)
		assert.Equal(t, "window2", dup.Name())
		boxes := dup.Children()
		require.Len(t, boxes, 1)
		assert.Equal(t, "box2", boxes[0].Name())
		labels := boxes[0].Children()
		require.Len(t, labels, 1)
		assert.Equal(t, "label2", labels[0].Name())
	})

	t.Run("an exact copy takes free names when added", func(t *testing.T) {
		f := newFixture(t)
		window, _, _ := sampleTree(t, f)

		dup := f.session.Duplicate(window, true)
		f.doc.AddNode(dup)

		assert.NotEqual(t, "window1", dup.Name())
		assert.Same(t, window, f.doc.NodeByName("window1"))
		box := dup.Children()[0]
		assert.NotEqual(t, "box1", box.Name())
		assert.Same(t, box, f.doc.NodeByName(box.Name()))
	})

	t.Run("copies the live size of every widget", func(t *testing.T) {
		f := newFixture(t)
		_, box, label := sampleTree(t, f)
		f.tk.SetSize(label.Object(), 120, 32)
		f.tk.SetSize(box.Object(), 300, 90)

		dupLabel := f.session.Duplicate(label, false)
		dupBox := f.session.Duplicate(box, false)

		w, h := f.tk.Size(dupLabel.Object())
		assert.Equal(t, 120, w)
		assert.Equal(t, 32, h)
		w, h = f.tk.Size(dupBox.Object())
		assert.Equal(t, 300, w)
		assert.Equal(t, 90, h)
	})

	t.Run("carries signals only when exact", func(t *testing.T) {
		f := newFixture(t)
		_, _, label := sampleTree(t, f)

		exact := f.session.Duplicate(label, true)
		plain := f.session.Duplicate(label, false)

		assert.Equal(t, 1, exact.Signals().Len())
		assert.Equal(t, "on_link", exact.Signals().All()[0].Handler)
		assert.Zero(t, plain.Signals().Len())
	})

	t.Run("rebinds internal children to the copy", func(t *testing.T) {
		f := newFixture(t)
		dialog := f.create(t, "Dialog", nil)

		dup := f.session.Duplicate(dialog, false)

		require.NotNil(t, dup)
		kids := dup.Children()
		require.Len(t, kids, 2)
		assert.Equal(t, "vbox", kids[0].Internal())
		assert.Equal(t, "dialog2-vbox", kids[0].Name())
		assert.Len(t, live(kids[0]).Children(), 3)
		assert.NotSame(t, dialog.Children()[0], kids[0])
		assert.Equal(t, "action_area", kids[1].Internal())
		assert.True(t, kids[1].Anarchist())
	})

	t.Run("copies the content of an anarchist internal child", func(t *testing.T) {
		f := newFixture(t)
		dialog := f.create(t, "Dialog", nil)
		area := dialog.Children()[1]
		button := f.create(t, "Button", area)
		require.True(t, button.SetPropertyValue("label", "OK"))
		f.session.AddSignalHandler(button, &entity.Signal{Name: "clicked", Handler: "on_ok"})

		dup := f.session.Duplicate(dialog, true)

		require.NotNil(t, dup)
		kids := dup.Children()
		require.Len(t, kids, 2)
		dupArea := kids[1]
		assert.NotSame(t, area, dupArea)
		assert.Equal(t, "dialog1-action_area", dupArea.Name())
		assert.Len(t, live(dupArea).Children(), 3)

		buttons := dupArea.Children()
		require.Len(t, buttons, 1)
		dupButton := buttons[0]
		assert.NotSame(t, button, dupButton)
		assert.Equal(t, "button1", dupButton.Name())
		assert.Same(t, dupArea, dupButton.Parent())
		label, _ := dupButton.PropertyValue("label")
		assert.Equal(t, "OK", label)
		assert.Len(t, dupButton.Signals().Handlers("clicked"), 1)
		assert.Same(t, area, button.Parent(), "the template keeps its button")
	})

	t.Run("refuses internal children without their owner", func(t *testing.T) {
		f := newFixture(t)
		dialog := f.create(t, "Dialog", nil)

		assert.Nil(t, f.session.Duplicate(dialog.Children()[0], true))
		assert.False(t, f.session.Superuser())
	})
}
