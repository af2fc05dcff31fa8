package memtoolkit

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
)

type classes struct {
	box, label, window, dialog *entity.WidgetClass
}

func testClasses() classes {
	box := &entity.WidgetClass{
		Name:             "Box",
		UsePlaceholders:  true,
		SizeProperty:     "size",
		PositionProperty: "position",
		Properties: []*entity.PropertyClass{
			{ID: "orientation", Type: entity.TypeEnum, Values: []string{"horizontal", "vertical"}, Default: "horizontal", OrigDefault: "horizontal", ConstructOnly: true},
			{ID: "spacing", Type: entity.TypeInt, Default: 0, OrigDefault: 0},
			{ID: "size", Type: entity.TypeInt, Virtual: true, Default: 3, OrigDefault: 0},
		},
		PackingProperties: []*entity.PropertyClass{
			{ID: "expand", Type: entity.TypeBool, Default: false, OrigDefault: false, Packing: true},
			{ID: "position", Type: entity.TypeInt, Default: 0, OrigDefault: 0, Packing: true},
		},
	}
	label := &entity.WidgetClass{
		Name:       "Label",
		Properties: []*entity.PropertyClass{{ID: "label", Type: entity.TypeString, Default: "", OrigDefault: ""}},
	}
	window := &entity.WidgetClass{
		Name:            "Window",
		Toplevel:        true,
		UsePlaceholders: true,
		DefaultWidth:    440,
		DefaultHeight:   250,
	}
	dialog := &entity.WidgetClass{
		Name:     "Dialog",
		Toplevel: true,
		InternalChildren: []entity.InternalChildClass{
			{Name: "vbox", Class: "Box"},
			{Name: "action_area", Class: "Box", Anarchist: true},
		},
	}
	return classes{box: box, label: label, window: window, dialog: dialog}
}

type mapCatalog map[string]shadow.Adaptor

func (m mapCatalog) Adaptor(name string) (shadow.Adaptor, bool) {
	a, ok := m[name]
	return a, ok
}

type harness struct {
	tk       *Toolkit
	session  *shadow.Session
	box      *Adaptor
	label    *Adaptor
	window   *Adaptor
	dialog   *Adaptor
	adaptors mapCatalog
}

func newHarness() *harness {
	c := testClasses()
	tk := New(zerolog.Nop())
	h := &harness{
		tk:     tk,
		box:    NewAdaptor(tk, c.box),
		label:  NewAdaptor(tk, c.label),
		window: NewAdaptor(tk, c.window),
		dialog: NewAdaptor(tk, c.dialog),
	}
	h.adaptors = mapCatalog{"Box": h.box, "Label": h.label, "Window": h.window, "Dialog": h.dialog}
	h.session = shadow.NewSession(h.adaptors, tk, zerolog.Nop())
	return h
}

func (h *harness) newObject(t *testing.T, a *Adaptor, params ...shadow.Param) *Object {
	t.Helper()
	obj, err := a.Instantiate(params)
	require.NoError(t, err)
	return obj.(*Object)
}

func TestToolkit_Instantiate(t *testing.T) {
	t.Run("starts from toolkit defaults", func(t *testing.T) {
		h := newHarness()

		box := h.newObject(t, h.box)

		v, ok := box.Get("orientation")
		require.True(t, ok)
		assert.Equal(t, "horizontal", v)
		_, ok = box.Get("size")
		assert.False(t, ok, "virtual properties live in the adaptor")
		assert.NotEmpty(t, box.ObjectID())
		assert.Equal(t, "Box", box.ClassName())
	})

	t.Run("applies constructor parameters", func(t *testing.T) {
		h := newHarness()

		box := h.newObject(t, h.box, shadow.Param{ID: "orientation", Value: "vertical"})

		v, _ := box.Get("orientation")
		assert.Equal(t, "vertical", v)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		h := newHarness()

		_, err := h.box.Instantiate([]shadow.Param{{ID: "orientation", Value: "diagonal"}})
		assert.ErrorContains(t, err, "construct Box")

		_, err = h.box.Instantiate([]shadow.Param{{ID: "colour", Value: "red"}})
		assert.ErrorContains(t, err, `has no property "colour"`)
	})

	t.Run("creates internal children", func(t *testing.T) {
		h := newHarness()

		dialog := h.newObject(t, h.dialog)

		kids := dialog.Children()
		require.Len(t, kids, 2)
		assert.Equal(t, "vbox", kids[0].InternalName())
		area, ok := h.dialog.InternalChild(dialog, "action_area")
		require.True(t, ok)
		assert.Same(t, area, kids[1])
		assert.Same(t, dialog, area.(*Object).Parent())
		_, ok = h.dialog.InternalChild(dialog, "missing")
		assert.False(t, ok)
	})

	t.Run("embeds anarchist internal children outside the slots", func(t *testing.T) {
		h := newHarness()
		dialog := h.newObject(t, h.dialog)
		obj, _ := h.dialog.InternalChild(dialog, "action_area")
		area := obj.(*Object)

		assert.Equal(t, []*Object{dialog.Children()[0]}, dialog.Slots())
		assert.True(t, h.dialog.HasChild(dialog, area))
		assert.Contains(t, h.dialog.Children(dialog), entity.Object(area))
		_, err := h.dialog.ChildProperty(dialog, area, "position")
		assert.ErrorContains(t, err, "without packing")
		_, ok := area.ChildValue("position")
		assert.False(t, ok)

		h.tk.Destroy(area)

		assert.True(t, area.Destroyed())
		assert.Nil(t, area.Parent())
		assert.Len(t, dialog.Children(), 1)
		assert.False(t, dialog.Destroyed())
	})

	t.Run("fails on unknown internal classes", func(t *testing.T) {
		tk := New(zerolog.Nop())
		a := NewAdaptor(tk, testClasses().dialog)

		_, err := a.Instantiate(nil)

		assert.ErrorContains(t, err, `unknown internal child class "Box"`)
	})
}

func TestAdaptor_SetProperty(t *testing.T) {
	t.Run("sets own properties", func(t *testing.T) {
		h := newHarness()
		box := h.newObject(t, h.box)

		require.NoError(t, h.box.SetProperty(h.session, box, "spacing", 6))

		v, err := h.box.Property(box, "spacing")
		require.NoError(t, err)
		assert.Equal(t, 6, v)
		assert.Error(t, h.box.SetProperty(h.session, box, "spacing", "wide"))
	})

	t.Run("refuses construct-only changes outside superuser mode", func(t *testing.T) {
		h := newHarness()
		box := h.newObject(t, h.box)

		err := h.box.SetProperty(h.session, box, "orientation", "vertical")
		assert.ErrorIs(t, err, ErrConstructOnly)

		h.session.PushSuperuser()
		defer h.session.PopSuperuser()
		assert.NoError(t, h.box.SetProperty(h.session, box, "orientation", "vertical"))
		v, _ := box.Get("orientation")
		assert.Equal(t, "horizontal", v)
	})

	t.Run("resizes with placeholders", func(t *testing.T) {
		h := newHarness()
		box := h.newObject(t, h.box)

		require.NoError(t, h.box.SetProperty(h.session, box, "size", 3))
		assert.Equal(t, 3, box.placeholderCount())
		size, err := h.box.Property(box, "size")
		require.NoError(t, err)
		assert.Equal(t, 3, size)

		require.NoError(t, h.box.SetProperty(h.session, box, "size", 1))
		assert.Len(t, box.Children(), 1)

		assert.Error(t, h.box.SetProperty(h.session, box, "size", -1))
		assert.Error(t, h.box.SetProperty(h.session, box, "size", "two"))
	})

	t.Run("never drops real children", func(t *testing.T) {
		h := newHarness()
		box := h.newObject(t, h.box)
		h.box.Add(h.session, box, h.newObject(t, h.label))

		err := h.box.SetProperty(h.session, box, "size", 0)

		assert.ErrorContains(t, err, "occupied slots")
		assert.Len(t, box.Children(), 1)
	})

	t.Run("leaves the size alone in superuser mode", func(t *testing.T) {
		h := newHarness()
		box := h.newObject(t, h.box)
		h.session.PushSuperuser()

		require.NoError(t, h.box.SetProperty(h.session, box, "size", 3))
		h.session.PopSuperuser()

		assert.Empty(t, box.Children())
	})
}

func TestAdaptor_Add(t *testing.T) {
	t.Run("takes the last placeholder", func(t *testing.T) {
		h := newHarness()
		box := h.newObject(t, h.box)
		require.NoError(t, h.box.SetProperty(h.session, box, "size", 3))
		label := h.newObject(t, h.label)

		h.box.Add(h.session, box, label)

		kids := box.Children()
		require.Len(t, kids, 3)
		assert.Same(t, label, kids[2])
		assert.Equal(t, 2, box.placeholderCount())
		assert.True(t, h.box.HasChild(box, label))
		pos, _ := label.ChildValue("position")
		assert.Equal(t, 2, pos)
	})

	t.Run("appends in superuser mode", func(t *testing.T) {
		h := newHarness()
		box := h.newObject(t, h.box)
		require.NoError(t, h.box.SetProperty(h.session, box, "size", 2))

		h.session.PushSuperuser()
		h.box.Add(h.session, box, h.newObject(t, h.label))
		h.session.PopSuperuser()

		assert.Len(t, box.Children(), 3)
	})

	t.Run("panics on a second parent", func(t *testing.T) {
		h := newHarness()
		first := h.newObject(t, h.box)
		second := h.newObject(t, h.box)
		label := h.newObject(t, h.label)
		h.box.Add(h.session, first, label)

		assert.Panics(t, func() { h.box.Add(h.session, second, label) })
	})
}

func TestAdaptor_ChildProperty(t *testing.T) {
	h := newHarness()
	box := h.newObject(t, h.box)
	a, b, c := h.newObject(t, h.label), h.newObject(t, h.label), h.newObject(t, h.label)
	for _, l := range []*Object{a, b, c} {
		h.box.Add(h.session, box, l)
	}

	t.Run("moves children by position", func(t *testing.T) {
		require.NoError(t, h.box.SetChildProperty(box, c, "position", 0))

		assert.Equal(t, []*Object{c, a, b}, box.Children())
		pos, err := h.box.ChildProperty(box, b, "position")
		require.NoError(t, err)
		assert.Equal(t, 2, pos)

		require.NoError(t, h.box.SetChildProperty(box, c, "position", 99))
		assert.Equal(t, []*Object{a, b, c}, box.Children())
	})

	t.Run("stores other packing values", func(t *testing.T) {
		require.NoError(t, h.box.SetChildProperty(box, a, "expand", true))

		v, err := h.box.ChildProperty(box, a, "expand")
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("rejects strangers and unknown properties", func(t *testing.T) {
		stranger := h.newObject(t, h.label)

		assert.Error(t, h.box.SetChildProperty(box, stranger, "expand", true))
		assert.Error(t, h.box.SetChildProperty(box, a, "weight", 1))
		assert.Error(t, h.box.SetChildProperty(box, a, "expand", "much"))
	})
}

func TestAdaptor_Replace(t *testing.T) {
	h := newHarness()
	box := h.newObject(t, h.box)
	old := h.newObject(t, h.label)
	h.box.Add(h.session, box, old)
	require.NoError(t, h.box.SetChildProperty(box, old, "expand", true))
	replacement := h.newObject(t, h.label)

	h.box.Replace(box, old, replacement)

	assert.Equal(t, []*Object{replacement}, box.Children())
	assert.Nil(t, old.Parent())
	v, _ := replacement.ChildValue("expand")
	assert.Equal(t, true, v)
}

func TestAdaptor_PostCreate(t *testing.T) {
	t.Run("sizes toplevels and adds a slot", func(t *testing.T) {
		h := newHarness()
		window := h.newObject(t, h.window)

		require.NoError(t, h.window.PostCreate(h.session, window, entity.CreateUser))

		w, ht := h.tk.Size(window)
		assert.Equal(t, 440, w)
		assert.Equal(t, 250, ht)
		assert.Equal(t, 1, window.placeholderCount())
	})

	t.Run("does nothing when loading", func(t *testing.T) {
		h := newHarness()
		window := h.newObject(t, h.window)

		require.NoError(t, h.window.PostCreate(h.session, window, entity.CreateLoad))

		assert.Empty(t, window.Children())
	})

	t.Run("leaves sized containers to their size property", func(t *testing.T) {
		h := newHarness()
		box := h.newObject(t, h.box)

		require.NoError(t, h.box.PostCreate(h.session, box, entity.CreateUser))

		assert.Empty(t, box.Children())
	})
}

func TestToolkit_Destroy(t *testing.T) {
	h := newHarness()
	window := h.newObject(t, h.window)
	dialog := h.newObject(t, h.dialog)
	box := h.newObject(t, h.box)
	label := h.newObject(t, h.label)
	h.window.Add(h.session, window, box)
	h.box.Add(h.session, box, label)

	h.tk.Destroy(box)
	h.tk.Destroy(dialog)

	assert.True(t, box.Destroyed())
	assert.True(t, label.Destroyed())
	assert.Empty(t, window.Children())
	assert.False(t, window.Destroyed())
	area, _ := h.dialog.InternalChild(dialog, "action_area")
	assert.True(t, area.(*Object).Destroyed())
	assert.Empty(t, dialog.Children())
	assert.Panics(t, func() { h.box.Add(h.session, box, h.newObject(t, h.label)) })
}

func TestToolkit_ObjectData(t *testing.T) {
	h := newHarness()
	ph := h.tk.NewPlaceholder()

	assert.True(t, h.tk.IsPlaceholder(ph))
	assert.False(t, h.tk.IsPlaceholder(h.newObject(t, h.label)))

	h.tk.SetObjectData(ph, shadow.SpecialChildTypeKey, "label")
	assert.Equal(t, "label", h.tk.ObjectData(ph, shadow.SpecialChildTypeKey))
	h.tk.SetObjectData(ph, shadow.SpecialChildTypeKey, "")
	assert.Empty(t, h.tk.ObjectData(ph, shadow.SpecialChildTypeKey))
}

func TestToolkit_PropertyType(t *testing.T) {
	h := newHarness()

	typ, ok := h.tk.PropertyType("Box", "spacing")
	assert.True(t, ok)
	assert.Equal(t, entity.TypeInt, typ)

	_, ok = h.tk.PropertyType("Box", "size")
	assert.False(t, ok)
	_, ok = h.tk.PropertyType("Spinner", "active")
	assert.False(t, ok)
}

func TestToolkit_ShowHide(t *testing.T) {
	h := newHarness()
	label := h.newObject(t, h.label)

	h.tk.Show(label)
	assert.True(t, label.Visible())
	h.tk.Hide(label)
	assert.False(t, label.Visible())
}
