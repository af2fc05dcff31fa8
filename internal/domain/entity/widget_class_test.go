package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boxClass() *WidgetClass {
	return &WidgetClass{
		Name: "Box",
		Properties: []*PropertyClass{
			{ID: "spacing", Type: TypeInt},
			{ID: "pack-direction", Type: TypeEnum},
		},
		PackingProperties: []*PropertyClass{
			{ID: "expand", Type: TypeBool, Packing: true},
			{ID: "fill", Type: TypeBool, Packing: true},
		},
		PackingDefaults: map[string]map[string]string{
			AnyChildClass: {"fill": "true", "expand": "false"},
			"Label":       {"expand": "true"},
		},
		InternalChildren: []InternalChildClass{{Name: "action_area", Class: "ButtonBox", Anarchist: true}},
	}
}

func TestWidgetClass_PropertyLookup(t *testing.T) {
	wc := boxClass()

	require.NotNil(t, wc.Property("pack_direction"))
	assert.Equal(t, "pack-direction", wc.Property("pack_direction").ID)
	assert.Nil(t, wc.Property("expand"))
	assert.NotNil(t, wc.PackingProperty("expand"))
	assert.Nil(t, wc.PackingProperty("spacing"))
}

func TestWidgetClass_PackingDefault(t *testing.T) {
	wc := boxClass()

	tests := []struct {
		name   string
		child  string
		id     string
		want   string
		wantOK bool
	}{
		{"exact class wins", "Label", "expand", "true", true},
		{"wildcard fallback", "Button", "expand", "false", true},
		{"wildcard for exact class without entry", "Label", "fill", "true", true},
		{"missing", "Label", "padding", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := wc.PackingDefault(tt.child, tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWidgetClass_InternalChildren(t *testing.T) {
	wc := boxClass()

	assert.True(t, wc.SupportsInternalChildren())
	ic, ok := wc.InternalChild("action_area")
	require.True(t, ok)
	assert.True(t, ic.Anarchist)
	_, ok = wc.InternalChild("vbox")
	assert.False(t, ok)
	assert.False(t, (&WidgetClass{Name: "Label"}).SupportsInternalChildren())
}

func TestWidgetInfo_PropertyLookup(t *testing.T) {
	info := &WidgetInfo{
		Class: "Label",
		Properties: []PropInfo{
			{Name: "use_markup", Value: "True"},
			{Name: "label", Kind: KindAtkProperty, Value: "Accessible"},
		},
	}

	p, ok := info.Property("use-markup", KindNormal)
	require.True(t, ok)
	assert.Equal(t, "True", p.Value)

	_, ok = info.Property("label", KindNormal)
	assert.False(t, ok)
	p, ok = info.Property("label", KindAtkProperty)
	require.True(t, ok)
	assert.Equal(t, "Accessible", p.Value)

	ci := ChildInfo{Packing: []PropInfo{{Name: "pack_type", Value: "end"}}}
	assert.True(t, ci.IsPlaceholder())
	pp, ok := ci.PackingProperty("pack-type")
	require.True(t, ok)
	assert.Equal(t, "end", pp.Value)
}

func TestCreateReason_String(t *testing.T) {
	assert.Equal(t, "user", CreateUser.String())
	assert.Equal(t, "load", CreateLoad.String())
	assert.Equal(t, "copy", CreateCopy.String())
	assert.Equal(t, "rebuild", CreateRebuild.String())
	assert.Equal(t, "unknown", CreateReason(42).String())
}
