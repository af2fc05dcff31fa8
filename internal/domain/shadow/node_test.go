package shadow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/shadow"
)

func TestNode_SetName(t *testing.T) {
	tests := []struct {
		name    string
		newName string
		wantOK  bool
		want    string
	}{
		{name: "free name", newName: "caption", wantOK: true, want: "caption"},
		{name: "same name", newName: "label1", wantOK: true, want: "label1"},
		{name: "taken by another node", newName: "box1", wantOK: false, want: "label1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, box, label := sampleTree(t, f)

			ok := label.SetName(tt.newName)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, label.Name())
			assert.Equal(t, "box1", box.Name())
		})
	}
}

func TestNode_RemoveProperty(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantOK    bool
		wantDelta int
	}{
		{name: "known property", id: "use-markup", wantOK: true, wantDelta: 1},
		{name: "known property in underscore form", id: "use_markup", wantOK: true, wantDelta: 1},
		{name: "unknown property", id: "colour", wantOK: false, wantDelta: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			label := f.create(t, "Label", nil)
			before := label.Properties()

			ok := label.RemoveProperty(tt.id)

			assert.Equal(t, tt.wantOK, ok)
			after := label.Properties()
			assert.Len(t, after, len(before)-tt.wantDelta)
			if !tt.wantOK {
				assert.Equal(t, before, after)
				return
			}
			assert.Nil(t, label.Property(tt.id))
		})
	}
}

func TestNode_SetActionSensitive(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		sensitive bool
		wantOK    bool
	}{
		{name: "toplevel action", path: "preview", sensitive: false, wantOK: true},
		{name: "nested action", path: "edit/copy", sensitive: false, wantOK: true},
		{name: "back to sensitive", path: "edit/delete", sensitive: true, wantOK: true},
		{name: "unknown action", path: "edit/undo", sensitive: false, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			label := f.create(t, "Label", nil)

			ok := label.SetActionSensitive(tt.path, tt.sensitive)

			assert.Equal(t, tt.wantOK, ok)
			if a := label.Action(tt.path); tt.wantOK {
				require.NotNil(t, a)
				assert.Equal(t, tt.sensitive, a.Sensitive)
			} else {
				assert.Nil(t, a)
			}
		})
	}

	t.Run("packing actions come from the container", func(t *testing.T) {
		f := newFixture(t)
		_, _, label := sampleTree(t, f)

		require.True(t, label.SetPackActionSensitive("remove_slot", false))
		assert.False(t, label.PackAction("remove_slot").Sensitive)
		assert.True(t, label.PackAction("insert_before").Sensitive)
		assert.False(t, label.SetPackActionSensitive("preview", false))
		assert.False(t, label.SetActionSensitive("remove_slot", false))
	})
}

func TestProperty_Resets(t *testing.T) {
	tests := []struct {
		name        string
		reset       func(p *shadow.Property) bool
		want        any
		wantDefault bool
		wantOrig    bool
	}{
		{
			name:        "reset restores the catalog default",
			reset:       (*shadow.Property).Reset,
			want:        "label",
			wantDefault: true,
			wantOrig:    false,
		},
		{
			name:        "original reset restores the toolkit default",
			reset:       (*shadow.Property).OriginalReset,
			want:        "",
			wantDefault: false,
			wantOrig:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			label := f.create(t, "Label", nil)
			require.True(t, label.SetPropertyValue("label", "Hello"))
			p := label.Property("label")
			require.NotNil(t, p)

			ok := tt.reset(p)

			require.True(t, ok)
			assert.Equal(t, tt.want, p.Value())
			assert.Equal(t, tt.wantDefault, label.PropertyIsDefault("label"))
			assert.Equal(t, tt.wantOrig, label.PropertyIsOriginalDefault("label"))
			got, _ := live(label).Get("label")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNode_PropertySwitches(t *testing.T) {
	f := newFixture(t)
	label := f.create(t, "Label", nil)

	require.True(t, label.SetPropertySensitive("label", false, "bound to a model"))
	p := label.Property("label")
	assert.False(t, p.Sensitive())
	assert.Equal(t, "bound to a model", p.InsensitiveReason())

	require.True(t, label.SetPropertySensitive("label", true, ""))
	assert.True(t, p.Sensitive())
	assert.Empty(t, p.InsensitiveReason())

	assert.False(t, label.SetPropertySensitive("colour", false, "no such property"))
	assert.False(t, label.SetPropertyEnabled("colour", false))
	assert.False(t, label.SetPropertySaveAlways("colour", true))
	assert.False(t, label.ResetProperty("colour"))
	assert.Nil(t, label.FindProperty("colour"))
}
