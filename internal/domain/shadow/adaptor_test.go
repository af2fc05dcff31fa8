package shadow_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
	mock_shadow "github.com/bnema/shade/internal/domain/shadow/mocks"
)

func TestSession_BuildWithAdaptor(t *testing.T) {
	probe := &entity.WidgetClass{Name: "Probe", GenericName: "probe"}

	t.Run("returns instantiation errors", func(t *testing.T) {
		f := newFixture(t)
		ctrl := gomock.NewController(t)
		adaptor := mock_shadow.NewMockAdaptor(ctrl)
		errBoom := errors.New("boom")

		adaptor.EXPECT().Class().Return(probe).AnyTimes()
		adaptor.EXPECT().Instantiate(gomock.Any()).Return(nil, errBoom)

		n, err := f.session.Build(adaptor, shadow.BuildOptions{Document: f.doc, Reason: entity.CreateLoad})

		assert.Nil(t, n)
		assert.ErrorIs(t, err, errBoom)
		assert.Zero(t, f.session.Registry().Len())
	})

	t.Run("survives a failing post-create hook", func(t *testing.T) {
		f := newFixture(t)
		ctrl := gomock.NewController(t)
		adaptor := mock_shadow.NewMockAdaptor(ctrl)
		obj := f.tk.NewPlaceholder()

		adaptor.EXPECT().Class().Return(probe).AnyTimes()
		adaptor.EXPECT().Instantiate(gomock.Len(0)).Return(obj, nil)
		adaptor.EXPECT().PostCreate(f.session, obj, entity.CreateLoad).Return(errors.New("hook failed"))

		n, err := f.session.Build(adaptor, shadow.BuildOptions{Document: f.doc, Reason: entity.CreateLoad})

		require.NoError(t, err)
		assert.Equal(t, "probe1", n.Name())
		assert.Same(t, n, f.session.NodeForObject(obj))
		assert.True(t, n.Visible())
	})

	t.Run("panics without an adaptor", func(t *testing.T) {
		f := newFixture(t)

		assert.Panics(t, func() {
			_, _ = f.session.Build(nil, shadow.BuildOptions{})
		})
	})
}

func TestSession_IsA(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.session.IsA("Dialog", "Window"))
	assert.True(t, f.session.IsA("ButtonBox", "Container"))
	assert.True(t, f.session.IsA("Label", "Label"))
	assert.False(t, f.session.IsA("Label", "Container"))
	assert.False(t, f.session.IsA("Spinner", "Widget"))
}

func TestSession_Dump(t *testing.T) {
	f := newFixture(t)
	window := f.create(t, "Window", nil)
	f.create(t, "Box", window)

	out := f.session.Dump(window)

	assert.True(t, strings.HasPrefix(out, "window1 (Window)"))
	assert.Contains(t, out, "\n  box1 (Box) size=3\n")
	assert.Equal(t, 3, strings.Count(out, "    <placeholder>\n"))
}
