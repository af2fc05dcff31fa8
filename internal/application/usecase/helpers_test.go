package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
	"github.com/bnema/shade/internal/infrastructure/catalog"
	"github.com/bnema/shade/internal/infrastructure/memtoolkit"
	"github.com/bnema/shade/internal/infrastructure/project"
	"github.com/bnema/shade/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// workspace wires a session over the builtin catalog and the in-memory
// toolkit, with one empty document.
type workspace struct {
	session *shadow.Session
	tk      *memtoolkit.Toolkit
	doc     *project.Document
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()

	builtin, err := catalog.Builtin()
	require.NoError(t, err)
	classes, err := catalog.Resolve(builtin)
	require.NoError(t, err)

	tk := memtoolkit.New(zerolog.Nop())
	cat := catalog.New(func(c *entity.WidgetClass) shadow.Adaptor {
		return memtoolkit.NewAdaptor(tk, c)
	}, classes)

	return &workspace{
		session: shadow.NewSession(cat, tk, zerolog.Nop()),
		tk:      tk,
		doc:     project.New("test", zerolog.Nop()),
	}
}

// create builds a node as a user would and adds it to the document,
// inside parent when one is given.
func (w *workspace) create(t *testing.T, class string, parent *shadow.Node) *shadow.Node {
	t.Helper()
	n, err := w.session.Create(class, shadow.BuildOptions{
		Document: w.doc,
		Reason:   entity.CreateUser,
	})
	require.NoError(t, err)
	if parent != nil {
		w.session.AddChild(parent, n, false)
	}
	w.doc.AddNode(n)
	return n
}

func live(n *shadow.Node) *memtoolkit.Object {
	return n.Object().(*memtoolkit.Object)
}

// sampleInterface is a window holding a vertical box with a label bound
// to an entry declared after it, and a free slot.
func sampleInterface() *entity.Interface {
	return &entity.Interface{Toplevels: []*entity.WidgetInfo{
		{
			Class:      "Window",
			Name:       "main",
			Properties: []entity.PropInfo{{Name: "title", Value: "Main", Translatable: true}},
			Children: []entity.ChildInfo{{
				Widget: &entity.WidgetInfo{
					Class: "Box",
					Name:  "box1",
					Properties: []entity.PropInfo{
						{Name: "orientation", Value: "vertical"},
						{Name: "spacing", Value: "6"},
					},
					Children: []entity.ChildInfo{
						{
							Widget: &entity.WidgetInfo{
								Class: "Label",
								Name:  "caption",
								Properties: []entity.PropInfo{
									{Name: "label", Value: "Name:"},
									{Name: "mnemonic-widget", Value: "entry1"},
								},
							},
							Packing: []entity.PropInfo{
								{Name: "expand", Value: "false"},
								{Name: "position", Value: "0"},
							},
						},
						{
							Widget: &entity.WidgetInfo{
								Class:   "Entry",
								Name:    "entry1",
								Signals: []entity.SignalInfo{{Name: "changed", Handler: "on_entry_changed"}},
							},
							Packing: []entity.PropInfo{{Name: "position", Value: "1"}},
						},
						{},
					},
				},
			}},
		},
	}}
}
