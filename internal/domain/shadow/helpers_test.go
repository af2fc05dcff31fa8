package shadow_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
	"github.com/bnema/shade/internal/infrastructure/catalog"
	"github.com/bnema/shade/internal/infrastructure/memtoolkit"
	"github.com/bnema/shade/internal/infrastructure/project"
)

type fixture struct {
	session *shadow.Session
	tk      *memtoolkit.Toolkit
	doc     *project.Document
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	builtin, err := catalog.Builtin()
	require.NoError(t, err)
	classes, err := catalog.Resolve(builtin)
	require.NoError(t, err)

	tk := memtoolkit.New(zerolog.Nop())
	cat := catalog.New(func(c *entity.WidgetClass) shadow.Adaptor {
		return memtoolkit.NewAdaptor(tk, c)
	}, classes)

	return &fixture{
		session: shadow.NewSession(cat, tk, zerolog.Nop()),
		tk:      tk,
		doc:     project.New("test", zerolog.Nop()),
	}
}

// create builds a node the way an interactive user would, packs it into
// parent when given and registers it with the fixture document.
func (f *fixture) create(t *testing.T, class string, parent *shadow.Node) *shadow.Node {
	t.Helper()
	n, err := f.session.Create(class, shadow.BuildOptions{
		Document: f.doc,
		Reason:   entity.CreateUser,
	})
	require.NoError(t, err)
	if parent != nil {
		f.session.AddChild(parent, n, false)
	}
	f.doc.AddNode(n)
	return n
}

func live(n *shadow.Node) *memtoolkit.Object {
	return n.Object().(*memtoolkit.Object)
}

func placeholders(o *memtoolkit.Object) int {
	count := 0
	for _, c := range o.Children() {
		if c.IsPlaceholder() {
			count++
		}
	}
	return count
}
