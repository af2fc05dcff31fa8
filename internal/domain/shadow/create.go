package shadow

import (
	"fmt"
	"strings"

	"github.com/bnema/shade/internal/domain/entity"
)

// Create builds a node of the named class through the session catalog.
func (s *Session) Create(className string, opts BuildOptions) (*Node, error) {
	adaptor, ok := s.adaptorFor(className)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownClass, className)
	}
	return s.Build(adaptor, opts)
}

// Dump renders the subtree rooted at n, one node per line, for debugging.
// Placeholders are shown as "<placeholder>".
func (s *Session) Dump(n *Node) string {
	var b strings.Builder
	s.dump(&b, n, 0)
	return b.String()
}

func (s *Session) dump(b *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s (%s)", indent, n.name, n.class.Name)
	if n.internal != "" {
		fmt.Fprintf(b, " internal=%s", n.internal)
	}
	for _, p := range n.properties {
		if p.class.Type.IsObject() || p.IsOriginalDefault() {
			continue
		}
		fmt.Fprintf(b, " %s=%s", p.class.ID, entity.FormatValue(p.value))
	}
	b.WriteByte('\n')

	if n.object == nil {
		return
	}
	for _, obj := range n.adaptor.Children(n.object) {
		if child := s.registry.Lookup(obj); child != nil {
			s.dump(b, child, depth+1)
			continue
		}
		if s.toolkit.IsPlaceholder(obj) {
			fmt.Fprintf(b, "%s  <placeholder>\n", indent)
		}
	}
}
