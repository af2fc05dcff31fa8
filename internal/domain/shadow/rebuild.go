package shadow

import (
	"fmt"

	"github.com/bnema/shade/internal/domain/entity"
)

// Rebuild re-instantiates the live object of n from its current property
// values, moving children, packing and document membership over. It is
// used when a construct-only property changes.
func (s *Session) Rebuild(n *Node) error {
	if n == nil {
		panic("shadow: rebuild needs a node")
	}
	if n.rebuilding {
		panic(fmt.Sprintf("shadow: %s is already being rebuilt", n))
	}
	n.rebuilding = true
	defer func() { n.rebuilding = false }()

	s.PushSuperuser()
	defer s.PopSuperuser()

	doc := n.document
	inDocument := doc != nil && doc.HasNode(n)
	reselect := false
	if inDocument {
		if doc.IsSelected(n) {
			reselect = true
			doc.SelectionRemove(n)
		}
		doc.RemoveNode(n)
	}
	restore := func() {
		if inDocument {
			doc.AddNode(n)
			if reselect {
				doc.SelectionAdd(n)
			}
		}
	}

	oldInternals := s.internalNodes(n)
	children := s.ExtractChildren(n)

	newObj, err := s.buildObject(n, n, nil)
	if err != nil {
		s.InsertChildren(n, children)
		restore()
		return fmt.Errorf("rebuild %s: %w", n.name, err)
	}
	oldObj := n.object
	s.setObject(n, newObj)

	if err := n.adaptor.PostCreate(s, newObj, entity.CreateRebuild); err != nil {
		s.log.Warn().Err(err).Str("node", n.name).Msg("post-create hook failed")
	}
	for _, internal := range oldInternals {
		s.releaseNode(internal)
	}
	s.createInternalChildren(n)

	if n.parent != nil && n.parent.object != nil {
		s.ReplaceChild(n.parent, oldObj, newObj)
	}

	s.InsertChildren(n, children)

	s.syncCustomProperties(n)
	s.syncPackingProperties(n)

	s.toolkit.Destroy(oldObj)

	restore()
	if n.visible {
		s.Show(n)
	}

	s.log.Debug().Str("node", n.name).Msg("node rebuilt")
	return nil
}

// internalNodes lists the internal child nodes owned by n, innermost first.
func (s *Session) internalNodes(n *Node) []*Node {
	var out []*Node
	for _, ic := range n.class.InternalChildren {
		obj, ok := n.adaptor.InternalChild(n.object, ic.Name)
		if !ok {
			continue
		}
		if child := s.registry.Lookup(obj); child != nil {
			out = append(out, s.internalNodes(child)...)
			out = append(out, child)
		}
	}
	return out
}
