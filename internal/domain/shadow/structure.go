package shadow

import (
	"github.com/bnema/shade/internal/domain/entity"
)

// SetParent records parent as the shadow parent of child. Packing
// properties are recreated when the child is attached and has none yet or
// changes container class, and re-applied otherwise.
func (s *Session) SetParent(child, parent *Node) {
	if child == nil {
		panic("shadow: set parent needs a child")
	}
	old := child.parent
	child.parent = parent

	if parent != nil && child.object != nil && parent.object != nil &&
		parent.adaptor.HasChild(parent.object, child.object) {
		if old == nil || child.packing == nil || old.class != parent.class {
			s.SetPackingProperties(child, parent)
		} else {
			s.syncPackingProperties(child)
		}
	}
	if parent != nil {
		s.setPackingActions(child, parent)
	}
}

// AddChild attaches child to parent in both graphs. atMouse is a hint for
// interactive containers and does not change the result.
func (s *Session) AddChild(parent, child *Node, atMouse bool) {
	if parent == nil || child == nil {
		panic("shadow: add child needs a parent and a child")
	}
	if parent.object == nil || child.object == nil {
		panic("shadow: add child on a node without a live object")
	}
	s.SetParent(child, parent)
	parent.adaptor.Add(s, parent.object, child.object)
	s.SetPackingProperties(child, parent)

	s.log.Trace().
		Str("parent", parent.name).
		Str("child", child.name).
		Bool("at_mouse", atMouse).
		Msg("child added")
}

// RemoveChild detaches child from parent in the live graph. The shadow
// parent link is kept so that the child can be re-inserted.
func (s *Session) RemoveChild(parent, child *Node) {
	if parent == nil || child == nil {
		panic("shadow: remove child needs a parent and a child")
	}
	parent.adaptor.Remove(parent.object, child.object)
}

// ReplaceChild swaps the live child old for replacement inside parent and
// moves the shadow links along.
func (s *Session) ReplaceChild(parent *Node, old, replacement entity.Object) {
	if parent == nil || old == nil || replacement == nil {
		panic("shadow: replace child needs a parent and two objects")
	}
	newNode := s.registry.Lookup(replacement)
	oldNode := s.registry.Lookup(old)

	if newNode != nil {
		newNode.parent = parent
		s.setPackingActions(newNode, parent)
	}
	if oldNode != nil && oldNode != newNode {
		oldNode.parent = nil
	}

	parent.adaptor.Replace(parent.object, old, replacement)

	if newNode != nil {
		s.SetPackingProperties(newNode, parent)
	}
}
