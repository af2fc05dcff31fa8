package shadow

import "github.com/bnema/shade/internal/domain/entity"

// ExtractKind classifies one extracted child slot.
type ExtractKind int

const (
	ExtractWidget      ExtractKind = iota // ordinary child node
	ExtractInternal                       // internal child, recursed into
	ExtractPlaceholder                    // empty slot
)

// ChildExtract is the saved state of one child slot, enough to rebuild it
// under a structurally identical parent.
type ChildExtract struct {
	Kind ExtractKind

	// Node is the detached child for ExtractWidget.
	Node *Node

	// InternalName and Internal describe an internal child and its own
	// extracted children.
	InternalName string
	Internal     []ChildExtract

	// SpecialType is the special child type of the slot.
	SpecialType string

	// Properties holds copies of the packing properties of a widget, or of
	// the own properties of an internal child.
	Properties []*Property

	// Signals holds copies of the bindings of an internal child.
	Signals []*entity.Signal
}

// ExtractChildren detaches every child of n and returns what is needed to
// put them back with InsertChildren. Internal children stay in place and
// only their state is saved. It runs as superuser, so containers get no
// placeholders for the slots it empties.
func (s *Session) ExtractChildren(n *Node) []ChildExtract {
	if n == nil {
		panic("shadow: extract children needs a node")
	}
	s.PushSuperuser()
	defer s.PopSuperuser()

	var out []ChildExtract
	for _, obj := range n.adaptor.Children(n.object) {
		childType := s.toolkit.ObjectData(obj, SpecialChildTypeKey)
		child := s.registry.Lookup(obj)

		switch {
		case child != nil && child.internal != "":
			out = append(out, ChildExtract{
				Kind:         ExtractInternal,
				InternalName: child.internal,
				Internal:     s.ExtractChildren(child),
				SpecialType:  childType,
				Properties:   dupProperties(child.properties, nil, false),
				Signals:      child.signals.All(),
			})
		case child != nil:
			out = append(out, ChildExtract{
				Kind:        ExtractWidget,
				Node:        child,
				SpecialType: childType,
				Properties:  dupProperties(child.packing, nil, false),
			})
			s.RemoveChild(n, child)
		case s.toolkit.IsPlaceholder(obj):
			out = append(out, ChildExtract{
				Kind:        ExtractPlaceholder,
				SpecialType: childType,
			})
			n.adaptor.Remove(n.object, obj)
			s.toolkit.Destroy(obj)
		}
	}
	return out
}

// InsertChildren reverses ExtractChildren on n, which may be a different
// node of the same structure. Placeholders are recreated and widgets keep
// the slot they had, as superuser.
func (s *Session) InsertChildren(n *Node, children []ChildExtract) {
	if n == nil {
		panic("shadow: insert children needs a node")
	}
	s.PushSuperuser()
	defer s.PopSuperuser()

	for _, e := range children {
		switch e.Kind {
		case ExtractInternal:
			child := s.lookupInternalChild(n, e.InternalName)
			if child == nil {
				continue
			}
			s.InsertChildren(child, e.Internal)
			for _, saved := range e.Properties {
				if p := child.Property(saved.class.ID); p != nil {
					p.Set(saved.Value())
				}
			}
			s.restoreSignals(child, e.Signals)
		case ExtractWidget:
			if e.SpecialType != "" {
				s.toolkit.SetObjectData(e.Node.object, SpecialChildTypeKey, e.SpecialType)
			}
			s.AddChild(n, e.Node, false)
			for _, saved := range e.Properties {
				if p := e.Node.PackProperty(saved.class.ID); p != nil {
					p.Set(saved.Value())
				}
			}
		case ExtractPlaceholder:
			ph := s.toolkit.NewPlaceholder()
			if e.SpecialType != "" {
				s.toolkit.SetObjectData(ph, SpecialChildTypeKey, e.SpecialType)
			}
			n.adaptor.Add(s, n.object, ph)
		}
	}
}

// restoreSignals binds saved to a fresh internal child. A child that still
// has bindings is the one they were saved from.
func (s *Session) restoreSignals(child *Node, saved []*entity.Signal) {
	if child.signals.Len() > 0 {
		return
	}
	for _, sig := range saved {
		s.AddSignalHandler(child, sig)
	}
}
