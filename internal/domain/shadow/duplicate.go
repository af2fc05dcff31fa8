package shadow

import (
	"github.com/bnema/shade/internal/domain/entity"
)

// Duplicate deep-copies the subtree rooted at template. An exact copy keeps
// every name of the template and carries the signal bindings; clashes are
// resolved by the document the copy is added to. A plain copy gets names
// free in the document and starts with empty signal tables. The copy is not
// added to any document.
func (s *Session) Duplicate(template *Node, exact bool) *Node {
	if template == nil {
		panic("shadow: duplicate needs a template")
	}
	s.PushSuperuser()
	defer s.PopSuperuser()
	return s.dupInternal(nil, template, exact)
}

func (s *Session) dupInternal(parent, template *Node, exact bool) *Node {
	var n *Node

	if template.internal != "" {
		if parent == nil {
			s.log.Error().
				Str("node", template.name).
				Msg("cannot duplicate an internal child without its owner")
			return nil
		}
		n = s.lookupInternalChild(parent, template.internal)
		if n == nil {
			return nil
		}
		if exact {
			n.name = template.name
		}
	} else {
		var err error
		n, err = s.Build(template.adaptor, BuildOptions{
			Name:     template.name,
			KeepName: exact,
			Parent:   parent,
			Document: template.document,
			Template: template,
			Reason:   entity.CreateCopy,
		})
		if err != nil {
			s.log.Error().Err(err).Str("node", template.name).Msg("duplicate failed")
			return nil
		}
		s.copyProperties(n, template)
	}

	if exact {
		s.copySignals(n, template)
	}

	for _, childObj := range template.adaptor.Children(template.object) {
		childType := s.toolkit.ObjectData(childObj, SpecialChildTypeKey)
		childNode := s.registry.Lookup(childObj)

		if childNode == nil {
			if s.toolkit.IsPlaceholder(childObj) {
				ph := s.toolkit.NewPlaceholder()
				if childType != "" {
					s.toolkit.SetObjectData(ph, SpecialChildTypeKey, childType)
				}
				n.adaptor.Add(s, n.object, ph)
			}
			continue
		}

		dup := s.dupInternal(n, childNode, exact)
		if dup == nil {
			continue
		}
		if childNode.internal == "" {
			if childType != "" {
				s.toolkit.SetObjectData(dup.object, SpecialChildTypeKey, childType)
			}
			s.AddChild(n, dup, false)
		}
		if n.adaptor.HasChild(n.object, dup.object) {
			s.copyPackingProperties(n, dup, childNode)
		}
	}

	if n.internal != "" {
		s.copyProperties(n, template)
	}
	if n.packing == nil {
		n.packing = dupProperties(template.packing, n, false)
	}
	s.syncCustomProperties(n)

	n.width, n.height = template.width, template.height
	w, h := s.toolkit.Size(template.object)
	s.toolkit.SetSize(n.object, w, h)
	return n
}

// copyProperties copies every matching property value of template onto n.
func (s *Session) copyProperties(n, template *Node) {
	for _, p := range n.properties {
		tp := template.Property(p.class.ID)
		if tp == nil || !tp.class.Match(p.class) {
			continue
		}
		p.enabled = tp.enabled
		p.saveAlways = tp.saveAlways
		p.Set(tp.Value())
	}
}
