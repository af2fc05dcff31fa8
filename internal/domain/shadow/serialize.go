package shadow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/shade/internal/domain/entity"
)

type pendingRef struct {
	prop  *Property
	names []string
}

// Write serializes n and its subtree.
func (s *Session) Write(n *Node) *entity.WidgetInfo {
	if n == nil {
		panic("shadow: write needs a node")
	}
	info := &entity.WidgetInfo{Class: n.class.Name, Name: n.name}

	for _, p := range n.properties {
		if pi, ok := s.writeProperty(p); ok {
			info.Properties = append(info.Properties, pi)
		}
	}
	for _, sig := range n.signals.All() {
		info.Signals = append(info.Signals, entity.SignalInfo{
			Name:    sig.Name,
			Handler: sig.Handler,
			Object:  sig.UserData,
			After:   sig.After,
			Lookup:  sig.Lookup,
		})
	}

	for _, obj := range n.adaptor.Children(n.object) {
		var ci entity.ChildInfo
		child := s.registry.Lookup(obj)
		switch {
		case child != nil:
			ci.InternalChild = child.internal
			ci.Widget = s.Write(child)
			for _, p := range child.packing {
				if pi, ok := s.writeProperty(p); ok {
					ci.Packing = append(ci.Packing, pi)
				}
			}
		case s.toolkit.IsPlaceholder(obj):
		default:
			continue
		}
		if key := n.class.SpecialChildType; key != "" && n.class.PackingProperty(key) == nil {
			if childType := s.toolkit.ObjectData(obj, SpecialChildTypeKey); childType != "" {
				ci.Packing = append([]entity.PropInfo{{Name: key, Value: childType}}, ci.Packing...)
			}
		}
		info.Children = append(info.Children, ci)
	}
	return info
}

// WriteInterface serializes a list of toplevels.
func (s *Session) WriteInterface(toplevels []*Node) *entity.Interface {
	iface := &entity.Interface{}
	for _, n := range toplevels {
		iface.Toplevels = append(iface.Toplevels, s.Write(n))
	}
	return iface
}

// writeProperty reports whether p is worth saving and its serialized
// form. Own properties at the toolkit default are left out; packing
// values are always written.
func (s *Session) writeProperty(p *Property) (entity.PropInfo, bool) {
	if !p.class.Save || !p.enabled {
		return entity.PropInfo{}, false
	}
	if !p.class.Packing && !p.saveAlways && p.IsOriginalDefault() {
		return entity.PropInfo{}, false
	}
	var value string
	if p.class.Type.IsObject() {
		var names []string
		for _, obj := range objectsOf(p.value) {
			if target := s.registry.Lookup(obj); target != nil {
				names = append(names, target.name)
			}
		}
		if len(names) == 0 {
			return entity.PropInfo{}, false
		}
		value = strings.Join(names, " ")
	} else {
		value = entity.FormatValue(p.value)
	}
	return entity.PropInfo{
		Name:         p.class.ID,
		Kind:         p.class.Kind,
		Value:        value,
		Translatable: p.class.Translatable,
	}, true
}

// Read builds a node subtree from its serialized form for doc. The node is
// not added to doc.
func (s *Session) Read(doc Document, info *entity.WidgetInfo) (*Node, error) {
	if info == nil {
		panic("shadow: read needs widget info")
	}
	nodes, err := s.ReadInterface(doc, &entity.Interface{Toplevels: []*entity.WidgetInfo{info}})
	if len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], err
}

// ReadInterface builds every toplevel of iface. Object references are
// resolved once all toplevels exist, so they may point forward. Toplevels
// that fail are skipped and their errors joined.
func (s *Session) ReadInterface(doc Document, iface *entity.Interface) ([]*Node, error) {
	if iface == nil {
		panic("shadow: read needs an interface")
	}
	s.PushSuperuser()
	prevLoading, prevNodes, prevRefs := s.loading, s.loadedNodes, s.pendingRefs
	s.loading = doc
	s.loadedNodes = make(map[string]*Node)
	s.pendingRefs = nil
	defer func() {
		s.loading, s.loadedNodes, s.pendingRefs = prevLoading, prevNodes, prevRefs
		s.PopSuperuser()
	}()

	var (
		nodes []*Node
		errs  []error
	)
	for _, info := range iface.Toplevels {
		n, err := s.readNode(info, nil)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		nodes = append(nodes, n)
	}
	s.resolvePendingRefs()
	return nodes, errors.Join(errs...)
}

func (s *Session) readNode(info *entity.WidgetInfo, parent *Node) (*Node, error) {
	if info == nil {
		return nil, ErrMissingInfo
	}
	adaptor, ok := s.adaptorFor(info.Class)
	if !ok {
		return nil, fmt.Errorf("widget %q: %w %q", info.Name, ErrUnknownClass, info.Class)
	}
	n, err := s.Build(adaptor, BuildOptions{
		Name:       info.Name,
		Parent:     parent,
		Document:   s.loading,
		Info:       info,
		Reason:     entity.CreateLoad,
		properties: s.propertiesFromInfo(adaptor.Class(), info),
	})
	if err != nil {
		return nil, fmt.Errorf("widget %q: %w", info.Name, err)
	}
	s.loadedNodes[info.Name] = n
	s.deferObjectRefs(n, info)
	s.fillFromInfo(n, info)
	s.syncCustomProperties(n)
	return n, nil
}

// propertiesFromInfo creates detached property records holding the
// serialized values, or the toolkit default when a value is absent.
func (s *Session) propertiesFromInfo(class *entity.WidgetClass, info *entity.WidgetInfo) []*Property {
	props := make([]*Property, 0, len(class.Properties))
	for _, pc := range class.Properties {
		p := newProperty(pc, nil)
		p.value = entity.CopyValue(pc.OrigDefault)
		if !pc.Type.IsObject() {
			if pi, ok := info.Property(pc.ID, pc.Kind); ok {
				if v, err := entity.ParseValue(pc.Type, pi.Value); err == nil {
					p.value = v
				} else {
					s.log.Warn().Err(err).
						Str("widget", info.Name).
						Str("property", pc.ID).
						Msg("invalid property value in interface")
				}
			}
		}
		props = append(props, p)
	}
	return props
}

func (s *Session) applyInfoProperties(n *Node, info *entity.WidgetInfo) {
	for _, p := range n.properties {
		if p.class.Type.IsObject() {
			continue
		}
		pi, ok := info.Property(p.class.ID, p.class.Kind)
		if !ok {
			continue
		}
		v, err := entity.ParseValue(p.class.Type, pi.Value)
		if err != nil {
			s.log.Warn().Err(err).
				Str("widget", info.Name).
				Str("property", p.class.ID).
				Msg("invalid property value in interface")
			continue
		}
		p.Set(v)
	}
}

func (s *Session) deferObjectRefs(n *Node, info *entity.WidgetInfo) {
	for _, p := range n.properties {
		if !p.class.Type.IsObject() {
			continue
		}
		pi, ok := info.Property(p.class.ID, p.class.Kind)
		if !ok || strings.TrimSpace(pi.Value) == "" {
			continue
		}
		s.pendingRefs = append(s.pendingRefs, pendingRef{prop: p, names: strings.Fields(pi.Value)})
	}
}

func (s *Session) resolvePendingRefs() {
	for _, ref := range s.pendingRefs {
		var objs []entity.Object
		for _, name := range ref.names {
			target := s.loadedNodes[name]
			if target == nil && s.loading != nil {
				target = s.loading.NodeByName(name)
			}
			if target == nil || target.object == nil {
				s.log.Warn().
					Str("property", ref.prop.class.ID).
					Str("target", name).
					Msg("unresolved object reference")
				continue
			}
			objs = append(objs, target.object)
		}
		if ref.prop.class.Type == entity.TypeObject {
			if len(objs) > 0 {
				ref.prop.Set(objs[0])
			}
			continue
		}
		ref.prop.Set(objs)
	}
	s.pendingRefs = nil
}

func (s *Session) fillFromInfo(n *Node, info *entity.WidgetInfo) {
	for i := range info.Children {
		ci := &info.Children[i]
		if !s.readChild(n, ci) {
			s.log.Warn().
				Str("parent", n.name).
				Int("slot", i).
				Msg("failed to read child")
		}
	}
	for _, si := range info.Signals {
		s.AddSignalHandler(n, &entity.Signal{
			Name:     si.Name,
			Handler:  si.Handler,
			UserData: si.Object,
			After:    si.After,
			Lookup:   si.Lookup,
		})
	}
}

func (s *Session) readChild(parent *Node, ci *entity.ChildInfo) bool {
	switch {
	case ci.IsPlaceholder():
		ph := s.toolkit.NewPlaceholder()
		s.setChildTypeFromInfo(parent, ci, ph)
		parent.adaptor.Add(s, parent.object, ph)
		return true

	case ci.InternalChild != "":
		child := s.lookupInternalChild(parent, ci.InternalChild)
		if child == nil {
			return false
		}
		if ci.Widget.Name != "" {
			child.SetName(ci.Widget.Name)
			s.loadedNodes[ci.Widget.Name] = child
		}
		s.applyInfoProperties(child, ci.Widget)
		s.deferObjectRefs(child, ci.Widget)
		s.fillFromInfo(child, ci.Widget)
		s.syncCustomProperties(child)
		s.readPacking(child, ci)
		return true

	default:
		child, err := s.readNode(ci.Widget, parent)
		if err != nil {
			s.log.Warn().Err(err).Str("parent", parent.name).Msg("skipping child")
			return false
		}
		s.setChildTypeFromInfo(parent, ci, child.object)
		s.AddChild(parent, child, false)
		s.readPacking(child, ci)
		return true
	}
}

func (s *Session) readPacking(child *Node, ci *entity.ChildInfo) {
	for _, p := range child.packing {
		pi, ok := ci.PackingProperty(p.class.ID)
		if !ok {
			continue
		}
		v, err := entity.ParseValue(p.class.Type, pi.Value)
		if err != nil {
			s.log.Warn().Err(err).
				Str("child", child.name).
				Str("property", p.class.ID).
				Msg("invalid packing value in interface")
			continue
		}
		p.Set(v)
	}
}

func (s *Session) setChildTypeFromInfo(parent *Node, ci *entity.ChildInfo, obj entity.Object) {
	key := parent.class.SpecialChildType
	if key == "" {
		return
	}
	if pi, ok := ci.PackingProperty(key); ok && pi.Value != "" {
		s.toolkit.SetObjectData(obj, SpecialChildTypeKey, pi.Value)
	}
}
