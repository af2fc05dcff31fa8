package shadow

import (
	"fmt"
	"strings"

	"github.com/bnema/shade/internal/domain/entity"
)

// BuildOptions configures the construction of a node.
type BuildOptions struct {
	// Name is used when free in Document, otherwise a name is generated.
	Name     string
	Parent   *Node
	Document Document
	// KeepName keeps Name even when Document already uses it. The document
	// renames the node if the clash still stands when the node is added.
	KeepName bool

	// Template is the node being duplicated.
	Template *Node
	// Info is the serialized form being loaded.
	Info *entity.WidgetInfo
	// Object wraps an existing live object instead of instantiating one.
	Object entity.Object

	Internal  string
	Anarchist bool
	Reason    entity.CreateReason

	// properties are adopted as the node's records when set.
	properties []*Property
}

// Build constructs a node and its live object.
func (s *Session) Build(adaptor Adaptor, opts BuildOptions) (*Node, error) {
	if adaptor == nil {
		panic("shadow: build needs an adaptor")
	}
	n := newNode(s, adaptor)
	n.internal = opts.Internal
	n.anarchist = opts.Anarchist
	n.parent = opts.Parent
	n.document = opts.Document
	n.reason = opts.Reason

	switch {
	case opts.Template != nil:
		n.properties = dupProperties(opts.Template.properties, n, false)
	case opts.properties != nil:
		n.properties = opts.properties
		for _, p := range n.properties {
			p.node = n
		}
	default:
		n.properties = newProperties(n.class.Properties, n)
	}
	if opts.KeepName && opts.Name != "" {
		n.name = opts.Name
	} else {
		n.name = s.pickName(n, opts.Name)
	}

	obj := opts.Object
	if obj == nil {
		var src *Node
		if opts.Template != nil {
			src = n
		}
		var err error
		obj, err = s.buildObject(n, src, opts.Info)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", n.class.Name, err)
		}
	}
	s.setObject(n, obj)

	if n.class.DefaultWidth > 0 {
		n.width = n.class.DefaultWidth
	}
	if n.class.DefaultHeight > 0 {
		n.height = n.class.DefaultHeight
	}

	if opts.Reason == entity.CreateUser || opts.Object != nil {
		for _, p := range n.properties {
			p.Load()
		}
	}
	if opts.Reason == entity.CreateUser {
		s.applyCatalogDefaults(n)
	}

	if err := adaptor.PostCreate(s, obj, opts.Reason); err != nil {
		s.log.Warn().Err(err).Str("node", n.name).Msg("post-create hook failed")
	}
	s.createInternalChildren(n)

	if opts.Reason == entity.CreateUser {
		s.syncCustomProperties(n)
	}
	if n.parent != nil && n.packing == nil {
		s.SetPackingProperties(n, n.parent)
	}

	n.visible = true
	s.toolkit.Show(obj)

	s.log.Debug().
		Str("node", n.name).
		Str("class", n.class.Name).
		Str("reason", opts.Reason.String()).
		Msg("node built")
	return n, nil
}

func (s *Session) pickName(n *Node, requested string) string {
	taken := func(name string) bool {
		return n.document != nil && n.document.NodeByName(name) != nil
	}
	if requested != "" && !taken(requested) {
		return requested
	}

	var base string
	if n.internal != "" {
		prefix := "internal"
		if n.parent != nil && n.parent.name != "" {
			prefix = n.parent.name
		}
		base = prefix + "-" + n.internal
		if !taken(base) {
			return base
		}
	} else {
		base = n.class.GenericName
		if base == "" {
			base = strings.ToLower(n.class.Name)
		}
	}
	if n.document != nil {
		return n.document.NewNodeName(base)
	}
	return base
}

// buildObject instantiates the live object for n. Constructor parameters
// come from info when loading, from src when duplicating or rebuilding,
// and from catalog defaults otherwise.
func (s *Session) buildObject(n *Node, src *Node, info *entity.WidgetInfo) (entity.Object, error) {
	params := func(construct bool) []Param {
		switch {
		case info != nil:
			return s.infoParams(n.class, info, construct)
		case src != nil:
			return s.templateParams(src, construct)
		default:
			return s.defaultParams(n.class, construct)
		}
	}

	obj, err := n.adaptor.Instantiate(params(true))
	if err != nil {
		return nil, err
	}
	for _, param := range params(false) {
		if err := n.adaptor.SetProperty(s, obj, param.ID, param.Value); err != nil {
			s.log.Warn().Err(err).
				Str("class", n.class.Name).
				Str("property", param.ID).
				Msg("failed to apply property after construction")
		}
	}
	return obj, nil
}

func (s *Session) paramAllowed(class *entity.WidgetClass, pc *entity.PropertyClass, construct bool) bool {
	if pc.Virtual || pc.Ignore || pc.Packing {
		return false
	}
	if pc.IsConstructTime() != construct {
		return false
	}
	t, ok := s.toolkit.PropertyType(class.Name, pc.ID)
	if !ok {
		return false
	}
	if t != pc.Type {
		s.log.Error().
			Str("class", class.Name).
			Str("property", pc.ID).
			Str("catalog_type", pc.Type.String()).
			Str("toolkit_type", t.String()).
			Msg("property type mismatch, skipping")
		return false
	}
	return true
}

func (s *Session) templateParams(src *Node, construct bool) []Param {
	var params []Param
	for _, p := range src.properties {
		if !p.enabled || !s.paramAllowed(src.class, p.class, construct) {
			continue
		}
		if construct && p.IsOriginalDefault() {
			continue
		}
		params = append(params, Param{ID: p.class.ID, Value: entity.CopyValue(p.value)})
	}
	return params
}

func (s *Session) defaultParams(class *entity.WidgetClass, construct bool) []Param {
	var params []Param
	for _, pc := range class.Properties {
		if !s.paramAllowed(class, pc, construct) {
			continue
		}
		if construct && !pc.DefaultsDiffer() {
			continue
		}
		params = append(params, Param{ID: pc.ID, Value: entity.CopyValue(pc.Default)})
	}
	return params
}

// infoParams reads parameters from a serialized widget. Absent values are
// left to the toolkit default, and object references wait until every node
// of the document exists.
func (s *Session) infoParams(class *entity.WidgetClass, info *entity.WidgetInfo, construct bool) []Param {
	var params []Param
	for _, pc := range class.Properties {
		if pc.Type.IsObject() || !s.paramAllowed(class, pc, construct) {
			continue
		}
		pi, ok := info.Property(pc.ID, pc.Kind)
		if !ok {
			continue
		}
		v, err := entity.ParseValue(pc.Type, pi.Value)
		if err != nil {
			s.log.Warn().Err(err).
				Str("widget", info.Name).
				Str("property", pc.ID).
				Msg("invalid property value in interface")
			continue
		}
		params = append(params, Param{ID: pc.ID, Value: v})
	}
	return params
}

// setObject binds obj to n. Only the current object stays registered.
func (s *Session) setObject(n *Node, obj entity.Object) {
	old := n.object
	n.object = obj
	s.registry.Register(obj, n)
	if old != nil && old != obj {
		s.registry.Unregister(old, n)
	}
}

// applyCatalogDefaults moves properties still at the toolkit default to the
// catalog default when the two differ.
func (s *Session) applyCatalogDefaults(n *Node) {
	for _, p := range n.properties {
		if p.class.DefaultsDiffer() && p.IsOriginalDefault() {
			p.Reset()
		}
	}
}

// syncCustomProperties pushes every property that may change after
// construction, including adaptor-managed virtual ones.
func (s *Session) syncCustomProperties(n *Node) {
	for _, p := range n.properties {
		if !p.class.ConstructOnly {
			p.Sync()
		}
	}
}

func (s *Session) createInternalChildren(n *Node) {
	for _, ic := range n.class.InternalChildren {
		obj, ok := n.adaptor.InternalChild(n.object, ic.Name)
		if !ok {
			s.log.Warn().
				Str("node", n.name).
				Str("internal", ic.Name).
				Msg("class declares an internal child the object does not have")
			continue
		}
		if s.registry.Lookup(obj) != nil {
			continue
		}
		adaptor, ok := s.adaptorFor(ic.Class)
		if !ok {
			s.log.Warn().
				Str("node", n.name).
				Str("class", ic.Class).
				Msg("no adaptor for internal child class")
			continue
		}
		if _, err := s.Build(adaptor, BuildOptions{
			Object:    obj,
			Internal:  ic.Name,
			Anarchist: ic.Anarchist,
			Parent:    n,
			Document:  n.document,
			Reason:    n.reason,
		}); err != nil {
			s.log.Warn().Err(err).Str("internal", ic.Name).Msg("failed to wrap internal child")
		}
	}
}

// internalChildOwner walks up from n to the first node whose class can look
// up internal children.
func (s *Session) internalChildOwner(n *Node) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.class.SupportsInternalChildren() {
			return cur
		}
	}
	return nil
}

// lookupInternalChild resolves the node of an internal child named name
// from the owner found above n.
func (s *Session) lookupInternalChild(n *Node, name string) *Node {
	owner := s.internalChildOwner(n)
	if owner == nil {
		s.log.Error().
			Str("node", n.name).
			Str("internal", name).
			Msg("no ancestor can look up internal children")
		return nil
	}
	obj, ok := owner.adaptor.InternalChild(owner.object, name)
	if !ok {
		s.log.Warn().
			Str("owner", owner.name).
			Str("internal", name).
			Msg("unknown internal child")
		return nil
	}
	child := s.registry.Lookup(obj)
	if child == nil {
		s.log.Error().
			Str("owner", owner.name).
			Str("internal", name).
			Msg("internal child has no node")
	}
	return child
}
