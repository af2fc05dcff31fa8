package shadow

import (
	"fmt"

	"github.com/bnema/shade/internal/domain/entity"
)

// Node is the editor-side record of one live object.
type Node struct {
	session *Session
	adaptor Adaptor
	class   *entity.WidgetClass

	name      string
	internal  string
	anarchist bool
	reason    entity.CreateReason

	object   entity.Object
	parent   *Node
	document Document

	properties []*Property
	packing    []*Property

	signals *SignalTable

	actions        []*entity.Action
	packingActions []*entity.Action

	propRefs         []*Property
	propRefsReadonly bool

	visible bool
	width   int
	height  int

	rebuilding bool
	destroyed  bool
}

func newNode(s *Session, adaptor Adaptor) *Node {
	class := adaptor.Class()
	n := &Node{
		session: s,
		adaptor: adaptor,
		class:   class,
		signals: NewSignalTable(),
		actions: entity.NewActions(class.Actions),
		width:   -1,
		height:  -1,
	}
	return n
}

// Name returns the node name, unique within its document.
func (n *Node) Name() string { return n.name }

// Internal returns the internal-child name, "" for ordinary nodes.
func (n *Node) Internal() string { return n.internal }

// IsInternal reports whether the node wraps an internal child.
func (n *Node) IsInternal() bool { return n.internal != "" }

// Anarchist reports whether the node is embedded in its parent without
// being packed by it.
func (n *Node) Anarchist() bool { return n.anarchist }

// Object returns the wrapped live object.
func (n *Node) Object() entity.Object { return n.object }

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Document returns the owning document, or nil.
func (n *Node) Document() Document { return n.document }

// Class returns the widget class metadata.
func (n *Node) Class() *entity.WidgetClass { return n.class }

// Adaptor returns the class adaptor.
func (n *Node) Adaptor() Adaptor { return n.adaptor }

// Reason returns why the node was created.
func (n *Node) Reason() entity.CreateReason { return n.reason }

// Visible reports whether the node was last shown.
func (n *Node) Visible() bool { return n.visible }

// SizeHint returns the stored width and height, -1 when unset.
func (n *Node) SizeHint() (width, height int) { return n.width, n.height }

// Signals returns the signal table.
func (n *Node) Signals() *SignalTable { return n.signals }

// Destroyed reports whether Destroy has released the node.
func (n *Node) Destroyed() bool { return n.destroyed }

func (n *Node) String() string {
	return fmt.Sprintf("%s(%s)", n.class.Name, n.name)
}

// Properties returns the own property records in class order.
func (n *Node) Properties() []*Property {
	return append([]*Property(nil), n.properties...)
}

// PackingProperties returns the packing property records.
func (n *Node) PackingProperties() []*Property {
	return append([]*Property(nil), n.packing...)
}

// Property returns the own property with the given identifier.
func (n *Node) Property(id string) *Property {
	return findProperty(n.properties, entity.NormalizeID(id))
}

// PackProperty returns the packing property with the given identifier.
func (n *Node) PackProperty(id string) *Property {
	return findProperty(n.packing, entity.NormalizeID(id))
}

// FindProperty looks in the own properties first, then in the packing
// properties.
func (n *Node) FindProperty(id string) *Property {
	if p := n.Property(id); p != nil {
		return p
	}
	return n.PackProperty(id)
}

func findProperty(list []*Property, id string) *Property {
	for _, p := range list {
		if p.class.ID == id {
			return p
		}
	}
	return nil
}

// PropertyValue returns the value of an own property.
func (n *Node) PropertyValue(id string) (any, bool) {
	p := n.Property(id)
	if p == nil {
		return nil, false
	}
	return p.Value(), true
}

// SetPropertyValue sets an own property. It reports false when the
// property does not exist or rejects the value.
func (n *Node) SetPropertyValue(id string, v any) bool {
	p := n.Property(id)
	if p == nil {
		return false
	}
	return p.Set(v)
}

// ResetProperty restores an own property to its default.
func (n *Node) ResetProperty(id string) bool {
	p := n.Property(id)
	if p == nil {
		return false
	}
	return p.Reset()
}

// PropertyIsDefault reports whether an own property holds its default.
func (n *Node) PropertyIsDefault(id string) bool {
	p := n.Property(id)
	return p != nil && p.IsDefault()
}

// PropertyIsOriginalDefault reports whether an own property holds the
// toolkit default.
func (n *Node) PropertyIsOriginalDefault(id string) bool {
	p := n.Property(id)
	return p != nil && p.IsOriginalDefault()
}

// SetPropertySensitive toggles whether the property is editable; reason
// explains why it is not.
func (n *Node) SetPropertySensitive(id string, sensitive bool, reason string) bool {
	p := n.Property(id)
	if p == nil {
		return false
	}
	p.SetSensitive(sensitive, reason)
	return true
}

// SetPropertyEnabled toggles whether the property is applied and saved.
func (n *Node) SetPropertyEnabled(id string, enabled bool) bool {
	p := n.Property(id)
	if p == nil {
		return false
	}
	p.SetEnabled(enabled)
	return true
}

// SetPropertySaveAlways forces the property to be written even at default.
func (n *Node) SetPropertySaveAlways(id string, save bool) bool {
	p := n.Property(id)
	if p == nil {
		return false
	}
	p.SetSaveAlways(save)
	return true
}

// PackPropertyValue returns the value of a packing property.
func (n *Node) PackPropertyValue(id string) (any, bool) {
	p := n.PackProperty(id)
	if p == nil {
		return nil, false
	}
	return p.Value(), true
}

// SetPackPropertyValue sets a packing property.
func (n *Node) SetPackPropertyValue(id string, v any) bool {
	p := n.PackProperty(id)
	if p == nil {
		return false
	}
	return p.Set(v)
}

// ResetPackProperty restores a packing property to its default.
func (n *Node) ResetPackProperty(id string) bool {
	p := n.PackProperty(id)
	if p == nil {
		return false
	}
	return p.Reset()
}

// PackPropertyIsDefault reports whether a packing property holds its default.
func (n *Node) PackPropertyIsDefault(id string) bool {
	p := n.PackProperty(id)
	return p != nil && p.IsDefault()
}

// RemoveProperty drops an own property record. Adaptors use this for
// properties that do not apply to a particular instance.
func (n *Node) RemoveProperty(id string) bool {
	id = entity.NormalizeID(id)
	for i, p := range n.properties {
		if p.class.ID == id {
			n.properties = append(n.properties[:i:i], n.properties[i+1:]...)
			return true
		}
	}
	n.session.log.Warn().
		Str("node", n.name).
		Str("property", id).
		Msg("cannot remove unknown property")
	return false
}

// Actions returns the own actions.
func (n *Node) Actions() []*entity.Action { return n.actions }

// PackingActions returns the actions the parent container offers on this node.
func (n *Node) PackingActions() []*entity.Action { return n.packingActions }

// Action looks up an own action by path.
func (n *Node) Action(path string) *entity.Action {
	return entity.LookupAction(n.actions, path)
}

// PackAction looks up a packing action by path.
func (n *Node) PackAction(path string) *entity.Action {
	return entity.LookupAction(n.packingActions, path)
}

// SetActionSensitive toggles an own action.
func (n *Node) SetActionSensitive(path string, sensitive bool) bool {
	a := n.Action(path)
	if a == nil {
		return false
	}
	a.Sensitive = sensitive
	return true
}

// SetPackActionSensitive toggles a packing action.
func (n *Node) SetPackActionSensitive(path string, sensitive bool) bool {
	a := n.PackAction(path)
	if a == nil {
		return false
	}
	a.Sensitive = sensitive
	return true
}

// RemoveAction drops an own action.
func (n *Node) RemoveAction(path string) bool {
	var ok bool
	n.actions, ok = entity.RemoveAction(n.actions, path)
	return ok
}

// RemovePackAction drops a packing action.
func (n *Node) RemovePackAction(path string) bool {
	var ok bool
	n.packingActions, ok = entity.RemoveAction(n.packingActions, path)
	return ok
}

// Children returns the nodes of the physical children, skipping
// placeholders, in container order.
func (n *Node) Children() []*Node {
	if n.object == nil {
		return nil
	}
	var out []*Node
	for _, obj := range n.adaptor.Children(n.object) {
		if child := n.session.registry.Lookup(obj); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// Toplevel returns the root of the node's parent chain.
func (n *Node) Toplevel() *Node {
	top := n
	for top.parent != nil {
		top = top.parent
	}
	return top
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// HasDescendant reports whether a node of class className, or a class
// derived from it, exists below n.
func (n *Node) HasDescendant(className string) bool {
	for _, child := range n.Children() {
		if n.session.IsA(child.class.Name, className) || child.HasDescendant(className) {
			return true
		}
	}
	return false
}

// PlaceholderRelation reports whether removing child from parent leaves a
// placeholder behind.
func PlaceholderRelation(parent, child *Node) bool {
	if parent == nil || child == nil {
		panic("shadow: placeholder relation needs a parent and a child")
	}
	return parent.class.UsePlaceholders && !child.class.Toplevel
}

// SetName renames the node. A name taken by another node of the same
// document is rejected and the old name kept.
func (n *Node) SetName(name string) bool {
	if name == n.name {
		return true
	}
	if n.document != nil {
		if other := n.document.NodeByName(name); other != nil && other != n {
			n.session.log.Warn().
				Str("node", n.name).
				Str("name", name).
				Msg("name already used in document")
			return false
		}
	}
	n.name = name
	return true
}

// SetDocument records the owning document and refreshes properties that
// reference this node.
func (n *Node) SetDocument(doc Document) {
	n.document = doc
	n.ProjectNotify(doc)
}

// PropRefs returns the properties of other nodes that reference this one.
func (n *Node) PropRefs() []*Property {
	return append([]*Property(nil), n.propRefs...)
}

// AddPropRef records that p references this node.
func (n *Node) AddPropRef(p *Property) {
	if n.propRefsReadonly {
		return
	}
	for _, ref := range n.propRefs {
		if ref == p {
			return
		}
	}
	n.propRefs = append(n.propRefs, p)
}

// RemovePropRef forgets that p references this node.
func (n *Node) RemovePropRef(p *Property) {
	if n.propRefsReadonly {
		return
	}
	for i, ref := range n.propRefs {
		if ref == p {
			n.propRefs = append(n.propRefs[:i:i], n.propRefs[i+1:]...)
			return
		}
	}
}

// ProjectNotify re-establishes or drops the references other properties
// hold to this node as it enters or leaves doc. References survive a
// removal so that re-adding the node restores them.
func (n *Node) ProjectNotify(doc Document) {
	n.propRefsReadonly = true
	defer func() { n.propRefsReadonly = false }()
	for _, p := range n.propRefs {
		owner := p.node
		if doc != nil && owner != nil && owner.document == doc {
			p.addObject(n.object)
		} else {
			p.removeObject(n.object)
		}
	}
}
