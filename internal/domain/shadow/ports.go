// Package shadow keeps editor metadata for live toolkit objects.
//
// Every live object under editor control is mirrored by a Node holding its
// name, property records, signal bindings, actions and packing state. The
// Session is the construction context: it builds nodes, duplicates and
// rebuilds subtrees and keeps the shadow graph consistent with the live
// object graph through the consumed Adaptor, Toolkit and Document ports.
package shadow

//go:generate mockgen -destination=mocks/mock_adaptor.go -package=mock_shadow github.com/bnema/shade/internal/domain/shadow Adaptor

import "github.com/bnema/shade/internal/domain/entity"

// SpecialChildTypeKey is the object data key tagging a child with the role
// it plays in its container.
const SpecialChildTypeKey = "special-child-type"

// Param is one property value passed to a constructor or applied after it.
type Param struct {
	ID    string
	Value any
}

// Adaptor is the behavior of one widget class. Structural calls (Add, Remove,
// Replace) cannot fail: misuse is a programming error and implementations
// panic.
type Adaptor interface {
	// Class returns the catalog metadata of the class.
	Class() *entity.WidgetClass

	// Instantiate creates a live object with the given constructor parameters.
	Instantiate(params []Param) (entity.Object, error)

	// SetProperty applies a value to the live object. Virtual properties
	// may consult s.Superuser() to leave the structure alone during bulk
	// construction.
	SetProperty(s *Session, obj entity.Object, id string, value any) error
	Property(obj entity.Object, id string) (any, error)

	SetChildProperty(container, child entity.Object, id string, value any) error
	ChildProperty(container, child entity.Object, id string) (any, error)

	// Add attaches child to container. Adaptors may consult s.Superuser()
	// to skip interactive conveniences during bulk construction.
	Add(s *Session, container, child entity.Object)
	Remove(container, child entity.Object)
	Replace(container, old, replacement entity.Object)

	// Children lists the physical children of obj in order, including
	// placeholders and internal children. Anarchist internal children are
	// listed too; HasChild reports them but they carry no packing.
	Children(obj entity.Object) []entity.Object
	HasChild(container, child entity.Object) bool

	// InternalChild looks up a named internal child. Only meaningful when
	// Class().SupportsInternalChildren() is true.
	InternalChild(obj entity.Object, name string) (entity.Object, bool)

	// PostCreate runs once the object is wrapped by its node.
	PostCreate(s *Session, obj entity.Object, reason entity.CreateReason) error
}

// Catalog resolves adaptors by class name.
type Catalog interface {
	Adaptor(className string) (Adaptor, bool)
}

// Toolkit covers the class independent parts of the live object model.
type Toolkit interface {
	// PropertyType returns the type the live class declares for a
	// property, and false when the class has no such property.
	PropertyType(className, id string) (entity.ValueType, bool)

	NewPlaceholder() entity.Object
	IsPlaceholder(obj entity.Object) bool

	ObjectData(obj entity.Object, key string) string
	SetObjectData(obj entity.Object, key, value string)

	Size(obj entity.Object) (width, height int)
	SetSize(obj entity.Object, width, height int)

	Show(obj entity.Object)
	Hide(obj entity.Object)

	// Destroy releases a live object and its physical subtree.
	Destroy(obj entity.Object)
}

// Document is the project a node belongs to.
type Document interface {
	Name() string

	NodeByName(name string) *Node
	// NewNodeName returns a name derived from base that no node uses.
	NewNodeName(base string) string

	HasNode(n *Node) bool
	// AddNode registers n and its descendants.
	AddNode(n *Node)
	// RemoveNode deregisters n and its descendants.
	RemoveNode(n *Node)

	IsSelected(n *Node) bool
	SelectionAdd(n *Node)
	SelectionRemove(n *Node)
}
