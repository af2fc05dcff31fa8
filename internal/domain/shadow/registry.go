package shadow

import "github.com/bnema/shade/internal/domain/entity"

// Registry maps live objects back to the nodes that wrap them.
type Registry struct {
	owners map[entity.Object]*Node
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{owners: make(map[entity.Object]*Node)}
}

// Register records n as the owner of obj.
func (r *Registry) Register(obj entity.Object, n *Node) {
	if obj == nil {
		return
	}
	r.owners[obj] = n
}

// Unregister forgets obj, but only while it still resolves to n.
func (r *Registry) Unregister(obj entity.Object, n *Node) {
	if obj == nil {
		return
	}
	if r.owners[obj] == n {
		delete(r.owners, obj)
	}
}

// Lookup returns the node wrapping obj, or nil.
func (r *Registry) Lookup(obj entity.Object) *Node {
	if obj == nil {
		return nil
	}
	return r.owners[obj]
}

// Len returns the number of registered objects.
func (r *Registry) Len() int {
	return len(r.owners)
}
