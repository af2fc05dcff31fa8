// Package project provides the in-memory document that owns shadow nodes,
// their toplevel order and the selection.
package project

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/shade/internal/domain/shadow"
)

// Document is an in-memory interface document. It implements
// shadow.Document.
type Document struct {
	mu sync.RWMutex

	name      string
	nodes     map[*shadow.Node]struct{}
	toplevels []*shadow.Node
	selection []*shadow.Node

	log zerolog.Logger
}

var _ shadow.Document = (*Document)(nil)

// New creates an empty document.
func New(name string, logger zerolog.Logger) *Document {
	return &Document{
		name:  name,
		nodes: make(map[*shadow.Node]struct{}),
		log:   logger.With().Str("component", "project").Str("document", name).Logger(),
	}
}

// Name implements shadow.Document.
func (d *Document) Name() string { return d.name }

// NodeByName implements shadow.Document. Names are read from the nodes
// themselves, so renames need no bookkeeping here.
func (d *Document) NodeByName(name string) *shadow.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lookupLocked(name)
}

func (d *Document) lookupLocked(name string) *shadow.Node {
	for n := range d.nodes {
		if n.Name() == name {
			return n
		}
	}
	return nil
}

// NewNodeName implements shadow.Document. Names are base followed by the
// smallest free counter starting at 1.
func (d *Document) NewNodeName(base string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if d.lookupLocked(name) == nil {
			return name
		}
	}
}

// HasNode implements shadow.Document.
func (d *Document) HasNode(n *shadow.Node) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.nodes[n]
	return ok
}

// AddNode implements shadow.Document. The node and its descendants are
// registered; clashing names are replaced by generated ones.
func (d *Document) AddNode(n *shadow.Node) {
	if n == nil {
		return
	}
	d.add(n)
	if n.Parent() == nil || !d.HasNode(n.Parent()) {
		d.mu.Lock()
		d.toplevels = append(d.toplevels, n)
		d.mu.Unlock()
	}
}

func (d *Document) add(n *shadow.Node) {
	d.mu.Lock()
	if _, ok := d.nodes[n]; ok {
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	if other := d.NodeByName(n.Name()); other != nil && other != n {
		old := n.Name()
		n.SetName(d.NewNodeName(n.Class().GenericName))
		d.log.Debug().Str("old", old).Str("new", n.Name()).Msg("renamed clashing node")
	}

	d.mu.Lock()
	d.nodes[n] = struct{}{}
	d.mu.Unlock()

	n.SetDocument(d)

	for _, child := range n.Children() {
		d.add(child)
	}
}

// RemoveNode implements shadow.Document. The nodes keep their document
// link so that references can be restored when they come back.
func (d *Document) RemoveNode(n *shadow.Node) {
	if n == nil || !d.HasNode(n) {
		return
	}
	d.remove(n)
	d.mu.Lock()
	for i, top := range d.toplevels {
		if top == n {
			d.toplevels = append(d.toplevels[:i:i], d.toplevels[i+1:]...)
			break
		}
	}
	d.mu.Unlock()
}

func (d *Document) remove(n *shadow.Node) {
	for _, child := range n.Children() {
		d.remove(child)
	}
	d.SelectionRemove(n)

	d.mu.Lock()
	delete(d.nodes, n)
	d.mu.Unlock()

	n.ProjectNotify(nil)
}

// Toplevels returns the root nodes in insertion order.
func (d *Document) Toplevels() []*shadow.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*shadow.Node(nil), d.toplevels...)
}

// Len returns the number of registered nodes.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.nodes)
}

// IsSelected implements shadow.Document.
func (d *Document) IsSelected(n *shadow.Node) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, sel := range d.selection {
		if sel == n {
			return true
		}
	}
	return false
}

// SelectionAdd implements shadow.Document.
func (d *Document) SelectionAdd(n *shadow.Node) {
	if d.IsSelected(n) || !d.HasNode(n) {
		return
	}
	d.mu.Lock()
	d.selection = append(d.selection, n)
	d.mu.Unlock()
}

// SelectionRemove implements shadow.Document.
func (d *Document) SelectionRemove(n *shadow.Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, sel := range d.selection {
		if sel == n {
			d.selection = append(d.selection[:i:i], d.selection[i+1:]...)
			return
		}
	}
}

// Selection returns the selected nodes in selection order.
func (d *Document) Selection() []*shadow.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*shadow.Node(nil), d.selection...)
}
