package catalog

import (
	"sort"
	"sync"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
)

// AdaptorFactory creates the adaptor of a class.
type AdaptorFactory func(class *entity.WidgetClass) shadow.Adaptor

// Catalog serves adaptors by class name. It implements shadow.Catalog.
// Nodes keep the adaptor they were built with, so replacing the catalog
// only affects nodes built afterwards.
type Catalog struct {
	mu       sync.RWMutex
	factory  AdaptorFactory
	adaptors map[string]shadow.Adaptor
}

var _ shadow.Catalog = (*Catalog)(nil)

// New creates a catalog over classes.
func New(factory AdaptorFactory, classes []*entity.WidgetClass) *Catalog {
	c := &Catalog{factory: factory}
	c.Replace(classes)
	return c
}

// Adaptor implements shadow.Catalog.
func (c *Catalog) Adaptor(className string) (shadow.Adaptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.adaptors[className]
	return a, ok
}

// Replace swaps in a new set of classes.
func (c *Catalog) Replace(classes []*entity.WidgetClass) {
	adaptors := make(map[string]shadow.Adaptor, len(classes))
	for _, class := range classes {
		adaptors[class.Name] = c.factory(class)
	}
	c.mu.Lock()
	c.adaptors = adaptors
	c.mu.Unlock()
}

// Classes returns the classes sorted by name.
func (c *Catalog) Classes() []*entity.WidgetClass {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entity.WidgetClass, 0, len(c.adaptors))
	for _, a := range c.adaptors {
		out = append(out, a.Class())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
