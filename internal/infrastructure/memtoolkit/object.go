// Package memtoolkit is an in-memory widget toolkit. Objects carry typed
// property maps, ordered children with per-child packing values, named
// internal children and free-form object data, which is everything the
// shadow layer needs to drive and introspect them without a display.
package memtoolkit

import (
	"github.com/google/uuid"

	"github.com/bnema/shade/internal/domain/entity"
)

// Object is a live in-memory widget.
type Object struct {
	id          string
	class       *entity.WidgetClass
	placeholder bool

	props map[string]any

	parent     *Object
	children   []*Object
	childProps map[string]any

	internalName string
	internals    map[string]*Object
	// embedded holds anarchist internals: physically inside the object but
	// outside its packed slots.
	embedded []*Object

	data map[string]string

	width, height int
	visible       bool
	destroyed     bool
}

func newObject(class *entity.WidgetClass) *Object {
	o := &Object{
		id:    uuid.NewString(),
		class: class,
		props: make(map[string]any),
		data:  make(map[string]string),
	}
	if class != nil {
		for _, pc := range class.Properties {
			if pc.Virtual {
				continue
			}
			o.props[pc.ID] = entity.CopyValue(pc.OrigDefault)
		}
	}
	return o
}

// ObjectID implements entity.Object.
func (o *Object) ObjectID() string { return o.id }

// ClassName returns the class name, "" for placeholders.
func (o *Object) ClassName() string {
	if o.class == nil {
		return ""
	}
	return o.class.Name
}

// IsPlaceholder reports whether the object is an empty slot.
func (o *Object) IsPlaceholder() bool { return o.placeholder }

// Parent returns the physical parent.
func (o *Object) Parent() *Object { return o.parent }

// Children returns the physical children: packed slots in order, then
// embedded internals.
func (o *Object) Children() []*Object {
	out := make([]*Object, 0, len(o.children)+len(o.embedded))
	out = append(out, o.children...)
	return append(out, o.embedded...)
}

// Slots returns the packed children only.
func (o *Object) Slots() []*Object {
	return append([]*Object(nil), o.children...)
}

// InternalName returns the name under which the owner exposes this object.
func (o *Object) InternalName() string { return o.internalName }

// Visible reports whether the object is shown.
func (o *Object) Visible() bool { return o.visible }

// Destroyed reports whether the object was destroyed.
func (o *Object) Destroyed() bool { return o.destroyed }

// Get returns a raw property value.
func (o *Object) Get(id string) (any, bool) {
	v, ok := o.props[entity.NormalizeID(id)]
	return v, ok
}

// ChildValue returns a raw packing value set by the parent.
func (o *Object) ChildValue(id string) (any, bool) {
	v, ok := o.childProps[entity.NormalizeID(id)]
	return v, ok
}

func (o *Object) indexOf(child *Object) int {
	for i, c := range o.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (o *Object) isEmbedded(child *Object) bool {
	for _, e := range o.embedded {
		if e == child {
			return true
		}
	}
	return false
}

func (o *Object) placeholderCount() int {
	n := 0
	for _, c := range o.children {
		if c.placeholder {
			n++
		}
	}
	return n
}
