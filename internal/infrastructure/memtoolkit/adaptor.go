package memtoolkit

import (
	"errors"
	"fmt"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
)

// ErrConstructOnly is returned when a construct-only property is changed on
// a live object.
var ErrConstructOnly = errors.New("property can only be set at construction")

// Adaptor drives objects of one class. It implements shadow.Adaptor.
type Adaptor struct {
	tk    *Toolkit
	class *entity.WidgetClass
}

var _ shadow.Adaptor = (*Adaptor)(nil)

// NewAdaptor registers class with tk and returns its adaptor.
func NewAdaptor(tk *Toolkit, class *entity.WidgetClass) *Adaptor {
	tk.Register(class)
	return &Adaptor{tk: tk, class: class}
}

// Class implements shadow.Adaptor.
func (a *Adaptor) Class() *entity.WidgetClass { return a.class }

// Instantiate implements shadow.Adaptor.
func (a *Adaptor) Instantiate(params []shadow.Param) (entity.Object, error) {
	o, err := a.tk.instantiate(a.class, params)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// SetProperty implements shadow.Adaptor. The slot count property grows or
// shrinks the container with placeholders, except in superuser mode where
// the children are managed explicitly.
func (a *Adaptor) SetProperty(s *shadow.Session, obj entity.Object, id string, value any) error {
	o := asObject(obj)
	if a.isSizeProperty(id) {
		size, ok := value.(int)
		if !ok {
			return fmt.Errorf("%s.%s expects an int", a.class.Name, id)
		}
		if s != nil && s.Superuser() {
			return nil
		}
		return a.resize(o, size)
	}
	pc := a.class.Property(id)
	if pc != nil && pc.Virtual {
		return nil
	}
	if pc != nil && pc.ConstructOnly {
		// The shadow keeps the value until the object is rebuilt.
		if s != nil && s.Superuser() {
			return nil
		}
		return fmt.Errorf("%s.%s: %w", a.class.Name, id, ErrConstructOnly)
	}
	return a.tk.setProperty(o, id, value)
}

// Property implements shadow.Adaptor.
func (a *Adaptor) Property(obj entity.Object, id string) (any, error) {
	o := asObject(obj)
	if a.isSizeProperty(id) {
		return len(o.children), nil
	}
	return a.tk.property(o, id)
}

func (a *Adaptor) isSizeProperty(id string) bool {
	return a.class.SizeProperty != "" && entity.NormalizeID(id) == a.class.SizeProperty
}

// resize adds placeholders at the end or removes trailing placeholders.
// Real children are never dropped.
func (a *Adaptor) resize(o *Object, size int) error {
	if size < 0 {
		return fmt.Errorf("negative size %d", size)
	}
	for len(o.children) < size {
		a.tk.attach(o, asObject(a.tk.NewPlaceholder()))
	}
	for len(o.children) > size {
		last := o.children[len(o.children)-1]
		if !last.placeholder {
			return fmt.Errorf("cannot shrink %s below %d occupied slots", a.class.Name, len(o.children))
		}
		a.tk.detach(o, last)
		destroyTree(last)
	}
	return nil
}

// SetChildProperty implements shadow.Adaptor.
func (a *Adaptor) SetChildProperty(container, child entity.Object, id string, value any) error {
	return a.tk.setChildProperty(asObject(container), asObject(child), id, value)
}

// ChildProperty implements shadow.Adaptor.
func (a *Adaptor) ChildProperty(container, child entity.Object, id string) (any, error) {
	return a.tk.childProperty(asObject(container), asObject(child), id)
}

// Add implements shadow.Adaptor. Interactive additions to a container using
// placeholders take the place of its last placeholder so the slot count is
// kept.
func (a *Adaptor) Add(s *shadow.Session, container, child entity.Object) {
	c := asObject(container)
	ch := asObject(child)
	if a.class.UsePlaceholders && !ch.placeholder && (s == nil || !s.Superuser()) {
		for i := len(c.children) - 1; i >= 0; i-- {
			if ph := c.children[i]; ph.placeholder {
				a.tk.detach(c, ph)
				destroyTree(ph)
				break
			}
		}
	}
	a.tk.attach(c, ch)
}

// Remove implements shadow.Adaptor.
func (a *Adaptor) Remove(container, child entity.Object) {
	a.tk.detach(asObject(container), asObject(child))
}

// Replace implements shadow.Adaptor.
func (a *Adaptor) Replace(container, old, replacement entity.Object) {
	a.tk.replace(asObject(container), asObject(old), asObject(replacement))
}

// Children implements shadow.Adaptor. Embedded anarchist internals are
// reported after the packed children.
func (a *Adaptor) Children(obj entity.Object) []entity.Object {
	kids := asObject(obj).Children()
	out := make([]entity.Object, 0, len(kids))
	for _, c := range kids {
		out = append(out, c)
	}
	return out
}

// HasChild implements shadow.Adaptor. Embedded internals count as children.
func (a *Adaptor) HasChild(container, child entity.Object) bool {
	c, ok := child.(*Object)
	return ok && c.parent == asObject(container)
}

// InternalChild implements shadow.Adaptor.
func (a *Adaptor) InternalChild(obj entity.Object, name string) (entity.Object, bool) {
	ic, ok := asObject(obj).internals[name]
	if !ok {
		return nil, false
	}
	return ic, true
}

// PostCreate implements shadow.Adaptor. Interactively created toplevels
// start at their default size, and single-slot containers get their
// placeholder.
func (a *Adaptor) PostCreate(_ *shadow.Session, obj entity.Object, reason entity.CreateReason) error {
	if reason != entity.CreateUser {
		return nil
	}
	o := asObject(obj)
	if a.class.Toplevel {
		o.width, o.height = a.class.DefaultWidth, a.class.DefaultHeight
	}
	if a.class.UsePlaceholders && a.class.SizeProperty == "" && len(o.children) == 0 {
		a.tk.attach(o, asObject(a.tk.NewPlaceholder()))
	}
	return nil
}
