package memtoolkit

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/shadow"
)

// Toolkit owns the class table of the in-memory object model.
// It implements shadow.Toolkit.
type Toolkit struct {
	mu      sync.RWMutex
	classes map[string]*entity.WidgetClass
	log     zerolog.Logger
}

var _ shadow.Toolkit = (*Toolkit)(nil)

// New creates an empty toolkit.
func New(logger zerolog.Logger) *Toolkit {
	return &Toolkit{
		classes: make(map[string]*entity.WidgetClass),
		log:     logger.With().Str("component", "memtoolkit").Logger(),
	}
}

// Register adds or replaces classes.
func (tk *Toolkit) Register(classes ...*entity.WidgetClass) {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	for _, c := range classes {
		tk.classes[c.Name] = c
	}
}

// Class returns a registered class.
func (tk *Toolkit) Class(name string) (*entity.WidgetClass, bool) {
	tk.mu.RLock()
	defer tk.mu.RUnlock()
	c, ok := tk.classes[name]
	return c, ok
}

// PropertyType implements shadow.Toolkit. Virtual properties are not part
// of the live object and are not reported.
func (tk *Toolkit) PropertyType(className, id string) (entity.ValueType, bool) {
	class, ok := tk.Class(className)
	if !ok {
		return entity.TypeString, false
	}
	pc := class.Property(id)
	if pc == nil || pc.Virtual {
		return entity.TypeString, false
	}
	return pc.Type, true
}

// NewPlaceholder implements shadow.Toolkit.
func (tk *Toolkit) NewPlaceholder() entity.Object {
	o := newObject(nil)
	o.placeholder = true
	return o
}

// IsPlaceholder implements shadow.Toolkit.
func (tk *Toolkit) IsPlaceholder(obj entity.Object) bool {
	o, ok := obj.(*Object)
	return ok && o.placeholder
}

// ObjectData implements shadow.Toolkit.
func (tk *Toolkit) ObjectData(obj entity.Object, key string) string {
	return asObject(obj).data[key]
}

// SetObjectData implements shadow.Toolkit. An empty value clears the key.
func (tk *Toolkit) SetObjectData(obj entity.Object, key, value string) {
	o := asObject(obj)
	if value == "" {
		delete(o.data, key)
		return
	}
	o.data[key] = value
}

// Size implements shadow.Toolkit.
func (tk *Toolkit) Size(obj entity.Object) (int, int) {
	o := asObject(obj)
	return o.width, o.height
}

// SetSize implements shadow.Toolkit.
func (tk *Toolkit) SetSize(obj entity.Object, width, height int) {
	o := asObject(obj)
	o.width, o.height = width, height
}

// Show implements shadow.Toolkit.
func (tk *Toolkit) Show(obj entity.Object) { asObject(obj).visible = true }

// Hide implements shadow.Toolkit.
func (tk *Toolkit) Hide(obj entity.Object) { asObject(obj).visible = false }

// Destroy implements shadow.Toolkit. The object is detached from its parent
// and its whole subtree, internal children included, is destroyed.
func (tk *Toolkit) Destroy(obj entity.Object) {
	o := asObject(obj)
	if o.destroyed {
		return
	}
	switch {
	case o.parent == nil:
	case o.parent.isEmbedded(o):
		tk.unembed(o.parent, o)
	default:
		tk.detach(o.parent, o)
	}
	destroyTree(o)
}

func destroyTree(o *Object) {
	o.destroyed = true
	o.visible = false
	for _, c := range o.children {
		c.parent = nil
		destroyTree(c)
	}
	for _, ic := range o.internals {
		if !ic.destroyed {
			destroyTree(ic)
		}
	}
	o.children = nil
	o.embedded = nil
}

// instantiate creates an object of class and its internal children.
func (tk *Toolkit) instantiate(class *entity.WidgetClass, params []shadow.Param) (*Object, error) {
	o := newObject(class)
	for _, p := range params {
		if err := tk.setProperty(o, p.ID, p.Value); err != nil {
			return nil, fmt.Errorf("construct %s: %w", class.Name, err)
		}
	}
	for _, ic := range class.InternalChildren {
		childClass, ok := tk.Class(ic.Class)
		if !ok {
			return nil, fmt.Errorf("construct %s: unknown internal child class %q", class.Name, ic.Class)
		}
		child, err := tk.instantiate(childClass, nil)
		if err != nil {
			return nil, err
		}
		child.internalName = ic.Name
		if o.internals == nil {
			o.internals = make(map[string]*Object)
		}
		o.internals[ic.Name] = child
		if ic.Anarchist {
			tk.embed(o, child)
		} else {
			tk.attach(o, child)
		}
	}
	return o, nil
}

func (tk *Toolkit) setProperty(o *Object, id string, v any) error {
	pc, err := ownProperty(o, id)
	if err != nil {
		return err
	}
	if !pc.ValidValue(v) {
		return fmt.Errorf("invalid %s value %v for %s.%s", pc.Type, v, o.class.Name, pc.ID)
	}
	o.props[pc.ID] = entity.CopyValue(v)
	return nil
}

func (tk *Toolkit) property(o *Object, id string) (any, error) {
	pc, err := ownProperty(o, id)
	if err != nil {
		return nil, err
	}
	return entity.CopyValue(o.props[pc.ID]), nil
}

func ownProperty(o *Object, id string) (*entity.PropertyClass, error) {
	if o.class == nil {
		return nil, fmt.Errorf("placeholder has no property %q", id)
	}
	pc := o.class.Property(id)
	if pc == nil || pc.Virtual {
		return nil, fmt.Errorf("%s has no property %q", o.class.Name, id)
	}
	return pc, nil
}

func (tk *Toolkit) attach(container, child *Object) {
	if container.destroyed || child.destroyed {
		panic("memtoolkit: attaching a destroyed object")
	}
	if child.parent != nil {
		panic(fmt.Sprintf("memtoolkit: %s already has a parent", child.id))
	}
	container.children = append(container.children, child)
	child.parent = container
	child.childProps = packingDefaults(container)
	renumber(container)
}

// embed places an anarchist internal inside owner without giving it a slot
// or packing values.
func (tk *Toolkit) embed(owner, child *Object) {
	if child.parent != nil {
		panic(fmt.Sprintf("memtoolkit: %s already has a parent", child.id))
	}
	owner.embedded = append(owner.embedded, child)
	child.parent = owner
}

func (tk *Toolkit) unembed(owner, child *Object) {
	for i, e := range owner.embedded {
		if e == child {
			owner.embedded = append(owner.embedded[:i:i], owner.embedded[i+1:]...)
			break
		}
	}
	child.parent = nil
}

func (tk *Toolkit) detach(container, child *Object) {
	i := container.indexOf(child)
	if i < 0 {
		panic(fmt.Sprintf("memtoolkit: %s is not a child of %s", child.id, container.id))
	}
	container.children = append(container.children[:i:i], container.children[i+1:]...)
	child.parent = nil
	child.childProps = nil
	renumber(container)
}

func (tk *Toolkit) replace(container, old, replacement *Object) {
	i := container.indexOf(old)
	if i < 0 {
		panic(fmt.Sprintf("memtoolkit: %s is not a child of %s", old.id, container.id))
	}
	if replacement.parent != nil {
		panic(fmt.Sprintf("memtoolkit: %s already has a parent", replacement.id))
	}
	container.children[i] = replacement
	replacement.parent = container
	replacement.childProps = old.childProps
	old.parent = nil
	old.childProps = nil
}

func (tk *Toolkit) setChildProperty(container, child *Object, id string, v any) error {
	pc, err := packingProperty(container, child, id)
	if err != nil {
		return err
	}
	if !pc.ValidValue(v) {
		return fmt.Errorf("invalid %s packing value %v for %s", pc.Type, v, pc.ID)
	}
	if pc.ID == container.class.PositionProperty {
		move(container, child, v.(int))
		return nil
	}
	child.childProps[pc.ID] = entity.CopyValue(v)
	return nil
}

func (tk *Toolkit) childProperty(container, child *Object, id string) (any, error) {
	pc, err := packingProperty(container, child, id)
	if err != nil {
		return nil, err
	}
	return entity.CopyValue(child.childProps[pc.ID]), nil
}

func packingProperty(container, child *Object, id string) (*entity.PropertyClass, error) {
	if child.parent != container {
		return nil, fmt.Errorf("%s is not a child of %s", child.id, container.id)
	}
	if container.isEmbedded(child) {
		return nil, fmt.Errorf("%s is embedded in %s without packing", child.id, container.id)
	}
	if container.class == nil {
		return nil, fmt.Errorf("placeholder has no packing property %q", id)
	}
	pc := container.class.PackingProperty(id)
	if pc == nil {
		return nil, fmt.Errorf("%s has no packing property %q", container.class.Name, id)
	}
	return pc, nil
}

func packingDefaults(container *Object) map[string]any {
	props := make(map[string]any)
	if container.class == nil {
		return props
	}
	for _, pc := range container.class.PackingProperties {
		props[pc.ID] = entity.CopyValue(pc.OrigDefault)
	}
	return props
}

// move places child at index, clamped to the child range.
func move(container, child *Object, index int) {
	i := container.indexOf(child)
	if index < 0 {
		index = 0
	}
	if index >= len(container.children) {
		index = len(container.children) - 1
	}
	if i == index {
		return
	}
	children := append(container.children[:i:i], container.children[i+1:]...)
	children = append(children[:index], append([]*Object{child}, children[index:]...)...)
	container.children = children
	renumber(container)
}

func renumber(container *Object) {
	if container.class == nil || container.class.PositionProperty == "" {
		return
	}
	for i, c := range container.children {
		c.childProps[container.class.PositionProperty] = i
	}
}

func asObject(obj entity.Object) *Object {
	o, ok := obj.(*Object)
	if !ok {
		panic(fmt.Sprintf("memtoolkit: foreign object %T", obj))
	}
	return o
}
