package shadow

import (
	"github.com/rs/zerolog"

	"github.com/bnema/shade/internal/domain/entity"
)

// Property is the editor-side value of one property of a node.
type Property struct {
	class *entity.PropertyClass
	node  *Node

	value any

	enabled           bool
	sensitive         bool
	insensitiveReason string
	saveAlways        bool
}

func newProperty(class *entity.PropertyClass, node *Node) *Property {
	return &Property{
		class:     class,
		node:      node,
		value:     entity.CopyValue(class.Default),
		enabled:   true,
		sensitive: true,
	}
}

func newProperties(classes []*entity.PropertyClass, node *Node) []*Property {
	if len(classes) == 0 {
		return nil
	}
	props := make([]*Property, 0, len(classes))
	for _, pc := range classes {
		props = append(props, newProperty(pc, node))
	}
	return props
}

// dupProperties copies a property list for node. With asLoad, properties
// that are never saved are left out.
func dupProperties(props []*Property, node *Node, asLoad bool) []*Property {
	var out []*Property
	for _, p := range props {
		if asLoad && !p.class.Save {
			continue
		}
		out = append(out, p.dup(node))
	}
	return out
}

// Class returns the property declaration.
func (p *Property) Class() *entity.PropertyClass { return p.class }

// ID returns the property identifier.
func (p *Property) ID() string { return p.class.ID }

// Node returns the owning node, nil for detached copies.
func (p *Property) Node() *Node { return p.node }

// Value returns the current value.
func (p *Property) Value() any { return entity.CopyValue(p.value) }

// Enabled reports whether the value is applied and saved.
func (p *Property) Enabled() bool { return p.enabled }

// Sensitive reports whether the property is editable.
func (p *Property) Sensitive() bool { return p.sensitive }

// InsensitiveReason explains why the property is not editable.
func (p *Property) InsensitiveReason() string { return p.insensitiveReason }

// SaveAlways reports whether the property is written even at default.
func (p *Property) SaveAlways() bool { return p.saveAlways }

// IsDefault reports whether the value equals the current default.
func (p *Property) IsDefault() bool {
	return entity.ValuesEqual(p.value, p.class.Default)
}

// IsOriginalDefault reports whether the value equals the toolkit default.
func (p *Property) IsOriginalDefault() bool {
	return entity.ValuesEqual(p.value, p.class.OrigDefault)
}

// SetEnabled toggles the property; enabling re-applies the value.
func (p *Property) SetEnabled(enabled bool) {
	if p.enabled == enabled {
		return
	}
	p.enabled = enabled
	if enabled {
		p.Sync()
	}
}

// SetSensitive toggles editability.
func (p *Property) SetSensitive(sensitive bool, reason string) {
	p.sensitive = sensitive
	if sensitive {
		p.insensitiveReason = ""
	} else {
		p.insensitiveReason = reason
	}
}

// SetSaveAlways forces the property to be written even at default.
func (p *Property) SetSaveAlways(save bool) { p.saveAlways = save }

// Set stores v and applies it to the live object. Values the property
// class rejects are logged and ignored.
func (p *Property) Set(v any) bool {
	if !p.class.ValidValue(v) {
		p.logger().Warn().
			Str("property", p.class.ID).
			Str("type", p.class.Type.String()).
			Interface("value", v).
			Msg("rejecting invalid property value")
		return false
	}
	if p.class.Type.IsObject() {
		p.updateRefs(p.value, v)
	}
	p.value = entity.CopyValue(v)
	p.Sync()
	return true
}

// Reset restores the current default.
func (p *Property) Reset() bool {
	return p.Set(entity.CopyValue(p.class.Default))
}

// OriginalReset restores the toolkit default.
func (p *Property) OriginalReset() bool {
	return p.Set(entity.CopyValue(p.class.OrigDefault))
}

// Sync pushes the stored value to the live object.
func (p *Property) Sync() {
	n := p.node
	if n == nil || n.object == nil || !p.enabled || p.class.Ignore {
		return
	}
	var err error
	if p.class.Packing {
		parent := n.parent
		if parent == nil || parent.object == nil || !parent.adaptor.HasChild(parent.object, n.object) {
			return
		}
		err = parent.adaptor.SetChildProperty(parent.object, n.object, p.class.ID, p.value)
	} else {
		err = n.adaptor.SetProperty(n.session, n.object, p.class.ID, p.value)
	}
	if err != nil {
		p.logger().Error().Err(err).
			Str("node", n.name).
			Str("property", p.class.ID).
			Msg("failed to apply property")
	}
}

// Load reads the value back from the live object. Object references and
// properties the toolkit does not own are left untouched.
func (p *Property) Load() {
	n := p.node
	if n == nil || n.object == nil || p.class.Ignore || p.class.Packing || p.class.Type.IsObject() {
		return
	}
	v, err := n.adaptor.Property(n.object, p.class.ID)
	if err != nil {
		p.logger().Debug().Err(err).
			Str("node", n.name).
			Str("property", p.class.ID).
			Msg("property not readable")
		return
	}
	if p.class.Type.Accepts(v) {
		p.value = v
	}
}

func (p *Property) dup(node *Node) *Property {
	return &Property{
		class:             p.class,
		node:              node,
		value:             entity.CopyValue(p.value),
		enabled:           p.enabled,
		sensitive:         p.sensitive,
		insensitiveReason: p.insensitiveReason,
		saveAlways:        p.saveAlways,
	}
}

// addObject makes the property reference obj.
func (p *Property) addObject(obj entity.Object) {
	if obj == nil {
		return
	}
	switch p.class.Type {
	case entity.TypeObjects:
		list, _ := p.value.([]entity.Object)
		for _, o := range list {
			if o == obj {
				return
			}
		}
		p.Set(append(append([]entity.Object(nil), list...), obj))
	case entity.TypeObject:
		if p.value != obj {
			p.Set(obj)
		}
	}
}

// removeObject drops a reference to obj.
func (p *Property) removeObject(obj entity.Object) {
	if obj == nil {
		return
	}
	switch p.class.Type {
	case entity.TypeObjects:
		list, _ := p.value.([]entity.Object)
		out := make([]entity.Object, 0, len(list))
		for _, o := range list {
			if o != obj {
				out = append(out, o)
			}
		}
		if len(out) != len(list) {
			p.Set(out)
		}
	case entity.TypeObject:
		if o, ok := p.value.(entity.Object); ok && o == obj {
			p.Set(nil)
		}
	}
}

func (p *Property) updateRefs(oldValue, newValue any) {
	if p.node == nil {
		return
	}
	reg := p.node.session.registry
	oldObjs := objectsOf(oldValue)
	newObjs := objectsOf(newValue)
	for _, o := range oldObjs {
		if !containsObject(newObjs, o) {
			if target := reg.Lookup(o); target != nil {
				target.RemovePropRef(p)
			}
		}
	}
	for _, o := range newObjs {
		if !containsObject(oldObjs, o) {
			if target := reg.Lookup(o); target != nil {
				target.AddPropRef(p)
			}
		}
	}
}

func objectsOf(v any) []entity.Object {
	switch val := v.(type) {
	case []entity.Object:
		return val
	case entity.Object:
		return []entity.Object{val}
	}
	return nil
}

func containsObject(list []entity.Object, obj entity.Object) bool {
	for _, o := range list {
		if o == obj {
			return true
		}
	}
	return false
}

func (p *Property) logger() *zerolog.Logger {
	if p.node == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return &p.node.session.log
}
