package shadow

import (
	"github.com/bnema/shade/internal/domain/entity"
)

// SetPackingProperties recreates the packing records of child for
// container. Attached children get the container's per-class defaults
// applied and then take the live values.
func (s *Session) SetPackingProperties(child, container *Node) {
	if child == nil || container == nil {
		panic("shadow: packing properties need a child and a container")
	}
	child.packing = nil
	if child.anarchist {
		return
	}
	child.packing = newProperties(container.class.PackingProperties, child)

	if child.object == nil || container.object == nil ||
		!container.adaptor.HasChild(container.object, child.object) {
		return
	}
	s.applyPackingDefaults(child, container)

	for _, p := range child.packing {
		v, err := container.adaptor.ChildProperty(container.object, child.object, p.class.ID)
		if err != nil {
			s.log.Debug().Err(err).
				Str("child", child.name).
				Str("property", p.class.ID).
				Msg("packing property not readable")
			continue
		}
		if p.class.Type.Accepts(v) {
			p.value = v
		}
	}
}

func (s *Session) applyPackingDefaults(child, container *Node) {
	for _, p := range child.packing {
		text, ok := container.class.PackingDefault(child.class.Name, p.class.ID)
		if !ok {
			continue
		}
		v, err := entity.ParseValue(p.class.Type, text)
		if err != nil {
			s.log.Warn().Err(err).
				Str("container", container.class.Name).
				Str("property", p.class.ID).
				Msg("invalid packing default")
			continue
		}
		if err := container.adaptor.SetChildProperty(container.object, child.object, p.class.ID, v); err != nil {
			s.log.Warn().Err(err).
				Str("child", child.name).
				Str("property", p.class.ID).
				Msg("failed to apply packing default")
		}
	}
}

func (s *Session) syncPackingProperties(n *Node) {
	for _, p := range n.packing {
		p.Sync()
	}
}

func (s *Session) setPackingActions(child, container *Node) {
	child.packingActions = nil
	if !child.anarchist && container.class.HasPackingActions() {
		child.packingActions = entity.NewActions(container.class.PackingActions)
	}
}

// copyPackingProperties copies packing values from template onto child,
// which must already be attached to container.
func (s *Session) copyPackingProperties(container, child, template *Node) {
	if child.parent != container {
		panic("shadow: copying packing properties to a child of another container")
	}
	s.SetPackingProperties(child, container)
	for _, p := range child.packing {
		if orig := template.PackProperty(p.class.ID); orig != nil && orig.class.Match(p.class) {
			p.Set(orig.Value())
		}
	}
}
