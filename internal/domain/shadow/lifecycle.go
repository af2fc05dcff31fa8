package shadow

// Show makes the live object visible and remembers it.
func (s *Session) Show(n *Node) {
	if n == nil {
		panic("shadow: show needs a node")
	}
	n.visible = true
	if n.object != nil {
		s.toolkit.Show(n.object)
	}
}

// Hide hides the live object.
func (s *Session) Hide(n *Node) {
	if n == nil {
		panic("shadow: hide needs a node")
	}
	n.visible = false
	if n.object != nil {
		s.toolkit.Hide(n.object)
	}
}

// Destroy releases n and its subtree. Owned live objects are destroyed,
// internal ones are left to their owner.
func (s *Session) Destroy(n *Node) {
	if n == nil || n.destroyed {
		return
	}
	obj := n.object
	owned := n.internal == ""
	s.releaseTree(n)
	if owned && obj != nil {
		s.toolkit.Destroy(obj)
	}
}

func (s *Session) releaseTree(n *Node) {
	for _, child := range n.Children() {
		s.releaseTree(child)
	}
	for _, internal := range s.internalNodes(n) {
		if !internal.destroyed {
			s.releaseNode(internal)
		}
	}
	s.releaseNode(n)
}

// releaseNode drops everything n holds without touching the live object.
func (s *Session) releaseNode(n *Node) {
	if n.destroyed {
		return
	}
	for _, p := range n.properties {
		if p.class.Type.IsObject() {
			p.updateRefs(p.value, nil)
		}
	}
	s.registry.Unregister(n.object, n)
	n.properties = nil
	n.packing = nil
	n.signals.clear()
	n.actions = nil
	n.packingActions = nil
	n.propRefs = nil
	n.object = nil
	n.destroyed = true

	s.log.Trace().Str("node", n.name).Msg("node released")
}
