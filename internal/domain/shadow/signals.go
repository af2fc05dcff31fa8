package shadow

import (
	"fmt"

	"github.com/bnema/shade/internal/domain/entity"
)

// SignalTable holds the signal bindings of a node, grouped by signal name.
// Names keep their first insertion order and bindings keep theirs.
type SignalTable struct {
	names    []string
	handlers map[string][]*entity.Signal
}

// NewSignalTable creates an empty table.
func NewSignalTable() *SignalTable {
	return &SignalTable{handlers: make(map[string][]*entity.Signal)}
}

// Names returns the signal names that have bindings.
func (t *SignalTable) Names() []string {
	out := make([]string, 0, len(t.names))
	for _, name := range t.names {
		if len(t.handlers[name]) > 0 {
			out = append(out, name)
		}
	}
	return out
}

// Handlers returns copies of the bindings of one signal.
func (t *SignalTable) Handlers(name string) []*entity.Signal {
	out := entity.CloneSignals(t.handlers[name])
	if out == nil {
		out = []*entity.Signal{}
	}
	return out
}

// All returns copies of every binding.
func (t *SignalTable) All() []*entity.Signal {
	var raw []*entity.Signal
	for _, name := range t.names {
		raw = append(raw, t.handlers[name]...)
	}
	return entity.CloneSignals(raw)
}

// Len returns the number of bindings.
func (t *SignalTable) Len() int {
	n := 0
	for _, list := range t.handlers {
		n += len(list)
	}
	return n
}

func (t *SignalTable) add(sig *entity.Signal) {
	if _, ok := t.handlers[sig.Name]; !ok {
		t.names = append(t.names, sig.Name)
	}
	t.handlers[sig.Name] = append(t.handlers[sig.Name], sig)
}

func (t *SignalTable) find(sig *entity.Signal) (list []*entity.Signal, index int, ok bool) {
	list, ok = t.handlers[sig.Name]
	if !ok {
		return nil, -1, false
	}
	for i, cur := range list {
		if cur.Equal(sig) {
			return list, i, true
		}
	}
	return list, -1, true
}

func (t *SignalTable) clear() {
	t.names = nil
	t.handlers = make(map[string][]*entity.Signal)
}

// AddSignalHandler appends a copy of sig to the bindings of its signal.
func (s *Session) AddSignalHandler(n *Node, sig *entity.Signal) {
	if n == nil || sig == nil {
		panic("shadow: add signal handler needs a node and a signal")
	}
	stored := sig.Clone()
	n.signals.add(stored)
	s.emit(SignalEvent{Kind: SignalAdded, Node: n, Signal: stored.Clone()})
}

// RemoveSignalHandler removes the first binding equal to sig. Removing a
// binding that does not exist is a caller error.
func (s *Session) RemoveSignalHandler(n *Node, sig *entity.Signal) {
	if n == nil || sig == nil {
		panic("shadow: remove signal handler needs a node and a signal")
	}
	list, i, ok := n.signals.find(sig)
	if !ok || i < 0 {
		panic(fmt.Sprintf("shadow: removing a signal handler %q that %s does not have", sig.Name, n))
	}
	removed := list[i]
	n.signals.handlers[sig.Name] = append(list[:i:i], list[i+1:]...)
	s.emit(SignalEvent{Kind: SignalRemoved, Node: n, Signal: removed.Clone()})
}

// ChangeSignalHandler replaces the binding equal to old with the fields of
// replacement. Both must name the same signal.
func (s *Session) ChangeSignalHandler(n *Node, old, replacement *entity.Signal) {
	if n == nil || old == nil || replacement == nil {
		panic("shadow: change signal handler needs a node and two signals")
	}
	if old.Name != replacement.Name {
		panic(fmt.Sprintf("shadow: cannot change signal %q into %q", old.Name, replacement.Name))
	}
	list, i, ok := n.signals.find(old)
	if !ok || i < 0 {
		panic(fmt.Sprintf("shadow: changing a signal handler %q that %s does not have", old.Name, n))
	}
	cur := list[i]
	prev := cur.Clone()
	cur.Handler = replacement.Handler
	cur.UserData = replacement.UserData
	cur.After = replacement.After
	cur.Lookup = replacement.Lookup
	s.emit(SignalEvent{Kind: SignalChanged, Node: n, Signal: cur.Clone(), Old: prev})
}

func (s *Session) copySignals(n, template *Node) {
	for _, sig := range template.signals.All() {
		s.AddSignalHandler(n, sig)
	}
}
