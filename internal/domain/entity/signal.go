package entity

import (
	"github.com/jinzhu/copier"
)

// Signal binds a handler to a named toolkit signal.
type Signal struct {
	Name     string
	Handler  string
	UserData string
	After    bool
	Lookup   bool
}

// Equal reports structural equality.
func (s *Signal) Equal(other *Signal) bool {
	if s == nil || other == nil {
		return s == other
	}
	return *s == *other
}

// Clone returns a copy of the binding.
func (s *Signal) Clone() *Signal {
	c := *s
	return &c
}

// CloneSignals returns a list whose bindings share nothing with list.
func CloneSignals(list []*Signal) []*Signal {
	if list == nil {
		return nil
	}
	out := make([]*Signal, 0, len(list))
	if err := copier.CopyWithOption(&out, list, copier.Option{DeepCopy: true}); err != nil {
		out = out[:0]
		for _, sig := range list {
			out = append(out, sig.Clone())
		}
	}
	return out
}
