package shadow

import (
	"github.com/rs/zerolog"

	"github.com/bnema/shade/internal/domain/entity"
)

// SignalEventKind identifies a signal table mutation.
type SignalEventKind int

const (
	SignalAdded SignalEventKind = iota
	SignalRemoved
	SignalChanged
)

func (k SignalEventKind) String() string {
	switch k {
	case SignalAdded:
		return "added"
	case SignalRemoved:
		return "removed"
	case SignalChanged:
		return "changed"
	}
	return "unknown"
}

// SignalEvent is delivered to observers after a signal table mutation.
type SignalEvent struct {
	Kind   SignalEventKind
	Node   *Node
	Signal *entity.Signal
	// Old holds the previous binding for SignalChanged.
	Old *entity.Signal
}

// Session is the construction context shared by every shadow operation:
// the object registry, the superuser depth and the document being loaded
// all live here rather than in process globals.
type Session struct {
	log      zerolog.Logger
	catalog  Catalog
	toolkit  Toolkit
	registry *Registry

	superuser int

	loading     Document
	loadedNodes map[string]*Node
	pendingRefs []pendingRef

	observers  map[int]func(SignalEvent)
	observerID int
}

// NewSession creates a session over the given catalog and toolkit.
func NewSession(catalog Catalog, toolkit Toolkit, logger zerolog.Logger) *Session {
	if catalog == nil || toolkit == nil {
		panic("shadow: session requires a catalog and a toolkit")
	}
	return &Session{
		log:       logger.With().Str("component", "shadow").Logger(),
		catalog:   catalog,
		toolkit:   toolkit,
		registry:  NewRegistry(),
		observers: make(map[int]func(SignalEvent)),
	}
}

// Catalog returns the adaptor catalog.
func (s *Session) Catalog() Catalog { return s.catalog }

// Toolkit returns the live object toolkit.
func (s *Session) Toolkit() Toolkit { return s.toolkit }

// Registry returns the object to node side table.
func (s *Session) Registry() *Registry { return s.registry }

// Logger returns the session logger.
func (s *Session) Logger() zerolog.Logger { return s.log }

// NodeForObject returns the node wrapping obj, or nil.
func (s *Session) NodeForObject(obj entity.Object) *Node {
	return s.registry.Lookup(obj)
}

// PushSuperuser enters superuser mode. Adaptors skip interactive
// conveniences while it is active.
func (s *Session) PushSuperuser() {
	s.superuser++
}

// PopSuperuser leaves one level of superuser mode.
func (s *Session) PopSuperuser() {
	s.superuser--
	if s.superuser < 0 {
		s.log.Error().Msg("superuser stack is corrupt, popped more than pushed")
		s.superuser = 0
	}
}

// Superuser reports whether superuser mode is active.
func (s *Session) Superuser() bool {
	return s.superuser > 0
}

// Loading returns the document currently being read, or nil.
func (s *Session) Loading() Document {
	return s.loading
}

// OnSignalEvent registers an observer of signal table mutations. The
// returned function unregisters it.
func (s *Session) OnSignalEvent(fn func(SignalEvent)) func() {
	s.observerID++
	id := s.observerID
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

func (s *Session) emit(ev SignalEvent) {
	for id := 1; id <= s.observerID; id++ {
		if fn, ok := s.observers[id]; ok {
			fn(ev)
		}
	}
}

func (s *Session) adaptorFor(className string) (Adaptor, bool) {
	return s.catalog.Adaptor(className)
}

// IsA reports whether class className is name or derives from it.
func (s *Session) IsA(className, name string) bool {
	seen := make(map[string]bool)
	for className != "" && !seen[className] {
		if className == name {
			return true
		}
		seen[className] = true
		a, ok := s.adaptorFor(className)
		if !ok {
			return false
		}
		className = a.Class().Parent
	}
	return false
}
