package port

import "github.com/bnema/shade/internal/domain/shadow"

// Project is a document whose root nodes can be enumerated.
type Project interface {
	shadow.Document

	// Toplevels returns the root nodes in document order.
	Toplevels() []*shadow.Node
}
