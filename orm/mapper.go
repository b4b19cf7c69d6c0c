// File: mapper.go
// Role: Node and edge registry pair owned by one origin graph.
// Determinism:
//   - Clone copies bindings, id counters and the Inherit switch.
// AI-HINT (file):
//   - Inherit controls whether a selection made from a view carries that
//     view's capability types forward. NewMapper turns it on.

package orm

import "go.uber.org/zap"

// Mapper pairs the node and edge registries of one origin graph.
type Mapper[V any] struct {
	Nodes *Registry[V]
	Edges *Registry[V]

	// Inherit passes the capability types of the selecting view on to the
	// selection, after the types resolved for it.
	Inherit bool
}

// NewMapper returns a mapper with two empty registries sharing logger and
// inheritance enabled.
func NewMapper[V any](logger *zap.Logger) *Mapper[V] {
	return &Mapper[V]{Nodes: NewRegistry[V](logger), Edges: NewRegistry[V](logger), Inherit: true}
}

// Clone deep-copies both registries.
func (m *Mapper[V]) Clone() *Mapper[V] {
	return &Mapper[V]{Nodes: m.Nodes.Clone(), Edges: m.Edges.Clone(), Inherit: m.Inherit}
}

// SetLogger forwards logger to both registries.
func (m *Mapper[V]) SetLogger(logger *zap.Logger) {
	m.Nodes.SetLogger(logger)
	m.Edges.SetLogger(logger)
}
