// File: api.go
// Role: Read-only accessors, dict-like projections and the Stats snapshot.
// Determinism:
//   - Projections iterate visible nodes in store order.
// AI-HINT (file):
//   - Nodes()/Edges() return the live store handles of this view; mutating
//     them bypasses the graph's validation and logging.
//   - Stats() is an O(V+E) snapshot.

package core

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvgraph/orm"
	"github.com/katalvlaran/lvgraph/store"
)

// Nodes returns the node store handle of this view.
func (g *Graph) Nodes() *store.Store[NodeID] { return g.nodes }

// Edges returns the edge store handle of this view.
func (g *Graph) Edges() *store.Store[EdgeID] { return g.edges }

// Directed reports the default directedness of new edges.
func (g *Graph) Directed() bool { return g.directed }

// AutoID reports whether node ids are assigned automatically.
func (g *Graph) AutoID() bool { return g.autoID }

// KeyField names the attribute behind Keys.
func (g *Graph) KeyField() string { return g.keyField }

// ValueField names the attribute behind Values.
func (g *Graph) ValueField() string { return g.valueField }

// Origin returns the root graph owning the storage.
func (g *Graph) Origin() *Graph { return g.origin }

// IsOrigin reports whether g is its own origin.
func (g *Graph) IsOrigin() bool { return g.origin == g }

// OriginID returns the identity of the origin graph.
func (g *Graph) OriginID() uuid.UUID { return g.origin.id }

// SharesOrigin reports whether g and other resolve to the same origin object.
func (g *Graph) SharesOrigin(other *Graph) bool {
	return other != nil && g.origin == other.origin
}

// ORM returns the origin's capability mapper.
func (g *Graph) ORM() *orm.Mapper[*Graph] { return g.origin.mapper }

// Logger returns the origin's logger.
func (g *Graph) Logger() *zap.Logger { return g.origin.logger }

// Root returns the root node id, or nil.
func (g *Graph) Root() NodeID { return g.root }

// SetRoot sets the root node id of this view.
func (g *Graph) SetRoot(id NodeID) { g.root = normalize(id) }

// NextID returns the id the next auto-id node will receive.
func (g *Graph) NextID() int64 { return g.origin.nextID }

// Conflicts returns how many ConflictWarnings the origin has logged.
func (g *Graph) Conflicts() int { return g.origin.conflicts }

// Len returns the number of visible nodes.
func (g *Graph) Len() int { return g.nodes.Len() }

// IsEmpty reports whether no node is visible.
func (g *Graph) IsEmpty() bool { return g.nodes.Len() == 0 }

// IsView reports whether either store is masked.
func (g *Graph) IsView() bool { return g.nodes.IsView() || g.edges.IsView() }

// HasNode reports whether id is visible in g.
func (g *Graph) HasNode(id NodeID) bool {
	id, err := checkID(id)

	return err == nil && g.nodes.Has(id)
}

// HasEdge reports whether (from, to) is visible in g.
func (g *Graph) HasEdge(from, to NodeID) bool {
	e, err := checkEdge(EdgeID{From: from, To: to})

	return err == nil && g.edges.Has(e)
}

// NodeIDs returns the visible node ids.
func (g *Graph) NodeIDs() []NodeID { return g.nodes.KeyList() }

// EdgeIDs returns the visible edge ids.
func (g *Graph) EdgeIDs() []EdgeID { return g.edges.KeyList() }

// NodeAttrs returns the record of a visible node.
func (g *Graph) NodeAttrs(id NodeID) (*store.Record, bool) {
	id, err := checkID(id)
	if err != nil {
		return nil, false
	}

	return g.nodes.Get(id)
}

// EdgeAttrs returns the record of a visible edge.
func (g *Graph) EdgeAttrs(from, to NodeID) (*store.Record, bool) {
	e, err := checkEdge(EdgeID{From: from, To: to})
	if err != nil {
		return nil, false
	}

	return g.edges.Get(e)
}

// Keys iterates the key-field attribute of every visible node (nil when unset).
func (g *Graph) Keys() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, rec := range g.nodes.Items() {
			if !yield(rec.GetOr(g.keyField, nil)) {
				return
			}
		}
	}
}

// Values iterates the value-field attribute of every visible node (nil when unset).
func (g *Graph) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, rec := range g.nodes.Items() {
			if !yield(rec.GetOr(g.valueField, nil)) {
				return
			}
		}
	}
}

// Items iterates (key-field, value-field) pairs of visible nodes.
func (g *Graph) Items() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, rec := range g.nodes.Items() {
			if !yield(rec.GetOr(g.keyField, nil), rec.GetOr(g.valueField, nil)) {
				return
			}
		}
	}
}

// String renders a short summary.
func (g *Graph) String() string {
	kind := "graph"
	if !g.IsOrigin() {
		kind = "view"
	}

	return fmt.Sprintf("<%s %s: %d nodes, %d edges>", kind, g.origin.id, g.nodes.Len(), g.edges.Len())
}

// GraphStats is a read-only snapshot of a graph's configuration and sizes.
type GraphStats struct {
	OriginID uuid.UUID
	IsOrigin bool
	IsView   bool
	Directed bool
	AutoID   bool

	NodeCount int
	EdgeCount int

	// LinkedEdgeCount counts visible edge keys stored as references
	// (the second direction of undirected pairs).
	LinkedEdgeCount int

	// DirectedEdgeCount counts visible edges whose reverse is not visible.
	DirectedEdgeCount int

	NextID       int64
	Conflicts    int
	NodeBindings int
	EdgeBindings int
}

// Stats produces a snapshot of flags and sizes.
//
// Complexity:
//   - Time O(V + E), Space O(1).
func (g *Graph) Stats() *GraphStats {
	st := &GraphStats{
		OriginID:     g.origin.id,
		IsOrigin:     g.IsOrigin(),
		IsView:       g.IsView(),
		Directed:     g.directed,
		AutoID:       g.autoID,
		NodeCount:    g.nodes.Len(),
		EdgeCount:    g.edges.Len(),
		NextID:       g.origin.nextID,
		Conflicts:    g.origin.conflicts,
		NodeBindings: g.origin.mapper.Nodes.Len(),
		EdgeBindings: g.origin.mapper.Edges.Len(),
	}
	for e := range g.edges.Keys() {
		if g.edges.IsReference(e) {
			st.LinkedEdgeCount++
		}
		if !g.edges.Has(e.Reverse()) {
			st.DirectedEdgeCount++
		}
	}

	return st
}
