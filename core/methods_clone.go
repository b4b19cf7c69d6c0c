// File: methods_clone.go
// Role: Shallow and deep copies of graphs and views.
// Determinism:
//   - Deep copies carry the origin id counter forward so new auto ids never
//     collide with copied ones.
// AI-HINT (file):
//   - Shallow copy = new wrapper, same backing, own copy of the masks.
//   - Deep copy = new origin; copyView=false keeps only visible data,
//     copyView=true keeps the full backing and re-applies the masks.

package core

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Copy returns a copy of g.
//
// Implementation:
//   - deep=false: the copy aliases g's backing (same origin) with cloned masks;
//     capabilities are rebuilt for the new wrapper.
//   - deep=true: records are duplicated into a new origin with a fresh
//     identity, a cloned ORM mapper and the same logger. Reference pairs stay
//     linked inside the copy.
//
// A root that is no longer visible in the copy moves to the visible node with
// the smallest internal id.
//
// Complexity:
//   - Shallow O(mask size); deep O(V + E) of the copied scope.
func (g *Graph) Copy(deep, copyView bool) *Graph {
	if !deep {
		c := g.derive(g.nodes.Shallow(), g.edges.Shallow())
		c.instantiate(g.capTypes)
		g.log().Debug("shallow copy")

		return c
	}

	o := g.origin
	c := &Graph{
		nodes:         g.nodes.Duplicate(copyView),
		edges:         g.edges.Duplicate(copyView),
		directed:      g.directed,
		autoID:        g.autoID,
		createMissing: g.createMissing,
		keyField:      g.keyField,
		valueField:    g.valueField,
		root:          g.root,
		id:            uuid.New(),
		nextID:        o.nextID,
		mapper:        o.mapper.Clone(),
		logger:        o.logger,
	}
	c.origin = c
	if !copyView {
		// edge-driven views may hide endpoints; an independent graph needs them
		full := g.nodes.Full()
		for e := range c.edges.Keys() {
			for _, n := range []NodeID{e.From, e.To} {
				if rec, ok := full.Get(n); ok && !c.nodes.Has(n) {
					c.nodes.Set(n, rec.Clone())
				}
			}
		}
	}
	c.resetRoot()
	c.instantiate(g.capTypes)
	g.log().Debug("deep copy", zap.Stringer("copy", c.id), zap.Bool("copy_view", copyView))

	return c
}

// Clone is Copy(true, false): an independent graph of what g shows.
func (g *Graph) Clone() *Graph { return g.Copy(true, false) }
