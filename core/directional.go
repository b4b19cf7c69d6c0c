// File: directional.go
// Role: Directionality reporting and conversion between directed and undirected storage.
// AI-HINT (file):
//   - Directionality() looks at reference markers (shared records);
//     TopologyDirectionality() only at whether reverse edges exist.
//   - ToDirected/ToUndirected return deep copies; the receiver is unchanged.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/store"
)

// Direction classifies a graph's edges.
type Direction int

const (
	// Undirectional: every non-loop edge is half of a pair.
	Undirectional Direction = iota
	// Directional: no non-loop edge is half of a pair.
	Directional
	// Mixed: some are, some are not.
	Mixed
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Undirectional:
		return "undirectional"
	case Directional:
		return "directional"
	case Mixed:
		return "mixed"
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

func classify(flags []bool) Direction {
	var yes, no int
	for _, f := range flags {
		if f {
			yes++
		} else {
			no++
		}
	}
	switch {
	case no == 0:
		return Undirectional
	case yes == 0:
		return Directional
	}

	return Mixed
}

// Directionality classifies visible non-loop edges by whether they share a
// record with their reverse.
func (g *Graph) Directionality() Direction {
	full := g.edges.Full()
	var flags []bool
	for e := range g.edges.Keys() {
		if e.IsLoop() {
			continue
		}
		linked := false
		if t, ok := full.ReferenceOf(e); ok && t == e.Reverse() {
			linked = true
		}
		if t, ok := full.ReferenceOf(e.Reverse()); ok && t == e {
			linked = true
		}
		flags = append(flags, linked)
	}

	return classify(flags)
}

// TopologyDirectionality classifies visible non-loop edges by whether their
// reverse is visible too.
func (g *Graph) TopologyDirectionality() Direction {
	var flags []bool
	for e := range g.edges.Keys() {
		if e.IsLoop() {
			continue
		}
		flags = append(flags, g.edges.Has(e.Reverse()))
	}

	return classify(flags)
}

// SplitEdge gives (from,to) and (to,from) separate copies of their shared record.
func (g *Graph) SplitEdge(from, to NodeID) error {
	e, err := checkEdge(EdgeID{From: from, To: to})
	if err != nil {
		return fmt.Errorf("split edge: %w", err)
	}
	if !g.edges.Has(e) {
		return fmt.Errorf("split edge %v: %w", e, ErrEdgeNotFound)
	}
	if err := g.edges.Unlink(e); err != nil {
		return fmt.Errorf("split edge %v: %w", e, ErrEdgeNotFound)
	}

	return nil
}

// ToDirected returns a deep copy of g with directed default and every edge
// pair split into two independent records.
func (g *Graph) ToDirected() *Graph {
	c := g.Clone()
	c.directed = true
	for _, e := range c.EdgeIDs() {
		if c.edges.IsReference(e) {
			_ = c.edges.Unlink(e)
		}
	}

	return c
}

// ToUndirected returns a deep copy of g with undirected default where every
// edge and its reverse share one record. When both directions existed their
// attributes are merged, the reverse edge's values winning.
func (g *Graph) ToUndirected() *Graph {
	c := g.Clone()
	c.directed = false
	for _, e := range c.EdgeIDs() {
		_ = c.edges.Remove(e)
	}

	done := make(map[EdgeID]struct{})
	for e, rec := range g.edges.Items() {
		if _, ok := done[e]; ok {
			continue
		}
		merged := rec.Clone()
		if rev, ok := g.edges.Get(e.Reverse()); ok && !e.IsLoop() {
			merged.Update(rev.Clone())
			done[e.Reverse()] = struct{}{}
		}
		done[e] = struct{}{}
		_ = c.putEdge(e, merged, false)
	}

	return c
}

// putEdge stores rec under e (and a reference under its reverse when
// undirected) without hooks or conflict logging. Existing keys are kept.
func (g *Graph) putEdge(e EdgeID, rec *store.Record, directed bool) error {
	edges := g.writableEdges()
	pair := pairOf(e, directed)
	if !edges.Full().Has(pair[0]) {
		edges.Set(pair[0], rec)
	}
	if len(pair) == 2 && !edges.Full().Has(pair[1]) {
		if err := edges.SetReference(pair[1], pair[0]); err != nil {
			return fmt.Errorf("link %v: %w", pair[1], err)
		}
	}

	return nil
}
