// File: adjacency.go
// Role: Derived adjacency index and degree computation.
// Determinism:
//   - Neighbour lists follow edge store order; Nodes() follows node store order.
// AI-HINT (file):
//   - The index is rebuilt by a linear scan on every Adjacency() call and is
//     never cached; take a new one after mutating.
//   - Self-loops appear once in Neighbors and count twice in default Degree.
//   - Only visible nodes are indexed. A visible edge whose endpoint is hidden
//     (edge-driven views) is listed under its visible endpoint only.

package core

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvgraph/store"
)

// DegreeMethod selects which incident edges Degree counts.
type DegreeMethod int

const (
	// DegreeDefault counts outgoing edges, self-loops twice.
	DegreeDefault DegreeMethod = iota
	// DegreeIn counts incoming edges.
	DegreeIn
	// DegreeOut counts outgoing edges, self-loops once.
	DegreeOut
)

// DegreeOption tunes Degree.
type DegreeOption func(*degreeConfig)

type degreeConfig struct {
	weight string
	method DegreeMethod
}

// WithWeight sums the named numeric edge attribute instead of counting edges.
// Edges without the attribute contribute 1.
func WithWeight(attr string) DegreeOption {
	return func(c *degreeConfig) { c.weight = attr }
}

// WithDegreeMethod selects in, out or default counting.
func WithDegreeMethod(m DegreeMethod) DegreeOption {
	return func(c *degreeConfig) { c.method = m }
}

// Adjacency is a snapshot of node → out-neighbours for the visible part of a graph.
type Adjacency struct {
	g     *Graph
	nodes []NodeID
	out   map[NodeID][]NodeID
	in    map[NodeID][]NodeID
}

// Adjacency builds the index from the visible edges of g.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func (g *Graph) Adjacency() *Adjacency {
	a := &Adjacency{
		g:     g,
		nodes: g.nodes.KeyList(),
		out:   make(map[NodeID][]NodeID, g.nodes.Len()),
		in:    make(map[NodeID][]NodeID, g.nodes.Len()),
	}
	for _, n := range a.nodes {
		a.out[n] = nil
	}
	for e := range g.edges.Keys() {
		if _, ok := a.out[e.From]; ok {
			a.out[e.From] = append(a.out[e.From], e.To)
		}
		if g.nodes.Has(e.To) {
			a.in[e.To] = append(a.in[e.To], e.From)
		}
	}

	return a
}

// Nodes lists the visible nodes.
func (a *Adjacency) Nodes() []NodeID { return slices.Clone(a.nodes) }

// Len returns the number of visible nodes.
func (a *Adjacency) Len() int { return len(a.nodes) }

// Has reports whether n is a visible node.
func (a *Adjacency) Has(n NodeID) bool {
	n, err := checkID(n)

	return err == nil && a.g.nodes.Has(n)
}

// Neighbors returns the nodes reachable from n by one visible edge.
func (a *Adjacency) Neighbors(n NodeID) ([]NodeID, error) {
	nid, err := checkID(n)
	if err != nil {
		return nil, fmt.Errorf("neighbors: %w", err)
	}
	if !a.g.nodes.Has(nid) {
		return nil, fmt.Errorf("neighbors %v: %w", nid, ErrNodeNotFound)
	}

	return slices.Clone(a.out[nid]), nil
}

// LinkCount returns the number of visible directed links leaving a visible
// node. Edges of an edge-driven view whose source node is hidden are not counted.
func (a *Adjacency) LinkCount() int {
	n := 0
	for _, to := range a.out {
		n += len(to)
	}

	return n
}

// All iterates (node, neighbours) for visible nodes.
func (a *Adjacency) All() iter.Seq2[NodeID, []NodeID] {
	return func(yield func(NodeID, []NodeID) bool) {
		for _, n := range a.nodes {
			if !yield(n, slices.Clone(a.out[n])) {
				return
			}
		}
	}
}

// Map returns a copy of the index for visible nodes.
func (a *Adjacency) Map() map[NodeID][]NodeID {
	out := make(map[NodeID][]NodeID, len(a.nodes))
	for n, to := range a.All() {
		out[n] = to
	}

	return out
}

// Degree returns the degree of each node in nodes (all visible nodes when nil).
//
// Errors:
//   - ErrNodeNotFound for a node outside the view.
//   - ErrBadWeight when WithWeight names a non-numeric attribute.
func (a *Adjacency) Degree(nodes []NodeID, opts ...DegreeOption) (map[NodeID]float64, error) {
	var cfg degreeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if nodes == nil {
		nodes = a.nodes
	}

	out := make(map[NodeID]float64, len(nodes))
	for _, n := range nodes {
		nid, err := checkID(n)
		if err != nil {
			return nil, fmt.Errorf("degree: %w", err)
		}
		if !a.g.nodes.Has(nid) {
			return nil, fmt.Errorf("degree %v: %w", nid, ErrNodeNotFound)
		}

		var (
			edges []EdgeID
			loops bool
		)
		if cfg.method == DegreeIn {
			for _, from := range a.in[nid] {
				edges = append(edges, EdgeID{From: from, To: nid})
			}
		} else {
			for _, to := range a.out[nid] {
				edges = append(edges, EdgeID{From: nid, To: to})
			}
			loops = cfg.method == DegreeDefault
		}

		var d float64
		for _, e := range edges {
			w := 1.0
			if cfg.weight != "" {
				rec, _ := a.g.edges.Get(e)
				if w, err = weightOf(rec, cfg.weight); err != nil {
					return nil, fmt.Errorf("degree %v via %v: %w", nid, e, err)
				}
			}
			d += w
			if loops && e.IsLoop() {
				d += w
			}
		}
		out[nid] = d
	}

	return out, nil
}

// Degree is shorthand for g.Adjacency().Degree(nodes, opts...).
func (g *Graph) Degree(nodes []NodeID, opts ...DegreeOption) (map[NodeID]float64, error) {
	return g.Adjacency().Degree(nodes, opts...)
}

func weightOf(rec *store.Record, attr string) (float64, error) {
	v, ok := rec.Get(attr)
	if !ok {
		return 1, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	}

	return 0, fmt.Errorf("attribute %q holds %T: %w", attr, v, ErrBadWeight)
}
