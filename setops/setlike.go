// SPDX-License-Identifier: MIT
// Package: lvgraph/setops
//
// setlike.go — union, intersection, difference and symmetric difference of
// graphs by node and edge id.
//
// Contract:
//   • Similarity is by id only; attributes are never compared or merged here
//     (see Add / Update for attribute-updating variants).
//   • Shared origin and no WithCopy → the result is a view on that origin.
//     Otherwise the result is an independent graph built from a deep copy of
//     the first operand.
//   • Union, Intersection and node-driven differences never expose an edge
//     whose endpoints are not both visible. Edge-driven differences may on the
//     view path; their copy path brings the endpoints along.
//
// AI-Hints:
//   • Test aliasing with result.Nodes().SameStorage(g.Nodes()).
//   • Mutating an aliasing result mutates the shared origin.

package setops

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvgraph/core"
)

func checkGraphs(graphs ...*core.Graph) error {
	for i, g := range graphs {
		if g == nil {
			return fmt.Errorf("graph %d: %w", i, core.ErrNilGraph)
		}
	}

	return nil
}

func sharedOrigin(graphs ...*core.Graph) bool {
	for _, g := range graphs[1:] {
		if !g.SharesOrigin(graphs[0]) {
			return false
		}
	}

	return true
}

// restrict keeps the edges whose endpoints are both in nids.
func restrict(eids []core.EdgeID, nids []core.NodeID) []core.EdgeID {
	in := make(map[core.NodeID]struct{}, len(nids))
	for _, n := range nids {
		in[n] = struct{}{}
	}
	out := make([]core.EdgeID, 0, len(eids))
	for _, e := range eids {
		_, f := in[e.From]
		_, t := in[e.To]
		if f && t {
			out = append(out, e)
		}
	}

	return out
}

// viewOf selects exactly nids and eids on g's origin.
func viewOf(g *core.Graph, nids []core.NodeID, eids []core.EdgeID) (*core.Graph, error) {
	v, err := g.Origin().GetNodes(nids)
	if err != nil {
		return nil, err
	}
	v.Edges().SetView(eids)

	return v, nil
}

func logResult(op string, base, result *core.Graph) {
	mode := "copy"
	if result.SharesOrigin(base) {
		mode = "view"
	}
	base.Logger().Debug("setops: "+op,
		zap.String("mode", mode),
		zap.Int("nodes", result.Len()),
		zap.Int("edges", result.Edges().Len()))
}

// Union returns the combined unique nodes and edges of graphs.
//
// Implementation:
//   - View path: node ids of all graphs in order of appearance (edge endpoints
//     included), likewise for edge ids, selected on the shared origin.
//   - Copy path: deep copy of graphs[0], then every following graph is
//     absorbed; existing attributes are left as they are.
//
// Errors:
//   - ErrTooFewGraphs for fewer than two graphs; core.ErrNilGraph for a nil one.
func Union(graphs []*core.Graph, opts ...Option) (*core.Graph, error) {
	if len(graphs) < 2 {
		return nil, fmt.Errorf("union of %d graph(s): %w", len(graphs), ErrTooFewGraphs)
	}
	if err := checkGraphs(graphs...); err != nil {
		return nil, fmt.Errorf("union: %w", err)
	}
	cfg := newConfig(opts)
	first := graphs[0]

	if !cfg.copy && sharedOrigin(graphs...) {
		var nids []core.NodeID
		seenN := make(map[core.NodeID]struct{})
		addNode := func(n core.NodeID) {
			if _, ok := seenN[n]; !ok {
				seenN[n] = struct{}{}
				nids = append(nids, n)
			}
		}
		var eids []core.EdgeID
		seenE := make(map[core.EdgeID]struct{})
		for _, g := range graphs {
			for n := range g.Nodes().Keys() {
				addNode(n)
			}
		}
		for _, g := range graphs {
			for e := range g.Edges().Keys() {
				if _, ok := seenE[e]; ok {
					continue
				}
				seenE[e] = struct{}{}
				eids = append(eids, e)
				addNode(e.From)
				addNode(e.To)
			}
		}
		v, err := viewOf(first, nids, eids)
		if err != nil {
			return nil, fmt.Errorf("union: %w", err)
		}
		logResult("union", first, v)

		return v, nil
	}

	r := first.Clone()
	for _, g := range graphs[1:] {
		if err := r.Absorb(g); err != nil {
			return nil, fmt.Errorf("union: %w", err)
		}
	}
	logResult("union", first, r)

	return r, nil
}

// Intersection returns the nodes present in both graphs and the edges present
// in both whose endpoints survive.
func Intersection(g1, g2 *core.Graph, opts ...Option) (*core.Graph, error) {
	if err := checkGraphs(g1, g2); err != nil {
		return nil, fmt.Errorf("intersection: %w", err)
	}
	cfg := newConfig(opts)

	nids := g1.Nodes().Intersection(g2.Nodes())
	eids := restrict(g1.Edges().Intersection(g2.Edges()), nids)
	v, err := viewOf(g1, nids, eids)
	if err != nil {
		return nil, fmt.Errorf("intersection: %w", err)
	}
	if cfg.copy || !sharedOrigin(g1, g2) {
		v = v.Clone()
	}
	logResult("intersection", g1, v)

	return v, nil
}

// difference builds the g1-minus-g2 view on g1's origin.
func difference(g1, g2 *core.Graph, edgeDiff bool) (*core.Graph, error) {
	nids := g1.Nodes().Difference(g2.Nodes())
	var eids []core.EdgeID
	if edgeDiff {
		eids = g1.Edges().Difference(g2.Edges())
	} else {
		eids = restrict(g1.EdgeIDs(), nids)
	}

	return viewOf(g1, nids, eids)
}

// Difference returns what g1 has and g2 lacks.
//
// Node-driven (default): nodes of g1 not in g2 and the g1 edges among them,
// so edges linking the two parts disappear.
// Edge-driven (WithEdgeDiff): nodes of g1 not in g2 and edges of g1 not in g2,
// independently; on the copy path endpoints of kept edges are brought along.
func Difference(g1, g2 *core.Graph, opts ...Option) (*core.Graph, error) {
	if err := checkGraphs(g1, g2); err != nil {
		return nil, fmt.Errorf("difference: %w", err)
	}
	cfg := newConfig(opts)

	v, err := difference(g1, g2, cfg.edgeDiff)
	if err != nil {
		return nil, fmt.Errorf("difference: %w", err)
	}
	if cfg.copy || !sharedOrigin(g1, g2) {
		v = v.Clone()
	}
	logResult("difference", g1, v)

	return v, nil
}

// SymmetricDifference returns what exactly one of g1 and g2 has.
//
// View path: symmetric node difference with the edges of either graph among
// those nodes (edge-driven: the symmetric edge difference).
// Copy path: Difference(g1, g2) copied, with Difference(g2, g1) absorbed.
func SymmetricDifference(g1, g2 *core.Graph, opts ...Option) (*core.Graph, error) {
	if err := checkGraphs(g1, g2); err != nil {
		return nil, fmt.Errorf("symmetric difference: %w", err)
	}
	cfg := newConfig(opts)

	if !cfg.copy && sharedOrigin(g1, g2) {
		nids := g1.Nodes().SymmetricDifference(g2.Nodes())
		var eids []core.EdgeID
		if cfg.edgeDiff {
			eids = g1.Edges().SymmetricDifference(g2.Edges())
		} else {
			eids = restrict(g1.Edges().Union(g2.Edges()), nids)
		}
		v, err := viewOf(g1, nids, eids)
		if err != nil {
			return nil, fmt.Errorf("symmetric difference: %w", err)
		}
		logResult("symmetric difference", g1, v)

		return v, nil
	}

	left, err := difference(g1, g2, cfg.edgeDiff)
	if err != nil {
		return nil, fmt.Errorf("symmetric difference: %w", err)
	}
	right, err := difference(g2, g1, cfg.edgeDiff)
	if err != nil {
		return nil, fmt.Errorf("symmetric difference: %w", err)
	}
	r := left.Clone()
	if err := r.Absorb(right); err != nil {
		return nil, fmt.Errorf("symmetric difference: %w", err)
	}
	logResult("symmetric difference", g1, r)

	return r, nil
}

// IsSubset reports whether every node and edge of g1 is in g2.
func IsSubset(g1, g2 *core.Graph) bool {
	return g1 != nil && g1.IsSubsetOf(g2)
}

// IsSuperset reports whether every node and edge of g2 is in g1.
func IsSuperset(g1, g2 *core.Graph) bool {
	return g1 != nil && g1.IsSupersetOf(g2)
}
