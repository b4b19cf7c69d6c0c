// SPDX-License-Identifier: MIT
// Package: lvgraph/setops
//
// update.go — attribute-updating combinations (add, subtract, update).
//
// Contract:
//   • Add and Subtract always return a new independent graph.
//   • Update mutates its first argument in place.
//   • For attributes defined by several inputs the last input wins.

package setops

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
)

// Add joins graphs into a deep copy of graphs[0]. Nodes and edges already
// present get their attributes updated from each later graph unless
// WithoutNodeAttributes / WithoutEdgeAttributes is given.
//
// Errors:
//   - ErrTooFewGraphs for fewer than two graphs; core.ErrNilGraph for a nil one.
func Add(graphs []*core.Graph, opts ...Option) (*core.Graph, error) {
	if len(graphs) < 2 {
		return nil, fmt.Errorf("add %d graph(s): %w", len(graphs), ErrTooFewGraphs)
	}
	if err := checkGraphs(graphs...); err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	cfg := newConfig(opts)

	r := graphs[0].Clone()
	for _, g := range graphs[1:] {
		if err := r.Absorb(g); err != nil {
			return nil, fmt.Errorf("add: %w", err)
		}
		if err := r.UpdateFrom(g, !cfg.skipNodeAttrs, !cfg.skipEdgeAttrs); err != nil {
			return nil, fmt.Errorf("add: %w", err)
		}
	}
	logResult("add", graphs[0], r)

	return r, nil
}

// Subtract is the node-driven Difference of g1 and g2 returned as a copy.
func Subtract(g1, g2 *core.Graph) (*core.Graph, error) {
	return Difference(g1, g2, WithCopy())
}

// Update copies the attributes of g2's nodes and edges onto g1.
// g2 must be contained in g1; otherwise a NotFound error is returned and g1
// is left unchanged.
func Update(g1, g2 *core.Graph, opts ...Option) error {
	if err := checkGraphs(g1, g2); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	cfg := newConfig(opts)
	if err := g1.UpdateFrom(g2, !cfg.skipNodeAttrs, !cfg.skipEdgeAttrs); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	return nil
}
