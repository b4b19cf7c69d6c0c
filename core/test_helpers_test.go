// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Route graph logs into an in-memory observer so warnings can be asserted.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvgraph/core"
)

// Log messages asserted by the tests.
const (
	MsgNodeMerged    = "node already exists, attributes merged"
	MsgEdgeExists    = "edge already exists, use an explicit update to change attributes"
	MsgNoSuchNode    = "unable to remove node, no such node"
	AttrWeight       = "w"
	AttrColor        = "color"
	ColorRed         = "red"
	ColorBlue        = "blue"
	NodeCountExample = 5
)

// observed returns a logger recording entries at level and above.
func observed(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	obsCore, logs := observer.New(level)

	return zap.New(obsCore), logs
}

// ids converts int64 literals to node ids.
func ids(ns ...int64) []core.NodeID {
	out := make([]core.NodeID, len(ns))
	for i, n := range ns {
		out[i] = n
	}

	return out
}

// addNodes adds n auto-id nodes.
func addNodes(t *testing.T, g *core.Graph, n int) {
	t.Helper()
	for range n {
		_, err := g.AddNode(nil, nil)
		require.NoError(t, err)
	}
}

// exampleGraph builds nodes 1..5 with undirected edges (1,2) (2,3) (3,4) (3,5).
// Nodes 1 and 3 are red, the rest blue; every edge carries weight 1.
func exampleGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for i := 1; i <= NodeCountExample; i++ {
		color := ColorBlue
		if i == 1 || i == 3 {
			color = ColorRed
		}
		_, err := g.AddNode(nil, core.Attrs{AttrColor: color})
		require.NoError(t, err)
	}
	_, err := g.AddEdges([]core.EdgeSpec{
		{From: 1, To: 2, Attrs: core.Attrs{AttrWeight: 1}},
		{From: 2, To: 3, Attrs: core.Attrs{AttrWeight: 1}},
		{From: 3, To: 4, Attrs: core.Attrs{AttrWeight: 1}},
		{From: 3, To: 5, Attrs: core.Attrs{AttrWeight: 1}},
	})
	require.NoError(t, err)

	return g
}

// namedGraph builds a non-auto-id graph with string nodes and undirected edges.
func namedGraph(t *testing.T, nodes []string, edges [][2]string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(append([]core.GraphOption{core.WithAutoID(false)}, opts...)...)
	for _, n := range nodes {
		_, err := g.AddNode(n, nil)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], nil)
		require.NoError(t, err)
	}

	return g
}
