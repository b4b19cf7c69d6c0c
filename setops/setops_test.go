package setops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/setops"
	"github.com/katalvlaran/lvgraph/store"
)

// exampleGraph builds nodes 1..5 with undirected edges (1,2) (2,3) (3,4) (3,5).
func exampleGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for range 5 {
		_, err := g.AddNode(nil, nil)
		require.NoError(t, err)
	}
	_, err := g.AddEdges([]core.EdgeSpec{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 3, To: 5}})
	require.NoError(t, err)

	return g
}

func namedGraph(t *testing.T, nodes []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithAutoID(false))
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

func ids(ns ...int64) []core.NodeID {
	out := make([]core.NodeID, len(ns))
	for i, n := range ns {
		out[i] = n
	}

	return out
}

func view(t *testing.T, g *core.Graph, ns ...int64) *core.Graph {
	t.Helper()
	v, err := g.GetNodes(ids(ns...))
	require.NoError(t, err)

	return v
}

// requireClosed asserts every visible edge has both endpoints visible.
func requireClosed(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, e := range g.EdgeIDs() {
		require.True(t, g.HasNode(e.From) && g.HasNode(e.To), "edge %v leaves the node set", e)
	}
}

func TestUnion_SharedOriginIsView(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	g := exampleGraph(t, core.WithLogger(zap.New(obsCore)))
	v1, v2 := view(t, g, 1, 2), view(t, g, 2, 3)

	u, err := setops.Union([]*core.Graph{v1, v2})
	require.NoError(t, err)
	assert.True(t, u.SharesOrigin(g))
	assert.True(t, u.Nodes().SameStorage(g.Nodes()))
	assert.True(t, u.Edges().SameStorage(g.Edges()))
	assert.Equal(t, ids(1, 2, 3), u.NodeIDs())
	assert.Equal(t, []core.EdgeID{core.E(1, 2), core.E(2, 1), core.E(2, 3), core.E(3, 2)}, u.EdgeIDs())
	requireClosed(t, u)
	assert.Equal(t, 1, logs.FilterMessage("setops: union").FilterField(zap.String("mode", "view")).Len())
}

func TestUnion_CopyIsDetached(t *testing.T) {
	g := exampleGraph(t)
	v1, v2 := view(t, g, 1, 2), view(t, g, 2, 3)

	u, err := setops.Union([]*core.Graph{v1.Copy(true, false), v2})
	require.NoError(t, err)
	assert.False(t, u.SharesOrigin(g))
	assert.False(t, u.Nodes().SameStorage(g.Nodes()))
	assert.Equal(t, ids(1, 2, 3), u.NodeIDs())
	assert.Equal(t, 4, u.Edges().Len())

	ab, _ := u.EdgeAttrs(2, 3)
	ba, _ := u.EdgeAttrs(3, 2)
	assert.Same(t, ab, ba)

	forced, err := setops.Union([]*core.Graph{v1, v2}, setops.WithCopy())
	require.NoError(t, err)
	assert.False(t, forced.SharesOrigin(g))
	assert.True(t, forced.Equal(u))

	u.RemoveNode(2)
	assert.True(t, g.HasNode(2))
}

func TestUnion_Validation(t *testing.T) {
	g := exampleGraph(t)

	_, err := setops.Union([]*core.Graph{g})
	require.ErrorIs(t, err, setops.ErrTooFewGraphs)
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = setops.Union([]*core.Graph{g, nil})
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = setops.Add(nil)
	require.ErrorIs(t, err, setops.ErrTooFewGraphs)
}

func TestIntersection(t *testing.T) {
	g := exampleGraph(t)
	v1, v2 := view(t, g, 1, 2, 3), view(t, g, 2, 3, 4)

	i, err := setops.Intersection(v1, v2)
	require.NoError(t, err)
	assert.True(t, i.SharesOrigin(g))
	assert.Equal(t, ids(2, 3), i.NodeIDs())
	assert.Equal(t, []core.EdgeID{core.E(2, 3), core.E(3, 2)}, i.EdgeIDs())

	c, err := setops.Intersection(v1, v2, setops.WithCopy())
	require.NoError(t, err)
	assert.False(t, c.SharesOrigin(g))
	assert.True(t, c.Equal(i))
	assert.False(t, c.IsView())

	_, err = setops.Intersection(v1, nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestIntersection_DifferentOrigins(t *testing.T) {
	g1 := namedGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	g2 := namedGraph(t, []string{"b", "c", "d"}, [][2]string{{"b", "c"}, {"c", "d"}})

	i, err := setops.Intersection(g1, g2)
	require.NoError(t, err)
	assert.False(t, i.SharesOrigin(g1))
	assert.Equal(t, []core.NodeID{"b", "c"}, i.NodeIDs())
	assert.Equal(t, []core.EdgeID{core.E("b", "c"), core.E("c", "b")}, i.EdgeIDs())
}

func TestDifference_NodeDriven(t *testing.T) {
	g := exampleGraph(t)
	sub := view(t, g, 1, 2)

	d, err := setops.Difference(g, sub)
	require.NoError(t, err)
	assert.True(t, d.SharesOrigin(g))
	assert.Equal(t, ids(3, 4, 5), d.NodeIDs())
	assert.Equal(t, []core.EdgeID{core.E(3, 4), core.E(4, 3), core.E(3, 5), core.E(5, 3)}, d.EdgeIDs())
	requireClosed(t, d)
}

func TestDifference_EdgeDriven(t *testing.T) {
	g := exampleGraph(t)
	sub := view(t, g, 1, 2)

	d, err := setops.Difference(g, sub, setops.WithEdgeDiff())
	require.NoError(t, err)
	assert.Equal(t, ids(3, 4, 5), d.NodeIDs())
	assert.Equal(t, 6, d.Edges().Len())
	assert.True(t, d.HasEdge(2, 3))
	assert.False(t, d.HasNode(2), "edge-driven views may expose dangling edges")

	c, err := setops.Difference(g, sub, setops.WithEdgeDiff(), setops.WithCopy())
	require.NoError(t, err)
	assert.ElementsMatch(t, ids(2, 3, 4, 5), c.NodeIDs())
	assert.Equal(t, 6, c.Edges().Len())
	requireClosed(t, c)
}

func TestSubtract(t *testing.T) {
	g := exampleGraph(t)

	s, err := setops.Subtract(g, view(t, g, 1, 2))
	require.NoError(t, err)
	assert.False(t, s.SharesOrigin(g))
	assert.True(t, s.IsOrigin())
	assert.Equal(t, ids(3, 4, 5), s.NodeIDs())
	assert.Equal(t, 4, s.Edges().Len())
}

func TestSymmetricDifference(t *testing.T) {
	g := exampleGraph(t)
	v1, v2 := view(t, g, 1, 2, 3), view(t, g, 3, 4)

	s, err := setops.SymmetricDifference(v1, v2)
	require.NoError(t, err)
	assert.True(t, s.SharesOrigin(g))
	assert.Equal(t, ids(1, 2, 4), s.NodeIDs())
	assert.Equal(t, []core.EdgeID{core.E(1, 2), core.E(2, 1)}, s.EdgeIDs())

	e, err := setops.SymmetricDifference(v1, v2, setops.WithEdgeDiff())
	require.NoError(t, err)
	assert.Equal(t, 6, e.Edges().Len())

	c, err := setops.SymmetricDifference(v1, v2, setops.WithCopy())
	require.NoError(t, err)
	assert.False(t, c.SharesOrigin(g))
	assert.True(t, c.Equal(s))
}

func TestSymmetricDifference_DifferentOrigins(t *testing.T) {
	g1 := namedGraph(t, []string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	g2 := namedGraph(t, []string{"b", "c", "d", "e"}, [][2]string{{"b", "c"}, {"d", "e"}})

	s, err := setops.SymmetricDifference(g1, g2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{"a", "d", "e"}, s.NodeIDs())
	assert.Equal(t, []core.EdgeID{core.E("d", "e"), core.E("e", "d")}, s.EdgeIDs())
	requireClosed(t, s)
}

func TestSubsetSuperset(t *testing.T) {
	g := exampleGraph(t)
	sub := view(t, g, 1, 2)

	assert.True(t, setops.IsSubset(sub, g))
	assert.False(t, setops.IsSubset(g, sub))
	assert.True(t, setops.IsSuperset(g, sub))
	assert.False(t, setops.IsSuperset(nil, sub))
	assert.True(t, setops.IsSubset(g, g.Clone()))
}

func TestAdd_LastValueWins(t *testing.T) {
	g1 := namedGraph(t, []string{"a", "b"}, [][2]string{{"a", "b"}})
	g2 := namedGraph(t, []string{"b", "c"}, [][2]string{{"b", "c"}})
	g3 := namedGraph(t, []string{"b"}, nil)
	set := func(g *core.Graph, id core.NodeID, v int) {
		rec, ok := g.NodeAttrs(id)
		require.True(t, ok)
		rec.Set("x", v)
	}
	set(g1, "b", 1)
	set(g2, "b", 2)
	set(g3, "b", 3)

	r, err := setops.Add([]*core.Graph{g1, g2, g3})
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{"a", "b", "c"}, r.NodeIDs())
	b, _ := r.NodeAttrs("b")
	assert.Equal(t, 3, b.GetOr("x", nil))
	assert.True(t, r.HasEdge("c", "b"))

	orig, _ := g1.NodeAttrs("b")
	assert.Equal(t, 1, orig.GetOr("x", nil), "inputs are untouched")

	kept, err := setops.Add([]*core.Graph{g1, g2}, setops.WithoutNodeAttributes())
	require.NoError(t, err)
	b, _ = kept.NodeAttrs("b")
	assert.Equal(t, 1, b.GetOr("x", nil))
}

func TestUpdate(t *testing.T) {
	g := exampleGraph(t)
	c := g.Clone()
	rec, _ := c.NodeAttrs(1)
	rec.Set("color", "green")
	e, _ := c.EdgeAttrs(1, 2)
	e.Set("w", 3)

	require.NoError(t, setops.Update(g, c, setops.WithoutEdgeAttributes()))
	n, _ := g.NodeAttrs(1)
	assert.Equal(t, "green", n.GetOr("color", nil))
	ge, _ := g.EdgeAttrs(2, 1)
	assert.False(t, ge.Has("w"))

	require.NoError(t, setops.Update(g, c))
	assert.Equal(t, 3, ge.GetOr("w", nil))

	_, err := c.AddNode(nil, nil)
	require.NoError(t, err)
	require.ErrorIs(t, setops.Update(g, c), core.ErrNodeNotFound)
	require.ErrorIs(t, setops.Update(nil, c), core.ErrNilGraph)
}
