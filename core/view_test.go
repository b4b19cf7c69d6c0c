package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/store"
)

func TestGetNodes_InducedView(t *testing.T) {
	g := exampleGraph(t)

	v, err := g.GetNodes(ids(1, 2, 3))
	require.NoError(t, err)
	assert.False(t, v.IsOrigin())
	assert.True(t, v.IsView())
	assert.Same(t, g, v.Origin())
	assert.True(t, v.SharesOrigin(g))
	assert.Equal(t, g.OriginID(), v.OriginID())
	assert.Equal(t, ids(1, 2, 3), v.NodeIDs())
	assert.Equal(t, []core.EdgeID{core.E(1, 2), core.E(2, 1), core.E(2, 3), core.E(3, 2)}, v.EdgeIDs())
	assert.True(t, v.Nodes().SameStorage(g.Nodes()))
	assert.Contains(t, v.String(), "<view ")
}

func TestGetNodes_DeduplicatesIDs(t *testing.T) {
	g := exampleGraph(t)

	v, err := g.GetNodes(ids(2, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, ids(2, 1), v.NodeIDs())
}

func TestGetNodes_MissingIDLeavesNoView(t *testing.T) {
	g := exampleGraph(t)

	v, err := g.GetNodes(ids(1, 99))
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Nil(t, v)

	_, err = g.GetNode(nil)
	require.ErrorIs(t, err, core.ErrNodeIDRequired)
}

func TestGetEdges_MissingEdgeLeavesNoView(t *testing.T) {
	g := core.NewGraph()
	addNodes(t, g, 4)
	_, err := g.AddEdge(1, 2, nil)
	require.NoError(t, err)

	v, err := g.GetEdges([]core.EdgeID{core.E(1, 2), core.E(3, 4)})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Nil(t, v)
	assert.False(t, g.IsView())
	assert.Equal(t, 2, g.Edges().Len())
}

func TestGetEdges_IncludesEndpoints(t *testing.T) {
	g := exampleGraph(t)

	v, err := g.GetEdges([]core.EdgeID{core.E(3, 4)})
	require.NoError(t, err)
	assert.Equal(t, ids(3, 4), v.NodeIDs())
	assert.Equal(t, []core.EdgeID{core.E(3, 4)}, v.EdgeIDs())
	assert.False(t, v.HasEdge(4, 3), "only the requested direction is selected")
}

func TestView_WritesReachOrigin(t *testing.T) {
	g := exampleGraph(t)
	v, err := g.GetNodes(ids(1, 2))
	require.NoError(t, err)

	rec, ok := v.NodeAttrs(1)
	require.True(t, ok)
	rec.Set("seen", true)
	orig, _ := g.NodeAttrs(1)
	assert.Equal(t, true, orig.GetOr("seen", nil))

	id, err := v.AddNode(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)
	assert.True(t, g.HasNode(6))
	assert.False(t, v.HasNode(6), "additions through a view stay outside its mask")

	_, err = v.AddEdge(1, 6, nil)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(6, 1))
	assert.False(t, v.HasEdge(1, 6))
}

func TestView_RemoveNodeReachesOrigin(t *testing.T) {
	g := exampleGraph(t)
	v, err := g.GetNodes(ids(1, 2, 3))
	require.NoError(t, err)

	v.RemoveNode(2)
	assert.False(t, g.HasNode(2))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 3))
	assert.True(t, g.HasEdge(3, 4))
	assert.Equal(t, ids(1, 3), v.NodeIDs())
	assert.Empty(t, v.EdgeIDs())

	// masked-out node: removal through the view is a no-op
	v.RemoveNode(4)
	assert.True(t, g.HasNode(4))
}

func TestView_ObservesOriginMutations(t *testing.T) {
	g := exampleGraph(t)
	v, err := g.GetNodes(ids(1, 2, 3))
	require.NoError(t, err)

	g.RemoveNode(1)
	assert.Equal(t, ids(2, 3), v.NodeIDs())
	assert.False(t, v.HasEdge(1, 2))

	_, err = g.AddEdge(2, 2, nil)
	require.NoError(t, err)
	assert.False(t, v.HasEdge(2, 2), "the edge mask is fixed at selection time")
}

func TestNodeRange(t *testing.T) {
	g := exampleGraph(t)

	v, err := g.NodeRange(2, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, ids(2, 4), v.NodeIDs())

	v, err = g.NodeRange(1, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, ids(1, 2), v.NodeIDs())

	_, err = g.NodeRange(4, 8, 1)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestQueries(t *testing.T) {
	g := exampleGraph(t)
	require.NoError(t, g.RemoveEdge(3, 5))
	_, err := g.AddEdge(3, 5, core.Attrs{AttrWeight: 2, AttrColor: ColorRed})
	require.NoError(t, err)

	red, err := g.QueryNodesMatching(core.Attrs{AttrColor: ColorRed})
	require.NoError(t, err)
	assert.Equal(t, ids(1, 3), red.NodeIDs())
	assert.Empty(t, red.EdgeIDs(), "1 and 3 are not adjacent")

	heavy, err := g.QueryEdges(func(_ core.EdgeID, rec *store.Record) bool {
		return rec.GetOr(AttrWeight, 0) == 2
	})
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{core.E(3, 5), core.E(5, 3)}, heavy.EdgeIDs())

	redEdges, err := g.QueryEdgesMatching(core.Attrs{AttrColor: ColorRed, AttrWeight: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, redEdges.Edges().Len())

	none, err := g.QueryNodes(func(core.NodeID, *store.Record) bool { return false })
	require.NoError(t, err)
	assert.True(t, none.IsEmpty())
}

func TestQueriesWithinView(t *testing.T) {
	g := exampleGraph(t)
	v, err := g.GetNodes(ids(2, 3, 4))
	require.NoError(t, err)

	red, err := v.QueryNodesMatching(core.Attrs{AttrColor: ColorRed})
	require.NoError(t, err)
	assert.Equal(t, ids(3), red.NodeIDs())
}

func TestIterNodesAndEdges(t *testing.T) {
	g := exampleGraph(t)

	var got []core.NodeID
	for v := range g.IterNodes() {
		require.Equal(t, 1, v.Len())
		got = append(got, v.NodeIDs()[0])
	}
	assert.Equal(t, ids(1, 2, 3, 4, 5), got)

	n := 0
	for v := range g.IterEdges() {
		require.Equal(t, 1, v.Edges().Len())
		n++
	}
	assert.Equal(t, 8, n)
}

func TestRootMovesToSmallestInternalID(t *testing.T) {
	g := exampleGraph(t, core.WithRoot(1))
	assert.Equal(t, int64(1), g.Root())

	v, err := g.GetNodes(ids(4, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Root())

	kept, err := g.GetNodes(ids(1, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(1), kept.Root())
}
