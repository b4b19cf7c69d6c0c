package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgraph/core"
)

func TestAdjacency_Neighbors(t *testing.T) {
	g := exampleGraph(t)
	a := g.Adjacency()

	assert.Equal(t, NodeCountExample, a.Len())
	assert.Equal(t, ids(1, 2, 3, 4, 5), a.Nodes())
	assert.True(t, a.Has(3))
	assert.False(t, a.Has(9))

	nb, err := a.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, ids(2, 4, 5), nb)

	_, err = a.Neighbors(9)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, 8, a.LinkCount())

	m := a.Map()
	assert.Len(t, m, NodeCountExample)
	assert.Equal(t, ids(3), m[int64(4)])
}

func TestAdjacency_IsolatedNodeHasNoNeighbors(t *testing.T) {
	g := exampleGraph(t)
	_, err := g.AddNode(nil, nil)
	require.NoError(t, err)

	nb, err := g.Adjacency().Neighbors(6)
	require.NoError(t, err)
	assert.Empty(t, nb)
}

func TestAdjacency_OfView(t *testing.T) {
	g := exampleGraph(t)
	v, err := g.GetNodes(ids(1, 2, 3))
	require.NoError(t, err)

	a := v.Adjacency()
	assert.Equal(t, 4, a.LinkCount())
	nb, err := a.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, ids(2), nb)

	_, err = a.Neighbors(4)
	require.ErrorIs(t, err, core.ErrNodeNotFound, "masked-out nodes are not in the view index")
}

func TestAdjacency_HiddenEndpoints(t *testing.T) {
	g := exampleGraph(t)
	v, err := g.GetNodes(ids(3, 4, 5))
	require.NoError(t, err)
	v.Edges().SetView([]core.EdgeID{core.E(2, 3), core.E(3, 2), core.E(3, 4), core.E(4, 3)})
	require.False(t, v.HasNode(2))

	a := v.Adjacency()
	assert.Equal(t, 3, a.LinkCount())
	links := 0
	for _, to := range a.Map() {
		links += len(to)
	}
	assert.Equal(t, a.LinkCount(), links)
	assert.Equal(t, ids(3, 4, 5), a.Nodes())

	nb, err := a.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, ids(2, 4), nb)

	in, err := a.Degree(ids(3), core.WithDegreeMethod(core.DegreeIn))
	require.NoError(t, err)
	assert.Equal(t, 2.0, in[int64(3)])
	_, err = a.Degree(ids(2))
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDegree_Default(t *testing.T) {
	g := exampleGraph(t)

	d, err := g.Degree(nil)
	require.NoError(t, err)
	assert.Equal(t, map[core.NodeID]float64{
		int64(1): 1, int64(2): 2, int64(3): 3, int64(4): 1, int64(5): 1,
	}, d)

	_, err = g.AddEdge(1, 1, nil)
	require.NoError(t, err)
	d, err = g.Degree(ids(1))
	require.NoError(t, err)
	assert.Equal(t, 3.0, d[int64(1)], "a self-loop counts twice")

	d, err = g.Degree(ids(1), core.WithDegreeMethod(core.DegreeOut))
	require.NoError(t, err)
	assert.Equal(t, 2.0, d[int64(1)])

	_, err = g.Degree(ids(42))
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDegree_DirectedAndWeighted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	addNodes(t, g, 4)
	_, err := g.AddEdges([]core.EdgeSpec{
		{From: 1, To: 2, Attrs: core.Attrs{AttrWeight: 2.5}},
		{From: 1, To: 3, Attrs: core.Attrs{AttrWeight: 1}},
		{From: 1, To: 4},
	})
	require.NoError(t, err)

	d, err := g.Degree(ids(1), core.WithWeight(AttrWeight))
	require.NoError(t, err)
	assert.Equal(t, 4.5, d[int64(1)], "edges without the attribute weigh 1")

	in, err := g.Degree(ids(1, 2), core.WithDegreeMethod(core.DegreeIn))
	require.NoError(t, err)
	assert.Equal(t, map[core.NodeID]float64{int64(1): 0, int64(2): 1}, in)

	_, err = g.AddEdge(2, 3, core.Attrs{AttrWeight: "heavy"})
	require.NoError(t, err)
	_, err = g.Degree(ids(2), core.WithWeight(AttrWeight))
	require.ErrorIs(t, err, core.ErrBadWeight)
}
