package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/orm"
)

// ExampleGraph demonstrates creation, mutation and removal.
func ExampleGraph() {
	// 1) Auto-id graph: nodes get 1..5.
	g := core.NewGraph()
	for range 5 {
		_, _ = g.AddNode(nil, nil)
	}

	// 2) Undirected edges: each is stored once and linked under its reverse.
	_, _ = g.AddEdges([]core.EdgeSpec{
		{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 3, To: 5},
	})
	fmt.Println(g.Edges().Len(), g.HasEdge(2, 1))

	// 3) Removing a node removes its incident edges.
	g.RemoveNode(3)
	fmt.Println(g.NodeIDs())
	fmt.Println(g.EdgeIDs())

	// Output:
	// 8 true
	// [1 2 4 5]
	// [(1, 2) (2, 1)]
}

// ExampleGraph_GetNodes shows that views alias the origin storage.
func ExampleGraph_GetNodes() {
	g := core.NewGraph(core.WithAutoID(false))
	_, _ = g.AddEdge("a", "b", core.Attrs{"w": 1}, core.WithCreateMissing(true))
	_, _ = g.AddEdge("b", "c", nil, core.WithCreateMissing(true))

	v, _ := g.GetNodes([]core.NodeID{"a", "b"})
	fmt.Println(v.NodeIDs(), v.EdgeIDs())

	rec, _ := v.EdgeAttrs("b", "a")
	rec.Set("w", 2)
	orig, _ := g.EdgeAttrs("a", "b")
	fmt.Println(orig)

	// Output:
	// [a b] [(a, b) (b, a)]
	// {w: 2}
}

// ExampleGraph_GetNode resolves capabilities for a single node.
func ExampleGraph_GetNode() {
	g := core.NewGraph()
	id, _ := g.AddNode("six", core.Attrs{"ids": "edi"})

	labelled := &orm.Type[*core.Graph]{
		Name: "Labelled",
		New:  func(v *core.Graph) orm.Capability { return &named{name: "Labelled", v: v} },
	}
	_, _ = g.RegisterNodeType(orm.HasAttr("ids"), labelled, 0)

	v, _ := g.GetNode(id)
	fmt.Println(v.CapabilityNames())

	tools, _ := v.Node()
	_ = tools.SetValue(42)
	fmt.Println(tools.Key(), tools.Value())

	// Output:
	// [Labelled NodeTools]
	// six 42
}
