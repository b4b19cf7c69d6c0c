// Package lvgraph is an in-memory attribute graph: nodes and edges carry
// ordered key/value records, sub-graphs are cheap views that alias their
// origin's storage, and singleton selections can be given typed capabilities.
//
// What is in the box?
//
//	store/        — ordered, maskable key → record store with shared-record references
//	orm/          — rule → capability-type registry with priority resolution
//	core/         — Graph: nodes, edges, views, adjacency, copies, config
//	setops/       — union, intersection, differences, add/subtract/update
//	graphmetrics/ — Prometheus collector over graph statistics
//
// Quick start:
//
//	g := core.NewGraph(core.WithLogger(logger))
//	a, _ := g.AddNode("alice", core.Attrs{"age": 31})
//	b, _ := g.AddNode("bob", nil)
//	_, _ = g.AddEdge(a, b, core.Attrs{"since": 2019})
//
//	v, _ := g.GetNode(a)          // view aliasing g
//	tools, _ := v.Node()
//	_ = tools.Set("age", 32)      // visible through g
//
//	c := g.Copy(true, false)      // independent deep copy
//
// Model guarantees:
//
//   - Every visible edge has both endpoints in the origin.
//   - An undirected edge is one record reachable under both (a,b) and (b,a).
//   - Auto-assigned node ids are never reused within an origin.
//   - All operations are synchronous; a graph and its views form one
//     single-writer unit.
//
// Logging uses go.uber.org/zap (a no-op logger unless WithLogger is given),
// configuration can be loaded from YAML (core.LoadConfig) and is validated
// with go-playground/validator.
package lvgraph
