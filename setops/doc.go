// Package setops combines lvgraph graphs by node and edge id.
//
// Set-like operations (Union, Intersection, Difference, SymmetricDifference,
// IsSubset, IsSuperset) return a view whenever every operand shares one origin
// and WithCopy is not given; otherwise they return a new graph based on a deep
// copy of the first operand. They never merge attributes.
//
// Add, Subtract and Update are the attribute-aware counterparts: Add joins and
// updates attributes into a new graph, Subtract is a copied node-driven
// difference and Update writes attributes into an existing graph.
//
//	v, _ := setops.Union([]*core.Graph{a, b})                  // view if a, b share an origin
//	c, _ := setops.Difference(a, b, setops.WithEdgeDiff())     // edge-driven
//	n, _ := setops.Add([]*core.Graph{a, b, c})                 // new graph, last value wins
//
// Errors: ErrTooFewGraphs (a store.ErrValidation) for n-ary calls with fewer
// than two graphs, core.ErrNilGraph for nil operands, NotFound from Update when
// the source is not contained in the target.
package setops
