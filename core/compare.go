// File: compare.go
// Role: Topology comparison on node and edge id sets.
// AI-HINT (file):
//   - Attribute contents are never compared.
//   - Proper (strict) variants require strictness on both node and edge sets.

package core

// Equal reports whether g and other expose the same node and edge ids.
func (g *Graph) Equal(other *Graph) bool {
	return other != nil && g.nodes.EqualKeys(other.nodes) && g.edges.EqualKeys(other.edges)
}

// IsSubsetOf reports whether every node and edge of g is in other.
func (g *Graph) IsSubsetOf(other *Graph) bool {
	return other != nil && g.nodes.IsSubset(other.nodes) && g.edges.IsSubset(other.edges)
}

// IsSupersetOf reports whether every node and edge of other is in g.
func (g *Graph) IsSupersetOf(other *Graph) bool {
	return other != nil && other.IsSubsetOf(g)
}

// IsProperSubsetOf is IsSubsetOf with strictly fewer nodes and strictly fewer edges.
func (g *Graph) IsProperSubsetOf(other *Graph) bool {
	return other != nil && g.nodes.IsProperSubset(other.nodes) && g.edges.IsProperSubset(other.edges)
}

// IsProperSupersetOf is the strict form of IsSupersetOf.
func (g *Graph) IsProperSupersetOf(other *Graph) bool {
	return other != nil && other.IsProperSubsetOf(g)
}

// Contains reports whether other is equal to, or a sub-graph of, g.
func (g *Graph) Contains(other *Graph) bool {
	return g.Equal(other) || g.IsSupersetOf(other)
}
