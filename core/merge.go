// File: merge.go
// Role: Bringing the content of another graph into g (join and attribute update).
// AI-HINT (file):
//   - Absorb adds what g lacks and never touches existing records.
//   - UpdateFrom overwrites attributes of elements g already has.
//   - Both write through g's origin and are not transactional.

package core

import (
	"fmt"

	"go.uber.org/zap"
)

// Absorb adds every visible node and edge of other that g does not have.
// Nodes keep their ids (also in auto-id mode) and get a fresh internal id;
// edges keep other's pair links where both halves are absorbed. Endpoints of
// absorbed edges hidden in other's view are brought along.
func (g *Graph) Absorb(other *Graph) error {
	if other == nil {
		return ErrNilGraph
	}
	o := g.origin
	nodes := g.writableNodes()
	otherNodes := other.nodes.Full()

	addNode := func(id NodeID) {
		if nodes.Full().Has(id) {
			return
		}
		src, ok := otherNodes.Get(id)
		if !ok {
			g.insertNode(id)
			return
		}
		rec := src.Clone()
		rec.Set(InternalIDField, o.nextID)
		if v, ok := asInt64(id); ok && g.autoID && v >= o.nextID {
			o.nextID = v
		}
		o.nextID++
		nodes.Set(id, rec)
	}

	for id := range other.nodes.Keys() {
		addNode(id)
	}

	edges := g.writableEdges()
	added := 0
	for e, rec := range other.edges.Items() {
		if edges.Full().Has(e) {
			continue
		}
		addNode(e.From)
		addNode(e.To)
		if t, ok := other.edges.Full().ReferenceOf(e); ok && edges.Full().Has(t) && other.edges.Has(t) {
			if err := edges.SetReference(e, t); err != nil {
				return fmt.Errorf("absorb edge %v: %w", e, err)
			}
		} else {
			edges.Set(e, rec.Clone())
		}
		added++
	}
	g.log().Debug("absorbed graph", zap.Stringer("from", other.origin.id), zap.Int("edges", added))

	return nil
}

// UpdateFrom copies the attributes of other's visible nodes (nodes=true)
// and edges (edges=true) onto the matching records of g.
// other must be contained in g; otherwise ErrNodeNotFound or ErrEdgeNotFound
// is returned before anything changes.
func (g *Graph) UpdateFrom(other *Graph, nodes, edges bool) error {
	if other == nil {
		return ErrNilGraph
	}
	if !other.nodes.IsSubset(g.nodes) {
		return fmt.Errorf("update from %s: %w", other, ErrNodeNotFound)
	}
	if !other.edges.IsSubset(g.edges) {
		return fmt.Errorf("update from %s: %w", other, ErrEdgeNotFound)
	}
	if edges {
		for e, src := range other.edges.Items() {
			dst, _ := g.edges.Get(e)
			if dst != src {
				dst.Update(src.Clone())
			}
		}
	}
	if nodes {
		for id, src := range other.nodes.Items() {
			dst, _ := g.nodes.Get(id)
			if dst == src {
				continue
			}
			internal := dst.GetOr(InternalIDField, nil)
			dst.Update(src.Clone())
			if internal != nil {
				dst.Set(InternalIDField, internal)
			}
		}
	}

	return nil
}
