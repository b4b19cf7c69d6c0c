// File: join.go
// Role: Structural edits that map node ids: join with links, insert on an edge, renumber.
// Determinism:
//   - Join and Renumber walk nodes and edges in store order, so the returned
//     mappings are reproducible for a given input.
// AI-HINT (file):
//   - Join adds other as a sub-graph: in auto-id mode every node of other
//     gets a fresh id, otherwise ids are kept and existing nodes are merged.
//   - Renumber never edits g; it returns a renumbered deep copy.

package core

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvgraph/store"
)

// Join adds the visible nodes and edges of other to g and links them in.
// Each link is (node of g, node of other) and becomes an edge of g with the
// graph's default directedness. The returned map takes other's node ids to
// their ids in g.
//
// Implementation:
//   - Stage 1: Validate every link endpoint (no mutation on failure).
//   - Stage 2: Add nodes through AddNode, so auto-id graphs renumber them.
//   - Stage 3: Add edges between mapped nodes; pair links inside other stay
//     linked in g.
//   - Stage 4: Add the link edges.
//
// Errors:
//   - ErrNilGraph, ErrNodeNotFound for a link endpoint outside g or other.
func (g *Graph) Join(other *Graph, links []EdgeID) (map[NodeID]NodeID, error) {
	if other == nil {
		return nil, ErrNilGraph
	}
	checked := make([]EdgeID, 0, len(links))
	for _, l := range links {
		e, err := checkEdge(l)
		if err != nil {
			return nil, fmt.Errorf("join link: %w", err)
		}
		if !g.nodes.Has(e.From) {
			return nil, fmt.Errorf("join link %v: node %v: %w", e, e.From, ErrNodeNotFound)
		}
		if !other.nodes.Has(e.To) {
			return nil, fmt.Errorf("join link %v: node %v of joined graph: %w", e, e.To, ErrNodeNotFound)
		}
		checked = append(checked, e)
	}

	mapping := make(map[NodeID]NodeID, other.nodes.Len())
	for id, rec := range other.nodes.Items() {
		attrs := rec.ToMap()
		delete(attrs, InternalIDField)
		nid, err := g.AddNode(id, attrs)
		if err != nil {
			return mapping, fmt.Errorf("join node %v: %w", id, err)
		}
		mapping[id] = nid
	}

	mapped := func(e EdgeID) (EdgeID, bool) {
		from, f := mapping[e.From]
		to, t := mapping[e.To]

		return EdgeID{From: from, To: to}, f && t
	}
	srcEdges := other.edges.Full()
	linked := func(e EdgeID) (EdgeID, bool) {
		t, ok := srcEdges.ReferenceOf(e)
		if !ok || !other.edges.Has(t) {
			return EdgeID{}, false
		}

		return t, true
	}
	edges := g.writableEdges()
	var pairs []EdgeID
	for e, rec := range other.edges.Items() {
		ne, ok := mapped(e)
		if !ok {
			continue
		}
		if _, ok := linked(e); ok {
			pairs = append(pairs, e)
			continue
		}
		if _, err := g.AddEdge(ne.From, ne.To, rec.ToMap(), WithEdgeDirected(true)); err != nil {
			return mapping, fmt.Errorf("join edge %v: %w", e, err)
		}
	}
	for _, e := range pairs {
		ne, _ := mapped(e)
		t, _ := linked(e)
		nt, _ := mapped(t)
		if edges.Full().Has(ne) {
			continue
		}
		if edges.Full().Has(nt) {
			if err := edges.SetReference(ne, nt); err != nil {
				return mapping, fmt.Errorf("join edge %v: %w", e, err)
			}
			continue
		}
		rec, _ := other.edges.Get(e)
		if _, err := g.AddEdge(ne.From, ne.To, rec.ToMap(), WithEdgeDirected(true)); err != nil {
			return mapping, fmt.Errorf("join edge %v: %w", e, err)
		}
	}

	for _, l := range checked {
		if _, err := g.AddEdge(l.From, mapping[l.To], nil); err != nil {
			return mapping, fmt.Errorf("join link %v: %w", l, err)
		}
	}
	g.log().Debug("joined graph", zap.Stringer("from", other.origin.id),
		zap.Int("nodes", len(mapping)), zap.Int("links", len(checked)))

	return mapping, nil
}

// Insert adds a node on edge (a, b): the edge is removed and replaced by
// (a, node) and (node, b) with the graph's default directedness. For an
// undirected graph the reverse (b, a) is removed as well when present.
//
// Errors:
//   - ErrEdgeNotFound when (a, b) is not visible.
//   - ErrDuplicateNode when id already exists (non-auto mode).
func (g *Graph) Insert(id NodeID, attrs Attrs, a, b NodeID) (NodeID, error) {
	e, err := checkEdge(EdgeID{From: a, To: b})
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	if !g.edges.Has(e) {
		return nil, fmt.Errorf("insert on %v: %w", e, ErrEdgeNotFound)
	}
	both := !g.directed && g.edges.Has(e.Reverse())

	nid, err := g.AddNode(id, attrs, WithRejectExisting())
	if err != nil {
		return nil, fmt.Errorf("insert on %v: %w", e, err)
	}
	if err := g.RemoveEdge(e.From, e.To, WithEdgeDirected(!both)); err != nil {
		return nid, fmt.Errorf("insert on %v: %w", e, err)
	}
	if _, err := g.AddEdge(e.From, nid, nil); err != nil {
		return nid, fmt.Errorf("insert on %v: %w", e, err)
	}
	if _, err := g.AddEdge(nid, e.To, nil); err != nil {
		return nid, fmt.Errorf("insert on %v: %w", e, err)
	}

	return nid, nil
}

// Renumber returns an independent copy of what g shows with internal ids
// start, start+1, ... in node order, together with the old to new node id
// mapping. In auto-id mode node ids follow the internal ids and edges are
// re-keyed; otherwise node ids are unchanged. The copy's id counter continues
// after the last assigned id and its root follows the mapping.
func (g *Graph) Renumber(start int64) (*Graph, map[NodeID]NodeID) {
	src := g.Clone()
	c := &Graph{
		nodes:         src.nodes,
		edges:         src.edges,
		directed:      src.directed,
		autoID:        src.autoID,
		createMissing: src.createMissing,
		keyField:      src.keyField,
		valueField:    src.valueField,
		id:            uuid.New(),
		mapper:        src.mapper,
		logger:        src.logger,
	}
	c.origin = c

	mapping := make(map[NodeID]NodeID, src.nodes.Len())
	next := start
	for _, id := range src.nodes.KeyList() {
		rec, _ := src.nodes.Get(id)
		rec.Set(InternalIDField, next)
		mapping[id] = id
		if c.autoID {
			mapping[id] = next
		}
		next++
	}
	c.nextID = next

	if c.autoID {
		nodes := src.nodes
		c.nodes = store.New[NodeID]()
		for id, rec := range nodes.Items() {
			c.nodes.Set(mapping[id], rec)
		}

		edges := src.edges
		c.edges = store.New[EdgeID]()
		remap := func(e EdgeID) EdgeID { return EdgeID{From: mapping[e.From], To: mapping[e.To]} }
		for e, rec := range edges.Items() {
			if !edges.IsReference(e) {
				c.edges.Set(remap(e), rec)
			}
		}
		for e := range edges.Keys() {
			if t, ok := edges.ReferenceOf(e); ok {
				_ = c.edges.SetReference(remap(e), remap(t))
			}
		}
	}
	if src.root != nil {
		if r, ok := mapping[src.root]; ok {
			c.root = r
		}
	}
	c.instantiate(g.capTypes)
	g.log().Debug("renumbered copy", zap.Stringer("copy", c.id), zap.Int64("start", start))

	return c, mapping
}
