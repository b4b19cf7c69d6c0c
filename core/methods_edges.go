// File: methods_edges.go
// Role: Edge lifecycle: add (single/bulk) and remove (single/bulk).
// Determinism:
//   - Undirected (a,b) stores the record under (a,b); (b,a) is a reference to it.
// AI-HINT (file):
//   - Endpoint validation runs before any mutation.
//   - Re-adding an existing edge leaves it untouched and logs a ConflictWarning.
//   - RemoveEdge checks every requested direction first, then deletes.

package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvgraph/store"
)

// EdgeOption tunes AddEdge and RemoveEdge.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	directed      *bool
	createMissing *bool
	skipHooks     bool
}

// WithEdgeDirected overrides the graph default directedness for one call.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) { c.directed = &directed }
}

// WithCreateMissing controls insertion of absent endpoints for one AddEdge call.
func WithCreateMissing(create bool) EdgeOption {
	return func(c *edgeConfig) { c.createMissing = &create }
}

// WithoutEdgeHooks skips OnNew capability hooks for the added edges.
func WithoutEdgeHooks() EdgeOption {
	return func(c *edgeConfig) { c.skipHooks = true }
}

func (g *Graph) resolveEdgeOptions(opts []EdgeOption) (directed, create bool, cfg edgeConfig) {
	for _, opt := range opts {
		opt(&cfg)
	}
	directed, create = g.directed, g.createMissing
	if cfg.directed != nil {
		directed = *cfg.directed
	}
	if cfg.createMissing != nil {
		create = *cfg.createMissing
	}

	return directed, create, cfg
}

// pairOf lists the EdgeIDs making up (from,to) under the given directedness.
func pairOf(e EdgeID, directed bool) []EdgeID {
	if directed || e.IsLoop() {
		return []EdgeID{e}
	}

	return []EdgeID{e, e.Reverse()}
}

func (g *Graph) writableEdges() *store.Store[EdgeID] {
	if g.IsOrigin() {
		return g.edges
	}

	return g.edges.Full()
}

// AddEdge connects from and to and returns the (from, to) EdgeID.
//
// Implementation:
//   - Stage 1: Validate both ids; absent endpoints fail with ErrNodeNotFound
//     unless create-missing is active, in which case they are inserted under
//     the given ids (also in auto-id mode).
//   - Stage 2: Resolve directedness (option, else graph default).
//   - Stage 3: Store a deep copy of attrs under (from,to); for undirected edges
//     (to,from) becomes a reference to it. Existing keys are skipped with a warning.
//
// Errors:
//   - ErrNodeIDRequired, ErrUnhashableID, ErrNodeNotFound.
func (g *Graph) AddEdge(from, to NodeID, attrs Attrs, opts ...EdgeOption) (EdgeID, error) {
	directed, create, cfg := g.resolveEdgeOptions(opts)
	e, err := checkEdge(EdgeID{From: from, To: to})
	if err != nil {
		return EdgeID{}, fmt.Errorf("add edge: %w", err)
	}

	allNodes := g.nodes.Full()
	var missing []NodeID
	for _, n := range []NodeID{e.From, e.To} {
		if !allNodes.Has(n) && (len(missing) == 0 || missing[0] != n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 && !create {
		return EdgeID{}, fmt.Errorf("add edge %v: node %v: %w", e, missing[0], ErrNodeNotFound)
	}
	for _, n := range missing {
		g.insertNode(n)
	}

	edges := g.writableEdges()
	pair := pairOf(e, directed)
	var added, skipped []EdgeID
	for i, k := range pair {
		if edges.Full().Has(k) {
			skipped = append(skipped, k)
			continue
		}
		if i == 1 {
			if err := edges.SetReference(k, pair[0]); err != nil {
				return e, fmt.Errorf("add edge %v: %w", e, err)
			}
		} else {
			edges.Set(k, store.RecordOf(attrs).Clone())
		}
		added = append(added, k)
		g.log().Debug("edge added", zap.Stringer("edge", k))
	}
	if len(skipped) > 0 {
		g.origin.conflicts++
		g.log().Warn("edge already exists, use an explicit update to change attributes",
			zap.Stringer("edge", e), zap.Int("skipped", len(skipped)))
	}
	if !cfg.skipHooks {
		for _, k := range added {
			g.runEdgeHooks(k)
		}
	}

	return e, nil
}

// insertNode adds a node under an explicit id regardless of auto-id mode.
func (g *Graph) insertNode(id NodeID) {
	o := g.origin
	rec := store.NewRecord()
	rec.Set(g.keyField, id)
	rec.Set(InternalIDField, o.nextID)
	if v, ok := asInt64(id); ok && g.autoID && v >= o.nextID {
		o.nextID = v
	}
	o.nextID++
	g.writableNodes().Set(id, rec)
	g.log().Debug("node added for edge endpoint", zap.Any("node", id))
}

// EdgeSpec is one element of a bulk AddEdges call.
type EdgeSpec struct {
	From, To NodeID
	Attrs    Attrs
}

// AddEdges adds edges in order. Not transactional.
func (g *Graph) AddEdges(specs []EdgeSpec, opts ...EdgeOption) ([]EdgeID, error) {
	out := make([]EdgeID, 0, len(specs))
	for _, s := range specs {
		e, err := g.AddEdge(s.From, s.To, s.Attrs, opts...)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}

	return out, nil
}

// RemoveEdge removes (from,to) and, for undirected removal, (to,from).
// Every requested direction must be visible, else ErrEdgeNotFound and
// nothing is removed.
func (g *Graph) RemoveEdge(from, to NodeID, opts ...EdgeOption) error {
	directed, _, _ := g.resolveEdgeOptions(opts)
	e, err := checkEdge(EdgeID{From: from, To: to})
	if err != nil {
		return fmt.Errorf("remove edge: %w", err)
	}
	pair := pairOf(e, directed)
	for _, k := range pair {
		if !g.edges.Has(k) {
			return fmt.Errorf("remove edge %v: %w", k, ErrEdgeNotFound)
		}
	}
	for _, k := range pair {
		if err := g.edges.Remove(k); err != nil {
			return fmt.Errorf("remove edge %v: %w", k, ErrEdgeNotFound)
		}
		g.log().Debug("edge removed", zap.Stringer("edge", k))
	}

	return nil
}

// RemoveEdges removes each edge in turn, stopping at the first error.
func (g *Graph) RemoveEdges(ids []EdgeID, opts ...EdgeOption) error {
	for _, e := range ids {
		if err := g.RemoveEdge(e.From, e.To, opts...); err != nil {
			return err
		}
	}

	return nil
}
