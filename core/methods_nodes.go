// File: methods_nodes.go
// Role: Node lifecycle: add (single/bulk), remove (single/bulk), clear.
// Determinism:
//   - Auto ids come from the origin counter, which only increases.
// AI-HINT (file):
//   - Mutations through a view write to the origin backing; the view's own mask
//     is not extended (origins with a copied mask are extended).
//   - Duplicate ids in non-auto mode merge attributes and log a ConflictWarning.

package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvgraph/store"
)

// Attrs is the attribute map accepted by mutation methods.
type Attrs = map[string]any

// NodeOption tunes a single AddNode call.
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	rejectExisting bool
	skipHooks      bool
}

// WithRejectExisting makes AddNode fail with ErrDuplicateNode instead of merging.
func WithRejectExisting() NodeOption {
	return func(c *nodeConfig) { c.rejectExisting = true }
}

// WithoutHooks skips OnNew capability hooks for the added element.
func WithoutHooks() NodeOption {
	return func(c *nodeConfig) { c.skipHooks = true }
}

// writableNodes returns the store new nodes are written to.
func (g *Graph) writableNodes() *store.Store[NodeID] {
	if g.IsOrigin() {
		return g.nodes
	}

	return g.nodes.Full()
}

// AddNode inserts a node and returns its id.
//
// Implementation:
//   - Auto-id mode: id is ignored as identifier, the node gets the next origin
//     counter value and id (when non-nil) is stored under the key field.
//   - Otherwise id must be non-nil and hashable; it is also stored under the key field.
//   - Every new record carries InternalIDField with the counter value.
//
// Behavior highlights:
//   - Existing id (non-auto mode): attrs are merged into the existing record,
//     a warning is logged and the id returned. WithRejectExisting turns this
//     into ErrDuplicateNode.
//   - attrs are deep-copied.
//
// Errors:
//   - ErrNodeIDRequired, ErrUnhashableID, ErrDuplicateNode.
//
// Complexity:
//   - Time O(|attrs|) amortised.
func (g *Graph) AddNode(id NodeID, attrs Attrs, opts ...NodeOption) (NodeID, error) {
	var cfg nodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	o := g.origin
	var nid NodeID
	if g.autoID {
		nid = o.nextID
		if id != nil {
			id = normalize(id)
		}
	} else {
		var err error
		if nid, err = checkID(id); err != nil {
			return nil, fmt.Errorf("add node: %w", err)
		}
		id = nid
		if rec, ok := g.nodes.Full().Get(nid); ok {
			if cfg.rejectExisting {
				return nil, fmt.Errorf("add node %v: %w", nid, ErrDuplicateNode)
			}
			rec.Update(store.RecordOf(attrs).Clone())
			o.conflicts++
			g.log().Warn("node already exists, attributes merged", zap.Any("node", nid))

			return nid, nil
		}
	}

	rec := store.NewRecord()
	if id != nil {
		rec.Set(g.keyField, id)
	}
	rec.Update(store.RecordOf(attrs).Clone())
	rec.Set(InternalIDField, o.nextID)
	o.nextID++

	g.writableNodes().Set(nid, rec)
	g.log().Debug("node added", zap.Any("node", nid))
	if !cfg.skipHooks {
		g.runNodeHooks(nid)
	}

	return nid, nil
}

// NodeSpec is one element of a bulk AddNodes call.
type NodeSpec struct {
	ID    NodeID
	Attrs Attrs
}

// AddNodes adds nodes in order and returns their ids. It is not transactional:
// on error, nodes added before the failing one remain.
func (g *Graph) AddNodes(specs []NodeSpec, opts ...NodeOption) ([]NodeID, error) {
	out := make([]NodeID, 0, len(specs))
	for _, s := range specs {
		nid, err := g.AddNode(s.ID, s.Attrs, opts...)
		if err != nil {
			return out, err
		}
		out = append(out, nid)
	}

	return out, nil
}

// RemoveNode removes a visible node and every incident edge of the origin.
// An absent node is logged as a warning and ignored.
//
// Complexity:
//   - Time O(E) for the incident-edge scan.
func (g *Graph) RemoveNode(id NodeID) {
	nid, err := checkID(id)
	if err != nil || !g.nodes.Has(nid) {
		g.log().Warn("unable to remove node, no such node", zap.Any("node", id))
		return
	}

	allEdges := g.edges.Full()
	var incident []EdgeID
	for e := range allEdges.Keys() {
		if e.From == nid || e.To == nid {
			incident = append(incident, e)
		}
	}
	for _, e := range incident {
		_ = allEdges.Remove(e)
	}
	if g.edges.IsView() {
		// prune removed keys so a later re-add does not resurface them here
		g.edges.SetView(g.edges.View())
	}
	_ = g.nodes.Remove(nid)

	g.log().Debug("node removed", zap.Any("node", nid), zap.Int("edges", len(incident)))
}

// RemoveNodes removes each id in turn.
func (g *Graph) RemoveNodes(ids []NodeID) {
	for _, id := range ids {
		g.RemoveNode(id)
	}
}

// Clear removes every visible node (with incident edges) and every visible edge.
// The id counter is left untouched.
func (g *Graph) Clear() {
	for _, e := range g.EdgeIDs() {
		_ = g.edges.Remove(e)
	}
	for _, n := range g.NodeIDs() {
		g.RemoveNode(n)
	}
}
