// File: view.go
// Role: Aliasing selections (get/query/range/iterate) over the origin storage.
// Determinism:
//   - Node masks keep the requested order; induced edge masks follow origin edge order.
// AI-HINT (file):
//   - Views never copy records: they share the origin backing and hold masks.
//   - Every requested id must exist in the origin, else NotFound and no view.
//   - Singleton selections get capabilities resolved through the ORM.
//   - With ORM inheritance on, selections also carry the selecting view's
//     types, minus NodeTools/EdgeTools (the selection brings its own).

package core

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/katalvlaran/lvgraph/orm"
	"github.com/katalvlaran/lvgraph/store"
)

// SelectOption tunes capability attachment on selections.
type SelectOption func(*selectConfig)

type selectConfig struct {
	extra     []*orm.Type[*Graph]
	noTools   bool
	noInherit bool
}

// WithCapabilities adds caller-supplied capability types. They precede any
// type resolved from the ORM.
func WithCapabilities(types ...*orm.Type[*Graph]) SelectOption {
	return func(c *selectConfig) { c.extra = append(c.extra, types...) }
}

// WithoutTools leaves NodeTools/EdgeTools off singleton selections.
func WithoutTools() SelectOption {
	return func(c *selectConfig) { c.noTools = true }
}

// withoutInheritance selects with the registry types only. Hooks use it so
// that only the types bound to the new element run.
func withoutInheritance() SelectOption {
	return func(c *selectConfig) { c.noInherit = true }
}

func selectOptions(opts []SelectOption) selectConfig {
	var c selectConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// GetNodes returns a view on the origin holding ids and the edges among them.
//
// Errors:
//   - ErrNodeNotFound if any id is absent from the origin (no view is built).
//   - ErrNodeIDRequired / ErrUnhashableID for malformed ids.
//
// Complexity:
//   - Time O(len(ids) + E) for the induced edge scan.
func (g *Graph) GetNodes(ids []NodeID, opts ...SelectOption) (*Graph, error) {
	o := g.origin
	nids := make([]NodeID, 0, len(ids))
	in := make(map[NodeID]struct{}, len(ids))
	for _, id := range ids {
		nid, err := checkID(id)
		if err != nil {
			return nil, fmt.Errorf("get nodes: %w", err)
		}
		if !o.nodes.Has(nid) {
			return nil, fmt.Errorf("get nodes: %v: %w", nid, ErrNodeNotFound)
		}
		if _, dup := in[nid]; dup {
			continue
		}
		in[nid] = struct{}{}
		nids = append(nids, nid)
	}

	var eids []EdgeID
	for e := range o.edges.Keys() {
		_, f := in[e.From]
		_, t := in[e.To]
		if f && t {
			eids = append(eids, e)
		}
	}

	v := g.derive(o.nodes.WithView(nids), o.edges.WithView(eids))
	v.resetRoot()
	cfg := selectOptions(opts)
	if len(nids) == 1 {
		rec, _ := o.nodes.Get(nids[0])
		v.attach(cfg, g.inheritable(cfg), o.mapper.Nodes.Resolve(rec), NodeToolsType)
	} else {
		v.attach(cfg, g.inheritable(cfg), nil, nil)
	}

	return v, nil
}

// GetNode is GetNodes for one id.
func (g *Graph) GetNode(id NodeID, opts ...SelectOption) (*Graph, error) {
	return g.GetNodes([]NodeID{id}, opts...)
}

// GetEdges returns a view on the origin holding ids and their endpoints.
//
// Errors:
//   - ErrEdgeNotFound if any edge is absent from the origin (no view is built).
func (g *Graph) GetEdges(ids []EdgeID, opts ...SelectOption) (*Graph, error) {
	o := g.origin
	eids := make([]EdgeID, 0, len(ids))
	var nids []NodeID
	seen := make(map[NodeID]struct{})
	for _, id := range ids {
		e, err := checkEdge(id)
		if err != nil {
			return nil, fmt.Errorf("get edges: %w", err)
		}
		if !o.edges.Has(e) {
			return nil, fmt.Errorf("get edges: %v: %w", e, ErrEdgeNotFound)
		}
		eids = append(eids, e)
		for _, n := range []NodeID{e.From, e.To} {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				nids = append(nids, n)
			}
		}
	}

	v := g.derive(o.nodes.WithView(nids), o.edges.WithView(eids))
	v.resetRoot()
	cfg := selectOptions(opts)
	if v.edges.Len() == 1 {
		rec, _ := o.edges.Get(eids[0])
		v.attach(cfg, g.inheritable(cfg), o.mapper.Edges.Resolve(rec), EdgeToolsType)
	} else {
		v.attach(cfg, g.inheritable(cfg), nil, nil)
	}

	return v, nil
}

// GetEdge is GetEdges for one (from, to).
func (g *Graph) GetEdge(from, to NodeID, opts ...SelectOption) (*Graph, error) {
	return g.GetEdges([]EdgeID{{From: from, To: to}}, opts...)
}

// NodeRange selects the integer ids start, start+step, ... below stop.
// stop <= 0 means through the highest visible integer id; step <= 0 means 1.
// Every id in the range must exist.
func (g *Graph) NodeRange(start, stop, step int64, opts ...SelectOption) (*Graph, error) {
	if step <= 0 {
		step = 1
	}
	if stop <= 0 {
		for id := range g.nodes.Keys() {
			if v, ok := asInt64(id); ok && v >= stop {
				stop = v + 1
			}
		}
	}
	var ids []NodeID
	for i := start; i < stop; i += step {
		ids = append(ids, i)
	}

	return g.GetNodes(ids, opts...)
}

// NodePredicate filters node records.
type NodePredicate func(id NodeID, rec *store.Record) bool

// EdgePredicate filters edge records.
type EdgePredicate func(id EdgeID, rec *store.Record) bool

// QueryNodes selects the visible nodes matching pred.
func (g *Graph) QueryNodes(pred NodePredicate, opts ...SelectOption) (*Graph, error) {
	return g.GetNodes(g.nodes.Query(pred), opts...)
}

// QueryEdges selects the visible edges matching pred.
func (g *Graph) QueryEdges(pred EdgePredicate, opts ...SelectOption) (*Graph, error) {
	return g.GetEdges(g.edges.Query(pred), opts...)
}

// QueryNodesMatching selects nodes whose attributes equal every entry of attrs
// (an absent attribute compares as nil).
func (g *Graph) QueryNodesMatching(attrs Attrs, opts ...SelectOption) (*Graph, error) {
	return g.QueryNodes(func(_ NodeID, rec *store.Record) bool { return matches(rec, attrs) }, opts...)
}

// QueryEdgesMatching is QueryNodesMatching for edges.
func (g *Graph) QueryEdgesMatching(attrs Attrs, opts ...SelectOption) (*Graph, error) {
	return g.QueryEdges(func(_ EdgeID, rec *store.Record) bool { return matches(rec, attrs) }, opts...)
}

func matches(rec *store.Record, attrs Attrs) bool {
	for k, want := range attrs {
		if !reflect.DeepEqual(rec.GetOr(k, nil), want) {
			return false
		}
	}

	return true
}

// IterNodes yields a singleton view per visible node.
func (g *Graph) IterNodes(opts ...SelectOption) iter.Seq[*Graph] {
	return func(yield func(*Graph) bool) {
		for id := range g.nodes.Keys() {
			v, err := g.GetNode(id, opts...)
			if err != nil {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// IterEdges yields a singleton view per visible edge.
func (g *Graph) IterEdges(opts ...SelectOption) iter.Seq[*Graph] {
	return func(yield func(*Graph) bool) {
		for e := range g.edges.Keys() {
			v, err := g.GetEdges([]EdgeID{e}, opts...)
			if err != nil {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// resetRoot moves a root that fell outside the view to the visible node with
// the smallest internal id.
func (g *Graph) resetRoot() {
	if g.root == nil || g.nodes.Len() == 0 || g.nodes.Has(g.root) {
		return
	}
	var (
		best  NodeID
		bestI int64
		found bool
	)
	for id, rec := range g.nodes.Items() {
		v, _ := rec.GetOr(InternalIDField, int64(0)).(int64)
		if !found || v < bestI {
			best, bestI, found = id, v, true
		}
	}
	g.root = best
}
