// File: capabilities.go
// Role: Capability attachment for views, the built-in NodeTools/EdgeTools, ORM registration.
// Determinism:
//   - Capabilities are built once per selection in the order given by orm.Compose.
// AI-HINT (file):
//   - NodeTools/EdgeTools read and write through the origin backing on every
//     call, so they observe later mutations and fail with NotFound once the
//     element is removed.
//   - Capabilities implementing Initializer get OnNew called once after the
//     node or edge they resolve for is created.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/orm"
	"github.com/katalvlaran/lvgraph/store"
)

// Initializer is implemented by capabilities that run custom set-up for new elements.
type Initializer interface {
	OnNew()
}

// Capability names of the built-in tool types.
const (
	NodeToolsName = "NodeTools"
	EdgeToolsName = "EdgeTools"
)

// NodeToolsType attaches *NodeTools to singleton node views.
var NodeToolsType = &orm.Type[*Graph]{
	Name: NodeToolsName,
	New: func(v *Graph) orm.Capability {
		t := &NodeTools{g: v}
		for id := range v.nodes.Keys() {
			t.id = id
			break
		}
		return t
	},
}

// EdgeToolsType attaches *EdgeTools to singleton edge views.
var EdgeToolsType = &orm.Type[*Graph]{
	Name: EdgeToolsName,
	New: func(v *Graph) orm.Capability {
		t := &EdgeTools{g: v}
		for e := range v.edges.Keys() {
			t.id = e
			break
		}
		return t
	},
}

// attach composes and instantiates capabilities on view g. Inherited types
// rank after resolved ones and before the built-in tools.
func (g *Graph) attach(cfg selectConfig, inherited, resolved []*orm.Type[*Graph], tools *orm.Type[*Graph]) {
	base := inherited
	if tools != nil && !cfg.noTools {
		base = append(base, tools)
	}
	g.instantiate(orm.Compose(cfg.extra, resolved, base))
}

// inheritable returns the capability types g passes on to its selections.
func (g *Graph) inheritable(cfg selectConfig) []*orm.Type[*Graph] {
	if cfg.noInherit || !g.origin.mapper.Inherit {
		return nil
	}
	var out []*orm.Type[*Graph]
	for _, t := range g.capTypes {
		if t.Name == NodeToolsName || t.Name == EdgeToolsName {
			continue
		}
		out = append(out, t)
	}

	return out
}

func (g *Graph) instantiate(types []*orm.Type[*Graph]) {
	g.capTypes = types
	g.caps = make([]orm.Capability, 0, len(types))
	for _, t := range types {
		g.caps = append(g.caps, t.New(g))
	}
}

// Capabilities returns the capabilities of g in resolution order.
func (g *Graph) Capabilities() []orm.Capability {
	out := make([]orm.Capability, len(g.caps))
	copy(out, g.caps)

	return out
}

// CapabilityNames lists capability names in resolution order.
func (g *Graph) CapabilityNames() []string { return orm.Names(g.capTypes) }

// Capability returns the first capability with the given name.
func (g *Graph) Capability(name string) (orm.Capability, bool) {
	for _, c := range g.caps {
		if c.CapabilityName() == name {
			return c, true
		}
	}

	return nil, false
}

// HasCapability reports whether g exposes a capability named name.
func (g *Graph) HasCapability(name string) bool {
	_, ok := g.Capability(name)

	return ok
}

// As returns the first capability of g assignable to T.
func As[T any](g *Graph) (T, bool) {
	for _, c := range g.caps {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T

	return zero, false
}

// Node returns the NodeTools of a singleton node view.
func (g *Graph) Node() (*NodeTools, bool) { return As[*NodeTools](g) }

// Edge returns the EdgeTools of a singleton edge view.
func (g *Graph) Edge() (*EdgeTools, bool) { return As[*EdgeTools](g) }

// RegisterNodeType binds rule to typ for node selections of the origin.
func (g *Graph) RegisterNodeType(rule orm.Rule, typ *orm.Type[*Graph], priority int) (int, error) {
	return g.origin.mapper.Nodes.Register(rule, typ, priority)
}

// RegisterEdgeType binds rule to typ for edge selections of the origin.
func (g *Graph) RegisterEdgeType(rule orm.Rule, typ *orm.Type[*Graph], priority int) (int, error) {
	return g.origin.mapper.Edges.Register(rule, typ, priority)
}

func (g *Graph) runNodeHooks(id NodeID) {
	if g.origin.mapper.Nodes.Len() == 0 {
		return
	}
	if v, err := g.origin.GetNode(id, WithoutTools(), withoutInheritance()); err == nil {
		v.runHooks()
	}
}

func (g *Graph) runEdgeHooks(e EdgeID) {
	if g.origin.mapper.Edges.Len() == 0 {
		return
	}
	if v, err := g.origin.GetEdges([]EdgeID{e}, WithoutTools(), withoutInheritance()); err == nil {
		v.runHooks()
	}
}

func (g *Graph) runHooks() {
	for _, c := range g.caps {
		if h, ok := c.(Initializer); ok {
			h.OnNew()
		}
	}
}

// NodeTools gives explicit attribute access to the node of a singleton view.
type NodeTools struct {
	g  *Graph
	id NodeID
}

// CapabilityName implements orm.Capability.
func (t *NodeTools) CapabilityName() string { return NodeToolsName }

// ID returns the node id.
func (t *NodeTools) ID() NodeID { return t.id }

// View returns the view the tools are bound to.
func (t *NodeTools) View() *Graph { return t.g }

// Attrs returns the live record, or nil once the node is gone.
func (t *NodeTools) Attrs() *store.Record {
	rec, _ := t.g.nodes.Full().Get(t.id)

	return rec
}

// Get returns the attribute key.
func (t *NodeTools) Get(key string) (any, bool) { return t.Attrs().Get(key) }

// GetOr returns the attribute key or def.
func (t *NodeTools) GetOr(key string, def any) any { return t.Attrs().GetOr(key, def) }

// Set writes an attribute.
func (t *NodeTools) Set(key string, value any) error {
	rec := t.Attrs()
	if rec == nil {
		return fmt.Errorf("set %q on node %v: %w", key, t.id, ErrNodeNotFound)
	}
	rec.Set(key, value)

	return nil
}

// Delete removes an attribute and reports whether it was present.
func (t *NodeTools) Delete(key string) bool {
	rec := t.Attrs()

	return rec != nil && rec.Delete(key)
}

// Key returns the key-field attribute.
func (t *NodeTools) Key() any { return t.GetOr(t.g.keyField, nil) }

// Value returns the value-field attribute.
func (t *NodeTools) Value() any { return t.GetOr(t.g.valueField, nil) }

// SetValue writes the value-field attribute.
func (t *NodeTools) SetValue(v any) error { return t.Set(t.g.valueField, v) }

// Neighbors lists the node's neighbours in the origin graph.
func (t *NodeTools) Neighbors() ([]NodeID, error) {
	return t.g.origin.Adjacency().Neighbors(t.id)
}

// EdgeTools gives explicit attribute access to the edge of a singleton view.
type EdgeTools struct {
	g  *Graph
	id EdgeID
}

// CapabilityName implements orm.Capability.
func (t *EdgeTools) CapabilityName() string { return EdgeToolsName }

// ID returns the edge id.
func (t *EdgeTools) ID() EdgeID { return t.id }

// View returns the view the tools are bound to.
func (t *EdgeTools) View() *Graph { return t.g }

// Attrs returns the live record (shared with the reverse key of an undirected
// pair), or nil once the edge is gone.
func (t *EdgeTools) Attrs() *store.Record {
	rec, _ := t.g.edges.Full().Get(t.id)

	return rec
}

// Get returns the attribute key.
func (t *EdgeTools) Get(key string) (any, bool) { return t.Attrs().Get(key) }

// GetOr returns the attribute key or def.
func (t *EdgeTools) GetOr(key string, def any) any { return t.Attrs().GetOr(key, def) }

// Set writes an attribute.
func (t *EdgeTools) Set(key string, value any) error {
	rec := t.Attrs()
	if rec == nil {
		return fmt.Errorf("set %q on edge %v: %w", key, t.id, ErrEdgeNotFound)
	}
	rec.Set(key, value)

	return nil
}

// Delete removes an attribute and reports whether it was present.
func (t *EdgeTools) Delete(key string) bool {
	rec := t.Attrs()

	return rec != nil && rec.Delete(key)
}

// Key returns the key-field attribute.
func (t *EdgeTools) Key() any { return t.GetOr(t.g.keyField, nil) }

// Value returns the value-field attribute.
func (t *EdgeTools) Value() any { return t.GetOr(t.g.valueField, nil) }

// SetValue writes the value-field attribute.
func (t *EdgeTools) SetValue(v any) error { return t.Set(t.g.valueField, v) }

// IsLinked reports whether the edge shares its record with its reverse.
func (t *EdgeTools) IsLinked() bool {
	full := t.g.edges.Full()

	return full.IsReference(t.id) || len(full.Referrers(t.id)) > 0
}
