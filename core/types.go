// Package core defines Graph, the externally visible graph and sub-graph type
// of lvgraph, together with its options and construction.
//
// This file declares Graph, GraphOption and the NewGraph constructor.
//
// Errors (see errors.go):
//
//	ErrNodeNotFound    - node id absent from the origin or outside the mask.
//	ErrEdgeNotFound    - edge id absent from the origin or outside the mask.
//	ErrNodeIDRequired  - nil node id where one is required.
//	ErrUnhashableID    - node id cannot be used as a map key.
//	ErrDuplicateNode   - existing id rejected by WithRejectExisting.
//	ErrBadWeight       - non-numeric weight attribute in Degree.
//	ErrInvalidConfig   - Config failed validation.
//	ErrNilGraph        - nil *Graph argument.
package core

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvgraph/orm"
	"github.com/katalvlaran/lvgraph/store"
)

// Default attribute names for the key/value projections.
const (
	DefaultKeyField   = "key"
	DefaultValueField = "value"

	// InternalIDField holds the per-origin insertion counter on every node record.
	InternalIDField = "_id"
)

// Graph is a graph or a view on one.
//
// A Graph owns (origin) or aliases (view) one node store and one edge store.
// Views are masks over the origin's backing: adding or removing through a view
// changes the origin, while the view's own mask is left alone.
//
// Origin-only state (identity, id counter, ORM mapper, logger, conflict
// counter) lives on the origin and is reached through g.origin.
type Graph struct {
	nodes *store.Store[NodeID]
	edges *store.Store[EdgeID]

	origin *Graph // origin.origin == origin

	directed      bool
	autoID        bool
	createMissing bool
	keyField      string
	valueField    string
	root          NodeID

	// origin-only
	id        uuid.UUID
	nextID    int64
	mapper    *orm.Mapper[*Graph]
	logger    *zap.Logger
	conflicts int

	// resolved for singleton views
	caps     []orm.Capability
	capTypes []*orm.Type[*Graph]
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithAutoID switches auto-assigned int64 node ids on or off (default on).
func WithAutoID(auto bool) GraphOption {
	return func(g *Graph) { g.autoID = auto }
}

// WithDirected sets the default directedness of new edges (default undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithKeyField names the attribute used by the key projection.
// Panics on an empty name.
func WithKeyField(name string) GraphOption {
	if name == "" {
		panic("core: WithKeyField(empty)")
	}

	return func(g *Graph) { g.keyField = name }
}

// WithValueField names the attribute used by the value projection.
// Panics on an empty name.
func WithValueField(name string) GraphOption {
	if name == "" {
		panic("core: WithValueField(empty)")
	}

	return func(g *Graph) { g.valueField = name }
}

// WithLogger sets the structured logger shared by the graph and its views.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithORM installs a prepared mapper. Its registries adopt the graph logger.
func WithORM(m *orm.Mapper[*Graph]) GraphOption {
	return func(g *Graph) {
		if m != nil {
			g.mapper = m
		}
	}
}

// WithRoot sets the optional root node id kept for hierarchical extensions.
func WithRoot(root NodeID) GraphOption {
	return func(g *Graph) { g.root = normalize(root) }
}

// WithCreateMissingNodes makes AddEdge insert absent endpoints by default.
func WithCreateMissingNodes() GraphOption {
	return func(g *Graph) { g.createMissing = true }
}

// NewGraph creates an empty origin graph.
// Defaults: auto-id on, undirected, key field "key", value field "value".
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:      store.New[NodeID](),
		edges:      store.New[EdgeID](),
		autoID:     true,
		keyField:   DefaultKeyField,
		valueField: DefaultValueField,
		id:         uuid.New(),
		nextID:     1,
		logger:     zap.NewNop(),
	}
	g.origin = g
	for _, opt := range opts {
		opt(g)
	}
	if g.mapper == nil {
		g.mapper = orm.NewMapper[*Graph](g.logger)
	} else {
		g.mapper.SetLogger(g.logger)
	}

	return g
}

// derive returns a view on g's origin with the given stores. Settings are
// inherited from g; origin-only fields stay on the origin.
func (g *Graph) derive(nodes *store.Store[NodeID], edges *store.Store[EdgeID]) *Graph {
	return &Graph{
		nodes:         nodes,
		edges:         edges,
		origin:        g.origin,
		directed:      g.directed,
		autoID:        g.autoID,
		createMissing: g.createMissing,
		keyField:      g.keyField,
		valueField:    g.valueField,
		root:          g.root,
	}
}

func (g *Graph) log() *zap.Logger {
	return g.origin.logger.With(zap.Stringer("graph", g.origin.id))
}
