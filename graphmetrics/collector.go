// SPDX-License-Identifier: MIT
// File: collector.go
// Role: prometheus.Collector over the Stats() snapshots of named graphs.
// Determinism:
//   - Collect emits graphs in sorted name order.
// AI-HINT (file):
//   - Metrics are const metrics built per scrape; nothing is cached between scrapes.
//   - The mutex guards the name map only, not the graphs.

package graphmetrics

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvgraph/core"
	"github.com/katalvlaran/lvgraph/store"
)

// DefaultNamespace prefixes metric names when NewCollector gets "".
const DefaultNamespace = "lvgraph"

// ErrNameInUse indicates Track with a name that is already tracked.
var ErrNameInUse = fmt.Errorf("graphmetrics: graph name already tracked: %w", store.ErrValidation)

// Collector implements prometheus.Collector over tracked graphs.
type Collector struct {
	mu     sync.Mutex
	graphs map[string]*core.Graph

	nodes     *prometheus.Desc
	edges     *prometheus.Desc
	linked    *prometheus.Desc
	directed  *prometheus.Desc
	nextID    *prometheus.Desc
	conflicts *prometheus.Desc
	bindings  *prometheus.Desc
}

// NewCollector creates a collector whose metric names start with namespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", name),
			help,
			append([]string{"graph"}, labels...),
			nil,
		)
	}

	return &Collector{
		graphs:    make(map[string]*core.Graph),
		nodes:     desc("nodes", "Visible nodes of a tracked graph."),
		edges:     desc("edges", "Visible edge keys of a tracked graph."),
		linked:    desc("linked_edges", "Visible edge keys sharing the record of their reverse."),
		directed:  desc("directed_edges", "Visible edges whose reverse is not visible."),
		nextID:    desc("next_id", "Next auto-assigned node id of the graph origin."),
		conflicts: desc("conflicts_total", "Conflict warnings logged by the graph origin."),
		bindings:  desc("orm_bindings", "Capability bindings registered on the graph origin.", "kind"),
	}
}

// Track adds g under name.
func (c *Collector) Track(name string, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("track %q: %w", name, core.ErrNilGraph)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.graphs[name]; ok {
		return fmt.Errorf("track %q: %w", name, ErrNameInUse)
	}
	c.graphs[name] = g

	return nil
}

// Untrack removes name and reports whether it was tracked.
func (c *Collector) Untrack(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.graphs[name]
	delete(c.graphs, name)

	return ok
}

// Tracked lists the tracked names in sorted order.
func (c *Collector) Tracked() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Sorted(maps.Keys(c.graphs))
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{c.nodes, c.edges, c.linked, c.directed, c.nextID, c.conflicts, c.bindings} {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, name := range slices.Sorted(maps.Keys(c.graphs)) {
		st := c.graphs[name].Stats()
		gauge := func(d *prometheus.Desc, v float64, labels ...string) {
			ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, append([]string{name}, labels...)...)
		}
		gauge(c.nodes, float64(st.NodeCount))
		gauge(c.edges, float64(st.EdgeCount))
		gauge(c.linked, float64(st.LinkedEdgeCount))
		gauge(c.directed, float64(st.DirectedEdgeCount))
		gauge(c.nextID, float64(st.NextID))
		ch <- prometheus.MustNewConstMetric(c.conflicts, prometheus.CounterValue, float64(st.Conflicts), name)
		gauge(c.bindings, float64(st.NodeBindings), "node")
		gauge(c.bindings, float64(st.EdgeBindings), "edge")
	}
}
