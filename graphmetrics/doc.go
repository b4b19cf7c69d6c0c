// Package graphmetrics exports lvgraph graph statistics as Prometheus metrics.
//
// A Collector tracks named graphs and reads their Stats() snapshot on every
// scrape. Graphs are single-writer: callers that mutate a tracked graph while
// a registry may scrape it must serialise both under their own lock.
//
//	c := graphmetrics.NewCollector("")
//	_ = c.Track("main", g)
//	prometheus.MustRegister(c)
package graphmetrics
