// SPDX-License-Identifier: MIT
// Package: lvgraph/setops
//
// options.go — functional options and sentinel errors for set operations.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Without WithCopy, operands sharing one origin yield an aliasing view;
//     otherwise the result is an independent deep copy.
//
// AI-Hints:
//   • WithEdgeDiff only affects Difference and SymmetricDifference.
//   • WithoutNodeAttributes / WithoutEdgeAttributes only affect Add and Update.

package setops

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/store"
)

// ErrTooFewGraphs indicates an n-ary operation called with fewer than two graphs.
var ErrTooFewGraphs = fmt.Errorf("setops: at least two graphs required: %w", store.ErrValidation)

// Option customises a set operation.
type Option func(*config)

type config struct {
	copy          bool
	edgeDiff      bool
	skipNodeAttrs bool
	skipEdgeAttrs bool
}

// WithCopy forces an independent deep-copied result even for shared origins.
func WithCopy() Option {
	return func(c *config) { c.copy = true }
}

// WithEdgeDiff switches Difference and SymmetricDifference from node-driven
// to edge-driven computation.
func WithEdgeDiff() Option {
	return func(c *config) { c.edgeDiff = true }
}

// WithoutNodeAttributes keeps existing node attributes in Add and Update.
func WithoutNodeAttributes() Option {
	return func(c *config) { c.skipNodeAttrs = true }
}

// WithoutEdgeAttributes keeps existing edge attributes in Add and Update.
func WithoutEdgeAttributes() Option {
	return func(c *config) { c.skipEdgeAttrs = true }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
