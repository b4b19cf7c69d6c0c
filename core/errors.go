// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// Every sentinel wraps one of the two category roots from package store
// (ErrNotFound, ErrValidation), so callers can match either level:
//
//	errors.Is(err, core.ErrNodeNotFound) // precise
//	errors.Is(err, store.ErrNotFound)    // category
//
// Context (ids, operation) is attached at the call site with
// fmt.Errorf("...: %w", ErrX).

package core

import (
	"fmt"

	"github.com/katalvlaran/lvgraph/store"
)

var (
	// ErrNodeNotFound indicates a node id absent from the origin, or outside the
	// active mask for removal.
	ErrNodeNotFound = fmt.Errorf("core: node not found: %w", store.ErrNotFound)

	// ErrEdgeNotFound indicates an edge id absent from the origin, or outside the
	// active mask for removal.
	ErrEdgeNotFound = fmt.Errorf("core: edge not found: %w", store.ErrNotFound)

	// ErrNodeIDRequired indicates a nil node id where one is required.
	ErrNodeIDRequired = fmt.Errorf("core: node id required: %w", store.ErrValidation)

	// ErrUnhashableID indicates a node id whose dynamic type cannot be a map key.
	ErrUnhashableID = fmt.Errorf("core: node id not hashable: %w", store.ErrValidation)

	// ErrDuplicateNode indicates AddNode with WithRejectExisting hit an existing id.
	ErrDuplicateNode = fmt.Errorf("core: node already exists: %w", store.ErrValidation)

	// ErrBadWeight indicates a weight attribute that is not numeric.
	ErrBadWeight = fmt.Errorf("core: weight attribute not numeric: %w", store.ErrValidation)

	// ErrInvalidConfig indicates a Config rejected by validation.
	ErrInvalidConfig = fmt.Errorf("core: invalid config: %w", store.ErrValidation)

	// ErrNilGraph indicates a nil *Graph argument.
	ErrNilGraph = fmt.Errorf("core: graph is nil: %w", store.ErrValidation)
)
