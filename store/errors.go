// SPDX-License-Identifier: MIT
// Package store: sentinel error set.
// Two category roots (ErrNotFound, ErrValidation) are shared by every package
// of the module; package-specific sentinels wrap one of them so callers may
// match either the precise condition or its category via errors.Is.

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the category root for absent (or masked out) ids and keys.
	ErrNotFound = errors.New("lvgraph: not found")

	// ErrValidation is the category root for malformed input rejected before mutation.
	ErrValidation = errors.New("lvgraph: validation failed")
)

var (
	// ErrKeyNotFound is returned by Remove and Unlink for keys that are absent
	// from the backing storage or outside the active mask.
	ErrKeyNotFound = fmt.Errorf("store: key not found: %w", ErrNotFound)

	// ErrInvalidReference is returned by SetReference when the target is absent
	// or the reference would be circular.
	ErrInvalidReference = fmt.Errorf("store: invalid reference: %w", ErrValidation)
)
