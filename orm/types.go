// SPDX-License-Identifier: MIT
// File: types.go
// Role: Capability types, matching rules and bindings of the type resolver.
// AI-HINT (file):
//   - V is the view type handed to capability constructors (core uses *core.Graph).
//   - A Type is identified by Name; Excludes lists names it cannot coexist with.
//   - Rules with comparable dynamic types (AttrEquals, HasAttr) are de-duplicated
//     on registration; func Predicates never are.

package orm

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvgraph/store"
)

var (
	// ErrInvalidPredicate is returned by Register for a nil rule.
	ErrInvalidPredicate = fmt.Errorf("orm: predicate is not callable: %w", store.ErrValidation)

	// ErrInvalidType is returned by Register for a nil type, an empty name or a nil constructor.
	ErrInvalidType = fmt.Errorf("orm: invalid capability type: %w", store.ErrValidation)

	// ErrBindingNotFound is returned by Remove for unknown binding ids.
	ErrBindingNotFound = fmt.Errorf("orm: binding not found: %w", store.ErrNotFound)
)

// Capability is a unit of behaviour attached to a singleton view.
type Capability interface {
	CapabilityName() string
}

// Type describes a capability kind and how to build it for a view.
type Type[V any] struct {
	// Name identifies the type; composition de-duplicates on it.
	Name string

	// New constructs the capability bound to view.
	New func(view V) Capability

	// Excludes names types that must not be composed together with this one.
	Excludes []string
}

func (t *Type[V]) validate() error {
	if t == nil {
		return fmt.Errorf("nil type: %w", ErrInvalidType)
	}
	if t.Name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidType)
	}
	if t.New == nil {
		return fmt.Errorf("type %q has no constructor: %w", t.Name, ErrInvalidType)
	}

	return nil
}

// conflicts reports whether a and b exclude each other in either direction.
func conflicts[V any](a, b *Type[V]) bool {
	for _, n := range a.Excludes {
		if n == b.Name {
			return true
		}
	}
	for _, n := range b.Excludes {
		if n == a.Name {
			return true
		}
	}

	return false
}

// Rule decides whether a record selects a capability type.
type Rule interface {
	Match(rec *store.Record) bool
}

// Predicate adapts a plain function to Rule.
type Predicate func(rec *store.Record) bool

// Match calls p.
func (p Predicate) Match(rec *store.Record) bool { return p(rec) }

// AttrEquals matches records whose Key attribute equals Value.
type AttrEquals struct {
	Key   string
	Value any
}

// Match implements Rule.
func (a AttrEquals) Match(rec *store.Record) bool {
	v, ok := rec.Get(a.Key)

	return ok && reflect.DeepEqual(v, a.Value)
}

// HasAttr matches records carrying the named attribute.
type HasAttr string

// Match implements Rule.
func (h HasAttr) Match(rec *store.Record) bool { return rec.Has(string(h)) }

func validateRule(r Rule) error {
	if r == nil {
		return fmt.Errorf("nil rule: %w", ErrInvalidPredicate)
	}
	if p, ok := r.(Predicate); ok && p == nil {
		return fmt.Errorf("nil predicate: %w", ErrInvalidPredicate)
	}

	return nil
}

// sameRule reports whether a and b are equal comparable rules.
func sameRule(a, b Rule) (same bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			same = false
		}
	}()

	return a == b
}

// Binding ties a rule to a capability type with a resolution priority
// (smaller resolves first).
type Binding[V any] struct {
	ID       int
	Rule     Rule
	Type     *Type[V]
	Priority int
}
