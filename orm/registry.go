// File: registry.go
// Role: Ordered registry of (rule, type, priority) bindings and singleton resolution.
// Determinism:
//   - Binding ids increase monotonically and are never reused.
//   - Resolve sorts matches stably by priority, ties keep registration order.
// AI-HINT (file):
//   - Validation happens in Register, never in Resolve.
//   - Resolve only evaluates rules for exactly one record.

package orm

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvgraph/store"
)

// Registry holds bindings for one target kind (nodes or edges).
type Registry[V any] struct {
	bindings []*Binding[V]
	nextID   int
	logger   *zap.Logger
}

// NewRegistry returns an empty registry. A nil logger is replaced by zap.NewNop.
func NewRegistry[V any](logger *zap.Logger) *Registry[V] {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registry[V]{nextID: 1, logger: logger}
}

// SetLogger replaces the registry logger; nil selects a no-op logger.
func (r *Registry[V]) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.logger = logger
}

// Register binds rule to typ with the given priority and returns the binding id.
// Registering an equal comparable rule for a type of the same name again
// returns the existing id.
func (r *Registry[V]) Register(rule Rule, typ *Type[V], priority int) (int, error) {
	if err := validateRule(rule); err != nil {
		return 0, err
	}
	if err := typ.validate(); err != nil {
		return 0, err
	}

	for _, b := range r.bindings {
		if b.Type.Name == typ.Name && sameRule(b.Rule, rule) {
			r.logger.Info("orm: binding already registered",
				zap.String("type", typ.Name), zap.Int("binding", b.ID))
			return b.ID, nil
		}
	}

	b := &Binding[V]{ID: r.nextID, Rule: rule, Type: typ, Priority: priority}
	r.nextID++
	r.bindings = append(r.bindings, b)
	r.logger.Debug("orm: binding registered",
		zap.String("type", typ.Name), zap.Int("binding", b.ID), zap.Int("priority", priority))

	return b.ID, nil
}

// Remove deletes the binding with the given id.
func (r *Registry[V]) Remove(id int) error {
	i := slices.IndexFunc(r.bindings, func(b *Binding[V]) bool { return b.ID == id })
	if i < 0 {
		return fmt.Errorf("remove binding %d: %w", id, ErrBindingNotFound)
	}
	r.bindings = slices.Delete(r.bindings, i, i+1)

	return nil
}

// Get returns a copy of the binding with the given id.
func (r *Registry[V]) Get(id int) (Binding[V], bool) {
	for _, b := range r.bindings {
		if b.ID == id {
			return *b, true
		}
	}

	return Binding[V]{}, false
}

// Bindings returns copies of all bindings in registration order.
func (r *Registry[V]) Bindings() []Binding[V] {
	out := make([]Binding[V], len(r.bindings))
	for i, b := range r.bindings {
		out[i] = *b
	}

	return out
}

// Len returns the number of bindings.
func (r *Registry[V]) Len() int { return len(r.bindings) }

// Merge registers every binding of other into r under fresh ids.
func (r *Registry[V]) Merge(other *Registry[V]) error {
	for _, b := range other.bindings {
		if _, err := r.Register(b.Rule, b.Type, b.Priority); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns an independent registry with the same bindings, ids and counter.
func (r *Registry[V]) Clone() *Registry[V] {
	out := &Registry[V]{nextID: r.nextID, logger: r.logger, bindings: make([]*Binding[V], len(r.bindings))}
	for i, b := range r.bindings {
		cp := *b
		out.bindings[i] = &cp
	}

	return out
}

// Resolve returns the capability types whose rules match the single record
// given, ordered by priority. Any other number of records yields nil.
func (r *Registry[V]) Resolve(recs ...*store.Record) []*Type[V] {
	if len(recs) != 1 || recs[0] == nil {
		return nil
	}

	var matched []*Binding[V]
	for _, b := range r.bindings {
		if b.Rule.Match(recs[0]) {
			matched = append(matched, b)
		}
	}
	slices.SortStableFunc(matched, func(a, b *Binding[V]) int { return cmp.Compare(a.Priority, b.Priority) })

	out := make([]*Type[V], len(matched))
	for i, b := range matched {
		out[i] = b.Type
	}

	return out
}
