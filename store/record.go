// File: record.go
// Role: Ordered string-keyed attribute record shared by nodes and edges.
// Determinism:
//   - Keys() and All() iterate in insertion order; re-setting a key keeps its position.
//   - RecordOf sorts map keys so construction from a Go map is reproducible.
// AI-HINT (file):
//   - A *Record is the unit of aliasing: two edge keys referring to one record
//     observe each other's writes.
//   - Clone is deep for map[string]any, []any and *Record values and one level
//     deep for other slice and map kinds.

package store

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"sort"
	"strings"
)

// Record is an ordered mapping from attribute name to value.
// The zero value is not usable; construct with NewRecord or RecordOf.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// RecordOf builds a record from m. Keys are inserted in sorted order.
// A nil map yields an empty record.
func RecordOf(m map[string]any) *Record {
	r := &Record{values: make(map[string]any, len(m)), keys: make([]string, 0, len(m))}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		r.Set(k, m[k])
	}

	return r
}

// Get returns the value stored under key and whether it was present.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]

	return v, ok
}

// GetOr returns the value under key, or def when the key is absent.
func (r *Record) GetOr(key string, def any) any {
	if v, ok := r.Get(key); ok {
		return v
	}

	return def
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)

	return ok
}

// Set stores value under key, appending key to the order when new.
func (r *Record) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Delete removes key and reports whether it was present.
func (r *Record) Delete(key string) bool {
	if _, ok := r.values[key]; !ok {
		return false
	}
	delete(r.values, key)
	if i := slices.Index(r.keys, key); i >= 0 {
		r.keys = slices.Delete(r.keys, i, i+1)
	}

	return true
}

// Keys returns a copy of the attribute names in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}

	return slices.Clone(r.keys)
}

// Len returns the number of attributes.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}

	return len(r.keys)
}

// All iterates attributes in insertion order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if r == nil {
			return
		}
		for _, k := range slices.Clone(r.keys) {
			v, ok := r.values[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Update copies every attribute of other into r (other's order), overwriting
// existing values. Values are stored as-is, not cloned.
func (r *Record) Update(other *Record) {
	for k, v := range other.All() {
		r.Set(k, v)
	}
}

// UpdateMap copies m into r in sorted key order.
func (r *Record) UpdateMap(m map[string]any) {
	r.Update(RecordOf(m))
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{keys: slices.Clone(r.keys), values: make(map[string]any, len(r.values))}
	for k, v := range r.values {
		out.values[k] = cloneValue(v)
	}

	return out
}

// Equal reports whether r and other hold the same attribute names with deeply
// equal values. Attribute order is not compared.
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}
	for k, v := range r.All() {
		w, ok := other.Get(k)
		if !ok || !reflect.DeepEqual(v, w) {
			return false
		}
	}

	return true
}

// ToMap returns a shallow map copy of the attributes.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, r.Len())
	for k, v := range r.All() {
		out[k] = v
	}

	return out
}

// String renders the record as {k: v, ...} in insertion order.
func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range r.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%s: %v", k, v)
	}
	sb.WriteByte('}')

	return sb.String()
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case *Record:
		return t.Clone()
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[k] = cloneValue(x)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, x := range t {
			s[i] = cloneValue(x)
		}
		return s
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		it := rv.MapRange()
		for it.Next() {
			out.SetMapIndex(it.Key(), it.Value())
		}
		return out.Interface()
	}

	return v
}
