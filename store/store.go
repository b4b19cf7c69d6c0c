// File: store.go
// Role: Key→Record storage with masked views, shared backings and reference markers.
// Determinism:
//   - Unmasked iteration follows backing insertion order.
//   - Masked iteration follows the order the mask was built in.
// AI-HINT (file):
//   - Several Store values may share one backing ("alias"); writes through any
//     of them are visible to all.
//   - A reference slot holds no data: Get/Set resolve it to its canonical key.
//   - Removing a canonical key migrates its record to the first referrer.

package store

import (
	"fmt"
	"iter"
	"slices"
)

// slot is one backing entry: either a record or a reference to a canonical key.
type slot[K comparable] struct {
	rec   *Record
	ref   K
	isRef bool
}

// backing is the arena shared by every Store aliasing it.
type backing[K comparable] struct {
	order     []K
	slots     map[K]*slot[K]
	referrers map[K][]K // canonical key -> keys referencing it, in link order
}

func newBacking[K comparable]() *backing[K] {
	return &backing[K]{
		slots:     make(map[K]*slot[K]),
		referrers: make(map[K][]K),
	}
}

// keySet is an ordered set of keys used as a view mask.
type keySet[K comparable] struct {
	order []K
	has   map[K]struct{}
}

func newKeySet[K comparable](capacity int) *keySet[K] {
	return &keySet[K]{order: make([]K, 0, capacity), has: make(map[K]struct{}, capacity)}
}

func (s *keySet[K]) add(k K) {
	if _, ok := s.has[k]; ok {
		return
	}
	s.has[k] = struct{}{}
	s.order = append(s.order, k)
}

func (s *keySet[K]) remove(k K) {
	if _, ok := s.has[k]; !ok {
		return
	}
	delete(s.has, k)
	if i := slices.Index(s.order, k); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

func (s *keySet[K]) clone() *keySet[K] {
	out := newKeySet[K](len(s.order))
	for _, k := range s.order {
		out.add(k)
	}

	return out
}

// Store maps keys to attribute records. A Store is a handle: it points at a
// backing (possibly shared with other Stores) and an optional mask of visible keys.
type Store[K comparable] struct {
	b    *backing[K]
	mask *keySet[K]
}

// New returns an empty, unmasked Store with its own backing.
func New[K comparable]() *Store[K] {
	return &Store[K]{b: newBacking[K]()}
}

// visible reports whether k exists in the backing and passes the mask.
func (s *Store[K]) visible(k K) bool {
	if _, ok := s.b.slots[k]; !ok {
		return false
	}
	if s.mask == nil {
		return true
	}
	_, ok := s.mask.has[k]

	return ok
}

// canonical follows a reference slot to the slot holding data.
func (s *Store[K]) canonical(k K) (K, *slot[K]) {
	sl := s.b.slots[k]
	if sl != nil && sl.isRef {
		return sl.ref, s.b.slots[sl.ref]
	}

	return k, sl
}

// Get returns the record for k, resolving references. Absent or masked-out
// keys yield (nil, false).
func (s *Store[K]) Get(k K) (*Record, bool) {
	if !s.visible(k) {
		return nil, false
	}
	_, sl := s.canonical(k)
	if sl == nil {
		return nil, false
	}

	return sl.rec, true
}

// Has reports whether k is visible through this Store.
func (s *Store[K]) Has(k K) bool {
	return s.visible(k)
}

// Set stores rec under k. When k holds a reference marker the record is
// written to the canonical key instead. A nil rec stores an empty record.
// On a masked Store, k is added to the mask.
func (s *Store[K]) Set(k K, rec *Record) {
	if rec == nil {
		rec = NewRecord()
	}
	if sl, ok := s.b.slots[k]; ok {
		_, canon := s.canonical(k)
		if sl.isRef && canon != nil {
			canon.rec = rec
		} else {
			sl.rec = rec
		}
	} else {
		s.b.slots[k] = &slot[K]{rec: rec}
		s.b.order = append(s.b.order, k)
	}
	if s.mask != nil {
		s.mask.add(k)
	}
}

// SetReference turns k into a reference to target's record. target must exist
// in the backing; if target is itself a reference, k links to its canonical key.
// An existing record under k is discarded.
func (s *Store[K]) SetReference(k, target K) error {
	if _, ok := s.b.slots[target]; !ok {
		return fmt.Errorf("reference %v -> %v: target absent: %w", k, target, ErrInvalidReference)
	}
	canon, _ := s.canonical(target)
	if canon == k {
		return fmt.Errorf("reference %v -> %v: circular: %w", k, target, ErrInvalidReference)
	}
	if len(s.b.referrers[k]) > 0 {
		return fmt.Errorf("reference %v -> %v: key is canonical for %d referrer(s): %w",
			k, target, len(s.b.referrers[k]), ErrInvalidReference)
	}

	sl, ok := s.b.slots[k]
	if !ok {
		sl = &slot[K]{}
		s.b.slots[k] = sl
		s.b.order = append(s.b.order, k)
	} else if sl.isRef {
		s.b.unregister(sl.ref, k)
	}
	sl.rec, sl.ref, sl.isRef = nil, canon, true
	s.b.referrers[canon] = append(s.b.referrers[canon], k)
	if s.mask != nil {
		s.mask.add(k)
	}

	return nil
}

// IsReference reports whether k exists in the backing as a reference marker.
func (s *Store[K]) IsReference(k K) bool {
	sl, ok := s.b.slots[k]

	return ok && sl.isRef
}

// ReferenceOf returns the canonical key k refers to.
func (s *Store[K]) ReferenceOf(k K) (K, bool) {
	sl, ok := s.b.slots[k]
	if !ok || !sl.isRef {
		var zero K
		return zero, false
	}

	return sl.ref, true
}

// Referrers returns the keys that reference canonical key k.
func (s *Store[K]) Referrers(k K) []K {
	return slices.Clone(s.b.referrers[k])
}

// Unlink severs record sharing for k. A reference key receives its own deep
// copy of the canonical record; a canonical key hands a copy to every referrer.
func (s *Store[K]) Unlink(k K) error {
	sl, ok := s.b.slots[k]
	if !ok {
		return fmt.Errorf("unlink %v: %w", k, ErrKeyNotFound)
	}
	if sl.isRef {
		canon := s.b.slots[sl.ref]
		s.b.unregister(sl.ref, k)
		sl.rec, sl.isRef = canon.rec.Clone(), false
		var zero K
		sl.ref = zero

		return nil
	}
	for _, r := range s.b.referrers[k] {
		rs := s.b.slots[r]
		var zero K
		rs.rec, rs.ref, rs.isRef = sl.rec.Clone(), zero, false
	}
	delete(s.b.referrers, k)

	return nil
}

// Remove deletes k. Absent or masked-out keys return ErrKeyNotFound.
// If k is canonical for other keys its record migrates to the first referrer,
// which becomes canonical for the remaining ones.
func (s *Store[K]) Remove(k K) error {
	if !s.visible(k) {
		return fmt.Errorf("remove %v: %w", k, ErrKeyNotFound)
	}
	sl := s.b.slots[k]
	if sl.isRef {
		s.b.unregister(sl.ref, k)
	} else if refs := s.b.referrers[k]; len(refs) > 0 {
		heir := s.b.slots[refs[0]]
		var zero K
		heir.rec, heir.ref, heir.isRef = sl.rec, zero, false
		rest := slices.Clone(refs[1:])
		for _, r := range rest {
			s.b.slots[r].ref = refs[0]
		}
		if len(rest) > 0 {
			s.b.referrers[refs[0]] = rest
		}
		delete(s.b.referrers, k)
	}

	delete(s.b.slots, k)
	if i := slices.Index(s.b.order, k); i >= 0 {
		s.b.order = slices.Delete(s.b.order, i, i+1)
	}
	if s.mask != nil {
		s.mask.remove(k)
	}

	return nil
}

func (b *backing[K]) unregister(canon, ref K) {
	refs := b.referrers[canon]
	if i := slices.Index(refs, ref); i >= 0 {
		refs = slices.Delete(refs, i, i+1)
	}
	if len(refs) == 0 {
		delete(b.referrers, canon)
		return
	}
	b.referrers[canon] = refs
}

// keyOrder returns a snapshot of the candidate keys to iterate.
func (s *Store[K]) keyOrder() []K {
	if s.mask != nil {
		return slices.Clone(s.mask.order)
	}

	return slices.Clone(s.b.order)
}

// Keys iterates visible keys. Each call restarts from the beginning and
// observes the store as it is at that moment.
func (s *Store[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.keyOrder() {
			if !s.visible(k) {
				continue
			}
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates records of visible keys, references resolved.
func (s *Store[K]) Values() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, rec := range s.Items() {
			if !yield(rec) {
				return
			}
		}
	}
}

// Items iterates visible (key, record) pairs, references resolved.
func (s *Store[K]) Items() iter.Seq2[K, *Record] {
	return func(yield func(K, *Record) bool) {
		for _, k := range s.keyOrder() {
			rec, ok := s.Get(k)
			if !ok {
				continue
			}
			if !yield(k, rec) {
				return
			}
		}
	}
}

// KeyList collects Keys into a slice.
func (s *Store[K]) KeyList() []K {
	return slices.Collect(s.Keys())
}

// Len returns the number of visible keys.
func (s *Store[K]) Len() int {
	if s.mask == nil {
		return len(s.b.slots)
	}
	n := 0
	for _, k := range s.mask.order {
		if _, ok := s.b.slots[k]; ok {
			n++
		}
	}

	return n
}

// SetView narrows the visible keys to keys ∩ backing. Duplicates are ignored.
func (s *Store[K]) SetView(keys []K) {
	m := newKeySet[K](len(keys))
	for _, k := range keys {
		if _, ok := s.b.slots[k]; ok {
			m.add(k)
		}
	}
	s.mask = m
}

// ResetView removes the mask.
func (s *Store[K]) ResetView() { s.mask = nil }

// IsView reports whether a mask is active.
func (s *Store[K]) IsView() bool { return s.mask != nil }

// View returns the active mask (nil when unmasked).
func (s *Store[K]) View() []K {
	if s.mask == nil {
		return nil
	}

	return slices.Clone(s.mask.order)
}

// ToMap returns key→record for visible keys, or for the full backing when
// expandMasked is set. Both keys of a reference pair map to the same *Record.
func (s *Store[K]) ToMap(expandMasked bool) map[K]*Record {
	src := s
	if expandMasked {
		src = s.Full()
	}
	out := make(map[K]*Record, src.Len())
	for k, rec := range src.Items() {
		out[k] = rec
	}

	return out
}

// Full returns an unmasked Store sharing this backing.
func (s *Store[K]) Full() *Store[K] {
	return &Store[K]{b: s.b}
}

// Shallow returns a Store sharing this backing with a copy of the mask.
func (s *Store[K]) Shallow() *Store[K] {
	out := &Store[K]{b: s.b}
	if s.mask != nil {
		out.mask = s.mask.clone()
	}

	return out
}

// WithView returns a Store sharing this backing masked to keys.
func (s *Store[K]) WithView(keys []K) *Store[K] {
	out := &Store[K]{b: s.b}
	out.SetView(keys)

	return out
}

// SameStorage reports whether s and other share one backing.
func (s *Store[K]) SameStorage(other *Store[K]) bool {
	return other != nil && s.b == other.b
}

// Query returns the visible keys whose record satisfies pred.
func (s *Store[K]) Query(pred func(K, *Record) bool) []K {
	var out []K
	for k, rec := range s.Items() {
		if pred(k, rec) {
			out = append(out, k)
		}
	}

	return out
}
