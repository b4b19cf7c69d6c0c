// File: duplicate.go
// Role: Copy engine for Store: new backing, deep-copied records, remapped references.
// Determinism:
//   - The copy keeps the source iteration order.
// AI-HINT (file):
//   - References whose canonical key is copied stay references in the copy.
//   - References whose canonical key is left out are materialised; when several
//     of them shared one absent canonical, the first becomes canonical for the rest.

package store

// Duplicate returns an independent deep copy of s.
//
// expand=false copies only visible entries and returns an unmasked Store.
// expand=true copies the whole backing and re-applies the mask.
//
// Complexity: O(n) over the copied keys.
func (s *Store[K]) Duplicate(expand bool) *Store[K] {
	src := s
	if expand {
		src = s.Full()
	}
	keys := src.KeyList()
	selected := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		selected[k] = struct{}{}
	}

	nb := newBacking[K]()
	nb.order = append(nb.order, keys...)

	// Records first so references can point at them.
	for _, k := range keys {
		sl := s.b.slots[k]
		if !sl.isRef {
			nb.slots[k] = &slot[K]{rec: sl.rec.Clone()}
		}
	}

	heirs := make(map[K]K) // absent canonical -> materialised stand-in
	for _, k := range keys {
		sl := s.b.slots[k]
		if !sl.isRef {
			continue
		}
		target := sl.ref
		if _, ok := selected[target]; !ok {
			heir, seen := heirs[target]
			if !seen {
				heirs[target] = k
				nb.slots[k] = &slot[K]{rec: s.b.slots[target].rec.Clone()}
				continue
			}
			target = heir
		}
		nb.slots[k] = &slot[K]{ref: target, isRef: true}
		nb.referrers[target] = append(nb.referrers[target], k)
	}

	out := &Store[K]{b: nb}
	if expand && s.mask != nil {
		out.mask = s.mask.clone()
	}

	return out
}

// Copy is Duplicate(true): deep data copy keeping the same mask.
func (s *Store[K]) Copy() *Store[K] {
	return s.Duplicate(true)
}
