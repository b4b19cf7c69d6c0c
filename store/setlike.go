// SPDX-License-Identifier: MIT
// File: setlike.go
// Role: Set algebra over the visible key sets of two Stores.
// Determinism:
//   - Results list receiver keys first (receiver order), then other's keys (other order).

package store

// keyIndex collects the visible keys of s into a lookup set.
func (s *Store[K]) keyIndex() map[K]struct{} {
	out := make(map[K]struct{}, s.Len())
	for k := range s.Keys() {
		out[k] = struct{}{}
	}

	return out
}

// Union returns keys visible in s or other.
func (s *Store[K]) Union(other *Store[K]) []K {
	seen := s.keyIndex()
	out := s.KeyList()
	for k := range other.Keys() {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}

	return out
}

// Intersection returns keys visible in both s and other.
func (s *Store[K]) Intersection(other *Store[K]) []K {
	var out []K
	for k := range s.Keys() {
		if other.Has(k) {
			out = append(out, k)
		}
	}

	return out
}

// Difference returns keys visible in s but not in other.
func (s *Store[K]) Difference(other *Store[K]) []K {
	var out []K
	for k := range s.Keys() {
		if !other.Has(k) {
			out = append(out, k)
		}
	}

	return out
}

// SymmetricDifference returns keys visible in exactly one of s and other.
func (s *Store[K]) SymmetricDifference(other *Store[K]) []K {
	return append(s.Difference(other), other.Difference(s)...)
}

// IsSubset reports whether every key of s is visible in other.
func (s *Store[K]) IsSubset(other *Store[K]) bool {
	for k := range s.Keys() {
		if !other.Has(k) {
			return false
		}
	}

	return true
}

// IsSuperset reports whether every key of other is visible in s.
func (s *Store[K]) IsSuperset(other *Store[K]) bool {
	return other.IsSubset(s)
}

// IsProperSubset is IsSubset with strictly fewer keys.
func (s *Store[K]) IsProperSubset(other *Store[K]) bool {
	return s.Len() < other.Len() && s.IsSubset(other)
}

// IsProperSuperset is IsSuperset with strictly more keys.
func (s *Store[K]) IsProperSuperset(other *Store[K]) bool {
	return other.IsProperSubset(s)
}

// IsDisjoint reports whether s and other share no visible key.
func (s *Store[K]) IsDisjoint(other *Store[K]) bool {
	for k := range s.Keys() {
		if other.Has(k) {
			return false
		}
	}

	return true
}

// EqualKeys reports whether s and other expose the same key set.
func (s *Store[K]) EqualKeys(other *Store[K]) bool {
	return s.Len() == other.Len() && s.IsSubset(other)
}
