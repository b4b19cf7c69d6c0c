// File: compose.go
// Role: Linearisation of caller, resolved and base capability types.
// Determinism:
//   - Output order: caller extras, then resolved (priority order), then base.
//   - First occurrence of a name wins; Compose never fails.

package orm

// Compose merges capability types into one duplicate-free resolution order.
//
// Rules:
//   - extra types come first and take precedence over everything else;
//   - a resolved type conflicting with an extra type is dropped;
//   - between two conflicting resolved types the later one (higher priority
//     value) replaces the earlier;
//   - base types are appended last, skipping names already present and types
//     conflicting with a kept type.
func Compose[V any](extra, resolved, base []*Type[V]) []*Type[V] {
	var out []*Type[V]
	seen := make(map[string]struct{})
	has := func(t *Type[V]) bool {
		_, ok := seen[t.Name]
		return ok
	}

	for _, t := range extra {
		if t == nil || has(t) {
			continue
		}
		seen[t.Name] = struct{}{}
		out = append(out, t)
	}
	nExtra := len(out)

	for _, t := range resolved {
		if t == nil || has(t) {
			continue
		}
		if conflictsWithAny(t, out[:nExtra]) {
			continue
		}
		kept := out[:nExtra:nExtra]
		for _, prev := range out[nExtra:] {
			if conflicts(prev, t) {
				delete(seen, prev.Name)
				continue
			}
			kept = append(kept, prev)
		}
		out = append(kept, t)
		seen[t.Name] = struct{}{}
	}

	for _, t := range base {
		if t == nil || has(t) || conflictsWithAny(t, out) {
			continue
		}
		seen[t.Name] = struct{}{}
		out = append(out, t)
	}

	return out
}

func conflictsWithAny[V any](t *Type[V], set []*Type[V]) bool {
	for _, s := range set {
		if conflicts(t, s) {
			return true
		}
	}

	return false
}

// Names lists the names of types in order.
func Names[V any](types []*Type[V]) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Name
	}

	return out
}
