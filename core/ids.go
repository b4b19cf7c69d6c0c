// File: ids.go
// Role: Node and edge identifiers.
// Determinism:
//   - Every Go integer kind is normalised to int64 so 3, int32(3) and uint8(3)
//     address the same node.
// AI-HINT (file):
//   - NodeID values must be non-nil and usable as map keys.
//   - EdgeID is an ordered pair; an undirected edge is two EdgeIDs, one record.

package core

import (
	"fmt"
	"reflect"
)

// NodeID identifies a node: an int64 in auto-id mode, any hashable value otherwise.
type NodeID = any

// EdgeID is the ordered pair (From, To).
type EdgeID struct {
	From NodeID
	To   NodeID
}

// E builds an EdgeID with normalised endpoints.
func E(from, to NodeID) EdgeID {
	return EdgeID{From: normalize(from), To: normalize(to)}
}

// Reverse returns (To, From).
func (e EdgeID) Reverse() EdgeID { return EdgeID{From: e.To, To: e.From} }

// IsLoop reports whether both endpoints are the same node.
func (e EdgeID) IsLoop() bool { return e.From == e.To }

// String renders "(from, to)".
func (e EdgeID) String() string { return fmt.Sprintf("(%v, %v)", e.From, e.To) }

// normalize folds integer kinds onto int64; other values pass through.
func normalize(id any) any {
	switch v := id.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	}

	return id
}

// checkID normalises id and verifies it can serve as a map key.
func checkID(id any) (NodeID, error) {
	if id == nil {
		return nil, ErrNodeIDRequired
	}
	id = normalize(id)
	if !reflect.TypeOf(id).Comparable() || !hashable(id) {
		return nil, fmt.Errorf("id of type %T: %w", id, ErrUnhashableID)
	}

	return id, nil
}

// hashable catches comparable types that still panic as map keys
// (interfaces inside structs holding slices or maps).
func hashable(id any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_ = map[any]struct{}{id: {}}

	return true
}

func checkEdge(e EdgeID) (EdgeID, error) {
	from, err := checkID(e.From)
	if err != nil {
		return EdgeID{}, fmt.Errorf("edge %v: %w", e, err)
	}
	to, err := checkID(e.To)
	if err != nil {
		return EdgeID{}, fmt.Errorf("edge %v: %w", e, err)
	}

	return EdgeID{From: from, To: to}, nil
}

// asInt64 reports the integer value of a normalised id.
func asInt64(id NodeID) (int64, bool) {
	v, ok := id.(int64)

	return v, ok
}
