// Package store holds the attribute storage layer of lvgraph.
//
// A Record is an ordered string→value mapping. A Store[K] maps keys (node ids
// or edge ids) to Records and adds three mechanisms on top of a plain map:
//
//   - Shared backing. Full, Shallow and WithView return new Store handles over
//     the same backing; a write through one handle is visible through all.
//   - Masks. SetView restricts the keys a handle exposes. Getters, Len and the
//     Keys/Values/Items iterators honour the mask; Set on a masked handle adds
//     the key to the mask.
//   - Reference markers. SetReference makes one key resolve to another key's
//     record. Undirected edge pairs use this so (a,b) and (b,a) share a single
//     record until Unlink splits them.
//
// Duplicate is the copy engine: it allocates a fresh backing, deep-copies the
// records and rebuilds references inside the copy.
//
// The package is not safe for concurrent mutation; callers serialise writers.
package store
