// Package core provides Graph: an in-memory graph whose nodes and edges carry
// ordered attribute records, and whose sub-graphs are cheap aliasing views.
//
// Storage model:
//
//   - An origin graph owns a node store and an edge store (package store).
//   - GetNodes, GetEdges, QueryNodes, QueryEdges and NodeRange return views:
//     new Graph values sharing the origin backing through masks. Writes through
//     a view reach the origin; ids added through a view are not added to the
//     view's own mask.
//   - An undirected edge (a,b) is stored once under (a,b); (b,a) is a
//     reference to that record, so attribute writes through either key are
//     seen through both until SplitEdge or ToDirected separates them.
//   - Copy(deep=false) aliases; Copy(deep=true) duplicates into a new origin.
//
// Identity:
//
//   - With WithAutoID(true) (default) nodes get int64 ids from a per-origin
//     counter that never decreases and is carried into deep copies.
//   - Otherwise callers supply any non-nil hashable id. Go integer kinds are
//     normalised to int64.
//
// Capabilities:
//
//	Singleton selections resolve capability types through the origin's ORM
//	mapper (package orm) and expose them via Capabilities, Capability and As.
//	NodeTools and EdgeTools give explicit Get/Set attribute access.
//	A selection made from a view also carries that view's types (not its
//	NodeTools/EdgeTools) while ORM().Inherit is on, which is the default.
//
// Options (GraphOption):
//
//	– WithAutoID(bool), WithDirected(bool)
//	– WithKeyField(name), WithValueField(name)   dict-like projections
//	– WithCreateMissingNodes()                   AddEdge inserts absent endpoints
//	– WithLogger(*zap.Logger)                    ConflictWarnings and debug traces
//	– WithORM(*orm.Mapper[*Graph]), WithRoot(id)
//
// Errors follow the sentinel pattern of errors.go and wrap the store.ErrNotFound
// and store.ErrValidation categories.
//
// Concurrency: none. A Graph and all views of its origin form one
// single-writer unit; callers serialise access.
package core
