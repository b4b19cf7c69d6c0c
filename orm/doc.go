// Package orm resolves which capability types a singleton graph view exposes.
//
// A Registry stores bindings of a Rule (a predicate over an attribute record)
// to a capability Type with a priority. Resolve evaluates the rules against a
// single record and returns the matching types ordered by priority; selections
// of zero or several records resolve to nothing. Compose then linearises caller
// supplied types, resolved types and the base tool types into one
// duplicate-free order.
//
// Capabilities are explicit objects implementing Capability; there is no
// runtime type synthesis.
package orm
