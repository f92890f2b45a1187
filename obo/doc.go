// Package obo parses OBO-format ontology files and exposes the parsed
// terms through an indexed, read-only model.
//
// What
//
//   - ParseOBO / ParseFile: a line-oriented scanner over [Term] and
//     [Typedef] stanzas, collecting ids, names, namespaces, obsolete flags,
//     is_a edges and arbitrary typed relationships.
//   - Ontology: the parsed collection plus a lazily built index with
//     TermByID, Parents, Children, Roots and RelationTypes accessors.
//
// The graph engine consumes an Ontology exactly once, at construction time;
// the object-graph query backend keeps walking it directly.
//
// Determinism
//
//	Terms preserves file order; every index accessor (Parents, Children,
//	Roots, RelationTypes) returns ids sorted ascending.
package obo
