// Package graph compiles a parsed ontology into the index-addressed
// structures the matrix query engine runs on.
//
// What
//
//   - Lookup: bidirectional term-id to dense-index tables plus id to label,
//     assigned in sorted-by-id order over the filtered term list.
//   - EdgeIndex: per relation type, coordinate arrays (Rows, Cols) holding
//     every directed edge in term-index space.
//   - Graph: the aggregate. Lookup tables plus one sparse Boolean N×N
//     adjacency matrix per relation type, compiled once by New and
//     immutable afterwards.
//
// Conventions
//
//	The is_a matrix stores M[child][parent] = true: multiplying by a one-hot
//	vector at a parent yields its children; multiplying the transpose yields
//	a child's parents. Other relation types store (source, target) edges;
//	they are compiled for completeness but only is_a drives traversal.
//
// Obsolete terms are excluded from the lookup tables, and therefore from
// every matrix, unless WithObsolete is given. Edges pointing at excluded
// terms are skipped; edges pointing at ids missing from the parsed document
// entirely fail construction with ErrDanglingEdge.
//
// After New returns, a Graph is read-only and safe for concurrent readers.
package graph
