// Package sparse provides the sparse Boolean matrix and vector primitives
// the ontology graph engine is built on.
//
// What
//
//   - Vector: a sparse Boolean vector of fixed length n, stored as a set of
//     indices. OneHot seeds a traversal at a single term's index.
//   - Bool: an r×c sparse Boolean matrix stored as per-row and per-column
//     index lists (a CSR/CSC substitute), built once from coordinate arrays
//     with explicit dimensions and immutable afterwards.
//   - MulVec / TMulVec: matrix–vector products over the Boolean semiring
//     (OR-of-ANDs). One product advances a breadth-first frontier by exactly
//     one layer.
//   - ZeroRows: a single reduction over row degrees, used for root detection.
//
// Why
//
//	Traversal cost over an adjacency matrix becomes a small, fixed number of
//	sparse products per BFS layer, with no recursion and no per-node object
//	walks, which keeps queries cheap on ontologies with tens of thousands of
//	terms.
//
// Determinism
//
//	Support() and ZeroRows() return indices sorted ascending, so every
//	traversal built on them is reproducible run to run.
//
// Complexity (nnz = number of set entries)
//
//   - Construction: O(nnz log nnz) for per-list sorting.
//   - MulVec/TMulVec: O(Σ degree of touched columns/rows).
//   - Memory: O(nnz) beyond the two dimension-sized list headers.
//
// Errors
//
//   - ErrBadShape          negative dimensions requested.
//   - ErrCoordLenMismatch  rows/cols coordinate arrays of different length.
//   - ErrOutOfRange        a coordinate or index outside [0, dim).
//   - ErrDimensionMismatch vector length incompatible with the matrix.
package sparse
