// Package query answers structural questions over a loaded ontology:
// parents, children, ancestors, descendants, siblings, roots, common and
// lowest common ancestors, shortest paths, and root-to-term trajectories.
//
// # What
//
//   - Navigator, Relations, Introspection: the three operation groups, and
//     Engine, their union.
//   - MatrixEngine: traversals as repeated sparse matrix-vector products
//     over the compiled graph. Each BFS layer is one multiplication.
//   - ObjectEngine: the same contract answered by walking the parsed term
//     objects directly. Both engines return identical results; the choice
//     is made once at load time.
//   - Trajectory and FormatTrajectoriesTree: root-to-term paths and their
//     merged ASCII tree rendering.
//
// # Determinism
//
// Every result slice is sorted ascending by term id, trajectory branches
// expand in sorted parent order, and shortest-path tie-breaks pick the
// smallest candidate, so equal inputs give byte-equal outputs on either
// engine.
//
// # Errors
//
//   - graph.ErrUnknownTerm: any operation given an id absent from the
//     loaded set.
//   - ErrEmptyAncestry: LowestCommonAncestors on empty input or inputs
//     sharing no ancestor.
//   - ErrOptionViolation: a negative depth limit.
//
// # Complexity
//
// One sparse matrix-vector product per BFS layer on the matrix engine;
// frontier expansion is bounded by N layers, so a cyclic hierarchy
// terminates instead of spinning.
package query
