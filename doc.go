// Package ontograph loads biological ontologies and answers structural
// queries over them: parents, children, ancestors, descendants, siblings,
// roots, common and lowest-common ancestors, shortest paths, and
// root-to-term trajectories.
//
// The heart of the module is a sparse-matrix graph engine: the ontology is
// compiled into one sparse Boolean adjacency matrix per relation type, and
// every traversal is expressed as repeated matrix–vector products over a
// Boolean semiring instead of a recursive object-graph walk.
//
// Subpackages:
//
//	sparse/   — sparse Boolean matrix and vector primitives
//	obo/      — OBO-format ontology parser and term index
//	graph/    — lookup tables, edge indices and adjacency matrix compilation
//	query/    — Navigator / Relations / Introspection engines (matrix and object backends)
//	registry/ — OBO Foundry catalog: metadata and download-URL resolution
//	download/ — HTTP fetch with on-disk caching
//	loader/   — facade: load from file, URL or catalog and pick a backend
//
// Quick start:
//
//	l, _ := loader.New(loader.WithCacheDir("./cache"))
//	loaded, err := l.LoadFromFile("go.obo")
//	if err != nil { ... }
//	roots, _ := loaded.Engine.Roots()
//	anc, _ := loaded.Engine.Ancestors("GO:0008150")
//
// Construction happens once per loaded ontology; afterwards every structure
// is immutable and safe for concurrent readers.
package ontograph
