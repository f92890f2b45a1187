// Package loader ties the collaborators together: registry lookup, cached
// download, OBO parsing, graph compilation and engine selection.
//
// A Loader is configured once with functional options, most importantly
// WithBackend: the matrix backend compiles the sparse adjacency matrices
// and queries them, the object backend walks the parsed terms directly.
// The choice is fixed for the lifetime of each Loaded ontology.
//
// Load paths: LoadFromFile for a local file, LoadFromURL through the
// download cache, LoadFromCatalog resolving an OBO Foundry id and format
// through the registry first.
package loader
