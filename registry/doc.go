// Package registry reads the OBO Foundry registry catalog and resolves
// ontology ids to download URLs.
//
// The catalog is the Foundry's ontologies.yml: a list of ontology entries,
// each carrying metadata and a product list whose product ids follow the
// "<ontology>.<format>" naming scheme (go.obo, go.owl, ...). Lookup never
// touches the network; FetchCatalog pairs parsing with the download cache
// for callers that want the live registry.
//
// Errors: ErrOntologyNotFound for unknown ids, ErrFormatNotFound when an
// ontology has no product in the requested format.
package registry
