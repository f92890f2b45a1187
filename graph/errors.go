package graph

import "errors"

var (
	// ErrNilOntology is returned when New is given a nil parsed document.
	ErrNilOntology = errors.New("graph: ontology is nil")

	// ErrUnknownTerm is returned by lookup operations given a term id or
	// index absent from the tables.
	ErrUnknownTerm = errors.New("graph: unknown term")

	// ErrDanglingEdge is returned at construction time when a relationship
	// references an id that does not exist in the parsed document at all.
	// Such an edge is a data invariant violation and fails fast rather than
	// being silently dropped.
	ErrDanglingEdge = errors.New("graph: edge references unknown term")

	// ErrUnknownRelation is returned when a matrix is requested for a
	// relation type the ontology never declared.
	ErrUnknownRelation = errors.New("graph: unknown relation type")
)
