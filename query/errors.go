package query

import "errors"

var (
	// ErrEmptyAncestry is returned by LowestCommonAncestors when the input
	// set is empty or the inputs share no ancestor.
	ErrEmptyAncestry = errors.New("query: no common ancestor")

	// ErrOptionViolation is returned when an option carries an illegal
	// value, e.g. a negative depth limit.
	ErrOptionViolation = errors.New("query: option violation")

	// ErrNilGraph is returned by NewMatrixEngine on a nil graph.
	ErrNilGraph = errors.New("query: graph is nil")

	// ErrNilOntology is returned by NewObjectEngine on a nil document.
	ErrNilOntology = errors.New("query: ontology is nil")
)
