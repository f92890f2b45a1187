package graph

import (
	"fmt"
	"sort"

	"github.com/bioqueries/ontograph/obo"
	"github.com/bioqueries/ontograph/sparse"
)

// Graph is the compiled, index-addressed form of one ontology: lookup
// tables plus one sparse Boolean adjacency matrix per relation type.
// Compiled once by New, immutable afterwards, safe for concurrent readers.
type Graph struct {
	lookup   *Lookup
	matrices map[string]*sparse.Bool
	relTypes []string // sorted keys of matrices
}

// New compiles ont into a Graph. Obsolete terms are filtered out before
// index assignment unless WithObsolete is given; edges whose target was
// filtered are skipped, edges whose target is missing from the document
// entirely fail with ErrDanglingEdge.
func New(ont *obo.Ontology, opts ...Option) (*Graph, error) {
	if ont == nil {
		return nil, ErrNilOntology
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	terms := make([]obo.Term, 0, len(ont.Terms))
	for i := range ont.Terms {
		if ont.Terms[i].Obsolete && !cfg.IncludeObsolete {
			continue
		}
		terms = append(terms, ont.Terms[i])
	}

	lut := NewLookup(terms)
	indexes, err := buildEdgeIndexes(ont, lut, cfg.IncludeObsolete)
	if err != nil {
		return nil, err
	}
	matrices, err := compileMatrices(indexes, lut.Len())
	if err != nil {
		return nil, err
	}

	relTypes := make([]string, 0, len(matrices))
	for rel := range matrices {
		relTypes = append(relTypes, rel)
	}
	sort.Strings(relTypes)

	return &Graph{lookup: lut, matrices: matrices, relTypes: relTypes}, nil
}

// Lookup returns the term-id/index tables.
func (g *Graph) Lookup() *Lookup { return g.lookup }

// Len returns N, the number of terms in the compiled graph.
func (g *Graph) Len() int { return g.lookup.Len() }

// Matrix returns the adjacency matrix for the given relation type.
func (g *Graph) Matrix(relation string) (*sparse.Bool, error) {
	m, ok := g.matrices[relation]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRelation, relation)
	}
	return m, nil
}

// IsA returns the is_a hierarchy matrix. Always present: every compiled
// graph carries an is_a matrix even when the document declares no edges.
func (g *Graph) IsA() *sparse.Bool {
	return g.matrices[obo.RelationIsA]
}

// RelationTypes returns the compiled relation types, sorted.
func (g *Graph) RelationTypes() []string {
	out := make([]string, len(g.relTypes))
	copy(out, g.relTypes)
	return out
}
