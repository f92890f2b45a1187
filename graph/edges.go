package graph

import (
	"fmt"

	"github.com/bioqueries/ontograph/obo"
)

// EdgeIndex holds one relation's edges as equal-length coordinate arrays in
// term-index space: (Rows[k], Cols[k]) is one directed edge.
//
// For is_a, Rows[k] is the child index and Cols[k] the parent index. For
// every other relation type, Rows[k] is the source and Cols[k] the target.
type EdgeIndex struct {
	Rows []int
	Cols []int
}

// buildEdgeIndexes scans the parsed terms once and produces the coordinate
// arrays for every relation type the document declares (is_a always
// included, possibly empty).
//
// Determinism: sources are visited in lookup index order (sorted id order)
// and each term's relationships in declaration order, so the arrays are
// stable across runs for fixed input.
//
// Targets excluded by obsolete filtering are skipped; targets missing from
// the document entirely fail with ErrDanglingEdge.
func buildEdgeIndexes(ont *obo.Ontology, lut *Lookup, includeObsolete bool) (map[string]*EdgeIndex, error) {
	indexes := make(map[string]*EdgeIndex, len(ont.RelationTypes()))
	for _, rel := range ont.RelationTypes() {
		indexes[rel] = &EdgeIndex{}
	}

	for i := 0; i < lut.Len(); i++ {
		id, err := lut.TermOf(i)
		if err != nil {
			return nil, err
		}
		term := ont.TermByID(id)
		if term == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTerm, id)
		}
		for _, rel := range term.Relationships {
			tgt, err := resolveTarget(ont, lut, includeObsolete, rel.TargetID)
			if err != nil {
				return nil, fmt.Errorf("%s --[%s]--> %s: %w", id, rel.Type, rel.TargetID, err)
			}
			if tgt < 0 {
				continue // target filtered out
			}
			edge := indexes[rel.Type]
			edge.Rows = append(edge.Rows, i)
			edge.Cols = append(edge.Cols, tgt)
		}
	}
	return indexes, nil
}

// resolveTarget maps a relationship target id to its dense index. A target
// that exists in the document but is excluded by obsolete filtering
// resolves to -1 (skip); a target absent from the document is a dangling
// edge.
func resolveTarget(ont *obo.Ontology, lut *Lookup, includeObsolete bool, target string) (int, error) {
	if idx, err := lut.IndexOf(target); err == nil {
		return idx, nil
	}
	t := ont.TermByID(target)
	if t == nil {
		return 0, ErrDanglingEdge
	}
	if t.Obsolete && !includeObsolete {
		return -1, nil
	}
	// Present, not filtered, yet absent from the lookup: construction bug.
	return 0, fmt.Errorf("%w: %q missing from lookup", ErrUnknownTerm, target)
}
