package graph

import (
	"fmt"
	"sort"

	"github.com/bioqueries/ontograph/obo"
)

// Lookup is the bidirectional mapping between term ids and dense indices in
// [0, N), plus id → label. Built once, never mutated; every index in
// [0, N) maps to exactly one id and vice versa.
type Lookup struct {
	indexOf map[string]int
	termOf  []string
	labelOf map[string]string
}

// NewLookup assigns indices over the given terms in sorted-by-id order so
// index assignment is deterministic across runs. The caller passes the
// already-filtered term list.
func NewLookup(terms []obo.Term) *Lookup {
	l := &Lookup{
		indexOf: make(map[string]int, len(terms)),
		termOf:  make([]string, 0, len(terms)),
		labelOf: make(map[string]string, len(terms)),
	}
	for i := range terms {
		l.termOf = append(l.termOf, terms[i].ID)
		l.labelOf[terms[i].ID] = terms[i].Name
	}
	sort.Strings(l.termOf)
	for i, id := range l.termOf {
		l.indexOf[id] = i
	}
	return l
}

// Len returns N, the number of terms in the tables.
func (l *Lookup) Len() int { return len(l.termOf) }

// IndexOf resolves a term id to its dense index.
func (l *Lookup) IndexOf(id string) (int, error) {
	i, ok := l.indexOf[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTerm, id)
	}
	return i, nil
}

// Has reports whether id is present in the tables.
func (l *Lookup) Has(id string) bool {
	_, ok := l.indexOf[id]
	return ok
}

// TermOf resolves a dense index back to its term id.
func (l *Lookup) TermOf(index int) (string, error) {
	if index < 0 || index >= len(l.termOf) {
		return "", fmt.Errorf("%w: index %d", ErrUnknownTerm, index)
	}
	return l.termOf[index], nil
}

// LabelOf returns the display label recorded for id.
func (l *Lookup) LabelOf(id string) (string, error) {
	label, ok := l.labelOf[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTerm, id)
	}
	return label, nil
}

// TermsOf translates a batch of indices to ids, preserving order.
func (l *Lookup) TermsOf(indices []int) ([]string, error) {
	out := make([]string, 0, len(indices))
	for _, idx := range indices {
		id, err := l.TermOf(idx)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
