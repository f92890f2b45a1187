package obo

import "sort"

// RelationIsA is the hierarchy relation. It is always present in
// RelationTypes even for an ontology that declares no edges at all.
const RelationIsA = "is_a"

// index is built lazily on first accessor call and cached; the parsed
// document is immutable so the index never goes stale.
type index struct {
	byID          map[string]*Term
	parents       map[string][]string // id → sorted direct is_a targets
	children      map[string][]string // id → sorted direct is_a sources
	relationTypes []string            // sorted, always contains is_a
}

func (o *Ontology) ensureIndex() *index {
	if o.idx != nil {
		return o.idx
	}
	idx := &index{
		byID:     make(map[string]*Term, len(o.Terms)),
		parents:  make(map[string][]string),
		children: make(map[string][]string),
	}
	typeSet := map[string]struct{}{RelationIsA: {}}
	for i := range o.Terms {
		t := &o.Terms[i]
		idx.byID[t.ID] = t
	}
	for i := range o.Terms {
		t := &o.Terms[i]
		for _, rel := range t.Relationships {
			typeSet[rel.Type] = struct{}{}
			if rel.Type != RelationIsA {
				continue
			}
			idx.parents[t.ID] = append(idx.parents[t.ID], rel.TargetID)
			idx.children[rel.TargetID] = append(idx.children[rel.TargetID], t.ID)
		}
	}
	for id := range idx.parents {
		sort.Strings(idx.parents[id])
	}
	for id := range idx.children {
		sort.Strings(idx.children[id])
	}
	for typ := range typeSet {
		idx.relationTypes = append(idx.relationTypes, typ)
	}
	sort.Strings(idx.relationTypes)
	o.idx = idx
	return idx
}

// TermByID returns the term with the given id, or nil when absent.
func (o *Ontology) TermByID(id string) *Term {
	return o.ensureIndex().byID[id]
}

// Parents returns the ids of the term's direct is_a targets, sorted.
// Unknown ids yield nil.
func (o *Ontology) Parents(id string) []string {
	return o.ensureIndex().parents[id]
}

// Children returns the ids of the terms whose is_a points at id, sorted.
func (o *Ontology) Children(id string) []string {
	return o.ensureIndex().children[id]
}

// RelationTypes returns every relation type seen across the document plus
// the guaranteed is_a entry, sorted.
func (o *Ontology) RelationTypes() []string {
	return o.ensureIndex().relationTypes
}

// Roots returns, sorted, the ids of non-obsolete terms with no is_a parent.
func (o *Ontology) Roots() []string {
	idx := o.ensureIndex()
	var roots []string
	for i := range o.Terms {
		t := &o.Terms[i]
		if t.Obsolete {
			continue
		}
		if len(idx.parents[t.ID]) == 0 {
			roots = append(roots, t.ID)
		}
	}
	sort.Strings(roots)
	return roots
}
