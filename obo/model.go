package obo

// Relationship is one typed, directed edge from the owning term to TargetID.
// The is_a hierarchy is stored here too, as Type == "is_a".
type Relationship struct {
	Type     string
	TargetID string
	Name     string // optional trailing "! name" comment
}

// Synonym is a term synonym with its OBO scope (EXACT, BROAD, NARROW, RELATED).
type Synonym struct {
	Text  string
	Scope string
}

// Term is a single ontology term. Immutable once parsed.
type Term struct {
	ID            string
	Name          string
	Namespace     string
	Definition    string
	Obsolete      bool
	AltIDs        []string
	Synonyms      []Synonym
	Relationships []Relationship
}

// Typedef is an OBO relation-type declaration.
type Typedef struct {
	ID           string
	Name         string
	IsTransitive bool
}

// Ontology is a parsed OBO document: header metadata, terms in file order,
// and typedefs. Query accessors live on the lazily built index (index.go).
type Ontology struct {
	FormatVersion string
	DataVersion   string
	Name          string // header "ontology:" value
	Terms         []Term
	Typedefs      []Typedef

	idx *index
}
