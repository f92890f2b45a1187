package obo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Large ontologies (ChEBI, GO) run to hundreds of thousands of terms and
// occasionally very long def lines.
const (
	initialTermCap = 1 << 14
	scannerBufSize = 1 << 20 // 1 MB
)

// internPool deduplicates repeated string values (relation types,
// namespaces) so a 180k-term parse does not hold 180k copies of "is_a".
type internPool struct {
	m map[string]string
}

func newInternPool() *internPool {
	return &internPool{m: make(map[string]string, 64)}
}

func (p *internPool) get(s string) string {
	if v, ok := p.m[s]; ok {
		return v
	}
	p.m[s] = s
	return s
}

// ParseFile parses the OBO document at path.
func ParseFile(path string) (*Ontology, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obo: open %s: %w", path, err)
	}
	defer f.Close()
	ont, err := ParseOBO(f)
	if err != nil {
		return nil, fmt.Errorf("obo: parse %s: %w", path, err)
	}
	return ont, nil
}

// ParseOBO parses an OBO-format ontology from r. Header lines before the
// first stanza populate the document metadata; [Term] and [Typedef] stanzas
// populate Terms and Typedefs. Unknown stanza types and unknown tags are
// skipped.
func ParseOBO(r io.Reader) (*Ontology, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scannerBufSize), scannerBufSize)

	ont := &Ontology{Terms: make([]Term, 0, initialTermCap)}
	pool := newInternPool()

	inHeader := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		switch {
		case line == "[Term]":
			inHeader = false
			ont.Terms = append(ont.Terms, parseTerm(scanner, pool))
		case line == "[Typedef]":
			inHeader = false
			ont.Typedefs = append(ont.Typedefs, parseTypedef(scanner, pool))
		case line[0] == '[':
			inHeader = false
			skipStanza(scanner)
		case inHeader:
			parseHeaderLine(ont, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("obo: scan: %w", err)
	}
	return ont, nil
}

func parseHeaderLine(ont *Ontology, line string) {
	key, val, ok := strings.Cut(line, ": ")
	if !ok {
		return
	}
	switch key {
	case "format-version":
		ont.FormatVersion = val
	case "data-version":
		ont.DataVersion = val
	case "ontology":
		ont.Name = val
	}
}

func parseTerm(scanner *bufio.Scanner, pool *internPool) Term {
	var t Term
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			break // end of stanza
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case "id":
			t.ID = val
		case "name":
			t.Name = val
		case "namespace":
			t.Namespace = pool.get(val)
		case "def":
			t.Definition = parseQuoted(val)
		case "alt_id":
			t.AltIDs = append(t.AltIDs, val)
		case "synonym":
			t.Synonyms = append(t.Synonyms, parseSynonym(val))
		case "is_a":
			t.Relationships = append(t.Relationships, parseIsA(val, pool))
		case "relationship":
			t.Relationships = append(t.Relationships, parseRelationship(val, pool))
		case "is_obsolete":
			t.Obsolete = val == "true"
		}
	}
	return t
}

func parseTypedef(scanner *bufio.Scanner, pool *internPool) Typedef {
	var td Typedef
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			break
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch key {
		case "id":
			td.ID = pool.get(val)
		case "name":
			td.Name = val
		case "is_transitive":
			td.IsTransitive = val == "true"
		}
	}
	return td
}

func skipStanza(scanner *bufio.Scanner) {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			return
		}
	}
}

// parseQuoted extracts the text between the first pair of double quotes,
// returning the input unchanged when no quotes are present.
func parseQuoted(s string) string {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return s
	}
	start++
	end := strings.IndexByte(s[start:], '"')
	if end < 0 {
		return s[start:]
	}
	return s[start : start+end]
}

// parseSynonym parses: "text" SCOPE [xrefs]
func parseSynonym(s string) Synonym {
	syn := Synonym{Text: parseQuoted(s)}
	closing := strings.IndexByte(s[1:], '"')
	if closing < 0 {
		return syn
	}
	rest := strings.TrimSpace(s[closing+2:])
	if fields := strings.Fields(rest); len(fields) > 0 && !strings.HasPrefix(fields[0], "[") {
		syn.Scope = fields[0]
	}
	return syn
}

// parseIsA parses: "GO:0008150 ! biological_process"
func parseIsA(val string, pool *internPool) Relationship {
	id, name, _ := strings.Cut(val, " ! ")
	return Relationship{
		Type:     pool.get(RelationIsA),
		TargetID: strings.TrimSpace(id),
		Name:     name,
	}
}

// parseRelationship parses: "part_of GO:0005575 ! cellular_component"
func parseRelationship(val string, pool *internPool) Relationship {
	var rel Relationship
	typ, rest, ok := strings.Cut(val, " ")
	rel.Type = pool.get(typ)
	if !ok {
		return rel
	}
	id, name, _ := strings.Cut(rest, " ! ")
	rel.TargetID = strings.TrimSpace(id)
	rel.Name = name
	return rel
}
