package registry

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultURL is the live OBO Foundry registry.
const DefaultURL = "https://obofoundry.org/registry/ontologies.yml"

var (
	// ErrOntologyNotFound is returned for ids absent from the catalog.
	ErrOntologyNotFound = errors.New("registry: ontology not found")

	// ErrFormatNotFound is returned when an ontology carries no product in
	// the requested format.
	ErrFormatNotFound = errors.New("registry: format not available")
)

// Product is one downloadable artifact of an ontology. Its ID follows the
// Foundry "<ontology>.<format>" scheme.
type Product struct {
	ID  string `yaml:"id"`
	URL string `yaml:"ontology_purl"`
}

// Ontology is one catalog entry.
type Ontology struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Homepage    string    `yaml:"homepage"`
	License     string    `yaml:"-"`
	Obsolete    bool      `yaml:"is_obsolete"`
	Products    []Product `yaml:"products"`
}

// UnmarshalYAML flattens the Foundry's nested license block into its label.
func (o *Ontology) UnmarshalYAML(value *yaml.Node) error {
	type plain Ontology
	var raw struct {
		plain   `yaml:",inline"`
		License struct {
			Label string `yaml:"label"`
		} `yaml:"license"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*o = Ontology(raw.plain)
	o.License = raw.License.Label
	return nil
}

// Catalog is a parsed registry, indexed by ontology id.
type Catalog struct {
	Ontologies []Ontology `yaml:"ontologies"`

	byID map[string]*Ontology
}

// Parse decodes a registry document.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("registry: decode catalog: %w", err)
	}
	c.index()
	return &c, nil
}

// Load reads a registry document from disk.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("registry: open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func (c *Catalog) index() {
	c.byID = make(map[string]*Ontology, len(c.Ontologies))
	for i := range c.Ontologies {
		c.byID[c.Ontologies[i].ID] = &c.Ontologies[i]
	}
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.Ontologies) }

// IDs returns every ontology id in the catalog, sorted.
func (c *Catalog) IDs() []string {
	out := make([]string, 0, len(c.Ontologies))
	for i := range c.Ontologies {
		out = append(out, c.Ontologies[i].ID)
	}
	sort.Strings(out)
	return out
}

// Metadata returns the catalog entry for id.
func (c *Catalog) Metadata(id string) (*Ontology, error) {
	o, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOntologyNotFound, id)
	}
	return o, nil
}

// DownloadURL resolves the product "<id>.<format>" to its URL.
func (c *Catalog) DownloadURL(id, format string) (string, error) {
	o, err := c.Metadata(id)
	if err != nil {
		return "", err
	}
	want := id + "." + format
	for _, p := range o.Products {
		if p.ID == want {
			return p.URL, nil
		}
	}
	return "", fmt.Errorf("%w: %q has no product %q", ErrFormatNotFound, id, want)
}

// Formats returns the formats id is published in, sorted, derived from the
// "<id>.<format>" product naming scheme.
func (c *Catalog) Formats(id string) ([]string, error) {
	o, err := c.Metadata(id)
	if err != nil {
		return nil, err
	}
	prefix := id + "."
	var out []string
	for _, p := range o.Products {
		if strings.HasPrefix(p.ID, prefix) {
			out = append(out, strings.TrimPrefix(p.ID, prefix))
		}
	}
	sort.Strings(out)
	return out, nil
}
