package query

import (
	"fmt"
	"sort"

	"github.com/bioqueries/ontograph/graph"
	"github.com/bioqueries/ontograph/obo"
)

// ObjectEngine answers the same contract as MatrixEngine by walking the
// parsed term objects directly through the document's parent/child
// accessors. No index space, no matrices; everything is keyed by term id.
// Results match MatrixEngine exactly for the same document and options.
type ObjectEngine struct {
	ont             *obo.Ontology
	includeObsolete bool
}

var _ Engine = (*ObjectEngine)(nil)

// NewObjectEngine wraps a parsed document. It takes the same load-time
// options as graph.New so the two backends filter identically.
func NewObjectEngine(ont *obo.Ontology, opts ...graph.Option) (*ObjectEngine, error) {
	if ont == nil {
		return nil, ErrNilOntology
	}
	cfg := graph.DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &ObjectEngine{ont: ont, includeObsolete: cfg.IncludeObsolete}, nil
}

// included reports whether id names a term visible under the engine's
// obsolete filtering.
func (e *ObjectEngine) included(id string) bool {
	t := e.ont.TermByID(id)
	return t != nil && (!t.Obsolete || e.includeObsolete)
}

// resolve validates id against the visible term set.
func (e *ObjectEngine) resolve(id string) (*obo.Term, error) {
	if !e.included(id) {
		return nil, fmt.Errorf("%w: %q", graph.ErrUnknownTerm, id)
	}
	return e.ont.TermByID(id), nil
}

// parentsOf returns id's visible direct parents, deduplicated and sorted.
func (e *ObjectEngine) parentsOf(id string) []string {
	return e.filterNeighbours(e.ont.Parents(id))
}

// childrenOf returns the visible terms whose is_a points at id, sorted.
func (e *ObjectEngine) childrenOf(id string) []string {
	return e.filterNeighbours(e.ont.Children(id))
}

func (e *ObjectEngine) filterNeighbours(ids []string) []string {
	out := make([]string, 0, len(ids))
	var last string
	for _, id := range ids { // input already sorted, dedupe adjacents
		if id == last && len(out) > 0 {
			continue
		}
		if e.included(id) {
			out = append(out, id)
			last = id
		}
	}
	return out
}

func (e *ObjectEngine) neighbourhood(id string, up bool, opts []Option) ([]string, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, err := e.resolve(id); err != nil {
		return nil, err
	}
	var out []string
	if up {
		out = e.parentsOf(id)
	} else {
		out = e.childrenOf(id)
	}
	if cfg.IncludeSelf {
		out = append(out, id)
		sort.Strings(out)
	}
	return out, nil
}

// Parents returns the direct is_a targets of id.
func (e *ObjectEngine) Parents(id string, opts ...Option) ([]string, error) {
	return e.neighbourhood(id, true, opts)
}

// Children returns the terms whose is_a points at id.
func (e *ObjectEngine) Children(id string, opts ...Option) ([]string, error) {
	return e.neighbourhood(id, false, opts)
}

// expand runs layered BFS from id, up toward parents or down toward
// children, mapping each reached term to its first layer.
func (e *ObjectEngine) expand(id string, up bool, maxDepth int) map[string]int {
	neighbours := e.childrenOf
	if up {
		neighbours = e.parentsOf
	}
	dist := make(map[string]int)
	seen := map[string]bool{id: true}
	frontier := []string{id}
	for layer := 1; len(frontier) > 0 && (maxDepth == 0 || layer <= maxDepth); layer++ {
		var next []string
		for _, cur := range frontier {
			for _, nb := range neighbours(cur) {
				if seen[nb] {
					continue
				}
				seen[nb] = true
				dist[nb] = layer
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return dist
}

func (e *ObjectEngine) closure(id string, up bool, opts []Option) ([]string, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, err := e.resolve(id); err != nil {
		return nil, err
	}
	dist := e.expand(id, up, cfg.MaxDepth)
	out := make([]string, 0, len(dist)+1)
	for tid := range dist {
		out = append(out, tid)
	}
	if cfg.IncludeSelf {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// Ancestors returns the transitive is_a closure above id.
func (e *ObjectEngine) Ancestors(id string, opts ...Option) ([]string, error) {
	return e.closure(id, true, opts)
}

// Descendants returns the transitive is_a closure below id.
func (e *ObjectEngine) Descendants(id string, opts ...Option) ([]string, error) {
	return e.closure(id, false, opts)
}

func (e *ObjectEngine) distanceMap(id string, up bool, opts []Option) (map[string]int, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, err := e.resolve(id); err != nil {
		return nil, err
	}
	dist := e.expand(id, up, cfg.MaxDepth)
	if cfg.IncludeSelf {
		dist[id] = 0
	}
	return dist, nil
}

// AncestorsWithDistance maps each ancestor to its BFS layer above id.
func (e *ObjectEngine) AncestorsWithDistance(id string, opts ...Option) (map[string]int, error) {
	return e.distanceMap(id, true, opts)
}

// DescendantsWithDistance maps each descendant to its BFS layer below id.
func (e *ObjectEngine) DescendantsWithDistance(id string, opts ...Option) (map[string]int, error) {
	return e.distanceMap(id, false, opts)
}

// Siblings returns the terms sharing at least one direct parent with id.
func (e *ObjectEngine) Siblings(id string, opts ...Option) ([]string, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if _, err := e.resolve(id); err != nil {
		return nil, err
	}
	set := make(map[string]bool)
	for _, p := range e.parentsOf(id) {
		for _, c := range e.childrenOf(p) {
			set[c] = true
		}
	}
	if !cfg.IncludeSelf {
		delete(set, id)
	}
	out := make([]string, 0, len(set))
	for tid := range set {
		out = append(out, tid)
	}
	sort.Strings(out)
	return out, nil
}

// Roots returns every visible term with no visible parent, sorted.
func (e *ObjectEngine) Roots() ([]string, error) {
	var out []string
	for i := range e.ont.Terms {
		t := &e.ont.Terms[i]
		if !e.included(t.ID) {
			continue
		}
		if len(e.parentsOf(t.ID)) == 0 {
			out = append(out, t.ID)
		}
	}
	sort.Strings(out)
	return out, nil
}

// IsAncestor reports whether ancestor lies strictly above descendant.
func (e *ObjectEngine) IsAncestor(ancestor, descendant string) (bool, error) {
	if _, err := e.resolve(ancestor); err != nil {
		return false, err
	}
	if _, err := e.resolve(descendant); err != nil {
		return false, err
	}
	_, ok := e.expand(descendant, true, 0)[ancestor]
	return ok, nil
}

// IsDescendant reports whether descendant lies strictly below ancestor.
func (e *ObjectEngine) IsDescendant(descendant, ancestor string) (bool, error) {
	return e.IsAncestor(ancestor, descendant)
}

// IsSibling reports whether two distinct terms share a direct parent.
func (e *ObjectEngine) IsSibling(a, b string) (bool, error) {
	if _, err := e.resolve(a); err != nil {
		return false, err
	}
	if _, err := e.resolve(b); err != nil {
		return false, err
	}
	if a == b {
		return false, nil
	}
	pb := make(map[string]bool)
	for _, p := range e.parentsOf(b) {
		pb[p] = true
	}
	for _, p := range e.parentsOf(a) {
		if pb[p] {
			return true, nil
		}
	}
	return false, nil
}

// commonAncestry maps every shared strict ancestor to its maximum
// distance across all input ids.
func (e *ObjectEngine) commonAncestry(ids []string) (map[string]int, error) {
	var common map[string]int
	for _, id := range ids {
		if _, err := e.resolve(id); err != nil {
			return nil, err
		}
		dist := e.expand(id, true, 0)
		if common == nil {
			common = dist
			continue
		}
		for anc, max := range common {
			d, ok := dist[anc]
			if !ok {
				delete(common, anc)
				continue
			}
			if d > max {
				common[anc] = d
			}
		}
		if len(common) == 0 {
			break
		}
	}
	if common == nil {
		common = map[string]int{}
	}
	return common, nil
}

// CommonAncestors intersects the strict ancestor sets of all ids.
func (e *ObjectEngine) CommonAncestors(ids ...string) ([]string, error) {
	common, err := e.commonAncestry(ids)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(common))
	for tid := range common {
		out = append(out, tid)
	}
	sort.Strings(out)
	return out, nil
}

// LowestCommonAncestors keeps the common ancestors whose maximum distance
// to any input id is minimal.
func (e *ObjectEngine) LowestCommonAncestors(ids ...string) ([]string, error) {
	common, err := e.commonAncestry(ids)
	if err != nil {
		return nil, err
	}
	if len(common) == 0 {
		return nil, ErrEmptyAncestry
	}
	best := -1
	for _, max := range common {
		if best < 0 || max < best {
			best = max
		}
	}
	var out []string
	for tid, max := range common {
		if max == best {
			out = append(out, tid)
		}
	}
	sort.Strings(out)
	return out, nil
}

// DistanceFromRoot returns the longest ancestor chain above id.
func (e *ObjectEngine) DistanceFromRoot(id string) (int, error) {
	if _, err := e.resolve(id); err != nil {
		return 0, err
	}
	max := 0
	for _, d := range e.expand(id, true, 0) {
		if d > max {
			max = d
		}
	}
	return max, nil
}

// PathBetween returns a shortest hierarchy path between a and b, ordered
// ancestor-first regardless of argument order. Unrelated terms give an
// empty path.
func (e *ObjectEngine) PathBetween(a, b string) ([]string, error) {
	if _, err := e.resolve(a); err != nil {
		return nil, err
	}
	if _, err := e.resolve(b); err != nil {
		return nil, err
	}
	if a == b {
		return []string{a}, nil
	}

	start, target := a, b
	if _, ok := e.expand(b, true, 0)[a]; !ok {
		if _, ok := e.expand(a, true, 0)[b]; !ok {
			return []string{}, nil
		}
		start, target = b, a
	}

	prev := map[string]string{}
	seen := map[string]bool{start: true}
	frontier := []string{start}
	for len(frontier) > 0 {
		// Sorted frontier keeps the predecessor tie-break at the smallest
		// id, matching the matrix engine.
		sort.Strings(frontier)
		var next []string
		for _, cur := range frontier {
			for _, c := range e.childrenOf(cur) {
				if seen[c] {
					continue
				}
				seen[c] = true
				prev[c] = cur
				next = append(next, c)
			}
		}
		for _, c := range next {
			if c == target {
				return assembleIDPath(start, target, prev), nil
			}
		}
		frontier = next
	}
	return []string{}, nil
}

func assembleIDPath(start, target string, prev map[string]string) []string {
	path := []string{target}
	for at := target; at != start; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// TrajectoriesFromRoot enumerates every distinct root-to-id path by
// walking backward toward parents with an explicit stack, branching once
// per parent in sorted order.
func (e *ObjectEngine) TrajectoriesFromRoot(id string) ([]Trajectory, error) {
	if _, err := e.resolve(id); err != nil {
		return nil, err
	}

	var out []Trajectory
	stack := [][]string{{id}}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		head := path[len(path)-1]
		parents := e.parentsOf(head)
		fresh := parents[:0:0]
		for _, p := range parents {
			onPath := false
			for _, seen := range path {
				if p == seen {
					onPath = true
					break
				}
			}
			if !onPath {
				fresh = append(fresh, p)
			}
		}
		if len(fresh) == 0 {
			out = append(out, e.assembleTrajectory(path))
			continue
		}
		// Push in reverse so the smallest parent is expanded first.
		for i := len(fresh) - 1; i >= 0; i-- {
			branch := make([]string, len(path), len(path)+1)
			copy(branch, path)
			stack = append(stack, append(branch, fresh[i]))
		}
	}
	return out, nil
}

// assembleTrajectory turns a term-first id path into a root-first
// Trajectory with signed distances relative to the queried term.
func (e *ObjectEngine) assembleTrajectory(path []string) Trajectory {
	tr := make(Trajectory, len(path))
	for i, tid := range path {
		var label string
		if t := e.ont.TermByID(tid); t != nil {
			label = t.Name
		}
		tr[len(path)-1-i] = Step{ID: tid, Label: label, Distance: -i}
	}
	return tr
}
