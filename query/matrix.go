package query

import (
	"sort"

	"github.com/bioqueries/ontograph/graph"
	"github.com/bioqueries/ontograph/sparse"
)

// MatrixEngine answers every operation with repeated sparse matrix-vector
// products over the compiled is_a matrix: one multiplication per BFS
// layer, never per term. Read-only over an immutable Graph, so safe for
// concurrent queries.
type MatrixEngine struct {
	g *graph.Graph
}

var _ Engine = (*MatrixEngine)(nil)

// NewMatrixEngine wraps a compiled graph.
func NewMatrixEngine(g *graph.Graph) (*MatrixEngine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	return &MatrixEngine{g: g}, nil
}

// Graph returns the compiled graph the engine runs on.
func (e *MatrixEngine) Graph() *graph.Graph { return e.g }

// step advances a frontier one layer: up multiplies by the transpose
// (toward parents), down by the matrix itself (toward children).
func (e *MatrixEngine) step(frontier *sparse.Vector, up bool) (*sparse.Vector, error) {
	if up {
		return e.g.IsA().TMulVec(frontier)
	}
	return e.g.IsA().MulVec(frontier)
}

// expand runs frontier BFS from start and maps every newly reached index
// to the 1-based layer at which it first appeared. Layers are capped at
// maxDepth when maxDepth > 0, and at N always, so a cyclic input
// terminates.
func (e *MatrixEngine) expand(start int, up bool, maxDepth int) (map[int]int, error) {
	n := e.g.Len()
	seen, err := sparse.OneHot(n, start)
	if err != nil {
		return nil, err
	}
	frontier := seen.Clone()
	limit := n
	if maxDepth > 0 && maxDepth < limit {
		limit = maxDepth
	}
	dist := make(map[int]int)
	for layer := 1; layer <= limit; layer++ {
		next, err := e.step(frontier, up)
		if err != nil {
			return nil, err
		}
		if err := next.Subtract(seen); err != nil {
			return nil, err
		}
		if next.NVals() == 0 {
			break
		}
		for _, idx := range next.Support() {
			dist[idx] = layer
		}
		if err := seen.Union(next); err != nil {
			return nil, err
		}
		frontier = next
	}
	return dist, nil
}

// direct returns the one-layer neighbourhood of id as a vector, up for
// parents, down for children.
func (e *MatrixEngine) direct(idx int, up bool) (*sparse.Vector, error) {
	hot, err := sparse.OneHot(e.g.Len(), idx)
	if err != nil {
		return nil, err
	}
	return e.step(hot, up)
}

// idsOf translates sorted indices to ids. Index order is sorted-id order,
// so the result comes back sorted without a second sort.
func (e *MatrixEngine) idsOf(indices []int) ([]string, error) {
	return e.g.Lookup().TermsOf(indices)
}

func (e *MatrixEngine) neighbourhood(id string, up bool, opts []Option) ([]string, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, err := e.g.Lookup().IndexOf(id)
	if err != nil {
		return nil, err
	}
	out, err := e.direct(idx, up)
	if err != nil {
		return nil, err
	}
	if cfg.IncludeSelf {
		if err := out.Add(idx); err != nil {
			return nil, err
		}
	}
	return e.idsOf(out.Support())
}

// Parents returns the direct is_a targets of id.
func (e *MatrixEngine) Parents(id string, opts ...Option) ([]string, error) {
	return e.neighbourhood(id, true, opts)
}

// Children returns the terms whose is_a points at id.
func (e *MatrixEngine) Children(id string, opts ...Option) ([]string, error) {
	return e.neighbourhood(id, false, opts)
}

func (e *MatrixEngine) closure(id string, up bool, opts []Option) ([]string, error) {
	dist, self, cfg, err := e.closureWithDistance(id, up, opts)
	if err != nil {
		return nil, err
	}
	indices := make([]int, 0, len(dist)+1)
	for idx := range dist {
		indices = append(indices, idx)
	}
	if cfg.IncludeSelf {
		indices = append(indices, self)
	}
	sort.Ints(indices)
	return e.idsOf(indices)
}

func (e *MatrixEngine) closureWithDistance(id string, up bool, opts []Option) (map[int]int, int, Options, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, 0, Options{}, err
	}
	idx, err := e.g.Lookup().IndexOf(id)
	if err != nil {
		return nil, 0, Options{}, err
	}
	dist, err := e.expand(idx, up, cfg.MaxDepth)
	if err != nil {
		return nil, 0, Options{}, err
	}
	return dist, idx, cfg, nil
}

// Ancestors returns the transitive is_a closure above id.
func (e *MatrixEngine) Ancestors(id string, opts ...Option) ([]string, error) {
	return e.closure(id, true, opts)
}

// Descendants returns the transitive is_a closure below id.
func (e *MatrixEngine) Descendants(id string, opts ...Option) ([]string, error) {
	return e.closure(id, false, opts)
}

func (e *MatrixEngine) distanceMap(id string, up bool, opts []Option) (map[string]int, error) {
	dist, self, cfg, err := e.closureWithDistance(id, up, opts)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(dist)+1)
	for idx, d := range dist {
		tid, err := e.g.Lookup().TermOf(idx)
		if err != nil {
			return nil, err
		}
		out[tid] = d
	}
	if cfg.IncludeSelf {
		tid, err := e.g.Lookup().TermOf(self)
		if err != nil {
			return nil, err
		}
		out[tid] = 0
	}
	return out, nil
}

// AncestorsWithDistance maps each ancestor to its BFS layer above id.
func (e *MatrixEngine) AncestorsWithDistance(id string, opts ...Option) (map[string]int, error) {
	return e.distanceMap(id, true, opts)
}

// DescendantsWithDistance maps each descendant to its BFS layer below id.
func (e *MatrixEngine) DescendantsWithDistance(id string, opts ...Option) (map[string]int, error) {
	return e.distanceMap(id, false, opts)
}

// Siblings returns the terms sharing at least one direct parent with id.
// Two multiplications total: up to the parents, down to all their
// children. Roots have no siblings.
func (e *MatrixEngine) Siblings(id string, opts ...Option) ([]string, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	idx, err := e.g.Lookup().IndexOf(id)
	if err != nil {
		return nil, err
	}
	parents, err := e.direct(idx, true)
	if err != nil {
		return nil, err
	}
	sibs, err := e.step(parents, false)
	if err != nil {
		return nil, err
	}
	if !cfg.IncludeSelf {
		sibs.Remove(idx)
	}
	return e.idsOf(sibs.Support())
}

// Roots returns every term with zero parents, computed as a single
// reduction over the matrix rows.
func (e *MatrixEngine) Roots() ([]string, error) {
	return e.idsOf(e.g.IsA().ZeroRows())
}

// IsAncestor reports whether ancestor lies strictly above descendant.
func (e *MatrixEngine) IsAncestor(ancestor, descendant string) (bool, error) {
	ai, err := e.g.Lookup().IndexOf(ancestor)
	if err != nil {
		return false, err
	}
	di, err := e.g.Lookup().IndexOf(descendant)
	if err != nil {
		return false, err
	}
	dist, err := e.expand(di, true, 0)
	if err != nil {
		return false, err
	}
	_, ok := dist[ai]
	return ok, nil
}

// IsDescendant reports whether descendant lies strictly below ancestor.
func (e *MatrixEngine) IsDescendant(descendant, ancestor string) (bool, error) {
	return e.IsAncestor(ancestor, descendant)
}

// IsSibling reports whether two distinct terms share a direct parent.
func (e *MatrixEngine) IsSibling(a, b string) (bool, error) {
	ai, err := e.g.Lookup().IndexOf(a)
	if err != nil {
		return false, err
	}
	bi, err := e.g.Lookup().IndexOf(b)
	if err != nil {
		return false, err
	}
	if ai == bi {
		return false, nil
	}
	pa, err := e.direct(ai, true)
	if err != nil {
		return false, err
	}
	pb, err := e.direct(bi, true)
	if err != nil {
		return false, err
	}
	for _, p := range pa.Support() {
		if pb.Contains(p) {
			return true, nil
		}
	}
	return false, nil
}

// CommonAncestors intersects the strict ancestor sets of all ids. Empty
// input yields an empty set; any non-overlap short-circuits to empty.
func (e *MatrixEngine) CommonAncestors(ids ...string) ([]string, error) {
	common, err := e.commonAncestorIndices(ids)
	if err != nil {
		return nil, err
	}
	indices := make([]int, 0, len(common))
	for idx := range common {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return e.idsOf(indices)
}

// commonAncestorIndices returns, for every shared ancestor index, the
// maximum distance across all input ids.
func (e *MatrixEngine) commonAncestorIndices(ids []string) (map[int]int, error) {
	var common map[int]int
	for _, id := range ids {
		idx, err := e.g.Lookup().IndexOf(id)
		if err != nil {
			return nil, err
		}
		dist, err := e.expand(idx, true, 0)
		if err != nil {
			return nil, err
		}
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
		common = map[int]int{}
	}
	return common, nil
}

// LowestCommonAncestors keeps the common ancestors whose maximum distance
// to any input id is minimal. Ties keep every qualifying ancestor.
func (e *MatrixEngine) LowestCommonAncestors(ids ...string) ([]string, error) {
	common, err := e.commonAncestorIndices(ids)
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
	indices := make([]int, 0, len(common))
	for idx, max := range common {
		if max == best {
			indices = append(indices, idx)
		}
	}
	sort.Ints(indices)
	return e.idsOf(indices)
}

// DistanceFromRoot returns the longest ancestor chain above id; the BFS
// layer of the farthest ancestor is exactly that chain's length. Roots
// return 0.
func (e *MatrixEngine) DistanceFromRoot(id string) (int, error) {
	idx, err := e.g.Lookup().IndexOf(id)
	if err != nil {
		return 0, err
	}
	dist, err := e.expand(idx, true, 0)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, d := range dist {
		if d > max {
			max = d
		}
	}
	return max, nil
}

// PathBetween returns a shortest hierarchy path between a and b, ordered
// ancestor-first regardless of argument order. The walk is BFS from the
// ancestor toward the descendant, one multiplication per layer, tracking
// one predecessor per newly reached index; ties pick the smallest
// predecessor. Unrelated terms give an empty path.
func (e *MatrixEngine) PathBetween(a, b string) ([]string, error) {
	ai, err := e.g.Lookup().IndexOf(a)
	if err != nil {
		return nil, err
	}
	bi, err := e.g.Lookup().IndexOf(b)
	if err != nil {
		return nil, err
	}
	if ai == bi {
		return []string{a}, nil
	}

	start, target := ai, bi
	ok, err := e.IsAncestor(a, b)
	if err != nil {
		return nil, err
	}
	if !ok {
		ok, err = e.IsAncestor(b, a)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []string{}, nil
		}
		start, target = bi, ai
	}

	n := e.g.Len()
	seen, err := sparse.OneHot(n, start)
	if err != nil {
		return nil, err
	}
	frontier := seen.Clone()
	prev := make(map[int]int)
	for layer := 1; layer <= n; layer++ {
		next, err := e.step(frontier, false)
		if err != nil {
			return nil, err
		}
		if err := next.Subtract(seen); err != nil {
			return nil, err
		}
		if next.NVals() == 0 {
			break
		}
		for _, c := range next.Support() {
			for _, p := range frontier.Support() {
				edge, err := e.g.IsA().At(c, p)
				if err != nil {
					return nil, err
				}
				if edge {
					prev[c] = p
					break
				}
			}
		}
		if next.Contains(target) {
			return e.assemblePath(start, target, prev)
		}
		if err := seen.Union(next); err != nil {
			return nil, err
		}
		frontier = next
	}
	// Ancestry was established above, so the target is always reached.
	return []string{}, nil
}

func (e *MatrixEngine) assemblePath(start, target int, prev map[int]int) ([]string, error) {
	indices := []int{target}
	for at := target; at != start; {
		at = prev[at]
		indices = append(indices, at)
	}
	for i, j := 0, len(indices)-1; i < j; i, j = i+1, j-1 {
		indices[i], indices[j] = indices[j], indices[i]
	}
	return e.idsOf(indices)
}

// TrajectoriesFromRoot enumerates every distinct root-to-id path by
// expanding backward from id with an explicit stack, one transposed
// multiplication per expansion, branching once per parent. Branches
// expand in sorted parent order; parents already on the path are skipped
// so a cyclic input terminates.
func (e *MatrixEngine) TrajectoriesFromRoot(id string) ([]Trajectory, error) {
	idx, err := e.g.Lookup().IndexOf(id)
	if err != nil {
		return nil, err
	}

	var out []Trajectory
	stack := [][]int{{idx}}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		head := path[len(path)-1]
		parents, err := e.direct(head, true)
		if err != nil {
			return nil, err
		}
		for _, p := range path {
			parents.Remove(p)
		}
		if parents.NVals() == 0 {
			tr, err := e.assembleTrajectory(path)
			if err != nil {
				return nil, err
			}
			out = append(out, tr)
			continue
		}
		// Push in reverse so the smallest parent is expanded first.
		support := parents.Support()
		for i := len(support) - 1; i >= 0; i-- {
			branch := make([]int, len(path), len(path)+1)
			copy(branch, path)
			stack = append(stack, append(branch, support[i]))
		}
	}
	return out, nil
}

// assembleTrajectory turns a term-first index path into a root-first
// Trajectory with signed distances relative to the queried term.
func (e *MatrixEngine) assembleTrajectory(path []int) (Trajectory, error) {
	tr := make(Trajectory, len(path))
	for i, idx := range path {
		tid, err := e.g.Lookup().TermOf(idx)
		if err != nil {
			return nil, err
		}
		label, err := e.g.Lookup().LabelOf(tid)
		if err != nil {
			return nil, err
		}
		// path[0] is the queried term; reverse into root-first order.
		tr[len(path)-1-i] = Step{ID: tid, Label: label, Distance: -i}
	}
	return tr, nil
}
