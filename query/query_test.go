package query_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bioqueries/ontograph/graph"
	"github.com/bioqueries/ontograph/obo"
	"github.com/bioqueries/ontograph/query"
)

// dummyOBO is a three-root DAG exercising multiple parents (G), depth
// limits (M's chain) and isolated families (C's):
//
//	Z ── A ── D ── {E, F, G}        B ── {H, I}   M ── S ── T ── U ── {V, W}
//	Z ── C ── {Y, O}                H ── {K, L}
//	O ── N                          K ── {G, Q}
//	G ── {K1, K2}
const dummyOBO = `format-version: 1.2
ontology: dummy

[Term]
id: Z
name: term Z

[Term]
id: A
name: term A
is_a: Z

[Term]
id: C
name: term C
is_a: Z

[Term]
id: D
name: term D
is_a: A

[Term]
id: E
name: term E
is_a: D

[Term]
id: F
name: term F
is_a: D

[Term]
id: G
name: term G
is_a: D
is_a: K

[Term]
id: K1
name: term K1
is_a: G

[Term]
id: K2
name: term K2
is_a: G

[Term]
id: B
name: term B

[Term]
id: H
name: term H
is_a: B

[Term]
id: I
name: term I
is_a: B

[Term]
id: K
name: term K
is_a: H

[Term]
id: L
name: term L
is_a: H

[Term]
id: Q
name: term Q
is_a: K

[Term]
id: Y
name: term Y
is_a: C

[Term]
id: O
name: term O
is_a: C

[Term]
id: N
name: term N
is_a: O

[Term]
id: M
name: term M

[Term]
id: S
name: term S
is_a: M

[Term]
id: T
name: term T
is_a: S

[Term]
id: U
name: term U
is_a: T

[Term]
id: V
name: term V
is_a: U

[Term]
id: W
name: term W
is_a: U
`

func mustParse(t *testing.T, src string) *obo.Ontology {
	t.Helper()
	ont, err := obo.ParseOBO(strings.NewReader(src))
	require.NoError(t, err)
	return ont
}

// engines builds both backends over the same document so every test runs
// against each and asserts identical behaviour.
func engines(t *testing.T, src string, opts ...graph.Option) map[string]query.Engine {
	t.Helper()
	ont := mustParse(t, src)
	g, err := graph.New(ont, opts...)
	require.NoError(t, err)
	me, err := query.NewMatrixEngine(g)
	require.NoError(t, err)
	oe, err := query.NewObjectEngine(ont, opts...)
	require.NoError(t, err)
	return map[string]query.Engine{"matrix": me, "object": oe}
}

func forEachEngine(t *testing.T, fn func(t *testing.T, e query.Engine)) {
	t.Helper()
	for name, e := range engines(t, dummyOBO) {
		t.Run(name, func(t *testing.T) { fn(t, e) })
	}
}

func TestNewEngines_NilInput(t *testing.T) {
	_, err := query.NewMatrixEngine(nil)
	require.ErrorIs(t, err, query.ErrNilGraph)
	_, err = query.NewObjectEngine(nil)
	require.ErrorIs(t, err, query.ErrNilOntology)
}

func TestParentsChildren(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		parents, err := e.Parents("G")
		require.NoError(t, err)
		require.Equal(t, []string{"D", "K"}, parents)

		parents, err = e.Parents("G", query.WithSelf())
		require.NoError(t, err)
		require.Equal(t, []string{"D", "G", "K"}, parents)

		children, err := e.Children("D")
		require.NoError(t, err)
		require.Equal(t, []string{"E", "F", "G"}, children)

		children, err = e.Children("G")
		require.NoError(t, err)
		require.Equal(t, []string{"K1", "K2"}, children)

		// Roots have no parents, leaves no children.
		parents, err = e.Parents("Z")
		require.NoError(t, err)
		require.Empty(t, parents)
		children, err = e.Children("K1")
		require.NoError(t, err)
		require.Empty(t, children)
	})
}

func TestUnknownTerm(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		_, err := e.Parents("NOPE")
		require.ErrorIs(t, err, graph.ErrUnknownTerm)
		_, err = e.Ancestors("NOPE")
		require.ErrorIs(t, err, graph.ErrUnknownTerm)
		_, err = e.Siblings("NOPE")
		require.ErrorIs(t, err, graph.ErrUnknownTerm)
		_, err = e.IsAncestor("Z", "NOPE")
		require.ErrorIs(t, err, graph.ErrUnknownTerm)
		_, err = e.CommonAncestors("Z", "NOPE")
		require.ErrorIs(t, err, graph.ErrUnknownTerm)
		_, err = e.DistanceFromRoot("NOPE")
		require.ErrorIs(t, err, graph.ErrUnknownTerm)
		_, err = e.PathBetween("NOPE", "Z")
		require.ErrorIs(t, err, graph.ErrUnknownTerm)
		_, err = e.TrajectoriesFromRoot("NOPE")
		require.ErrorIs(t, err, graph.ErrUnknownTerm)
	})
}

func TestOptionViolation(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		_, err := e.Ancestors("G", query.WithMaxDepth(-1))
		require.ErrorIs(t, err, query.ErrOptionViolation)
	})
}

func TestAncestors(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		anc, err := e.Ancestors("G")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D", "H", "K", "Z"}, anc)

		anc, err = e.Ancestors("G", query.WithSelf())
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D", "G", "H", "K", "Z"}, anc)

		// Depth 1 is exactly the parent set.
		anc, err = e.Ancestors("G", query.WithMaxDepth(1))
		require.NoError(t, err)
		require.Equal(t, []string{"D", "K"}, anc)

		anc, err = e.Ancestors("Z")
		require.NoError(t, err)
		require.Empty(t, anc)
	})
}

func TestDescendants(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		desc, err := e.Descendants("B")
		require.NoError(t, err)
		require.Equal(t, []string{"G", "H", "I", "K", "K1", "K2", "L", "Q"}, desc)

		desc, err = e.Descendants("M", query.WithMaxDepth(2))
		require.NoError(t, err)
		require.Equal(t, []string{"S", "T"}, desc)

		desc, err = e.Descendants("K1")
		require.NoError(t, err)
		require.Empty(t, desc)
	})
}

func TestDistances(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		dist, err := e.DescendantsWithDistance("B")
		require.NoError(t, err)
		require.Equal(t, map[string]int{
			"H": 1, "I": 1,
			"K": 2, "L": 2,
			"G": 3, "Q": 3,
			"K1": 4, "K2": 4,
		}, dist)

		dist, err = e.AncestorsWithDistance("U")
		require.NoError(t, err)
		require.Equal(t, map[string]int{"T": 1, "S": 2, "M": 3}, dist)

		dist, err = e.AncestorsWithDistance("U", query.WithSelf())
		require.NoError(t, err)
		require.Equal(t, 0, dist["U"])
		require.Equal(t, 2, dist["S"])
	})
}

func TestSiblings(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		sibs, err := e.Siblings("G")
		require.NoError(t, err)
		require.Equal(t, []string{"E", "F", "Q"}, sibs)

		sibs, err = e.Siblings("G", query.WithSelf())
		require.NoError(t, err)
		require.Equal(t, []string{"E", "F", "G", "Q"}, sibs)

		sibs, err = e.Siblings("Y")
		require.NoError(t, err)
		require.Equal(t, []string{"O"}, sibs)

		// Only child and root both have no siblings.
		sibs, err = e.Siblings("N")
		require.NoError(t, err)
		require.Empty(t, sibs)
		sibs, err = e.Siblings("Z")
		require.NoError(t, err)
		require.Empty(t, sibs)
	})
}

func TestRoots(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		roots, err := e.Roots()
		require.NoError(t, err)
		require.Equal(t, []string{"B", "M", "Z"}, roots)

		// Root invariant: exactly the rootless terms have no parents.
		for _, id := range roots {
			parents, err := e.Parents(id)
			require.NoError(t, err)
			require.Empty(t, parents)
		}
	})
}

func TestPredicates(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		ok, err := e.IsAncestor("Z", "G")
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = e.IsAncestor("G", "Z")
		require.NoError(t, err)
		require.False(t, ok)
		// Strict: a term is not its own ancestor.
		ok, err = e.IsAncestor("G", "G")
		require.NoError(t, err)
		require.False(t, ok)

		// Duality with IsDescendant.
		ok, err = e.IsDescendant("G", "Z")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = e.IsSibling("V", "W")
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = e.IsSibling("K1", "K2")
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = e.IsSibling("V", "V")
		require.NoError(t, err)
		require.False(t, ok)
		ok, err = e.IsSibling("V", "Z")
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestCommonAncestors(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		common, err := e.CommonAncestors("K1", "K2")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D", "G", "H", "K", "Z"}, common)

		// Terms in unrelated families share nothing.
		common, err = e.CommonAncestors("C", "I")
		require.NoError(t, err)
		require.Empty(t, common)

		common, err = e.CommonAncestors()
		require.NoError(t, err)
		require.Empty(t, common)
	})
}

func TestLowestCommonAncestors(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		lca, err := e.LowestCommonAncestors("K1", "K2")
		require.NoError(t, err)
		require.Equal(t, []string{"G"}, lca)

		lca, err = e.LowestCommonAncestors("E", "F")
		require.NoError(t, err)
		require.Equal(t, []string{"D"}, lca)

		// E sits under D only; G reaches D too, so D wins over A.
		lca, err = e.LowestCommonAncestors("E", "G")
		require.NoError(t, err)
		require.Equal(t, []string{"D"}, lca)

		_, err = e.LowestCommonAncestors()
		require.ErrorIs(t, err, query.ErrEmptyAncestry)
		_, err = e.LowestCommonAncestors("C", "I")
		require.ErrorIs(t, err, query.ErrEmptyAncestry)
	})
}

func TestDistanceFromRoot(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		for id, want := range map[string]int{
			"Z": 0, "C": 1, "D": 2, "F": 3,
			// G's longest chain runs G-K-H-B.
			"G": 3,
		} {
			got, err := e.DistanceFromRoot(id)
			require.NoError(t, err)
			require.Equal(t, want, got, "distance_from_root(%s)", id)
		}
	})
}

func TestPathBetween(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		// Ancestor-first regardless of argument order.
		path, err := e.PathBetween("A", "F")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "D", "F"}, path)
		path, err = e.PathBetween("F", "A")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "D", "F"}, path)

		path, err = e.PathBetween("Z", "C")
		require.NoError(t, err)
		require.Equal(t, []string{"Z", "C"}, path)

		path, err = e.PathBetween("C", "C")
		require.NoError(t, err)
		require.Equal(t, []string{"C"}, path)

		// No ancestor/descendant relation.
		path, err = e.PathBetween("C", "F")
		require.NoError(t, err)
		require.Empty(t, path)
	})
}

func TestTrajectoriesFromRoot(t *testing.T) {
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		trs, err := e.TrajectoriesFromRoot("F")
		require.NoError(t, err)
		require.Equal(t, []query.Trajectory{{
			{ID: "Z", Label: "term Z", Distance: -3},
			{ID: "A", Label: "term A", Distance: -2},
			{ID: "D", Label: "term D", Distance: -1},
			{ID: "F", Label: "term F", Distance: 0},
		}}, trs)

		// Two parents, two trajectories, smallest-parent branch first.
		trs, err = e.TrajectoriesFromRoot("G")
		require.NoError(t, err)
		require.Equal(t, []query.Trajectory{
			{
				{ID: "Z", Label: "term Z", Distance: -3},
				{ID: "A", Label: "term A", Distance: -2},
				{ID: "D", Label: "term D", Distance: -1},
				{ID: "G", Label: "term G", Distance: 0},
			},
			{
				{ID: "B", Label: "term B", Distance: -3},
				{ID: "H", Label: "term H", Distance: -2},
				{ID: "K", Label: "term K", Distance: -1},
				{ID: "G", Label: "term G", Distance: 0},
			},
		}, trs)

		// A root's only trajectory is itself.
		trs, err = e.TrajectoriesFromRoot("Z")
		require.NoError(t, err)
		require.Equal(t, []query.Trajectory{{{ID: "Z", Label: "term Z", Distance: 0}}}, trs)
	})
}

// Duality checks across the whole dummy set, §8-style, both engines.
func TestStructuralProperties(t *testing.T) {
	ids := []string{
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "K", "K1", "K2",
		"L", "M", "N", "O", "Q", "S", "T", "U", "V", "W", "Y", "Z",
	}
	forEachEngine(t, func(t *testing.T, e query.Engine) {
		for _, x := range ids {
			children, err := e.Children(x)
			require.NoError(t, err)
			for _, y := range children {
				parents, err := e.Parents(y)
				require.NoError(t, err)
				require.Contains(t, parents, x)
			}

			// Self-exclusion by default.
			anc, err := e.Ancestors(x)
			require.NoError(t, err)
			require.NotContains(t, anc, x)
			desc, err := e.Descendants(x)
			require.NoError(t, err)
			require.NotContains(t, desc, x)

			// Distance monotonicity against every parent.
			dx, err := e.DistanceFromRoot(x)
			require.NoError(t, err)
			parents, err := e.Parents(x)
			require.NoError(t, err)
			for _, p := range parents {
				dp, err := e.DistanceFromRoot(p)
				require.NoError(t, err)
				require.GreaterOrEqual(t, dx, dp)
			}
		}
	})
}

func TestEnginesAgree(t *testing.T) {
	es := engines(t, dummyOBO)
	me, oe := es["matrix"], es["object"]

	for _, id := range []string{"Z", "G", "K1", "N", "U"} {
		ma, err := me.Ancestors(id)
		require.NoError(t, err)
		oa, err := oe.Ancestors(id)
		require.NoError(t, err)
		require.Equal(t, ma, oa, "ancestors(%s)", id)

		md, err := me.DescendantsWithDistance(id)
		require.NoError(t, err)
		od, err := oe.DescendantsWithDistance(id)
		require.NoError(t, err)
		require.Equal(t, md, od, "descendants_with_distance(%s)", id)

		mt, err := me.TrajectoriesFromRoot(id)
		require.NoError(t, err)
		ot, err := oe.TrajectoriesFromRoot(id)
		require.NoError(t, err)
		require.Equal(t, mt, ot, "trajectories(%s)", id)
	}

	mr, err := me.Roots()
	require.NoError(t, err)
	or, err := oe.Roots()
	require.NoError(t, err)
	require.Equal(t, mr, or)
}

func TestObsoleteFiltering(t *testing.T) {
	const src = `format-version: 1.2

[Term]
id: X:1
name: root

[Term]
id: X:2
name: kept
is_a: X:1

[Term]
id: X:3
name: gone
is_obsolete: true
is_a: X:1

[Term]
id: X:4
name: orphaned
is_a: X:3
`
	// Excluded by default: the obsolete term is unknown and its child
	// becomes a root.
	for name, e := range engines(t, src) {
		t.Run(name, func(t *testing.T) {
			_, err := e.Parents("X:3")
			require.ErrorIs(t, err, graph.ErrUnknownTerm)

			roots, err := e.Roots()
			require.NoError(t, err)
			require.Equal(t, []string{"X:1", "X:4"}, roots)

			children, err := e.Children("X:1")
			require.NoError(t, err)
			require.Equal(t, []string{"X:2"}, children)
		})
	}

	// Included on request: the edge chain is whole again.
	for name, e := range engines(t, src, graph.WithObsolete()) {
		t.Run(name+"_with_obsolete", func(t *testing.T) {
			anc, err := e.Ancestors("X:4")
			require.NoError(t, err)
			require.Equal(t, []string{"X:1", "X:3"}, anc)

			roots, err := e.Roots()
			require.NoError(t, err)
			require.Equal(t, []string{"X:1"}, roots)
		})
	}
}
