package query

// Navigator is the traversal group: direct neighbourhood, transitive
// closure with optional depth limits and distances, siblings and roots.
// Operations address terms by string id only; index space never crosses
// this boundary. Every operation fails with graph.ErrUnknownTerm for ids
// absent from the loaded set.
type Navigator interface {
	Parents(id string, opts ...Option) ([]string, error)
	Children(id string, opts ...Option) ([]string, error)
	Ancestors(id string, opts ...Option) ([]string, error)
	Descendants(id string, opts ...Option) ([]string, error)

	// AncestorsWithDistance and DescendantsWithDistance stamp each reached
	// term with its BFS layer, the shortest hop count from the queried
	// term. With WithSelf the queried term appears at distance 0.
	AncestorsWithDistance(id string, opts ...Option) (map[string]int, error)
	DescendantsWithDistance(id string, opts ...Option) (map[string]int, error)

	Siblings(id string, opts ...Option) ([]string, error)
	Roots() ([]string, error)
}

// Relations is the predicate group plus common-ancestor computation.
type Relations interface {
	IsAncestor(ancestor, descendant string) (bool, error)
	IsDescendant(descendant, ancestor string) (bool, error)
	IsSibling(a, b string) (bool, error)

	// CommonAncestors intersects the strict ancestor sets of all ids.
	// Empty input yields an empty set.
	CommonAncestors(ids ...string) ([]string, error)

	// LowestCommonAncestors keeps the common ancestors minimizing the
	// maximum distance to any input id; ties keep every qualifying
	// ancestor. Fails with ErrEmptyAncestry when no common ancestor
	// exists.
	LowestCommonAncestors(ids ...string) ([]string, error)
}

// Introspection is the structural-position group.
type Introspection interface {
	// DistanceFromRoot returns the longest ancestor chain above id; a
	// root term returns 0.
	DistanceFromRoot(id string) (int, error)

	// PathBetween returns the id sequence of a shortest hierarchy path,
	// ordered ancestor-first. Equal ids give a single-element path;
	// terms with no ancestor/descendant relation give an empty path.
	PathBetween(a, b string) ([]string, error)

	// TrajectoriesFromRoot enumerates every distinct root-to-id path,
	// branching once per extra parent. Paths are root-first; each step
	// carries its signed distance from the queried term (the term itself
	// 0, the root most negative).
	TrajectoriesFromRoot(id string) ([]Trajectory, error)
}

// Engine is the full query contract. Two interchangeable implementations
// exist, MatrixEngine and ObjectEngine; callers pick one at load time and
// never switch mid-lifetime.
type Engine interface {
	Navigator
	Relations
	Introspection
}
