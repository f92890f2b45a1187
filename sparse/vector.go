// SPDX-License-Identifier: MIT

package sparse

import "sort"

// Vector is a sparse Boolean vector of fixed length: one set bit per index
// currently present. It is the frontier/visited representation used by the
// traversal engine: transient, created and discarded within a single query.
type Vector struct {
	n   int
	set map[int]struct{}
}

// NewVector returns an empty vector of length n.
// Returns ErrBadShape if n < 0 (a zero-length vector is legal: an ontology
// may be empty).
func NewVector(n int) (*Vector, error) {
	if n < 0 {
		return nil, ErrBadShape
	}
	return &Vector{n: n, set: make(map[int]struct{})}, nil
}

// OneHot returns a vector of length n with exactly index i set.
func OneHot(n, i int) (*Vector, error) {
	v, err := NewVector(n)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n {
		return nil, ErrOutOfRange
	}
	v.set[i] = struct{}{}
	return v, nil
}

// Len returns the vector's declared length.
func (v *Vector) Len() int { return v.n }

// NVals returns the number of set bits.
func (v *Vector) NVals() int { return len(v.set) }

// Contains reports whether index i is set. Out-of-range indices are simply
// not contained.
func (v *Vector) Contains(i int) bool {
	_, ok := v.set[i]
	return ok
}

// Add sets index i. Returns ErrOutOfRange if i lies outside [0, Len()).
func (v *Vector) Add(i int) error {
	if i < 0 || i >= v.n {
		return ErrOutOfRange
	}
	v.set[i] = struct{}{}
	return nil
}

// Remove clears index i. Clearing an unset bit is a no-op.
func (v *Vector) Remove(i int) { delete(v.set, i) }

// Union sets every bit of other in v. Both vectors must have equal length.
func (v *Vector) Union(other *Vector) error {
	if other.n != v.n {
		return ErrDimensionMismatch
	}
	for i := range other.set {
		v.set[i] = struct{}{}
	}
	return nil
}

// Subtract clears every bit of other in v. Both vectors must have equal length.
func (v *Vector) Subtract(other *Vector) error {
	if other.n != v.n {
		return ErrDimensionMismatch
	}
	for i := range other.set {
		delete(v.set, i)
	}
	return nil
}

// Support returns the set indices sorted ascending.
// Sorting is what makes every traversal built on sparse deterministic.
func (v *Vector) Support() []int {
	out := make([]int, 0, len(v.set))
	for i := range v.set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent copy of v.
func (v *Vector) Clone() *Vector {
	c := &Vector{n: v.n, set: make(map[int]struct{}, len(v.set))}
	for i := range v.set {
		c.set[i] = struct{}{}
	}
	return c
}
