// SPDX-License-Identifier: MIT

package sparse

import "sort"

// Bool is an r×c sparse Boolean matrix, built once from coordinate arrays
// and immutable afterwards. Entries are stored twice, per-row column lists
// and per-column row lists, so both M·v and Mᵀ·v run without scanning the
// whole structure.
//
// The ontology engine uses the convention M[child][parent] = true for the
// is_a relation: MulVec propagates a frontier toward children, TMulVec
// toward parents.
type Bool struct {
	rows, cols int
	byRow      [][]int // byRow[i] = sorted column indices set in row i
	byCol      [][]int // byCol[j] = sorted row indices set in column j
	nnz        int
}

// NewBool compiles coordinate arrays into a matrix with explicit dimensions.
// Dimensions are explicit rather than inferred so indices of disconnected
// terms stay addressable. Duplicate coordinates coalesce (Boolean OR).
//
// Returns ErrBadShape for negative dimensions, ErrCoordLenMismatch when the
// arrays differ in length, and ErrOutOfRange for any coordinate outside the
// declared shape.
func NewBool(rows, cols int, ri, ci []int) (*Bool, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if len(ri) != len(ci) {
		return nil, ErrCoordLenMismatch
	}
	m := &Bool{
		rows:  rows,
		cols:  cols,
		byRow: make([][]int, rows),
		byCol: make([][]int, cols),
	}
	seen := make(map[[2]int]struct{}, len(ri))
	for k := range ri {
		r, c := ri[k], ci[k]
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return nil, ErrOutOfRange
		}
		key := [2]int{r, c}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		m.byRow[r] = append(m.byRow[r], c)
		m.byCol[c] = append(m.byCol[c], r)
		m.nnz++
	}
	for i := range m.byRow {
		sort.Ints(m.byRow[i])
	}
	for j := range m.byCol {
		sort.Ints(m.byCol[j])
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Bool) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Bool) Cols() int { return m.cols }

// NNZ returns the number of set entries after coalescing.
func (m *Bool) NNZ() int { return m.nnz }

// At reports whether entry (r, c) is set.
func (m *Bool) At(r, c int) (bool, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return false, ErrOutOfRange
	}
	cs := m.byRow[r]
	k := sort.SearchInts(cs, c)
	return k < len(cs) && cs[k] == c, nil
}

// RowNVals returns the number of set entries in row r.
func (m *Bool) RowNVals(r int) (int, error) {
	if r < 0 || r >= m.rows {
		return 0, ErrOutOfRange
	}
	return len(m.byRow[r]), nil
}

// MulVec computes y = M·v over the Boolean semiring:
//
//	y[r] = OR over c of (M[r][c] AND v[c])
//
// i.e. the set bits of y are the rows reachable through any set column of v.
// Requires v.Len() == Cols().
func (m *Bool) MulVec(v *Vector) (*Vector, error) {
	if v.Len() != m.cols {
		return nil, ErrDimensionMismatch
	}
	out, err := NewVector(m.rows)
	if err != nil {
		return nil, err
	}
	for c := range v.set {
		for _, r := range m.byCol[c] {
			out.set[r] = struct{}{}
		}
	}
	return out, nil
}

// TMulVec computes y = Mᵀ·v: the set bits of y are the columns reachable
// through any set row of v. Requires v.Len() == Rows().
func (m *Bool) TMulVec(v *Vector) (*Vector, error) {
	if v.Len() != m.rows {
		return nil, ErrDimensionMismatch
	}
	out, err := NewVector(m.cols)
	if err != nil {
		return nil, err
	}
	for r := range v.set {
		for _, c := range m.byRow[r] {
			out.set[c] = struct{}{}
		}
	}
	return out, nil
}

// ZeroRows returns, sorted ascending, the indices of rows containing no set
// entry. With the is_a convention (row = child, column = parent) a zero row
// is a term with zero parents, a root. One pass over the row lists; no
// per-term traversal.
func (m *Bool) ZeroRows() []int {
	out := make([]int, 0)
	for r := 0; r < m.rows; r++ {
		if len(m.byRow[r]) == 0 {
			out = append(out, r)
		}
	}
	return out
}
