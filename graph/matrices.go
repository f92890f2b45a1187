package graph

import (
	"fmt"

	"github.com/bioqueries/ontograph/sparse"
)

// compileMatrices turns the per-relation coordinate arrays into N×N sparse
// Boolean matrices. Dimensions are passed explicitly so a relation whose
// largest index is small still yields a full N×N matrix.
func compileMatrices(indexes map[string]*EdgeIndex, n int) (map[string]*sparse.Bool, error) {
	matrices := make(map[string]*sparse.Bool, len(indexes))
	for rel, edge := range indexes {
		m, err := sparse.NewBool(n, n, edge.Rows, edge.Cols)
		if err != nil {
			return nil, fmt.Errorf("compile %q: %w", rel, err)
		}
		matrices[rel] = m
	}
	return matrices, nil
}
