package meshbuilder

import (
	"fmt"

	"github.com/katalvlaran/tristrip/mesh"
)

const (
	methodDisjoint  = "Disjoint"
	minDisjointPair = 1
)

// Disjoint returns the triangle-index list for `pairs` mutually
// disjoint triangles, each over its own 3 fresh vertex indices — no
// two triangles share any edge, so they must never merge into one
// strip.
//
// Contract: pairs >= 1 (else ErrTooFewTriangles).
//
// Complexity: O(pairs).
func Disjoint(pairs int) ([]mesh.VertexIndex, error) {
	if pairs < minDisjointPair {
		return nil, fmt.Errorf("%s: pairs=%d (must be >= %d): %w", methodDisjoint, pairs, minDisjointPair, ErrTooFewTriangles)
	}
	indices := make([]mesh.VertexIndex, 0, 3*pairs)
	for i := 0; i < pairs; i++ {
		base := mesh.VertexIndex(3 * i)
		indices = append(indices, base, base+1, base+2)
	}
	return indices, nil
}
