package meshbuilder

import (
	"fmt"

	"github.com/katalvlaran/tristrip/mesh"
)

const (
	methodFan  = "Fan"
	minFanTris = 1
)

// Fan returns the triangle-index list for an n-triangle fan around a
// single hub vertex (vertex 0): triangles (0, i+1, i+2) for
// i in [0, n-1], over n+2 vertices.
//
// Contract: n >= 1 (else ErrTooFewTriangles).
//
// Complexity: O(n). Determinism: fixed hub id 0, ascending leaf order.
func Fan(n int) ([]mesh.VertexIndex, error) {
	if n < minFanTris {
		return nil, fmt.Errorf("%s: n=%d (must be >= %d): %w", methodFan, n, minFanTris, ErrTooFewTriangles)
	}
	indices := make([]mesh.VertexIndex, 0, 3*n)
	for i := 0; i < n; i++ {
		indices = append(indices, 0, mesh.VertexIndex(i+1), mesh.VertexIndex(i+2))
	}
	return indices, nil
}
