package meshbuilder

import (
	"fmt"

	"github.com/katalvlaran/tristrip/mesh"
)

const (
	methodStripChain  = "StripChain"
	minStripChainTris = 1
)

// StripChain returns the triangle-index list for an n-triangle
// zig-zag chain over n+2 vertices: each triangle shares exactly one
// edge with the next, the canonical shape a single triangle strip
// walks end to end.
//
// Contract: n >= 1 (else ErrTooFewTriangles).
//
// Complexity: O(n). Determinism: fixed alternating winding by parity
// of i.
func StripChain(n int) ([]mesh.VertexIndex, error) {
	if n < minStripChainTris {
		return nil, fmt.Errorf("%s: n=%d (must be >= %d): %w", methodStripChain, n, minStripChainTris, ErrTooFewTriangles)
	}
	indices := make([]mesh.VertexIndex, 0, 3*n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			indices = append(indices, mesh.VertexIndex(i), mesh.VertexIndex(i+1), mesh.VertexIndex(i+2))
		} else {
			indices = append(indices, mesh.VertexIndex(i+1), mesh.VertexIndex(i), mesh.VertexIndex(i+2))
		}
	}
	return indices, nil
}
