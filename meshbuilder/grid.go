package meshbuilder

import (
	"fmt"

	"github.com/katalvlaran/tristrip/mesh"
)

const (
	methodGrid = "Grid"
	minGridDim = 2
)

// Grid returns the triangle-index list for a rows x cols orthogonal
// grid of vertices, triangulated into two triangles per quad cell —
// the triangulation a real importer would have done upstream, before
// the mesh ever reaches the adjacency builder.
//
// Contract:
//   - rows >= 2 and cols >= 2 (else ErrTooFewTriangles); a grid needs at
//     least one quad to contain a triangle.
//   - Vertex IDs follow row-major order: id(r,c) = r*cols + c.
//   - Each cell (r,c) for r in [0,rows-2], c in [0,cols-2] emits two
//     triangles: (id(r,c), id(r,c+1), id(r+1,c)) and
//     (id(r+1,c), id(r,c+1), id(r+1,c+1)) — sharing the cell's diagonal
//     edge, so adjacent cells in a row form a connected strip.
//
// Complexity: O(rows*cols) time and space (3 indices per triangle,
// 2*(rows-1)*(cols-1) triangles).
//
// Determinism: stable row-major cell order, stable per-cell winding.
func Grid(rows, cols int) ([]mesh.VertexIndex, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewTriangles)
	}

	id := func(r, c int) mesh.VertexIndex { return mesh.VertexIndex(r*cols + c) }
	indices := make([]mesh.VertexIndex, 0, 2*3*(rows-1)*(cols-1))
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			indices = append(indices,
				id(r, c), id(r, c+1), id(r+1, c),
				id(r+1, c), id(r, c+1), id(r+1, c+1),
			)
		}
	}
	return indices, nil
}
