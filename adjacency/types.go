// Package adjacency builds, for every triangle in a mesh, the (at
// most three) neighbouring triangles sharing an edge.
//
// Build is the sole entry point. It runs in O(N) given N triangles:
// two counting-sort passes over the mesh's edges (via radixsort)
// replace the O(N log N) comparison sort a naive implementation would
// reach for.
//
// Errors:
//
//	ErrDegenerateTriangle - a triangle repeats a vertex index.
//	ErrNonManifold        - a canonical edge is shared by 3+ triangles.
package adjacency

import (
	"errors"
	"fmt"
)

// Boundary marks an adjacency slot with no neighbouring triangle (the
// edge belongs to only one triangle).
const Boundary int32 = -1

// Record is the per-triangle adjacency bundle: its three canonical
// edges, the (at most three) triangles across them, and the triangle's
// original vertex triple (kept for opposite-vertex lookups during
// strip walking).
//
// Slot k always corresponds to the same edge in both Edges and Adj:
// edge 0 = (v0,v1), edge 1 = (v1,v2), edge 2 = (v2,v0). That
// correspondence holds for every Record Build returns.
type Record struct {
	Edges    [3]Edge
	Adj      [3]int32
	Vertices [3]uint16
}

// ErrDegenerateTriangle indicates a triangle with two or more equal
// vertex indices. Degenerate triangles have no well-defined edges and
// are rejected before any sorting happens.
var ErrDegenerateTriangle = errors.New("adjacency: degenerate triangle")

// ErrNonManifold indicates a canonical edge referenced by three or
// more triangles — the mesh is not a manifold surface and has no
// valid adjacency graph.
var ErrNonManifold = errors.New("adjacency: non-manifold edge")

// BuildError carries the offending triangle and/or edge alongside one
// of the sentinel errors above, so a boundary layer can report exactly
// what was wrong without re-deriving it. BuildError.Is lets callers
// keep using errors.Is(err, adjacency.ErrNonManifold).
type BuildError struct {
	Err      error
	Triangle int  // offending triangle index, -1 if not applicable
	Edge     Edge // offending canonical edge, 0 if not applicable
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s (triangle %d, edge %#x)", e.Err, e.Triangle, uint32(e.Edge))
}

func (e *BuildError) Unwrap() error { return e.Err }

func (e *BuildError) Is(target error) bool { return errors.Is(e.Err, target) }
