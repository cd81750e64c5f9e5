// Package meshbuilder generates synthetic triangle-index lists for
// tests and benchmarks, the way lvlath/builder generates synthetic
// graphs (Grid, Star, Cycle...). There is no shared mutable object to
// build into here — each constructor is a pure function returning a
// flat []mesh.VertexIndex directly.
package meshbuilder

import "errors"

// ErrTooFewTriangles indicates a numeric parameter (rows, cols, n,
// pairs) is smaller than the constructor's minimum.
var ErrTooFewTriangles = errors.New("meshbuilder: parameter too small")
