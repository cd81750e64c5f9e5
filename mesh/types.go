// Package mesh is the module's public façade: it turns a flat triangle
// index list into a set of triangle strips, validating the
// input-shape errors the lower layers don't.
package mesh

// VertexIndex is a single 16-bit vertex index, matching the narrow
// index type most real-time renderers expect on the wire.
type VertexIndex = uint16

// Triangle is a convenience grouping of one triangle's three vertex
// indices, used by SceneSource and meshbuilder fixtures. AssembleStrips
// itself takes a flat []VertexIndex.
type Triangle struct {
	V0, V1, V2 VertexIndex
}

// StripSet is an ordered sequence of triangle strips, each of length at
// least 3.
type StripSet [][]uint16

// TriangleCount returns the total number of triangles across every
// strip (sum of len(strip)-2), useful for verifying full coverage
// against the input triangle count.
func (s StripSet) TriangleCount() int {
	total := 0
	for _, strip := range s {
		total += len(strip) - 2
	}
	return total
}

// Flatten converts a []Triangle into the flat []VertexIndex
// AssembleStrips expects, for callers (a SceneSource adapter, say) that
// naturally build per-triangle structs before handing the mesh off.
func Flatten(triangles []Triangle) []VertexIndex {
	indices := make([]VertexIndex, 0, 3*len(triangles))
	for _, t := range triangles {
		indices = append(indices, t.V0, t.V1, t.V2)
	}
	return indices
}

// SceneSource is the narrow contract the upstream importer must
// satisfy. The core package never implements it, only consumes its
// output.
type SceneSource interface {
	// Indices returns the flat 3N vertex-index list (triangles in
	// positional order), already triangulated and 16-bit.
	Indices() ([]VertexIndex, error)
}
