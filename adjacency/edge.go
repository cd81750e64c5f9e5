package adjacency

// Edge is a canonical, unordered pair of vertex indices, packed into a
// single uint32 so two edges compare equal with ordinary integer
// equality regardless of which vertex was named first. The low 16 bits
// hold the smaller vertex index, the high 16 bits the larger, so edges
// also sort as ordinary integers.
type Edge uint32

// CanonicalEdge packs the unordered pair {a, b} into its canonical
// Edge form. Canonicalizing an already-canonical edge is the identity:
// CanonicalEdge(e.Low(), e.High()) == e for any canonical Edge e.
func CanonicalEdge(a, b uint16) Edge {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return Edge(uint32(hi)<<16 | uint32(lo))
}

// Low returns the smaller of the edge's two vertex indices (the low
// 16 bits of the packed value).
func (e Edge) Low() uint16 { return uint16(e) }

// High returns the larger of the edge's two vertex indices (the high
// 16 bits of the packed value).
func (e Edge) High() uint16 { return uint16(e >> 16) }
