package adjacency

import (
	"github.com/katalvlaran/tristrip/observe"
	"github.com/katalvlaran/tristrip/radixsort"
)

// edgeRecord is one emitted edge tuple: a canonical edge plus the
// triangle/slot it came from.
type edgeRecord struct {
	edge     Edge
	triangle int32
	slot     uint8
}

// Build produces one Record per triangle in indices (a flat sequence
// of 3N vertex indices, triangles in positional order), with every
// triangle's three edges linked to their opposing triangle wherever
// one exists.
//
// Steps:
//  1. Edge generation: for each triangle, emit its three canonical
//     edges tagged with (triangle index, slot index).
//  2. Lexicographic ordering: composite-sort the edge list by
//     (low16, high16) — sort by high16 first, then stably re-sort by
//     low16 (radixsort.SortBy / SortByWithPrior).
//  3. Run scan: walk the sorted list, grouping consecutive identical
//     edges. A group of 1 is a boundary edge. A group of 2 links the
//     two triangles symmetrically. A group of 3+ is ErrNonManifold.
//
// Complexity: O(N) given N = len(indices)/3 triangles.
func Build(indices []uint16, obs observe.Observer) ([]Record, error) {
	n := len(indices) / 3
	records := make([]Record, n)

	if err := checkDegenerate(indices, records); err != nil {
		return nil, err
	}

	edges := make([]edgeRecord, 0, 3*n)
	for t := 0; t < n; t++ {
		v0, v1, v2 := records[t].Vertices[0], records[t].Vertices[1], records[t].Vertices[2]
		records[t].Adj = [3]int32{Boundary, Boundary, Boundary}
		records[t].Edges[0] = CanonicalEdge(v0, v1)
		records[t].Edges[1] = CanonicalEdge(v1, v2)
		records[t].Edges[2] = CanonicalEdge(v2, v0)
		for slot, e := range records[t].Edges {
			edges = append(edges, edgeRecord{edge: e, triangle: int32(t), slot: uint8(slot)})
		}
	}

	var order []int
	err := observe.Phase(obs, "adjacency.sort", func() error {
		var sortErr error
		order, sortErr = sortEdges(edges)
		return sortErr
	})
	if err != nil {
		return nil, err
	}

	err = observe.Phase(obs, "adjacency.scan", func() error {
		return linkRuns(edges, order, records)
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// checkDegenerate fills in Vertices for every triangle and rejects any
// triangle with a repeated vertex index, ahead of edge generation —
// degenerate triangles have no canonical edges to sort in the first
// place.
func checkDegenerate(indices []uint16, records []Record) error {
	for t := range records {
		v0, v1, v2 := indices[3*t], indices[3*t+1], indices[3*t+2]
		if v0 == v1 || v1 == v2 || v2 == v0 {
			return &BuildError{Err: ErrDegenerateTriangle, Triangle: t, Edge: 0}
		}
		records[t].Vertices = [3]uint16{v0, v1, v2}
	}
	return nil
}

// sortEdges composite-sorts edges by (low16, high16): minor key
// (high16) applied first, major key (low16) applied second, exploiting
// radixsort's stability to build a lexicographic order from two
// single-key passes.
func sortEdges(edges []edgeRecord) ([]int, error) {
	highKeys := make([]radixsort.Key, len(edges))
	for i, er := range edges {
		highKeys[i] = radixsort.Key(er.edge.High())
	}
	byHigh, err := radixsort.SortBy(highKeys)
	if err != nil {
		return nil, err
	}

	lowKeys := make([]radixsort.Key, len(edges))
	for i, er := range edges {
		lowKeys[i] = radixsort.Key(er.edge.Low())
	}
	return radixsort.SortByWithPrior(lowKeys, byHigh)
}

// linkRuns walks edges in sorted order, grouping consecutive identical
// canonical edges and writing symmetric adjacency links for groups of
// exactly two.
func linkRuns(edges []edgeRecord, order []int, records []Record) error {
	i := 0
	for i < len(order) {
		j := i + 1
		for j < len(order) && edges[order[j]].edge == edges[order[i]].edge {
			j++
		}
		switch j - i {
		case 1:
			// Boundary edge: exactly one owner, nothing to link.
		case 2:
			a, b := edges[order[i]], edges[order[i+1]]
			records[a.triangle].Adj[a.slot] = b.triangle
			records[b.triangle].Adj[b.slot] = a.triangle
		default:
			return &BuildError{Err: ErrNonManifold, Triangle: int(edges[order[i]].triangle), Edge: edges[order[i]].edge}
		}
		i = j
	}
	return nil
}
