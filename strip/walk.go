// Package strip grows triangle strips over an adjacency graph built by
// package adjacency.
package strip

import (
	"github.com/katalvlaran/tristrip/adjacency"
	"github.com/katalvlaran/tristrip/observe"
	"github.com/katalvlaran/tristrip/radixsort"
)

// Walk greedily partitions every triangle described by records into
// triangle strips: every triangle appears in exactly one output strip.
// It never fails given a well-formed adjacency graph — malformed input
// is adjacency.Build's concern, not Walk's.
//
// For each seed triangle, Walk evaluates all three rotations of its
// vertex triple as candidate starting edges and keeps whichever grows
// the longest strip, ties favouring the lowest rotation index. Growing
// from a single fixed rotation of the seed's vertices strands triangles
// whose first two edges are both boundary even though a third, unused
// edge has a live neighbour across it; trying all three rotations and
// keeping the longest result avoids that trap.
//
// Complexity: each seed runs three trial walks, none of which touches
// more triangles than the trial that is kept, and the kept trial's
// triangles are then consumed. The trial walks together therefore
// touch at most three times as many triangles as the mesh has, so
// total work is linear in the number of triangles.
func Walk(records []adjacency.Record, opts ...Option) [][]uint16 {
	cfg := newConfig(opts)
	n := len(records)
	strips := make([][]uint16, 0)
	if n == 0 {
		return strips
	}

	consumed := make([]bool, n)
	order := seedOrder(records, cfg.seedPolicy)

	_ = observe.Phase(cfg.observer, "strip.walk", func() error {
		cursor := 0
		for cursor < len(order) {
			seed := order[cursor]
			cursor++
			if consumed[seed] {
				continue
			}

			best := computeBestStrip(records, consumed, int32(seed))
			for t := range best.touched {
				consumed[t] = true
			}
			if cfg.oneSided {
				applyOneSidedFixup(&best)
			}
			strips = append(strips, best.strip)
		}
		return nil
	})

	return strips
}

// seedOrder returns the sequence of triangle indices Walk considers as
// seed candidates, per the configured SeedPolicy.
func seedOrder(records []adjacency.Record, policy SeedPolicy) []int {
	n := len(records)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if policy != LeastConnectedFirst {
		return order
	}

	connectivity := make([]radixsort.Key, n)
	for i, r := range records {
		var c radixsort.Key
		for _, adj := range r.Adj {
			if adj != adjacency.Boundary {
				c++
			}
		}
		connectivity[i] = c
	}
	sorted, err := radixsort.SortBy(connectivity)
	if err != nil {
		// connectivity values are in {0,1,2,3}, always within the
		// sorter's domain; this cannot happen.
		return order
	}
	result := make([]int, n)
	for i, idx := range sorted {
		result[i] = idx
	}
	return result
}

// trial is one candidate strip grown from a single (seed, rotation)
// pair, before it is known whether it will be the winning trial for
// that seed.
type trial struct {
	strip      []uint16
	touched    map[int32]struct{} // triangles claimed by this trial, including the seed
	forwardLen int                // len(strip) measured right after the forward pass, before backward
}

// computeBestStrip runs growTrial for each of the seed triangle's three
// vertex rotations and returns the longest result (ties keep the
// earliest rotation).
func computeBestStrip(records []adjacency.Record, consumed []bool, seed int32) trial {
	best := growTrial(records, consumed, seed, 0)
	for rot := 1; rot < 3; rot++ {
		candidate := growTrial(records, consumed, seed, rot)
		if len(candidate.strip) > len(best.strip) {
			best = candidate
		}
	}
	return best
}

// growTrial grows one candidate strip from seed, using rotation rot to
// decide which two of the seed's three edges serve as the forward and
// backward starting tails. It never mutates consumed; a seed's three
// trials must be comparable against the same baseline.
func growTrial(records []adjacency.Record, consumed []bool, seed int32, rot int) trial {
	v := records[seed].Vertices
	v0, v1, v2 := v[rot%3], v[(rot+1)%3], v[(rot+2)%3]

	touched := map[int32]struct{}{seed: {}}
	isClaimed := func(t int32) bool {
		if t == adjacency.Boundary || consumed[t] {
			return true
		}
		_, ok := touched[t]
		return ok
	}

	strip := []uint16{v0, v1, v2}

	// Forward pass: extend past the (v1, v2) edge.
	frontTri, frontA, frontB := seed, v1, v2
	for {
		slot, ok := records[frontTri].SlotOf(frontA, frontB)
		if !ok {
			break
		}
		adj := records[frontTri].Adj[slot]
		if isClaimed(adj) {
			break
		}
		w, ok := records[adj].OppositeVertex(frontA, frontB)
		if !ok {
			break
		}
		strip = append(strip, w)
		touched[adj] = struct{}{}
		frontTri, frontA, frontB = adj, frontB, w
	}
	forwardLen := len(strip)

	// Backward pass: extend past the (v0, v1) edge. Prepended vertices
	// are collected in discovery order and placed in front of the strip
	// once, reversed, when the pass ends.
	var back []uint16
	backTri, backA, backB := seed, v0, v1
	for {
		slot, ok := records[backTri].SlotOf(backA, backB)
		if !ok {
			break
		}
		adj := records[backTri].Adj[slot]
		if isClaimed(adj) {
			break
		}
		w, ok := records[adj].OppositeVertex(backA, backB)
		if !ok {
			break
		}
		back = append(back, w)
		touched[adj] = struct{}{}
		backTri, backA, backB = adj, w, backA
	}
	if len(back) > 0 {
		reverse(back)
		strip = append(back, strip...)
	}

	return trial{strip: strip, touched: touched, forwardLen: forwardLen}
}

// applyOneSidedFixup implements the winding-preservation fix-up for
// WithOneSided(true): a strip whose length right after the forward
// pass (the three seed vertices included) is odd must be reversed to keep the original seed
// triangle's winding consistent with its neighbours; if the seed's
// index then lands on an odd position, the first index is duplicated
// to restore parity (a degenerate single-triangle repeat, not a visible
// triangle).
func applyOneSidedFixup(t *trial) {
	if t.forwardLen%2 != 1 {
		return
	}
	backCount := len(t.strip) - t.forwardLen
	reverse(t.strip)
	newSeedPos := len(t.strip) - 1 - backCount
	if newSeedPos%2 == 1 {
		t.strip = append([]uint16{t.strip[0]}, t.strip...)
	}
}

func reverse(s []uint16) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
