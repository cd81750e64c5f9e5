// Package radixsort implements the stable, small-domain integer sort
// the adjacency builder uses to co-locate identical canonical edges in
// linear time.
//
// Two operations are exposed:
//
//	SortBy           — stable sort, ties broken by original position
//	SortByWithPrior  — stable sort, ties broken by a caller-supplied
//	                   permutation instead of natural position
//
// Calling SortByWithPrior with the permutation SortBy returned for an
// earlier (minor) key, then passing a second (major) key array,
// produces a lexicographic sort on the pair (major, minor): ordered by
// the major key, ties ordered by the minor key — the composite-sort
// trick the adjacency builder's two-pass edge ordering
// depends on.
//
// Steps (SortBy):
//  1. Build a histogram of key values over [0, domain).
//  2. Prefix-sum the histogram into per-value starting offsets.
//  3. Walk keys in input order, placing each at its offset and
//     incrementing that offset — later occurrences of an equal key
//     land after earlier ones, which is exactly stability.
//
// Complexity: O(n + domain) time, O(n + domain) space.
package radixsort

import "errors"

// Key is the integer type sorted by this package. Edge halves are
// 16-bit, so Key is wide enough for any composite value the adjacency
// builder constructs while still bounding the histogram at 1<<16.
type Key = uint32

// domain is the exclusive upper bound on key values this sorter
// accepts: edges are packed from two uint16 halves, so every key
// SortBy/SortByWithPrior is ever asked to sort is a single uint16
// half, never the packed 32-bit edge itself.
const domain = 1 << 16

// ErrTooManyKeys is returned when len(keys) exceeds the sorter's
// documented limit of 2^32 keys.
var ErrTooManyKeys = errors.New("radixsort: too many keys")

// ErrKeyOutOfDomain is returned when a key is too large for the
// counting sort's fixed 16-bit histogram.
var ErrKeyOutOfDomain = errors.New("radixsort: key exceeds 16-bit domain")

const maxKeys = 1 << 32

// SortBy returns a permutation p of [0, len(keys)) such that
// keys[p[0]] <= keys[p[1]] <= ..., with ties broken by original
// position (stability).
//
// Complexity: O(n + 65536).
func SortBy(keys []Key) ([]int, error) {
	prior := make([]int, len(keys))
	for i := range prior {
		prior[i] = i
	}
	return SortByWithPrior(keys, prior)
}

// SortByWithPrior returns a permutation p of [0, len(keys)) such that
// keys[p[0]] <= keys[p[1]] <= ..., with ties among equal keys broken
// by their relative order in prior rather than by natural position.
//
// prior must itself be a permutation of [0, len(keys)); passing the
// output of an earlier SortBy/SortByWithPrior call chains two sorts
// into one lexicographic sort (minor key first, major key second —
// see the package doc comment).
//
// Complexity: O(n + 65536).
func SortByWithPrior(keys []Key, prior []int) ([]int, error) {
	n := len(keys)
	if n == 0 {
		return []int{}, nil
	}
	if uint64(n) > maxKeys {
		return nil, ErrTooManyKeys
	}

	var counts [domain]int
	for _, k := range keys {
		if k >= domain {
			return nil, ErrKeyOutOfDomain
		}
		counts[k]++
	}

	var offsets [domain]int
	sum := 0
	for v := 0; v < domain; v++ {
		offsets[v] = sum
		sum += counts[v]
	}

	out := make([]int, n)
	for _, idx := range prior {
		v := keys[idx]
		out[offsets[v]] = idx
		offsets[v]++
	}

	return out, nil
}
