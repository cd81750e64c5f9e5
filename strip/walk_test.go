package strip_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/katalvlaran/tristrip/adjacency"
	"github.com/katalvlaran/tristrip/observe"
	"github.com/katalvlaran/tristrip/strip"
)

type WalkSuite struct {
	suite.Suite
}

func TestWalkSuite(t *testing.T) {
	suite.Run(t, new(WalkSuite))
}

func build(t *testing.T, indices []uint16) []adjacency.Record {
	t.Helper()
	records, err := adjacency.Build(indices, observe.NoOp)
	require.NoError(t, err)
	return records
}

// S1 — a minimal quad of two triangles walks into one strip of length 4.
func (s *WalkSuite) TestMinimalQuad() {
	require := require.New(s.T())
	records := build(s.T(), []uint16{0, 1, 2, 2, 1, 3})

	strips := strip.Walk(records)
	require.Len(strips, 1)
	require.Equal([]uint16{0, 1, 2, 3}, strips[0])
}

// S2 — a 4-vertex triangle fan merges into a single strip covering all
// three triangles (forcing the three-rotation search: the natural-order
// seed's first two declared edges are both boundary).
func (s *WalkSuite) TestTriangleFanMergesIntoOneStrip() {
	require := require.New(s.T())
	records := build(s.T(), []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4})

	strips := strip.Walk(records)
	require.Len(strips, 1)
	require.Len(strips[0], 5)
	require.ElementsMatch([]uint16{0, 1, 2, 3, 4}, strips[0])
}

// S3 — two disjoint triangles never merge; two strips of length 3 each.
func (s *WalkSuite) TestDisjointTrianglesStayDisjoint() {
	require := require.New(s.T())
	records := build(s.T(), []uint16{0, 1, 2, 3, 4, 5})

	strips := strip.Walk(records)
	require.Len(strips, 2)
	for _, st := range strips {
		require.Len(st, 3)
	}
}

// S5 — a six-triangle bowtie chain walks into one strip of length 8.
func (s *WalkSuite) TestBowtieChainWalksIntoOneStrip() {
	require := require.New(s.T())
	records := build(s.T(), []uint16{
		0, 1, 2,
		2, 1, 3,
		2, 3, 4,
		4, 3, 5,
		4, 5, 6,
		6, 5, 7,
	})

	strips := strip.Walk(records)
	require.Len(strips, 1)
	require.Equal([]uint16{0, 1, 2, 3, 4, 5, 6, 7}, strips[0])
}

// Observer injection must not change the partition (P5 extended).
func (s *WalkSuite) TestObserverDoesNotAffectResult() {
	require := require.New(s.T())
	records := build(s.T(), []uint16{0, 1, 2, 2, 1, 3, 2, 3, 4})

	withNoOp := strip.Walk(records)
	rec := &observe.Recorder{}
	withRecorder := strip.Walk(records, strip.WithObserver(rec))

	require.Equal(withNoOp, withRecorder)
	require.NotEmpty(rec.Events)
}

// LeastConnectedFirst is a valid alternative policy: it must still
// produce a full partition, just not necessarily the same one.
func (s *WalkSuite) TestLeastConnectedFirstStillPartitions() {
	require := require.New(s.T())
	records := build(s.T(), []uint16{0, 1, 2, 2, 1, 3, 2, 3, 4})

	strips := strip.Walk(records, strip.WithSeedPolicy(strip.LeastConnectedFirst))
	require.Equal(3, countTriangles(strips))
}

func countTriangles(strips [][]uint16) int {
	total := 0
	for _, s := range strips {
		total += len(s) - 2
	}
	return total
}

// P1/P2/I4 — every triangle appears in exactly one strip, for arbitrary
// manifold triangle fans.
func TestWalk_CoverageAndPartition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(rt, "fanTriangles")
		indices := make([]uint16, 0, 3*n)
		for i := 0; i < n; i++ {
			indices = append(indices, 0, uint16(i+1), uint16(i+2))
		}
		records, err := adjacency.Build(indices, observe.NoOp)
		require.NoError(rt, err)

		strips := strip.Walk(records)

		total := 0
		for _, st := range strips {
			require.GreaterOrEqual(rt, len(st), 3)
			total += len(st) - 2
		}
		require.Equal(rt, n, total, "every triangle must be covered exactly once")
	})
}

// P7 — termination bound: total strip-vertex count is linear in the
// triangle count (no trial ever revisits a triangle already claimed by
// another trial of the same walk).
func TestWalk_TerminationBound(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 60).Draw(rt, "chainTriangles")
		indices := make([]uint16, 0, 3*n)
		// A zig-zag triangle strip chain of n triangles over n+2 vertices.
		for i := 0; i < n; i++ {
			if i%2 == 0 {
				indices = append(indices, uint16(i), uint16(i+1), uint16(i+2))
			} else {
				indices = append(indices, uint16(i+1), uint16(i), uint16(i+2))
			}
		}
		records, err := adjacency.Build(indices, observe.NoOp)
		require.NoError(rt, err)

		strips := strip.Walk(records)
		totalVertices := 0
		for _, st := range strips {
			totalVertices += len(st)
		}
		require.LessOrEqual(rt, totalVertices, n+2*len(strips))
	})
}

// Determinism (P5): repeated walks over the same input produce the
// same output.
func TestWalk_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(rt, "triangles")
		indices := make([]uint16, 0, 3*n)
		for i := 0; i < n; i++ {
			indices = append(indices, 0, uint16(i+1), uint16(i+2))
		}
		records, err := adjacency.Build(indices, observe.NoOp)
		require.NoError(rt, err)

		first := strip.Walk(records)
		second := strip.Walk(records)
		require.Equal(rt, first, second)
	})
}

