package meshio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/katalvlaran/tristrip/mesh"
	"github.com/katalvlaran/tristrip/meshio"
)

type RoundTripSuite struct {
	suite.Suite
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, new(RoundTripSuite))
}

// L2 (serialization round-trip law) — WriteStrips then ReadStrips
// returns an equal StripSet.
func (s *RoundTripSuite) TestStripsRoundTrip() {
	require := require.New(s.T())

	strips := mesh.StripSet{{0, 1, 2, 3}, {4, 5, 6}}
	var buf bytes.Buffer
	require.NoError(meshio.WriteStrips(&buf, strips))

	got, err := meshio.ReadStrips(&buf)
	require.NoError(err)
	require.Equal(strips, got)
}

func (s *RoundTripSuite) TestEmptyStripSetRoundTrips() {
	require := require.New(s.T())

	var buf bytes.Buffer
	require.NoError(meshio.WriteStrips(&buf, nil))

	got, err := meshio.ReadStrips(&buf)
	require.NoError(err)
	require.Empty(got)
}

// Full Mesh bundle (vertices + strips + UVs + normals) round-trips,
// with the UV channel reproducing the original format's lossy
// fixed-point quantization.
func (s *RoundTripSuite) TestMeshRoundTrips() {
	require := require.New(s.T())

	m := meshio.Mesh{
		Vertices: []meshio.Vertex{{X: 1, Y: 2, Z: 3}, {X: -1.5, Y: 0, Z: 4.25}},
		Strips:   mesh.StripSet{{0, 1, 2, 3}},
		UVs:      [][]float32{{0.5, 0.25, 0.75, 1}},
		Normals:  [][]float32{{0, 1, 0, -1, 0, 0}},
	}

	var buf bytes.Buffer
	require.NoError(meshio.WriteMesh(&buf, m))

	got, err := meshio.ReadMesh(&buf)
	require.NoError(err)

	require.Equal(m.Vertices, got.Vertices)
	require.Equal(m.Strips, got.Strips)
	require.Equal(m.Normals, got.Normals)
	// UVs go through a *10000 fixed-point round-trip; compare with
	// tolerance rather than exact equality.
	require.Len(got.UVs, len(m.UVs))
	for i, strip := range m.UVs {
		for j, v := range strip {
			require.InDelta(v, got.UVs[i][j], 1e-3)
		}
	}
}

// L2 — arbitrary strip sets round-trip exactly through the binary
// format.
func TestStripsRoundTrip_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "numStrips")
		strips := make(mesh.StripSet, n)
		for i := range strips {
			length := rapid.IntRange(3, 12).Draw(rt, "stripLen")
			strip := make([]uint16, length)
			for j := range strip {
				strip[j] = uint16(rapid.IntRange(0, 65535).Draw(rt, "vertex"))
			}
			strips[i] = strip
		}

		var buf bytes.Buffer
		err := meshio.WriteStrips(&buf, strips)
		require.NoError(rt, err)

		got, err := meshio.ReadStrips(&buf)
		require.NoError(rt, err)
		require.Equal(rt, strips, got)
	})
}
