package meshbuilder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tristrip/mesh"
	"github.com/katalvlaran/tristrip/meshbuilder"
)

type BuilderSuite struct {
	suite.Suite
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func (s *BuilderSuite) TestGridProducesAssemblableMesh() {
	require := require.New(s.T())

	indices, err := meshbuilder.Grid(3, 4)
	require.NoError(err)
	require.Len(indices, 2*3*2*3)

	strips, err := mesh.AssembleStrips(indices)
	require.NoError(err)
	require.Equal(2*2*3, strips.TriangleCount())
}

func (s *BuilderSuite) TestGridRejectsTooSmall() {
	require := require.New(s.T())

	_, err := meshbuilder.Grid(1, 5)
	require.Error(err)
	require.True(errors.Is(err, meshbuilder.ErrTooFewTriangles))
}

func (s *BuilderSuite) TestFanProducesAssemblableMesh() {
	require := require.New(s.T())

	indices, err := meshbuilder.Fan(5)
	require.NoError(err)

	strips, err := mesh.AssembleStrips(indices)
	require.NoError(err)
	require.Equal(5, strips.TriangleCount())
}

func (s *BuilderSuite) TestStripChainWalksIntoOneStrip() {
	require := require.New(s.T())

	indices, err := meshbuilder.StripChain(6)
	require.NoError(err)

	strips, err := mesh.AssembleStrips(indices)
	require.NoError(err)
	require.Len(strips, 1)
	require.Equal(6, strips.TriangleCount())
}

func (s *BuilderSuite) TestDisjointStaysDisjoint() {
	require := require.New(s.T())

	indices, err := meshbuilder.Disjoint(4)
	require.NoError(err)

	strips, err := mesh.AssembleStrips(indices)
	require.NoError(err)
	require.Len(strips, 4)
	for _, st := range strips {
		require.Len(st, 3)
	}
}

func (s *BuilderSuite) TestDisjointRejectsTooFew() {
	require := require.New(s.T())

	_, err := meshbuilder.Disjoint(0)
	require.Error(err)
	require.True(errors.Is(err, meshbuilder.ErrTooFewTriangles))
}
