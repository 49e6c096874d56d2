package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/internal/fixture"
	"github.com/TravisCasey/pyCHomP2/matching"
)

type CubicalMatchingSuite struct {
	suite.Suite
}

func TestCubicalMatchingSuite(t *testing.T) {
	suite.Run(t, new(CubicalMatchingSuite))
}

func (s *CubicalMatchingSuite) TestInvolutionOnSquare() {
	require := require.New(s.T())

	base := fixture.Square(2)
	g := fixture.Trivial(base)
	m, err := matching.Compute(g)
	require.NoError(err)

	for d := 0; d <= base.Dimension(); d++ {
		for _, x := range base.Cells(d) {
			if base.RightFringe(x) {
				continue
			}
			mate := m.Mate(x)
			require.Equal(x, m.Mate(mate), "mate must be involutive at %d", x)
		}
	}
}

func (s *CubicalMatchingSuite) TestFringeCellsAreNeverCritical() {
	require := require.New(s.T())

	base := fixture.Square(3)
	g := fixture.Trivial(base)
	m, err := matching.Compute(g)
	require.NoError(err)

	_, reindex := m.CriticalCells()
	for _, p := range reindex {
		require.False(base.RightFringe(p.Old), "fringe cell must never be critical")
	}
}

func (s *CubicalMatchingSuite) TestExactlyOneCriticalCellOnUnitSquare() {
	require := require.New(s.T())

	base := fixture.Square(2)
	g := fixture.Trivial(base)
	m, err := matching.Compute(g)
	require.NoError(err)

	_, reindex := m.CriticalCells()
	require.Len(reindex, 1, "a contractible unit square reduces to a single critical vertex")
}

func (s *CubicalMatchingSuite) TestConstructionMismatchOnNonCubicalComplex() {
	require := require.New(s.T())

	g := fixture.Trivial(fixture.SolidTriangle())
	_, err := matching.NewCubicalMatching(g)
	require.Error(err)
	require.True(errors.Is(err, matching.ErrConstructionMismatch))
}

func (s *CubicalMatchingSuite) TestComputeDispatchesToCubicalMatching() {
	require := require.New(s.T())

	base := fixture.Square(2)
	g := fixture.Trivial(base)
	m, err := matching.Compute(g)
	require.NoError(err)

	_, ok := m.(*matching.CubicalMatching)
	require.True(ok, "Compute must select CubicalMatching for a CubicalComplex")
}

func (s *CubicalMatchingSuite) TestPriorityIsConsistentWithTypeSize() {
	require := require.New(s.T())

	base := fixture.Square(3)
	g := fixture.Trivial(base)
	m, err := matching.Compute(g)
	require.NoError(err)

	cm, ok := m.(*matching.CubicalMatching)
	require.True(ok)

	for _, x := range base.Cells(0) {
		p := cm.Priority(x)
		require.Greater(p, 0)
		require.LessOrEqual(p, base.TypeSize())
	}
}

func (s *CubicalMatchingSuite) TestCancelledContextAbortsConstruction() {
	require := require.New(s.T())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := fixture.Trivial(fixture.Square(3))
	_, err := matching.Compute(g, matching.WithContext(ctx))
	require.Error(err)
	require.True(errors.Is(err, context.Canceled))
}

func (s *CubicalMatchingSuite) TestMatchDimCapsCriticalCells() {
	require := require.New(s.T())

	base := fixture.Square(3)
	g := fixture.Trivial(base)
	m, err := matching.Compute(g, matching.WithMatchDim(0))
	require.NoError(err)

	_, reindex := m.CriticalCells()
	for _, p := range reindex {
		require.Equal(0, base.CellDim(p.Old), "matchDim=0 must not touch cells above dimension 0")
	}
}

func (s *CubicalMatchingSuite) TestTruncateRestrictsCriticalCells() {
	require := require.New(s.T())

	base := fixture.Square(2)
	g := fixture.WithGrading(base, func(x chain.Cell) int {
		return int(x) % 2
	})

	m, err := matching.Compute(g, matching.WithTruncate(0))
	require.NoError(err)
	_, reindex := m.CriticalCells()
	for _, p := range reindex {
		require.LessOrEqual(g.Value(p.Old), 0)
	}
}
