package morse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/internal/fixture"
	"github.com/TravisCasey/pyCHomP2/matching"
	"github.com/TravisCasey/pyCHomP2/morse"
)

func TestNewGradedCarriesBaseGrade(t *testing.T) {
	require := require.New(t)

	base := fixture.SplitSquare()
	g := fixture.WithGrading(base, fixture.SplitSquareGrading())

	m, err := matching.Compute(g)
	require.NoError(err)

	reduced := morse.NewGraded(g, m)
	mc := reduced.Complex().(*morse.MorseComplex)
	require.Equal(base, mc.Base())

	for a := chain.Cell(0); int(a) < mc.Size(); a++ {
		old := mc.Include(chain.New(a))
		require.Equal(1, old.Len())
		var oldCell chain.Cell
		for _, x := range old.Cells() {
			oldCell = x
		}
		require.Equal(g.Value(oldCell), reduced.Value(a))
	}
}

func TestNewGradedRespectsClosure(t *testing.T) {
	require := require.New(t)

	base := fixture.SplitSquare()
	g := fixture.WithGrading(base, fixture.SplitSquareGrading())

	m, err := matching.Compute(g)
	require.NoError(err)

	reduced := morse.NewGraded(g, m)
	mc := reduced.Complex().(*morse.MorseComplex)

	for d := 0; d <= mc.Dimension(); d++ {
		for _, a := range mc.Cells(d) {
			bd := mc.Boundary(chain.New(a))
			for _, b := range bd.Cells() {
				require.LessOrEqual(reduced.Value(b), reduced.Value(a))
			}
		}
	}
}
