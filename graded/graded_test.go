package graded_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/internal/fixture"
)

func TestTrivialGradingIsZero(t *testing.T) {
	require := require.New(t)
	g := fixture.Trivial(fixture.Edge())
	require.Equal(0, g.Value(0))
	require.Equal(0, g.Value(2))
	require.NotNil(g.Complex())
}

func TestSplitSquareGradingRespectsClosure(t *testing.T) {
	require := require.New(t)
	base := fixture.SplitSquare()
	g := fixture.WithGrading(base, fixture.SplitSquareGrading())

	for _, x := range append(append(base.Cells(1), base.Cells(2)...)) {
		bd := base.Boundary(chain.New(x))
		for _, y := range bd.Cells() {
			require.LessOrEqual(g.Value(y), g.Value(x))
		}
	}
}
