package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/internal/fixture"
)

func TestEdgeBoundary(t *testing.T) {
	require := require.New(t)
	c := fixture.Edge()
	require.Equal(3, c.Size())
	require.Equal(1, c.Dimension())

	bd := c.Boundary(chain.New(2))
	require.True(bd.Equal(chain.New(0, 1)))
}

func TestCycleBoundarySquared(t *testing.T) {
	require := require.New(t)
	c := fixture.Cycle(3)
	for _, e := range c.Cells(1) {
		bd := c.Boundary(chain.New(e))
		require.Equal(2, bd.Len())
	}
	// sum of all edge boundaries is zero (each vertex touched twice)
	total := c.Boundary(chain.New(c.Cells(1)...))
	require.Equal(0, total.Len())
}

func TestSolidTriangleBoundaryOfBoundaryIsZero(t *testing.T) {
	require := require.New(t)
	c := fixture.SolidTriangle()
	face := c.Cells(2)[0]
	bd := c.Boundary(chain.New(face))
	bdbd := c.Boundary(bd)
	require.Equal(0, bdbd.Len())
}

func TestCubicalSquareShapeCounts(t *testing.T) {
	require := require.New(t)
	c := fixture.Square(2)

	countNonFringe := func(d int) int {
		n := 0
		for _, x := range c.Cells(d) {
			if !c.RightFringe(x) {
				n++
			}
		}
		return n
	}
	require.Equal(4, countNonFringe(0))
	require.Equal(4, countNonFringe(1))
	require.Equal(1, countNonFringe(2))
}

func TestCubicalSquareBoundarySquaredIsZero(t *testing.T) {
	require := require.New(t)
	c := fixture.Square(2)
	var face chain.Cell
	for _, x := range c.Cells(2) {
		if !c.RightFringe(x) {
			face = x
			break
		}
	}
	bd := c.Boundary(chain.New(face))
	require.Equal(4, bd.Len())
	bdbd := c.Boundary(bd)
	require.Equal(0, bdbd.Len())
}

func TestCubicalClosureContainsVertices(t *testing.T) {
	require := require.New(t)
	c := fixture.Square(2)
	var face chain.Cell
	for _, x := range c.Cells(2) {
		if !c.RightFringe(x) {
			face = x
		}
	}
	closure := c.Closure([]chain.Cell{face})
	require.Len(closure, 9) // 1 face + 4 edges + 4 vertices
}
