package fixture

import (
	"github.com/TravisCasey/pyCHomP2/chain"
)

// Simplicial is a small complex.Complex backed by an explicit per-cell
// boundary table.
type Simplicial struct {
	begin []chain.Cell
	bnd   []chain.Chain
	cbd   []chain.Chain
}

// NewSimplicial builds a Simplicial from dimSizes (number of cells per
// dimension, ascending) and boundary (boundary[i] lists the boundary cells
// of cell i; cell ids are assigned consecutively in ascending-dimension
// order, so dimension-0 cells occupy ids [0, dimSizes[0]), and so on).
func NewSimplicial(dimSizes []int, boundary [][]chain.Cell) *Simplicial {
	total := 0
	begin := make([]chain.Cell, len(dimSizes)+1)
	for d, n := range dimSizes {
		begin[d] = chain.Cell(total)
		total += n
	}
	begin[len(dimSizes)] = chain.Cell(total)

	bnd := make([]chain.Chain, total)
	cbd := make([]chain.Chain, total)
	for i := 0; i < total; i++ {
		bnd[i] = chain.New(boundary[i]...)
	}
	for i := 0; i < total; i++ {
		for _, y := range boundary[i] {
			c := cbd[y]
			c.Add(chain.Cell(i))
			cbd[y] = c
		}
	}
	return &Simplicial{begin: begin, bnd: bnd, cbd: cbd}
}

func (s *Simplicial) Size() int { return len(s.bnd) }

func (s *Simplicial) SizeOf(d int) int {
	if d < 0 || d >= len(s.begin)-1 {
		return 0
	}
	return int(s.begin[d+1] - s.begin[d])
}

func (s *Simplicial) Dimension() int { return len(s.begin) - 2 }

func (s *Simplicial) Cells(d int) []chain.Cell {
	if d < 0 || d >= len(s.begin)-1 {
		return nil
	}
	out := make([]chain.Cell, 0, s.SizeOf(d))
	for x := s.begin[d]; x < s.begin[d+1]; x++ {
		out = append(out, x)
	}
	return out
}

func (s *Simplicial) Boundary(c chain.Chain) chain.Chain {
	result := chain.New()
	for _, x := range c.Cells() {
		result.Merge(s.bnd[x])
	}
	return result
}

func (s *Simplicial) Coboundary(c chain.Chain) chain.Chain {
	result := chain.New()
	for _, x := range c.Cells() {
		result.Merge(s.cbd[x])
	}
	return result
}

func (s *Simplicial) Column(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range s.bnd[i].Cells() {
		cb(x)
	}
}

func (s *Simplicial) Row(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range s.cbd[i].Cells() {
		cb(x)
	}
}

// Edge builds the S1 fixture: vertices A=0, B=1 and edge E=2 with
// boundary {A,B}.
func Edge() *Simplicial {
	return NewSimplicial(
		[]int{2, 1},
		[][]chain.Cell{
			{}, {}, // vertices
			{0, 1}, // edge
		},
	)
}

// Cycle builds an n-cycle: n vertices (ids 0..n-1) and n edges (ids
// n..2n-1), edge i joining vertex i and vertex (i+1)%n. n must be at
// least 3. Cycle(3) is the S2 fixture (triangle boundary, no face).
func Cycle(n int) *Simplicial {
	boundary := make([][]chain.Cell, 0, 2*n)
	for i := 0; i < n; i++ {
		boundary = append(boundary, []chain.Cell{})
	}
	for i := 0; i < n; i++ {
		boundary = append(boundary, []chain.Cell{
			chain.Cell(i), chain.Cell((i + 1) % n),
		})
	}
	return NewSimplicial([]int{n, n}, boundary)
}

// Path builds a path of n vertices (ids 0..n-1) and n-1 edges (ids
// n..2n-2), edge i joining vertex i and vertex i+1. n must be at least 2.
func Path(n int) *Simplicial {
	boundary := make([][]chain.Cell, 0, 2*n-1)
	for i := 0; i < n; i++ {
		boundary = append(boundary, []chain.Cell{})
	}
	for i := 0; i < n-1; i++ {
		boundary = append(boundary, []chain.Cell{
			chain.Cell(i), chain.Cell(i + 1),
		})
	}
	return NewSimplicial([]int{n, n - 1}, boundary)
}

// SolidTriangle builds the S3 fixture: 3 vertices, 3 edges forming a
// cycle, and one 2-cell (id 6) whose boundary is all three edges.
func SolidTriangle() *Simplicial {
	return NewSimplicial(
		[]int{3, 3, 1},
		[][]chain.Cell{
			{}, {}, {}, // vertices 0,1,2
			{0, 1}, {1, 2}, {2, 0}, // edges 3,4,5
			{3, 4, 5}, // face 6
		},
	)
}

// SplitSquare builds the S5/S6 fixture: a square split into two triangles
// that share a diagonal. Vertices 0..3 are the square's corners, vertex 0
// and 2 are the diagonal's endpoints. Edges 4..8 are the four sides plus
// the diagonal (4:0-1, 5:1-2, 6:2-3, 7:3-0, 8:0-2). Faces 9,10 are the two
// triangles (9: 0-1-2 via edges 4,5,8; 10: 0-2-3 via edges 8,6,7).
func SplitSquare() *Simplicial {
	return NewSimplicial(
		[]int{4, 5, 2},
		[][]chain.Cell{
			{}, {}, {}, {}, // vertices 0,1,2,3
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, // edges 4..8
			{4, 5, 8}, // face 9: triangle 0-1-2
			{8, 6, 7}, // face 10: triangle 0-2-3
		},
	)
}
