package fixture

import (
	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/complex"
)

// Cubical is a small complex.CubicalComplex over a D-dimensional grid of N
// vertex-positions per axis (and therefore N-1 elementary intervals per
// axis). Cell ids are grouped by dimension, then by shape (ascending
// bitmask); within a shape, TypeSize()==N^D positions are laid out in
// mixed-radix base N order across the D axes.
type Cubical struct {
	d, n     int
	typeSize int
	shapes   []int // shapes[rank] = bitmask, ordered by (dimension, bitmask)
	ts       []int // ts[bitmask] = rank

	begin []chain.Cell
}

var _ complex.CubicalComplex = (*Cubical)(nil)

// NewCubical builds a Cubical complex of dimension d over an n-vertex grid
// per axis. Square(n) is the common d=2 case (n=2 reproduces the S4
// fixture: a single unit square, four vertices, four edges, one face).
func NewCubical(d, n int) *Cubical {
	numShapes := 1 << d
	shapes := make([]int, 0, numShapes)
	for dim := 0; dim <= d; dim++ {
		for shape := 0; shape < numShapes; shape++ {
			if popcount(shape) == dim {
				shapes = append(shapes, shape)
			}
		}
	}
	ts := make([]int, numShapes)
	for rank, shape := range shapes {
		ts[shape] = rank
	}

	typeSize := 1
	for i := 0; i < d; i++ {
		typeSize *= n
	}

	begin := make([]chain.Cell, d+2)
	rank := 0
	for dim := 0; dim <= d; dim++ {
		begin[dim] = chain.Cell(rank * typeSize)
		for rank < len(shapes) && popcount(shapes[rank]) == dim {
			rank++
		}
	}
	begin[d+1] = chain.Cell(rank * typeSize)

	return &Cubical{d: d, n: n, typeSize: typeSize, shapes: shapes, ts: ts, begin: begin}
}

// Square builds the 2-dimensional (n-1)×(n-1) grid of elementary squares.
func Square(n int) *Cubical { return NewCubical(2, n) }

func popcount(x int) int {
	c := 0
	for x != 0 {
		c += x & 1
		x >>= 1
	}
	return c
}

func (c *Cubical) decode(pos int) []int {
	coords := make([]int, c.d)
	for i := 0; i < c.d; i++ {
		coords[i] = pos % c.n
		pos /= c.n
	}
	return coords
}

func (c *Cubical) encode(coords []int) int {
	pos := 0
	mult := 1
	for i := 0; i < c.d; i++ {
		pos += coords[i] * mult
		mult *= c.n
	}
	return pos
}

func (c *Cubical) cellOf(shape int, pos int) chain.Cell {
	return chain.Cell(c.ts[shape]*c.typeSize + pos)
}

func (c *Cubical) Size() int { return len(c.shapes) * c.typeSize }

func (c *Cubical) SizeOf(dim int) int {
	if dim < 0 || dim >= len(c.begin)-1 {
		return 0
	}
	return int(c.begin[dim+1] - c.begin[dim])
}

func (c *Cubical) Dimension() int { return c.d }

func (c *Cubical) Cells(dim int) []chain.Cell {
	if dim < 0 || dim >= len(c.begin)-1 {
		return nil
	}
	out := make([]chain.Cell, 0, c.SizeOf(dim))
	for x := c.begin[dim]; x < c.begin[dim+1]; x++ {
		out = append(out, x)
	}
	return out
}

func (c *Cubical) CellDim(x chain.Cell) int  { return popcount(c.CellShape(x)) }
func (c *Cubical) CellShape(x chain.Cell) int { return c.shapes[int(x)/c.typeSize] }
func (c *Cubical) CellPos(x chain.Cell) int   { return int(x) % c.typeSize }

func (c *Cubical) TypeSize() int { return c.typeSize }
func (c *Cubical) TS() []int     { return c.ts }

// RightFringe reports whether x is a padding cell: a cube whose interval
// along some active axis would extend past the grid's last position.
func (c *Cubical) RightFringe(x chain.Cell) bool {
	shape := c.CellShape(x)
	coords := c.decode(c.CellPos(x))
	for axis := 0; axis < c.d; axis++ {
		if shape&(1<<axis) != 0 && coords[axis] == c.n-1 {
			return true
		}
	}
	return false
}

// faces returns the boundary cells of a (non-fringe) cell: for each active
// axis, the low face (same coordinates, axis deactivated) and the high
// face (axis deactivated, that axis's coordinate incremented).
func (c *Cubical) faces(x chain.Cell) []chain.Cell {
	shape := c.CellShape(x)
	coords := c.decode(c.CellPos(x))
	var out []chain.Cell
	for axis := 0; axis < c.d; axis++ {
		bit := 1 << axis
		if shape&bit == 0 {
			continue
		}
		lowShape := shape &^ bit
		out = append(out, c.cellOf(lowShape, c.encode(coords)))
		high := append([]int{}, coords...)
		high[axis]++
		out = append(out, c.cellOf(lowShape, c.encode(high)))
	}
	return out
}

// cofaces returns the coboundary cells of x: for each inactive axis, the
// cofaces obtained by activating that axis at x's coordinates, or one
// less along that axis, whenever those coordinates stay in range.
func (c *Cubical) cofaces(x chain.Cell) []chain.Cell {
	shape := c.CellShape(x)
	coords := c.decode(c.CellPos(x))
	var out []chain.Cell
	for axis := 0; axis < c.d; axis++ {
		bit := 1 << axis
		if shape&bit != 0 {
			continue
		}
		highShape := shape | bit
		if coords[axis] <= c.n-2 {
			out = append(out, c.cellOf(highShape, c.encode(coords)))
		}
		if coords[axis] >= 1 {
			dec := append([]int{}, coords...)
			dec[axis]--
			out = append(out, c.cellOf(highShape, c.encode(dec)))
		}
	}
	return out
}

func (c *Cubical) Boundary(ch chain.Chain) chain.Chain {
	result := chain.New()
	for _, x := range ch.Cells() {
		result.Merge(chain.New(c.faces(x)...))
	}
	return result
}

func (c *Cubical) Coboundary(ch chain.Chain) chain.Chain {
	result := chain.New()
	for _, x := range ch.Cells() {
		result.Merge(chain.New(c.cofaces(x)...))
	}
	return result
}

func (c *Cubical) Column(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range c.faces(i) {
		cb(x)
	}
}

func (c *Cubical) Row(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range c.cofaces(i) {
		cb(x)
	}
}

// TopStar returns the top-dimensional (non-fringe) cells whose closure
// contains x.
func (c *Cubical) TopStar(x chain.Cell) []chain.Cell {
	var out []chain.Cell
	for _, top := range c.Cells(c.d) {
		if c.RightFringe(top) {
			continue
		}
		for _, y := range c.Closure([]chain.Cell{top}) {
			if y == x {
				out = append(out, top)
				break
			}
		}
	}
	return out
}

// Closure returns the closure of the given cells: each cell together with
// every face reachable by repeated boundary decomposition.
func (c *Cubical) Closure(cells []chain.Cell) []chain.Cell {
	seen := make(map[chain.Cell]struct{})
	var stack []chain.Cell
	stack = append(stack, cells...)
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		stack = append(stack, c.faces(x)...)
	}
	out := make([]chain.Cell, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	return out
}
