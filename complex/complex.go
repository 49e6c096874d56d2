package complex

import "github.com/TravisCasey/pyCHomP2/chain"

// Complex is the capability every cell complex implementation must expose.
// Cell identifiers are non-negative integers, contiguous within the
// complex and partitioned by dimension: cells of dimension d occupy
// [begin(d), begin(d+1)), dimensions run 0..Dimension(), and
// begin(Dimension()+1) is implicitly Size().
type Complex interface {
	// Size returns the total number of cells.
	Size() int
	// SizeOf returns the number of cells of dimension d.
	SizeOf(d int) int
	// Dimension returns the top dimension present in the complex.
	Dimension() int
	// Cells returns the cell ids of dimension d. Iteration order is
	// unspecified but must be stable across repeated calls.
	Cells(d int) []chain.Cell
	// Boundary returns the boundary of c, a chain in dimension dim(c)-1.
	Boundary(c chain.Chain) chain.Chain
	// Coboundary returns the coboundary of c, a chain in dimension dim(c)+1.
	Coboundary(c chain.Chain) chain.Chain
	// Column invokes cb once per nonzero entry of column i of the
	// boundary matrix (i.e. once per cell of Boundary({i})).
	Column(i chain.Cell, cb func(chain.Cell))
	// Row invokes cb once per nonzero entry of row i of the boundary
	// matrix (i.e. once per cell of Coboundary({i})).
	Row(i chain.Cell, cb func(chain.Cell))
}

// CubicalComplex is the additional capability a cubical complex exposes so
// that CubicalMatching can exploit its product structure. A cubical cell id
// decomposes into a shape (bitmask of active axes, popcount = dimension)
// and a position within that shape's grid; TypeSize is the number of
// positions per shape and TS offsets a shape to its block of cell ids.
type CubicalComplex interface {
	Complex

	// CellDim returns the dimension of cell x.
	CellDim(x chain.Cell) int
	// CellShape returns the shape bitmask of cell x.
	CellShape(x chain.Cell) int
	// CellPos returns the position of cell x within its shape's grid.
	CellPos(x chain.Cell) int
	// RightFringe reports whether x is a fringe (padding) cell: fringe
	// cells are never matched and never critical.
	RightFringe(x chain.Cell) bool
	// TypeSize returns Size() / (number of shapes), the grid size shared
	// by every shape.
	TypeSize() int
	// TS returns the per-shape offset table: TS()[shape] is the index of
	// shape's first position within the complex, in units of TypeSize().
	TS() []int
	// TopStar returns the top-dimensional cells in the star of x.
	TopStar(x chain.Cell) []chain.Cell
	// Closure returns the closure of the given cell set.
	Closure(cells []chain.Cell) []chain.Cell
}
