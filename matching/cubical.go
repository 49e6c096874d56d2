package matching

import (
	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/complex"
	"github.com/TravisCasey/pyCHomP2/graded"
)

const methodCubical = "CubicalMatching"

// CubicalMatching exploits the product structure of a cubical complex,
// proposing a mate for each non-fringe cell by scanning axes for a
// higher-dimensional neighbor that would otherwise be critical.
type CubicalMatching struct {
	graded   *graded.GradedComplex
	complex  complex.CubicalComplex
	typeSize int
	matchDim int
	begin    []chain.Cell
	reindex  []Pair

	memo map[memoKey]chain.Cell
}

type memoKey struct {
	cell chain.Cell
	d    int
}

var _ Matching = (*CubicalMatching)(nil)

// NewCubicalMatching computes a CubicalMatching over base. It returns
// ErrConstructionMismatch if base.Complex() does not implement
// complex.CubicalComplex. WithMatchDim caps the dimension at which cells
// are matched or listed as critical; cells above it are skipped entirely.
func NewCubicalMatching(base *graded.GradedComplex, opts ...Option) (*CubicalMatching, error) {
	cc, ok := base.Complex().(complex.CubicalComplex)
	if !ok {
		return nil, matchingErrorf(methodCubical, ErrConstructionMismatch)
	}
	o := resolveOptions(opts)

	D := cc.Dimension()
	if o.matchDim >= 0 && o.matchDim <= cc.Dimension() {
		D = o.matchDim
	}

	m := &CubicalMatching{
		graded:   base,
		complex:  cc,
		typeSize: cc.TypeSize(),
		matchDim: D,
		memo:     make(map[memoKey]chain.Cell),
	}

	eligible := func(x chain.Cell) bool {
		return !o.truncate || base.Value(x) <= o.maxGrade
	}

	axisScan := cc.Dimension()
	N := 0
	for d := 0; d <= D; d++ {
		N += cc.SizeOf(d)
	}
	numProcessed := 0

	prevKings := map[chain.Cell]struct{}{}
	nextKings := map[chain.Cell]struct{}{}

	begin := make([]chain.Cell, D+2)
	idx := chain.Cell(0)
	for d := 0; d <= D; d++ {
		begin[d] = idx
		prevKings, nextKings = nextKings, map[chain.Cell]struct{}{}

		for _, v := range cc.Cells(d) {
			_, wasKing := prevKings[v]
			if !cc.RightFringe(v) && eligible(v) && !wasKing {
				mate := m.mateAt(v, axisScan, true)
				if mate == v {
					m.reindex = append(m.reindex, Pair{Old: v, New: idx})
					idx++
				} else {
					nextKings[mate] = struct{}{}
				}
			}
			numProcessed++
			o.report(numProcessed, N)
		}
		if err := o.checkContext(); err != nil {
			return nil, matchingErrorf(methodCubical, err)
		}
	}
	begin[D+1] = idx
	m.begin = begin

	return m, nil
}

// mateAt is the recursive mate search, memoized by (cell, d) since the
// acceptance test for a proposed mate recurses at a strictly lower axis
// bound. initial, set only for the outermost call made
// during matching construction, restricts the scan to axes not already
// active in cell's shape (kings are only ever proposed "upward"); the
// recursive acceptance test always searches at full resolution.
func (m *CubicalMatching) mateAt(cell chain.Cell, d int, initial bool) chain.Cell {
	if !initial {
		if v, ok := m.memo[memoKey{cell, d}]; ok {
			return v
		}
	}

	result := m.computeMateAt(cell, d, initial)

	if !initial {
		m.memo[memoKey{cell, d}] = result
	}
	return result
}

func (m *CubicalMatching) computeMateAt(cell chain.Cell, d int, initial bool) chain.Cell {
	c := m.complex
	if c.RightFringe(cell) {
		return cell
	}
	shape := c.CellShape(cell)
	cellVal := m.graded.Value(cell)
	ts := c.TS()

	for axis, bit := 0, 1; axis < d; axis, bit = axis+1, bit<<1 {
		if initial && shape&bit != 0 {
			continue
		}
		typeOffset := m.typeSize * ts[shape^bit]
		proposed := chain.Cell(c.CellPos(cell) + typeOffset)

		if c.CellDim(proposed) > m.matchDim {
			continue
		}
		if !c.RightFringe(proposed) &&
			m.graded.Value(proposed) == cellVal &&
			proposed == m.mateAt(proposed, axis, false) {
			return proposed
		}
	}
	return cell
}

// Mate returns x's mate at full resolution, or x itself if x is critical.
func (m *CubicalMatching) Mate(x chain.Cell) chain.Cell {
	return m.mateAt(x, m.complex.Dimension(), false)
}

// Priority returns typeSize - x%typeSize, an acyclic linear extension.
func (m *CubicalMatching) Priority(x chain.Cell) int {
	return m.typeSize - int(x)%m.typeSize
}

func (m *CubicalMatching) CriticalCells() ([]chain.Cell, []Pair) {
	return m.begin, m.reindex
}
