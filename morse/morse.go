package morse

import (
	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/complex"
	"github.com/TravisCasey/pyCHomP2/graded"
	"github.com/TravisCasey/pyCHomP2/matching"
)

// MorseComplex is the reduced complex induced by a matching on a base
// complex. It implements complex.Complex.
type MorseComplex struct {
	base     complex.Complex
	matching matching.Matching

	begin   []chain.Cell
	include []chain.Cell            // include[new] = old
	project map[chain.Cell]chain.Cell // old -> new, critical cells only

	bd  []chain.Chain
	cbd []chain.Chain
}

var _ complex.Complex = (*MorseComplex)(nil)

// New builds the MorseComplex induced by m on base.
func New(base complex.Complex, m matching.Matching) *MorseComplex {
	begin, reindex := m.CriticalCells()

	include := make([]chain.Cell, len(reindex))
	project := make(map[chain.Cell]chain.Cell, len(reindex))
	for _, p := range reindex {
		include[p.New] = p.Old
		project[p.Old] = p.New
	}

	mc := &MorseComplex{
		base:     base,
		matching: m,
		begin:    begin,
		include:  include,
		project:  project,
	}

	mc.bd = make([]chain.Chain, len(include))
	for a := range mc.bd {
		mc.bd[a] = mc.Lower(base.Boundary(mc.Include(chain.New(chain.Cell(a)))))
	}

	mc.cbd = make([]chain.Chain, len(include))
	for a, bd := range mc.bd {
		for _, x := range bd.Cells() {
			c := mc.cbd[x]
			c.Add(chain.Cell(a))
			mc.cbd[x] = c
		}
	}

	return mc
}

// Reduce computes a matching for base under the trivial grading and
// returns the MorseComplex it induces.
func Reduce(base complex.Complex, opts ...matching.Option) (*MorseComplex, error) {
	g := graded.New(base, func(chain.Cell) int { return 0 })
	m, err := matching.Compute(g, opts...)
	if err != nil {
		return nil, err
	}
	return New(base, m), nil
}

func (mc *MorseComplex) Size() int { return len(mc.include) }

func (mc *MorseComplex) SizeOf(d int) int {
	if d < 0 || d >= len(mc.begin)-1 {
		return 0
	}
	return int(mc.begin[d+1] - mc.begin[d])
}

func (mc *MorseComplex) Dimension() int { return len(mc.begin) - 2 }

func (mc *MorseComplex) Cells(d int) []chain.Cell {
	if d < 0 || d >= len(mc.begin)-1 {
		return nil
	}
	out := make([]chain.Cell, 0, mc.SizeOf(d))
	for x := mc.begin[d]; x < mc.begin[d+1]; x++ {
		out = append(out, x)
	}
	return out
}

func (mc *MorseComplex) Boundary(c chain.Chain) chain.Chain {
	result := chain.New()
	for _, x := range c.Cells() {
		result.Merge(mc.bd[x])
	}
	return result
}

func (mc *MorseComplex) Coboundary(c chain.Chain) chain.Chain {
	result := chain.New()
	for _, x := range c.Cells() {
		result.Merge(mc.cbd[x])
	}
	return result
}

func (mc *MorseComplex) Column(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range mc.bd[i].Cells() {
		cb(x)
	}
}

func (mc *MorseComplex) Row(i chain.Cell, cb func(chain.Cell)) {
	for _, x := range mc.cbd[i].Cells() {
		cb(x)
	}
}

// Base returns the base complex this MorseComplex reduces.
func (mc *MorseComplex) Base() complex.Complex { return mc.base }

// Matching returns the matching this MorseComplex was built from.
func (mc *MorseComplex) Matching() matching.Matching { return mc.matching }

// Include maps a chain of new (critical) ids to base ids.
func (mc *MorseComplex) Include(c chain.Chain) chain.Chain {
	result := chain.New()
	for _, x := range c.Cells() {
		result.Add(mc.include[x])
	}
	return result
}

// Project maps a chain of base ids to new ids, dropping non-critical cells.
func (mc *MorseComplex) Project(c chain.Chain) chain.Chain {
	result := chain.New()
	for _, x := range c.Cells() {
		if n, ok := mc.project[x]; ok {
			result.Add(n)
		}
	}
	return result
}

// Lift maps a chain of new ids to a canonical base chain whose boundary,
// projected, equals the base complex's boundary of the new-id chain.
func (mc *MorseComplex) Lift(c chain.Chain) chain.Chain {
	included := mc.Include(c)
	_, gamma := mc.Flow(mc.base.Boundary(included))
	result := included.Clone()
	result.Merge(gamma)
	return result
}

// Lower maps a base chain to its new-id projection after flowing it to
// canonical form.
func (mc *MorseComplex) Lower(c chain.Chain) chain.Chain {
	canonical, _ := mc.Flow(c)
	return mc.Project(canonical)
}

// isQueen reports whether x is the lower-dimensional member of its
// matched pair.
func (mc *MorseComplex) isQueen(x chain.Cell) bool {
	return x < mc.matching.Mate(x)
}

// isKing reports whether x is the higher-dimensional member of its
// matched pair.
func (mc *MorseComplex) isKing(x chain.Cell) bool {
	return x > mc.matching.Mate(x)
}

// Flow reduces a base chain to canonical form: canonical + base.Boundary(gamma) == input,
// with canonical supported only on cells that are critical or not queens.
func (mc *MorseComplex) Flow(input chain.Chain) (canonical, gamma chain.Chain) {
	canonical = chain.New()
	gamma = chain.New()

	pq := newCellHeap(func(a, b chain.Cell) bool {
		return mc.matching.Priority(a) > mc.matching.Priority(b)
	})

	process := func(x chain.Cell) {
		if mc.isQueen(x) {
			pq.push(x)
		}
		canonical.Add(x)
	}

	for _, x := range input.Cells() {
		process(x)
	}

	for pq.Len() > 0 {
		queen := pq.pop()
		if canonical.Count(queen) == 0 {
			continue
		}
		king := mc.matching.Mate(queen)
		gamma.Add(king)
		mc.base.Column(king, process)
	}

	return canonical, gamma
}

// Colift is the dual of Lift, using coboundary/coflow.
func (mc *MorseComplex) Colift(c chain.Chain) chain.Chain {
	included := mc.Include(c)
	_, cogamma := mc.Coflow(mc.base.Coboundary(included))
	result := included.Clone()
	result.Merge(cogamma)
	return result
}

// Colower is the dual of Lower, using coflow.
func (mc *MorseComplex) Colower(c chain.Chain) chain.Chain {
	cocanonical, _ := mc.Coflow(c)
	return mc.Project(cocanonical)
}

// Coflow dualizes Flow: it exchanges the roles of kings and queens and
// their coboundary counterparts, using the reverse priority comparator.
func (mc *MorseComplex) Coflow(input chain.Chain) (cocanonical, cogamma chain.Chain) {
	cocanonical = chain.New()
	cogamma = chain.New()

	pq := newCellHeap(func(a, b chain.Cell) bool {
		return mc.matching.Priority(a) < mc.matching.Priority(b)
	})

	process := func(x chain.Cell) {
		if mc.isKing(x) {
			pq.push(x)
		}
		cocanonical.Add(x)
	}

	for _, x := range input.Cells() {
		process(x)
	}

	for pq.Len() > 0 {
		king := pq.pop()
		if cocanonical.Count(king) == 0 {
			continue
		}
		queen := mc.matching.Mate(king)
		cogamma.Add(queen)
		mc.base.Row(queen, process)
	}

	return cocanonical, cogamma
}
