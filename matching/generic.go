package matching

import (
	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/graded"
)

const methodGeneric = "GenericMatching"

// GenericMatching works on any complex.Complex by repeatedly pairing a
// cell with a single remaining unmatched boundary neighbor, falling back
// to marking a no-boundary cell critical when no such pair is available.
type GenericMatching struct {
	begin    []chain.Cell
	reindex  []Pair
	mate     []chain.Cell
	priority []int
}

var _ Matching = (*GenericMatching)(nil)

// NewGenericMatching computes a GenericMatching over base.
func NewGenericMatching(base *graded.GradedComplex, opts ...Option) (*GenericMatching, error) {
	o := resolveOptions(opts)
	c := base.Complex()

	D := c.Dimension()
	if o.matchDim >= 0 && o.matchDim <= c.Dimension() {
		D = o.matchDim
	}

	var topBegin, n int
	for d := 0; d <= D; d++ {
		if d == D {
			topBegin = n
		}
		n += c.SizeOf(d)
	}
	N := n

	eligible := func(x chain.Cell) bool {
		return !o.truncate || base.Value(x) <= o.maxGrade
	}

	gradedBoundary := func(x chain.Cell) (chain.Chain, error) {
		result := chain.New()
		xVal := base.Value(x)
		for _, y := range c.Boundary(chain.New(x)).Cells() {
			yVal := base.Value(y)
			if yVal > xVal {
				return chain.Chain{}, ErrGradingClosureViolated
			}
			if yVal == xVal {
				result.Add(y)
			}
		}
		return result, nil
	}

	gradedCoboundary := func(x chain.Cell) chain.Chain {
		result := chain.New()
		if int(x) >= topBegin {
			return result
		}
		xVal := base.Value(x)
		for _, y := range c.Coboundary(chain.New(x)).Cells() {
			if base.Value(y) == xVal {
				result.Add(y)
			}
		}
		return result
	}

	mate := make([]chain.Cell, N)
	for i := range mate {
		mate[i] = -1
	}
	priority := make([]int, N)
	boundaryCount := make([]int, N)
	coreducible := make(map[chain.Cell]struct{})
	aceCandidates := make(map[chain.Cell]struct{})

	M := 0
	processed := 0
	for x := chain.Cell(0); int(x) < N; x++ {
		if eligible(x) {
			M++
			bd, err := gradedBoundary(x)
			if err != nil {
				return nil, matchingErrorf(methodGeneric, err)
			}
			boundaryCount[x] = bd.Len()
			switch boundaryCount[x] {
			case 0:
				aceCandidates[x] = struct{}{}
			case 1:
				coreducible[x] = struct{}{}
			}
		}
		o.report(int(x)+1, N)
	}

	process := func(y chain.Cell) {
		priority[y] = base.Value(y)*M + processed
		processed++
		delete(coreducible, y)
		delete(aceCandidates, y)
		for _, x := range gradedCoboundary(y).Cells() {
			boundaryCount[x]--
			switch boundaryCount[x] {
			case 0:
				delete(coreducible, x)
				aceCandidates[x] = struct{}{}
			case 1:
				coreducible[x] = struct{}{}
			}
		}
	}

	for processed < M {
		if len(coreducible) > 0 {
			var k chain.Cell
			for k = range coreducible {
				break
			}
			delete(coreducible, k)

			bd, err := gradedBoundary(k)
			if err != nil {
				return nil, matchingErrorf(methodGeneric, err)
			}
			unmatched := 0
			var q chain.Cell
			for _, x := range bd.Cells() {
				if mate[x] == -1 {
					if unmatched == 0 {
						q = x
					}
					unmatched++
				}
			}
			if unmatched != 1 {
				return nil, matchingErrorf(methodGeneric, ErrInvariantViolated)
			}

			mate[k] = q
			mate[q] = k
			process(q)
			process(k)
		} else {
			var a chain.Cell
			for a = range aceCandidates {
				break
			}
			delete(aceCandidates, a)
			mate[a] = a
			process(a)
		}
		if err := o.checkContext(); err != nil {
			return nil, matchingErrorf(methodGeneric, err)
		}
		o.report(processed, M)
	}

	begin := make([]chain.Cell, D+2)
	var reindex []Pair
	idx := chain.Cell(0)
	for d := 0; d <= D; d++ {
		begin[d] = idx
		for _, v := range c.Cells(d) {
			if eligible(v) && mate[v] == v {
				reindex = append(reindex, Pair{Old: v, New: idx})
				idx++
			}
		}
	}
	begin[D+1] = idx

	return &GenericMatching{begin: begin, reindex: reindex, mate: mate, priority: priority}, nil
}

func (m *GenericMatching) Mate(x chain.Cell) chain.Cell { return m.mate[x] }

func (m *GenericMatching) Priority(x chain.Cell) int { return m.priority[x] }

func (m *GenericMatching) CriticalCells() ([]chain.Cell, []Pair) {
	return m.begin, m.reindex
}
