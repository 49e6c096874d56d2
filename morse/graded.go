package morse

import (
	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/graded"
	"github.com/TravisCasey/pyCHomP2/matching"
)

// NewGraded builds the MorseComplex m induces on base.Complex() and lifts
// base's grading onto it: critical cell a is assigned the grade of the
// base cell it includes to. Both matching backends pair only cells of
// equal grade, so grade is constant along a matched pair.
func NewGraded(base *graded.GradedComplex, m matching.Matching) *graded.GradedComplex {
	mc := New(base.Complex(), m)
	return graded.New(mc, func(a chain.Cell) int {
		return base.Value(mc.include[a])
	})
}
