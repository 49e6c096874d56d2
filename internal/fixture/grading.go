package fixture

import (
	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/complex"
	"github.com/TravisCasey/pyCHomP2/graded"
)

// WithGrading wraps c in a graded.GradedComplex using value.
func WithGrading(c complex.Complex, value func(chain.Cell) int) *graded.GradedComplex {
	return graded.New(c, value)
}

// Trivial wraps c with the all-zero grading.
func Trivial(c complex.Complex) *graded.GradedComplex {
	return WithGrading(c, func(chain.Cell) int { return 0 })
}

// SplitSquareGrading returns the S5/S6 grading: vertices 0,1,2 and edges
// 4,5,8 and face 9 (the 0-1-2 triangle) are grade 0; everything else
// (vertex 3, edges 6,7, face 10) is grade 1.
func SplitSquareGrading() func(chain.Cell) int {
	gradeZero := map[chain.Cell]bool{
		0: true, 1: true, 2: true,
		4: true, 5: true, 8: true,
		9: true,
	}
	return func(x chain.Cell) int {
		if gradeZero[x] {
			return 0
		}
		return 1
	}
}
