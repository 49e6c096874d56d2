package reduce

import (
	"github.com/TravisCasey/pyCHomP2/complex"
	"github.com/TravisCasey/pyCHomP2/graded"
	"github.com/TravisCasey/pyCHomP2/matching"
	"github.com/TravisCasey/pyCHomP2/morse"
)

// Homology reduces base under the trivial grading until no further
// matching can shrink it, leaving a complex whose cells correspond to
// homology generators. matchDim caps matching at that dimension (as
// matching.WithMatchDim does); pass -1 for the full complex.
func Homology(base complex.Complex, matchDim int) (complex.Complex, error) {
	var opts []matching.Option
	if matchDim >= 0 {
		opts = append(opts, matching.WithMatchDim(matchDim))
	}

	current := base
	for {
		next, err := morse.Reduce(current, opts...)
		if err != nil {
			return nil, err
		}
		if next.Size() == current.Size() {
			return current, nil
		}
		current = next
	}
}

// ConnectionMatrix reduces base to a fixed point, carrying base's grading
// at every step. The returned graded complex, with its full boundary, is
// the connection matrix.
func ConnectionMatrix(base *graded.GradedComplex, opts ...matching.Option) (*graded.GradedComplex, error) {
	current := base
	for {
		m, err := matching.Compute(current, opts...)
		if err != nil {
			return nil, err
		}
		next := morse.NewGraded(current, m)
		if next.Complex().Size() == current.Complex().Size() {
			return current, nil
		}
		current = next
	}
}

// ConnectionMatrixTower runs ConnectionMatrix's loop but keeps every
// intermediate graded complex, starting with base itself, ending with the
// fixed point.
func ConnectionMatrixTower(base *graded.GradedComplex, opts ...matching.Option) ([]*graded.GradedComplex, error) {
	tower := []*graded.GradedComplex{base}
	current := base
	for {
		m, err := matching.Compute(current, opts...)
		if err != nil {
			return nil, err
		}
		next := morse.NewGraded(current, m)
		if next.Complex().Size() == current.Complex().Size() {
			return tower, nil
		}
		tower = append(tower, next)
		current = next
	}
}
