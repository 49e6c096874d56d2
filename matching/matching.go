package matching

import (
	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/complex"
	"github.com/TravisCasey/pyCHomP2/graded"
)

// Pair associates an old (base-complex) critical cell id with its new id
// in the reduced indexing.
type Pair struct {
	Old, New chain.Cell
}

// Matching gives, for each cell, its mate (or itself, if critical) and a
// priority used to sequence flow.
type Matching interface {
	// Mate returns x's mate, or x itself if x is critical.
	Mate(x chain.Cell) chain.Cell
	// Priority returns the total order used to sequence queens during
	// flow, consistent with an acyclic partial matching.
	Priority(x chain.Cell) int
	// CriticalCells returns begin (the first critical-cell id per
	// dimension in the new indexing, length Dimension()+2) and reindex
	// (critical cells in ascending new-id order, contiguous by
	// dimension).
	CriticalCells() (begin []chain.Cell, reindex []Pair)
}

// Compute builds a Matching for base: a CubicalMatching if base.Complex()
// implements complex.CubicalComplex, otherwise a GenericMatching.
func Compute(base *graded.GradedComplex, opts ...Option) (Matching, error) {
	if _, ok := base.Complex().(complex.CubicalComplex); ok {
		return NewCubicalMatching(base, opts...)
	}
	return NewGenericMatching(base, opts...)
}
