package graded

import (
	"github.com/TravisCasey/pyCHomP2/chain"
	"github.com/TravisCasey/pyCHomP2/complex"
)

// GradedComplex wraps a complex.Complex with a total grading function.
// Instances are immutable after construction.
type GradedComplex struct {
	complex complex.Complex
	value   func(chain.Cell) int
}

// New returns a GradedComplex over c using value as the grading function.
func New(c complex.Complex, value func(chain.Cell) int) *GradedComplex {
	return &GradedComplex{complex: c, value: value}
}

// Complex returns the wrapped complex.
func (g *GradedComplex) Complex() complex.Complex {
	return g.complex
}

// Value returns the grade of cell x.
func (g *GradedComplex) Value(x chain.Cell) int {
	return g.value(x)
}
