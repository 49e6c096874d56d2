// errors.go — sentinel errors for the matching package.
//
// Callers branch on these with errors.Is; the sentinels are never wrapped
// with formatted text at the point of definition, only at the point of
// return (via matchingErrorf), matching the convention used elsewhere in
// this module.
package matching

import (
	"errors"
	"fmt"
)

var (
	// ErrConstructionMismatch indicates CubicalMatching was constructed
	// against a complex that does not implement complex.CubicalComplex.
	ErrConstructionMismatch = errors.New("matching: cubical matching requires a CubicalComplex")

	// ErrGradingClosureViolated indicates a boundary neighbor has
	// strictly greater grade than its cell: the caller-supplied grading
	// is inconsistent with the closure property.
	ErrGradingClosureViolated = errors.New("matching: grading closure property violated")

	// ErrInvariantViolated indicates internal bookkeeping broke: a
	// coreducible cell did not have exactly one unmatched boundary
	// neighbor when popped.
	ErrInvariantViolated = errors.New("matching: coreduction invariant violated")
)

// matchingErrorf wraps err with method context, preserving it for errors.Is.
func matchingErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
