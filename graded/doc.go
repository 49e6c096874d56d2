// Package graded wraps a complex.Complex with a cell-wise integer grading.
// A valid grading must satisfy the closure property: every cell's grade
// is at least that of its boundary cells. Closure is not validated
// eagerly; it is checked lazily by callers that walk a graded boundary
// (see package matching), the only place that needs the property to hold.
package graded
