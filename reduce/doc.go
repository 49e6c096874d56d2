// Package reduce iterates a matching to a fixed point: repeated Morse
// reduction until the complex stops shrinking, which computes homology
// generators (as critical cells) and, for a graded complex, a connection
// matrix: the graded fixed point together with its boundary.
package reduce
