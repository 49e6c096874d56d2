// Package matching computes discrete Morse matchings on graded complexes.
//
// A Matching pairs cells of adjacent dimension ("queens" with "kings") such
// that the modified Hasse digraph obtained by flipping matched edges is
// acyclic; unpaired cells are critical. Compute dispatches to one of two
// backends depending on whether the underlying complex exposes
// complex.CubicalComplex:
//
//   - GenericMatching runs a coreduction algorithm that works on any
//     complex.Complex: cells with a single unmatched boundary neighbor are
//     repeatedly paired off with that neighbor, and cells left with no
//     boundary become critical.
//   - CubicalMatching exploits the product structure of a cubical complex,
//     proposing mates along each axis in turn via a memoized recursive
//     search.
//
// Both backends assign a Priority that package morse's flow algorithm
// relies on to terminate: GenericMatching's follows the order cells were
// processed, CubicalMatching's is TypeSize() - x%TypeSize().
package matching
