// Package morse builds the reduced complex a matching.Matching induces on
// a base complex.Complex, and lifts that reduction through a grading.
//
// A MorseComplex is itself a complex.Complex: its cells are the base
// complex's critical cells, reindexed to one contiguous range starting at 0
// and grouped by ascending dimension, with boundary and coboundary computed once at
// construction via the matching's flow algorithm. Include/Project map
// chains between the base and reduced indexings; Lift/Lower and their
// duals Colift/Colower move chains across the reduction while preserving
// boundary, using Flow/Coflow to cancel queens along the matching without
// cycling.
package morse
