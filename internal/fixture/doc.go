// Package fixture builds small, explicit complex.Complex and
// complex.CubicalComplex implementations for use in this module's own
// tests: explicit GF(2) incidence tables and named small-topology
// constructors such as Path/Cycle. Concrete complexes are out of scope as
// production API, but a reduction engine cannot be tested without
// something to reduce.
package fixture
