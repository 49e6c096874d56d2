// Package acyclic checks whether a directed graph over chain.Cell nodes
// contains a cycle, using a three-color depth-first search. It exists to
// let this module's own tests confirm that a matching's flow direction is
// acyclic, never for use as a validated part of production matching
// construction.
package acyclic
