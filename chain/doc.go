// Package chain implements the minimal chain-complex coefficient algebra
// used throughout pyCHomP2: chains over the two-element field, modelled as
// sets of cell identifiers under symmetric-difference addition.
package chain
