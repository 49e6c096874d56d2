// Package complex declares the capability interfaces that any cell complex
// must satisfy to be reduced by the matching, morse and reduce packages.
//
// Concrete complexes (simplicial, cubical, or otherwise) are deliberately
// out of scope here: this package is a contract, consumed polymorphically,
// never implemented for production use by this module.
package complex
