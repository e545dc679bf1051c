// Package domain contains the core values and errors for groupsum.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure (files, flags, logging) and holds only the rules a payload
// must obey.
//
// # Values
//
//   - [Group]: a run of integer lines delimited by blank lines, with its sum
//
// # Errors
//
// Every failure the computation can produce is declared here and can be
// checked with errors.Is. A malformed line is reported as a [*ParseError],
// which also matches [ErrParse].
package domain
