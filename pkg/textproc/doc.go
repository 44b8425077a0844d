// Package textproc holds the pure text micro-parsers of the FTOS
// pipeline: duration grammars, canonical interface naming, per-field
// type coercion with sentinel fallbacks, address normalization, and
// LLDP capability mapping.
//
// Everything in this package is deterministic and side-effect free.
// Unparsable input never raises; it degrades to the fallback the caller
// declares, so heterogeneous device output yields best-effort partial
// data instead of failures.
package textproc
