// Package ftos implements the Dell Force10 FTOS driver: it issues show
// commands over a transport and normalizes the loosely structured
// output into the netmodel schema.
//
// Parsing is lenient and deterministic. Lines that match no expected
// pattern are skipped, failed numeric casts resolve to each field's
// documented fallback, and only connection-level transport errors abort
// a getter. Device-reported errors (ping, traceroute) come back as
// structured results, not Go errors.
package ftos
