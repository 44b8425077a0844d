// Package textfsm is the table-extraction boundary of the driver. It
// wraps a TextFSM engine and the embedded per-command templates, turning
// raw CLI output into ordered flat records with named fields, fill-down
// support, and spurious empty-record filtering.
//
// The template language itself is an external capability; this package
// only selects templates, runs the engine, and cleans its output.
package textfsm
