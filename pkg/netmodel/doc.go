// Package netmodel defines the vendor-neutral network state schema
// produced by device drivers.
//
// Every structure in this package is a plain value type with JSON and
// YAML tags so results can be serialized without further mapping. Absent
// numeric data is always represented by the sentinel constants
// SentinelInt / SentinelFloat, never by a null or omitted field, so the
// output shape stays uniform across devices and firmware revisions.
package netmodel
