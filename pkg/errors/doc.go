// Package errors provides structured error handling for netsnap
// components.
//
// Errors carry an ErrorCode for programmatic handling. The driver uses
// two codes with specific contracts: ErrCodeTransport aborts the whole
// requested operation with no partial result, while ErrCodeDeviceError
// never surfaces as a Go error at all; it is folded into the structured
// result of the operation (ping and traceroute). Parse misses and type
// coercion failures are not errors; they degrade to documented sentinel
// values.
package errors
