// Package defaults centralizes the timeout and pacing constants used
// across the module so they are tuned in one place.
package defaults
