// Package collector maps driver getters onto named state collectors.
//
// Each collector captures one category of device state (facts,
// interfaces, routing, hardware health) and returns it as a typed
// value keyed by the collector name. The Factory binds a full set of
// collectors to one open device session.
package collector

import "context"

// Collector captures one category of device state.
type Collector interface {
	// Name is the state key the collected data is stored under.
	Name() string

	// Collect queries the device and returns the typed state value.
	Collect(ctx context.Context) (any, error)
}
