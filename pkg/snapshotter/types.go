package snapshotter

import (
	"context"
	"time"

	"github.com/netsnap/netsnap/pkg/transport"
)

// Snapshotter captures device state snapshots and serializes the
// result.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// Target is one device to snapshot.
type Target struct {
	// Name identifies the device in the snapshot output. Falls back to
	// the SSH host when empty.
	Name string

	SSH transport.SSHConfig
}

// DialFunc opens a device session. Injectable for tests.
type DialFunc func(ctx context.Context, cfg transport.SSHConfig) (transport.Transport, error)

// DeviceSnapshot holds the state collected from one device. When a
// collector fails, Error names what went wrong and States keeps
// whatever was collected before the failure.
type DeviceSnapshot struct {
	Target   string         `json:"target" yaml:"target"`
	TakenAt  time.Time      `json:"taken_at" yaml:"taken_at"`
	Duration time.Duration  `json:"duration" yaml:"duration"`
	Error    string         `json:"error,omitempty" yaml:"error,omitempty"`
	States   map[string]any `json:"states" yaml:"states"`
}

// Snapshot is a full capture run across all targets. Devices appear in
// target order regardless of which finished first.
type Snapshot struct {
	ID      string            `json:"id" yaml:"id"`
	Version string            `json:"version" yaml:"version"`
	TakenAt time.Time         `json:"taken_at" yaml:"taken_at"`
	Devices []*DeviceSnapshot `json:"devices" yaml:"devices"`
}
