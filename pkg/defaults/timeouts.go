package defaults

import "time"

// Device session timeouts and pacing.
const (
	// SSHDialTimeout is the timeout for establishing a device session.
	SSHDialTimeout = 15 * time.Second

	// CommandTimeout is the per-command timeout on an open session.
	// FTOS can take several seconds to page out a full running-config.
	CommandTimeout = 30 * time.Second

	// CommandInterval is the minimum spacing between commands on one
	// session. Some FTOS versions drop input when commands arrive
	// back to back.
	CommandInterval = 100 * time.Millisecond
)

// Snapshot orchestration.
const (
	// SnapshotTimeout bounds a full snapshot run across all targets.
	SnapshotTimeout = 5 * time.Minute

	// SnapshotConcurrency is the default number of devices queried in
	// parallel.
	SnapshotConcurrency = 4
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Snapshot requests talk to real devices, so this is generous.
	ServerWriteTimeout = 120 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
