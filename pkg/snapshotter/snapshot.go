package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/netsnap/netsnap/pkg/collector"
	"github.com/netsnap/netsnap/pkg/defaults"
	"github.com/netsnap/netsnap/pkg/ftos"
	"github.com/netsnap/netsnap/pkg/serializer"
	"github.com/netsnap/netsnap/pkg/transport"
)

// DeviceSnapshotter captures state from a set of FTOS devices. Devices
// are queried in parallel up to Concurrency; on each device the
// collectors run sequentially because they share one CLI session.
//
// A failing device does not abort the run. Its partial snapshot is kept
// with the error recorded, and the remaining devices proceed.
type DeviceSnapshotter struct {
	// Version stamps the snapshot output.
	Version string

	// Targets are the devices to snapshot, in output order.
	Targets []Target

	// Concurrency bounds parallel device sessions. Zero means the
	// default.
	Concurrency int

	// Dial opens device sessions. If nil, SSH is used.
	Dial DialFunc

	// Factory builds the collector set for a driver. If nil, the full
	// default set is used.
	Factory func(d *ftos.Driver) collector.Factory

	// Serializer writes the snapshot. If nil, JSON goes to stdout.
	Serializer serializer.Serializer
}

// Measure snapshots all targets and serializes the result.
func (s *DeviceSnapshotter) Measure(ctx context.Context) error {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	if s.Serializer == nil {
		s.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}
	if err := s.Serializer.Serialize(ctx, snap); err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return nil
}

// Snapshot captures state from every target. It fails only when no
// target could be reached at all; per-device failures are recorded in
// the snapshot itself.
func (s *DeviceSnapshotter) Snapshot(ctx context.Context) (*Snapshot, error) {
	if len(s.Targets) == 0 {
		return nil, fmt.Errorf("no targets configured")
	}

	start := time.Now()
	defer func() {
		snapshotDuration.Observe(time.Since(start).Seconds())
	}()

	snap := &Snapshot{
		ID:      uuid.New().String(),
		Version: s.Version,
		TakenAt: start.UTC(),
		Devices: make([]*DeviceSnapshot, len(s.Targets)),
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaults.SnapshotConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, target := range s.Targets {
		i, target := i, target
		g.Go(func() error {
			snap.Devices[i] = s.snapshotDevice(gctx, target)
			return nil
		})
	}
	// goroutines never return errors; Wait only observes ctx cancellation
	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, dev := range snap.Devices {
		if dev.Error != "" {
			failed++
		}
	}
	if failed == len(snap.Devices) {
		snapshotTotal.WithLabelValues("error").Inc()
		return snap, fmt.Errorf("all %d targets failed", failed)
	}

	snapshotTotal.WithLabelValues("success").Inc()
	slog.Debug("snapshot complete",
		slog.String("id", snap.ID),
		slog.Int("devices", len(snap.Devices)),
		slog.Int("failed", failed))
	return snap, nil
}

func (s *DeviceSnapshotter) snapshotDevice(ctx context.Context, target Target) *DeviceSnapshot {
	name := target.Name
	if name == "" {
		name = target.SSH.Host
	}

	start := time.Now()
	dev := &DeviceSnapshot{
		Target:  name,
		TakenAt: start.UTC(),
		States:  make(map[string]any),
	}
	defer func() {
		dev.Duration = time.Since(start)
		deviceDuration.WithLabelValues(name).Observe(dev.Duration.Seconds())
		if dev.Error != "" {
			deviceFailures.WithLabelValues(name).Inc()
		}
	}()

	dial := s.Dial
	if dial == nil {
		dial = dialSSH
	}
	t, err := dial(ctx, target.SSH)
	if err != nil {
		slog.Error("failed to connect", slog.String("target", name), slog.String("error", err.Error()))
		dev.Error = fmt.Sprintf("connect: %v", err)
		return dev
	}
	defer t.Close()

	driver := ftos.New(t)
	factory := s.factory(driver)

	for _, c := range factory.All() {
		collectorStart := time.Now()
		state, err := c.Collect(ctx)
		collectorDuration.WithLabelValues(c.Name()).Observe(time.Since(collectorStart).Seconds())
		if err != nil {
			// the session is suspect after a failed command; keep what
			// we have and stop querying this device
			slog.Error("collector failed",
				slog.String("target", name),
				slog.String("collector", c.Name()),
				slog.String("error", err.Error()))
			dev.Error = fmt.Sprintf("%s: %v", c.Name(), err)
			return dev
		}
		dev.States[c.Name()] = state
	}

	slog.Debug("device snapshot complete",
		slog.String("target", name),
		slog.Int("states", len(dev.States)))
	return dev
}

func (s *DeviceSnapshotter) factory(d *ftos.Driver) collector.Factory {
	if s.Factory != nil {
		return s.Factory(d)
	}
	return collector.NewDriverFactory(d)
}

func dialSSH(ctx context.Context, cfg transport.SSHConfig) (transport.Transport, error) {
	return transport.DialSSH(ctx, cfg)
}
