package snapshotter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/serializer"
	"github.com/netsnap/netsnap/pkg/transport"
)

func scriptDial(outputs map[string]string) DialFunc {
	return func(ctx context.Context, cfg transport.SSHConfig) (transport.Transport, error) {
		return transport.NewScript(outputs), nil
	}
}

func TestSnapshot(t *testing.T) {
	s := &DeviceSnapshotter{
		Version: "test",
		Targets: []Target{
			{Name: "core-sw1", SSH: transport.SSHConfig{Host: "10.0.0.1"}},
			{Name: "core-sw2", SSH: transport.SSHConfig{Host: "10.0.0.2"}},
		},
		Dial: scriptDial(map[string]string{
			"show system stack-unit 0": "Product Name              : S4048-ON\n",
		}),
	}

	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(snap.ID)
	assert.NoError(t, err)
	assert.Equal(t, "test", snap.Version)
	require.Len(t, snap.Devices, 2)

	// target order is preserved
	assert.Equal(t, "core-sw1", snap.Devices[0].Target)
	assert.Equal(t, "core-sw2", snap.Devices[1].Target)

	for _, dev := range snap.Devices {
		assert.Empty(t, dev.Error)
		require.Len(t, dev.States, 13)
		facts, ok := dev.States["facts"].(netmodel.Facts)
		require.True(t, ok)
		assert.Equal(t, "S4048-ON", facts.Model)
	}
}

func TestSnapshotPartialFailure(t *testing.T) {
	s := &DeviceSnapshotter{
		Targets: []Target{
			{Name: "up", SSH: transport.SSHConfig{Host: "10.0.0.1"}},
			{Name: "down", SSH: transport.SSHConfig{Host: "10.0.0.2"}},
		},
		Dial: func(ctx context.Context, cfg transport.SSHConfig) (transport.Transport, error) {
			if cfg.Host == "10.0.0.2" {
				return nil, fmt.Errorf("no route to host")
			}
			return transport.NewScript(nil), nil
		},
	}

	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Empty(t, snap.Devices[0].Error)
	assert.Contains(t, snap.Devices[1].Error, "connect")
	assert.Empty(t, snap.Devices[1].States)
}

func TestSnapshotAllTargetsFailed(t *testing.T) {
	s := &DeviceSnapshotter{
		Targets: []Target{{Name: "down", SSH: transport.SSHConfig{Host: "10.0.0.2"}}},
		Dial: func(ctx context.Context, cfg transport.SSHConfig) (transport.Transport, error) {
			return nil, fmt.Errorf("no route to host")
		},
	}

	snap, err := s.Snapshot(context.Background())
	require.Error(t, err)
	require.NotNil(t, snap)
	assert.NotEmpty(t, snap.Devices[0].Error)
}

func TestSnapshotCollectorFailureKeepsPartialState(t *testing.T) {
	s := &DeviceSnapshotter{
		Targets: []Target{{Name: "flaky", SSH: transport.SSHConfig{Host: "10.0.0.1"}}},
		Dial: func(ctx context.Context, cfg transport.SSHConfig) (transport.Transport, error) {
			script := transport.NewScript(nil)
			script.Err = fmt.Errorf("broken pipe")
			return script, nil
		},
	}

	snap, err := s.Snapshot(context.Background())
	require.Error(t, err) // only target failed
	dev := snap.Devices[0]
	assert.Contains(t, dev.Error, "facts")
	assert.Empty(t, dev.States)
}

func TestSnapshotNoTargets(t *testing.T) {
	s := &DeviceSnapshotter{}
	_, err := s.Snapshot(context.Background())
	assert.Error(t, err)
}

func TestMeasureSerializes(t *testing.T) {
	var buf bytes.Buffer
	s := &DeviceSnapshotter{
		Version:    "test",
		Targets:    []Target{{Name: "core-sw1", SSH: transport.SSHConfig{Host: "10.0.0.1"}}},
		Dial:       scriptDial(nil),
		Serializer: serializer.NewWriter(serializer.FormatJSON, &buf),
	}

	require.NoError(t, s.Measure(context.Background()))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "test", out["version"])
}
