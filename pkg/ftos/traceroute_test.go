package ftos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tracerouteOutput = `Type Ctrl-C to abort.

-----------------------------------------------------------------------------
              Tracing the route to 10.9.9.9, 30 hops max, 40 byte packets
-----------------------------------------------------------------------------
 TTL  Hostname       Probe1        Probe2        Probe3
  1   10.1.1.254     0.977 ms      0.884 ms      0.869 ms
  2   10.2.0.1       1.957 ms 1.934 ms
      10.2.0.2       1.945 ms
  3   10.9.9.9       2.931 ms      2.923 ms      2.918 ms
`

func TestTraceroute(t *testing.T) {
	d, script := testDriver(map[string]string{
		"traceroute 10.9.9.9": tracerouteOutput,
	})

	result, err := d.Traceroute(context.Background(), "10.9.9.9", TracerouteOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Error)
	require.Len(t, result.Success, 3)

	first := result.Success[1]
	require.Len(t, first.Probes, 3)
	assert.Equal(t, 0.977, first.Probes[1].RTT)
	assert.Equal(t, "10.1.1.254", first.Probes[1].IPAddress)
	assert.Equal(t, "10.1.1.254", first.Probes[1].HostName)
	assert.Equal(t, 0.869, first.Probes[3].RTT)

	// hop 2 answered from two addresses; the continuation row keeps
	// counting probes within the same TTL
	second := result.Success[2]
	require.Len(t, second.Probes, 3)
	assert.Equal(t, "10.2.0.1", second.Probes[1].IPAddress)
	assert.Equal(t, "10.2.0.1", second.Probes[2].IPAddress)
	assert.Equal(t, "10.2.0.2", second.Probes[3].IPAddress)
	assert.Equal(t, 1.945, second.Probes[3].RTT)

	assert.Equal(t, []string{"traceroute 10.9.9.9"}, script.Sent())
}

func TestTracerouteVRF(t *testing.T) {
	d, script := testDriver(map[string]string{
		"traceroute vrf mgmt 10.9.9.9": tracerouteOutput,
	})

	_, err := d.Traceroute(context.Background(), "10.9.9.9", TracerouteOptions{VRF: "mgmt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"traceroute vrf mgmt 10.9.9.9"}, script.Sent())
}

func TestTracerouteDeviceError(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"traceroute 10.9.9.9": "% Error: Network is unreachable\n",
	})

	result, err := d.Traceroute(context.Background(), "10.9.9.9", TracerouteOptions{})
	require.NoError(t, err)
	assert.Nil(t, result.Success)
	assert.Equal(t, "Network is unreachable", result.Error)
}
