package ftos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showInterfacesOutput = `TenGigabitEthernet 0/1 is up, line protocol is up
Description: uplink to core1
Hardware is DellEMCEth, address is 00:01:e8:8b:dc:2f
LineSpeed 10000 Mbit
Input Statistics:
     1026438882 packets, 143699166024 bytes
     4365 Multicasts, 2178 Broadcasts, 1026432339 Unicasts
     0 CRC, 0 overrun, 17 discarded
Output Statistics:
     960405630 packets, 474596901797 bytes
     13925 Multicasts, 7529 Broadcasts, 960384176 Unicasts
     0 throttles, 42 discarded
Time since last interface status change: 20w4d21h

ManagementEthernet 0/0 is up, line protocol is down
Hardware is DellEMCEth, address is 00:01:e8:8b:dc:31
LineSpeed auto
Time since last interface status change: 01:12:33
`

func TestInterfaces(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"show interfaces": showInterfacesOutput,
	})

	interfaces, err := d.Interfaces(context.Background())
	require.NoError(t, err)
	require.Len(t, interfaces, 2)

	uplink := interfaces["TenGigabitEthernet 0/1"]
	assert.True(t, uplink.IsEnabled)
	assert.True(t, uplink.IsUp)
	assert.Equal(t, "uplink to core1", uplink.Description)
	assert.Equal(t, "00:01:E8:8B:DC:2F", uplink.MACAddress)
	assert.Equal(t, int64(10000), uplink.Speed)
	// 20 weeks, 4 days, 21 hours.
	assert.Equal(t, float64(12517200), uplink.LastFlapped)

	mgmt := interfaces["ManagementEthernet0/0"]
	assert.True(t, mgmt.IsEnabled)
	assert.False(t, mgmt.IsUp)
	assert.Empty(t, mgmt.Description)
	assert.Zero(t, mgmt.Speed)
	assert.Equal(t, float64(1*3600+12*60+33), mgmt.LastFlapped)
}

func TestInterfacesCounters(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"show interfaces": showInterfacesOutput,
	})

	counters, err := d.InterfacesCounters(context.Background())
	require.NoError(t, err)
	require.Len(t, counters, 2)

	uplink := counters["TenGigabitEthernet 0/1"]
	assert.Equal(t, int64(143699166024), uplink["rx_octets"])
	assert.Equal(t, int64(1026432339), uplink["rx_unicast_packets"])
	assert.Equal(t, int64(4365), uplink["rx_multicast_packets"])
	assert.Equal(t, int64(2178), uplink["rx_broadcast_packets"])
	assert.Equal(t, int64(17), uplink["rx_discards"])
	assert.Equal(t, int64(474596901797), uplink["tx_octets"])
	assert.Equal(t, int64(960384176), uplink["tx_unicast_packets"])
	assert.Equal(t, int64(13925), uplink["tx_multicast_packets"])
	assert.Equal(t, int64(7529), uplink["tx_broadcast_packets"])
	assert.Equal(t, int64(42), uplink["tx_discards"])
	assert.Zero(t, uplink["rx_errors"])
	assert.Zero(t, uplink["tx_errors"])

	// No stats blocks in the output, so the full key set reads zero.
	mgmt := counters["ManagementEthernet0/0"]
	require.Len(t, mgmt, 12)
	for key, value := range mgmt {
		assert.Zero(t, value, key)
	}
}

func TestParseLineSpeed(t *testing.T) {
	tests := []struct {
		raw   string
		speed int64
		ok    bool
	}{
		{"10000 Mbit", 10000, true},
		{"40 Gbit", 40000, true},
		{"auto", 0, false},
		{"", 0, false},
		{"fast Mbit", 0, false},
	}

	for _, tc := range tests {
		speed, ok := parseLineSpeed(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.speed, speed, tc.raw)
	}
}
