package ftos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsnap/netsnap/pkg/netmodel"
)

const showNTPAssociationsOutput = `    remote           ref clock         st   when   poll  reach   delay   offset     disp
==========================================================================================
*172.16.1.1      129.6.15.28       2     47     64   377   0.0010   0.001432   0.0545
 172.16.1.2      0.0.0.0          16      5   1024     0   0.0000   0.000000   3.9648
`

func TestNTPPeers(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"show ntp associations": showNTPAssociationsOutput,
	})

	peers, err := d.NTPPeers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]netmodel.NTPPeer{
		"172.16.1.1": {},
		"172.16.1.2": {},
	}, peers)

	servers, err := d.NTPServers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, peers, servers)
}

func TestNTPStats(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"show ntp associations": showNTPAssociationsOutput,
	})

	stats, err := d.NTPStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	synced := stats[0]
	assert.Equal(t, "172.16.1.1", synced.Remote)
	assert.Equal(t, "129.6.15.28", synced.ReferenceID)
	assert.True(t, synced.Synchronized)
	assert.Equal(t, "*", synced.Type)
	assert.Equal(t, int64(2), synced.Stratum)
	assert.Equal(t, "47", synced.When)
	assert.Equal(t, int64(64), synced.HostPoll)
	assert.Equal(t, int64(377), synced.Reachability)
	assert.InDelta(t, 0.0010, synced.Delay, 1e-9)
	assert.InDelta(t, 0.001432, synced.Offset, 1e-9)
	assert.InDelta(t, 0.0545, synced.Jitter, 1e-9)

	idle := stats[1]
	assert.False(t, idle.Synchronized)
	assert.Empty(t, idle.Type)
	assert.Equal(t, int64(16), idle.Stratum)
}
