package ftos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsnap/netsnap/pkg/netmodel"
)

const showARPOutput = `Protocol    Address         Age(min)  Hardware Address    Interface  VLAN   CPU
--------------------------------------------------------------------------------
Internet    10.1.1.1        139       00:01:e8:8b:dc:2f   Te 0/1     Vl 100  CP
Internet    10.1.1.2        -         00:01:e8:8b:dc:30   Te 0/2     Vl 100  CP
`

func TestARPTable(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"show arp": showARPOutput,
	})

	table, err := d.ARPTable(context.Background())
	require.NoError(t, err)
	require.Len(t, table, 2)

	assert.Equal(t, netmodel.ARPEntry{
		Interface: "Te 0/1",
		IP:        "10.1.1.1",
		MAC:       "00:01:E8:8B:DC:2F",
		Age:       139 * 60,
	}, table[0])

	// a dash in the age column is an incomplete entry
	assert.Equal(t, float64(-1), table[1].Age)
	assert.Equal(t, "10.1.1.2", table[1].IP)
}

const showMACTableOutput = `Codes: *N - VLT Peer Synced MAC
VlanId     Mac Address           Type          Interface     State
 100       00:01:e8:8b:dc:2f     Dynamic       Te 0/1        Active
 200       00:01:e8:8b:dc:30     Static        Po 1          Active
 300       00:01:e8:8b:dc:31     Dynamic       Te 0/4        Inactive
`

func TestMACAddressTable(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"show mac-address-table": showMACTableOutput,
	})

	table, err := d.MACAddressTable(context.Background())
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.Equal(t, netmodel.MACTableEntry{
		MAC:       "00:01:E8:8B:DC:2F",
		Interface: "TenGigabitEthernet 0/1",
		VLAN:      100,
		Static:    false,
		Active:    true,
		Moves:     -1,
		LastMove:  -1,
	}, table[0])

	assert.True(t, table[1].Static)
	assert.Equal(t, "Port-channel1", table[1].Interface)
	assert.False(t, table[2].Active)
}
