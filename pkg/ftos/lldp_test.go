package ftos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netsnap/netsnap/pkg/netmodel"
)

const showLLDPDetailOutput = `========================================================================
 Local Interface Te 0/1 has 1 neighbor
   Total Frames Out: 1747774
   Total Frames In: 1747488
   The neighbors are given below:
   -----------------------------------------------------------------------

     Remote Chassis ID Subtype: Mac address (4)
     Remote Chassis ID:  00:01:e8:8b:dc:40
     Remote Port Subtype:  Mac address (3)
     Remote Port ID:  00:01:e8:8b:dc:42
     Remote Port Description:  TenGigabitEthernet 0/3
     Remote System Name:  core2
     Remote System Desc:  Dell Real Time Operating System Software
     Remote System Capabilities:  Repeater Bridge Router
     Remote System Capabilities Enabled:  Bridge Router
     Remote Max Frame Size:  0
    ---------------------------------------------------------------------

 Local Interface Te 0/2 has 1 neighbor
   The neighbors are given below:
   -----------------------------------------------------------------------

     Remote Chassis ID:  00:01:e8:8b:dc:50
     Remote Port ID:  00:01:e8:8b:dc:51
     Remote System Name:  access1
     Remote System Capabilities:  Bridge
    ---------------------------------------------------------------------
`

func TestLLDPNeighborsDetail(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"show lldp neighbors detail": showLLDPDetailOutput,
	})

	detail, err := d.LLDPNeighborsDetail(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, detail, 2)

	core2 := detail["TenGigabitEthernet 0/1"]
	require.Len(t, core2, 1)
	assert.Equal(t, netmodel.LLDPNeighborDetail{
		ParentInterface:          "",
		RemoteChassisID:          "00:01:E8:8B:DC:40",
		RemotePort:               "00:01:E8:8B:DC:42",
		RemotePortDescription:    "TenGigabitEthernet 0/3",
		RemoteSystemName:         "core2",
		RemoteSystemDescription:  "Dell Real Time Operating System Software",
		RemoteSystemCapab:        []string{"repeater", "bridge", "router"},
		RemoteSystemEnabledCapab: []string{"bridge", "router"},
	}, core2[0])

	access1 := detail["TenGigabitEthernet 0/2"]
	require.Len(t, access1, 1)
	assert.Equal(t, "access1", access1[0].RemoteSystemName)
	assert.Equal(t, []string{"bridge"}, access1[0].RemoteSystemCapab)
	assert.Empty(t, access1[0].RemoteSystemEnabledCapab)
}

func TestLLDPNeighborsDetailScoped(t *testing.T) {
	d, script := testDriver(map[string]string{
		"show lldp neighbors interface Te 0/1 detail": showLLDPDetailOutput,
	})

	_, err := d.LLDPNeighborsDetail(context.Background(), "Te 0/1")
	require.NoError(t, err)
	assert.Equal(t, []string{"show lldp neighbors interface Te 0/1 detail"}, script.Sent())
}

func TestLLDPNeighbors(t *testing.T) {
	d, _ := testDriver(map[string]string{
		"show lldp neighbors detail": showLLDPDetailOutput,
	})

	neighbors, err := d.LLDPNeighbors(context.Background())
	require.NoError(t, err)
	require.Len(t, neighbors, 2)

	assert.Equal(t, []netmodel.LLDPNeighbor{{
		Hostname: "core2",
		Port:     "TenGigabitEthernet 0/3",
	}}, neighbors["TenGigabitEthernet 0/1"])

	// the summary port column is the port description, which access1
	// never advertised
	assert.Equal(t, []netmodel.LLDPNeighbor{{
		Hostname: "access1",
		Port:     "",
	}}, neighbors["TenGigabitEthernet 0/2"])
}
