package textfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arpOutput = `Protocol    Address         Age(min)  Hardware Address    Interface  VLAN   CPU
-------------------------------------------------------------------------------
Internet    10.10.10.1      5         00:01:e8:8b:dc:2f   Te 0/1     -      CP
Internet    10.10.10.2      -         00:01:e8:8b:dc:30   Te 0/2     -      CP
`

func TestExtract_ARP(t *testing.T) {
	ex := New()

	records, err := ex.Extract(arpOutput, "show_arp")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "10.10.10.1", records[0]["ip"])
	assert.Equal(t, "5", records[0]["age"])
	assert.Equal(t, "00:01:e8:8b:dc:2f", records[0]["mac"])
	assert.Equal(t, "Te 0/1", records[0]["interface"])

	assert.Equal(t, "-", records[1]["age"])
}

const lldpOutput = `========================================================================
 Local Interface Te 0/1 has 1 neighbor
  Total Frames Out: 1747146
  The neighbors are given below:
  -----------------------------------------------------------------------

    Remote Chassis ID Subtype: Mac address (4)
    Remote Chassis ID:  00:01:e8:8b:dc:40
    Remote Port Subtype:  Interface name (5)
    Remote Port ID:  00:01:e8:8b:dc:41
    Remote Port Description:  TenGigabitEthernet 0/9
    Remote System Name:  sw-core-1
    Remote System Desc:  Dell Networking OS
    Remote System Capabilities:  Bridge Router
    Remote System Capabilities Enabled: Bridge Router
 ---------------------------------------------------------------------------

========================================================================
 Local Interface Te 0/2 has 1 neighbor
  The neighbors are given below:
  -----------------------------------------------------------------------

    Remote Chassis ID:  00:01:e8:8b:dc:50
    Remote Port ID:  00:01:e8:8b:dc:51
    Remote Port Description:  TenGigabitEthernet 0/7
    Remote System Name:  sw-core-2
    Remote System Capabilities:  Bridge Router
    Remote System Capabilities Enabled: Bridge
 ---------------------------------------------------------------------------
`

func TestExtract_LLDPFiltersEmptyRecords(t *testing.T) {
	ex := New()

	records, err := ex.Extract(lldpOutput, "show_lldp_neighbors_detail")
	require.NoError(t, err)

	// the template records a spurious row at each interface header plus
	// one at each trailing separator; only the two real neighbors must
	// survive the empty-record filter
	require.Len(t, records, 2)

	assert.Equal(t, "Te 0/1", records[0]["local_interface"])
	assert.Equal(t, "sw-core-1", records[0]["remote_system_name"])
	assert.Equal(t, "Bridge Router", records[0]["remote_system_capab"])

	assert.Equal(t, "Te 0/2", records[1]["local_interface"])
	assert.Equal(t, "Bridge", records[1]["remote_system_enable_capab"])
}

func TestExtract_UnknownTemplate(t *testing.T) {
	ex := New()
	_, err := ex.Extract("anything", "no_such_template")
	assert.Error(t, err)
}

func TestExtract_OrderPreserved(t *testing.T) {
	ex := New()

	// repeated runs over the same input must yield identical ordering
	first, err := ex.Extract(arpOutput, "show_arp")
	require.NoError(t, err)
	second, err := ex.Extract(arpOutput, "show_arp")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFilldownFields(t *testing.T) {
	src := "Value Filldown LOCAL_INTERFACE (\\S+)\nValue REMOTE_PORT (\\S+)\n\nStart\n ^x\n"
	fields := filldownFields(src)
	assert.True(t, fields["local_interface"])
	assert.False(t, fields["remote_port"])
}
