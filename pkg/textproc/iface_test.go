package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalInterfaceName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Te 0/1", "TenGigabitEthernet 0/1"},
		{"Te0/2", "TenGigabitEthernet 0/2"},
		{"fortyGig 0/33", "FortyGigabitEthernet 0/33"},
		{"fortyGig0/37", "FortyGigabitEthernet 0/37"},
		{"TenGigabitEthernet1/1", "TenGigabitEthernet 1/1"},
		{"TenGigabitEthernet 1/1", "TenGigabitEthernet 1/1"},
		{"Gi 1/2", "GigabitEthernet1/2"},
		{"Po 1", "Port-channel1"},
		{"Vl 100", "Vlan100"},
		{"Ma 0/0", "ManagementEthernet0/0"},
		{"Loopback 0", "Loopback0"},
		{"Unknown 1/2", "Unknown 1/2"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalInterfaceName(tt.in), "input %q", tt.in)
	}
}

func TestCanonicalInterfaceName_Idempotent(t *testing.T) {
	inputs := []string{
		"Te 0/1", "fortyGig0/37", "TenGigabitEthernet 1/1", "Po 1",
		"Vlan100", "ManagementEthernet0/0", "Unknown 1/2", "",
	}
	for _, in := range inputs {
		once := CanonicalInterfaceName(in)
		twice := CanonicalInterfaceName(once)
		assert.Equal(t, once, twice, "canonicalization must be idempotent for %q", in)
	}
}

func TestSplitInterface(t *testing.T) {
	head, tail := SplitInterface("Te 0/1")
	assert.Equal(t, "Te", head)
	assert.Equal(t, "0/1", tail)

	head, tail = SplitInterface("Port-channel128")
	assert.Equal(t, "Port-channel", head)
	assert.Equal(t, "128", tail)

	head, tail = SplitInterface("Vlan")
	assert.Equal(t, "Vlan", head)
	assert.Equal(t, "", tail)
}
