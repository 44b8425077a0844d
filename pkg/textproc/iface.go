package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// interfaceNames expands abbreviated interface type names to their
// full, vendor-consistent form. Keys are lower-cased for lookup; full
// names map to themselves so canonicalization is idempotent.
var interfaceNames = map[string]string{
	"eth":                  "Ethernet",
	"ethernet":             "Ethernet",
	"fa":                   "FastEthernet",
	"fastethernet":         "FastEthernet",
	"gi":                   "GigabitEthernet",
	"gig":                  "GigabitEthernet",
	"gigabitethernet":      "GigabitEthernet",
	"te":                   "TenGigabitEthernet",
	"tengig":               "TenGigabitEthernet",
	"tengige":              "TenGigabitEthernet",
	"tengigabitethernet":   "TenGigabitEthernet",
	"twentyfivegige":       "TwentyFiveGigE",
	"fo":                   "FortyGigabitEthernet",
	"forty":                "FortyGigabitEthernet",
	"fortygig":             "FortyGigabitEthernet",
	"fortygigabitethernet": "FortyGigabitEthernet",
	"hu":                   "HundredGigE",
	"hundredgige":          "HundredGigE",
	"ma":                   "ManagementEthernet",
	"management":           "ManagementEthernet",
	"managementethernet":   "ManagementEthernet",
	"po":                   "Port-channel",
	"port-channel":         "Port-channel",
	"vl":                   "Vlan",
	"vlan":                 "Vlan",
	"lo":                   "Loopback",
	"loopback":             "Loopback",
	"tu":                   "Tunnel",
	"tunnel":               "Tunnel",
}

// gigSpaceRe matches the FTOS names that carry a space between type and
// slot/port in command output.
var gigSpaceRe = regexp.MustCompile(`^((?:Forty|Ten)GigabitEthernet)(\d+/\d+)$`)

// SplitInterface separates an interface name into its type prefix and
// its number suffix ("Te 0/1" -> "Te", "0/1").
func SplitInterface(name string) (string, string) {
	head := strings.TrimRight(name, "/0123456789. ")
	tail := strings.TrimLeft(name[len(head):], " ")
	return head, tail
}

// CanonicalInterfaceName expands an interface name into its full form
// and applies the FTOS-specific spacing fix: TenGigabitEthernet and
// FortyGigabitEthernet names get exactly one space between the type and
// the slot/port pair. The function is idempotent; already-canonical
// names pass through unchanged.
func CanonicalInterfaceName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}

	// the expansion table is keyed on capitalized names; FTOS output is
	// not always consistent about case ("fortyGig 0/33")
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	name = string(r)

	head, tail := SplitInterface(name)
	if long, ok := interfaceNames[strings.ToLower(head)]; ok {
		name = long + tail
	}

	if m := gigSpaceRe.FindStringSubmatch(name); m != nil {
		name = m[1] + " " + m[2]
	}

	return name
}
