package ftos

import (
	"context"
	"regexp"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

var (
	ifaceHeaderV4Re = regexp.MustCompile(`^(\w+( \d+(/\d+)?)?) is \w+`)
	addrV4Re        = regexp.MustCompile(`^Internet address is ([0-9.]+)(?:/(\d+))?`)

	ifaceHeaderV6Re = regexp.MustCompile(`^(\w+( \d+(/\d+)?)?)\s+`)
	addrV6Re        = regexp.MustCompile(`^\s*([a-f0-9:]+)(?:/(\d+))?`)
)

// InterfacesIP returns the IPv4 and IPv6 addresses configured per
// interface, keyed by canonical interface name. IPv4 addresses without
// a printed mask default to /32; IPv6 link-local addresses default to
// /64 and all other IPv6 addresses to /128.
func (d *Driver) InterfacesIP(ctx context.Context) (map[string]netmodel.InterfaceIP, error) {
	addresses := make(map[string]netmodel.InterfaceIP)

	out, err := d.send(ctx, "show ip interface")
	if err != nil {
		return nil, err
	}
	if err := scanIPv4Addresses(out, addresses); err != nil {
		return nil, err
	}

	out, err = d.send(ctx, "show ipv6 interface brief")
	if err != nil {
		return nil, err
	}
	if err := scanIPv6Addresses(out, addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func scanIPv4Addresses(out string, addresses map[string]netmodel.InterfaceIP) error {
	iface := ""
	for _, line := range strings.Split(out, "\n") {
		if m := ifaceHeaderV4Re.FindStringSubmatch(line); m != nil {
			iface = textproc.CanonicalInterfaceName(m[1])
			continue
		}
		m := addrV4Re.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil || iface == "" {
			continue
		}
		address, err := textproc.ParseIP(m[1])
		if err != nil {
			continue
		}
		prefix := 32
		if m[2] != "" {
			prefix = int(textproc.IntOr(m[2], 32))
		}
		entry := ensureInterfaceIP(addresses, iface)
		entry.IPv4[address] = netmodel.PrefixEntry{PrefixLength: prefix}
	}
	return nil
}

func scanIPv6Addresses(out string, addresses map[string]netmodel.InterfaceIP) error {
	iface := ""
	for _, line := range strings.Split(out, "\n") {
		if m := ifaceHeaderV6Re.FindStringSubmatch(line); m != nil {
			iface = textproc.CanonicalInterfaceName(m[1])
			continue
		}
		m := addrV6Re.FindStringSubmatch(line)
		if m == nil || iface == "" {
			continue
		}
		address, err := textproc.ParseIP(m[1])
		if err != nil {
			continue
		}
		prefix := 128
		if strings.HasPrefix(address, "fe80") {
			prefix = 64
		}
		if m[2] != "" {
			prefix = int(textproc.IntOr(m[2], int64(prefix)))
		}
		entry := ensureInterfaceIP(addresses, iface)
		entry.IPv6[address] = netmodel.PrefixEntry{PrefixLength: prefix}
	}
	return nil
}

func ensureInterfaceIP(addresses map[string]netmodel.InterfaceIP, iface string) netmodel.InterfaceIP {
	entry, ok := addresses[iface]
	if !ok {
		entry = netmodel.InterfaceIP{
			IPv4: make(map[string]netmodel.PrefixEntry),
			IPv6: make(map[string]netmodel.PrefixEntry),
		}
		addresses[iface] = entry
	}
	return entry
}
