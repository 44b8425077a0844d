package ftos

import (
	"context"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

// Interfaces returns the per-interface state table keyed by canonical
// interface name. Records without an interface name are skipped.
func (d *Driver) Interfaces(ctx context.Context) (map[string]netmodel.Interface, error) {
	records, err := d.interfaceRecords(ctx)
	if err != nil {
		return nil, err
	}

	interfaces := make(map[string]netmodel.Interface, len(records))
	for _, rec := range records {
		name := strings.TrimSpace(rec["iface_name"])
		if name == "" {
			continue
		}

		iface := netmodel.Interface{
			Description: strings.TrimSpace(rec["description"]),
			MACAddress:  textproc.MACOrEmpty(strings.TrimSpace(rec["mac_address"])),
			IsEnabled:   textproc.BoolIs(strings.TrimSpace(rec["admin_status"]), "up"),
			IsUp:        textproc.BoolIs(strings.TrimSpace(rec["oper_status"]), "up"),
		}
		if speed, ok := parseLineSpeed(rec["line_speed"]); ok {
			iface.Speed = speed
		}
		if flapped := strings.TrimSpace(rec["last_flapped"]); flapped != "" {
			iface.LastFlapped = float64(textproc.ParseUptime(flapped, true))
		}

		interfaces[textproc.CanonicalInterfaceName(name)] = iface
	}

	return interfaces, nil
}

func (d *Driver) interfaceRecords(ctx context.Context) ([]map[string]string, error) {
	out, err := d.send(ctx, "show interfaces")
	if err != nil {
		return nil, err
	}
	records, err := d.extract(out, "show_interfaces")
	if err != nil {
		return nil, err
	}
	converted := make([]map[string]string, len(records))
	for i, rec := range records {
		converted[i] = rec
	}
	return converted, nil
}

// parseLineSpeed converts a "LineSpeed" token such as "10000 Mbit" or
// "40 Gbit" into Mbit/s. Tokens like "Auto" do not parse and leave the
// speed at zero.
func parseLineSpeed(s string) (int64, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, false
	}
	n := textproc.IntOr(fields[0], -1)
	if n < 0 {
		return 0, false
	}
	switch fields[1] {
	case "Mbit":
		return n, true
	case "Gbit":
		// TODO: confirm against a capture; no lab unit reports Gbit.
		return n * 1000, true
	}
	return 0, false
}

// counterKeys maps raw per-interface counter fields to their neutral
// counter names. rx_errors and tx_errors have no FTOS source and stay
// zero.
var counterKeys = []struct{ raw, name string }{
	{"rx_octets", "rx_octets"},
	{"rx_unicast", "rx_unicast_packets"},
	{"rx_mcast", "rx_multicast_packets"},
	{"rx_bcast", "rx_broadcast_packets"},
	{"rx_dcard", "rx_discards"},
	{"tx_octets", "tx_octets"},
	{"tx_unicast", "tx_unicast_packets"},
	{"tx_mcast", "tx_multicast_packets"},
	{"tx_bcast", "tx_broadcast_packets"},
	{"tx_dcard", "tx_discards"},
}

// InterfacesCounters returns traffic counters per canonical interface
// name. Counters the device did not report resolve to zero.
func (d *Driver) InterfacesCounters(ctx context.Context) (map[string]netmodel.InterfaceCounters, error) {
	records, err := d.interfaceRecords(ctx)
	if err != nil {
		return nil, err
	}

	counters := make(map[string]netmodel.InterfaceCounters, len(records))
	for _, rec := range records {
		name := strings.TrimSpace(rec["iface_name"])
		if name == "" {
			continue
		}

		c := netmodel.NewInterfaceCounters()
		for _, key := range counterKeys {
			c[key.name] = textproc.IntOr(rec[key.raw], 0)
		}
		counters[textproc.CanonicalInterfaceName(name)] = c
	}

	return counters, nil
}
