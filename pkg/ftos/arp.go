package ftos

import (
	"context"
	"strconv"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

// ARPTable returns the device ARP entries. The age column is printed in
// minutes and converted to seconds; a dash or blank age resolves to the
// float sentinel. Entries whose IP column does not parse are dropped.
func (d *Driver) ARPTable(ctx context.Context) ([]netmodel.ARPEntry, error) {
	out, err := d.send(ctx, "show arp")
	if err != nil {
		return nil, err
	}
	records, err := d.extract(out, "show_arp")
	if err != nil {
		return nil, err
	}

	table := make([]netmodel.ARPEntry, 0, len(records))
	for _, rec := range records {
		ip, err := textproc.ParseIP(rec["ip"])
		if err != nil {
			coercionFallbacks.Inc()
			continue
		}

		age := netmodel.SentinelFloat
		if f, err := strconv.ParseFloat(strings.TrimSpace(rec["age"]), 64); err == nil {
			age = f * 60
		}

		table = append(table, netmodel.ARPEntry{
			Interface: strings.TrimSpace(rec["interface"]),
			IP:        ip,
			MAC:       textproc.MACOrEmpty(strings.TrimSpace(rec["mac"])),
			Age:       age,
		})
	}

	return table, nil
}
