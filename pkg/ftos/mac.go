package ftos

import (
	"context"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

// MACAddressTable returns the switching table. FTOS does not expose
// move tracking, so moves and last_move carry their sentinels.
func (d *Driver) MACAddressTable(ctx context.Context) ([]netmodel.MACTableEntry, error) {
	out, err := d.send(ctx, "show mac-address-table")
	if err != nil {
		return nil, err
	}
	records, err := d.extract(out, "show_mac-address-table")
	if err != nil {
		return nil, err
	}

	table := make([]netmodel.MACTableEntry, 0, len(records))
	for _, rec := range records {
		table = append(table, netmodel.MACTableEntry{
			MAC:       textproc.MACOrEmpty(strings.TrimSpace(rec["mac"])),
			Interface: textproc.CanonicalInterfaceName(strings.TrimSpace(rec["interface"])),
			VLAN:      textproc.IntOr(rec["vlan"], netmodel.SentinelInt),
			Static:    textproc.BoolIs(strings.TrimSpace(rec["static"]), "Static"),
			Active:    textproc.BoolIs(strings.TrimSpace(rec["active"]), "Active"),
			Moves:     netmodel.SentinelInt,
			LastMove:  netmodel.SentinelFloat,
		})
	}

	return table, nil
}
