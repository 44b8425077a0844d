package ftos

import (
	"context"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

// ntpStatFields carry zero fallbacks: a dash in the associations table
// means the measurement has not happened yet, not that it is missing.
var ntpStatFields = []textproc.FieldSpec{
	{Name: "stratum", Kind: textproc.KindInt},
	{Name: "hostpoll", Kind: textproc.KindInt},
	{Name: "reachability", Kind: textproc.KindInt},
	{Name: "delay", Kind: textproc.KindFloat},
	{Name: "offset", Kind: textproc.KindFloat},
	{Name: "jitter", Kind: textproc.KindFloat},
}

func (d *Driver) ntpAssociations(ctx context.Context) ([]map[string]string, error) {
	out, err := d.send(ctx, "show ntp associations")
	if err != nil {
		return nil, err
	}
	records, err := d.extract(out, "show_ntp_associations")
	if err != nil {
		return nil, err
	}
	converted := make([]map[string]string, len(records))
	for i, rec := range records {
		converted[i] = rec
	}
	return converted, nil
}

// NTPPeers returns the configured NTP associations keyed by normalized
// remote address. Rows whose remote column is not an address are
// dropped.
func (d *Driver) NTPPeers(ctx context.Context) (map[string]netmodel.NTPPeer, error) {
	records, err := d.ntpAssociations(ctx)
	if err != nil {
		return nil, err
	}

	peers := make(map[string]netmodel.NTPPeer, len(records))
	for _, rec := range records {
		remote, err := textproc.ParseIP(rec["remote"])
		if err != nil {
			coercionFallbacks.Inc()
			continue
		}
		peers[remote] = netmodel.NTPPeer{}
	}

	return peers, nil
}

// NTPServers is an alias of NTPPeers; FTOS does not distinguish the two
// roles in its association table.
func (d *Driver) NTPServers(ctx context.Context) (map[string]netmodel.NTPPeer, error) {
	return d.NTPPeers(ctx)
}

// NTPStats returns per-association synchronization statistics. The
// association the clock follows is marked with "*" in the type column.
func (d *Driver) NTPStats(ctx context.Context) ([]netmodel.NTPStat, error) {
	records, err := d.ntpAssociations(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]netmodel.NTPStat, 0, len(records))
	for _, rec := range records {
		values, fallbacks := textproc.Apply(ntpStatFields, rec)
		coercionFallbacks.Add(float64(fallbacks))

		stats = append(stats, netmodel.NTPStat{
			Remote:       textproc.IPOrEmpty(strings.TrimSpace(rec["remote"])),
			ReferenceID:  textproc.IPOrEmpty(strings.TrimSpace(rec["referenceid"])),
			Synchronized: textproc.BoolIs(strings.TrimSpace(rec["type"]), "*"),
			Stratum:      values["stratum"].Int,
			Type:         strings.TrimSpace(rec["type"]),
			When:         strings.TrimSpace(rec["when"]),
			HostPoll:     values["hostpoll"].Int,
			Reachability: values["reachability"].Int,
			Delay:        values["delay"].Float,
			Offset:       values["offset"].Float,
			Jitter:       values["jitter"].Float,
		})
	}

	return stats, nil
}
