package ftos

import (
	"context"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

// bgpIntFields are the session counters cast to integers; any value the
// device prints in an unexpected form degrades to the int sentinel.
var bgpIntFields = []textproc.FieldSpec{
	{Name: "remote_as", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "local_port", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "remote_port", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "input_messages", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "output_messages", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "input_updates", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "output_updates", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "messages_queued_out", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "holdtime", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "keepalive", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "accepted_prefix_count", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "advertised_prefix_count", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
	{Name: "flap_count", Kind: textproc.KindInt, IntFallback: netmodel.SentinelInt},
}

// BGPNeighborsDetail returns per-neighbor BGP session state grouped by
// routing table and remote AS. neighborAddress narrows the query to one
// neighbor when non-empty. FTOS prints no VRF scoping in this output,
// so every neighbor lands in the global table.
//
// Session attributes the output does not expose are reported at their
// sentinels: local_as and the configured timers stay -1, the policy and
// state-history strings stay empty, and the negotiation flags stay
// false.
func (d *Driver) BGPNeighborsDetail(ctx context.Context, neighborAddress string) (netmodel.BGPNeighborsDetail, error) {
	command := "show ip bgp neighbors"
	if addr := strings.TrimSpace(neighborAddress); addr != "" {
		command += " " + addr
	}

	out, err := d.send(ctx, command)
	if err != nil {
		return nil, err
	}
	records, err := d.extract(out, "show_ip_bgp_neighbors")
	if err != nil {
		return nil, err
	}

	table := netmodel.BGPNeighborsDetail{}
	for _, rec := range records {
		ints, fallbacks := textproc.Apply(bgpIntFields, rec)
		coercionFallbacks.Add(float64(fallbacks))

		state := strings.TrimSpace(rec["connection_state"])
		neighbor := netmodel.BGPNeighborDetail{
			Up:              textproc.BoolIs(state, "ESTABLISHED"),
			ConnectionState: state,
			RouterID:        textproc.IPOrEmpty(strings.TrimSpace(rec["router_id"])),
			LocalAddress:    textproc.IPOrEmpty(strings.TrimSpace(rec["local_address"])),
			RemoteAddress:   textproc.IPOrEmpty(strings.TrimSpace(rec["remote_address"])),

			RemoteAS:              ints["remote_as"].Int,
			LocalPort:             ints["local_port"].Int,
			RemotePort:            ints["remote_port"].Int,
			InputMessages:         ints["input_messages"].Int,
			OutputMessages:        ints["output_messages"].Int,
			InputUpdates:          ints["input_updates"].Int,
			OutputUpdates:         ints["output_updates"].Int,
			MessagesQueuedOut:     ints["messages_queued_out"].Int,
			Holdtime:              ints["holdtime"].Int,
			Keepalive:             ints["keepalive"].Int,
			AcceptedPrefixCount:   ints["accepted_prefix_count"].Int,
			AdvertisedPrefixCount: ints["advertised_prefix_count"].Int,
			FlapCount:             ints["flap_count"].Int,

			LocalAS:               netmodel.SentinelInt,
			ConfiguredHoldtime:    netmodel.SentinelInt,
			ConfiguredKeepalive:   netmodel.SentinelInt,
			ActivePrefixCount:     netmodel.SentinelInt,
			ReceivedPrefixCount:   netmodel.SentinelInt,
			SuppressedPrefixCount: netmodel.SentinelInt,
		}

		vrf := netmodel.GlobalTable
		if table[vrf] == nil {
			table[vrf] = make(map[int64][]netmodel.BGPNeighborDetail)
		}
		table[vrf][neighbor.RemoteAS] = append(table[vrf][neighbor.RemoteAS], neighbor)
	}

	return table, nil
}
