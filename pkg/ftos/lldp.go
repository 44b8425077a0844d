package ftos

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

// LLDPNeighbors returns the summary neighbor view per canonical local
// interface, derived from the detailed query.
func (d *Driver) LLDPNeighbors(ctx context.Context) (map[string][]netmodel.LLDPNeighbor, error) {
	detail, err := d.LLDPNeighborsDetail(ctx, "")
	if err != nil {
		return nil, err
	}

	neighbors := make(map[string][]netmodel.LLDPNeighbor, len(detail))
	for iface, entries := range detail {
		for _, entry := range entries {
			neighbors[iface] = append(neighbors[iface], netmodel.LLDPNeighbor{
				Hostname: entry.RemoteSystemName,
				Port:     entry.RemotePortDescription,
			})
		}
	}

	return neighbors, nil
}

// LLDPNeighborsDetail returns detailed neighbor state per canonical
// local interface. iface narrows the query to one interface when
// non-empty. Capability tokens that cannot be mapped are logged and
// dropped; the recognized tokens of the same field are kept.
func (d *Driver) LLDPNeighborsDetail(ctx context.Context, iface string) (map[string][]netmodel.LLDPNeighborDetail, error) {
	command := "show lldp neighbors detail"
	if iface != "" {
		command = fmt.Sprintf("show lldp neighbors interface %s detail", iface)
	}

	out, err := d.send(ctx, command)
	if err != nil {
		return nil, err
	}
	records, err := d.extract(out, "show_lldp_neighbors_detail")
	if err != nil {
		return nil, err
	}

	detail := make(map[string][]netmodel.LLDPNeighborDetail)
	for _, rec := range records {
		local := textproc.CanonicalInterfaceName(strings.TrimSpace(rec["local_interface"]))

		entry := netmodel.LLDPNeighborDetail{
			ParentInterface:          "",
			RemoteChassisID:          textproc.MACOrEmpty(strings.TrimSpace(rec["remote_chassis_id"])),
			RemotePort:               textproc.MACOrEmpty(strings.TrimSpace(rec["remote_port"])),
			RemotePortDescription:    strings.TrimSpace(rec["remote_port_description"]),
			RemoteSystemName:         strings.TrimSpace(rec["remote_system_name"]),
			RemoteSystemDescription:  strings.TrimSpace(rec["remote_system_desc"]),
			RemoteSystemCapab:        d.lldpCapabilities(rec["remote_system_capab"]),
			RemoteSystemEnabledCapab: d.lldpCapabilities(rec["remote_system_enable_capab"]),
		}

		detail[local] = append(detail[local], entry)
	}

	return detail, nil
}

func (d *Driver) lldpCapabilities(raw string) []string {
	capab, err := textproc.TransformLLDPCapabilities(strings.TrimSpace(raw))
	if err != nil {
		coercionFallbacks.Inc()
		slog.Debug("unrecognized lldp capability token", "raw", raw, "error", err)
	}
	return capab
}
