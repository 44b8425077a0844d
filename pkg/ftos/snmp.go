package ftos

import (
	"context"
	"regexp"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
)

var snmpCommunityRe = regexp.MustCompile(`^snmp-server community (\S+) (\S+)(?: (\S+))?`)

// SNMPInfo returns the SNMP configuration summary from the running
// config. Communities without an access list report "N/A". FTOS has no
// SNMP chassis id setting, so that field stays empty.
func (d *Driver) SNMPInfo(ctx context.Context) (netmodel.SNMPInfo, error) {
	info := netmodel.SNMPInfo{
		Community: map[string]netmodel.SNMPCommunity{},
	}

	out, err := d.send(ctx, "show running-config snmp")
	if err != nil {
		return info, err
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(line, "community"):
			m := snmpCommunityRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			community := netmodel.SNMPCommunity{Mode: m[2], ACL: "N/A"}
			if m[3] != "" {
				community.ACL = m[3]
			}
			info.Community[m[1]] = community
		case strings.Contains(line, "location"):
			info.Location = strings.Trim(strings.TrimPrefix(line, "snmp-server location "), `"`)
		case strings.Contains(line, "contact"):
			info.Contact = strings.Trim(strings.TrimPrefix(line, "snmp-server contact "), `"`)
		}
	}

	return info, nil
}
