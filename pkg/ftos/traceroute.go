package ftos

import (
	"context"
	"regexp"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// TracerouteOptions tune an on-device traceroute. FTOS accepts no
// probe tuning on the command line, so only the VRF carries through.
type TracerouteOptions struct {
	VRF string
}

// Traceroute runs an on-device traceroute to destination. Hops are
// keyed by TTL; a row with a blank TTL column continues the previous
// hop, and probe ordinals keep counting across such continuation rows.
// When the device revisits a TTL the later rows replace the earlier
// ones. Device-reported failures come back inside the result.
func (d *Driver) Traceroute(ctx context.Context, destination string, opts TracerouteOptions) (netmodel.TracerouteResult, error) {
	command := "traceroute"
	if opts.VRF != "" {
		command += " vrf " + opts.VRF
	}
	command += " " + destination

	out, err := d.send(ctx, command)
	if err != nil {
		return netmodel.TracerouteResult{}, err
	}

	if m := deviceErrorRe.FindStringSubmatch(out); m != nil {
		return netmodel.TracerouteResult{Error: m[1]}, nil
	}

	records, err := d.extract(out, "traceroute")
	if err != nil {
		return netmodel.TracerouteResult{}, err
	}

	hops := map[int]netmodel.TracerouteHop{}
	ttl := 0
	ordinal := 1
	for _, rec := range records {
		if raw := strings.TrimSpace(rec["ttl"]); raw != "" {
			n := int(textproc.IntOr(raw, 0))
			if n != ttl {
				ttl = n
				ordinal = 1
				hops[ttl] = netmodel.TracerouteHop{
					Probes: map[int]netmodel.TracerouteProbe{},
				}
			}
		}
		if ttl == 0 {
			continue
		}

		hop := strings.TrimSpace(rec["hop"])
		probes := strings.ReplaceAll(rec["probes"], "ms", "")
		probes = whitespaceRe.ReplaceAllString(strings.TrimSpace(probes), " ")
		if probes == "" {
			continue
		}

		for _, probe := range strings.Split(probes, " ") {
			hops[ttl].Probes[ordinal] = netmodel.TracerouteProbe{
				RTT:       textproc.FloatOr(probe, netmodel.SentinelFloat),
				IPAddress: textproc.IPOrEmpty(hop),
				HostName:  hop,
			}
			ordinal++
		}
	}

	return netmodel.TracerouteResult{Success: hops}, nil
}
