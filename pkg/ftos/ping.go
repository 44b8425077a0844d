package ftos

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

var (
	deviceErrorRe = regexp.MustCompile(`% Error: (.+)`)

	// Groups: received, sent, rtt min, avg, max.
	pingSuccessRe = regexp.MustCompile(
		`Success rate is [\d.]+ percent \((\d+)/(\d+)\).+ = (\d+)/(\d+)/(\d+)`)
)

// PingOptions tune an on-device ping. The zero value is not useful;
// start from DefaultPingOptions.
type PingOptions struct {
	Source  string
	VRF     string
	TTL     int
	Timeout int
	Size    int
	Count   int
}

// DefaultPingOptions mirrors the device defaults: 5 probes of 100
// bytes with a 2 second timeout.
func DefaultPingOptions() PingOptions {
	return PingOptions{
		TTL:     255,
		Timeout: 2,
		Size:    100,
		Count:   5,
	}
}

// Ping runs an on-device ping to destination. Device-reported failures
// and unparsable summaries come back inside the result; only transport
// failures return a Go error. FTOS prints one aggregate line, so the
// result carries a single probe at the average round-trip time and no
// standard deviation.
func (d *Driver) Ping(ctx context.Context, destination string, opts PingOptions) (netmodel.PingResult, error) {
	command := "ping"
	if opts.VRF != "" {
		command += " vrf " + opts.VRF
	}
	command += fmt.Sprintf(" %s timeout %d datagram-size %d", destination, opts.Timeout, opts.Size)
	if opts.Source != "" {
		command += " source ip " + opts.Source
	}
	command += fmt.Sprintf(" count %d", opts.Count)

	out, err := d.send(ctx, command)
	if err != nil {
		return netmodel.PingResult{}, err
	}

	if m := deviceErrorRe.FindStringSubmatch(out); m != nil {
		return netmodel.PingResult{Error: m[1]}, nil
	}

	m := pingSuccessRe.FindStringSubmatch(out)
	if m == nil {
		return netmodel.PingResult{Error: "could not parse output"}, nil
	}

	received := textproc.IntOr(m[1], 0)
	sent := textproc.IntOr(m[2], 0)
	avg := textproc.FloatOr(m[4], 0)

	summary := &netmodel.PingSummary{
		ProbesSent: sent,
		PacketLoss: sent - received,
		RTTMin:     textproc.FloatOr(m[3], 0),
		RTTAvg:     avg,
		RTTMax:     textproc.FloatOr(m[5], 0),
		RTTStddev:  0,
		Results: []netmodel.PingProbe{{
			IPAddress: textproc.IPOrEmpty(strings.TrimSpace(destination)),
			RTT:       avg,
		}},
	}

	return netmodel.PingResult{Success: summary}, nil
}
