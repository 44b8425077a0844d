package ftos

import (
	"context"
	"sort"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

// Facts returns the device identity: uptime, vendor, OS version, serial
// number, model, hostname, and the interface list. Fields the output
// does not reveal stay at their defaults ("Unknown", sentinel uptime).
func (d *Driver) Facts(ctx context.Context) (netmodel.Facts, error) {
	facts := netmodel.Facts{
		Uptime:        netmodel.SentinelInt,
		Vendor:        "Dell EMC",
		OSVersion:     "Unknown",
		SerialNumber:  "Unknown",
		Model:         "Unknown",
		Hostname:      "Unknown",
		FQDN:          "Unknown",
		InterfaceList: []string{},
	}

	out, err := d.send(ctx, "show system stack-unit 0")
	if err != nil {
		return facts, err
	}

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "Up Time"):
			facts.Uptime = textproc.ParseUptime(headerValue(line), false)
		case strings.HasPrefix(line, "Mfg By"):
			facts.Vendor = headerValue(line)
		case strings.Contains(line, " OS Version"):
			facts.OSVersion = headerValue(line)
		case strings.HasPrefix(line, "Serial Number"):
			facts.SerialNumber = headerValue(line)
		case strings.HasPrefix(line, "Product Name"):
			facts.Model = headerValue(line)
		}
	}

	interfaces, err := d.Interfaces(ctx)
	if err != nil {
		return facts, err
	}
	for name := range interfaces {
		facts.InterfaceList = append(facts.InterfaceList, name)
	}
	sort.Strings(facts.InterfaceList)

	config, err := d.Config(ctx, "running")
	if err != nil {
		return facts, err
	}
	for _, line := range strings.Split(config.Running, "\n") {
		if strings.HasPrefix(line, "hostname ") {
			facts.Hostname = strings.TrimPrefix(line, "hostname ")
			facts.FQDN = facts.Hostname
			break
		}
	}

	return facts, nil
}

// headerValue returns the text after the first ": " of a header line,
// trimmed. Lines without a separator yield "".
func headerValue(line string) string {
	parts := strings.SplitN(line, ": ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Config retrieves the requested device configurations. retrieve is one
// of "all", "running", or "startup"; FTOS has no candidate store, so
// that entry is fixed.
func (d *Driver) Config(ctx context.Context, retrieve string) (netmodel.DeviceConfig, error) {
	config := netmodel.DeviceConfig{
		Candidate: "Not implemented for FTOS",
	}

	if retrieve == "all" || retrieve == "running" {
		out, err := d.send(ctx, "show running-config")
		if err != nil {
			return config, err
		}
		config.Running = out
	}

	if retrieve == "all" || retrieve == "startup" {
		out, err := d.send(ctx, "show startup-config")
		if err != nil {
			return config, err
		}
		config.Startup = out
	}

	return config, nil
}
