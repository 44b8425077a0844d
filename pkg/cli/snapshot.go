package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/netsnap/netsnap/pkg/serializer"
	"github.com/netsnap/netsnap/pkg/snapshotter"
	"github.com/netsnap/netsnap/pkg/version"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture device state snapshot",
		Description: `Capture a state snapshot from every device in the inventory including:
  - Device facts (model, serial, OS version, uptime)
  - Interface state, counters and addressing
  - ARP and MAC tables
  - BGP and LLDP neighbors
  - NTP, SNMP, users and environment
  - Running and startup configuration

Devices are queried in parallel; a device that cannot be reached is
recorded in the snapshot without failing the run. The snapshot can be
output in JSON, YAML, or table format.

# Examples

Snapshot the fleet to stdout:
  netsnap snapshot --config inventory.yaml

Snapshot to a YAML file with bounded concurrency:
  netsnap snapshot --config inventory.yaml --format yaml --output fleet.yaml --concurrency 2`,
		Flags: []cli.Flag{
			configFlag,
			outputFlag,
			formatFlag,
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Parallel device sessions (default: inventory setting)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// explicit flags beat inventory settings
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			if !cmd.IsSet("format") && cfg.Output.Format != "" {
				outFormat = serializer.Format(cfg.Output.Format)
			}
			output := cmd.String("output")
			if output == "" {
				output = cfg.Output.Path
			}
			concurrency := cfg.Concurrency
			if cmd.IsSet("concurrency") {
				concurrency = int(cmd.Int("concurrency"))
			}

			w := serializer.NewFileWriterOrStdout(outFormat, output)
			defer w.Close()

			ds := &snapshotter.DeviceSnapshotter{
				Version:     version.Version,
				Targets:     cfg.SnapshotTargets(),
				Concurrency: concurrency,
				Serializer:  w,
			}
			return ds.Measure(ctx)
		},
	}
}
