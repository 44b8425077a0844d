package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/netsnap/netsnap/pkg/ftos"
	"github.com/netsnap/netsnap/pkg/serializer"
	"github.com/netsnap/netsnap/pkg/transport"
)

func pingCmd() *cli.Command {
	def := ftos.DefaultPingOptions()
	return &cli.Command{
		Name:                  "ping",
		EnableShellCompletion: true,
		Usage:                 "Run a ping from a device",
		ArgsUsage:             "DESTINATION",
		Description: `Run a ping from an inventory device and report the parsed probe
statistics. The device does the probing; netsnap only drives its CLI.

# Examples

Ping a peer from the only device in the inventory:
  netsnap ping --config inventory.yaml 10.0.0.254

Ping from a named device inside a VRF:
  netsnap ping --config inventory.yaml --target core-sw1 --vrf mgmt 10.0.0.254`,
		Flags: []cli.Flag{
			configFlag,
			targetFlag,
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:  "source",
				Usage: "Source IP address on the device",
			},
			&cli.StringFlag{
				Name:  "vrf",
				Usage: "VRF to ping in",
			},
			&cli.IntFlag{
				Name:  "count",
				Value: int64(def.Count),
				Usage: "Number of probes",
			},
			&cli.IntFlag{
				Name:  "size",
				Value: int64(def.Size),
				Usage: "Datagram size in bytes",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Value: int64(def.Timeout),
				Usage: "Per-probe timeout in seconds",
			},
			&cli.IntFlag{
				Name:  "ttl",
				Value: int64(def.TTL),
				Usage: "Probe time to live",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("ping requires exactly one DESTINATION argument")
			}
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			target, err := findTarget(cfg, cmd.String("target"))
			if err != nil {
				return err
			}

			t, err := transport.DialSSH(ctx, target.SSH)
			if err != nil {
				return fmt.Errorf("error connecting to %s: %w", target.SSH.Host, err)
			}
			defer t.Close()

			opts := ftos.PingOptions{
				Source:  cmd.String("source"),
				VRF:     cmd.String("vrf"),
				TTL:     int(cmd.Int("ttl")),
				Timeout: int(cmd.Int("timeout")),
				Size:    int(cmd.Int("size")),
				Count:   int(cmd.Int("count")),
			}
			result, err := ftos.New(t).Ping(ctx, cmd.Args().First(), opts)
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(ctx, result)
		},
	}
}
