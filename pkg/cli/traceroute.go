package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/netsnap/netsnap/pkg/ftos"
	"github.com/netsnap/netsnap/pkg/serializer"
	"github.com/netsnap/netsnap/pkg/transport"
)

func tracerouteCmd() *cli.Command {
	return &cli.Command{
		Name:                  "traceroute",
		EnableShellCompletion: true,
		Usage:                 "Run a traceroute from a device",
		ArgsUsage:             "DESTINATION",
		Description: `Run a traceroute from an inventory device and report the parsed
per-hop probes.

# Examples

Trace a path from a named device:
  netsnap traceroute --config inventory.yaml --target core-sw1 10.0.0.254`,
		Flags: []cli.Flag{
			configFlag,
			targetFlag,
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:  "vrf",
				Usage: "VRF to trace in",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("traceroute requires exactly one DESTINATION argument")
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

			opts := ftos.TracerouteOptions{VRF: cmd.String("vrf")}
			result, err := ftos.New(t).Traceroute(ctx, cmd.Args().First(), opts)
			if err != nil {
				return err
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(ctx, result)
		},
	}
}
