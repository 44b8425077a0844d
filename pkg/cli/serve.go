package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/netsnap/netsnap/pkg/server"
	"github.com/netsnap/netsnap/pkg/snapshotter"
	"github.com/netsnap/netsnap/pkg/version"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the agent HTTP server",
		Description: `Run netsnap as a long-running agent serving on-demand snapshots over
HTTP, with health probes and Prometheus metrics.

# Examples

Serve the inventory on the default port:
  netsnap serve --config inventory.yaml

Serve on a custom port:
  netsnap serve --config inventory.yaml --port 9090`,
		Flags: []cli.Flag{
			configFlag,
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			srvCfg := server.NewConfig()
			srvCfg.Name = name
			srvCfg.Version = version.Version
			if cmd.IsSet("port") {
				srvCfg.Port = int(cmd.Int("port"))
			}

			ds := &snapshotter.DeviceSnapshotter{
				Version:     version.Version,
				Targets:     cfg.SnapshotTargets(),
				Concurrency: cfg.Concurrency,
			}
			return server.RunWithConfig(srvCfg, ds)
		},
	}
}
