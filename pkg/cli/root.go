package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/netsnap/netsnap/pkg/logging"
	"github.com/netsnap/netsnap/pkg/version"
)

const name = "netsnap"

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Capture vendor-neutral state snapshots from Dell FTOS devices",
		Version: version.Get().String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version.Version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			snapshotCmd(),
			pingCmd(),
			tracerouteCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI under a SIGINT/SIGTERM-aware context. Called by
// main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd().Run(ctx, os.Args)
}
