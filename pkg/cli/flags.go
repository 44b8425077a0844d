package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/netsnap/netsnap/pkg/config"
	nserrors "github.com/netsnap/netsnap/pkg/errors"
	"github.com/netsnap/netsnap/pkg/serializer"
	"github.com/netsnap/netsnap/pkg/snapshotter"
)

// Flags shared by the device-facing commands.
var (
	configFlag = &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Usage:    "Path to the inventory file",
		Sources:  cli.EnvVars("NETSNAP_CONFIG"),
		Required: true,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
	}

	targetFlag = &cli.StringFlag{
		Name:  "target",
		Usage: "Inventory target to run the command from (name or host)",
	}
)

// parseOutputFormat resolves the format flag, preferring the inventory
// setting when the flag is left at its default.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// loadConfig reads the inventory named by the config flag.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// findTarget selects one inventory target by name or host, with
// credentials already resolved through the defaults chain. With a
// single-device inventory the flag may be omitted.
func findTarget(cfg *config.Config, name string) (snapshotter.Target, error) {
	targets := cfg.SnapshotTargets()
	if name == "" {
		if len(targets) == 1 {
			return targets[0], nil
		}
		return snapshotter.Target{}, nserrors.New(nserrors.ErrCodeInvalidRequest,
			"--target is required with a multi-device inventory")
	}
	for i, t := range cfg.Targets {
		if t.Name == name || t.Host == name {
			return targets[i], nil
		}
	}
	return snapshotter.Target{}, nserrors.NewWithContext(nserrors.ErrCodeNotFound,
		"target not in inventory", map[string]any{"target": name})
}
