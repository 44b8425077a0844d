package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/netsnap/netsnap/pkg/defaults"
	nserrors "github.com/netsnap/netsnap/pkg/errors"
	"github.com/netsnap/netsnap/pkg/serializer"
	"github.com/netsnap/netsnap/pkg/snapshotter"
	"github.com/netsnap/netsnap/pkg/transport"
)

// Environment variables overriding inventory credentials. They apply to
// the defaults block, so per-target values in the file still win.
const (
	EnvUsername = "NETSNAP_USERNAME"
	EnvPassword = "NETSNAP_PASSWORD"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "30s" or "100ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return nserrors.Wrap(nserrors.ErrCodeValidation, fmt.Sprintf("invalid duration %q", s), err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Credentials holds the connection settings for a device. A zero field
// falls back to the inventory defaults, then to the built-in defaults.
type Credentials struct {
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	// KeyFile is a path to an SSH private key, preferred over Password
	// when both are set.
	KeyFile string `yaml:"key_file,omitempty"`
	// Timeout bounds the SSH handshake and each command execution.
	Timeout Duration `yaml:"timeout,omitempty"`
	// CommandInterval paces consecutive commands on one session.
	CommandInterval Duration `yaml:"command_interval,omitempty"`
}

// TargetConfig is one device entry in the inventory.
type TargetConfig struct {
	// Name identifies the device in snapshot output. Falls back to Host.
	Name string `yaml:"name,omitempty"`
	Host string `yaml:"host"`
	Port int    `yaml:"port,omitempty"`

	Credentials `yaml:",inline"`
}

// OutputConfig controls where and how snapshots are written.
type OutputConfig struct {
	// Path is the output file; empty means stdout.
	Path string `yaml:"path,omitempty"`
	// Format is one of json, yaml or table. Empty means json.
	Format string `yaml:"format,omitempty"`
}

// Config is the full netsnap inventory.
type Config struct {
	LogLevel    string         `yaml:"log_level,omitempty"`
	Output      OutputConfig   `yaml:"output,omitempty"`
	Concurrency int            `yaml:"concurrency,omitempty"`
	Defaults    Credentials    `yaml:"defaults,omitempty"`
	Targets     []TargetConfig `yaml:"targets"`
}

// Load reads and validates an inventory file. Credentials from the
// environment are merged into the defaults block before validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nserrors.Wrap(nserrors.ErrCodeNotFound, fmt.Sprintf("failed to read config %s", path), err)
	}
	return Parse(data)
}

// Parse decodes an inventory document. Unknown fields are rejected so a
// typo in an inventory file fails loudly instead of being ignored.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, nserrors.Wrap(nserrors.ErrCodeValidation, "failed to parse config", err)
	}

	if v := os.Getenv(EnvUsername); v != "" {
		c.Defaults.Username = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		c.Defaults.Password = v
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the inventory for consistency.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return nserrors.New(nserrors.ErrCodeValidation, "config has no targets")
	}
	for i, t := range c.Targets {
		if t.Host == "" {
			return nserrors.NewWithContext(nserrors.ErrCodeValidation, "target has no host",
				map[string]any{"index": i, "name": t.Name})
		}
	}
	if c.Output.Format != "" && serializer.Format(c.Output.Format).IsUnknown() {
		return nserrors.NewWithContext(nserrors.ErrCodeValidation, "unknown output format",
			map[string]any{"format": c.Output.Format})
	}
	if c.Concurrency < 0 {
		return nserrors.New(nserrors.ErrCodeValidation, "concurrency must not be negative")
	}
	return nil
}

// SnapshotTargets converts the inventory into snapshot targets,
// resolving each credential field through the defaults chain.
func (c *Config) SnapshotTargets() []snapshotter.Target {
	targets := make([]snapshotter.Target, 0, len(c.Targets))
	for _, t := range c.Targets {
		cred := c.resolve(t.Credentials)
		targets = append(targets, snapshotter.Target{
			Name: t.Name,
			SSH: transport.SSHConfig{
				Host:            t.Host,
				Port:            t.Port,
				Username:        cred.Username,
				Password:        cred.Password,
				KeyFile:         cred.KeyFile,
				Timeout:         time.Duration(cred.Timeout),
				CommandInterval: time.Duration(cred.CommandInterval),
			},
		})
	}
	return targets
}

func (c *Config) resolve(cred Credentials) Credentials {
	if cred.Username == "" {
		cred.Username = c.Defaults.Username
	}
	if cred.Password == "" {
		cred.Password = c.Defaults.Password
	}
	if cred.KeyFile == "" {
		cred.KeyFile = c.Defaults.KeyFile
	}
	if cred.Timeout == 0 {
		cred.Timeout = c.Defaults.Timeout
	}
	if cred.Timeout == 0 {
		cred.Timeout = Duration(defaults.CommandTimeout)
	}
	if cred.CommandInterval == 0 {
		cred.CommandInterval = c.Defaults.CommandInterval
	}
	if cred.CommandInterval == 0 {
		cred.CommandInterval = Duration(defaults.CommandInterval)
	}
	return cred
}
