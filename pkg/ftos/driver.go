package ftos

import (
	"context"

	"github.com/netsnap/netsnap/pkg/textfsm"
	"github.com/netsnap/netsnap/pkg/transport"
)

// Driver converts raw FTOS command output into the vendor-neutral
// netmodel schema. It is stateless between calls: every getter issues
// its commands, parses, and returns; nothing persists across
// invocations, so one Driver may serve concurrent callers as long as
// the underlying transport allows it.
type Driver struct {
	t  transport.Transport
	ex textfsm.Extractor
}

// Option configures a Driver.
type Option func(*Driver)

// WithExtractor overrides the template extractor, mainly for tests.
func WithExtractor(ex textfsm.Extractor) Option {
	return func(d *Driver) {
		d.ex = ex
	}
}

// New builds a driver over an open transport.
func New(t transport.Transport, opts ...Option) *Driver {
	d := &Driver{
		t:  t,
		ex: textfsm.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IsAlive reports whether the device session is still usable.
func (d *Driver) IsAlive(ctx context.Context) bool {
	return d.t.IsAlive(ctx)
}

func (d *Driver) send(ctx context.Context, command string) (string, error) {
	out, err := d.t.Send(ctx, command)
	if err != nil {
		transportErrors.Inc()
		return "", err
	}
	commandsSent.Inc()
	return out, nil
}

// extract runs raw output through the named template and counts the
// records for observability.
func (d *Driver) extract(raw, templateID string) ([]textfsm.Record, error) {
	records, err := d.ex.Extract(raw, templateID)
	if err != nil {
		return nil, err
	}
	recordsExtracted.Add(float64(len(records)))
	return records, nil
}
