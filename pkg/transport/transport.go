package transport

import (
	"context"
	"strings"
)

// InvalidCommandMarker is the literal FTOS prints when it does not
// recognize a command. SendAny inspects responses for it to decide
// whether to advance down a candidate command chain.
const InvalidCommandMarker = "% Invalid"

// Transport executes commands against a device and returns the raw
// response text. Session lifecycle (open, close, keepalive) belongs to
// the implementation; callers only send and inspect.
type Transport interface {
	// Send executes one command and returns its raw output. A returned
	// error is connection-level and aborts the caller's operation.
	Send(ctx context.Context, command string) (string, error)
	// IsAlive reports whether the underlying session is still usable.
	IsAlive(ctx context.Context) bool
	// Close releases the session.
	Close() error
}

// SendAny tries the candidate commands in order, returning the first
// response that does not carry the invalid-command marker. This is a
// fallback chain for syntax that varies across firmware revisions, not
// a failure-triggered retry: a transport error still aborts
// immediately, and the last response is returned even if it too is
// marked invalid.
func SendAny(ctx context.Context, t Transport, commands []string) (string, error) {
	var out string
	var err error
	for _, cmd := range commands {
		out, err = t.Send(ctx, cmd)
		if err != nil {
			return "", err
		}
		if !strings.Contains(out, InvalidCommandMarker) {
			return out, nil
		}
	}
	return out, err
}
