package transport

import (
	"context"
	"sync"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
)

// Script is an in-memory transport replaying canned responses, used to
// test drivers without a device. Unknown commands return an
// invalid-command response, mirroring what FTOS prints.
type Script struct {
	mu        sync.Mutex
	responses map[string]string
	sent      []string
	alive     bool
	// Err, when set, is returned by every Send to simulate a
	// connection-level failure.
	Err error
}

// NewScript builds a scripted transport from a command-to-output map.
func NewScript(responses map[string]string) *Script {
	return &Script{responses: responses, alive: true}
}

// Send returns the scripted response for the command.
func (s *Script) Send(_ context.Context, command string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return "", nserrors.Wrap(nserrors.ErrCodeTransport, "scripted failure", s.Err)
	}

	s.sent = append(s.sent, command)
	if out, ok := s.responses[command]; ok {
		return out, nil
	}
	return InvalidCommandMarker + " input detected at \"^\" marker.", nil
}

// IsAlive reports the scripted liveness.
func (s *Script) IsAlive(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive && s.Err == nil
}

// Close marks the scripted session dead.
func (s *Script) Close() error {
	s.SetAlive(false)
	return nil
}

// SetAlive overrides the scripted liveness.
func (s *Script) SetAlive(alive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alive = alive
}

// Sent returns the commands sent so far, in order.
func (s *Script) Sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}
