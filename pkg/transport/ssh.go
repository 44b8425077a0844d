package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/time/rate"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
)

// SSHConfig carries everything needed to open a device session.
type SSHConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// KeyFile is an optional path to a private key; when set it is
	// preferred over Password.
	KeyFile string
	// Timeout bounds the TCP/SSH handshake and each command execution.
	Timeout time.Duration
	// CommandInterval paces consecutive commands; zero disables pacing.
	CommandInterval time.Duration
}

func (c SSHConfig) addr() string {
	port := c.Port
	if port == 0 {
		port = 22
	}
	return net.JoinHostPort(c.Host, fmt.Sprintf("%d", port))
}

// SSHTransport executes commands over one SSH client connection, one
// exec session per command. Commands are paced by a rate limiter so a
// burst of getters does not overwhelm slow control planes.
type SSHTransport struct {
	client  *ssh.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// DialSSH opens a device session. The returned transport is ready for
// Send; callers own Close.
func DialSSH(ctx context.Context, cfg SSHConfig) (*SSHTransport, error) {
	auth, err := authMethods(cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	clientCfg := &ssh.ClientConfig{
		User:    cfg.Username,
		Auth:    auth,
		Timeout: timeout,
		// network devices rotate host keys on firmware resets; pinning
		// is left to the ssh_known_hosts of the calling environment
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.addr())
	if err != nil {
		return nil, nserrors.Wrap(nserrors.ErrCodeTransport, "dial failed", err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, cfg.addr(), clientCfg)
	if err != nil {
		conn.Close()
		return nil, nserrors.Wrap(nserrors.ErrCodeTransport, "ssh handshake failed", err)
	}

	limit := rate.Inf
	if cfg.CommandInterval > 0 {
		limit = rate.Every(cfg.CommandInterval)
	}

	return &SSHTransport{
		client:  ssh.NewClient(sshConn, chans, reqs),
		limiter: rate.NewLimiter(limit, 1),
		timeout: timeout,
	}, nil
}

func authMethods(cfg SSHConfig) ([]ssh.AuthMethod, error) {
	if cfg.KeyFile != "" {
		key, err := os.ReadFile(cfg.KeyFile)
		if err != nil {
			return nil, nserrors.Wrap(nserrors.ErrCodeTransport, "read key file", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, nserrors.Wrap(nserrors.ErrCodeTransport, "parse private key", err)
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
	}
	return []ssh.AuthMethod{ssh.Password(cfg.Password)}, nil
}

// Send executes one command in a fresh exec session and returns the
// combined output.
func (t *SSHTransport) Send(ctx context.Context, command string) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", nserrors.Wrap(nserrors.ErrCodeTransport, "command pacing interrupted", err)
	}

	session, err := t.client.NewSession()
	if err != nil {
		return "", nserrors.Wrap(nserrors.ErrCodeTransport, "session open failed", err)
	}
	defer session.Close()

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := session.CombinedOutput(command)
		done <- result{out, err}
	}()

	select {
	case <-ctx.Done():
		return "", nserrors.Wrap(nserrors.ErrCodeTransport, "command canceled", ctx.Err())
	case r := <-done:
		if r.err != nil {
			// devices exit non-zero for commands they still answered;
			// the response text is what matters here
			if len(r.out) > 0 {
				slog.Debug("command exited non-zero", "command", command, "error", r.err)
				return string(r.out), nil
			}
			return "", nserrors.Wrap(nserrors.ErrCodeTransport, "command failed", r.err)
		}
		return string(r.out), nil
	}
}

// IsAlive probes the connection with a keepalive request.
func (t *SSHTransport) IsAlive(ctx context.Context) bool {
	if t.client == nil {
		return false
	}
	done := make(chan bool, 1)
	go func() {
		_, _, err := t.client.SendRequest("keepalive@openssh.com", true, nil)
		done <- err == nil
	}()
	select {
	case <-ctx.Done():
		return false
	case ok := <-done:
		return ok
	}
}

// Close tears down the client connection.
func (t *SSHTransport) Close() error {
	if t.client == nil {
		return nil
	}
	return t.client.Close()
}
