package ftos

import (
	"context"
	"regexp"
	"strings"

	"github.com/netsnap/netsnap/pkg/netmodel"
	"github.com/netsnap/netsnap/pkg/textproc"
)

var userLineRe = regexp.MustCompile(
	`^username (\S+).+password \d+ (\S+)(?: privilege (\d+))?`)

// Users returns the locally configured accounts keyed by username. The
// password field carries the stored hash as printed; FTOS keeps no
// per-user SSH keys, so the key list is always empty. Accounts without
// an explicit privilege report level 0.
func (d *Driver) Users(ctx context.Context) (map[string]netmodel.User, error) {
	out, err := d.send(ctx, "show running-config users")
	if err != nil {
		return nil, err
	}

	users := make(map[string]netmodel.User)
	for _, line := range strings.Split(out, "\n") {
		m := userLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		users[m[1]] = netmodel.User{
			Password: m[2],
			SSHKeys:  []string{},
			Level:    textproc.IntOr(m[3], 0),
		}
	}

	return users, nil
}
