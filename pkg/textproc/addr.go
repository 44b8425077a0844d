package textproc

import (
	"net"
	"net/netip"
	"strconv"
	"strings"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
)

// ParseIP validates and normalizes an IPv4 or IPv6 address string.
// Input must be non-empty; malformed addresses return a VALIDATION
// error.
func ParseIP(s string) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return "", nserrors.Wrap(nserrors.ErrCodeValidation, "invalid IP address", err)
	}
	return addr.String(), nil
}

// SplitPrefix separates a trailing "/prefixLength" suffix from an
// address. The third return reports whether a prefix was present.
func SplitPrefix(s string) (string, int, bool) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s, 0, false
	}
	return s[:i], n, true
}

// ParseMAC validates a MAC address and normalizes it to the canonical
// upper-case, colon-separated representation.
func ParseMAC(s string) (string, error) {
	hw, err := net.ParseMAC(strings.TrimSpace(s))
	if err != nil {
		return "", nserrors.Wrap(nserrors.ErrCodeValidation, "invalid MAC address", err)
	}
	return strings.ToUpper(hw.String()), nil
}

// MACOrEmpty normalizes a MAC address, passing empty input through and
// returning the raw text unchanged when it does not parse. Used for
// fields where a parse miss degrades rather than fails.
func MACOrEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	mac, err := ParseMAC(s)
	if err != nil {
		return s
	}
	return mac
}

// IPOrEmpty normalizes an IP address, passing empty input through and
// returning the raw text unchanged when it does not parse.
func IPOrEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return s
	}
	addr, err := ParseIP(s)
	if err != nil {
		return s
	}
	return addr
}
