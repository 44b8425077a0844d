package textproc

import (
	"strings"

	nserrors "github.com/netsnap/netsnap/pkg/errors"
)

// lldpModes maps the capability names FTOS prints to the vendor-neutral
// tokens. Order matters: longer names are listed before their prefixes
// ("WLAN Access Point" before any later match could misfire).
var lldpModes = [][2]string{
	{"Repeater", "repeater"},
	{"Bridge", "bridge"},
	{"WLAN Access Point", "wlan-access-point"},
	{"Router", "router"},
	{"Telephone", "telephone"},
	{"Docsis", "docsis-cable-device"},
	{"Station only", "station"},
	{"Other", "other"},
}

// TransformLLDPCapabilities converts an FTOS capability string such as
// "Bridge WLAN Access Point Router Station only" into the list of
// vendor-neutral capability tokens. Matching is case-insensitive. An
// unrecognized leading token stops the scan with a VALIDATION error.
func TransformLLDPCapabilities(capabilities string) ([]string, error) {
	capab := []string{}
	rest := strings.TrimSpace(capabilities)

	for rest != "" {
		found := false
		for _, mode := range lldpModes {
			if len(rest) < len(mode[0]) {
				continue
			}
			if !strings.EqualFold(rest[:len(mode[0])], mode[0]) {
				continue
			}
			capab = append(capab, mode[1])
			rest = strings.TrimLeft(rest[len(mode[0]):], " ")
			found = true
			break
		}
		if !found {
			token := strings.SplitN(rest, " ", 2)[0]
			return capab, nserrors.New(nserrors.ErrCodeValidation,
				"unhandled lldp capability: "+token)
		}
	}

	return capab, nil
}
