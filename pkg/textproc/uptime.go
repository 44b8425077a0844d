package textproc

import (
	"regexp"
	"strconv"
	"strings"
)

// Second multipliers for uptime arithmetic. Years are fixed at 365 days
// with no leap adjustment.
const (
	MinuteSeconds int64 = 60
	HourSeconds   int64 = 60 * MinuteSeconds
	DaySeconds    int64 = 24 * HourSeconds
	WeekSeconds   int64 = 7 * DaySeconds
	YearSeconds   int64 = 365 * DaySeconds
)

var (
	clockRe   = regexp.MustCompile(`^(\d+):(\d+):(\d+)$`)
	compactRe = regexp.MustCompile(`(\d+y)?(\d+w)?(\d+d)?(\d+h)?(\d+m)?`)

	yearRe   = regexp.MustCompile(`year`)
	weekRe   = regexp.MustCompile(`w(ee)?k`)
	dayRe    = regexp.MustCompile(`day`)
	hourRe   = regexp.MustCompile(`h(ou)?r`)
	minuteRe = regexp.MustCompile(`min(ute)?`)
)

type uptimeParts struct {
	years, weeks, days, hours, minutes, seconds int64
}

func (p uptimeParts) total() int64 {
	return p.years*YearSeconds +
		p.weeks*WeekSeconds +
		p.days*DaySeconds +
		p.hours*HourSeconds +
		p.minutes*MinuteSeconds +
		p.seconds
}

// ParseUptime converts a device uptime string into seconds. It never
// fails; segments that match no known unit contribute zero.
//
// With short set, the input is either a clock form "HH:MM:SS" (used
// until a day has passed) or a compact form such as "1d22h23m" or
// "20w4d21h", with any subset of week/day/hour/minute segments present.
// A year segment ("y") is recognized for forward compatibility.
//
// Otherwise the input is the long form "32 week(s), 6 day(s),
// 10 hour(s), 39 minute(s)", with units matched by substring so
// abbreviations like "wk" and "hr" are accepted.
func ParseUptime(s string, short bool) int64 {
	s = strings.TrimSpace(s)
	if short {
		return parseUptimeShort(s).total()
	}
	return parseUptimeLong(s).total()
}

func parseUptimeShort(s string) uptimeParts {
	var p uptimeParts

	if m := clockRe.FindStringSubmatch(s); m != nil {
		p.hours = atoi64(m[1])
		p.minutes = atoi64(m[2])
		p.seconds = atoi64(m[3])
		return p
	}

	m := compactRe.FindStringSubmatch(s)
	if m == nil {
		return p
	}
	for _, seg := range m[1:] {
		if seg == "" {
			continue
		}
		n := atoi64(seg[:len(seg)-1])
		switch seg[len(seg)-1] {
		case 'y':
			p.years = n
		case 'w':
			p.weeks = n
		case 'd':
			p.days = n
		case 'h':
			p.hours = n
		case 'm':
			p.minutes = n
		}
	}
	return p
}

func parseUptimeLong(s string) uptimeParts {
	var p uptimeParts

	for _, element := range strings.Split(s, ", ") {
		fields := strings.Fields(element)
		if len(fields) < 2 {
			continue
		}
		n := atoi64(fields[0])
		switch {
		case yearRe.MatchString(element):
			p.years = n
		case weekRe.MatchString(element):
			p.weeks = n
		case dayRe.MatchString(element):
			p.days = n
		case hourRe.MatchString(element):
			p.hours = n
		case minuteRe.MatchString(element):
			p.minutes = n
		}
	}
	return p
}

func atoi64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
