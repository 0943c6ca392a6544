package timeparse

import (
	"regexp"
	"strconv"
	"strings"
)

// Bounds for normalized study hours.
const (
	// DefaultHours is returned when the input contains no digits at all.
	DefaultHours = 100

	// MinHours and MaxHours bound the result on the unit-converted path.
	MinHours = 10
	MaxHours = 2000
)

// Hours of focused study assumed per calendar unit.
const (
	HoursPerDay   = 8
	HoursPerWeek  = 40
	HoursPerMonth = 160
	HoursPerYear  = 1920
)

type unitEntry struct {
	token      string
	multiplier int
}

// unitTable maps unit tokens to hours-per-unit. Entries are matched with a
// bidirectional prefix check and the FIRST hit in declaration order wins, so
// the order is part of the contract: "m" resolves at the month group, "w" at
// the week group. Do not reorder and do not replace with a map.
var unitTable = []unitEntry{
	{"hour", 1}, {"hours", 1}, {"hr", 1}, {"hrs", 1}, {"h", 1},
	{"day", HoursPerDay}, {"days", HoursPerDay}, {"d", HoursPerDay},
	{"week", HoursPerWeek}, {"weeks", HoursPerWeek}, {"wk", HoursPerWeek}, {"w", HoursPerWeek},
	{"month", HoursPerMonth}, {"months", HoursPerMonth}, {"mo", HoursPerMonth}, {"m", HoursPerMonth},
	{"year", HoursPerYear}, {"years", HoursPerYear}, {"yr", HoursPerYear}, {"y", HoursPerYear},
}

var (
	// An unsigned decimal optionally followed by a run of letters. A leading
	// minus sign is never part of the match, so "-5 hours" parses as 5.
	valueUnitRe = regexp.MustCompile(`(\d+\.?\d*)\s*([a-z]*)`)
	digitRunRe  = regexp.MustCompile(`\d+`)
)

// Hours converts a free-form duration string ("100 hours", "2 months",
// "10 weeks", "45d") to a total hour count. It is a total function: input
// with no digits degrades to DefaultHours and an unrecognized unit degrades
// to the bare numeric value.
//
// Only the unit-converted path is clamped to [MinHours, MaxHours]; the
// digit-run fallback and the unrecognized-unit path return unclamped values.
// That asymmetry is inherited behavior and is pinned by tests.
func Hours(raw string) int {
	s := strings.ToLower(strings.TrimSpace(raw))

	m := valueUnitRe.FindStringSubmatch(s)
	if m == nil {
		// No value-unit match; fall back to the first run of digits
		// anywhere in the string, unclamped.
		if digits := digitRunRe.FindString(s); digits != "" {
			n, _ := strconv.Atoi(digits)
			return n
		}
		return DefaultHours
	}

	value, _ := strconv.ParseFloat(m[1], 64)
	unit := m[2]
	if unit == "" {
		unit = "hours"
	}

	for _, e := range unitTable {
		if strings.HasPrefix(e.token, unit) || strings.HasPrefix(unit, e.token) {
			return clamp(int(value * float64(e.multiplier)))
		}
	}

	// Unrecognized unit ("3 fortnights"): treat the value as hours, unclamped.
	return int(value)
}

func clamp(hours int) int {
	if hours < MinHours {
		return MinHours
	}
	if hours > MaxHours {
		return MaxHours
	}
	return hours
}
