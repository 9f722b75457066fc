// Package validate holds the field grammars shared by task records.
package validate

import (
	"regexp"
	"strings"
	"time"
)

// TimeLayout is the Taskwarrior timestamp format, YYYYMMDDThhmmssZ in UTC.
const TimeLayout = "20060102T150405Z"

// durations lists every unit token accepted by a recurrence duration.
//
//nolint:gochecknoglobals // fixed vocabulary
var durations = []string{
	"annual", "biannual", "bimonthly", "biweekly", "biyearly",
	"daily", "days", "day", "d",
	"fortnight",
	"hours", "hour", "hrs", "hr", "h",
	"minutes", "mins", "min",
	"monthly", "months", "month", "mnths", "mths", "mth", "mos", "mo",
	"quarterly", "quarters", "qrtrs", "qtrs", "qtr", "q",
	"seconds", "secs", "sec", "s",
	"semiannual", "sennight",
	"weekdays", "weekly", "weeks", "week", "wks", "wk", "w",
	"yearly", "years", "year", "yrs", "yr", "y",
}

//nolint:gochecknoglobals // compiled once
var (
	dateRegExp     = regexp.MustCompile(`^(19[7-9]\d|[2-9]\d{3})(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3])([0-5]\d){2}Z$`)
	durationRegExp = regexp.MustCompile(`^(-?\d)?(` + strings.Join(durations, "|") + `)$`)
	maskRegExp     = regexp.MustCompile(`^[-+XW]+$`)
	priorityRegExp = regexp.MustCompile(`^(L|M|H)$`)
)

// Func reports whether a candidate string matches a grammar.
type Func func(string) bool

// Date reports whether s is a timestamp in TimeLayout.
// Day of month is checked by digit range only.
func Date(s string) bool {
	return dateRegExp.MatchString(s)
}

// Duration reports whether s is a recurrence duration such as "monthly" or "2w".
func Duration(s string) bool {
	return durationRegExp.MatchString(s)
}

// Mask reports whether s is a completion mask.
func Mask(s string) bool {
	return maskRegExp.MatchString(s)
}

// Priority reports whether s is one of L, M or H.
func Priority(s string) bool {
	return priorityRegExp.MatchString(s)
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Names returns the grammar names accepted by Lookup.
func Names() []string {
	return []string{"date", "duration", "mask", "priority"}
}

// Lookup returns the validator registered under name.
func Lookup(name string) (Func, bool) {
	switch name {
	case "date":
		return Date, true
	case "duration":
		return Duration, true
	case "mask":
		return Mask, true
	case "priority":
		return Priority, true
	default:
		return nil, false
	}
}
