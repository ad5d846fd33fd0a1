package numerology

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// BirthDate is a date of birth parsed from YYYY-MM-DD. Components are kept as
// parsed; only a zero component makes the date invalid.
type BirthDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ParseBirthDate splits s on '-' and reads the leading integer of each of the
// first three parts. Missing or unparsable parts read as zero, which yields an
// invalid BirthDate rather than an error.
func ParseBirthDate(s string) BirthDate {
	parts := strings.Split(s, "-")

	var fields [3]int
	for i := 0; i < len(fields) && i < len(parts); i++ {
		fields[i] = leadingInt(parts[i])
	}

	return BirthDate{Year: fields[0], Month: fields[1], Day: fields[2]}
}

// Valid reports whether every component is non-zero.
func (d BirthDate) Valid() bool {
	return d.Year != 0 && d.Month != 0 && d.Day != 0
}

// CalendarValid reports whether the date exists on the calendar. Out of range
// days and months still produce digit roots; callers that need a real date
// check this as well.
func (d BirthDate) CalendarValid() bool {
	if !d.Valid() || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	return t.Day() == d.Day && int(t.Month()) == d.Month
}

// Digits concatenates year, zero padded month and zero padded day.
func (d BirthDate) Digits() string {
	return fmt.Sprintf("%d%02d%02d", d.Year, d.Month, d.Day)
}

// Long renders the date as "19TH January 1991". It returns "" when the date is
// invalid or the month has no name.
func (d BirthDate) Long() string {
	if !d.Valid() || d.Month < 1 || d.Month > 12 {
		return ""
	}
	return fmt.Sprintf("%d%s %s %d", d.Day, OrdinalSuffix(d.Day), time.Month(d.Month), d.Year)
}

// FormatLongDate parses dob and renders it with Long. Dates that cannot be
// rendered come back unchanged.
func FormatLongDate(dob string) string {
	if long := ParseBirthDate(dob).Long(); long != "" {
		return long
	}
	return dob
}

// OrdinalSuffix returns the upper case English ordinal suffix for n.
func OrdinalSuffix(n int) string {
	j, k := n%10, n%100
	switch {
	case j == 1 && k != 11:
		return "ST"
	case j == 2 && k != 12:
		return "ND"
	case j == 3 && k != 13:
		return "RD"
	default:
		return "TH"
	}
}

// leadingInt reads an optionally signed run of digits at the start of s,
// after leading whitespace. Anything else reads as zero. Runs too long for an
// int saturate at +/-math.MaxInt.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		if n < 0 {
			return -math.MaxInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}
