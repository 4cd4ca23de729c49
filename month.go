package privfolio

import (
	"fmt"
	"strings"
	"time"
)

// monthKeyFormat is the format used to persist a month as its first day, in
// ISO-8601 form.
const monthKeyFormat = "2006-01-02" // write format

// permissive read formats, tried in order.
var monthReadFormats = []string{"2006-01", "2006-1", "2006-1-2"}

// Month represents a calendar month, the natural key of a balance record.
// It always denotes the first day of that month.
type Month struct {
	y int        // year
	m time.Month // month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: t.Year(), m: t.Month()}
}

// MonthOf returns the Month containing the given instant.
func MonthOf(t time.Time) Month { return NewMonth(t.Year(), t.Month()) }

// ThisMonth returns the current wall-clock month.
func ThisMonth() Month { return MonthOf(time.Now()) }

// Year returns the month's year.
func (m Month) Year() int { return m.y }

// Month returns the month within the year.
func (m Month) Month() time.Month { return m.m }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// time returns a time.Time that is a canonical representation of that month
// (its first day at midnight UTC).
func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// String formats the month as its first day in ISO-8601 form.
func (m Month) String() string { return m.time().Format(monthKeyFormat) }

// Format returns a textual representation of the month's first day formatted
// according to the layout defined by the argument.
//
//	See the documentation for [time.Format].
func (m Month) Format(layout string) string { return m.time().Format(layout) }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// After reports whether the month m is after x.
func (m Month) After(x Month) bool { return x.Before(m) }

// AddMonths returns a new Month with the given number of months added.
func (m Month) AddMonths(i int) Month { return NewMonth(m.y, m.m+time.Month(i)) }

// ParseMonth parses a Month from a string. It is lenient and accepts a bare
// month like "2024-03" or "2024-3" as well as any day within the month like
// "2024-03-15", which collapses to that month.
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	for _, layout := range monthReadFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return MonthOf(t), nil
		}
	}
	return Month{}, fmt.Errorf("invalid month %q, want format %q or %q", str, "2006-01", monthKeyFormat)
}

// MustParseMonth is like ParseMonth but panics on error.
func MustParseMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}
