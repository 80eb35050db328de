package clock

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Date is a UTC calendar date in YYYY-MM-DD form. The format is fixed-width
// and zero-padded, so string order is chronological order.
// The zero value means "unset".
type Date string

func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(Layout))
}

// ParseDate validates and normalizes user input.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool { return d == "" }

func (d Date) String() string { return string(d) }

func (d Date) Before(o Date) bool { return d < o }

func (d Date) After(o Date) bool { return d > o }

func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(Layout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", string(d), err)
	}
	return t, nil
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) (Date, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return DateOf(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the absolute number of calendar days between a and b.
func DaysBetween(a, b Date) (int, error) {
	ta, err := a.Time()
	if err != nil {
		return 0, err
	}
	tb, err := b.Time()
	if err != nil {
		return 0, err
	}
	diff := tb.Sub(ta)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour)), nil
}

// Short renders d as "Jan 2", falling back to the raw value when malformed.
func (d Date) Short() string {
	t, err := d.Time()
	if err != nil {
		return string(d)
	}
	return t.Format("Jan 2")
}
