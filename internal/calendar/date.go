// Package calendar holds the day-granularity date model used by the picker:
// the Date value type, the month grid builder, inclusive bounds and the
// fixed-layout text codec.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

const (
	MinYear = 1
	MaxYear = 9999
)

// Date is a calendar date without a time of day. The zero value means "no
// date" and is never Valid.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for y-m-d, or an error if it does not exist.
func New(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, int(month), day)
	}
	return d, nil
}

// MustNew is New for literals known to be valid.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime drops the time-of-day and location from t.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar date reported by now. A nil now uses time.Now.
func Today(now func() time.Time) Date {
	if now == nil {
		now = time.Now
	}
	return FromTime(now())
}

var reISODate = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseISO parses yyyy-mm-dd. It is used for flags and environment values,
// not for the picker's text field.
func ParseISO(s string) (Date, error) {
	m := reISODate.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	out, err := New(y, time.Month(mo), d)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return out, nil
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// IsLeap reports whether year has a February 29th.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

func (d Date) IsZero() bool { return d == Date{} }

// Valid reports whether d names a real day within MinYear..MaxYear.
func (d Date) Valid() bool {
	if d.Year < MinYear || d.Year > MaxYear {
		return false
	}
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysIn(d.Year, d.Month)
}

// Compare returns -1, 0 or +1 ordering by (year, month, day).
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// SameMonth reports whether d and o fall in the same year and month.
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

// Time returns midnight UTC of d. UTC keeps day arithmetic free of DST gaps.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns d shifted by n days, rolling months and years.
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// String renders d as yyyy-mm-dd.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	v, err := ParseISO(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
