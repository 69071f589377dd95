package datepicker

import (
	"time"

	"datepick/internal/calendar"
)

// Cursor is the (year, month) on display. It is independent of the selected
// date and only changes through its transition methods.
//
// The grid is derived from the cursor on demand; the last build is kept so
// repeated renders of the same month do not rebuild it.
type Cursor struct {
	year  int
	month time.Month
	first time.Weekday

	memo *calendar.MonthMatrix
}

// NewCursor places a cursor on month of year. Out-of-range values are
// clamped into the representable calendar.
func NewCursor(year int, month time.Month, first time.Weekday) Cursor {
	c := Cursor{year: year, month: month, first: first}
	c.normalize()
	return c
}

// CursorAt places a cursor on the month containing d.
func CursorAt(d calendar.Date, first time.Weekday) Cursor {
	return NewCursor(d.Year, d.Month, first)
}

func (c *Cursor) normalize() {
	if c.month < time.January {
		c.month = time.January
	}
	if c.month > time.December {
		c.month = time.December
	}
	if c.year < calendar.MinYear {
		c.year = calendar.MinYear
	}
	if c.year > calendar.MaxYear {
		c.year = calendar.MaxYear
	}
}

func (c Cursor) Year() int                  { return c.year }
func (c Cursor) Month() time.Month          { return c.month }
func (c Cursor) FirstWeekday() time.Weekday { return c.first }

// Next advances one month, rolling December into January of the next year.
// It stops at December of MaxYear.
func (c *Cursor) Next() {
	if c.month == time.December {
		if c.year >= calendar.MaxYear {
			return
		}
		c.year++
		c.month = time.January
		return
	}
	c.month++
}

// Previous steps back one month, rolling January into December of the
// previous year. It stops at January of MinYear.
func (c *Cursor) Previous() {
	if c.month == time.January {
		if c.year <= calendar.MinYear {
			return
		}
		c.year--
		c.month = time.December
		return
	}
	c.month--
}

// JumpToMonth replaces the month and keeps the year.
func (c *Cursor) JumpToMonth(m time.Month) error {
	if m < time.January || m > time.December {
		return ErrInvalidMonth
	}
	c.month = m
	return nil
}

// JumpToYear replaces the year and keeps the month.
func (c *Cursor) JumpToYear(y int) error {
	if y < calendar.MinYear || y > calendar.MaxYear {
		return ErrInvalidYear
	}
	c.year = y
	return nil
}

// MoveTo shows the month containing d.
func (c *Cursor) MoveTo(d calendar.Date) {
	c.year, c.month = d.Year, d.Month
	c.normalize()
}

// Shows reports whether d falls in the displayed month.
func (c Cursor) Shows(d calendar.Date) bool {
	return d.Year == c.year && d.Month == c.month
}

// Matrix returns the grid for the current month. The returned rows are
// shared with the cursor's memo and must not be modified.
func (c *Cursor) Matrix() calendar.MonthMatrix {
	if m := c.memo; m != nil && m.Year == c.year && m.Month == c.month && m.FirstWeekday == c.first {
		return *m
	}
	mm := calendar.Build(c.year, c.month, c.first)
	c.memo = &mm
	return mm
}

// CanPrevious reports whether the previous month holds any day inside b.
// The cursor does not enforce bounds; views use this to dim navigation.
func (c Cursor) CanPrevious(b calendar.Bounds) bool {
	if c.year == calendar.MinYear && c.month == time.January {
		return false
	}
	if b.Min == nil {
		return true
	}
	p := c
	p.Previous()
	last := calendar.Date{Year: p.year, Month: p.month, Day: calendar.DaysIn(p.year, p.month)}
	return !last.Before(*b.Min)
}

// CanNext reports whether the next month holds any day inside b.
func (c Cursor) CanNext(b calendar.Bounds) bool {
	if c.year == calendar.MaxYear && c.month == time.December {
		return false
	}
	if b.Max == nil {
		return true
	}
	n := c
	n.Next()
	first := calendar.Date{Year: n.year, Month: n.month, Day: 1}
	return !first.After(*b.Max)
}
