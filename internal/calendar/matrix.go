package calendar

import "time"

const (
	DaysPerWeek = 7
	maxWeeks    = 6
)

// WeekRow is one line of the month grid. A zero Date is a padding cell that
// belongs to an adjacent month.
type WeekRow [DaysPerWeek]Date

func (r WeekRow) empty() bool {
	for _, d := range r {
		if !d.IsZero() {
			return false
		}
	}
	return true
}

// MonthMatrix is the week-by-day grid for one displayed month. Column c of
// every row shows weekday (FirstWeekday + c) mod 7.
type MonthMatrix struct {
	Year         int
	Month        time.Month
	FirstWeekday time.Weekday
	Rows         []WeekRow
}

// Build lays out month of year under columns starting at firstWeekday.
//
// The first row is left-padded up to the weekday of day 1, the last row is
// right-padded to seven cells, and rows that would hold no day of the month
// are not emitted, so a month yields four to six rows.
func Build(year int, month time.Month, firstWeekday time.Weekday) MonthMatrix {
	mm := MonthMatrix{Year: year, Month: month, FirstWeekday: firstWeekday}
	if month < time.January || month > time.December {
		return mm
	}
	n := DaysIn(year, month)
	first := Date{Year: year, Month: month, Day: 1}
	lead := (int(first.Weekday()) - int(firstWeekday) + DaysPerWeek) % DaysPerWeek

	day := 1
	for w := 0; w < maxWeeks; w++ {
		var row WeekRow
		for c := 0; c < DaysPerWeek; c++ {
			if w == 0 && c < lead {
				continue
			}
			if day > n {
				break
			}
			row[c] = Date{Year: year, Month: month, Day: day}
			day++
		}
		if row.empty() {
			break
		}
		mm.Rows = append(mm.Rows, row)
	}
	return mm
}

// Days returns every real date in grid order.
func (mm MonthMatrix) Days() []Date {
	out := make([]Date, 0, 31)
	for _, r := range mm.Rows {
		for _, d := range r {
			if !d.IsZero() {
				out = append(out, d)
			}
		}
	}
	return out
}

// Position returns the row and column holding d.
func (mm MonthMatrix) Position(d Date) (row, col int, ok bool) {
	if d.Year != mm.Year || d.Month != mm.Month {
		return 0, 0, false
	}
	for i, r := range mm.Rows {
		for j, x := range r {
			if x == d {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func (mm MonthMatrix) Contains(d Date) bool {
	_, _, ok := mm.Position(d)
	return ok
}

// Column returns the weekday shown in column c.
func (mm MonthMatrix) Column(c int) time.Weekday {
	return time.Weekday((int(mm.FirstWeekday) + c) % DaysPerWeek)
}
