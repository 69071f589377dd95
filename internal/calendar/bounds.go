package calendar

import "fmt"

// Bounds is an inclusive [Min, Max] constraint. A nil end is open.
type Bounds struct {
	Min *Date
	Max *Date
}

// NewBounds builds Bounds from optional zero-means-absent dates.
func NewBounds(min, max Date) Bounds {
	var b Bounds
	if !min.IsZero() {
		b.Min = &min
	}
	if !max.IsZero() {
		b.Max = &max
	}
	return b
}

// IsWithinBounds reports whether d lies inside b.
func IsWithinBounds(d Date, b Bounds) bool {
	return b.Contains(d)
}

func (b Bounds) Contains(d Date) bool {
	if b.Min != nil && d.Before(*b.Min) {
		return false
	}
	if b.Max != nil && d.After(*b.Max) {
		return false
	}
	return true
}

func (b Bounds) Unbounded() bool { return b.Min == nil && b.Max == nil }

// Validate checks that both ends are real dates and Min <= Max.
func (b Bounds) Validate() error {
	if b.Min != nil && !b.Min.Valid() {
		return fmt.Errorf("min date %v is not a valid date", *b.Min)
	}
	if b.Max != nil && !b.Max.Valid() {
		return fmt.Errorf("max date %v is not a valid date", *b.Max)
	}
	if b.Min != nil && b.Max != nil && b.Min.After(*b.Max) {
		return fmt.Errorf("min date %v is after max date %v", *b.Min, *b.Max)
	}
	return nil
}

// Clamp pulls d into b.
func (b Bounds) Clamp(d Date) Date {
	if b.Min != nil && d.Before(*b.Min) {
		return *b.Min
	}
	if b.Max != nil && d.After(*b.Max) {
		return *b.Max
	}
	return d
}

// String renders b as "[min, max]" with "…" for an open end.
func (b Bounds) String() string {
	lo, hi := "…", "…"
	if b.Min != nil {
		lo = b.Min.String()
	}
	if b.Max != nil {
		hi = b.Max.String()
	}
	return "[" + lo + ", " + hi + "]"
}
