package datepicker

import (
	"errors"
	"fmt"

	"datepick/internal/calendar"
)

var (
	ErrOutOfRange    = errors.New("date outside allowed range")
	ErrDisabled      = errors.New("date picker is disabled")
	ErrNotControlled = errors.New("date picker is not controlled")
	ErrNoDate        = errors.New("not a calendar date")
	ErrInvalidMonth  = errors.New("month must be between 1 and 12")
	ErrInvalidYear   = fmt.Errorf("year must be between %d and %d", calendar.MinYear, calendar.MaxYear)
)

// BoundsError reports a real date that falls outside the configured bounds.
type BoundsError struct {
	Date   calendar.Date
	Bounds calendar.Bounds
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %s not in %s", ErrOutOfRange, e.Date, e.Bounds)
}

func (e *BoundsError) Is(target error) bool { return target == ErrOutOfRange }

// ConfigError is returned by New for configurations no date could satisfy.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("datepicker config: %s: %s", e.Field, e.Reason)
}

func errConfig(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}
