// Package datepicker reconciles text input, day clicks and month navigation
// into a single committed date.
//
// A Controller is driven synchronously by one caller. It is not safe for
// concurrent use, and calling its commands from inside the change listener is
// undefined behavior.
package datepicker

import (
	"errors"
	"slices"
	"time"

	"datepick/internal/calendar"
	"datepick/internal/logging"

	"github.com/sirupsen/logrus"
)

// Config is accepted once by New. Every field is optional.
type Config struct {
	// DefaultDate positions the cursor. Without it the cursor starts on the
	// committed value, or on today.
	DefaultDate *calendar.Date
	// DefaultValue seeds the text field of an uncontrolled picker. It is
	// processed like typed text but does not notify.
	DefaultValue string

	MinDate *calendar.Date
	MaxDate *calendar.Date

	// Controlled hands ownership of the committed value to the caller.
	Controlled bool
	// Value is the caller-owned value at construction (controlled only).
	Value *calendar.Date

	Disabled    bool
	DefaultOpen bool

	FirstWeekday time.Weekday
	Layout       calendar.Layout

	// OnChange is called synchronously after every successful commit.
	OnChange func(calendar.Date)

	Logger logrus.FieldLogger
	Now    func() time.Time
}

// TextInput is the raw field contents plus the error to show for it. Err is
// nil, a *calendar.ParseError of KindInvalid, or a *BoundsError.
type TextInput struct {
	Text string
	Err  error
}

func (t TextInput) Invalid() bool { return t.Err != nil }

// Message is the user-facing error line for the field, or "".
func (t TextInput) Message() string {
	switch {
	case t.Err == nil:
		return ""
	case errors.Is(t.Err, ErrOutOfRange):
		return ErrOutOfRange.Error()
	default:
		return calendar.ErrInvalid.Error()
	}
}

type Controller struct {
	codec    calendar.Codec
	bounds   calendar.Bounds
	cursor   Cursor
	sel      Selection
	text     TextInput
	open     bool
	disabled bool

	onChange func(calendar.Date)
	log      logrus.FieldLogger
	now      func() time.Time
}

// New validates cfg and returns a Controller. Min after Max, or any
// configured date that does not exist, is a *ConfigError.
func New(cfg Config) (*Controller, error) {
	// The controller owns copies of the caller's dates.
	bounds := calendar.Bounds{Min: copyDate(cfg.MinDate), Max: copyDate(cfg.MaxDate)}
	if err := bounds.Validate(); err != nil {
		return nil, errConfig("MinDate/MaxDate", err.Error())
	}
	if cfg.DefaultDate != nil && !cfg.DefaultDate.Valid() {
		return nil, errConfig("DefaultDate", "not a valid date")
	}
	if cfg.Value != nil && !cfg.Value.Valid() {
		return nil, errConfig("Value", "not a valid date")
	}
	if cfg.Value != nil && !cfg.Controlled {
		return nil, errConfig("Value", "only allowed when Controlled is set")
	}
	if cfg.FirstWeekday < time.Sunday || cfg.FirstWeekday > time.Saturday {
		return nil, errConfig("FirstWeekday", "not a weekday")
	}

	c := &Controller{
		codec:    calendar.Codec{Layout: cfg.Layout},
		bounds:   bounds,
		open:     cfg.DefaultOpen,
		onChange: cfg.OnChange,
		log:      cfg.Logger,
		now:      cfg.Now,
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	if c.now == nil {
		c.now = time.Now
	}

	if cfg.Controlled {
		ctl := &Controlled{}
		if cfg.Value != nil {
			ctl.set(*cfg.Value)
			c.text.Text = c.codec.Format(*cfg.Value)
		}
		c.sel = ctl
	} else {
		c.sel = &Uncontrolled{}
	}

	switch {
	case cfg.DefaultDate != nil:
		c.cursor = CursorAt(*cfg.DefaultDate, cfg.FirstWeekday)
	case cfg.Value != nil:
		c.cursor = CursorAt(*cfg.Value, cfg.FirstWeekday)
	default:
		c.cursor = CursorAt(calendar.Today(c.now), cfg.FirstWeekday)
	}

	if cfg.DefaultValue != "" && !cfg.Controlled {
		// The seed may legitimately be invalid; the error stays on the field.
		_ = c.applyText(cfg.DefaultValue, false)
	}
	c.disabled = cfg.Disabled
	return c, nil
}

// OnChange replaces the change listener.
func (c *Controller) OnChange(fn func(calendar.Date)) { c.onChange = fn }

func (c *Controller) Cursor() (int, time.Month) { return c.cursor.Year(), c.cursor.Month() }

// Matrix returns the grid for the displayed month. The caller owns the
// returned rows.
func (c *Controller) Matrix() calendar.MonthMatrix {
	mm := c.cursor.Matrix()
	mm.Rows = slices.Clone(mm.Rows)
	return mm
}

func (c *Controller) Selection() (calendar.Date, bool) { return c.sel.Value() }
func (c *Controller) TextInput() TextInput             { return c.text }
func (c *Controller) IsOpen() bool                     { return c.open }
func (c *Controller) Disabled() bool                   { return c.disabled }
func (c *Controller) Controlled() bool                 { return c.sel.Controlled() }
func (c *Controller) Codec() calendar.Codec            { return c.codec }
func (c *Controller) FirstWeekday() time.Weekday       { return c.cursor.FirstWeekday() }
func (c *Controller) Today() calendar.Date             { return calendar.Today(c.now) }

// Bounds returns a copy of the configured bounds.
func (c *Controller) Bounds() calendar.Bounds {
	return calendar.Bounds{Min: copyDate(c.bounds.Min), Max: copyDate(c.bounds.Max)}
}

func copyDate(d *calendar.Date) *calendar.Date {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

// CanPrevious and CanNext tell a view whether the neighbouring month holds
// any selectable day.
func (c *Controller) CanPrevious() bool { return c.cursor.CanPrevious(c.bounds) }
func (c *Controller) CanNext() bool     { return c.cursor.CanNext(c.bounds) }

// Selectable reports whether a click on d would commit.
func (c *Controller) Selectable(d calendar.Date) bool {
	return d.Valid() && c.bounds.Contains(d)
}

// SetDisabled freezes or unfreezes the picker.
func (c *Controller) SetDisabled(disabled bool) { c.disabled = disabled }

// SetValue pushes the caller-owned value into a controlled picker. A nil d
// clears it. The text field is re-synced to the new value.
func (c *Controller) SetValue(d *calendar.Date) error {
	ctl, ok := c.sel.(*Controlled)
	if !ok {
		return ErrNotControlled
	}
	if d == nil {
		ctl.set(calendar.Date{})
		c.text = TextInput{}
		return nil
	}
	if !d.Valid() {
		return ErrNoDate
	}
	ctl.set(*d)
	c.text = TextInput{Text: c.codec.Format(*d)}
	return nil
}

// OnDayClicked commits d if it lies within bounds. An out-of-range d leaves
// the selection alone and puts a *BoundsError on the text field.
func (c *Controller) OnDayClicked(d calendar.Date) error {
	if c.disabled {
		return ErrDisabled
	}
	if !d.Valid() {
		return ErrNoDate
	}
	if !c.bounds.Contains(d) {
		return c.reject(d)
	}
	c.commit(d, true)
	return nil
}

// OnTextChanged stores text and tries to commit it.
//
// Incomplete text clears the field error and returns the incomplete
// *calendar.ParseError so callers can tell "still typing" apart from success.
// Invalid text and out-of-range dates set the field error and are returned.
func (c *Controller) OnTextChanged(text string) error {
	if c.disabled {
		return ErrDisabled
	}
	return c.applyText(text, true)
}

func (c *Controller) applyText(text string, notify bool) error {
	c.text.Text = text
	d, err := c.codec.Parse(text)
	if err != nil {
		if errors.Is(err, calendar.ErrIncomplete) {
			c.text.Err = nil
			return err
		}
		c.text.Err = err
		c.log.WithFields(logrus.Fields{"text": text, "reason": err.Error()}).Debug("text rejected")
		return err
	}
	if !c.bounds.Contains(d) {
		return c.reject(d)
	}
	c.commit(d, notify)
	return nil
}

func (c *Controller) reject(d calendar.Date) error {
	be := &BoundsError{Date: d, Bounds: c.Bounds()}
	c.text.Err = be
	c.log.WithFields(logrus.Fields{"date": d.String(), "bounds": c.bounds.String()}).Debug("date out of range")
	return be
}

func (c *Controller) commit(d calendar.Date, notify bool) {
	if c.sel.propose(d) {
		c.text = TextInput{Text: c.codec.Format(d)}
	} else {
		c.text.Err = nil
	}
	if !c.cursor.Shows(d) {
		c.cursor.MoveTo(d)
	}
	c.log.WithFields(logrus.Fields{"date": d.String(), "controlled": c.sel.Controlled()}).Debug("date committed")
	if notify && c.onChange != nil {
		c.onChange(d)
	}
}

func (c *Controller) OnNext() {
	if c.disabled {
		return
	}
	c.cursor.Next()
	c.logCursor("next month")
}

func (c *Controller) OnPrevious() {
	if c.disabled {
		return
	}
	c.cursor.Previous()
	c.logCursor("previous month")
}

func (c *Controller) OnJumpToMonth(m time.Month) error {
	if c.disabled {
		return ErrDisabled
	}
	if err := c.cursor.JumpToMonth(m); err != nil {
		return err
	}
	c.logCursor("jump to month")
	return nil
}

func (c *Controller) OnJumpToYear(y int) error {
	if c.disabled {
		return ErrDisabled
	}
	if err := c.cursor.JumpToYear(y); err != nil {
		return err
	}
	c.logCursor("jump to year")
	return nil
}

// OnOpenToggle opens or closes the calendar. Opening shows the month of the
// committed date, if there is one.
func (c *Controller) OnOpenToggle() {
	if c.disabled {
		return
	}
	c.open = !c.open
	if !c.open {
		return
	}
	if d, ok := c.sel.Value(); ok {
		c.cursor.MoveTo(d)
	}
}

func (c *Controller) logCursor(msg string) {
	c.log.WithFields(logrus.Fields{"year": c.cursor.Year(), "month": int(c.cursor.Month())}).Debug(msg)
}
