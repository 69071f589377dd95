package datepicker

import "datepick/internal/calendar"

// Selection is where the committed date lives. The Controller reads and
// proposes changes only through this interface, so the controlled and
// uncontrolled modes differ in exactly one place.
type Selection interface {
	// Value returns the committed date, if any.
	Value() (calendar.Date, bool)
	// Controlled reports whether an external owner holds the value.
	Controlled() bool
	// propose asks to commit d and reports whether the value changed here.
	propose(d calendar.Date) bool
}

// Uncontrolled selection is owned and mutated by the Controller.
type Uncontrolled struct {
	value calendar.Date
}

func (u *Uncontrolled) Value() (calendar.Date, bool) {
	return u.value, !u.value.IsZero()
}

func (u *Uncontrolled) Controlled() bool { return false }

func (u *Uncontrolled) propose(d calendar.Date) bool {
	u.value = d
	return true
}

// Controlled selection mirrors a value owned by the caller. Proposals are
// only reported through the change listener; the value moves when the owner
// calls Controller.SetValue.
type Controlled struct {
	value calendar.Date
}

func (c *Controlled) Value() (calendar.Date, bool) {
	return c.value, !c.value.IsZero()
}

func (c *Controlled) Controlled() bool { return true }

func (c *Controlled) propose(calendar.Date) bool { return false }

func (c *Controlled) set(d calendar.Date) { c.value = d }
