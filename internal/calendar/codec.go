package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout names the order of the numeric fields in the text form.
type Layout int

const (
	// LayoutMonthDayYear is mm/dd/yyyy, the picker's wire format.
	LayoutMonthDayYear Layout = iota
	// LayoutDayMonthYear is dd/mm/yyyy.
	LayoutDayMonthYear
)

// TextLen is the length of every complete date string.
const TextLen = len("mm/dd/yyyy")

const sep = '/'

func (l Layout) String() string {
	switch l {
	case LayoutDayMonthYear:
		return "dd/mm/yyyy"
	default:
		return "mm/dd/yyyy"
	}
}

// ParseLayout accepts "mdy", "dmy" or the literal patterns.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mdy", "mm/dd/yyyy":
		return LayoutMonthDayYear, nil
	case "dmy", "dd/mm/yyyy":
		return LayoutDayMonthYear, nil
	default:
		return 0, fmt.Errorf("unknown layout %q (expected mdy or dmy)", s)
	}
}

// ParseErrorKind separates text that is still being typed from text that
// can never become a date.
type ParseErrorKind int

const (
	KindIncomplete ParseErrorKind = iota + 1
	KindInvalid
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindIncomplete:
		return "incomplete"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

var (
	ErrIncomplete = errors.New("incomplete date")
	ErrInvalid    = errors.New("invalid date")
)

type ParseError struct {
	Kind   ParseErrorKind
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Kind == KindIncomplete {
		return ErrIncomplete.Error()
	}
	if e.Reason == "" {
		return ErrInvalid.Error()
	}
	return ErrInvalid.Error() + ": " + e.Reason
}

func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrIncomplete:
		return e.Kind == KindIncomplete
	case ErrInvalid:
		return e.Kind == KindInvalid
	}
	return false
}

func invalid(input, format string, args ...any) *ParseError {
	return &ParseError{Kind: KindInvalid, Input: input, Reason: fmt.Sprintf(format, args...)}
}

// Codec converts between Date and its fixed-width text form.
type Codec struct {
	Layout Layout
}

var defaultCodec = Codec{Layout: LayoutMonthDayYear}

// Format renders d as mm/dd/yyyy.
func Format(d Date) string { return defaultCodec.Format(d) }

// Parse reads mm/dd/yyyy.
func Parse(text string) (Date, error) { return defaultCodec.Parse(text) }

// Format renders d zero-padded with a four-digit year. It returns "" for the
// zero Date and for any Date that is not Valid.
func (c Codec) Format(d Date) string {
	if !d.Valid() {
		return ""
	}
	a, b := int(d.Month), d.Day
	if c.Layout == LayoutDayMonthYear {
		a, b = b, a
	}
	var buf [TextLen]byte
	put2(buf[0:2], a)
	buf[2] = sep
	put2(buf[3:5], b)
	buf[5] = sep
	put2(buf[6:8], d.Year/100)
	put2(buf[8:10], d.Year%100)
	return string(buf[:])
}

func put2(dst []byte, n int) {
	n %= 100
	dst[0] = byte('0' + n/10)
	dst[1] = byte('0' + n%10)
}

// Parse reads text in the codec's layout. Input shorter than TextLen fails
// with KindIncomplete. Anything else that is not an existing date fails with
// KindInvalid.
func (c Codec) Parse(text string) (Date, error) {
	if len(text) < TextLen {
		return Date{}, &ParseError{Kind: KindIncomplete, Input: text}
	}
	if len(text) > TextLen {
		return Date{}, invalid(text, "expected %s", c.Layout)
	}
	if text[2] != sep || text[5] != sep {
		return Date{}, invalid(text, "expected %s", c.Layout)
	}
	a, ok1 := digits(text[0:2])
	b, ok2 := digits(text[3:5])
	y, ok3 := digits(text[6:10])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, invalid(text, "expected %s", c.Layout)
	}
	month, day := a, b
	if c.Layout == LayoutDayMonthYear {
		month, day = b, a
	}
	if y < MinYear {
		return Date{}, invalid(text, "year %04d out of range", y)
	}
	if month < 1 || month > 12 {
		return Date{}, invalid(text, "month %02d out of range", month)
	}
	if day < 1 || day > DaysIn(y, time.Month(month)) {
		return Date{}, invalid(text, "%s %d has no day %d", time.Month(month), y, day)
	}
	return Date{Year: y, Month: time.Month(month), Day: day}, nil
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}
