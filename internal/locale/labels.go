// Package locale provides the month and weekday label sets the picker shows.
package locale

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Labels is one display vocabulary. Weekdays are indexed by time.Weekday.
type Labels struct {
	Name        string     `yaml:"name"`
	Months      [12]string `yaml:"-"`
	ShortMonths [12]string `yaml:"-"`
	Weekdays    [7]string  `yaml:"-"`
}

var English = Labels{
	Name: "en",
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ShortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	Weekdays:    [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
}

var German = Labels{
	Name: "de",
	Months: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	ShortMonths: [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	Weekdays:    [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
}

var Spanish = Labels{
	Name: "es",
	Months: [12]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
	ShortMonths: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	Weekdays:    [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
}

var French = Labels{
	Name: "fr",
	Months: [12]string{
		"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre",
	},
	ShortMonths: [12]string{"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
	Weekdays:    [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
}

// builtins[0] is the fallback for unmatched tags.
var builtins = []Labels{English, German, Spanish, French}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.Spanish,
	language.French,
})

// Match picks the built-in set closest to a BCP 47 tag or POSIX locale
// ("fr-CA", "de_DE.UTF-8"). Unknown or empty tags get English.
func Match(tag string) Labels {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" || strings.EqualFold(tag, "C") || strings.EqualFold(tag, "POSIX") {
		return English
	}
	t, err := language.Parse(tag)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return English
	}
	return builtins[idx]
}

// Builtin returns the named built-in set.
func Builtin(name string) (Labels, bool) {
	for _, l := range builtins {
		if l.Name == strings.ToLower(strings.TrimSpace(name)) {
			return l, true
		}
	}
	return Labels{}, false
}

func (l Labels) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return l.Months[m-1]
}

func (l Labels) ShortMonth(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return l.ShortMonths[m-1]
}

func (l Labels) Weekday(d time.Weekday) string {
	return l.Weekdays[((int(d)%7)+7)%7]
}

// Header returns the seven column titles starting at first.
func (l Labels) Header(first time.Weekday) [7]string {
	var out [7]string
	for c := range out {
		out[c] = l.Weekday(time.Weekday((int(first) + c) % 7))
	}
	return out
}

// MonthYear is the navigation caption, e.g. "January 2021".
func (l Labels) MonthYear(year int, m time.Month) string {
	return fmt.Sprintf("%s %d", l.Month(m), year)
}

type labelsFile struct {
	Name        string   `yaml:"name"`
	Months      []string `yaml:"months"`
	ShortMonths []string `yaml:"shortMonths"`
	Weekdays    []string `yaml:"weekdays"`
}

// Parse reads a YAML label set. Weekdays start on Sunday. shortMonths is
// optional and defaults to the first three runes of each month.
func Parse(b []byte) (Labels, error) {
	var f labelsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Labels{}, errors.Wrap(err, "decode labels")
	}
	if len(f.Months) != 12 {
		return Labels{}, errors.Errorf("labels: expected 12 months, got %d", len(f.Months))
	}
	if len(f.Weekdays) != 7 {
		return Labels{}, errors.Errorf("labels: expected 7 weekdays, got %d", len(f.Weekdays))
	}
	if len(f.ShortMonths) != 0 && len(f.ShortMonths) != 12 {
		return Labels{}, errors.Errorf("labels: expected 12 shortMonths, got %d", len(f.ShortMonths))
	}

	l := Labels{Name: strings.TrimSpace(f.Name)}
	if l.Name == "" {
		l.Name = "custom"
	}
	for i, m := range f.Months {
		m = strings.TrimSpace(m)
		if m == "" {
			return Labels{}, errors.Errorf("labels: month %d is empty", i+1)
		}
		l.Months[i] = m
		if len(f.ShortMonths) == 12 {
			l.ShortMonths[i] = strings.TrimSpace(f.ShortMonths[i])
		} else {
			l.ShortMonths[i] = firstRunes(m, 3)
		}
	}
	for i, w := range f.Weekdays {
		w = strings.TrimSpace(w)
		if w == "" {
			return Labels{}, errors.Errorf("labels: weekday %d is empty", i)
		}
		l.Weekdays[i] = w
	}
	return l, nil
}

// Load reads a YAML label set from path.
func Load(path string) (Labels, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Labels{}, errors.Wrapf(err, "read labels %s", path)
	}
	l, err := Parse(b)
	if err != nil {
		return Labels{}, errors.Wrapf(err, "labels %s", path)
	}
	return l, nil
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
