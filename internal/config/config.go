// Package config loads datepick defaults from the environment.
//
// Precedence, lowest first: built-in defaults, .env / .env.local in the
// working directory, DATEPICK_* variables, command-line flags.
package config

import (
	"os"
	"strings"
	"time"

	"datepick/internal/calendar"
	"datepick/internal/datepicker"
	"datepick/internal/locale"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var DefaultEnvFiles = []string{".env", ".env.local"}

type Settings struct {
	DefaultDate  string `env:"DATEPICK_DEFAULT_DATE" validate:"omitempty,datetime=2006-01-02"`
	MinDate      string `env:"DATEPICK_MIN_DATE" validate:"omitempty,datetime=2006-01-02"`
	MaxDate      string `env:"DATEPICK_MAX_DATE" validate:"omitempty,datetime=2006-01-02"`
	FirstWeekday string `env:"DATEPICK_FIRST_WEEKDAY" envDefault:"sunday" validate:"oneof=sunday monday tuesday wednesday thursday friday saturday"`
	Layout       string `env:"DATEPICK_LAYOUT" envDefault:"mdy" validate:"oneof=mdy dmy"`
	Lang         string `env:"DATEPICK_LANG"`
	LabelsFile   string `env:"DATEPICK_LABELS_FILE"`
	Format       string `env:"DATEPICK_FORMAT" envDefault:"json" validate:"oneof=json edn text"`
	LogLevel     string `env:"DATEPICK_LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFile      string `env:"DATEPICK_LOG_FILE"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadEnvFiles loads whichever of files exist. Variables already set in the
// process environment win.
func LoadEnvFiles(files []string) (int, error) {
	var existing []string
	for _, f := range files {
		if st, err := os.Stat(f); err == nil && !st.IsDir() {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return 0, errors.Wrap(err, "load env files")
	}
	return len(existing), nil
}

// Load reads .env files and then parses DATEPICK_* variables.
func Load(envFiles []string) (Settings, error) {
	if _, err := LoadEnvFiles(envFiles); err != nil {
		return Settings{}, err
	}
	return FromEnv()
}

// FromEnv parses the process environment only.
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.Wrap(err, "parse environment")
	}
	s.Normalize()
	if s.Lang == "" {
		s.Lang = systemLang()
	}
	return s, nil
}

// Normalize trims values and lower-cases the enumerated fields.
func (s *Settings) Normalize() {
	s.DefaultDate = strings.TrimSpace(s.DefaultDate)
	s.MinDate = strings.TrimSpace(s.MinDate)
	s.MaxDate = strings.TrimSpace(s.MaxDate)
	s.FirstWeekday = strings.ToLower(strings.TrimSpace(s.FirstWeekday))
	s.Layout = strings.ToLower(strings.TrimSpace(s.Layout))
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
}

// Validate checks field formats. Calendar validity (Feb 30) is checked when
// the dates are converted.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Errorf("invalid %s %q (rule %s)", fe.Field(), fe.Value(), fe.Tag())
		}
		return errors.Wrap(err, "validate settings")
	}
	return nil
}

// Weekday returns the configured first column of the grid.
func (s Settings) Weekday() time.Weekday {
	w, _ := ParseWeekday(s.FirstWeekday)
	return w
}

// ParseWeekday accepts full English weekday names or their first three letters.
func ParseWeekday(v string) (time.Weekday, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] {
			return d, nil
		}
	}
	return 0, errors.Errorf("unknown weekday %q", v)
}

// Labels resolves the label set: a labels file wins over the language.
func (s Settings) Labels() (locale.Labels, error) {
	if strings.TrimSpace(s.LabelsFile) != "" {
		return locale.Load(s.LabelsFile)
	}
	return locale.Match(s.Lang), nil
}

// PickerConfig converts s into a Controller configuration.
func (s Settings) PickerConfig() (datepicker.Config, error) {
	if err := s.Validate(); err != nil {
		return datepicker.Config{}, err
	}
	var cfg datepicker.Config
	var err error
	if cfg.DefaultDate, err = optionalDate("default date", s.DefaultDate); err != nil {
		return datepicker.Config{}, err
	}
	if cfg.MinDate, err = optionalDate("min date", s.MinDate); err != nil {
		return datepicker.Config{}, err
	}
	if cfg.MaxDate, err = optionalDate("max date", s.MaxDate); err != nil {
		return datepicker.Config{}, err
	}
	if cfg.Layout, err = calendar.ParseLayout(s.Layout); err != nil {
		return datepicker.Config{}, errors.WithStack(err)
	}
	cfg.FirstWeekday = s.Weekday()
	return cfg, nil
}

func optionalDate(name, v string) (*calendar.Date, error) {
	if v == "" {
		return nil, nil
	}
	d, err := calendar.ParseISO(v)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return &d, nil
}

// systemLang follows the POSIX locale variables in their usual order.
func systemLang() string {
	for _, k := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
