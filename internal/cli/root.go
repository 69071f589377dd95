package cli

import (
	"fmt"
	"io"
	"strings"

	"datepick/internal/config"
	"datepick/internal/datepicker"
	"datepick/internal/format"
	"datepick/internal/logging"
	"datepick/internal/tui"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type App struct {
	// EnvFiles are loaded before DATEPICK_* variables are read.
	EnvFiles []string

	DefaultDate  string
	MinDate      string
	MaxDate      string
	FirstWeekday string
	Layout       string
	Lang         string
	LabelsFile   string
	Format       string
	PrettyJSON   bool
	LogLevel     string
	LogFile      string

	Settings config.Settings
	Log      *logrus.Logger
	logClose io.Closer

	// runPicker is swapped out in tests.
	runPicker func(*datepicker.Controller, tui.Options) (tui.Result, error)
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{
		EnvFiles:  config.DefaultEnvFiles,
		runPicker: tui.Run,
	})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "datepick",
		Short:         "Pick a calendar date in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively; the result is printed to stdout
  d=$(datepick --min 2024-01-01 --max 2024-12-31)

  # Print a month grid
  datepick month 2021-09 --format text

  # Check typed input the way the picker would
  datepick parse 02/30/2021
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.DefaultDate, "default", "", "Month to show first, yyyy-mm-dd (env DATEPICK_DEFAULT_DATE)")
	pf.StringVar(&app.MinDate, "min", "", "Earliest selectable date, yyyy-mm-dd (env DATEPICK_MIN_DATE)")
	pf.StringVar(&app.MaxDate, "max", "", "Latest selectable date, yyyy-mm-dd (env DATEPICK_MAX_DATE)")
	pf.StringVar(&app.FirstWeekday, "first-weekday", "", "First column of the grid (env DATEPICK_FIRST_WEEKDAY; default sunday)")
	pf.StringVar(&app.Layout, "layout", "", "Text layout: mdy or dmy (env DATEPICK_LAYOUT; default mdy)")
	pf.StringVar(&app.Lang, "lang", "", "Language for month and weekday names (env DATEPICK_LANG)")
	pf.StringVar(&app.LabelsFile, "labels", "", "YAML label set file (env DATEPICK_LABELS_FILE)")
	pf.StringVar(&app.Format, "format", "", "Output format: json, edn or text (env DATEPICK_FORMAT; default json)")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	pf.StringVar(&app.LogLevel, "log-level", "", "Log level (env DATEPICK_LOG_LEVEL; default info)")
	pf.StringVar(&app.LogFile, "log-file", "", "Append logs to this file (env DATEPICK_LOG_FILE)")

	cmd.AddCommand(newMonthCmd(app))
	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newFormatCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	// cobra skips PersistentPostRunE when RunE fails, so failed runs close
	// the log here.
	for _, c := range append([]*cobra.Command{cmd}, cmd.Commands()...) {
		if c.RunE == nil {
			continue
		}
		run := c.RunE
		c.RunE = func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if err != nil {
				_ = app.teardown()
			}
			return err
		}
	}

	return cmd
}

// setup resolves settings with flags over environment over .env files, and
// opens the logger.
func (app *App) setup(cmd *cobra.Command) error {
	s, err := config.Load(app.EnvFiles)
	if err != nil {
		return writeErr(cmd, err)
	}

	flags := cmd.Flags()
	for _, o := range []struct {
		name string
		dst  *string
		src  string
	}{
		{"default", &s.DefaultDate, app.DefaultDate},
		{"min", &s.MinDate, app.MinDate},
		{"max", &s.MaxDate, app.MaxDate},
		{"first-weekday", &s.FirstWeekday, app.FirstWeekday},
		{"layout", &s.Layout, app.Layout},
		{"lang", &s.Lang, app.Lang},
		{"labels", &s.LabelsFile, app.LabelsFile},
		{"format", &s.Format, app.Format},
		{"log-level", &s.LogLevel, app.LogLevel},
		{"log-file", &s.LogFile, app.LogFile},
	} {
		if flags.Changed(o.name) {
			*o.dst = o.src
		}
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return writeErr(cmd, err)
	}
	app.Settings = s

	log, closer, err := logging.New(logging.Options{Level: s.LogLevel, File: s.LogFile})
	if err != nil {
		return writeErr(cmd, err)
	}
	app.Log, app.logClose = log, closer
	app.Log.WithFields(logrus.Fields{"command": cmd.CommandPath(), "layout": s.Layout, "lang": s.Lang}).Debug("settings resolved")
	return nil
}

func (app *App) teardown() error {
	if app.logClose == nil {
		return nil
	}
	err := app.logClose.Close()
	app.logClose = nil
	return err
}

// newController builds a Controller from the resolved settings.
func (app *App) newController() (*datepicker.Controller, error) {
	cfg, err := app.Settings.PickerConfig()
	if err != nil {
		return nil, err
	}
	cfg.Logger = app.Log
	cfg.DefaultOpen = true
	ctrl, err := datepicker.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "configure picker")
	}
	return ctrl, nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	ctrl, err := app.newController()
	if err != nil {
		return writeErr(cmd, err)
	}
	labels, err := app.Settings.Labels()
	if err != nil {
		return writeErr(cmd, err)
	}

	res, err := app.runPicker(ctrl, tui.Options{
		Labels: labels,
		Logger: app.Log,
		Input:  cmd.InOrStdin(),
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	if !res.Accepted {
		return writeErr(cmd, errCancelled)
	}
	app.Log.WithField("date", res.Date.String()).Info("date accepted")
	_, err = fmt.Fprintln(cmd.OutOrStdout(), ctrl.Codec().Format(res.Date))
	return err
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Settings.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
