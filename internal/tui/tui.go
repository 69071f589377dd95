// Package tui is the interactive terminal front end for a date picker.
package tui

import (
	"io"

	"datepick/internal/calendar"
	"datepick/internal/datepicker"
	"datepick/internal/locale"
	"datepick/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Labels locale.Labels
	Logger logrus.FieldLogger

	// Input and Output default to the terminal. The CLI points Output at
	// stderr so stdout only carries the accepted date.
	Input  io.Reader
	Output io.Writer

	AltScreen bool
}

// Result is the outcome of an interactive session.
type Result struct {
	Date     calendar.Date
	Accepted bool
}

// Run drives ctrl interactively until the user accepts or cancels.
func Run(ctrl *datepicker.Controller, opts Options) (Result, error) {
	applyColorProfilePreference()
	applyThemePreference()

	if opts.Labels.Name == "" {
		opts.Labels = locale.English
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	var progOpts []tea.ProgramOption
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	m := newPickerModel(ctrl, opts.Labels, opts.Logger)
	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return Result{}, err
	}
	return resultOf(final), nil
}

func resultOf(final tea.Model) Result {
	fm, ok := final.(pickerModel)
	if !ok || !fm.accepted {
		return Result{}
	}
	d, ok := fm.ctrl.Selection()
	if !ok {
		return Result{}
	}
	return Result{Date: d, Accepted: true}
}
