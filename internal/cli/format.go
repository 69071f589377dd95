package cli

import (
	"datepick/internal/calendar"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type formatResult struct {
	Date      calendar.Date `json:"date"`
	Formatted string        `json:"formatted"`
	Layout    string        `json:"layout"`
	Weekday   string        `json:"weekday"`
	Month     string        `json:"month"`
	InRange   bool          `json:"inRange"`
}

func (r formatResult) Text() string { return r.Formatted }

func newFormatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "format <yyyy-mm-dd>",
		Short: "Render an ISO date in the picker's text layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.ParseISO(args[0])
			if err != nil {
				return writeErr(cmd, errors.Wrap(err, "format"))
			}
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			labels, err := app.Settings.Labels()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, formatResult{
				Date:      d,
				Formatted: ctrl.Codec().Format(d),
				Layout:    ctrl.Codec().Layout.String(),
				Weekday:   labels.Weekday(d.Weekday()),
				Month:     labels.Month(d.Month),
				InRange:   ctrl.Selectable(d),
			})
		},
	}
}
