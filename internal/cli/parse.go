package cli

import (
	"errors"

	"datepick/internal/calendar"
	"datepick/internal/datepicker"

	"github.com/spf13/cobra"
)

type parseResult struct {
	Input     string          `json:"input"`
	Date      *calendar.Date  `json:"date,omitempty"`
	Formatted string          `json:"formatted,omitempty"`
	Error     *parseErrorView `json:"error,omitempty"`
}

type parseErrorView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (r parseResult) Text() string {
	if r.Error != nil {
		if r.Error.Detail != "" {
			return r.Error.Message + " (" + r.Error.Detail + ")"
		}
		return r.Error.Message
	}
	return r.Formatted
}

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Validate typed text the way the picker field does",
		Long: `Feeds <text> to the picker's text field and reports the committed date or
the error the field would show. Exits non-zero unless a date is committed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}

			res := evaluateText(ctrl, args[0])
			if err := writeOut(cmd, app, res); err != nil {
				return err
			}
			if res.Error != nil {
				return writeErr(cmd, errRejected(res.Input, res.Error.Kind))
			}
			return nil
		},
	}
}

func evaluateText(ctrl *datepicker.Controller, text string) parseResult {
	res := parseResult{Input: text}
	err := ctrl.OnTextChanged(text)
	if err == nil {
		d, _ := ctrl.Selection()
		res.Date = &d
		res.Formatted = ctrl.Codec().Format(d)
		return res
	}

	view := &parseErrorView{Message: err.Error()}
	var pe *calendar.ParseError
	var be *datepicker.BoundsError
	switch {
	case errors.As(err, &pe):
		view.Kind = pe.Kind.String()
		if pe.Kind == calendar.KindInvalid {
			view.Message = ctrl.TextInput().Message()
			view.Detail = pe.Reason
		}
	case errors.As(err, &be):
		view.Kind = "out-of-range"
		view.Message = ctrl.TextInput().Message()
		view.Detail = be.Bounds.String()
	default:
		view.Kind = "error"
	}
	res.Error = view
	return res
}
