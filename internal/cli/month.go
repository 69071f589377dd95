package cli

import (
	"strconv"
	"strings"
	"time"

	"datepick/internal/calendar"
	"datepick/internal/datepicker"
	"datepick/internal/locale"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type monthView struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	Caption      string   `json:"caption"`
	FirstWeekday string   `json:"firstWeekday"`
	Header       []string `json:"header"`
	// Weeks holds day numbers; null marks a padding slot.
	Weeks      [][]*int `json:"weeks"`
	OutOfRange []int    `json:"outOfRange"`
}

func newMonthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [yyyy-mm]",
		Short: "Print the grid for one month",
		Long: `Prints the week grid for a month (default: the month of --default, or the
current month). Days outside --min/--max are listed under outOfRange.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, err := app.newController()
			if err != nil {
				return writeErr(cmd, err)
			}
			labels, err := app.Settings.Labels()
			if err != nil {
				return writeErr(cmd, err)
			}
			if len(args) == 1 {
				year, month, err := parseYearMonth(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				if err := ctrl.OnJumpToYear(year); err != nil {
					return writeErr(cmd, err)
				}
				if err := ctrl.OnJumpToMonth(month); err != nil {
					return writeErr(cmd, err)
				}
			}
			return writeOut(cmd, app, buildMonthView(ctrl, labels))
		},
	}
}

func parseYearMonth(s string) (int, time.Month, error) {
	d, err := calendar.ParseISO(strings.TrimSpace(s) + "-01")
	if err != nil {
		return 0, 0, errors.Errorf("invalid month %q (expected yyyy-mm)", s)
	}
	return d.Year, d.Month, nil
}

func buildMonthView(ctrl *datepicker.Controller, labels locale.Labels) monthView {
	mm := ctrl.Matrix()
	header := labels.Header(mm.FirstWeekday)
	v := monthView{
		Year:         mm.Year,
		Month:        int(mm.Month),
		Caption:      labels.MonthYear(mm.Year, mm.Month),
		FirstWeekday: strings.ToLower(mm.FirstWeekday.String()),
		Header:       header[:],
		Weeks:        make([][]*int, 0, len(mm.Rows)),
		OutOfRange:   []int{},
	}
	for _, row := range mm.Rows {
		week := make([]*int, calendar.DaysPerWeek)
		for c, d := range row {
			if d.IsZero() {
				continue
			}
			day := d.Day
			week[c] = &day
			if !ctrl.Selectable(d) {
				v.OutOfRange = append(v.OutOfRange, day)
			}
		}
		v.Weeks = append(v.Weeks, week)
	}
	return v
}

var (
	monthCell     = lipgloss.NewStyle().Width(3).Align(lipgloss.Right)
	monthHeader   = monthCell.Faint(true)
	monthDisabled = monthCell.Strikethrough(true).Faint(true)
	monthCaption  = lipgloss.NewStyle().Bold(true).Width(calendar.DaysPerWeek * 3).Align(lipgloss.Center)
)

// Text renders the grid the way `cal` does, right-aligned in three-cell
// columns.
func (v monthView) Text() string {
	out := make(map[int]bool, len(v.OutOfRange))
	for _, d := range v.OutOfRange {
		out[d] = true
	}

	lines := []string{monthCaption.Render(v.Caption)}
	var b strings.Builder
	for _, h := range v.Header {
		b.WriteString(monthHeader.Render(h))
	}
	lines = append(lines, b.String())
	for _, week := range v.Weeks {
		b.Reset()
		for _, d := range week {
			switch {
			case d == nil:
				b.WriteString("   ")
			case out[*d]:
				b.WriteString(monthDisabled.Render(strconv.Itoa(*d)))
			default:
				b.WriteString(monthCell.Render(strconv.Itoa(*d)))
			}
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return strings.Join(lines, "\n")
}
