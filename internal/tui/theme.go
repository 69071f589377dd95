package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The picker must stay readable on light and dark terminals, so colors are
// adaptive and faint text is only used on dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorSurfaceFg = ac("235", "252")
	colorControlBg = ac("252", "235")
	colorInputBg   = ac("254", "234")

	colorAccent   = ac("27", "62")
	colorAccentFg = ac("255", "235")

	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")

	colorError = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

type styles struct {
	caption    lipgloss.Style
	arrow      lipgloss.Style
	arrowOff   lipgloss.Style
	weekday    lipgloss.Style
	day        lipgloss.Style
	outOfRange lipgloss.Style
	today      lipgloss.Style
	selected   lipgloss.Style
	highlight  lipgloss.Style
	label      lipgloss.Style
	errLine    lipgloss.Style
	status     lipgloss.Style
	disabled   lipgloss.Style
}

func newStyles() styles {
	cell := lipgloss.NewStyle().Width(3).Align(lipgloss.Right)
	return styles{
		caption:    lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg),
		arrow:      lipgloss.NewStyle().Foreground(colorAccent),
		arrowOff:   styleMuted(),
		weekday:    cell.Foreground(colorMuted),
		day:        cell.Foreground(colorSurfaceFg),
		outOfRange: faintIfDark(cell.Foreground(colorMuted)).Strikethrough(true),
		today:      cell.Foreground(colorAccent).Bold(true),
		selected:   cell.Foreground(colorAccentFg).Background(colorAccent).Bold(true),
		highlight:  cell.Foreground(colorSelectedFg).Background(colorSelectedBg).Underline(true),
		label:      lipgloss.NewStyle().Bold(true),
		errLine:    lipgloss.NewStyle().Foreground(colorError),
		status:     styleMuted(),
		disabled:   styleMuted().Italic(true),
	}
}

// applyColorProfilePreference picks the Lip Gloss color profile for the TUI.
//
// termenv.EnvColorProfile honors CLICOLOR, which can disable colors in a TUI
// by accident; only NO_COLOR is honored here.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the probe found.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && profile != termenv.TrueColor {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection.
//
// Priority:
// 1) DATEPICK_TUI_THEME=light|dark|auto
// 2) DATEPICK_TUI_DARKBG=true|false
// 3) COLORFGBG ("fg;bg")
// 4) macOS appearance
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DATEPICK_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("DATEPICK_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
		}
	}
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// Prints "Dark" in dark mode; exits 1 in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
