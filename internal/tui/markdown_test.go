package tui

import (
	"strings"
	"testing"
)

func TestMarkdownStyle_ThemeOverride(t *testing.T) {
	t.Setenv("DATEPICK_TUI_THEME", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("markdownStyle: got %q, want light", got)
	}
	t.Setenv("DATEPICK_TUI_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("markdownStyle: got %q, want dark", got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	for _, theme := range []string{"light", "dark"} {
		t.Run(theme, func(t *testing.T) {
			t.Setenv("DATEPICK_TUI_THEME", theme)
			out := RenderMarkdown("# Keys\n\nPress `enter` to accept.", 40)
			if !strings.Contains(out, "Keys") || !strings.Contains(out, "enter") {
				t.Fatalf("render %s: got %q", theme, out)
			}
		})
	}
	if got := RenderMarkdown("  \n", 40); got != "" {
		t.Fatalf("blank markdown: got %q", got)
	}
}
