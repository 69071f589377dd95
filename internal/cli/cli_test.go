package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"datepick/internal/calendar"
	"datepick/internal/datepicker"
	"datepick/internal/tui"
)

var envKeys = []string{
	"DATEPICK_DEFAULT_DATE", "DATEPICK_MIN_DATE", "DATEPICK_MAX_DATE",
	"DATEPICK_FIRST_WEEKDAY", "DATEPICK_LAYOUT", "DATEPICK_LANG",
	"DATEPICK_LABELS_FILE", "DATEPICK_FORMAT", "DATEPICK_LOG_LEVEL",
	"DATEPICK_LOG_FILE", "LC_ALL", "LC_TIME", "LANG",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func testApp(t *testing.T) *App {
	t.Helper()
	clearEnv(t)
	return &App{
		EnvFiles: nil,
		runPicker: func(*datepicker.Controller, tui.Options) (tui.Result, error) {
			t.Fatalf("unexpected interactive session")
			return tui.Result{}, nil
		},
	}
}

func runCLI(t *testing.T, app *App, args ...string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := newRootCmd(app)

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func mustJSON(t *testing.T, app *App, args ...string) map[string]any {
	t.Helper()
	stdout, stderr, err := runCLI(t, app, args...)
	if err != nil {
		t.Fatalf("datepick %v: %v\nstderr:\n%s", args, err, stderr)
	}
	var out map[string]any
	if err := json.Unmarshal(stdout, &out); err != nil {
		t.Fatalf("unmarshal stdout: %v\nstdout:\n%s", err, stdout)
	}
	return out
}

func TestMonth_JSONGrid(t *testing.T) {
	out := mustJSON(t, testApp(t), "month", "2021-09", "--min", "2021-09-05")

	if out["caption"] != "September 2021" {
		t.Fatalf("caption: got %v", out["caption"])
	}
	weeks, _ := out["weeks"].([]any)
	if len(weeks) != 5 {
		t.Fatalf("expected 5 weeks for September 2021; got %d", len(weeks))
	}
	first, _ := weeks[0].([]any)
	if first[0] != nil || first[2] != nil || first[3] != float64(1) {
		t.Fatalf("first week should start on Wednesday: %v", first)
	}
	oor, _ := out["outOfRange"].([]any)
	if len(oor) != 4 || oor[0] != float64(1) || oor[3] != float64(4) {
		t.Fatalf("outOfRange: got %v", oor)
	}
}

func TestMonth_MondayStartGerman(t *testing.T) {
	out := mustJSON(t, testApp(t), "month", "2021-02", "--first-weekday", "monday", "--lang", "de_DE.UTF-8")

	if out["caption"] != "Februar 2021" {
		t.Fatalf("caption: got %v", out["caption"])
	}
	header, _ := out["header"].([]any)
	if len(header) != 7 || header[0] != "Mo" || header[6] != "So" {
		t.Fatalf("header: got %v", header)
	}
	if weeks, _ := out["weeks"].([]any); len(weeks) != 4 {
		t.Fatalf("February 2021 from Monday fits in 4 weeks; got %d", len(weeks))
	}
}

func TestMonth_Text(t *testing.T) {
	stdout, stderr, err := runCLI(t, testApp(t), "month", "2021-01", "--format", "text")
	if err != nil {
		t.Fatalf("month: %v\n%s", err, stderr)
	}
	s := string(stdout)
	for _, want := range []string{"January 2021", "Su", "31"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in:\n%s", want, s)
		}
	}
	if lines := strings.Split(strings.TrimRight(s, "\n"), "\n"); len(lines) != 8 {
		t.Fatalf("expected caption, header and 6 weeks; got %d lines:\n%s", len(lines), s)
	}
}

func TestMonth_BadArgument(t *testing.T) {
	_, stderr, err := runCLI(t, testApp(t), "month", "2021-13")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(string(stderr), "invalid month") {
		t.Fatalf("stderr: %s", stderr)
	}
}

func TestParse_CommitsDate(t *testing.T) {
	out := mustJSON(t, testApp(t), "parse", "02/01/2021")
	if out["date"] != "2021-02-01" || out["formatted"] != "02/01/2021" {
		t.Fatalf("got %v", out)
	}
	if _, ok := out["error"]; ok {
		t.Fatalf("unexpected error: %v", out["error"])
	}
}

func TestParse_DayMonthLayout(t *testing.T) {
	out := mustJSON(t, testApp(t), "parse", "02/01/2021", "--layout", "dmy")
	if out["date"] != "2021-01-02" {
		t.Fatalf("dd/mm/yyyy should read 02/01/2021 as January 2; got %v", out["date"])
	}
}

func TestParse_Rejections(t *testing.T) {
	for _, tc := range []struct {
		args    []string
		kind    string
		message string
	}{
		{[]string{"parse", "02/30/2021"}, "invalid", "invalid date"},
		{[]string{"parse", "2021-02-01"}, "invalid", "invalid date"},
		{[]string{"parse", "02/01"}, "incomplete", "incomplete date"},
		{[]string{"parse", "12/01/2021", "--max", "2021-10-01"}, "out-of-range", "date outside allowed range"},
	} {
		stdout, stderr, err := runCLI(t, testApp(t), tc.args...)
		var rej rejectedError
		if !errors.As(err, &rej) {
			t.Fatalf("%v: expected rejectedError, got %v", tc.args, err)
		}
		if !strings.Contains(string(stderr), "rejected") {
			t.Fatalf("%v: stderr: %s", tc.args, stderr)
		}
		var out struct {
			Date  *string `json:"date"`
			Error struct {
				Kind    string `json:"kind"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(stdout, &out); err != nil {
			t.Fatalf("%v: unmarshal: %v\n%s", tc.args, err, stdout)
		}
		if out.Date != nil {
			t.Fatalf("%v: rejected input must not report a date", tc.args)
		}
		if out.Error.Kind != tc.kind || out.Error.Message != tc.message {
			t.Fatalf("%v: got %+v", tc.args, out.Error)
		}
	}
}

func TestFormat(t *testing.T) {
	out := mustJSON(t, testApp(t), "format", "2021-09-16", "--max", "2021-09-01")
	if out["formatted"] != "09/16/2021" || out["layout"] != "mm/dd/yyyy" {
		t.Fatalf("got %v", out)
	}
	if out["weekday"] != "Th" || out["month"] != "September" {
		t.Fatalf("labels: got %v", out)
	}
	if out["inRange"] != false {
		t.Fatalf("2021-09-16 is after --max; got %v", out["inRange"])
	}

	stdout, _, err := runCLI(t, testApp(t), "format", "2021-09-16", "--layout", "dmy", "--format", "text")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(stdout) != "16/09/2021\n" {
		t.Fatalf("text output: got %q", stdout)
	}

	if _, _, err := runCLI(t, testApp(t), "format", "2021-02-30"); err == nil {
		t.Fatalf("expected error for 2021-02-30")
	}
}

func TestRoot_PrintsAcceptedDate(t *testing.T) {
	app := testApp(t)
	var got tui.Options
	app.runPicker = func(ctrl *datepicker.Controller, opts tui.Options) (tui.Result, error) {
		got = opts
		if !ctrl.IsOpen() {
			t.Fatalf("picker should start open")
		}
		if err := ctrl.OnDayClicked(calendar.MustNew(2021, time.September, 16)); err != nil {
			t.Fatalf("OnDayClicked: %v", err)
		}
		d, _ := ctrl.Selection()
		return tui.Result{Date: d, Accepted: true}, nil
	}

	stdout, stderr, err := runCLI(t, app, "--default", "2021-09-01", "--lang", "fr")
	if err != nil {
		t.Fatalf("root: %v\n%s", err, stderr)
	}
	if string(stdout) != "09/16/2021\n" {
		t.Fatalf("stdout: got %q", stdout)
	}
	if got.Labels.Name != "fr" {
		t.Fatalf("labels: got %q", got.Labels.Name)
	}
	if got.Output == nil {
		t.Fatalf("TUI output should be set")
	}
}

func TestRoot_Cancelled(t *testing.T) {
	app := testApp(t)
	app.runPicker = func(*datepicker.Controller, tui.Options) (tui.Result, error) {
		return tui.Result{}, nil
	}
	stdout, _, err := runCLI(t, app)
	if !errors.Is(err, errCancelled) {
		t.Fatalf("expected errCancelled, got %v", err)
	}
	if len(stdout) != 0 {
		t.Fatalf("cancelled session must not print: %q", stdout)
	}
}

func TestRoot_RejectsInvertedBounds(t *testing.T) {
	_, _, err := runCLI(t, testApp(t), "parse", "01/01/2021", "--min", "2021-12-01", "--max", "2021-01-01")
	var ce *datepicker.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestSettings_EnvFileAndFlagPrecedence(t *testing.T) {
	app := testApp(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("DATEPICK_LAYOUT=dmy\nDATEPICK_FORMAT=text\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	app.EnvFiles = []string{envFile}

	stdout, _, err := runCLI(t, app, "format", "2021-09-16")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(stdout) != "16/09/2021\n" {
		t.Fatalf(".env layout should apply; got %q", stdout)
	}

	stdout, _, err = runCLI(t, app, "format", "2021-09-16", "--layout", "mdy")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(stdout) != "09/16/2021\n" {
		t.Fatalf("flag should win over .env; got %q", stdout)
	}
}

func TestSettings_InvalidFlag(t *testing.T) {
	_, stderr, err := runCLI(t, testApp(t), "month", "--layout", "ymd")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(string(stderr), "Layout") {
		t.Fatalf("stderr: %s", stderr)
	}
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "datepick.log")
	_, _, err := runCLI(t, testApp(t), "parse", "09/16/2021", "--log-level", "debug", "--log-file", logPath)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "date committed") {
		t.Fatalf("expected commit in log:\n%s", b)
	}
}

func TestLogFile_ClosedWhenCommandFails(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "datepick.log")
	app := testApp(t)
	_, _, err := runCLI(t, app, "parse", "02/30/2021", "--log-level", "debug", "--log-file", logPath)
	if err == nil {
		t.Fatalf("expected parse to fail")
	}
	if app.logClose != nil {
		t.Fatalf("log file left open after failed command")
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "settings resolved") {
		t.Fatalf("expected settings in log:\n%s", b)
	}
}

func TestDocs(t *testing.T) {
	out := mustJSON(t, testApp(t), "docs")
	topics, _ := out["topics"].([]any)
	if len(topics) == 0 {
		t.Fatalf("expected topics; got %v", out)
	}

	stdout, _, err := runCLI(t, testApp(t), "docs", "keys", "--raw")
	if err != nil {
		t.Fatalf("docs keys: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("raw docs: got %q", stdout)
	}

	if _, _, err := runCLI(t, testApp(t), "docs", "nope"); err == nil {
		t.Fatalf("expected error for unknown topic")
	}
}
