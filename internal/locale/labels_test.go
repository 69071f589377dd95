package locale

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":            "en",
		"C":           "en",
		"en-US":       "en",
		"fr-CA":       "fr",
		"de_DE.UTF-8": "de",
		"es":          "es",
		"ja-JP":       "en",
		"not a tag!":  "en",
	}
	for in, want := range tests {
		assert.Equal(t, want, Match(in).Name, in)
	}
}

func TestLabels_HeaderRotatesForFirstWeekday(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}, English.Header(time.Sunday))
	assert.Equal(t, [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}, English.Header(time.Monday))
	assert.Equal(t, "January 2021", English.MonthYear(2021, time.January))
	assert.Equal(t, "", English.Month(13))
}

func TestLabels_WeekdayWrapsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Sa", English.Weekday(time.Weekday(-1)))
	assert.Equal(t, "Su", English.Weekday(time.Weekday(-7)))
	assert.Equal(t, "Mo", English.Weekday(time.Weekday(8)))
}

func TestParse_CustomSet(t *testing.T) {
	t.Parallel()

	src := []byte(`
name: nl
months: [januari, februari, maart, april, mei, juni, juli, augustus, september, oktober, november, december]
weekdays: [zo, ma, di, wo, do, vr, za]
`)
	l, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "nl", l.Name)
	assert.Equal(t, "maart", l.Month(time.March))
	assert.Equal(t, "jan", l.ShortMonth(time.January))
	assert.Equal(t, "mei", l.ShortMonth(time.May))
	assert.Equal(t, "zo", l.Weekday(time.Sunday))
}

func TestParse_RejectsIncompleteSets(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("months: [a, b]\nweekdays: [a, b, c, d, e, f, g]\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("months: [a, b, c, d, e, f, g, h, i, j, k, l]\nweekdays: [a]\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("months: [a, b, c, d, e, f, g, h, i, j, k, '']\nweekdays: [a, b, c, d, e, f, g]\n"))
	assert.Error(t, err)

	_, err = Parse([]byte(":::"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "labels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("months: [a, b, c, d, e, f, g, h, i, j, k, l]\nweekdays: [a, b, c, d, e, f, g]\n"), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", l.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
