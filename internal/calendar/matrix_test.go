package calendar

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_LeapFebruary(t *testing.T) {
	t.Parallel()

	leap := Build(2024, time.February, time.Sunday)
	assert.True(t, leap.Contains(MustNew(2024, time.February, 29)))
	assert.Len(t, leap.Days(), 29)

	common := Build(2023, time.February, time.Sunday)
	assert.Len(t, common.Days(), 28)
	for _, d := range common.Days() {
		assert.NotEqual(t, 29, d.Day)
	}
}

func TestBuild_RowCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		first time.Weekday
		rows  int
	}{
		{"feb 2015 starts on sunday", 2015, time.February, time.Sunday, 4},
		{"feb 2021 starts on monday", 2021, time.February, time.Monday, 4},
		{"sep 2021", 2021, time.September, time.Sunday, 5},
		{"jan 2021 spills to a sixth row", 2021, time.January, time.Sunday, 6},
		{"may 2021", 2021, time.May, time.Sunday, 6},
	}
	for _, tt := range tests {
		mm := Build(tt.year, tt.month, tt.first)
		assert.Len(t, mm.Rows, tt.rows, tt.name)
	}
}

func TestBuild_January2021Layout(t *testing.T) {
	t.Parallel()

	mm := Build(2021, time.January, time.Sunday)
	require.Len(t, mm.Rows, 6)

	// Jan 1 2021 is a Friday.
	first := mm.Rows[0]
	for c := 0; c < 5; c++ {
		assert.True(t, first[c].IsZero(), "col %d", c)
	}
	assert.Equal(t, MustNew(2021, time.January, 1), first[5])
	assert.Equal(t, MustNew(2021, time.January, 2), first[6])

	last := mm.Rows[5]
	assert.Equal(t, MustNew(2021, time.January, 31), last[0])
	for c := 1; c < DaysPerWeek; c++ {
		assert.True(t, last[c].IsZero(), "col %d", c)
	}

	row, col, ok := mm.Position(MustNew(2021, time.January, 2))
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 6, col)
	assert.Equal(t, time.Saturday, mm.Column(col))
}

func TestBuild_InvalidMonthYieldsEmptyMatrix(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Build(2021, 0, time.Sunday).Rows)
	assert.Empty(t, Build(2021, 13, time.Sunday).Rows)
}

func TestBuild_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("rows have seven slots and days ascend without gaps", prop.ForAll(
		func(year, month, first int) bool {
			mm := Build(year, time.Month(month), time.Weekday(first))
			if len(mm.Rows) < 4 || len(mm.Rows) > 6 {
				return false
			}
			days := mm.Days()
			if len(days) != DaysIn(year, time.Month(month)) {
				return false
			}
			for i, d := range days {
				if d.Day != i+1 || d.Month != time.Month(month) || d.Year != year {
					return false
				}
			}
			return !mm.Rows[len(mm.Rows)-1].empty()
		},
		gen.IntRange(MinYear, MaxYear),
		gen.IntRange(1, 12),
		gen.IntRange(0, 6),
	))

	properties.Property("slot column matches weekday", prop.ForAll(
		func(year, month, first int) bool {
			mm := Build(year, time.Month(month), time.Weekday(first))
			for _, r := range mm.Rows {
				for c, d := range r {
					if d.IsZero() {
						continue
					}
					if d.Weekday() != mm.Column(c) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(MinYear, MaxYear),
		gen.IntRange(1, 12),
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}
