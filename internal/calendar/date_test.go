package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsImpossibleDates(t *testing.T) {
	t.Parallel()

	_, err := New(2021, time.February, 29)
	require.Error(t, err)
	_, err = New(2024, time.February, 29)
	require.NoError(t, err)
	_, err = New(0, time.January, 1)
	require.Error(t, err)
	_, err = New(2021, 13, 1)
	require.Error(t, err)
	_, err = New(2021, time.April, 31)
	require.Error(t, err)
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()

	a := MustNew(2020, time.December, 31)
	b := MustNew(2021, time.January, 1)
	c := MustNew(2021, time.January, 2)

	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.Equal(t, 0, b.Compare(MustNew(2021, time.January, 1)))
	assert.Equal(t, -1, b.Compare(c))
	assert.Equal(t, 1, b.Compare(a))
}

func TestDate_AddDaysRollsMonthAndYear(t *testing.T) {
	t.Parallel()

	d := MustNew(2020, time.December, 31)
	assert.Equal(t, MustNew(2021, time.January, 1), d.AddDays(1))
	assert.Equal(t, MustNew(2020, time.November, 30), MustNew(2020, time.December, 1).AddDays(-1))
	assert.Equal(t, MustNew(2024, time.February, 29), MustNew(2024, time.February, 28).AddDays(1))
}

func TestFromTime_DropsClock(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("x", -5*3600)
	got := FromTime(time.Date(2021, time.March, 4, 23, 59, 0, 0, loc))
	assert.Equal(t, MustNew(2021, time.March, 4), got)
}

func TestParseISO(t *testing.T) {
	t.Parallel()

	d, err := ParseISO("2021-01-02")
	require.NoError(t, err)
	assert.Equal(t, MustNew(2021, time.January, 2), d)
	assert.Equal(t, "2021-01-02", d.String())

	for _, bad := range []string{"", "2021-1-2", "2021-02-30", "01/02/2021"} {
		_, err := ParseISO(bad)
		assert.Error(t, err, bad)
	}
}

func TestDate_TextMarshaling(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.UnmarshalText([]byte("2024-02-29")))
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", string(b))

	require.NoError(t, d.UnmarshalText(nil))
	assert.True(t, d.IsZero())
}
