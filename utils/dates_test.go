package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 14, d.Day())
	assert.Equal(t, time.Local, d.Location())

	_, err = ParseDate("14/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDayRange(t *testing.T) {
	from, to := DayRange(time.Date(2026, 3, 14, 17, 45, 12, 0, time.Local))

	assert.Equal(t, "2026-03-14 00:00:00", from.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2026-03-14 23:59:59", to.Format("2006-01-02 15:04:05"))
}

func TestWeekRangeMondayToSunday(t *testing.T) {
	// el 11 de marzo de 2026 cae en miércoles
	from, to := WeekRange(time.Date(2026, 3, 11, 12, 0, 0, 0, time.Local))

	assert.Equal(t, "2026-03-09", from.Format(DateLayout))
	assert.Equal(t, time.Monday, from.Weekday())
	assert.Equal(t, "2026-03-15", to.Format(DateLayout))
	assert.Equal(t, time.Sunday, to.Weekday())
}

func TestWeekRangeOnSunday(t *testing.T) {
	// el domingo pertenece a la semana que termina, no a la que empieza
	from, to := WeekRange(time.Date(2026, 3, 15, 9, 0, 0, 0, time.Local))

	assert.Equal(t, "2026-03-09", from.Format(DateLayout))
	assert.Equal(t, "2026-03-15", to.Format(DateLayout))
}

func TestRangeFromQuery(t *testing.T) {
	from, to, err := RangeFromQuery("2026-03-01", "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", from.Format(DateLayout))
	assert.Equal(t, "2026-03-10", to.Format(DateLayout))

	_, _, err = RangeFromQuery("mal", "2026-03-10")
	assert.Error(t, err)

	// sin parámetros: semana actual
	from, to, err = RangeFromQuery("", "")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, from.Weekday())
	assert.Equal(t, time.Sunday, to.Weekday())
}