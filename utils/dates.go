package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha YYYY-MM-DD en hora local.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// DayRange devuelve [00:00:00, 23:59:59] del día indicado.
func DayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	end := start.Add(24*time.Hour - time.Second)
	return start, end
}

// WeekRange devuelve de lunes a domingo de la semana en curso.
func WeekRange(now time.Time) (time.Time, time.Time) {
	wd := int(now.Weekday())
	if wd == 0 {
		wd = 7 // domingo
	}
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local).
		AddDate(0, 0, -(wd - 1))
	sunday := monday.AddDate(0, 0, 7).Add(-time.Second)
	return monday, sunday
}

// RangeFromQuery resuelve fecha_inicio/fecha_fin; sin parámetros usa la
// semana actual, con parámetros inválidos devuelve error.
func RangeFromQuery(fromStr, toStr string) (time.Time, time.Time, error) {
	if fromStr == "" || toStr == "" {
		from, to := WeekRange(time.Now())
		return from, to, nil
	}
	from, err := ParseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	_, end := DayRange(to)
	return from, end, nil
}
