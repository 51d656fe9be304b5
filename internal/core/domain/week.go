package domain

import (
	"fmt"
	"regexp"
	"time"

	"go.trai.ch/zerr"
)

// WeekID identifies a Monday-anchored week, formatted "YYYY-Wnn".
type WeekID string

var weekIDPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// WeekIDFor returns the week identifier for the week containing t,
// shifted by offset weeks.
func WeekIDFor(t time.Time, offset int) WeekID {
	monday := mondayOf(t).AddDate(0, 0, offset*7)
	year, week := monday.ISOWeek()
	return WeekID(fmt.Sprintf("%d-W%02d", year, week))
}

// ParseWeekID validates s against the "YYYY-Wnn" format.
func ParseWeekID(s string) (WeekID, error) {
	if !weekIDPattern.MatchString(s) {
		return "", zerr.With(ErrInvalidWeekID, "week_id", s)
	}
	return WeekID(s), nil
}

// String returns the identifier as a plain string.
func (w WeekID) String() string { return string(w) }

// WeekDates returns the display dates for monday through friday of the
// week containing t, shifted by offset weeks. Keys are weekday keys,
// values are strings like "January 02, 2026".
func WeekDates(t time.Time, offset int) map[string]string {
	monday := mondayOf(t).AddDate(0, 0, offset*7)
	dates := make(map[string]string, len(Weekdays))
	for i, day := range Weekdays {
		dates[day] = monday.AddDate(0, 0, i).Format("January 02, 2006")
	}
	return dates
}

// mondayOf returns the monday of the week containing t, at t's clock time.
func mondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the week it ends
	}
	return t.AddDate(0, 0, -(wd - 1))
}
