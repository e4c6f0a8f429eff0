package query

import "time"

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// weekBounds returns the Monday and Sunday of the week containing now, both at
// midnight, so the window is [monday, sunday] inclusive by day.
func weekBounds(now time.Time) (time.Time, time.Time) {
	day := dateOnly(now)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := day.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday, sunday
}

func inWeek(t, monday, sunday time.Time) bool {
	d := dateOnly(t)
	return !d.Before(monday) && !d.After(sunday)
}

func previousMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
}
