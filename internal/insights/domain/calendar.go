package domain

import "time"

// startOfDay returns local midnight of t's calendar day in loc.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Window is a half-open span of whole days: [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Days returns the number of calendar days the window spans.
func (w Window) Days() int {
	days := 0
	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// LastDays returns the window covering today and the days-1 days before it.
func LastDays(days int, now time.Time) Window {
	days = max(1, days)
	loc := now.Location()
	end := startOfDay(now, loc).AddDate(0, 0, 1)
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// TwoWeekWindows returns count consecutive 14-day windows, oldest first,
// the newest ending with today.
func TwoWeekWindows(count int, now time.Time) []Window {
	count = max(1, count)
	newest := LastDays(14, now)

	windows := make([]Window, count)
	for i := 0; i < count; i++ {
		windows[count-1-i] = Window{
			Start: newest.Start.AddDate(0, 0, -14*i),
			End:   newest.End.AddDate(0, 0, -14*i),
		}
	}
	return windows
}

// FilterSessions returns the sessions that started inside w.
func FilterSessions(sessions []Session, w Window) []Session {
	var out []Session
	for _, s := range sessions {
		if w.Contains(s.StartedAt) {
			out = append(out, s)
		}
	}
	return out
}
