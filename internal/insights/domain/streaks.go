package domain

import "time"

// Streaks counts consecutive days with at least one session.
type Streaks struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time, loc *time.Location) civilDate {
	y, m, d := t.In(loc).Date()
	return civilDate{y, m, d}
}

func (c civilDate) next() civilDate {
	return dateOf(time.Date(c.year, c.month, c.day+1, 12, 0, 0, 0, time.UTC), time.UTC)
}

func (c civilDate) prev() civilDate {
	return dateOf(time.Date(c.year, c.month, c.day-1, 12, 0, 0, 0, time.UTC), time.UTC)
}

// ComputeStreaks returns the run ending today and the longest run ever,
// using now's location to decide which day a session belongs to.
func ComputeStreaks(sessions []Session, now time.Time) Streaks {
	loc := now.Location()
	active := make(map[civilDate]bool, len(sessions))
	for _, s := range sessions {
		active[dateOf(s.StartedAt, loc)] = true
	}

	var st Streaks
	for d := dateOf(now, loc); active[d]; d = d.prev() {
		st.Current++
	}

	for d := range active {
		if active[d.prev()] {
			continue // not the start of a run
		}
		run := 0
		for c := d; active[c]; c = c.next() {
			run++
		}
		st.Best = max(st.Best, run)
	}
	return st
}
