package domain

import (
	"math"
	"sort"
	"time"
)

// TopProjectOptions bounds the top projects report.
type TopProjectOptions struct {
	Days       int
	Limit      int
	MinSamples int
}

// DefaultTopProjectOptions covers the last 30 days, three projects, two samples each.
func DefaultTopProjectOptions() TopProjectOptions {
	return TopProjectOptions{Days: 30, Limit: 3, MinSamples: 2}
}

// ProjectEffectiveness is one row of the top projects report.
type ProjectEffectiveness struct {
	Project   string `json:"project"`
	Done      int    `json:"done"`
	Effective int    `json:"effective"`
	RatePct   int    `json:"rate_pct"`
}

// TopProjects ranks projects by effectiveness over the trailing window,
// then by number of sessions.
func TopProjects(sessions []Session, now time.Time, opts TopProjectOptions) []ProjectEffectiveness {
	def := DefaultTopProjectOptions()
	if opts.Days <= 0 {
		opts.Days = def.Days
	}
	if opts.Limit <= 0 {
		opts.Limit = def.Limit
	}
	if opts.MinSamples <= 0 {
		opts.MinSamples = def.MinSamples
	}

	rows := make(map[string]*ProjectEffectiveness)
	for _, s := range FilterSessions(sessions, LastDays(opts.Days, now)) {
		p := s.ProjectName()
		row, ok := rows[p]
		if !ok {
			row = &ProjectEffectiveness{Project: p}
			rows[p] = row
		}
		row.Done++
		if s.Effective() {
			row.Effective++
		}
	}

	out := make([]ProjectEffectiveness, 0, len(rows))
	for _, row := range rows {
		if row.Done < opts.MinSamples {
			continue
		}
		row.RatePct = int(math.Round(100 * float64(row.Effective) / float64(row.Done)))
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RatePct != out[j].RatePct {
			return out[i].RatePct > out[j].RatePct
		}
		if out[i].Done != out[j].Done {
			return out[i].Done > out[j].Done
		}
		return out[i].Project < out[j].Project
	})
	return out[:min(len(out), opts.Limit)]
}
