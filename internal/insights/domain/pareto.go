package domain

import (
	"sort"
	"time"
)

// VitalFewShare is the share of time the vital few buckets account for.
const VitalFewShare = 80.0

// ParetoBucket is the time spent on one title or project over the week.
type ParetoBucket struct {
	Name          string  `json:"name"`
	Minutes       int     `json:"minutes"`
	Percent       float64 `json:"percent"`
	CumulativePct float64 `json:"cumulative_pct"`
	Vital         bool    `json:"vital"`
}

// WeeklyPareto totals the last seven calendar days (today included) by
// BucketName and sorts buckets by minutes, largest first. Buckets up to and
// including the one that crosses 80% of the total are marked Vital.
func WeeklyPareto(sessions []Session, now time.Time) []ParetoBucket {
	week := LastDays(7, now)

	totals := make(map[string]float64)
	for _, s := range FilterSessions(sessions, week) {
		totals[s.BucketName()] += s.Minutes()
	}

	buckets := make([]ParetoBucket, 0, len(totals))
	total := 0
	for name, minutes := range totals {
		m := int(roundHalfUp(minutes))
		buckets = append(buckets, ParetoBucket{Name: name, Minutes: m})
		total += m
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Minutes != buckets[j].Minutes {
			return buckets[i].Minutes > buckets[j].Minutes
		}
		return buckets[i].Name < buckets[j].Name
	})

	if total == 0 {
		return buckets
	}

	cumulative := 0.0
	for i := range buckets {
		buckets[i].Vital = cumulative < VitalFewShare
		buckets[i].Percent = 100 * float64(buckets[i].Minutes) / float64(total)
		cumulative += buckets[i].Percent
		buckets[i].CumulativePct = min(cumulative, 100)
	}
	return buckets
}
