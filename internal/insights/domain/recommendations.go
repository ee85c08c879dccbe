package domain

import (
	"fmt"
	"sort"
)

// RecommendationOptions tunes which projects are surfaced.
type RecommendationOptions struct {
	MinSamples int     `yaml:"min_samples"`
	HighRate   float64 `yaml:"high_rate"`
	LowRate    float64 `yaml:"low_rate"`
	Limit      int     `yaml:"limit"`
}

// DefaultRecommendationOptions returns the default thresholds.
func DefaultRecommendationOptions() RecommendationOptions {
	return RecommendationOptions{
		MinSamples: 2,
		HighRate:   0.60,
		LowRate:    0.40,
		Limit:      5,
	}
}

func (o RecommendationOptions) withDefaults() RecommendationOptions {
	def := DefaultRecommendationOptions()
	if o.MinSamples <= 0 {
		o.MinSamples = def.MinSamples
	}
	if o.HighRate <= 0 || o.HighRate > 1 {
		o.HighRate = def.HighRate
	}
	if o.LowRate <= 0 || o.LowRate > 1 {
		o.LowRate = def.LowRate
	}
	if o.Limit <= 0 {
		o.Limit = def.Limit
	}
	return o
}

// RecommendationItem is one human-readable suggestion.
type RecommendationItem struct {
	Title   string  `json:"title"`
	Detail  string  `json:"detail"`
	Project string  `json:"project"`
	Rate    float64 `json:"rate"`
	Samples int     `json:"samples"`
}

// Recommendations holds the strongest and weakest projects.
type Recommendations struct {
	Top       []RecommendationItem `json:"top"`
	Bottom    []RecommendationItem `json:"bottom"`
	TryMoreOf []string             `json:"try_more_of"`
	Review    []string             `json:"review"`
}

// IsEmpty reports whether there is nothing to suggest.
func (r Recommendations) IsEmpty() bool {
	return len(r.Top) == 0 && len(r.Bottom) == 0
}

type projectRate struct {
	project string
	rate    float64
	samples int
}

// TaskLevelRecommendations groups sessions by project and suggests doing
// more of projects at or above HighRate and reviewing those below LowRate.
// Projects with fewer than MinSamples sessions are ignored.
func TaskLevelRecommendations(sessions []Session, opts RecommendationOptions) Recommendations {
	opts = opts.withDefaults()

	groups := make(map[string][]Session)
	for _, s := range sessions {
		p := s.ProjectName()
		groups[p] = append(groups[p], s)
	}

	var strong, weak []projectRate
	for project, list := range groups {
		if len(list) < opts.MinSamples {
			continue
		}
		stats := ComputeEffectiveness(list)
		row := projectRate{project: project, rate: stats.Effectiveness, samples: stats.Total}
		switch {
		case row.rate >= opts.HighRate:
			strong = append(strong, row)
		case row.rate < opts.LowRate:
			weak = append(weak, row)
		}
	}

	// Map iteration is random; order ties by sample count, then name.
	sort.Slice(strong, func(i, j int) bool {
		return lessRate(strong[i], strong[j], true)
	})
	sort.Slice(weak, func(i, j int) bool {
		return lessRate(weak[i], weak[j], false)
	})

	strong = strong[:min(len(strong), opts.Limit)]
	weak = weak[:min(len(weak), opts.Limit)]

	out := Recommendations{
		Top:       make([]RecommendationItem, 0, len(strong)),
		Bottom:    make([]RecommendationItem, 0, len(weak)),
		TryMoreOf: make([]string, 0, len(strong)),
		Review:    make([]string, 0, len(weak)),
	}
	for _, r := range strong {
		out.Top = append(out.Top, RecommendationItem{
			Title:   fmt.Sprintf("Do more: %s", r.project),
			Detail:  "High recent effectiveness. Schedule more of this work.",
			Project: r.project,
			Rate:    r.rate,
			Samples: r.samples,
		})
		out.TryMoreOf = append(out.TryMoreOf, r.project)
	}
	for _, r := range weak {
		out.Bottom = append(out.Bottom, RecommendationItem{
			Title:   fmt.Sprintf("Review: %s", r.project),
			Detail:  "Low effectiveness. Consider breaking it down or changing approach.",
			Project: r.project,
			Rate:    r.rate,
			Samples: r.samples,
		})
		out.Review = append(out.Review, r.project)
	}
	return out
}

func lessRate(a, b projectRate, desc bool) bool {
	if a.rate != b.rate {
		if desc {
			return a.rate > b.rate
		}
		return a.rate < b.rate
	}
	if a.samples != b.samples {
		return a.samples > b.samples
	}
	return a.project < b.project
}
