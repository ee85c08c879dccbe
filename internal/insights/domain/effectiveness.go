package domain

import "math"

// DefaultZ is the normal quantile for a 95% confidence interval.
const DefaultZ = 1.96

// WilsonInterval returns the Wilson score interval for successes out of
// trials. With no trials nothing can be claimed and both bounds are 0.
func WilsonInterval(successes, trials int, z float64) (low, high float64) {
	if trials <= 0 {
		return 0, 0
	}
	successes = min(max(successes, 0), trials)

	n := float64(trials)
	p := float64(successes) / n
	z2 := z * z

	denom := 1 + z2/n
	center := p + z2/(2*n)
	margin := z * math.Sqrt((p*(1-p)+z2/(4*n))/n)

	low = math.Max(0, (center-margin)/denom)
	high = math.Min(1, (center+margin)/denom)
	return low, high
}

// EffectivenessStats summarizes how many blocks moved the needle.
type EffectivenessStats struct {
	Total            int     `json:"total"`
	Effective        int     `json:"effective"`
	Ineffective      int     `json:"ineffective"`
	Minutes          int     `json:"minutes"`
	Effectiveness    float64 `json:"effectiveness"`
	EffectivenessPct float64 `json:"effectiveness_pct"`
	Low              float64 `json:"low"`
	High             float64 `json:"high"`
}

// ComputeEffectiveness counts sessions marked yes against all sessions,
// including those without feedback, and bounds the rate with a 95% Wilson
// interval.
func ComputeEffectiveness(sessions []Session) EffectivenessStats {
	stats := EffectivenessStats{
		Total:   len(sessions),
		Minutes: sumMinutes(sessions),
	}
	for _, s := range sessions {
		switch {
		case s.Effective():
			stats.Effective++
		case s.Feedback != "":
			stats.Ineffective++
		}
	}

	if stats.Total > 0 {
		stats.Effectiveness = float64(stats.Effective) / float64(stats.Total)
		stats.EffectivenessPct = stats.Effectiveness * 100
	}
	stats.Low, stats.High = WilsonInterval(stats.Effective, stats.Total, DefaultZ)
	return stats
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
