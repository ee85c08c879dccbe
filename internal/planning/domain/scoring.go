package domain

import (
	"fmt"
	"math"

	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

const (
	// MinEnergy is the lowest self-reported energy level.
	MinEnergy = 1
	// MaxEnergy is the highest self-reported energy level.
	MaxEnergy = 5
)

// FeedbackView is the read-only feedback history the scorer consults.
// *learning.Snapshot satisfies it.
type FeedbackView interface {
	TaskCounts(taskID int64) learning.Counts
	ProjectCounts(project string) learning.Counts
}

// ProjectWeights are manual per-project multipliers. Unknown projects weigh 1.
type ProjectWeights map[string]float64

// Weight returns the multiplier for a project.
func (w ProjectWeights) Weight(project string) float64 {
	if w == nil {
		return 1
	}
	v, ok := w[learning.ProjectName(project)]
	if !ok || v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	return v
}

// ScoreBreakdown shows how each factor contributed to a task's score.
type ScoreBreakdown struct {
	TaskID           int64   `json:"task_id"`
	Base             float64 `json:"base"`
	PerMinute        float64 `json:"per_minute"`
	TaskLift         float64 `json:"task_lift"`
	ProjectLift      float64 `json:"project_lift"`
	EnergyMultiplier float64 `json:"energy_multiplier"`
	ProjectWeight    float64 `json:"project_weight"`
	Score            float64 `json:"score"`
	Explanation      string  `json:"explanation"`
}

// Scorer computes a comparable priority for a task from its static
// attributes and its learned feedback signal. It has no side effects and
// never fails: malformed input is replaced by defaults.
type Scorer struct {
	config ScoringConfig
}

// NewScorer creates a scorer with the given configuration.
func NewScorer(cfg ScoringConfig) *Scorer {
	return &Scorer{config: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (s *Scorer) Config() ScoringConfig {
	return s.config
}

// Score returns the task's priority; larger is better.
func (s *Scorer) Score(t Task, fb FeedbackView, energy int, weights ProjectWeights) float64 {
	return s.Explain(t, fb, energy, weights).Score
}

// Explain computes the score and returns every intermediate factor.
func (s *Scorer) Explain(t Task, fb FeedbackView, energy int, weights ProjectWeights) ScoreBreakdown {
	t = t.Normalize(s.config)

	base := float64(t.Impact) * t.ConfidenceValue() / math.Sqrt(t.EffortValue()+1)
	perMinute := base / float64(max(s.config.MinDurationFloor, t.Duration))

	taskLift, projectLift := 1.0, 1.0
	if fb != nil {
		taskLift = s.config.Lift(fb.TaskCounts(t.ID))
		projectLift = s.config.Lift(fb.ProjectCounts(t.Project))
	}

	energyMult := s.config.EnergyMultiplier(energy)
	weight := weights.Weight(t.Project)

	score := perMinute * taskLift * projectLift * energyMult * weight

	return ScoreBreakdown{
		TaskID:           t.ID,
		Base:             base,
		PerMinute:        perMinute,
		TaskLift:         taskLift,
		ProjectLift:      projectLift,
		EnergyMultiplier: energyMult,
		ProjectWeight:    weight,
		Score:            score,
		Explanation: fmt.Sprintf(
			"per_minute=%.4f lift=%.3f energy=%.2f weight=%.2f",
			perMinute, taskLift*projectLift, energyMult, weight,
		),
	}
}

// Lift maps a yes-ratio linearly onto [LiftMin, LiftMax].
// No history yields a neutral 1.0.
func (c ScoringConfig) Lift(counts learning.Counts) float64 {
	ratio, ok := counts.Sanitize().Ratio()
	if !ok {
		return 1.0
	}
	return c.LiftMin + ratio*(c.LiftMax-c.LiftMin)
}

// EnergyMultiplier nudges scores for high or low reported energy.
func (c ScoringConfig) EnergyMultiplier(energy int) float64 {
	energy = c.NormalizeEnergy(energy)
	switch {
	case energy >= c.HighEnergyThreshold:
		return c.HighEnergyMultiplier
	case energy <= c.LowEnergyThreshold:
		return c.LowEnergyMultiplier
	default:
		return 1.0
	}
}

// NormalizeEnergy replaces an out-of-range energy level with DefaultEnergy.
func (c ScoringConfig) NormalizeEnergy(energy int) int {
	if energy < MinEnergy || energy > MaxEnergy {
		if c.DefaultEnergy < MinEnergy || c.DefaultEnergy > MaxEnergy {
			return 3
		}
		return c.DefaultEnergy
	}
	return energy
}
