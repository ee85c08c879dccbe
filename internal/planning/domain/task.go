// Package domain contains the plan-fitting core: the task model, the
// scoring engine that ranks tasks, and the fitter that packs them into a
// time budget.
package domain

import (
	"errors"
	"math"
	"strings"

	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

const (
	// MinImpact is the lowest impact rating a task can carry.
	MinImpact = 1
	// MaxImpact is the highest impact rating a task can carry.
	MaxImpact = 5
)

// Task validation errors.
var (
	ErrEmptyTaskName    = errors.New("task name cannot be empty")
	ErrImpactOutOfRange = errors.New("task impact must be between 1 and 5")
	ErrInvalidDuration  = errors.New("task duration must be positive")
)

// Task is a unit of work a user might spend a focus block on.
// The core only reads tasks; it never mutates the caller's values.
type Task struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Impact   int    `json:"impact"`
	Duration int    `json:"duration"` // minutes
	Project  string `json:"project,omitempty"`

	// Confidence and Effort are reserved for a fuller ICE model and default to 1.
	Confidence *float64 `json:"confidence,omitempty"`
	Effort     *float64 `json:"effort,omitempty"`
}

// Validate checks the fields a user must supply when creating or editing a task.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTaskName
	}
	if t.Impact < MinImpact || t.Impact > MaxImpact {
		return ErrImpactOutOfRange
	}
	if t.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// ProjectName returns the task's project, or "General" when it has none.
func (t Task) ProjectName() string {
	return learning.ProjectName(t.Project)
}

// ConfidenceValue returns the confidence used for scoring.
func (t Task) ConfidenceValue() float64 {
	if t.Confidence == nil || !finite(*t.Confidence) || *t.Confidence <= 0 {
		return 1
	}
	return *t.Confidence
}

// EffortValue returns the effort used for scoring.
func (t Task) EffortValue() float64 {
	if t.Effort == nil || !finite(*t.Effort) || *t.Effort < 0 {
		return 1
	}
	return *t.Effort
}

// Normalize returns a copy with every missing or invalid field replaced by
// its default, so ranking code can assume fully populated values.
// Normalize is idempotent.
func (t Task) Normalize(cfg ScoringConfig) Task {
	out := t
	out.Name = strings.TrimSpace(t.Name)
	if out.Impact < MinImpact || out.Impact > MaxImpact {
		out.Impact = cfg.DefaultImpact
	}
	if out.Duration <= 0 {
		out.Duration = cfg.DefaultBlockMinutes
	}
	out.Project = t.ProjectName()

	confidence := t.ConfidenceValue()
	effort := t.EffortValue()
	out.Confidence = &confidence
	out.Effort = &effort
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Float64 returns a pointer to v, for populating optional task fields.
func Float64(v float64) *float64 {
	return &v
}
