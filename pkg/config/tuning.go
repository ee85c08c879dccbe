package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	insights "github.com/felixgeelhaar/paretofocus/internal/insights/domain"
	planning "github.com/felixgeelhaar/paretofocus/internal/planning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/shared/infrastructure/security"
)

const maxTuningBytes = 1 << 20

// Tuning holds the planner constants a user may override from YAML.
//
//	scoring:
//	  lift_min: 0.8
//	plan:
//	  max_items: 4
//	project_weights:
//	  Writing: 1.5
//	recommendations:
//	  min_samples: 3
type Tuning struct {
	Scoring         planning.ScoringConfig         `yaml:"scoring"`
	Plan            planning.PlanOptions           `yaml:"plan"`
	ProjectWeights  planning.ProjectWeights        `yaml:"project_weights"`
	Recommendations insights.RecommendationOptions `yaml:"recommendations"`
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Scoring:         planning.DefaultScoringConfig(),
		Plan:            planning.PlanOptions{MinItems: planning.DefaultMinItems, MaxItems: planning.DefaultMaxItems},
		ProjectWeights:  planning.ProjectWeights{},
		Recommendations: insights.DefaultRecommendationOptions(),
	}
}

// ParseTuning overlays YAML onto the defaults. Keys absent from data keep
// their default values.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to parse tuning: %w", err)
	}
	if t.ProjectWeights == nil {
		t.ProjectWeights = planning.ProjectWeights{}
	}
	return t, nil
}

// LoadTuning reads the tuning file at path. An empty path or a missing
// file yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	data, err := security.ReadUserFile(path, maxTuningBytes)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultTuning(), nil
	}
	if err != nil {
		return DefaultTuning(), fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// WithDefaultEnergy returns a copy whose scoring default energy is energy,
// when energy is a valid level.
func (t Tuning) WithDefaultEnergy(energy int) Tuning {
	if energy >= planning.MinEnergy && energy <= planning.MaxEnergy {
		t.Scoring.DefaultEnergy = energy
	}
	return t
}
