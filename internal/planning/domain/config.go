package domain

// ScoringConfig holds the tunable constants of the scoring engine.
type ScoringConfig struct {
	// DefaultImpact replaces a missing or out-of-range impact.
	DefaultImpact int `yaml:"default_impact"`
	// DefaultEnergy replaces a missing or out-of-range energy level.
	DefaultEnergy int `yaml:"default_energy"`
	// DefaultBlockMinutes replaces a missing duration.
	DefaultBlockMinutes int `yaml:"default_block_minutes"`
	// MinDurationFloor keeps very short tasks from dominating the per-minute density.
	MinDurationFloor int `yaml:"min_duration_floor"`

	// LiftMin and LiftMax bound the multiplier learned from feedback.
	LiftMin float64 `yaml:"lift_min"`
	LiftMax float64 `yaml:"lift_max"`

	HighEnergyThreshold  int     `yaml:"high_energy_threshold"`
	LowEnergyThreshold   int     `yaml:"low_energy_threshold"`
	HighEnergyMultiplier float64 `yaml:"high_energy_multiplier"`
	LowEnergyMultiplier  float64 `yaml:"low_energy_multiplier"`
}

// DefaultScoringConfig returns the stock tuning.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		DefaultImpact:        3,
		DefaultEnergy:        3,
		DefaultBlockMinutes:  25,
		MinDurationFloor:     5,
		LiftMin:              0.85,
		LiftMax:              1.15,
		HighEnergyThreshold:  4,
		LowEnergyThreshold:   2,
		HighEnergyMultiplier: 1.08,
		LowEnergyMultiplier:  0.92,
	}
}

// withDefaults fills zero or inconsistent fields from DefaultScoringConfig.
func (c ScoringConfig) withDefaults() ScoringConfig {
	d := DefaultScoringConfig()
	if c.DefaultImpact < MinImpact || c.DefaultImpact > MaxImpact {
		c.DefaultImpact = d.DefaultImpact
	}
	if c.DefaultEnergy < MinEnergy || c.DefaultEnergy > MaxEnergy {
		c.DefaultEnergy = d.DefaultEnergy
	}
	if c.DefaultBlockMinutes <= 0 {
		c.DefaultBlockMinutes = d.DefaultBlockMinutes
	}
	if c.MinDurationFloor <= 0 {
		c.MinDurationFloor = d.MinDurationFloor
	}
	if !finite(c.LiftMin) || !finite(c.LiftMax) || c.LiftMin <= 0 || c.LiftMax <= 0 || c.LiftMin > c.LiftMax {
		c.LiftMin = d.LiftMin
		c.LiftMax = d.LiftMax
	}
	if c.HighEnergyThreshold == 0 {
		c.HighEnergyThreshold = d.HighEnergyThreshold
	}
	if c.LowEnergyThreshold == 0 {
		c.LowEnergyThreshold = d.LowEnergyThreshold
	}
	// An inverted or out-of-range pair would flip the energy nudge.
	if c.LowEnergyThreshold < MinEnergy || c.HighEnergyThreshold > MaxEnergy ||
		c.LowEnergyThreshold >= c.HighEnergyThreshold {
		c.HighEnergyThreshold = d.HighEnergyThreshold
		c.LowEnergyThreshold = d.LowEnergyThreshold
	}
	if !finite(c.HighEnergyMultiplier) || c.HighEnergyMultiplier <= 0 {
		c.HighEnergyMultiplier = d.HighEnergyMultiplier
	}
	if !finite(c.LowEnergyMultiplier) || c.LowEnergyMultiplier <= 0 {
		c.LowEnergyMultiplier = d.LowEnergyMultiplier
	}
	return c
}
