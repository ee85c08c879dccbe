package domain

import "math"

// Counts is a running tally of outcomes for one task or project.
// Both fields only ever grow until the history is cleared.
type Counts struct {
	Yes int `json:"yes"`
	No  int `json:"no"`
}

// Total returns the number of observations, saturating at math.MaxInt.
func (c Counts) Total() int {
	if c.Yes > 0 && c.No > math.MaxInt-c.Yes {
		return math.MaxInt
	}
	return c.Yes + c.No
}

// IsEmpty reports whether no outcome has been recorded.
func (c Counts) IsEmpty() bool {
	return c.Total() <= 0
}

// Ratio returns the share of yes answers. The second result is false when
// there is no history to compute it from.
func (c Counts) Ratio() (float64, bool) {
	total := c.Total()
	if total <= 0 {
		return 0, false
	}
	// Summed as floats so huge tallies keep their proportion.
	return float64(c.Yes) / (float64(c.Yes) + float64(c.No)), true
}

// Add returns a copy of the counts with one more observation of a.
// Invalid answers leave the counts unchanged.
func (c Counts) Add(a Answer) Counts {
	switch a {
	case AnswerYes:
		c.Yes++
	case AnswerNo:
		c.No++
	}
	return c
}

// Sanitize clamps negative tallies, which can only come from corrupted storage, to zero.
func (c Counts) Sanitize() Counts {
	if c.Yes < 0 {
		c.Yes = 0
	}
	if c.No < 0 {
		c.No = 0
	}
	return c
}
