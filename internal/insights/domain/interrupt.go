package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultInterruptReason labels an interrupt logged without a reason.
const DefaultInterruptReason = "Interrupt"

// Interrupt is something that broke a focus block.
type Interrupt struct {
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
	Reason string    `json:"reason"`
}

// NewInterrupt creates an interrupt at the given time.
func NewInterrupt(reason string, at time.Time) *Interrupt {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultInterruptReason
	}
	return &Interrupt{ID: uuid.New().String(), At: at, Reason: reason}
}

// HourlyHistogram counts today's interrupts per local hour of now's location.
func HourlyHistogram(interrupts []Interrupt, now time.Time) [24]int {
	var buckets [24]int
	today := LastDays(1, now)
	for _, it := range interrupts {
		if today.Contains(it.At) {
			buckets[it.At.In(now.Location()).Hour()]++
		}
	}
	return buckets
}
