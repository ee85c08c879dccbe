package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
)

// LogInterruptCommand records something that broke focus.
type LogInterruptCommand struct {
	Reason string
	At     time.Time
}

// LogInterruptHandler handles log interrupt commands.
type LogInterruptHandler struct {
	interruptRepo domain.InterruptRepository
}

// NewLogInterruptHandler creates a new log interrupt handler.
func NewLogInterruptHandler(interruptRepo domain.InterruptRepository) *LogInterruptHandler {
	return &LogInterruptHandler{interruptRepo: interruptRepo}
}

// Handle executes the log interrupt command.
func (h *LogInterruptHandler) Handle(ctx context.Context, cmd LogInterruptCommand) (*domain.Interrupt, error) {
	at := cmd.At
	if at.IsZero() {
		at = time.Now()
	}
	interrupt := domain.NewInterrupt(cmd.Reason, at)
	if err := h.interruptRepo.Create(ctx, interrupt); err != nil {
		return nil, fmt.Errorf("failed to save interrupt: %w", err)
	}
	return interrupt, nil
}
