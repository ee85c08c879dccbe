package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
)

// UpdateTaskCommand contains the data needed to edit a task.
type UpdateTaskCommand struct {
	TaskID   int64
	Name     *string // nil means no change
	Impact   *int    // nil means no change
	Duration *int    // nil means no change
	Project  *string // nil means no change
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo task.Repository
	now      func() time.Time
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository) *UpdateTaskHandler {
	return &UpdateTaskHandler{taskRepo: taskRepo, now: time.Now}
}

// Handle executes the UpdateTaskCommand.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) (*task.Record, error) {
	rec, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		rec.Name = *cmd.Name
	}
	if cmd.Impact != nil {
		rec.Impact = *cmd.Impact
	}
	if cmd.Duration != nil {
		rec.Duration = *cmd.Duration
	}
	if cmd.Project != nil {
		rec.Project = *cmd.Project
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", task.ErrInvalidTask, err)
	}

	rec.Touch(h.now())
	if err := h.taskRepo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return rec, nil
}
