// Package commands contains command handlers for the task pool.
package commands

import (
	"context"
	"fmt"
	"time"

	planning "github.com/felixgeelhaar/paretofocus/internal/planning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
)

// AddTaskCommand contains the data needed to add a task to the pool.
type AddTaskCommand struct {
	Name       string
	Impact     int
	Duration   int
	Project    string
	Confidence *float64
	Effort     *float64
}

// AddTaskResult contains the result of adding a task.
type AddTaskResult struct {
	TaskID int64
}

// AddTaskHandler handles the AddTaskCommand.
type AddTaskHandler struct {
	taskRepo task.Repository
	scoring  planning.ScoringConfig
	now      func() time.Time
}

// NewAddTaskHandler creates a new AddTaskHandler. Impact and duration left
// at zero take the scoring defaults.
func NewAddTaskHandler(taskRepo task.Repository, scoring planning.ScoringConfig) *AddTaskHandler {
	return &AddTaskHandler{taskRepo: taskRepo, scoring: scoring, now: time.Now}
}

// Handle executes the AddTaskCommand.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) (*AddTaskResult, error) {
	t := planning.Task{
		Name:       cmd.Name,
		Impact:     cmd.Impact,
		Duration:   cmd.Duration,
		Project:    cmd.Project,
		Confidence: cmd.Confidence,
		Effort:     cmd.Effort,
	}
	if t.Impact == 0 {
		t.Impact = h.scoring.DefaultImpact
	}
	if t.Duration == 0 {
		t.Duration = h.scoring.DefaultBlockMinutes
	}

	rec, err := task.NewRecord(t, h.now())
	if err != nil {
		return nil, err
	}
	if err := h.taskRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return &AddTaskResult{TaskID: rec.ID}, nil
}
