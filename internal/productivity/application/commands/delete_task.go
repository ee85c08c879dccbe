package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
)

// FeedbackEraser clears a task's feedback tally.
type FeedbackEraser interface {
	ForgetTask(ctx context.Context, taskID int64) error
}

// SessionEraser removes the sessions logged against a task.
type SessionEraser interface {
	DeleteByTask(ctx context.Context, taskID int64) (int, error)
}

// DeleteTaskCommand removes a task and its history.
type DeleteTaskCommand struct {
	TaskID int64
}

// DeleteTaskResult reports what was removed.
type DeleteTaskResult struct {
	SessionsRemoved int
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo task.Repository
	feedback FeedbackEraser
	sessions SessionEraser
	logger   *slog.Logger
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo task.Repository, feedback FeedbackEraser, sessions SessionEraser, logger *slog.Logger) *DeleteTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeleteTaskHandler{taskRepo: taskRepo, feedback: feedback, sessions: sessions, logger: logger}
}

// Handle deletes the task, then its feedback tally and sessions. The task's
// project tally is kept: it summarizes other tasks too.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	if err := h.taskRepo.Delete(ctx, cmd.TaskID); err != nil {
		return nil, err
	}

	result := &DeleteTaskResult{}
	if h.feedback != nil {
		if err := h.feedback.ForgetTask(ctx, cmd.TaskID); err != nil {
			return result, fmt.Errorf("task deleted but feedback kept: %w", err)
		}
	}
	if h.sessions != nil {
		n, err := h.sessions.DeleteByTask(ctx, cmd.TaskID)
		if err != nil {
			return result, fmt.Errorf("task deleted but sessions kept: %w", err)
		}
		result.SessionsRemoved = n
	}

	h.logger.DebugContext(ctx, "task deleted",
		"task_id", cmd.TaskID,
		"sessions_removed", result.SessionsRemoved,
	)
	return result, nil
}
