// Package commands contains the focus block completion use case.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	insightcmds "github.com/felixgeelhaar/paretofocus/internal/insights/application/commands"
	insights "github.com/felixgeelhaar/paretofocus/internal/insights/domain"
	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
)

// FeedbackRecorder appends one outcome to a task's and its project's tally.
type FeedbackRecorder interface {
	RecordFeedback(ctx context.Context, taskID int64, project string, answer learning.Answer) error
}

// SessionLogger stores a completed focus block.
type SessionLogger interface {
	LogSession(ctx context.Context, cmd insightcmds.LogSessionCommand) (*insights.Session, error)
}

// CompleteBlockCommand reports whether a focus block on a task moved the
// needle. Feedback accepts the same spellings as learning.ParseAnswer.
type CompleteBlockCommand struct {
	TaskID   int64
	Feedback string
	At       time.Time
}

// CompleteBlockResult contains what was recorded.
type CompleteBlockResult struct {
	Task    *task.Record
	Answer  learning.Answer
	Session *insights.Session
	Counts  learning.Counts
}

// CompleteBlockHandler handles the CompleteBlockCommand.
type CompleteBlockHandler struct {
	taskRepo task.Repository
	recorder FeedbackRecorder
	sessions SessionLogger
	counts   func(ctx context.Context, taskID int64) (learning.Counts, error)
	logger   *slog.Logger
}

// NewCompleteBlockHandler creates a new CompleteBlockHandler. When the
// recorder can also report counts, the result carries the updated tally.
func NewCompleteBlockHandler(taskRepo task.Repository, recorder FeedbackRecorder, sessions SessionLogger, logger *slog.Logger) *CompleteBlockHandler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &CompleteBlockHandler{taskRepo: taskRepo, recorder: recorder, sessions: sessions, logger: logger}
	if c, ok := recorder.(interface {
		Counts(ctx context.Context, taskID int64) (learning.Counts, error)
	}); ok {
		h.counts = c.Counts
	}
	return h
}

// Handle records the feedback first, then logs the session. A session
// failure leaves the feedback in place and is returned as an error.
func (h *CompleteBlockHandler) Handle(ctx context.Context, cmd CompleteBlockCommand) (*CompleteBlockResult, error) {
	answer, ok := learning.ParseAnswer(cmd.Feedback)
	if !ok {
		return nil, fmt.Errorf("%w: %q", learning.ErrInvalidAnswer, cmd.Feedback)
	}

	rec, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	if err := h.recorder.RecordFeedback(ctx, rec.ID, rec.Project, answer); err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}
	result := &CompleteBlockResult{Task: rec, Answer: answer}

	if h.sessions != nil {
		session, err := h.sessions.LogSession(ctx, insightcmds.LogSessionCommand{
			TaskID:          rec.ID,
			Project:         rec.Project,
			Title:           rec.Name,
			DurationMinutes: rec.Duration,
			Feedback:        answer,
			At:              cmd.At,
		})
		if err != nil {
			return result, fmt.Errorf("feedback recorded but session not logged: %w", err)
		}
		result.Session = session
	}

	if h.counts != nil {
		if c, err := h.counts(ctx, rec.ID); err == nil {
			result.Counts = c
		} else {
			h.logger.WarnContext(ctx, "failed to read back feedback", "task_id", rec.ID, "error", err)
		}
	}
	return result, nil
}
