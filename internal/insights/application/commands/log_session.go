// Package commands contains command handlers for the insights bounded context.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/insights/domain"
	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

// LogSessionCommand records one completed focus block on a task.
type LogSessionCommand struct {
	TaskID          int64
	Project         string
	Title           string
	DurationMinutes int
	Feedback        learning.Answer
	At              time.Time
}

// LogSessionHandler handles log session commands.
type LogSessionHandler struct {
	sessionRepo domain.SessionRepository
	logger      *slog.Logger
	metrics     observability.Metrics
}

// NewLogSessionHandler creates a new log session handler.
func NewLogSessionHandler(sessionRepo domain.SessionRepository, logger *slog.Logger, metrics observability.Metrics) *LogSessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &LogSessionHandler{sessionRepo: sessionRepo, logger: logger, metrics: metrics}
}

// Handle executes the log session command.
func (h *LogSessionHandler) Handle(ctx context.Context, cmd LogSessionCommand) (*domain.Session, error) {
	if cmd.Feedback != "" && !cmd.Feedback.IsValid() {
		return nil, learning.ErrInvalidAnswer
	}
	at := cmd.At
	if at.IsZero() {
		at = time.Now()
	}

	session := domain.NewSessionFromTask(cmd.TaskID, cmd.Project, cmd.Title, cmd.DurationMinutes, cmd.Feedback, at)
	if err := h.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	h.metrics.Counter(observability.MetricSessionsLogged, 1)
	h.logger.DebugContext(ctx, "session logged",
		"session_id", session.ID,
		"task_id", session.TaskID,
		"seconds", session.Seconds,
	)
	return session, nil
}
