// Package application exposes the feedback learning use cases: recording
// outcomes and loading the snapshot the scorer reads.
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	"github.com/felixgeelhaar/paretofocus/pkg/observability"
)

// Recorder maintains per-task and per-project feedback tallies in a Store.
type Recorder struct {
	store   domain.Store
	logger  *slog.Logger
	metrics observability.Metrics
}

// NewRecorder creates a recorder backed by store.
func NewRecorder(store domain.Store, logger *slog.Logger, metrics observability.Metrics) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &Recorder{store: store, logger: logger, metrics: metrics}
}

// RecordFeedback appends one observation to both the task's and the
// project's tally. It is not idempotent: each call is one focus block.
// A blank project is recorded under "General".
//
// Both tallies are read before either is written. If the second write
// fails the first is put back, so a retry after an error counts once.
func (r *Recorder) RecordFeedback(ctx context.Context, taskID int64, project string, answer domain.Answer) error {
	if !answer.IsValid() {
		return domain.ErrInvalidAnswer
	}

	keys := []domain.Key{domain.TaskKey(taskID), domain.ProjectKey(project)}
	before := make([]domain.Counts, len(keys))
	for i, key := range keys {
		counts, err := r.store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to read feedback %s: %w", key, err)
		}
		before[i] = counts.Sanitize()
	}

	for i, key := range keys {
		if err := r.store.Put(ctx, key, before[i].Add(answer)); err != nil {
			r.undo(ctx, keys[:i], before[:i])
			return fmt.Errorf("failed to write feedback %s: %w", key, err)
		}
	}

	r.metrics.Counter(observability.MetricFeedbackRecorded, 1, observability.T("answer", answer.String()))
	r.logger.DebugContext(ctx, "feedback recorded",
		"task_id", taskID,
		"project", domain.ProjectName(project),
		"answer", answer.String(),
	)
	return nil
}

// undo restores tallies already written by a failed RecordFeedback.
func (r *Recorder) undo(ctx context.Context, keys []domain.Key, counts []domain.Counts) {
	for i := len(keys) - 1; i >= 0; i-- {
		if err := r.store.Put(ctx, keys[i], counts[i]); err != nil {
			r.logger.WarnContext(ctx, "failed to roll back feedback, tally may count twice on retry",
				"key", keys[i].String(),
				"error", err,
			)
		}
	}
}

// Counts returns the raw tally for a task.
func (r *Recorder) Counts(ctx context.Context, taskID int64) (domain.Counts, error) {
	return r.store.Get(ctx, domain.TaskKey(taskID))
}

// ForgetTask removes a task's tally. Project tallies are left intact.
func (r *Recorder) ForgetTask(ctx context.Context, taskID int64) error {
	if err := r.store.Delete(ctx, domain.TaskKey(taskID)); err != nil {
		return fmt.Errorf("failed to clear feedback for task %d: %w", taskID, err)
	}
	return nil
}

// TaskRef identifies what a snapshot needs to load for one task.
type TaskRef struct {
	ID      int64
	Project string
}

// Snapshot loads the tallies for the given tasks and their projects.
// It never fails: an unreadable entry is logged and treated as having no
// history, so planning always proceeds.
func (r *Recorder) Snapshot(ctx context.Context, refs []TaskRef) *domain.Snapshot {
	snap := domain.NewSnapshot()
	loadedProjects := make(map[string]bool)

	for _, ref := range refs {
		if c, err := r.store.Get(ctx, domain.TaskKey(ref.ID)); err != nil {
			r.logger.WarnContext(ctx, "feedback unavailable, using neutral lift",
				"task_id", ref.ID,
				"error", err,
			)
		} else if !c.IsEmpty() {
			snap.WithTask(ref.ID, c)
		}

		project := domain.ProjectName(ref.Project)
		if loadedProjects[project] {
			continue
		}
		loadedProjects[project] = true

		if c, err := r.store.Get(ctx, domain.ProjectKey(project)); err != nil {
			r.logger.WarnContext(ctx, "feedback unavailable, using neutral lift",
				"project", project,
				"error", err,
			)
		} else if !c.IsEmpty() {
			snap.WithProject(project, c)
		}
	}

	return snap
}
