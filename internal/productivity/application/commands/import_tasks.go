package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
)

// ImportTasksCommand merges tasks from an export file into the pool.
type ImportTasksCommand struct {
	Data   []byte
	DryRun bool
}

// ImportTasksResult summarizes an import.
type ImportTasksResult struct {
	Added     int
	Updated   int
	Conflicts []task.Conflict
	Skipped   int
}

// ImportTasksHandler handles the ImportTasksCommand.
type ImportTasksHandler struct {
	taskRepo task.Repository
	logger   *slog.Logger
	now      func() time.Time
}

// NewImportTasksHandler creates a new ImportTasksHandler.
func NewImportTasksHandler(taskRepo task.Repository, logger *slog.Logger) *ImportTasksHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportTasksHandler{taskRepo: taskRepo, logger: logger, now: time.Now}
}

// Handle executes the ImportTasksCommand.
func (h *ImportTasksHandler) Handle(ctx context.Context, cmd ImportTasksCommand) (*ImportTasksResult, error) {
	incoming, err := task.ParseImport(cmd.Data)
	if err != nil {
		return nil, err
	}

	local, err := h.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	merged := task.Merge(local, incoming, h.now())
	result := &ImportTasksResult{
		Added:     len(merged.Added),
		Updated:   len(merged.Updated),
		Conflicts: merged.Conflicts,
		Skipped:   merged.Skipped,
	}
	if cmd.DryRun {
		return result, nil
	}

	for _, rec := range merged.Added {
		if err := h.taskRepo.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to add %q: %w", rec.Name, err)
		}
	}
	for _, rec := range merged.Updated {
		if err := h.taskRepo.Update(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to update task %d: %w", rec.ID, err)
		}
	}

	h.logger.InfoContext(ctx, "tasks imported",
		"added", result.Added,
		"updated", result.Updated,
		"conflicts", len(result.Conflicts),
		"skipped", result.Skipped,
	)
	return result, nil
}
