// Package queries contains query handlers for the task pool.
package queries

import (
	"context"
	"sort"
	"strings"

	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	"github.com/felixgeelhaar/paretofocus/internal/productivity/domain/task"
)

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	Project string // case-insensitive; "" means all
	SortBy  string // "id" (default), "impact", "duration", "name"
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]*task.Record, error) {
	records, err := h.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if query.Project != "" {
		filtered := records[:0]
		for _, r := range records {
			if strings.EqualFold(r.ProjectName(), learning.ProjectName(query.Project)) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	switch query.SortBy {
	case "impact":
		sort.SliceStable(records, func(i, j int) bool { return records[i].Impact > records[j].Impact })
	case "duration":
		sort.SliceStable(records, func(i, j int) bool { return records[i].Duration < records[j].Duration })
	case "name":
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
		})
	}
	return records, nil
}

// GetTaskHandler loads one task.
type GetTaskHandler struct {
	taskRepo task.Repository
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(taskRepo task.Repository) *GetTaskHandler {
	return &GetTaskHandler{taskRepo: taskRepo}
}

// Handle returns the task with the given ID.
func (h *GetTaskHandler) Handle(ctx context.Context, id int64) (*task.Record, error) {
	return h.taskRepo.FindByID(ctx, id)
}
