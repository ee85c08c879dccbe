package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scope distinguishes the two granularities feedback is tallied at.
type Scope string

const (
	ScopeTask    Scope = "task"
	ScopeProject Scope = "project"
)

// DefaultProject is the project name used for tasks without one.
const DefaultProject = "General"

// ErrStoreUnavailable is returned when a backing store cannot be reached.
var ErrStoreUnavailable = errors.New("feedback store unavailable")

// Key identifies one tally in a Store.
type Key struct {
	Scope Scope
	ID    string
}

// TaskKey returns the key for a task's tally.
func TaskKey(taskID int64) Key {
	return Key{Scope: ScopeTask, ID: strconv.FormatInt(taskID, 10)}
}

// ProjectKey returns the key for a project's tally. Blank names map to DefaultProject.
func ProjectKey(project string) Key {
	return Key{Scope: ScopeProject, ID: ProjectName(project)}
}

// ProjectName trims a project label and substitutes DefaultProject when it is blank.
func ProjectName(project string) string {
	p := strings.TrimSpace(project)
	if p == "" {
		return DefaultProject
	}
	return p
}

// String renders the key as scope:id.
func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.Scope, k.ID)
}

// Store is the key-value port the feedback tallies live behind.
type Store interface {
	// Get returns the tally for key. A missing key yields zero Counts and no error.
	Get(ctx context.Context, key Key) (Counts, error)

	// Put replaces the tally for key.
	Put(ctx context.Context, key Key, counts Counts) error

	// Delete removes the tally for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key Key) error
}
