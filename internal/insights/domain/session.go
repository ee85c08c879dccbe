package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
)

// MinSessionSeconds is the shortest session logged from a task.
const MinSessionSeconds = 60

var ErrSessionNotFound = errors.New("session not found")

// Session is one completed focus block.
type Session struct {
	ID        string          `json:"id"`
	TaskID    int64           `json:"task_id"`
	Project   string          `json:"project,omitempty"`
	Title     string          `json:"title,omitempty"`
	Seconds   int             `json:"seconds"`
	StartedAt time.Time       `json:"started_at"`
	Feedback  learning.Answer `json:"feedback,omitempty"`
}

// NewSessionFromTask records a block spent on a task. The session lasts the
// task's planned duration, but never less than a minute.
func NewSessionFromTask(taskID int64, project, title string, durationMinutes int, feedback learning.Answer, at time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		Project:   strings.TrimSpace(project),
		Title:     strings.TrimSpace(title),
		Seconds:   max(MinSessionSeconds, durationMinutes*60),
		StartedAt: at,
		Feedback:  feedback,
	}
}

// ProjectName returns the session's project, or "General".
func (s Session) ProjectName() string {
	return learning.ProjectName(s.Project)
}

// BucketName is the label the session is grouped under in time reports:
// the title, else the project, else "General".
func (s Session) BucketName() string {
	if t := strings.TrimSpace(s.Title); t != "" {
		return t
	}
	return s.ProjectName()
}

// Effective reports whether the block was marked as moving the needle.
func (s Session) Effective() bool {
	return s.Feedback == learning.AnswerYes
}

// Minutes returns the session length in fractional minutes, never negative.
func (s Session) Minutes() float64 {
	return float64(max(0, s.Seconds)) / 60
}

// sumMinutes totals session time and rounds to whole minutes.
func sumMinutes(sessions []Session) int {
	var total float64
	for _, s := range sessions {
		total += s.Minutes()
	}
	return int(roundHalfUp(total))
}
