package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	learning "github.com/felixgeelhaar/paretofocus/internal/learning/domain"
	planning "github.com/felixgeelhaar/paretofocus/internal/planning/domain"
)

const (
	// MinImportedDuration is the shortest duration an imported task can have.
	MinImportedDuration = 5
	// DefaultImportedDuration applies when an imported task has no duration.
	DefaultImportedDuration = 30
)

// Imported is a task coming from an export file or another tool.
type Imported struct {
	Title     string     `json:"title"`
	Name      string     `json:"name"`
	Project   string     `json:"project"`
	Duration  *float64   `json:"duration"`
	Impact    *float64   `json:"impact"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// DisplayName returns Title, falling back to Name.
func (i Imported) DisplayName() string {
	if t := strings.TrimSpace(i.Title); t != "" {
		return t
	}
	return strings.TrimSpace(i.Name)
}

// ParseImport reads either a bare JSON array of tasks or an object with a
// "tasks" array.
func ParseImport(data []byte) ([]Imported, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []Imported
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse task list: %w", err)
		}
		return list, nil
	}

	var doc struct {
		Tasks []Imported `json:"tasks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}
	return doc.Tasks, nil
}

// MergeKey identifies a task across sources: lower-cased name and project.
// A blank project matches "General".
func MergeKey(name, project string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(learning.ProjectName(project))
}

// Conflict is an incoming task that matched a local one but was not newer.
type Conflict struct {
	Local    *Record
	Incoming Imported
}

// MergeResult describes how an import changes the pool.
type MergeResult struct {
	Added     []*Record
	Updated   []*Record
	Conflicts []Conflict
	Skipped   int
}

// Merge matches incoming tasks to local records by MergeKey. Unmatched tasks
// are added. A matched task replaces the local one only when it carries an
// UpdatedAt newer than the local record's; otherwise it is reported as a
// conflict and the local record wins. Nameless tasks are skipped.
func Merge(local []*Record, incoming []Imported, now time.Time) MergeResult {
	byKey := make(map[string]*Record, len(local))
	for _, r := range local {
		byKey[MergeKey(r.Name, r.Project)] = r
	}

	var result MergeResult
	for _, in := range incoming {
		name := in.DisplayName()
		if name == "" {
			result.Skipped++
			continue
		}
		key := MergeKey(name, in.Project)

		existing, ok := byKey[key]
		if !ok {
			rec := &Record{
				Task: planning.Task{
					Name:     name,
					Impact:   importedImpact(in.Impact, planning.DefaultScoringConfig().DefaultImpact),
					Duration: importedDuration(in.Duration, DefaultImportedDuration),
					Project:  strings.TrimSpace(in.Project),
				},
				CreatedAt: now,
				UpdatedAt: now,
			}
			result.Added = append(result.Added, rec)
			byKey[key] = rec
			continue
		}

		if in.UpdatedAt == nil || !in.UpdatedAt.After(existing.UpdatedAt) {
			result.Conflicts = append(result.Conflicts, Conflict{Local: existing, Incoming: in})
			continue
		}

		updated := *existing
		updated.Name = name
		updated.Project = strings.TrimSpace(in.Project)
		updated.Duration = importedDuration(in.Duration, existing.Duration)
		updated.Impact = importedImpact(in.Impact, existing.Impact)
		updated.UpdatedAt = *in.UpdatedAt
		result.Updated = append(result.Updated, &updated)
		byKey[key] = &updated
	}
	return result
}

func importedDuration(v *float64, fallback int) int {
	d := float64(fallback)
	if v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
		d = *v
	}
	return max(MinImportedDuration, int(math.Round(d)))
}

func importedImpact(v *float64, fallback int) int {
	i := float64(fallback)
	if v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
		i = *v
	}
	return min(planning.MaxImpact, max(planning.MinImpact, int(math.Round(i))))
}
