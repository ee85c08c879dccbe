package domain

// Snapshot is a read-only, in-memory view of the tallies relevant to one
// ranking pass. Lookups never fail; unknown ids read as zero Counts.
type Snapshot struct {
	tasks    map[int64]Counts
	projects map[string]Counts
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		tasks:    make(map[int64]Counts),
		projects: make(map[string]Counts),
	}
}

// WithTask sets the tally for a task and returns the snapshot for chaining.
func (s *Snapshot) WithTask(taskID int64, c Counts) *Snapshot {
	s.tasks[taskID] = c.Sanitize()
	return s
}

// WithProject sets the tally for a project and returns the snapshot for chaining.
func (s *Snapshot) WithProject(project string, c Counts) *Snapshot {
	s.projects[ProjectName(project)] = c.Sanitize()
	return s
}

// TaskCounts returns the tally recorded for a task.
func (s *Snapshot) TaskCounts(taskID int64) Counts {
	if s == nil {
		return Counts{}
	}
	return s.tasks[taskID]
}

// ProjectCounts returns the tally recorded for a project.
func (s *Snapshot) ProjectCounts(project string) Counts {
	if s == nil {
		return Counts{}
	}
	return s.projects[ProjectName(project)]
}

// Len returns the number of task and project entries held.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tasks) + len(s.projects)
}
