package domain

import "time"

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	Name      string
	StartTime time.Time
	EndTime   *time.Time
}

// Status is the lifecycle state of a task
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
)

// NewTask creates a new open Task with the given name and start time.
func NewTask(name string, startTime time.Time) Task {
	return Task{
		Name:      name,
		StartTime: startTime,
	}
}

// IsOpen reports whether the task has no end time yet.
func (t Task) IsOpen() bool {
	return t.EndTime == nil
}

// Status returns StatusOpen or StatusCompleted.
func (t Task) Status() Status {
	if t.IsOpen() {
		return StatusOpen
	}
	return StatusCompleted
}

// Complete returns a copy of the task ending at endTime. An already
// completed task is returned unchanged.
func (t Task) Complete(endTime time.Time) Task {
	if !t.IsOpen() {
		return t
	}
	t.EndTime = &endTime
	return t
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// ListFilter selects which tasks a listing includes.
type ListFilter struct {
	All bool
}
