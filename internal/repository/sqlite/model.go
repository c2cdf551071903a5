package sqlite

import "time"

// Task is a row of the tasks table.
// EndTime is nil while the task is open.
type Task struct {
	ID        int64
	Name      string
	StartTime time.Time
	EndTime   *time.Time
}

// ListOptions controls which rows ListTasks returns
type ListOptions struct {
	// IncludeCompleted returns completed tasks as well as open ones.
	IncludeCompleted bool
}
