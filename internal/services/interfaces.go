package services

import (
	"context"
	"time"

	"task-tracker/internal/domain"
)

// Clock returns the current time; tests substitute a fixed one
type Clock func() time.Time

// TaskService holds the task lifecycle rules: unique names, open until
// completed, completed exactly once.
type TaskService interface {
	// AddTask records a new open task starting now.
	AddTask(ctx context.Context, name string) (*domain.Task, error)
	// CompleteTask sets the end time of an open task to now.
	CompleteTask(ctx context.Context, id int64) error
	// ListTasks returns open tasks, or all tasks when filter.All is set,
	// in insertion order.
	ListTasks(ctx context.Context, filter domain.ListFilter) ([]domain.Task, error)
}
