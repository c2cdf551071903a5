package cli

import (
	"context"
	"fmt"
	"io"

	"task-tracker/internal/domain"
	"task-tracker/internal/services"
)

// Executor runs one parsed Command against the task service and prints
// a human-readable result.
type Executor struct {
	service      services.TaskService
	out          io.Writer
	formatter    *TaskFormatter
	errorHandler *ErrorHandler
}

// NewExecutor creates an executor writing results to out
func NewExecutor(service services.TaskService, out io.Writer, formatter *TaskFormatter) *Executor {
	return &Executor{
		service:      service,
		out:          out,
		formatter:    formatter,
		errorHandler: NewErrorHandler(),
	}
}

// Execute dispatches exactly one command
func (e *Executor) Execute(ctx context.Context, command Command) error {
	switch c := command.(type) {
	case Add:
		return e.add(ctx, c)
	case Complete:
		return e.complete(ctx, c)
	case List:
		return e.list(ctx, c)
	default:
		return fmt.Errorf("unsupported command %T", command)
	}
}

func (e *Executor) add(ctx context.Context, c Add) error {
	task, err := e.service.AddTask(ctx, c.Task)
	if err != nil {
		return e.errorHandler.Handle("add task", err)
	}
	fmt.Fprintf(e.out, "Added task: %s\n", task.Name)
	return nil
}

func (e *Executor) complete(ctx context.Context, c Complete) error {
	if err := e.service.CompleteTask(ctx, c.TaskID); err != nil {
		return e.errorHandler.Handle("complete task", err)
	}
	fmt.Fprintf(e.out, "Completed task with ID: %d\n", c.TaskID)
	return nil
}

func (e *Executor) list(ctx context.Context, c List) error {
	tasks, err := e.service.ListTasks(ctx, domain.ListFilter{All: c.All})
	if err != nil {
		return e.errorHandler.Handle("list tasks", err)
	}
	for _, task := range tasks {
		fmt.Fprintln(e.out, e.formatter.FormatLine(task))
	}
	return nil
}
