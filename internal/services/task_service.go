package services

import (
	"context"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
	"task-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	now           Clock
}

// NewTaskService creates a new TaskService instance. A nil validator uses
// the default limits and a nil clock uses time.Now.
func NewTaskService(repo sqlite.Repository, taskValidator *validation.TaskValidator, clock Clock) TaskService {
	if taskValidator == nil {
		taskValidator = validation.NewTaskValidator()
	}
	if clock == nil {
		clock = time.Now
	}
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: taskValidator,
		now:           clock,
	}
}

// AddTask creates a new open task with the given name
func (t *taskServiceImpl) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	trimmedName, err := t.taskValidator.GetValidTaskName(name)
	if err != nil {
		message := "invalid task name"
		if ve, ok := err.(*validation.ValidationError); ok {
			message = ve.GetUserFriendlyMessage()
		}
		return nil, errors.NewValidationError(message, err)
	}

	task := domain.NewTask(trimmedName, t.now().UTC().Truncate(time.Second))
	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}
	logging.Debugf("created task %d (%s)\n", dbTask.ID, dbTask.Name)

	created := t.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// CompleteTask marks an open task as completed now
func (t *taskServiceImpl) CompleteTask(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("task id must be a positive integer", err)
	}

	if err := t.repo.CompleteTask(ctx, id, t.now().UTC()); err != nil {
		return err
	}
	logging.Debugf("completed task %d\n", id)
	return nil
}

// ListTasks returns tasks matching the filter in insertion order
func (t *taskServiceImpl) ListTasks(ctx context.Context, filter domain.ListFilter) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx, t.mapper.ListFilter.ToDatabase(filter))
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}
