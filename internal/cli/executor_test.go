package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubService records calls and returns canned results
type stubService struct {
	tasks     []domain.Task
	err       error
	added     []string
	completed []int64
	filters   []domain.ListFilter
}

func (s *stubService) AddTask(ctx context.Context, name string) (*domain.Task, error) {
	s.added = append(s.added, name)
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Task{ID: 1, Name: name, StartTime: time.Unix(0, 0).UTC()}, nil
}

func (s *stubService) CompleteTask(ctx context.Context, id int64) error {
	s.completed = append(s.completed, id)
	return s.err
}

func (s *stubService) ListTasks(ctx context.Context, filter domain.ListFilter) ([]domain.Task, error) {
	s.filters = append(s.filters, filter)
	return s.tasks, s.err
}

func newTestExecutor(service *stubService) (*Executor, *bytes.Buffer) {
	var out bytes.Buffer
	return NewExecutor(service, &out, NewTaskFormatter(config.NewConfig(), &out)), &out
}

func TestExecutor_Add(t *testing.T) {
	service := &stubService{}
	executor, out := newTestExecutor(service)

	require.NoError(t, executor.Execute(context.Background(), Add{Task: "write report"}))
	assert.Equal(t, []string{"write report"}, service.added)
	assert.Equal(t, "Added task: write report\n", out.String())
}

func TestExecutor_Complete(t *testing.T) {
	service := &stubService{}
	executor, out := newTestExecutor(service)

	require.NoError(t, executor.Execute(context.Background(), Complete{TaskID: 7}))
	assert.Equal(t, []int64{7}, service.completed)
	assert.Equal(t, "Completed task with ID: 7\n", out.String())
}

func TestExecutor_List(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	service := &stubService{tasks: []domain.Task{
		{ID: 1, Name: "a", StartTime: start, EndTime: &end},
		{ID: 2, Name: "b", StartTime: start},
	}}
	executor, out := newTestExecutor(service)

	require.NoError(t, executor.Execute(context.Background(), List{All: true}))
	assert.Equal(t, []domain.ListFilter{{All: true}}, service.filters)
	assert.Equal(t,
		"ID: 1, Name: a, Start Time: 2024-01-15 10:00:00 UTC, End Time: 2024-01-15 11:00:00 UTC\n"+
			"ID: 2, Name: b, Start Time: 2024-01-15 10:00:00 UTC, End Time: In Progress\n",
		out.String())
}

func TestExecutor_ListEmpty(t *testing.T) {
	executor, out := newTestExecutor(&stubService{})

	require.NoError(t, executor.Execute(context.Background(), List{}))
	assert.Empty(t, out.String())
}

func TestExecutor_Errors(t *testing.T) {
	tests := []struct {
		name     string
		command  Command
		err      error
		expected string
	}{
		{"add conflict", Add{Task: "X"}, errors.NewAlreadyExistsError("task", "X", nil), "failed to add task: task already exists: X"},
		{"complete missing", Complete{TaskID: 9}, errors.NewNotFoundError("task", "9"), "failed to complete task: task not found: 9"},
		{"list database", List{}, errors.NewDatabaseError("query task", nil), "failed to list tasks: database operation failed: query task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor, out := newTestExecutor(&stubService{err: tt.err})

			err := executor.Execute(context.Background(), tt.command)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))
			assert.Empty(t, out.String())
		})
	}
}
