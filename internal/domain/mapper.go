package domain

import (
	"task-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:        domainTask.ID,
		Name:      domainTask.Name,
		StartTime: domainTask.StartTime,
		EndTime:   domainTask.EndTime,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:        dbTask.ID,
		Name:      dbTask.Name,
		StartTime: dbTask.StartTime,
		EndTime:   dbTask.EndTime,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}

// ListFilterMapper converts listing filters to repository options.
type ListFilterMapper struct{}

// ToDatabase converts a domain ListFilter to database ListOptions.
func (m *ListFilterMapper) ToDatabase(filter ListFilter) sqlite.ListOptions {
	return sqlite.ListOptions{IncludeCompleted: filter.All}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task       *TaskMapper
	ListFilter *ListFilterMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:       NewTaskMapper(),
		ListFilter: &ListFilterMapper{},
	}
}
