package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a row of (id, name, start_time, end_time)
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var startTime int64
	var endTime sql.NullInt64

	err := scanner.Scan(
		&task.ID,
		&task.Name,
		&startTime,
		&endTime,
	)
	if err != nil {
		return nil, err
	}

	task.StartTime = ParseTimeFromDB(startTime)
	task.EndTime = ParseNullTimeFromDB(endTime)

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
