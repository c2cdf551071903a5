package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Repository defines the interface for task storage
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context, opts ListOptions) ([]*Task, error)
	CompleteTask(ctx context.Context, id int64, endTime time.Time) error
	Close() error
}

// Options tunes per-statement timeouts and lock waiting
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
	BusyTimeout  time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance with no statement timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens (creating if absent) the database at dbPath and
// brings its schema up to date. Existing rows are never touched.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// One connection: an in-memory database lives and dies with its
	// connection, and the CLI never issues concurrent statements.
	db.SetMaxOpenConns(1)

	if opts.BusyTimeout > 0 {
		pragma := fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds())
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, errors.NewDatabaseError("open database", err)
		}
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}
	logging.Debugln("schema ready at", dbPath)

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts an open task and fills in its ID.
// A duplicate name yields a conflict error and no row.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO tasks (name, start_time, end_time)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Name, FormatTimeForDB(task.StartTime), FormatTimePtrForDB(task.EndTime))
	if err != nil {
		if IsUniqueViolation(err) {
			return errors.NewAlreadyExistsError("task", task.Name, err)
		}
		if errors.IsAppError(err) {
			return err
		}
		return HandleDatabaseError("insert task", err)
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT id, name, start_time, end_time
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks returns tasks in insertion order, open ones only unless
// opts.IncludeCompleted is set
func (r *SQLiteRepository) ListTasks(ctx context.Context, opts ListOptions) ([]*Task, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT id, name, start_time, end_time
	FROM tasks`
	if !opts.IncludeCompleted {
		query += `
	WHERE end_time IS NULL`
	}
	query += `
	ORDER BY id ASC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// CompleteTask sets end_time on an open task. A missing id yields a not
// found error; a task that already has an end_time is left unchanged and
// yields a conflict error.
func (r *SQLiteRepository) CompleteTask(ctx context.Context, id int64, endTime time.Time) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	UPDATE tasks
	SET end_time = ?
	WHERE id = ? AND end_time IS NULL`

	rows, err := ExecuteWithRowsAffected(ctx, r.db, query, FormatTimeForDB(endTime), id)
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	// Nothing changed: either the id is unknown or the task is done already.
	if _, err := r.GetTask(ctx, id); err != nil {
		return err
	}
	return errors.NewAlreadyCompletedError("task", fmt.Sprintf("%d", id))
}
