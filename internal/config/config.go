package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the todo application
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Time        TimeConfig        `toml:"time"`
	Validation  ValidationConfig  `toml:"validation"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path           string        `toml:"path" env:"TODO_DB"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TODO_DB_DIR_PERMISSIONS"`
	QueryTimeout   time.Duration `toml:"query_timeout" env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"write_timeout" env:"TODO_DB_WRITE_TIMEOUT"`
	BusyTimeout    time.Duration `toml:"busy_timeout" env:"TODO_DB_BUSY_TIMEOUT"`
}

// TimeConfig holds time formatting configuration. Times are always shown in UTC.
type TimeConfig struct {
	DisplayFormat string `toml:"display_format" env:"TODO_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMaxLength int `toml:"task_name_max_length" env:"TODO_VALIDATION_TASK_NAME_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	InProgressStatus string `toml:"in_progress_status" env:"TODO_DISPLAY_IN_PROGRESS_STATUS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TODO_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TODO_APP_VERBOSE"`
}

// DefaultDatabaseFilename is the database file created under ~/.todo
const DefaultDatabaseFilename = "todo.db"

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Path:           filepath.Join(homeDir, ".todo", DefaultDatabaseFilename),
			DirPermissions: 0755,
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			BusyTimeout:    5 * time.Second,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04:05 MST",
		},
		Validation: ValidationConfig{
			TaskNameMaxLength: 255,
		},
		Display: DisplayConfig{
			InProgressStatus: "In Progress",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return c.Database.Path
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are reported rather than silently ignored.
func (c *Config) LoadFromEnvironment() error {
	if path := os.Getenv("TODO_DB"); path != "" {
		c.Database.Path = path
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		p, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			return &ConfigError{Field: "TODO_DB_DIR_PERMISSIONS", Message: "must be an octal file mode"}
		}
		c.Database.DirPermissions = uint32(p)
	}
	if err := durationFromEnv("TODO_DB_QUERY_TIMEOUT", &c.Database.QueryTimeout); err != nil {
		return err
	}
	if err := durationFromEnv("TODO_DB_WRITE_TIMEOUT", &c.Database.WriteTimeout); err != nil {
		return err
	}
	if err := durationFromEnv("TODO_DB_BUSY_TIMEOUT", &c.Database.BusyTimeout); err != nil {
		return err
	}

	if format := os.Getenv("TODO_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	if maxLen := os.Getenv("TODO_VALIDATION_TASK_NAME_MAX"); maxLen != "" {
		n, err := strconv.Atoi(maxLen)
		if err != nil {
			return &ConfigError{Field: "TODO_VALIDATION_TASK_NAME_MAX", Message: "must be an integer"}
		}
		c.Validation.TaskNameMaxLength = n
	}

	if status := os.Getenv("TODO_DISPLAY_IN_PROGRESS_STATUS"); status != "" {
		c.Display.InProgressStatus = status
	}

	if err := durationFromEnv("TODO_APP_TIMEOUT", &c.Application.Timeout); err != nil {
		return err
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return &ConfigError{Field: "TODO_APP_VERBOSE", Message: "must be a boolean"}
		}
		c.Application.Verbose = b
	}

	return nil
}

func durationFromEnv(key string, dst *time.Duration) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return &ConfigError{Field: key, Message: "must be a duration such as 5s"}
	}
	*dst = d
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Database.BusyTimeout < 0 {
		return &ConfigError{Field: "database.busy_timeout", Message: "busy timeout cannot be negative"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Validation.TaskNameMaxLength < 1 {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length must be at least 1"}
	}

	if c.Display.InProgressStatus == "" {
		return &ConfigError{Field: "display.in_progress_status", Message: "in-progress status text cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
