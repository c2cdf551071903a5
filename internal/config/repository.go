package config

import (
	"fmt"
	"os"
	"path/filepath"

	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite"
)

// CreateRepository opens the task store described by the configuration,
// creating the database directory when it does not exist yet.
func CreateRepository(config *Config) (*sqlite.SQLiteRepository, error) {
	dbPath := config.GetDatabasePath()

	if dbPath != sqlite.MemoryPath {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, os.FileMode(config.Database.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	logging.Debugf("opening database %s\n", dbPath)
	repo, err := sqlite.NewWithOptions(dbPath, sqlite.Options{
		QueryTimeout: config.Database.QueryTimeout,
		WriteTimeout: config.Database.WriteTimeout,
		BusyTimeout:  config.Database.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (*sqlite.SQLiteRepository, error) {
	repo, err := sqlite.New(sqlite.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
