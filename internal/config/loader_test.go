package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and blanks every TODO_* variable
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"TODO_DB", "TODO_CONFIG", "TODO_DB_DIR_PERMISSIONS", "TODO_DB_QUERY_TIMEOUT",
		"TODO_DB_WRITE_TIMEOUT", "TODO_DB_BUSY_TIMEOUT", "TODO_TIME_DISPLAY_FORMAT",
		"TODO_VALIDATION_TASK_NAME_MAX", "TODO_DISPLAY_IN_PROGRESS_STATUS",
		"TODO_APP_TIMEOUT", "TODO_APP_VERBOSE",
	} {
		t.Setenv(key, "")
	}
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_DefaultsWithoutFiles(t *testing.T) {
	home := isolate(t)

	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".todo", "todo.db"), cfg.Database.Path)
}

func TestLoader_DefaultConfigFile(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "todo", "config.toml"), `
[database]
path = "/var/lib/todo.db"
query_timeout = "2s"

[display]
in_progress_status = "open"
`)

	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/todo.db", cfg.Database.Path)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "open", cfg.Display.InProgressStatus)
	// keys absent from the file keep their defaults
	assert.Equal(t, 5*time.Second, cfg.Database.WriteTimeout)
	assert.Equal(t, "2006-01-02 15:04:05 MST", cfg.Time.DisplayFormat)
}

func TestLoader_ConfigFileFromEnvironment(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[validation]\ntask_name_max_length = 12\n")
	t.Setenv("TODO_CONFIG", path)

	path2, err := DefaultConfigFile()
	require.NoError(t, err)
	assert.Equal(t, path, path2)

	cfg, err := NewLoader().WithEnvFile("").Load()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Validation.TaskNameMaxLength)
}

func TestLoader_ExplicitConfigFileMustExist(t *testing.T) {
	isolate(t)

	_, err := NewLoader().WithEnvFile("").WithConfigFile(filepath.Join(t.TempDir(), "nope.toml")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoader_RejectsUnknownKeys(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "todo.toml")
	writeFile(t, path, "[database]\npth = \"typo.db\"\n")

	_, err := NewLoader().WithEnvFile("").WithConfigFile(path).Load()
	require.Error(t, err)
	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, configErr.Message, "database.pth")
}

func TestLoader_RejectsMalformedToml(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "todo.toml")
	writeFile(t, path, "[database\n")

	_, err := NewLoader().WithEnvFile("").WithConfigFile(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoader_EnvironmentBeatsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "todo.toml")
	writeFile(t, path, "[database]\npath = \"/from/file.db\"\n")
	t.Setenv("TODO_DB", "/from/env.db")

	cfg, err := NewLoader().WithEnvFile("").WithConfigFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Database.Path)
}

func TestLoader_EnvFile(t *testing.T) {
	isolate(t)
	os.Unsetenv("TODO_DB")
	os.Unsetenv("TODO_DISPLAY_IN_PROGRESS_STATUS")
	t.Setenv("TODO_APP_TIMEOUT", "45s")

	envFile := filepath.Join(t.TempDir(), "test.env")
	writeFile(t, envFile, "TODO_DB=/from/dotenv.db\nTODO_APP_TIMEOUT=1s\nTODO_DISPLAY_IN_PROGRESS_STATUS=busy\n")
	t.Cleanup(func() {
		os.Unsetenv("TODO_DB")
		os.Unsetenv("TODO_DISPLAY_IN_PROGRESS_STATUS")
	})

	cfg, err := NewLoader().WithEnvFile(envFile).Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv.db", cfg.Database.Path)
	assert.Equal(t, "busy", cfg.Display.InProgressStatus)
	// variables already in the environment are not overridden
	assert.Equal(t, 45*time.Second, cfg.Application.Timeout)
}

func TestLoader_MissingEnvFileIgnored(t *testing.T) {
	isolate(t)

	_, err := NewLoader().WithEnvFile(filepath.Join(t.TempDir(), ".env")).Load()
	assert.NoError(t, err)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_DB", "/from/env.db")

	dbPath := "/from/flag.db"
	format := "15:04"
	verbose := true
	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		DBPath:     &dbPath,
		TimeFormat: &format,
		Verbose:    &verbose,
	})
	require.NoError(t, err)
	assert.Equal(t, dbPath, cfg.Database.Path)
	assert.Equal(t, format, cfg.Time.DisplayFormat)
	assert.True(t, cfg.Application.Verbose)

	empty := ""
	_, err = NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{TimeFormat: &empty})
	require.Error(t, err)
}
