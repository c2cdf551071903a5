package cli

import (
	"bytes"
	"testing"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTaskFormatter_FormatLine(t *testing.T) {
	cfg := config.NewConfig()
	formatter := NewTaskFormatter(cfg, &bytes.Buffer{})

	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 15, 11, 30, 0, 0, time.UTC)

	open := domain.Task{ID: 1, Name: "write report", StartTime: start}
	assert.Equal(t,
		"ID: 1, Name: write report, Start Time: 2024-01-15 10:00:00 UTC, End Time: In Progress",
		formatter.FormatLine(open))

	done := domain.Task{ID: 2, Name: "review", StartTime: start, EndTime: &end}
	assert.Equal(t,
		"ID: 2, Name: review, Start Time: 2024-01-15 10:00:00 UTC, End Time: 2024-01-15 11:30:00 UTC",
		formatter.FormatLine(done))
}

func TestTaskFormatter_RendersInUTC(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Time.DisplayFormat = time.RFC3339
	formatter := NewTaskFormatter(cfg, &bytes.Buffer{})

	zone := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2024, 1, 15, 12, 0, 0, 0, zone)
	assert.Equal(t, "2024-01-15T10:00:00Z", formatter.FormatTime(local))
}

func TestTaskFormatter_CustomStatus(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Display.InProgressStatus = "open"
	formatter := NewTaskFormatter(cfg, &bytes.Buffer{})

	task := domain.Task{ID: 1, Name: "x", StartTime: time.Unix(0, 0)}
	assert.Equal(t, "open", formatter.FormatEnd(task))
}
