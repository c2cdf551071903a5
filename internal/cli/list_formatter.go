package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// TaskFormatter renders one task per line:
//
//	ID: 1, Name: write report, Start Time: 2024-01-15 10:00:00 UTC, End Time: In Progress
//
// Times are always shown in UTC. The in-progress marker is highlighted on
// terminals; on pipes and files the renderer emits plain text.
type TaskFormatter struct {
	layout          string
	inProgress      string
	inProgressStyle lipgloss.Style
}

// NewTaskFormatter creates a formatter whose styling matches the capabilities of out
func NewTaskFormatter(cfg *config.Config, out io.Writer) *TaskFormatter {
	renderer := lipgloss.NewRenderer(out)
	return &TaskFormatter{
		layout:          cfg.Time.DisplayFormat,
		inProgress:      cfg.Display.InProgressStatus,
		inProgressStyle: renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	}
}

// FormatTime renders t in UTC with the configured layout
func (f *TaskFormatter) FormatTime(t time.Time) string {
	return t.UTC().Format(f.layout)
}

// FormatEnd renders the end time, or the in-progress marker for open tasks
func (f *TaskFormatter) FormatEnd(task domain.Task) string {
	if task.IsOpen() {
		return f.inProgressStyle.Render(f.inProgress)
	}
	return f.FormatTime(*task.EndTime)
}

// FormatLine renders a full listing line for task
func (f *TaskFormatter) FormatLine(task domain.Task) string {
	return fmt.Sprintf("ID: %d, Name: %s, Start Time: %s, End Time: %s",
		task.ID, task.Name, f.FormatTime(task.StartTime), f.FormatEnd(task))
}
