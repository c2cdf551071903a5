package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTaskNameMaxLength applies when no limit is configured
const DefaultTaskNameMaxLength = 255

// Validator provides common validation utilities
type Validator struct {
	taskNameMaxLength int
}

// NewValidator creates a validator with default limits
func NewValidator() *Validator {
	return NewValidatorWithLimits(DefaultTaskNameMaxLength)
}

// NewValidatorWithLimits creates a validator with a task name length limit.
// Non-positive limits fall back to the default.
func NewValidatorWithLimits(taskNameMaxLength int) *Validator {
	if taskNameMaxLength <= 0 {
		taskNameMaxLength = DefaultTaskNameMaxLength
	}
	return &Validator{taskNameMaxLength: taskNameMaxLength}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskNameLength checks the rune count of a trimmed name against the limit
func (v *Validator) IsValidTaskNameLength(name string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(name)) <= v.taskNameMaxLength
}

// HasNoControlCharacters rejects newlines, tabs and other control runes,
// which would break the one-line-per-task listing.
func (v *Validator) HasNoControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) == -1
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TaskNameMaxLength returns the configured limit
func (v *Validator) TaskNameMaxLength() int {
	return v.taskNameMaxLength
}
