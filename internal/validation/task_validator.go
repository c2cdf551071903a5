package validation

import (
	"strings"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithLimits creates a task validator with a configured name limit
func NewTaskValidatorWithLimits(taskNameMaxLength int) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithLimits(taskNameMaxLength),
	}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()
	trimmedName := strings.TrimSpace(name)

	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task name")
		return validationError
	}

	if !tv.validator.IsValidTaskNameLength(trimmedName) {
		validationError.AddMaxLengthError("task name", trimmedName, tv.validator.TaskNameMaxLength())
	}

	if !tv.validator.HasNoControlCharacters(trimmedName) {
		validationError.AddInvalidCharacterError("task name", trimmedName)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns the trimmed task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
