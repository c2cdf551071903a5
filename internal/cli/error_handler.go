package cli

import (
	goerrors "errors"

	"task-tracker/internal/errors"
)

// OperationError prefixes a failure with the operation that was attempted
// while keeping the underlying error reachable for exit code mapping.
type OperationError struct {
	Operation string
	Err       error
}

func (e *OperationError) Error() string {
	return "failed to " + e.Operation + ": " + errors.GetUserMessage(e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle wraps err with the name of the failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Operation: operation, Err: err}
}

// UserMessage renders err as the single diagnostic line shown after "Error: "
func UserMessage(err error) string {
	var opErr *OperationError
	if goerrors.As(err, &opErr) {
		return opErr.Error()
	}
	return errors.GetUserMessage(err)
}
