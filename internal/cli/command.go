package cli

// Command is one parsed invocation: exactly one of Add, Complete or List.
// The unexported marker keeps the set closed so Execute's switch is exhaustive.
type Command interface {
	commandName() string
}

// Add records a new open task.
type Add struct {
	Task string
}

// Complete sets the end time of an open task.
type Complete struct {
	TaskID int64
}

// List prints open tasks, or every task when All is set.
type List struct {
	All bool
}

func (Add) commandName() string      { return "add" }
func (Complete) commandName() string { return "complete" }
func (List) commandName() string     { return "list" }
