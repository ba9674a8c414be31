package commander

import "fmt"

// CommanderError is used to create errors originating from the commander package.
type CommanderError string

// Error returns the string message of the error.
func (e CommanderError) Error() string {
	return string(e)
}

const (
	// EmptyInputError will be returned when tokenizing an empty or whitespace only line.
	EmptyInputError = CommanderError("commander: empty input")
	// InvalidNameError is the panic value when registering a handler under an empty name.
	InvalidNameError = CommanderError("commander: command name must not be empty")
	// InvalidHandlerError is the panic value when registering a nil handler.
	InvalidHandlerError = CommanderError("commander: handler must not be nil")
	// InvalidDelimiterError will be returned when a configured delimiter is not exactly one character.
	InvalidDelimiterError = CommanderError("commander: delimiter must be a single character")
)

// UnknownCommandError will be returned when no handler is registered under Name.
type UnknownCommandError struct {
	Name string
}

// Error returns the string message of the error.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("commander: unknown command %q", e.Name)
}

// LoopIsRunningError will be returned when Run is called on a Loop that is already running.
const LoopIsRunningError = CommanderError("commander: the loop is already running")
