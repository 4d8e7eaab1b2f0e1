package errors

// CommandError is returned by commands to request a specific process exit code.
type CommandError struct {
	ExitCode int
	Message  string
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError wrapping err.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode: code,
		Message:  err.Error(),
		Err:      err,
	}
}
