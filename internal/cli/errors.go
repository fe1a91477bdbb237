package cli

import "fmt"

// ExitError carries a process exit code out of a command. Message, when set,
// is printed to stderr as is.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit status %d", e.Code)
}
