package process

import "fmt"

// ExecError is the error of a command that could be started, but exited
// with a failure. [Handler.Whoami] returns it wrapped in
// [schema.ErrIdentityFailed], so that the exit code and the captured streams
// can be inspected with [errors.As].
type ExecError struct {
	Command  []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("(process) %v exited with exit code %d", e.Command, e.ExitCode)
	}

	return fmt.Sprintf("(process) %v exited with exit code %d: %v", e.Command, e.ExitCode, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
