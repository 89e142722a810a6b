// Package process implements the process launcher and the identity query.
//
// The launcher spawns a program by its exact, already resolved path and
// returns as soon as the operating system has started it. The child is reaped
// in the background, the returned [Process] can be used to await it, but
// callers are free to ignore it (fire-and-forget).
//
// The identity query runs the platform's identity command (whoami, or
// hostname on Windows) and returns its trimmed standard output.
package process

import (
	"io"
	"os"
	"os/exec"
	"runtime"
)

type pathProvider interface {
	Exists(path string) (bool, error)
}

type cmdProvider interface {
	Run(cmd *exec.Cmd) error
	Start(cmd *exec.Cmd) error
	Wait(cmd *exec.Cmd) error
}

// Handler is the principal implementation for the process functions.
type Handler struct {
	pathHandler     pathProvider
	cmdHandler      cmdProvider
	identityCommand []string
	stdin           io.Reader
	stdout          io.Writer
	stderr          io.Writer
}

// Option is a function that configures a [Handler].
type Option func(*Handler)

// WithIdentityCommand overrides the command run by [Handler.Whoami]. An empty
// command is ignored.
func WithIdentityCommand(name string, args ...string) Option {
	return func(h *Handler) {
		if name == "" {
			return
		}
		h.identityCommand = append([]string{name}, args...)
	}
}

// WithStdio sets the standard streams passed on to launched programs. A nil
// stream is connected to the null device.
func WithStdio(stdin io.Reader, stdout io.Writer, stderr io.Writer) Option {
	return func(h *Handler) {
		h.stdin = stdin
		h.stdout = stdout
		h.stderr = stderr
	}
}

// NewHandler returns a pointer to a new process [Handler]. Launched programs
// inherit the standard streams of the current process unless configured
// otherwise.
func NewHandler(pathHandler pathProvider, cmdHandler cmdProvider, opts ...Option) *Handler {
	h := &Handler{
		pathHandler:     pathHandler,
		cmdHandler:      cmdHandler,
		identityCommand: DefaultIdentityCommand(),
		stdin:           os.Stdin,
		stdout:          os.Stdout,
		stderr:          os.Stderr,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// DefaultIdentityCommand returns the identity command of the platform.
func DefaultIdentityCommand() []string {
	if runtime.GOOS == "windows" {
		return []string{"hostname"}
	}

	return []string{"whoami"}
}
