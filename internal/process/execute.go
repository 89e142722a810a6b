package process

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/desertwitch/shutil/internal/schema"
)

// Process is a handle to a launched program. It is safe to drop it, the
// program is reaped regardless.
type Process struct {
	cmd  *exec.Cmd
	done chan struct{}
	err  error
}

// Pid returns the process identifier of the launched program, or -1 if it
// is not known.
func (p *Process) Pid() int {
	if p.cmd.Process == nil {
		return -1
	}

	return p.cmd.Process.Pid
}

// Done returns a channel that is closed once the program has exited.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the program has exited or the context is done. It
// returns the exit error of the program (nil on a zero exit code), or the
// error of the context.
func (p *Process) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.done:
		return p.err
	}
}

// Execute launches the program described by req and returns as soon as the
// operating system has started it. The program is executed by its exact
// path, with its arguments passed on verbatim and in order, and dir as its
// working directory.
func (h *Handler) Execute(req schema.ExecutionRequest, dir string) (*Process, error) {
	exists, err := h.pathHandler.Exists(req.Path)
	if err != nil {
		return nil, fmt.Errorf("(process-exec) %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("(process-exec) %w: %s", schema.ErrNotFound, req.Path)
	}

	cmd := exec.Command(req.Path, req.Args...)
	cmd.Dir = dir
	cmd.Stdin = h.stdin
	cmd.Stdout = h.stdout
	cmd.Stderr = h.stderr

	if err := h.cmdHandler.Start(cmd); err != nil {
		return nil, fmt.Errorf("(process-exec) %w: %s: %w", schema.ErrSpawnFailed, req.Path, err)
	}

	proc := &Process{
		cmd:  cmd,
		done: make(chan struct{}),
	}

	slog.Debug("Launched process",
		"path", req.Path,
		"args", req.Args,
		"pid", proc.Pid(),
	)

	go h.reap(proc)

	return proc, nil
}

func (h *Handler) reap(p *Process) {
	defer close(p.done)

	p.err = h.cmdHandler.Wait(p.cmd)

	slog.Debug("Reaped process",
		"path", p.cmd.Path,
		"pid", p.Pid(),
		"err", p.err,
	)
}
