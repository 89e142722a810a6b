package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/desertwitch/shutil/internal/schema"
)

// Whoami runs the identity command and returns its standard output without
// the trailing line break. A command that cannot be started results in
// [schema.ErrSpawnFailed], a command exiting with a failure in
// [schema.ErrIdentityFailed] (wrapping an [ExecError]).
func (h *Handler) Whoami(ctx context.Context) (string, error) {
	var stdout, stderr bytes.Buffer

	//nolint:gosec
	cmd := exec.CommandContext(ctx, h.identityCommand[0], h.identityCommand[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := h.cmdHandler.Run(cmd); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("(process-whoami) %w: %w", schema.ErrIdentityFailed, &ExecError{
				Command:  h.identityCommand,
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
				Err:      err,
			})
		}

		return "", fmt.Errorf("(process-whoami) %w: %w", schema.ErrSpawnFailed, err)
	}

	return strings.TrimRight(stdout.String(), "\r\n"), nil
}
