package filesystem

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/desertwitch/shutil/internal/schema"
	"golang.org/x/sys/unix"
)

// handleSize converts a int64 size to a uint64 size (with sizes < 0
// becoming 0).
func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}

func isPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

func mkdirError(path string, err error) error {
	switch {
	case errors.Is(err, unix.EEXIST):
		return fmt.Errorf("(fs-mkdir) %w: %s", schema.ErrAlreadyExists, path)
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENOTDIR):
		return fmt.Errorf("(fs-mkdir) %w: %s", schema.ErrInvalidParent, path)
	case isPermission(err):
		return fmt.Errorf("(fs-mkdir) %w: %s: %w", schema.ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("(fs-mkdir) failed to mkdir %s: %w", path, err)
	}
}

func rmdirError(path string, err error) error {
	switch {
	case errors.Is(err, unix.ENOENT):
		return fmt.Errorf("(fs-rmdir) %w: %s", schema.ErrNotFound, path)
	case errors.Is(err, unix.ENOTEMPTY), errors.Is(err, unix.EEXIST):
		return fmt.Errorf("(fs-rmdir) %w: %s", schema.ErrNotEmpty, path)
	case errors.Is(err, unix.ENOTDIR):
		return fmt.Errorf("(fs-rmdir) %w: %s", schema.ErrNotADirectory, path)
	case isPermission(err):
		return fmt.Errorf("(fs-rmdir) %w: %s: %w", schema.ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("(fs-rmdir) failed to rmdir %s: %w", path, err)
	}
}

func readDirError(path string, err error) error {
	switch {
	case errors.Is(err, unix.ENOENT):
		return fmt.Errorf("(fs-ls) %w: %s", schema.ErrNotFound, path)
	case errors.Is(err, unix.ENOTDIR):
		return fmt.Errorf("(fs-ls) %w: %s", schema.ErrNotADirectory, path)
	case isPermission(err):
		return fmt.Errorf("(fs-ls) %w: %s: %w", schema.ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("(fs-ls) failed to readdir %s: %w", path, err)
	}
}

func statError(op string, path string, err error) error {
	switch {
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENOTDIR):
		return fmt.Errorf("%s %w: %s", op, schema.ErrNotFound, path)
	case isPermission(err):
		return fmt.Errorf("%s %w: %s: %w", op, schema.ErrAccessDenied, path, err)
	default:
		return fmt.Errorf("%s failed to stat %s: %w", op, path, err)
	}
}
