// Package pathing implements the guard predicates used before any filesystem
// or process operation proceeds. Paths are never cached: every call asks the
// operating system again, so a path may change between a check and the
// operation following it.
package pathing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertwitch/shutil/internal/schema"
	"golang.org/x/sys/unix"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

// Handler is the principal implementation for the path resolving functions.
type Handler struct {
	osHandler osProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osHandler osProvider) *Handler {
	return &Handler{
		osHandler: osHandler,
	}
}

// Resolve resolves path against base. Absolute paths are returned as they
// are, relative paths are appended to base. Nothing is cleaned: ".." is left
// for the operating system, which applies it after following symlinks.
func Resolve(base string, path string) string {
	switch {
	case filepath.IsAbs(path):
		return path
	case path == "":
		return base
	case strings.HasSuffix(base, "/"):
		return base + path
	default:
		return base + "/" + path
	}
}

// ResolveLexical resolves path against base like [Resolve], but cleans the
// result, so ".." removes the preceding element as text. Only suitable where
// the lexical parent is wanted, such as changing the working directory.
func ResolveLexical(base string, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(base, path)
}

// Child returns the path of the entry name within dir. Repeated separators
// and "." elements are dropped, ".." elements are kept.
func Child(dir string, name string) string {
	return Tidy(Resolve(dir, name))
}

// Tidy drops repeated separators and "." elements from path. Unlike
// [filepath.Clean] it never removes ".." elements.
func Tidy(path string) string {
	parts := strings.Split(path, "/")

	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" || part == "." {
			continue
		}
		kept = append(kept, part)
	}

	out := strings.Join(kept, "/")
	if strings.HasPrefix(path, "/") {
		return "/" + out
	}
	if out == "" {
		return "."
	}

	return out
}

// Exists checks if a path exists. A missing path (or a path running through
// a non-directory) is not an error.
func (p *Handler) Exists(path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}

	if _, err := p.osHandler.Stat(path); err != nil {
		if isNotExist(err) {
			return false, nil
		}

		return false, classify("(pathing-exists)", path, err)
	}

	return true, nil
}

// IsDir checks if an existing path is a directory. A missing path is
// returned as [schema.ErrNotFound].
func (p *Handler) IsDir(path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}

	info, err := p.osHandler.Stat(path)
	if err != nil {
		return false, classify("(pathing-isdir)", path, err)
	}

	return info.IsDir(), nil
}

// EnsureDir returns [schema.ErrNotFound] if the path does not exist and
// [schema.ErrNotADirectory] if it exists, but is not a directory.
func (p *Handler) EnsureDir(path string) error {
	isDir, err := p.IsDir(path)
	if err != nil {
		return err
	}

	if !isDir {
		return fmt.Errorf("(pathing-ensuredir) %w: %s", schema.ErrNotADirectory, path)
	}

	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOTDIR)
}

func classify(op string, path string, err error) error {
	switch {
	case isNotExist(err):
		return fmt.Errorf("%s %w: %s", op, schema.ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s %w: %w", op, schema.ErrAccessDenied, err)
	default:
		return fmt.Errorf("%s failed to stat: %w", op, err)
	}
}
