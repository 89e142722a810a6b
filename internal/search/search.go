// Package search implements the executable lookup over a fixed, ordered set
// of search directories (not the PATH environment variable).
package search

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/shutil/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	// DefaultSearchDir is the directory that is always searched.
	DefaultSearchDir = "/usr/bin"

	// DefaultBinDir is the directory that is searched second, if requested.
	DefaultBinDir = "/bin"
)

type osProvider interface {
	ReadDirEntries(name string) ([]os.DirEntry, error)
}

// Handler is the principal implementation for the search functions.
type Handler struct {
	osHandler osProvider
	primary   string
	secondary string
}

// NewHandler returns a pointer to a new search [Handler]. Empty directories
// select [DefaultSearchDir] and [DefaultBinDir] respectively.
func NewHandler(osHandler osProvider, primary string, secondary string) *Handler {
	if primary == "" {
		primary = DefaultSearchDir
	}
	if secondary == "" {
		secondary = DefaultBinDir
	}

	return &Handler{
		osHandler: osHandler,
		primary:   primary,
		secondary: secondary,
	}
}

// SearchDirs returns the directories searched by [Handler.Which], in order.
func (h *Handler) SearchDirs(indexBin bool) []string {
	if indexBin {
		return []string{h.primary, h.secondary}
	}

	return []string{h.primary}
}

// Which returns the full path of the first entry named name in the search
// directories. Entries are examined in directory order and directories are
// never a match. An exhausted search returns an error matching both
// [schema.ErrUnresolvable] and [schema.ErrNotFound].
func (h *Handler) Which(name string, indexBin bool) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("(search-which) %w: %w: %q", schema.ErrUnresolvable, schema.ErrNotFound, name)
	}

	for _, dir := range h.SearchDirs(indexBin) {
		entries, err := h.osHandler.ReadDirEntries(dir)
		if err != nil {
			if errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ENOTDIR) {
				slog.Debug("Skipped unavailable search directory",
					"dir", dir,
					"err", err,
				)

				continue
			}
			if errors.Is(err, os.ErrPermission) {
				return "", fmt.Errorf("(search-which) %w: %s: %w", schema.ErrPermissionDenied, dir, err)
			}

			return "", fmt.Errorf("(search-which) failed to readdir %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if entry.Name() == name {
				return filepath.Join(dir, name), nil
			}
		}
	}

	return "", fmt.Errorf("(search-which) %w: %w: %s", schema.ErrUnresolvable, schema.ErrNotFound, name)
}
