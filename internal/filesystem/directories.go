package filesystem

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/shutil/internal/pathing"
)

// MakeDirectory creates exactly one directory level at path. An existing
// path (directory or file) results in [schema.ErrAlreadyExists], a missing
// parent in [schema.ErrInvalidParent].
func (f *Handler) MakeDirectory(path string) error {
	if err := f.unixHandler.Mkdir(path, f.dirMode); err != nil {
		return mkdirError(path, err)
	}

	slog.Debug("Created directory",
		"path", path,
		"mode", fmt.Sprintf("%#o", f.dirMode),
	)

	return nil
}

// RemoveDirectory removes the (empty) directory at path. A directory that
// still has entries results in [schema.ErrNotEmpty], it is never removed
// recursively.
func (f *Handler) RemoveDirectory(path string) error {
	if err := f.unixHandler.Rmdir(path); err != nil {
		return rmdirError(path, err)
	}

	slog.Debug("Removed directory",
		"path", path,
	)

	return nil
}

// ListDirectory returns the paths of all immediate children of a directory,
// files and subdirectories alike, in the order the filesystem returns them.
// The paths keep any ".." elements of path.
func (f *Handler) ListDirectory(path string) ([]string, error) {
	if err := f.pathHandler.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("(fs-ls) %w", err)
	}

	entries, err := f.osHandler.ReadDirEntries(path)
	if err != nil {
		return nil, readDirError(path, err)
	}

	listing := make([]string, 0, len(entries))
	for _, entry := range entries {
		listing = append(listing, pathing.Child(path, entry.Name()))
	}

	return listing, nil
}
