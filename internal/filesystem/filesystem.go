// Package filesystem implements the directory operations (make, remove, list)
// and the metadata inspector of the library. Every operation maps onto a
// single syscall where the platform offers one, so that no separate
// existence check can race with the mutation itself.
package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// DefaultDirMode is the mode new directories are created with (before the
// umask of the process is applied).
const DefaultDirMode = 0o777

type osProvider interface {
	ReadDirEntries(name string) ([]os.DirEntry, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Mkdir(path string, mode uint32) error
	Rmdir(path string) error
	Stat(path string, stat *unix.Stat_t) error
}

type pathProvider interface {
	EnsureDir(path string) error
}

// Handler is the principal implementation for the filesystem functions.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	pathHandler pathProvider
	dirMode     uint32
}

// NewHandler returns a pointer to a new filesystem [Handler]. A dirMode of
// zero selects [DefaultDirMode].
func NewHandler(osHandler osProvider, unixHandler unixProvider, pathHandler pathProvider, dirMode uint32) *Handler {
	if dirMode == 0 {
		dirMode = DefaultDirMode
	}

	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
		pathHandler: pathHandler,
		dirMode:     dirMode,
	}
}
