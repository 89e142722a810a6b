package schema

import "errors"

var (
	// ErrNotFound occurs when a path or an executable does not exist.
	ErrNotFound = errors.New("no such file or directory")

	// ErrNotADirectory occurs when a path exists, but a directory was
	// required for the operation.
	ErrNotADirectory = errors.New("not a directory")

	// ErrAlreadyExists occurs when a directory is to be created at a path
	// that is already taken by a directory or a file.
	ErrAlreadyExists = errors.New("path already exists")

	// ErrInvalidParent occurs when a directory is to be created, but its
	// parent directory does not exist (creation is never recursive).
	ErrInvalidParent = errors.New("parent directory does not exist")

	// ErrNotEmpty occurs when a directory is to be removed, but it still
	// contains entries (removal is never recursive).
	ErrNotEmpty = errors.New("directory not empty")

	// ErrAccessDenied occurs when the metadata of a path cannot be read due
	// to the permissions of the operating system.
	ErrAccessDenied = errors.New("access denied")

	// ErrPermissionDenied occurs when a directory cannot be read or mutated
	// due to the permissions of the operating system.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrSpawnFailed occurs when the operating system refused or was unable
	// to start a process. It is not recoverable and never retried.
	ErrSpawnFailed = errors.New("failed to spawn process")

	// ErrUnresolvable occurs when all search directories were exhausted
	// without finding a matching executable.
	ErrUnresolvable = errors.New("executable not found in search directories")

	// ErrInvalidWorkingDir occurs when the working directory was deleted or
	// replaced by something that is not a directory.
	ErrInvalidWorkingDir = errors.New("working directory is invalid")

	// ErrIdentityFailed occurs when the identity command ran, but exited
	// with a failure.
	ErrIdentityFailed = errors.New("identity command failed")
)
