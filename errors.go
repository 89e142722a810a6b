package shutil

import "github.com/desertwitch/shutil/internal/schema"

//nolint:gochecknoglobals
var (
	ErrNotFound          = schema.ErrNotFound
	ErrNotADirectory     = schema.ErrNotADirectory
	ErrAlreadyExists     = schema.ErrAlreadyExists
	ErrInvalidParent     = schema.ErrInvalidParent
	ErrNotEmpty          = schema.ErrNotEmpty
	ErrAccessDenied      = schema.ErrAccessDenied
	ErrPermissionDenied  = schema.ErrPermissionDenied
	ErrSpawnFailed       = schema.ErrSpawnFailed
	ErrUnresolvable      = schema.ErrUnresolvable
	ErrInvalidWorkingDir = schema.ErrInvalidWorkingDir
	ErrIdentityFailed    = schema.ErrIdentityFailed
)
