package shutil

import (
	"github.com/desertwitch/shutil/internal/process"
	"github.com/desertwitch/shutil/internal/schema"
)

// StatRecord is a snapshot of the metadata of a single path.
type StatRecord = schema.StatRecord

// ExecutionRequest describes a single program to launch.
type ExecutionRequest = schema.ExecutionRequest

// Process is a handle to a launched program.
type Process = process.Process

// ExecError describes a failed identity command, see [Shell.Whoami].
type ExecError = process.ExecError
