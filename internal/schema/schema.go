// Package schema provides the principal schematics for all other packages. It
// defines the records handed out to callers, the error taxonomy shared by all
// operations and the implementations wrapping the (Unix-based) operating
// system syscalls. The package serves as the foundational layer for all
// filesystem and process interactions throughout the codebase.
package schema
