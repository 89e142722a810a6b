package shutil

import (
	"io"
)

type options struct {
	dir             string
	searchDir       string
	searchDirBin    string
	identityCommand []string
	dirMode         uint32
	stdioSet        bool
	stdin           io.Reader
	stdout          io.Writer
	stderr          io.Writer
}

// Option is a function that configures a [Shell].
type Option func(*options)

// WithDir sets the initial working directory of the [Shell]. A relative dir
// is resolved against the working directory of the process. It must exist
// and be a directory.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithSearchDirs replaces the directories searched by [Shell.Which]. An
// empty string keeps the respective default (/usr/bin and /bin).
func WithSearchDirs(primary string, secondary string) Option {
	return func(o *options) {
		o.searchDir = primary
		o.searchDirBin = secondary
	}
}

// WithIdentityCommand replaces the command run by [Shell.Whoami].
func WithIdentityCommand(command ...string) Option {
	return func(o *options) {
		o.identityCommand = command
	}
}

// WithDirMode sets the mode new directories are created with, before the
// umask is applied. Zero keeps the default of 0o777.
func WithDirMode(mode uint32) Option {
	return func(o *options) {
		o.dirMode = mode
	}
}

// WithStdio sets the standard streams of launched programs, which otherwise
// inherit those of the current process. A nil stream is connected to the
// null device.
func WithStdio(stdin io.Reader, stdout io.Writer, stderr io.Writer) Option {
	return func(o *options) {
		o.stdioSet = true
		o.stdin = stdin
		o.stdout = stdout
		o.stderr = stderr
	}
}
