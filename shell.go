package shutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/desertwitch/shutil/internal/filesystem"
	"github.com/desertwitch/shutil/internal/pathing"
	"github.com/desertwitch/shutil/internal/process"
	"github.com/desertwitch/shutil/internal/schema"
	"github.com/desertwitch/shutil/internal/search"
)

// Shell is an emulated shell session. It is safe for concurrent use: changes
// of the working directory are serialized, every other operation resolves
// its paths against a snapshot of the working directory taken at call time.
type Shell struct {
	mu  sync.RWMutex
	dir string

	pathHandler    *pathing.Handler
	fsHandler      *filesystem.Handler
	processHandler *process.Handler
	searchHandler  *search.Handler
}

type osProvider interface {
	Getwd() (string, error)
	ReadDirEntries(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

// New returns a pointer to a new [Shell]. Without [WithDir], the shell
// starts out in the working directory of the process.
func New(opts ...Option) (*Shell, error) {
	return newShell(&schema.OS{}, opts...)
}

func newShell(osHandler osProvider, opts ...Option) (*Shell, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	unixProvider := &schema.Unix{}
	execProvider := &schema.Exec{}

	dir := o.dir
	if !filepath.IsAbs(dir) {
		wd, err := osHandler.Getwd()
		if err != nil {
			return nil, fmt.Errorf("(shell-new) %w: %w", ErrInvalidWorkingDir, err)
		}
		dir = pathing.ResolveLexical(wd, o.dir)
	}
	dir = filepath.Clean(dir)

	pathHandler := pathing.NewHandler(osHandler)
	if err := pathHandler.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("(shell-new) %w", err)
	}

	processOpts := []process.Option{}
	if len(o.identityCommand) > 0 {
		processOpts = append(processOpts, process.WithIdentityCommand(o.identityCommand[0], o.identityCommand[1:]...))
	}
	if o.stdioSet {
		processOpts = append(processOpts, process.WithStdio(o.stdin, o.stdout, o.stderr))
	}

	return &Shell{
		dir:            dir,
		pathHandler:    pathHandler,
		fsHandler:      filesystem.NewHandler(osHandler, unixProvider, pathHandler, o.dirMode),
		processHandler: process.NewHandler(pathHandler, execProvider, processOpts...),
		searchHandler:  search.NewHandler(osHandler, o.searchDir, o.searchDirBin),
	}, nil
}

// resolve resolves path against the current working directory. The result
// is not cleaned, see [pathing.Resolve].
func (s *Shell) resolve(path string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return pathing.Resolve(s.dir, path)
}

// Cd changes the working directory. path must exist and be a directory. Cd
// is the only operation treating ".." lexically: it moves to the textual
// parent, even out of a directory entered through a symlink.
func (s *Shell) Cd(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := pathing.ResolveLexical(s.dir, path)

	if err := s.pathHandler.EnsureDir(target); err != nil {
		return fmt.Errorf("(shell-cd) %w", err)
	}

	slog.Debug("Changed working directory",
		"from", s.dir,
		"to", target,
	)

	s.dir = target

	return nil
}

// Cwd returns the absolute working directory. If it has since been removed or
// replaced by something that is not a directory, the result is
// [ErrInvalidWorkingDir].
func (s *Shell) Cwd() (string, error) {
	s.mu.RLock()
	dir := s.dir
	s.mu.RUnlock()

	if err := s.pathHandler.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("(shell-pwd) %w: %w", ErrInvalidWorkingDir, err)
	}

	return dir, nil
}

// Mkdir creates a single directory. It is never recursive.
func (s *Shell) Mkdir(path string) error {
	return s.fsHandler.MakeDirectory(s.resolve(path))
}

// Rmdir removes a single, empty directory. It is never recursive.
func (s *Shell) Rmdir(path string) error {
	return s.fsHandler.RemoveDirectory(s.resolve(path))
}

// Ls returns the absolute paths of the immediate children of a directory, in
// the order the filesystem returns them.
func (s *Shell) Ls(path string) ([]string, error) {
	return s.fsHandler.ListDirectory(s.resolve(path))
}

// Stat returns the metadata of path, following symlinks.
func (s *Shell) Stat(path string) (StatRecord, error) {
	return s.fsHandler.Stat(s.resolve(path))
}

// Lstat returns the metadata of path, not following a final symlink.
func (s *Shell) Lstat(path string) (StatRecord, error) {
	return s.fsHandler.Lstat(s.resolve(path))
}

// Execute launches the program at path with args, in the working directory
// of the shell, and returns once it has started. The exact path is executed,
// there is no lookup by name; use [Shell.Which] for that.
func (s *Shell) Execute(path string, args []string) (*Process, error) {
	s.mu.RLock()
	dir := s.dir
	s.mu.RUnlock()

	return s.processHandler.Execute(ExecutionRequest{
		Path: pathing.Resolve(dir, path),
		Args: args,
	}, dir)
}

// Which returns the full path of the executable name found in /usr/bin (and
// /bin if indexBin is set), or an error matching [ErrUnresolvable].
func (s *Shell) Which(name string, indexBin bool) (string, error) {
	return s.searchHandler.Which(name, indexBin)
}

// Whoami returns the identity of the current user as reported by the
// identity command, without the trailing line break.
func (s *Shell) Whoami(ctx context.Context) (string, error) {
	return s.processHandler.Whoami(ctx)
}
