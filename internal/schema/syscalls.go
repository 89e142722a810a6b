package schema

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Getwd wraps around [os.Getwd].
func (*OS) Getwd() (string, error) {
	return os.Getwd()
}

// ReadDirEntries reads all entries of a directory in the order the
// filesystem returns them. Unlike [os.ReadDir] the entries are not sorted.
func (*OS) ReadDirEntries(name string) ([]os.DirEntry, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Stat wraps around [unix.Stat].
func (*Unix) Stat(path string, stat *unix.Stat_t) error {
	return unix.Stat(path, stat)
}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// Mkdir wraps around [unix.Mkdir].
func (*Unix) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}

// Rmdir wraps around [unix.Rmdir].
func (*Unix) Rmdir(path string) error {
	return unix.Rmdir(path)
}

// Exec is an implementation wrapping the process functions of [exec.Cmd].
type Exec struct{}

// Start wraps around [exec.Cmd.Start].
func (*Exec) Start(cmd *exec.Cmd) error {
	return cmd.Start()
}

// Wait wraps around [exec.Cmd.Wait].
func (*Exec) Wait(cmd *exec.Cmd) error {
	return cmd.Wait()
}

// Run wraps around [exec.Cmd.Run].
func (*Exec) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}
