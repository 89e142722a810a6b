package filesystem

import (
	"os"

	"github.com/stretchr/testify/mock"
	"golang.org/x/sys/unix"
)

type mockOsProvider struct {
	mock.Mock
}

func (m *mockOsProvider) ReadDirEntries(name string) ([]os.DirEntry, error) {
	args := m.Called(name)
	entries, _ := args.Get(0).([]os.DirEntry)

	return entries, args.Error(1)
}

type mockUnixProvider struct {
	mock.Mock
}

func (m *mockUnixProvider) Lstat(path string, stat *unix.Stat_t) error {
	return m.Called(path, stat).Error(0)
}

func (m *mockUnixProvider) Mkdir(path string, mode uint32) error {
	return m.Called(path, mode).Error(0)
}

func (m *mockUnixProvider) Rmdir(path string) error {
	return m.Called(path).Error(0)
}

func (m *mockUnixProvider) Stat(path string, stat *unix.Stat_t) error {
	return m.Called(path, stat).Error(0)
}

type mockPathProvider struct {
	mock.Mock
}

func (m *mockPathProvider) EnsureDir(path string) error {
	return m.Called(path).Error(0)
}
