package pathing

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/shutil/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"Absolute_Kept", "/home/user", "/tmp", "/tmp"},
		{"Absolute_NotCleaned", "/home/user", "/tmp//a/../b/", "/tmp//a/../b/"},
		{"Relative_Joined", "/home/user", "docs", "/home/user/docs"},
		{"Relative_Dot", "/home/user", ".", "/home/user/."},
		{"Relative_Parent", "/home/user", "..", "/home/user/.."},
		{"Relative_ParentKept", "/home/user", "link/../victim", "/home/user/link/../victim"},
		{"Relative_FromRoot", "/", "etc", "/etc"},
		{"Empty", "/home/user", "", "/home/user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolve(tt.base, tt.path))
		})
	}
}

func TestResolveLexical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"Absolute_Cleaned", "/home/user", "/tmp//a/../b/", "/tmp/b"},
		{"Relative_Joined", "/home/user", "docs", "/home/user/docs"},
		{"Relative_Dot", "/home/user", ".", "/home/user"},
		{"Relative_Parent", "/home/user", "..", "/home"},
		{"Relative_ParentOfRoot", "/", "..", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveLexical(tt.base, tt.path))
		})
	}
}

func TestTidy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/home/user/./docs", "/home/user/docs"},
		{"/home//user/", "/home/user"},
		{"/home/user/link/../x", "/home/user/link/../x"},
		{"/", "/"},
		{"./", "."},
		{"a/./b", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Tidy(tt.path))
		})
	}

	assert.Equal(t, "/home/user/docs", Child("/home/user/.", "docs"))
}

func TestResolve_ParentAfterSymlink(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "other", "deep", "dir"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(base, "other", "deep", "target"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(base, "other", "deep", "dir"), filepath.Join(base, "link")))

	handler := NewHandler(&schema.OS{})

	require.NoError(t, handler.EnsureDir(Resolve(base, "link/../target")))
	require.ErrorIs(t, handler.EnsureDir(ResolveLexical(base, "link/../target")), schema.ErrNotFound)
}

func TestExists_Success_RealPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	handler := NewHandler(&schema.OS{})

	exists, err := handler.Exists(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = handler.Exists(file)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = handler.Exists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = handler.Exists(filepath.Join(file, "below-a-file"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExists_Fail_EmptyPath(t *testing.T) {
	t.Parallel()

	handler := NewHandler(&schema.OS{})

	_, err := handler.Exists("")
	require.ErrorIs(t, err, ErrEmptyPath)
}

func TestExists_Fail_AccessDenied(t *testing.T) {
	t.Parallel()

	osProv := new(mockOsProvider)
	osProv.On("Stat", "/secret/file").Return(nil, &fs.PathError{Op: "stat", Path: "/secret/file", Err: unix.EACCES})

	handler := NewHandler(osProv)

	exists, err := handler.Exists("/secret/file")
	require.ErrorIs(t, err, schema.ErrAccessDenied)
	require.ErrorIs(t, err, unix.EACCES)
	assert.False(t, exists)

	osProv.AssertExpectations(t)
}

func TestIsDir_Mocked(t *testing.T) {
	t.Parallel()

	osProv := new(mockOsProvider)
	osProv.On("Stat", "/dir").Return(fakeFileInfo{name: "dir", isDir: true}, nil)
	osProv.On("Stat", "/file").Return(fakeFileInfo{name: "file"}, nil)
	osProv.On("Stat", "/missing").Return(nil, fs.ErrNotExist)

	handler := NewHandler(osProv)

	isDir, err := handler.IsDir("/dir")
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = handler.IsDir("/file")
	require.NoError(t, err)
	assert.False(t, isDir)

	_, err = handler.IsDir("/missing")
	require.ErrorIs(t, err, schema.ErrNotFound)

	osProv.AssertExpectations(t)
}

func TestEnsureDir_Table(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	handler := NewHandler(&schema.OS{})

	tests := []struct {
		name string
		path string
		want error
	}{
		{"Success_Directory", dir, nil},
		{"Fail_Missing", filepath.Join(dir, "missing"), schema.ErrNotFound},
		{"Fail_File", file, schema.ErrNotADirectory},
		{"Fail_BelowFile", filepath.Join(file, "x"), schema.ErrNotFound},
		{"Fail_Empty", "", ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := handler.EnsureDir(tt.path)
			if tt.want == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}
