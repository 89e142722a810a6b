package configuration

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockConfigProvider struct {
	mock.Mock
}

func (m *mockConfigProvider) Read(filenames ...string) (map[string]string, error) {
	args := m.Called(filenames)
	envMap, _ := args.Get(0).(map[string]string)

	return envMap, args.Error(1)
}

func newTestHandler(reader genericConfigProvider, env map[string]string) *Handler {
	h := NewHandler(reader)
	h.lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]

		return v, ok
	}

	return h
}

func TestLoad_Success_Defaults(t *testing.T) {
	t.Parallel()

	reader := new(mockConfigProvider)
	h := newTestHandler(reader, nil)

	cfg, err := h.Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{LogLevel: slog.LevelInfo}, cfg)
	reader.AssertNotCalled(t, "Read", mock.Anything)
}

func TestLoad_Success_File(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "shutil.env")
	require.NoError(t, os.WriteFile(file, []byte(
		"SHUTIL_SEARCH_DIR=/opt/bin\n"+
			"SHUTIL_SEARCH_DIR_BIN=/opt/sbin\n"+
			"SHUTIL_IDENTITY_CMD=\"id -un\"\n"+
			"SHUTIL_DIR_MODE=0750\n"+
			"SHUTIL_LOG_LEVEL=debug\n",
	), 0o600))

	h := newTestHandler(&GodotenvProvider{}, nil)

	cfg, err := h.Load(file)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		SearchDir:       "/opt/bin",
		SearchDirBin:    "/opt/sbin",
		IdentityCommand: []string{"id", "-un"},
		DirMode:         0o750,
		LogLevel:        slog.LevelDebug,
	}, cfg)
}

func TestLoad_Success_EnvironmentWins(t *testing.T) {
	t.Parallel()

	reader := new(mockConfigProvider)
	reader.On("Read", []string{"/etc/shutil.env"}).Return(map[string]string{
		KeySearchDir: "/from/file",
		KeyLogLevel:  "warn",
	}, nil)

	h := newTestHandler(reader, map[string]string{
		KeySearchDir: "/from/env",
	})

	cfg, err := h.Load("/etc/shutil.env")
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.SearchDir)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)

	reader.AssertExpectations(t)
}

func TestLoad_Fail_MissingFile(t *testing.T) {
	t.Parallel()

	h := newTestHandler(&GodotenvProvider{}, nil)

	_, err := h.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Fail_ReaderError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("unreadable")

	reader := new(mockConfigProvider)
	reader.On("Read", []string{"a.env", "b.env"}).Return(nil, readErr)

	_, err := newTestHandler(reader, nil).Load("a.env", "b.env")
	require.ErrorIs(t, err, readErr)

	reader.AssertExpectations(t)
}

func TestMapKeyToFileMode(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)

	tests := []struct {
		value string
		want  uint32
	}{
		{"", 0},
		{"755", 0o755},
		{"0700", 0o700},
		{" 1777 ", 0o1777},
		{"999", 0},
		{"rwx", 0},
		{"17777", 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, h.MapKeyToFileMode(map[string]string{KeyDirMode: tt.value}, KeyDirMode))
		})
	}
}

func TestMapKeyToLevel(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)

	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, h.MapKeyToLevel(map[string]string{KeyLogLevel: tt.value}, KeyLogLevel))
		})
	}
}

func TestMapKeyToFields(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)

	assert.Nil(t, h.MapKeyToFields(map[string]string{}, KeyIdentityCmd))
	assert.Nil(t, h.MapKeyToFields(map[string]string{KeyIdentityCmd: "   "}, KeyIdentityCmd))
	assert.Equal(t, []string{"whoami"}, h.MapKeyToFields(map[string]string{KeyIdentityCmd: "whoami"}, KeyIdentityCmd))
}
