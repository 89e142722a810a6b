// Package configuration reads the application configuration from dotenv-style
// files, with environment variables taking precedence over file contents.
// Invalid values never fail the load: they are reported and replaced by their
// defaults.
package configuration

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Config is the principal structure holding the application configuration.
// Zero values mean "use the library default".
type Config struct {
	SearchDir       string
	SearchDirBin    string
	IdentityCommand []string
	DirMode         uint32
	LogLevel        slog.Level
}

// Handler is the principal implementation for the configuration functions.
type Handler struct {
	GenericConfigReader genericConfigProvider
	lookupEnv           func(key string) (string, bool)
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(reader genericConfigProvider) *Handler {
	return &Handler{
		GenericConfigReader: reader,
		lookupEnv:           os.LookupEnv,
	}
}

// ReadGeneric reads the given configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericConfigReader.Read(filenames...)
}

// Load reads the given configuration files (none is fine), overlays the
// environment and returns the resulting [Config].
func (c *Handler) Load(filenames ...string) (*Config, error) {
	envMap := make(map[string]string)

	if len(filenames) > 0 {
		fileMap, err := c.ReadGeneric(filenames...)
		if err != nil {
			return nil, err
		}
		for k, v := range fileMap {
			envMap[k] = v
		}
	}

	for _, key := range Keys() {
		if value, ok := c.lookupEnv(key); ok {
			envMap[key] = value
		}
	}

	return &Config{
		SearchDir:       c.MapKeyToString(envMap, KeySearchDir),
		SearchDirBin:    c.MapKeyToString(envMap, KeySearchDirBin),
		IdentityCommand: c.MapKeyToFields(envMap, KeyIdentityCmd),
		DirMode:         c.MapKeyToFileMode(envMap, KeyDirMode),
		LogLevel:        c.MapKeyToLevel(envMap, KeyLogLevel),
	}, nil
}

// MapKeyToString returns the trimmed value of key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return strings.TrimSpace(value)
	}

	return ""
}

// MapKeyToFields returns the value of key split on whitespace, or nil.
func (c *Handler) MapKeyToFields(envMap map[string]string, key string) []string {
	fields := strings.Fields(c.MapKeyToString(envMap, key))
	if len(fields) == 0 {
		return nil
	}

	return fields
}

// MapKeyToFileMode returns the octal permission bits of key, or 0 if the
// value is missing or invalid.
func (c *Handler) MapKeyToFileMode(envMap map[string]string, key string) uint32 {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return 0
	}

	mode, err := strconv.ParseUint(value, 8, 32)
	if err != nil || mode > 0o7777 {
		slog.Warn("Ignoring invalid directory mode in configuration",
			"key", key,
			"value", value,
		)

		return 0
	}

	return uint32(mode)
}

// MapKeyToLevel returns the log level of key, or [slog.LevelInfo] if the
// value is missing or invalid.
func (c *Handler) MapKeyToLevel(envMap map[string]string, key string) slog.Level {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return slog.LevelInfo
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		slog.Warn("Ignoring invalid log level in configuration",
			"key", key,
			"value", value,
		)

		return slog.LevelInfo
	}

	return level
}
