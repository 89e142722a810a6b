package configuration

// Configuration keys, read from the configuration file and overridden by the
// environment variables of the same name.
const (
	KeySearchDir    = "SHUTIL_SEARCH_DIR"
	KeySearchDirBin = "SHUTIL_SEARCH_DIR_BIN"
	KeyIdentityCmd  = "SHUTIL_IDENTITY_CMD"
	KeyDirMode      = "SHUTIL_DIR_MODE"
	KeyLogLevel     = "SHUTIL_LOG_LEVEL"
)

// Keys returns all known configuration keys.
func Keys() []string {
	return []string{
		KeySearchDir,
		KeySearchDirBin,
		KeyIdentityCmd,
		KeyDirMode,
		KeyLogLevel,
	}
}
