package filesystem

import (
	"time"

	"github.com/desertwitch/shutil/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	unixBasePerms = 0o7777
)

// Stat returns a [schema.StatRecord] for path, following a symlink to its
// target. A path whose metadata cannot be read due to its permissions
// results in [schema.ErrAccessDenied].
func (f *Handler) Stat(path string) (schema.StatRecord, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Stat(path, &stat); err != nil {
		return schema.StatRecord{}, statError("(fs-stat)", path, err)
	}

	return newStatRecord(path, &stat), nil
}

// Lstat returns a [schema.StatRecord] for path, describing a symlink itself
// rather than its target.
func (f *Handler) Lstat(path string) (schema.StatRecord, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return schema.StatRecord{}, statError("(fs-lstat)", path, err)
	}

	return newStatRecord(path, &stat), nil
}

//nolint:unconvert
func newStatRecord(path string, stat *unix.Stat_t) schema.StatRecord {
	return schema.StatRecord{
		Path:       path,
		BlockSize:  handleSize(int64(stat.Blksize)),
		BlockCount: handleSize(int64(stat.Blocks)),
		ByteSize:   handleSize(int64(stat.Size)),
		OwnerID:    stat.Uid,
		GroupID:    stat.Gid,
		Perms:      uint32(stat.Mode) & unixBasePerms,
		Inode:      uint64(stat.Ino),
		Links:      uint64(stat.Nlink),
		Device:     uint64(stat.Dev),
		IsDir:      (uint32(stat.Mode) & unix.S_IFMT) == unix.S_IFDIR,
		IsSymlink:  (uint32(stat.Mode) & unix.S_IFMT) == unix.S_IFLNK,
		ModifiedAt: time.Unix(stat.Mtim.Unix()),
	}
}
