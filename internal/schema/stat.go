package schema

import "time"

// StatRecord is a snapshot of the metadata of a single path. All numeric
// values are the raw values reported by the platform, never recomputed.
type StatRecord struct {
	Path       string
	BlockSize  uint64
	BlockCount uint64
	ByteSize   uint64
	OwnerID    uint32
	GroupID    uint32
	Perms      uint32
	Inode      uint64
	Links      uint64
	Device     uint64
	IsDir      bool
	IsSymlink  bool
	ModifiedAt time.Time
}

// Kind returns the human-readable file type, as the stat command shows it.
func (r StatRecord) Kind() string {
	switch {
	case r.IsSymlink:
		return "symbolic link"
	case r.IsDir:
		return "directory"
	case r.ByteSize == 0:
		return "regular empty file"
	default:
		return "regular file"
	}
}
