package filesystem

import (
	"time"
)

// Stat is a snapshot of filesystem metadata for a single path.
type Stat struct {
	// Size is the size of the entry in bytes.
	Size uint64
	// Mode is the raw mode of the entry. The low 12 bits hold permission and
	// special bits, the bits under ModeTypeMask hold the entry type.
	Mode Mode
	// UID is the owning user identifier. It is -1 on platforms without POSIX
	// ownership.
	UID int
	// GID is the owning group identifier. It is -1 on platforms without POSIX
	// ownership.
	GID int
	// BirthTime is the creation time of the entry. It is the zero value on
	// platforms that don't expose it.
	BirthTime time.Time
	// ModificationTime is the last content modification time.
	ModificationTime time.Time
	// AccessTime is the last access time.
	AccessTime time.Time
	// ChangeTime is the last status change time. On Windows, where no such
	// value exists, it mirrors the modification time.
	ChangeTime time.Time
}

// IsDirectory returns whether or not the snapshot describes a directory.
func (s *Stat) IsDirectory() bool {
	return s.Mode.IsDirectory()
}

// IsSymbolicLink returns whether or not the snapshot describes a symbolic
// link.
func (s *Stat) IsSymbolicLink() bool {
	return s.Mode.IsSymbolicLink()
}
