package cache

import (
	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
)

// EntryType encodes the type of a listed entry.
type EntryType uint8

const (
	// EntryTypeFile indicates a regular file or any other non-directory,
	// non-link entry.
	EntryTypeFile EntryType = iota
	// EntryTypeDirectory indicates a directory.
	EntryTypeDirectory
	// EntryTypeLink indicates a symbolic link.
	EntryTypeLink
)

// String returns a human-readable representation of the entry type.
func (t EntryType) String() string {
	switch t {
	case EntryTypeFile:
		return "file"
	case EntryTypeDirectory:
		return "directory"
	case EntryTypeLink:
		return "link"
	default:
		return "unknown"
	}
}

// UnmarshalText implements the text unmarshalling interface used when loading
// from YAML files.
func (t *EntryType) UnmarshalText(textBytes []byte) error {
	switch text := string(textBytes); text {
	case "file":
		*t = EntryTypeFile
	case "directory":
		*t = EntryTypeDirectory
	case "link":
		*t = EntryTypeLink
	default:
		return errors.Errorf("unknown entry type specification: %s", text)
	}
	return nil
}

// Meta holds lazily populated entry metadata.
type Meta struct {
	// Stat is the entry's own metadata, queried without following links. It is
	// nil if no requested column needed it.
	Stat *filesystem.Stat
	// Link is the target of a symbolic link entry.
	Link string
	// LinkStat is the metadata of whatever a symbolic link entry resolves to.
	// It is nil for dangling links.
	LinkStat *filesystem.Stat
}

// Entry represents a single entry within a directory listing. An entry is
// owned by its creator until it's passed to StoreEntry, after which it's owned
// by the cache and must not be modified.
type Entry struct {
	// ID is the cache-assigned identifier for the entry.
	ID uint64
	// Name is the base name of the entry.
	Name string
	// Type is the entry type.
	Type EntryType
	// Meta is the entry metadata.
	Meta Meta
}
