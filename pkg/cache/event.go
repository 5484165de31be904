package cache

import (
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// EventKind identifies the kind of a cache event.
type EventKind uint8

const (
	// EventKindBeginUpdate indicates that an update of a directory began.
	EventKindBeginUpdate EventKind = iota
	// EventKindStore indicates that an entry was stored.
	EventKindStore
	// EventKindEndUpdate indicates that an update of a directory ended and its
	// new generation of entries is visible.
	EventKindEndUpdate
	// EventKindEvict indicates that a directory was evicted from the cache.
	EventKindEvict
)

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKindBeginUpdate:
		return "begin-update"
	case EventKindStore:
		return "store"
	case EventKindEndUpdate:
		return "end-update"
	case EventKindEvict:
		return "evict"
	default:
		return "unknown"
	}
}

// Event describes a change to the cache.
type Event struct {
	// Kind is the event kind.
	Kind EventKind
	// Directory is the directory to which the event applies.
	Directory location.Location
	// Entry is the stored entry. It is only set for EventKindStore.
	Entry *Entry
}
