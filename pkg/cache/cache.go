package cache

import (
	"sort"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// directory holds the cached state of a single directory.
type directory struct {
	// entries is the visible generation of entries, keyed by name.
	entries map[string]*Entry
	// pending is the generation being built by in-progress updates. It is nil
	// when no update is in progress.
	pending map[string]*Entry
	// updates is the number of in-progress updates.
	updates uint
}

// Cache stores listed entries per directory. It is safe for concurrent usage.
// Subscribers are invoked synchronously, outside of the cache's lock, and must
// themselves be safe for concurrent invocation.
type Cache struct {
	// lock serializes access to all other fields.
	lock sync.Mutex
	// nextID is the next entry identifier to assign.
	nextID uint64
	// directories tracks idle directories on an LRU basis.
	directories *lru.Cache
	// updating holds directories with in-progress updates. Such directories
	// are pinned outside of the LRU so that they can't be evicted.
	updating map[location.Location]*directory
	// index maps identifiers to visible or pending entries.
	index map[uint64]*Entry
	// evicted accumulates directories evicted during the current operation.
	evicted []location.Location
	// subscribers are the registered event callbacks, keyed by registration.
	subscribers map[uint64]func(Event)
	// nextSubscriber is the next subscriber registration key.
	nextSubscriber uint64
}

// New creates a new cache that holds at most capacity idle directories. A
// capacity of 0 indicates no limit.
func New(capacity int) *Cache {
	cache := &Cache{
		nextID:      1,
		directories: lru.New(capacity),
		updating:    make(map[location.Location]*directory),
		index:       make(map[uint64]*Entry),
		subscribers: make(map[uint64]func(Event)),
	}
	cache.directories.OnEvicted = func(key lru.Key, value interface{}) {
		// Directories moving into the updating set aren't really evicted.
		dir := key.(location.Location)
		if _, ok := cache.updating[dir]; ok {
			return
		}
		for _, entry := range value.(*directory).entries {
			delete(cache.index, entry.ID)
		}
		cache.evicted = append(cache.evicted, dir)
	}
	return cache
}

// key converts a directory location to its cache key.
func key(dir location.Location) location.Location {
	return dir.AsDirectory()
}

// Subscribe registers a callback for cache events. It returns a function that
// cancels the registration.
func (c *Cache) Subscribe(callback func(Event)) func() {
	c.lock.Lock()
	defer c.lock.Unlock()
	registration := c.nextSubscriber
	c.nextSubscriber++
	c.subscribers[registration] = callback
	return func() {
		c.lock.Lock()
		delete(c.subscribers, registration)
		c.lock.Unlock()
	}
}

// unlockAndNotify releases the cache lock and then delivers the provided event
// (if any) and any accumulated eviction events to subscribers. It must be
// called with the lock held.
func (c *Cache) unlockAndNotify(event *Event) {
	// Extract the events and subscribers.
	var events []Event
	if event != nil {
		events = append(events, *event)
	}
	for _, dir := range c.evicted {
		events = append(events, Event{Kind: EventKindEvict, Directory: dir})
	}
	c.evicted = nil
	subscribers := make([]func(Event), 0, len(c.subscribers))
	for _, subscriber := range c.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	c.lock.Unlock()

	// Deliver events.
	for _, e := range events {
		for _, subscriber := range subscribers {
			subscriber(e)
		}
	}
}

// BeginUpdate marks the start of an update of dir. Entries stored for dir
// until the matching EndUpdate form a new generation that becomes visible when
// the update ends. Updates may nest, in which case the generation becomes
// visible when the outermost update ends.
func (c *Cache) BeginUpdate(dir location.Location) {
	dir = key(dir)
	c.lock.Lock()

	// Pin the directory, creating it if necessary.
	state, ok := c.updating[dir]
	if !ok {
		if value, cached := c.directories.Get(dir); cached {
			state = value.(*directory)
		} else {
			state = &directory{entries: make(map[string]*Entry)}
		}
		c.updating[dir] = state
		c.directories.Remove(dir)
	}

	// Start a new generation if this is the outermost update.
	if state.updates == 0 {
		state.pending = make(map[string]*Entry)
	}
	state.updates++

	// Notify.
	c.unlockAndNotify(&Event{Kind: EventKindBeginUpdate, Directory: dir})
}

// EndUpdate marks the end of an update of dir. If this is the outermost
// update, the pending generation replaces the visible one, regardless of
// whether or not the update completed successfully. Calls without a matching
// BeginUpdate are ignored.
func (c *Cache) EndUpdate(dir location.Location) {
	dir = key(dir)
	c.lock.Lock()

	// Look up the directory.
	state, ok := c.updating[dir]
	if !ok {
		c.lock.Unlock()
		return
	}

	// If this is the outermost update, swap generations and unpin.
	state.updates--
	if state.updates == 0 {
		for name, entry := range state.entries {
			if state.pending[name] != entry {
				delete(c.index, entry.ID)
			}
		}
		state.entries, state.pending = state.pending, nil
		delete(c.updating, dir)
		c.directories.Add(dir, state)
	}

	// Notify.
	c.unlockAndNotify(&Event{Kind: EventKindEndUpdate, Directory: dir})
}

// CreateEntry creates a new entry with a unique identifier. The entry isn't
// visible until it's passed to StoreEntry.
func (c *Cache) CreateEntry(dir location.Location, name string, entryType EntryType) *Entry {
	c.lock.Lock()
	defer c.lock.Unlock()
	entry := &Entry{ID: c.nextID, Name: name, Type: entryType}
	c.nextID++
	return entry
}

// StoreEntry stores entry beneath dir, transferring ownership of the entry to
// the cache. If an update of dir is in progress, the entry joins the pending
// generation. Otherwise, it replaces any visible entry with the same name.
func (c *Cache) StoreEntry(dir location.Location, entry *Entry) {
	dir = key(dir)
	c.lock.Lock()

	// Store the entry in the appropriate generation.
	if state, ok := c.updating[dir]; ok {
		if previous, ok := state.pending[entry.Name]; ok && previous != state.entries[entry.Name] {
			delete(c.index, previous.ID)
		}
		state.pending[entry.Name] = entry
	} else {
		var state *directory
		if value, cached := c.directories.Get(dir); cached {
			state = value.(*directory)
		} else {
			state = &directory{entries: make(map[string]*Entry)}
			c.directories.Add(dir, state)
		}
		if previous, ok := state.entries[entry.Name]; ok {
			delete(c.index, previous.ID)
		}
		state.entries[entry.Name] = entry
	}
	c.index[entry.ID] = entry

	// Notify.
	c.unlockAndNotify(&Event{Kind: EventKindStore, Directory: dir, Entry: entry})
}

// Entries returns the visible entries of dir, sorted by name, and whether or
// not the directory is known to the cache.
func (c *Cache) Entries(dir location.Location) ([]*Entry, bool) {
	dir = key(dir)
	c.lock.Lock()
	defer c.lock.Unlock()

	// Look up the directory.
	state, ok := c.updating[dir]
	if !ok {
		value, cached := c.directories.Get(dir)
		if !cached {
			return nil, false
		}
		state = value.(*directory)
	}

	// Extract and sort entries.
	result := make([]*Entry, 0, len(state.entries))
	for _, entry := range state.entries {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, true
}

// Entry looks up an entry by identifier.
func (c *Cache) Entry(id uint64) (*Entry, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	entry, ok := c.index[id]
	return entry, ok
}

// Updating returns whether or not an update of dir is in progress.
func (c *Cache) Updating(dir location.Location) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	_, ok := c.updating[key(dir)]
	return ok
}

// Directories returns the number of directories known to the cache, including
// those being updated.
func (c *Cache) Directories() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.directories.Len() + len(c.updating)
}
