package cache

import (
	"sync"
	"testing"

	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// directoryLocation creates a directory location for testing.
func directoryLocation(path string) location.Location {
	return location.Location{Scheme: "file", Path: path}.AsDirectory()
}

// eventRecorder records cache events.
type eventRecorder struct {
	// lock serializes access to events.
	lock sync.Mutex
	// events are the recorded events.
	events []Event
}

// record records an event.
func (r *eventRecorder) record(event Event) {
	r.lock.Lock()
	r.events = append(r.events, event)
	r.lock.Unlock()
}

// kinds returns the kinds of the recorded events.
func (r *eventRecorder) kinds() []EventKind {
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]EventKind, len(r.events))
	for i, e := range r.events {
		result[i] = e.Kind
	}
	return result
}

// TestCreateEntryUniqueIdentifiers verifies that entry identifiers are unique.
func TestCreateEntryUniqueIdentifiers(t *testing.T) {
	cache := New(0)
	dir := directoryLocation("/tmp")
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		entry := cache.CreateEntry(dir, "name", EntryTypeFile)
		if seen[entry.ID] {
			t.Fatal("duplicate identifier:", entry.ID)
		}
		seen[entry.ID] = true
	}
}

// TestUpdateGenerations verifies that stores during an update become visible
// only when the update ends and that they replace the previous generation.
func TestUpdateGenerations(t *testing.T) {
	cache := New(0)
	dir := directoryLocation("/tmp/x")

	// Populate an initial generation.
	cache.BeginUpdate(dir)
	old := cache.CreateEntry(dir, "old", EntryTypeFile)
	cache.StoreEntry(dir, old)
	if entries, _ := cache.Entries(dir); len(entries) != 0 {
		t.Error("pending entries visible during update")
	}
	if !cache.Updating(dir) {
		t.Error("directory not reported as updating")
	}
	cache.EndUpdate(dir)
	if cache.Updating(dir) {
		t.Error("directory reported as updating after end")
	}
	if entries, known := cache.Entries(dir); !known {
		t.Fatal("directory unknown after update")
	} else if len(entries) != 1 || entries[0] != old {
		t.Fatal("initial generation not visible")
	}

	// Perform a second update and verify that it replaces the first.
	cache.BeginUpdate(dir)
	b := cache.CreateEntry(dir, "b", EntryTypeDirectory)
	a := cache.CreateEntry(dir, "a", EntryTypeLink)
	cache.StoreEntry(dir, b)
	cache.StoreEntry(dir, a)
	if entries, _ := cache.Entries(dir); len(entries) != 1 || entries[0] != old {
		t.Error("previous generation not visible during update")
	}
	cache.EndUpdate(dir)
	entries, _ := cache.Entries(dir)
	if len(entries) != 2 || entries[0] != a || entries[1] != b {
		t.Fatal("new generation not visible or not sorted")
	}

	// Verify the identifier index.
	if _, ok := cache.Entry(old.ID); ok {
		t.Error("replaced entry still indexed")
	}
	if entry, ok := cache.Entry(a.ID); !ok || entry != a {
		t.Error("new entry not indexed")
	}
}

// TestEndUpdateWithoutBegin verifies that unmatched end signals are ignored.
func TestEndUpdateWithoutBegin(t *testing.T) {
	cache := New(0)
	recorder := &eventRecorder{}
	cache.Subscribe(recorder.record)
	cache.EndUpdate(directoryLocation("/tmp"))
	if len(recorder.kinds()) != 0 {
		t.Error("unmatched end update produced events")
	}
}

// TestEventOrdering verifies that subscribers observe begin, stores, and end
// in order and that cancelled subscriptions receive nothing further.
func TestEventOrdering(t *testing.T) {
	cache := New(0)
	dir := directoryLocation("/tmp")
	recorder := &eventRecorder{}
	cancel := cache.Subscribe(recorder.record)

	cache.BeginUpdate(dir)
	cache.StoreEntry(dir, cache.CreateEntry(dir, "a", EntryTypeFile))
	cache.StoreEntry(dir, cache.CreateEntry(dir, "b", EntryTypeFile))
	cache.EndUpdate(dir)
	cancel()
	cache.BeginUpdate(dir)

	expected := []EventKind{EventKindBeginUpdate, EventKindStore, EventKindStore, EventKindEndUpdate}
	kinds := recorder.kinds()
	if len(kinds) != len(expected) {
		t.Fatal("event count incorrect:", kinds)
	}
	for i, kind := range kinds {
		if kind != expected[i] {
			t.Errorf("event %d is %s, expected %s", i, kind, expected[i])
		}
	}
}

// TestNestedUpdates verifies that nested updates publish when the outermost
// update ends.
func TestNestedUpdates(t *testing.T) {
	cache := New(0)
	dir := directoryLocation("/tmp")
	cache.BeginUpdate(dir)
	cache.BeginUpdate(dir)
	cache.StoreEntry(dir, cache.CreateEntry(dir, "a", EntryTypeFile))
	cache.EndUpdate(dir)
	if !cache.Updating(dir) {
		t.Error("directory not updating after inner end")
	}
	if entries, _ := cache.Entries(dir); len(entries) != 0 {
		t.Error("entries visible before outermost end")
	}
	cache.EndUpdate(dir)
	if entries, _ := cache.Entries(dir); len(entries) != 1 {
		t.Error("entries not visible after outermost end")
	}
}

// TestStoreOutsideUpdate verifies that stores outside of an update replace
// same-named entries immediately.
func TestStoreOutsideUpdate(t *testing.T) {
	cache := New(0)
	dir := directoryLocation("/tmp")
	first := cache.CreateEntry(dir, "a", EntryTypeFile)
	second := cache.CreateEntry(dir, "a", EntryTypeDirectory)
	cache.StoreEntry(dir, first)
	cache.StoreEntry(dir, second)
	entries, known := cache.Entries(dir)
	if !known || len(entries) != 1 || entries[0] != second {
		t.Fatal("same-named entry not replaced")
	}
	if _, ok := cache.Entry(first.ID); ok {
		t.Error("replaced entry still indexed")
	}
}

// TestLRUEviction verifies that idle directories are evicted beyond capacity
// and that directories being updated are never evicted.
func TestLRUEviction(t *testing.T) {
	cache := New(2)
	recorder := &eventRecorder{}
	cache.Subscribe(recorder.record)
	a, b, c := directoryLocation("/a"), directoryLocation("/b"), directoryLocation("/c")

	// Populate two directories and pin a third.
	first := cache.CreateEntry(a, "x", EntryTypeFile)
	cache.StoreEntry(a, first)
	cache.StoreEntry(b, cache.CreateEntry(b, "x", EntryTypeFile))
	cache.BeginUpdate(c)
	cache.StoreEntry(c, cache.CreateEntry(c, "x", EntryTypeFile))
	if cache.Directories() != 3 {
		t.Error("pinned directory counted against capacity")
	}

	// Touch b so that a is least recently used, then finish the update of c.
	cache.Entries(b)
	cache.EndUpdate(c)
	if _, known := cache.Entries(a); known {
		t.Error("least recently used directory not evicted")
	}
	if _, ok := cache.Entry(first.ID); ok {
		t.Error("evicted entry still indexed")
	}
	if _, known := cache.Entries(b); !known {
		t.Error("recently used directory evicted")
	}
	if _, known := cache.Entries(c); !known {
		t.Error("updated directory evicted")
	}

	// Verify that an eviction event was delivered.
	var evictions int
	for _, kind := range recorder.kinds() {
		if kind == EventKindEvict {
			evictions++
		}
	}
	if evictions != 1 {
		t.Error("eviction event count incorrect:", evictions)
	}
}

// TestConcurrentStores verifies that concurrent stores are all retained.
func TestConcurrentStores(t *testing.T) {
	cache := New(0)
	dir := directoryLocation("/tmp")
	cache.BeginUpdate(dir)
	var group sync.WaitGroup
	for i := 0; i < 50; i++ {
		group.Add(1)
		go func(i int) {
			defer group.Done()
			cache.StoreEntry(dir, cache.CreateEntry(dir, string(rune('A'+i)), EntryTypeFile))
		}(i)
	}
	group.Wait()
	cache.EndUpdate(dir)
	if entries, _ := cache.Entries(dir); len(entries) != 50 {
		t.Error("concurrent stores lost:", len(entries))
	}
}

// TestEntryTypeText tests entry type text conversions.
func TestEntryTypeText(t *testing.T) {
	for _, entryType := range []EntryType{EntryTypeFile, EntryTypeDirectory, EntryTypeLink} {
		var decoded EntryType
		if err := decoded.UnmarshalText([]byte(entryType.String())); err != nil {
			t.Errorf("unable to decode %s: %v", entryType, err)
		} else if decoded != entryType {
			t.Errorf("decoding of %s produced %s", entryType, decoded)
		}
	}
	var decoded EntryType
	if decoded.UnmarshalText([]byte("socket")) == nil {
		t.Error("unknown entry type decoded successfully")
	}
}
