package files

import (
	"sync"
	"testing"

	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/columns"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// eventCounter counts cache events by kind.
type eventCounter struct {
	// lock serializes access to counts and order.
	lock sync.Mutex
	// counts maps event kinds to counts.
	counts map[cache.EventKind]int
	// order records the sequence of event kinds.
	order []cache.EventKind
}

// record records an event.
func (c *eventCounter) record(event cache.Event) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.counts[event.Kind]++
	c.order = append(c.order, event.Kind)
}

// count returns the number of events of the specified kind.
func (c *eventCounter) count(kind cache.EventKind) int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.counts[kind]
}

// bracketed verifies that the recorded events begin with a begin-update and
// end with an end-update.
func (c *eventCounter) bracketed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.order) >= 2 &&
		c.order[0] == cache.EventKindBeginUpdate &&
		c.order[len(c.order)-1] == cache.EventKindEndUpdate
}

// newTestAdapter creates an adapter for testing along with its cache and an
// event counter subscribed to that cache.
func newTestAdapter(t *testing.T, options Options) (*Adapter, *cache.Cache, *eventCounter) {
	t.Helper()
	entries := cache.New(0)
	counter := &eventCounter{counts: make(map[cache.EventKind]int)}
	entries.Subscribe(counter.record)
	return New(entries, columns.NewRegistry(true, ""), nil, options), entries, counter
}

// directoryLocation converts a native directory path to a location.
func directoryLocation(path string) location.Location {
	return location.FromNative(Scheme, path, true)
}

// fileLocation converts a native file path to a location.
func fileLocation(path string) location.Location {
	return location.FromNative(Scheme, path, false)
}
