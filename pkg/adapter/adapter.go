// Package adapter defines the interface implemented by storage backends and a
// registry that maps location schemes to the backends responsible for them.
package adapter

import (
	"context"

	"github.com/dirbuf-io/dirbuf/pkg/actions"
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// ProgressFunc receives the entries stored by each completed listing batch.
type ProgressFunc func(entries []*cache.Entry)

// Adapter is the interface implemented by storage backends.
type Adapter interface {
	// Scheme returns the location scheme handled by the adapter.
	Scheme() string
	// SupportsTransfer indicates whether or not the adapter can move or copy
	// entries to and from other adapters.
	SupportsTransfer() bool
	// List enumerates directory into the cache, fetching the metadata required
	// by the requested columns. If progress is non-nil, it's invoked with the
	// entries stored by each batch.
	List(ctx context.Context, directory location.Location, columns []string, progress ProgressFunc) error
	// Normalize converts a location to canonical form.
	Normalize(l location.Location) (location.Location, error)
	// Render returns a single-line preview of an action.
	Render(action actions.Action) string
	// Perform applies an action.
	Perform(ctx context.Context, action actions.Action) error
	// IsWritable determines whether or not entries can be created within
	// directory.
	IsWritable(directory location.Location) (bool, error)
}
