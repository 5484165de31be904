// Package files provides the filesystem-backed adapter. It lists local
// directories into the entry cache and renders and performs actions against
// the local filesystem.
package files

import (
	"github.com/dirbuf-io/dirbuf/pkg/adapter"
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/columns"
	"github.com/dirbuf-io/dirbuf/pkg/location"
	"github.com/dirbuf-io/dirbuf/pkg/logging"
)

const (
	// Scheme is the location scheme handled by the adapter.
	Scheme = "file"
	// DefaultBatchSize is the number of directory entries read per batch if
	// no batch size is specified.
	DefaultBatchSize = 100
)

// Options configures an adapter.
type Options struct {
	// BatchSize is the number of directory entries read per listing batch. A
	// value less than 1 selects DefaultBatchSize.
	BatchSize int
	// WorkingDirectory is the directory relative to which rendered paths are
	// shortened. If empty, no working directory shortening is performed.
	WorkingDirectory string
	// HomeDirectory is the directory whose paths are rendered with a leading
	// tilde. If empty, no home directory shortening is performed.
	HomeDirectory string
	// Logger is the logger for the adapter. It may be nil.
	Logger *logging.Logger
}

// Adapter is the filesystem-backed adapter.
type Adapter struct {
	// entries is the cache populated by listings.
	entries *cache.Cache
	// columns is the column registry used to construct metadata fetchers.
	columns *columns.Registry
	// registry is the adapter registry used to determine whether or not
	// locations belong to this adapter. If nil, ownership is determined by
	// scheme alone.
	registry *adapter.Registry
	// batchSize is the number of directory entries read per listing batch.
	batchSize int
	// workingDirectory is the working directory used for shortening.
	workingDirectory string
	// homeDirectory is the home directory used for shortening.
	homeDirectory string
	// logger is the underlying logger.
	logger *logging.Logger
	// open opens directories for listing.
	open directoryOpener
}

// New creates a new filesystem adapter. It does not register the adapter with
// registry.
func New(entries *cache.Cache, columns *columns.Registry, registry *adapter.Registry, options Options) *Adapter {
	batchSize := options.BatchSize
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Adapter{
		entries:          entries,
		columns:          columns,
		registry:         registry,
		batchSize:        batchSize,
		workingDirectory: options.WorkingDirectory,
		homeDirectory:    options.HomeDirectory,
		logger:           options.Logger,
		open:             openDirectory,
	}
}

// Scheme implements adapter.Adapter.Scheme.
func (a *Adapter) Scheme() string {
	return Scheme
}

// SupportsTransfer implements adapter.Adapter.SupportsTransfer. The adapter
// can't exchange entries with other adapters.
func (a *Adapter) SupportsTransfer() bool {
	return false
}

// owns determines whether or not a location is handled by this adapter.
func (a *Adapter) owns(l location.Location) bool {
	if a.registry == nil {
		return l.Scheme == Scheme
	}
	handler, err := a.registry.ForLocation(l)
	return err == nil && handler == adapter.Adapter(a)
}
