package columns

import (
	"context"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// FetchFunc populates the metadata required by a set of columns for an entry
// residing within directory.
type FetchFunc func(ctx context.Context, directory location.Location, entry *cache.Entry) error

// Registry holds the columns available on the platform.
type Registry struct {
	// columns maps names to columns.
	columns map[string]*Column
	// names are the column names in registration order.
	names []string
}

// NewRegistry creates a registry. The permissions column is only registered if
// permissionsSupported is true. Time columns are rendered using timeFormat, or
// DefaultTimeFormat if timeFormat is empty.
func NewRegistry(permissionsSupported bool, timeFormat string) *Registry {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	registry := &Registry{columns: make(map[string]*Column)}
	registry.register(&Column{Name: NameSize, NeedsStat: true, render: renderSize})
	if permissionsSupported {
		registry.register(&Column{
			Name:      NamePermissions,
			NeedsStat: true,
			render:    renderPermissions,
			compare:   comparePermissions,
		})
	}
	registry.register(&Column{
		Name:      NameModificationTime,
		NeedsStat: true,
		render:    timeRenderer(timeFormat, func(s *filesystem.Stat) time.Time { return s.ModificationTime }),
	})
	registry.register(&Column{
		Name:      NameChangeTime,
		NeedsStat: true,
		render:    timeRenderer(timeFormat, func(s *filesystem.Stat) time.Time { return s.ChangeTime }),
	})
	registry.register(&Column{
		Name:      NameAccessTime,
		NeedsStat: true,
		render:    timeRenderer(timeFormat, func(s *filesystem.Stat) time.Time { return s.AccessTime }),
	})
	registry.register(&Column{
		Name:      NameBirthTime,
		NeedsStat: true,
		render:    timeRenderer(timeFormat, func(s *filesystem.Stat) time.Time { return s.BirthTime }),
	})
	registry.register(&Column{Name: NameType, render: renderType})
	return registry
}

// NewPlatformRegistry creates a registry for the current platform.
func NewPlatformRegistry(timeFormat string) *Registry {
	return NewRegistry(filesystem.PermissionsSupported, timeFormat)
}

// register adds a column to the registry.
func (r *Registry) register(column *Column) {
	r.columns[column.Name] = column
	r.names = append(r.names, column.Name)
}

// Names returns the registered column names in registration order.
func (r *Registry) Names() []string {
	result := make([]string, len(r.names))
	copy(result, r.names)
	return result
}

// Lookup returns the named column.
func (r *Registry) Lookup(name string) (*Column, bool) {
	column, ok := r.columns[name]
	return column, ok
}

// Resolve looks up each of the named columns, failing on the first unknown
// name.
func (r *Registry) Resolve(names []string) ([]*Column, error) {
	result := make([]*Column, 0, len(names))
	for _, name := range names {
		column, ok := r.columns[name]
		if !ok {
			return nil, errors.Errorf("unknown column: %s", name)
		}
		result = append(result, column)
	}
	return result, nil
}

// Fetcher returns a function that populates the metadata needed by the named
// columns. If no named column needs metadata, the function does nothing.
func (r *Registry) Fetcher(names []string) (FetchFunc, error) {
	// Determine whether or not metadata is required.
	columns, err := r.Resolve(names)
	if err != nil {
		return nil, err
	}
	var needsStat bool
	for _, column := range columns {
		needsStat = needsStat || column.NeedsStat
	}

	// Handle the no-op case.
	if !needsStat {
		return func(_ context.Context, _ location.Location, _ *cache.Entry) error {
			return nil
		}, nil
	}

	// Create the fetcher.
	return func(ctx context.Context, directory location.Location, entry *cache.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stat, err := filesystem.Lstat(filepath.Join(directory.ToNative(), entry.Name))
		if err != nil {
			return errors.Wrapf(err, "unable to query metadata for %s", entry.Name)
		}
		entry.Meta.Stat = stat
		return nil
	}, nil
}
