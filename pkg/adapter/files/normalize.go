package files

import (
	"os"

	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// Normalize implements adapter.Adapter.Normalize. Symbolic links are evaluated
// for locations that exist. Existing directories, and locations already using
// the directory convention, are returned in directory form.
func (a *Adapter) Normalize(l location.Location) (location.Location, error) {
	if l.Scheme != Scheme {
		return location.Location{}, errors.Errorf("unsupported scheme: %s", l.Scheme)
	}
	return NormalizePath(l.ToNative(), l.IsDirectory())
}

// NormalizePath converts a native path, which may be relative or begin with a
// tilde, to a canonical location.
func NormalizePath(path string, directory bool) (location.Location, error) {
	canonical, err := filesystem.Canonicalize(path)
	if err != nil {
		return location.Location{}, errors.Wrap(err, "unable to canonicalize path")
	}
	if !directory {
		if info, err := os.Stat(canonical); err == nil && info.IsDir() {
			directory = true
		}
	}
	return location.FromNative(Scheme, canonical, directory), nil
}

// IsWritable implements adapter.Adapter.IsWritable.
func (a *Adapter) IsWritable(directory location.Location) (bool, error) {
	if directory.Scheme != Scheme {
		return false, errors.Errorf("unsupported scheme: %s", directory.Scheme)
	}
	writable, err := filesystem.IsWritable(directory.ToNative())
	if err != nil {
		return false, errors.Wrap(err, "unable to probe writability")
	}
	return writable, nil
}
