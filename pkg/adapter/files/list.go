package files

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"golang.org/x/sync/errgroup"

	"github.com/dirbuf-io/dirbuf/pkg/adapter"
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/columns"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/location"
	"github.com/dirbuf-io/dirbuf/pkg/must"
)

// directoryReader is the interface to an open directory used by listings.
// It's satisfied by *os.File.
type directoryReader interface {
	// ReadDir reads up to n entries from the directory. At the end of the
	// directory, it returns io.EOF.
	ReadDir(n int) ([]os.DirEntry, error)
	// Close closes the directory.
	Close() error
}

// directoryOpener opens a directory for reading.
type directoryOpener func(path string) (directoryReader, error)

// openDirectory is the default directory opener.
func openDirectory(path string) (directoryReader, error) {
	directory, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return directory, nil
}

// entryType converts a directory entry type to an entry type. Anything that
// isn't a directory or symbolic link is treated as a file.
func entryType(mode os.FileMode) cache.EntryType {
	switch {
	case mode&os.ModeSymlink != 0:
		return cache.EntryTypeLink
	case mode.IsDir():
		return cache.EntryTypeDirectory
	default:
		return cache.EntryTypeFile
	}
}

// List implements adapter.Adapter.List. The cache is notified that an update
// of directory begins before the directory is opened and that it ends once
// listing terminates, regardless of the outcome. Entries are read in batches.
// All entries in a batch are processed concurrently and the next batch is only
// read once every entry in the current batch has been stored or has failed. A
// directory that doesn't exist is listed successfully as empty.
func (a *Adapter) List(ctx context.Context, directory location.Location, names []string, progress adapter.ProgressFunc) error {
	// Validate the directory and construct the fetcher.
	if directory.Scheme != Scheme {
		return errors.Errorf("unsupported scheme: %s", directory.Scheme)
	}
	directory = directory.AsDirectory()
	fetch, err := a.columns.Fetcher(names)
	if err != nil {
		return errors.Wrap(err, "unable to create metadata fetcher")
	}

	// Bracket the cache update.
	a.entries.BeginUpdate(directory)
	defer a.entries.EndUpdate(directory)

	// Open the directory.
	native := directory.ToNative()
	a.logger.Debugf("Listing %s", native)
	handle, err := a.open(native)
	if err != nil {
		if os.IsNotExist(err) {
			a.logger.Debugf("Directory %s does not exist, listing as empty", native)
			return nil
		}
		return errors.Wrap(err, "unable to open directory")
	}

	// Ensure that the handle is closed if we exit early.
	closed := false
	defer func() {
		if !closed {
			must.Close(handle, a.logger)
		}
	}()

	// Process batches until the directory is exhausted.
	for {
		// Check for cancellation.
		if err := ctx.Err(); err != nil {
			return err
		}

		// Read the next batch. Entries returned alongside an error are still
		// processed before the error is reported.
		contents, readErr := handle.ReadDir(a.batchSize)
		if len(contents) > 0 {
			stored, err := a.processBatch(ctx, directory, native, contents, fetch)
			if err != nil {
				return err
			}
			if progress != nil {
				progress(stored)
			}
		}
		if readErr == io.EOF {
			break
		} else if readErr != nil {
			return errors.Wrap(readErr, "unable to read directory contents")
		}
	}

	// Close the directory. A failure here is the result of the listing.
	closed = true
	if err := handle.Close(); err != nil {
		return errors.Wrap(err, "unable to close directory")
	}

	// Success.
	return nil
}

// processBatch concurrently fetches metadata for a batch of directory
// contents and stores the resulting entries. It returns only once every entry
// has been stored or has failed. The first failure cancels the remaining work
// and is returned.
func (a *Adapter) processBatch(
	ctx context.Context,
	directory location.Location, native string,
	contents []os.DirEntry,
	fetch columns.FetchFunc,
) ([]*cache.Entry, error) {
	group, groupCtx := errgroup.WithContext(ctx)
	stored := make([]*cache.Entry, len(contents))
	for i, content := range contents {
		i, content := i, content
		entry := a.entries.CreateEntry(directory, filesystem.ComposeName(content.Name()), entryType(content.Type()))
		group.Go(func() error {
			// Fetch column metadata.
			if err := fetch(groupCtx, directory, entry); err != nil {
				return err
			}

			// Resolve symbolic links.
			if entry.Type == cache.EntryTypeLink {
				target, stat, err := filesystem.ReadSymbolicLink(filepath.Join(native, content.Name()))
				if err != nil {
					return errors.Wrapf(err, "unable to resolve %s", entry.Name)
				}
				entry.Meta.Link, entry.Meta.LinkStat = target, stat
			}

			// Store the entry.
			a.logger.Tracef("Storing %s (%s)", entry.Name, entry.Type)
			a.entries.StoreEntry(directory, entry)
			stored[i] = entry
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return stored, nil
}
