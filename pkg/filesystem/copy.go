package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/logging"
	"github.com/dirbuf-io/dirbuf/pkg/must"
)

// copyFile copies the regular file at source to a new file at destination,
// carrying over its permission bits.
func copyFile(source, destination string, stat *Stat, logger *logging.Logger) error {
	// Open the source.
	input, err := os.Open(source)
	if err != nil {
		return errors.Wrap(err, "unable to open source file")
	}
	defer must.Close(input, logger)

	// Create the destination. It's created owner-writable so that content can
	// be written regardless of the source permissions.
	output, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return errors.Wrap(err, "unable to create destination file")
	}

	// Copy contents.
	if _, err := io.Copy(output, input); err != nil {
		must.Close(output, logger)
		return errors.Wrap(err, "unable to copy file contents")
	}
	if err := output.Close(); err != nil {
		return errors.Wrap(err, "unable to close destination file")
	}

	// Set permissions.
	return copyPermissions(destination, stat)
}

// copyTree recursively copies the entry at source to destination. Directories
// are copied recursively, regular files are copied with their permission bits
// and symbolic links are recreated as symbolic links.
func copyTree(source, destination string, logger *logging.Logger) error {
	// Query source metadata without following links.
	stat, err := Lstat(source)
	if err != nil {
		return errors.Wrap(err, "unable to query source")
	}

	// Handle the copy based on type.
	switch stat.Mode.Type() {
	case ModeTypeDirectory:
		if err := os.Mkdir(destination, 0700); err != nil {
			return errors.Wrap(err, "unable to create directory")
		}
		contents, err := os.ReadDir(source)
		if err != nil {
			return errors.Wrap(err, "unable to read directory contents")
		}
		for _, content := range contents {
			name := content.Name()
			if err := copyTree(filepath.Join(source, name), filepath.Join(destination, name), logger); err != nil {
				return err
			}
		}
		return copyPermissions(destination, stat)
	case ModeTypeSymbolicLink:
		target, err := os.Readlink(source)
		if err != nil {
			return errors.Wrap(err, "unable to read symbolic link")
		}
		if err := CreateSymbolicLink(target, destination); err != nil {
			return errors.Wrap(err, "unable to create symbolic link")
		}
		return nil
	case ModeTypeFile:
		return copyFile(source, destination, stat, logger)
	default:
		return errors.Errorf("unable to copy %s: unsupported entry type", source)
	}
}

// stagingPath returns a unique staging sibling path for destination.
func stagingPath(destination string) string {
	return filepath.Join(filepath.Dir(destination), copyStagingPrefix+uuid.New().String())
}

// Copy recursively copies source to destination, which must not exist. The
// copy is performed into a uniquely named staging sibling of destination and
// renamed into place once complete, so a failed copy doesn't leave a partial
// destination behind.
func Copy(source, destination string, logger *logging.Logger) error {
	// Verify that the destination doesn't exist.
	if _, err := os.Lstat(destination); err == nil {
		return errors.Errorf("unable to copy to %s: destination already exists", destination)
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to query destination")
	}

	// Perform the copy into staging.
	staging := stagingPath(destination)
	logger.Debugf("Copying %s into staging path %s", source, staging)
	if err := copyTree(source, staging, logger); err != nil {
		must.OSRemoveAll(staging, logger)
		return err
	}

	// Move the copy into place.
	if err := os.Rename(staging, destination); err != nil {
		must.OSRemoveAll(staging, logger)
		return errors.Wrap(err, "unable to relocate copy into place")
	}

	// Success.
	return nil
}
