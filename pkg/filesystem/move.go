package filesystem

import (
	"os"

	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/logging"
)

// Move moves source to destination, which must not exist. A rename is
// attempted first. If the endpoints live on different devices, the source is
// recursively copied and then removed.
func Move(source, destination string, logger *logging.Logger) error {
	// Verify that the destination doesn't exist.
	if _, err := os.Lstat(destination); err == nil {
		return errors.Errorf("unable to move to %s: destination already exists", destination)
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to query destination")
	}

	// Attempt a rename.
	err := os.Rename(source, destination)
	if err == nil {
		return nil
	} else if !isCrossDevice(err) {
		return errors.Wrap(err, "unable to rename")
	}

	// Fall back to copy and removal.
	logger.Debugf("Rename of %s crosses devices, falling back to copy", source)
	if err := Copy(source, destination, logger); err != nil {
		return err
	}
	if err := os.RemoveAll(source); err != nil {
		return errors.Wrap(err, "unable to remove source after copy")
	}

	// Success.
	return nil
}
