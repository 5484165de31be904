package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// Remove recursively removes the entry at path. Unlike os.RemoveAll, a path
// that doesn't exist is an error.
func Remove(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("unable to delete %s: path does not exist", path)
		}
		return errors.Wrap(err, "unable to query path")
	}
	if err := os.RemoveAll(path); err != nil {
		return errors.Wrapf(err, "unable to delete %s", path)
	}
	return nil
}
