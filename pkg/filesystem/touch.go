package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// Touch creates an empty regular file at path if nothing exists there. The
// contents of an existing file are left untouched.
func Touch(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, "unable to close %s", path)
	}
	return nil
}

// CreateDirectory creates a directory at path, along with any missing parents.
// An existing directory is not an error.
func CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return errors.Wrapf(err, "unable to create directory %s", path)
	}
	return nil
}
