//go:build !windows

package filesystem

import (
	"github.com/pkg/errors"
)

// copyPermissions applies the editable bits of stat to path.
func copyPermissions(path string, stat *Stat) error {
	if err := SetPermissions(path, stat.Mode); err != nil {
		return errors.Wrap(err, "unable to set permissions")
	}
	return nil
}
