package filesystem

import (
	"os"

	"github.com/pkg/errors"
)

// copyPermissions applies the portable permission bits of stat to path. On
// Windows this only controls the read-only attribute.
func copyPermissions(path string, stat *Stat) error {
	if err := os.Chmod(path, os.FileMode(stat.Mode&ModePermissionsMask)); err != nil {
		return errors.Wrap(err, "unable to set permissions")
	}
	return nil
}
