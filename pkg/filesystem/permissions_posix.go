//go:build !windows

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// PermissionsSupported indicates whether or not the platform supports POSIX
// permission bits.
const PermissionsSupported = true

// SetPermissions sets the editable bits of the entry at path (following
// symbolic links) to those of mode. Bits outside ModeEditableMask are ignored.
func SetPermissions(path string, mode Mode) error {
	if err := unix.Chmod(path, uint32(mode&ModeEditableMask)); err != nil {
		return &os.PathError{Op: "chmod", Path: path, Err: err}
	}
	return nil
}
