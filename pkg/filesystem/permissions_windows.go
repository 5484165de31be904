package filesystem

import (
	"github.com/pkg/errors"
)

// PermissionsSupported indicates whether or not the platform supports POSIX
// permission bits.
const PermissionsSupported = false

// ErrPermissionsUnsupported is returned by SetPermissions on platforms without
// POSIX permission bits.
var ErrPermissionsUnsupported = errors.New("POSIX permissions not supported on this platform")

// SetPermissions is unsupported on Windows and always returns
// ErrPermissionsUnsupported.
func SetPermissions(_ string, _ Mode) error {
	return ErrPermissionsUnsupported
}
