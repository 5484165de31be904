//go:build !windows

package location

import (
	"path/filepath"
)

// toNative converts an abstract path to a native path. Abstract and native
// paths coincide on POSIX systems.
func toNative(p string) string {
	return filepath.Clean(p)
}

// fromNative converts a native path to an abstract path.
func fromNative(native string) string {
	return filepath.ToSlash(filepath.Clean(native))
}
