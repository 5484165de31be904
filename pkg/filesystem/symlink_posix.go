//go:build !windows

package filesystem

import (
	"os"
)

// CreateSymbolicLink creates a symbolic link at path pointing to target.
func CreateSymbolicLink(target, path string) error {
	return os.Symlink(target, path)
}
