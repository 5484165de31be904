package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"golang.org/x/sys/windows"
)

// symbolicLinkFlagAllowUnprivilegedCreate allows symbolic link creation
// without elevation when developer mode is enabled.
const symbolicLinkFlagAllowUnprivilegedCreate = 0x2

// CreateSymbolicLink creates a symbolic link at path pointing to target. The
// target, resolved relative to the directory containing the link, is probed to
// determine whether a directory link is required.
func CreateSymbolicLink(target, path string) error {
	target = filepath.FromSlash(target)

	// Determine the link flavor.
	flags := uint32(symbolicLinkFlagAllowUnprivilegedCreate)
	if info, err := os.Stat(resolveLinkTarget(path, target)); err == nil && info.IsDir() {
		flags |= windows.SYMBOLIC_LINK_FLAG_DIRECTORY
	}

	// Convert paths.
	pathUTF16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return errors.Wrap(err, "unable to convert link path")
	}
	targetUTF16, err := windows.UTF16PtrFromString(target)
	if err != nil {
		return errors.Wrap(err, "unable to convert link target")
	}

	// Create the link.
	if err := windows.CreateSymbolicLink(pathUTF16, targetUTF16, flags); err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: path, Err: err}
	}
	return nil
}
