//go:build !windows

package filesystem

import (
	"os"

	"github.com/pkg/errors"

	"golang.org/x/sys/unix"
)

// inGroup returns whether or not the process is a member of the specified
// group, either as its effective group or as a supplementary group.
func inGroup(gid int) (bool, error) {
	if os.Getegid() == gid {
		return true, nil
	}
	groups, err := os.Getgroups()
	if err != nil {
		return false, errors.Wrap(err, "unable to query supplementary groups")
	}
	for _, g := range groups {
		if g == gid {
			return true, nil
		}
	}
	return false, nil
}

// IsWritable determines whether or not the directory at path is writable by
// the current process according to its permission bits. The owner bits apply
// if the process owns the directory, the group bits apply if the process is a
// member of the directory's group, and the others bits apply otherwise.
func IsWritable(path string) (bool, error) {
	// Query metadata.
	var metadata unix.Stat_t
	if err := unix.Stat(path, &metadata); err != nil {
		return false, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	mode := Mode(metadata.Mode)

	// Check the relevant bits.
	if int(metadata.Uid) == os.Geteuid() {
		return mode&ModePermissionUserWrite != 0, nil
	} else if member, err := inGroup(int(metadata.Gid)); err != nil {
		return false, err
	} else if member {
		return mode&ModePermissionGroupWrite != 0, nil
	}
	return mode&ModePermissionOthersWrite != 0, nil
}
