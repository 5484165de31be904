//go:build !windows

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// newStat converts raw stat metadata to a snapshot.
func newStat(metadata *unix.Stat_t) *Stat {
	birth, modification, access, change := extractTimes(metadata)
	return &Stat{
		Size:             uint64(metadata.Size),
		Mode:             Mode(metadata.Mode),
		UID:              int(metadata.Uid),
		GID:              int(metadata.Gid),
		BirthTime:        birth,
		ModificationTime: modification,
		AccessTime:       access,
		ChangeTime:       change,
	}
}

// Lstat returns a metadata snapshot for path without following a trailing
// symbolic link. Errors are of type *os.PathError.
func Lstat(path string) (*Stat, error) {
	var metadata unix.Stat_t
	if err := unix.Lstat(path, &metadata); err != nil {
		return nil, &os.PathError{Op: "lstat", Path: path, Err: err}
	}
	return newStat(&metadata), nil
}

// StatFollow returns a metadata snapshot for path, following symbolic links.
// Errors are of type *os.PathError.
func StatFollow(path string) (*Stat, error) {
	var metadata unix.Stat_t
	if err := unix.Stat(path, &metadata); err != nil {
		return nil, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return newStat(&metadata), nil
}
