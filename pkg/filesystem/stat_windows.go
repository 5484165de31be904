package filesystem

import (
	"os"
	"syscall"
	"time"
)

// modeFromFileMode synthesizes a POSIX-layout mode from an os.FileMode.
func modeFromFileMode(mode os.FileMode) Mode {
	var result Mode
	switch {
	case mode&os.ModeSymlink != 0:
		result = ModeTypeSymbolicLink
	case mode.IsDir():
		result = ModeTypeDirectory
	case mode&os.ModeNamedPipe != 0:
		result = ModeTypeFIFO
	case mode&os.ModeSocket != 0:
		result = ModeTypeSocket
	case mode&os.ModeCharDevice != 0:
		result = ModeTypeCharacterDevice
	case mode&os.ModeDevice != 0:
		result = ModeTypeBlockDevice
	default:
		result = ModeTypeFile
	}
	return result | Mode(mode.Perm())
}

// newStat converts os-level metadata to a snapshot.
func newStat(info os.FileInfo) *Stat {
	result := &Stat{
		Size:             uint64(info.Size()),
		Mode:             modeFromFileMode(info.Mode()),
		UID:              -1,
		GID:              -1,
		ModificationTime: info.ModTime(),
		ChangeTime:       info.ModTime(),
	}
	if attributes, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		result.BirthTime = time.Unix(0, attributes.CreationTime.Nanoseconds())
		result.AccessTime = time.Unix(0, attributes.LastAccessTime.Nanoseconds())
	}
	return result
}

// Lstat returns a metadata snapshot for path without following a trailing
// symbolic link. Errors are of type *os.PathError.
func Lstat(path string) (*Stat, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return newStat(info), nil
}

// StatFollow returns a metadata snapshot for path, following symbolic links.
// Errors are of type *os.PathError.
func StatFollow(path string) (*Stat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return newStat(info), nil
}
