package location

import (
	"path/filepath"
	"strings"
)

// toNative converts an abstract path of the form /C/Users to a native path of
// the form C:\Users.
func toNative(p string) string {
	// Extract the drive component.
	trimmed := strings.TrimPrefix(p, separator)
	if trimmed == "" {
		return `\`
	}
	drive, remaining := trimmed, ""
	if index := strings.Index(trimmed, separator); index != -1 {
		drive, remaining = trimmed[:index], trimmed[index+1:]
	}

	// Handle drive letters.
	if len(drive) == 1 {
		return filepath.Clean(drive + `:\` + filepath.FromSlash(remaining))
	}

	// Anything else is treated as a rooted path on the current drive.
	return filepath.Clean(filepath.FromSlash(p))
}

// fromNative converts a native path of the form C:\Users to an abstract path of
// the form /C/Users.
func fromNative(native string) string {
	native = filepath.Clean(native)
	if volume := filepath.VolumeName(native); len(volume) == 2 && volume[1] == ':' {
		return separator + strings.ToUpper(volume[:1]) + filepath.ToSlash(native[2:])
	}
	return filepath.ToSlash(native)
}
