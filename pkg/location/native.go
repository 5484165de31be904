package location

// ToNative converts a location's abstract path to a native OS path. The
// directory convention is dropped except for roots.
func (l Location) ToNative() string {
	return ToNative(l.Path)
}

// FromNative creates a location for a native OS path. If directory is true,
// the location uses the directory convention.
func FromNative(scheme, native string, directory bool) Location {
	p := fromNative(native)
	if directory {
		p = AsDirectory(p)
	}
	return Location{Scheme: scheme, Path: p}
}

// ToNative converts an abstract path to a native OS path.
func ToNative(p string) string {
	return toNative(p)
}
