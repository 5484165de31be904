package filesystem

// IsWritable always reports true on Windows, where POSIX permission bits don't
// govern writability.
func IsWritable(_ string) (bool, error) {
	return true, nil
}
