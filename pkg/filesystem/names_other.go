//go:build !darwin

package filesystem

// ComposeName returns name unmodified on platforms that don't decompose names.
func ComposeName(name string) string {
	return name
}
