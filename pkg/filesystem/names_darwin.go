package filesystem

import (
	"golang.org/x/text/unicode/norm"
)

// ComposeName converts a directory entry name to NFC normalization.
func ComposeName(name string) string {
	return norm.NFC.String(name)
}
