// Package terminal provides utilities for printing untrusted text, such as
// entry names, to terminals.
package terminal

import (
	"strings"
)

// controlCharacterNeutralizer is a string replacer that neutralizes terminal
// control characters along with the separators used by line-oriented output.
var controlCharacterNeutralizer = strings.NewReplacer(
	"\x1b", "^[",
	"\r", "\\r",
	"\n", "\\n",
	"\t", "\\t",
)

// NeutralizeControlCharacters returns a copy of a string with any terminal
// control characters neutralized.
func NeutralizeControlCharacters(value string) string {
	return controlCharacterNeutralizer.Replace(value)
}
