package terminal

import (
	"testing"
)

// TestNeutralizeControlCharacters tests NeutralizeControlCharacters.
func TestNeutralizeControlCharacters(t *testing.T) {
	testCases := []struct {
		value    string
		expected string
	}{
		{"", ""},
		{"plain.txt", "plain.txt"},
		{"\x1b[31mred", "^[[31mred"},
		{"a\rb", "a\\rb"},
		{"line\nbreak", "line\\nbreak"},
		{"tab\tbed", "tab\\tbed"},
	}
	for _, testCase := range testCases {
		if result := NeutralizeControlCharacters(testCase.value); result != testCase.expected {
			t.Errorf("neutralization mismatch for %q: %q != %q", testCase.value, result, testCase.expected)
		}
	}
}
