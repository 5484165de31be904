// Package visibility provides the hidden-entry filter applied when displaying
// listings. Patterns use doublestar glob syntax and are matched against entry
// names. A leading '!' reveals matching entries hidden by earlier patterns and
// a trailing '/' restricts a pattern to directories.
package visibility

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/cache"
)

// pattern is a single parsed visibility pattern.
type pattern struct {
	// negated indicates whether or not the pattern reveals entries.
	negated bool
	// directoryOnly indicates whether or not the pattern only applies to
	// directories.
	directoryOnly bool
	// glob is the glob used for matching.
	glob string
}

// newPattern validates and parses a pattern.
func newPattern(specification string) (*pattern, error) {
	// Handle negation.
	var negated bool
	if specification != "" && specification[0] == '!' {
		negated = true
		specification = specification[1:]
	}

	// Handle directory restriction.
	var directoryOnly bool
	if l := len(specification); l > 0 && specification[l-1] == '/' {
		directoryOnly = true
		specification = specification[:l-1]
	}

	// Ensure that something remains.
	if specification == "" {
		return nil, errors.New("empty pattern")
	}

	// Validate the glob by matching against a non-empty name, otherwise bad
	// pattern errors won't be detected.
	if _, err := doublestar.Match(specification, "a"); err != nil {
		return nil, errors.Wrap(err, "unable to validate pattern")
	}

	// Success.
	return &pattern{negated: negated, directoryOnly: directoryOnly, glob: specification}, nil
}

// matches determines whether or not the pattern matches an entry.
func (p *pattern) matches(name string, directory bool) bool {
	if p.directoryOnly && !directory {
		return false
	}
	match, _ := doublestar.Match(p.glob, name)
	return match
}

// Filter decides which entries are hidden from display.
type Filter struct {
	// patterns are the parsed patterns in order.
	patterns []*pattern
}

// NewFilter creates a filter from a list of patterns. Later patterns take
// precedence over earlier ones.
func NewFilter(patterns []string) (*Filter, error) {
	parsed := make([]*pattern, len(patterns))
	for i, specification := range patterns {
		p, err := newPattern(specification)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid pattern '%s'", specification)
		}
		parsed[i] = p
	}
	return &Filter{patterns: parsed}, nil
}

// EnsurePatternValid ensures that a pattern is valid.
func EnsurePatternValid(specification string) error {
	_, err := newPattern(specification)
	return err
}

// Hidden determines whether or not an entry with the specified name is hidden.
// A nil filter hides nothing.
func (f *Filter) Hidden(name string, directory bool) bool {
	if f == nil {
		return false
	}
	var hidden bool
	for _, p := range f.patterns {
		if p.negated == !hidden {
			continue
		}
		if p.matches(name, directory) {
			hidden = !p.negated
		}
	}
	return hidden
}

// Apply returns the entries that aren't hidden, preserving order.
func (f *Filter) Apply(entries []*cache.Entry) []*cache.Entry {
	result := make([]*cache.Entry, 0, len(entries))
	for _, entry := range entries {
		if !f.Hidden(entry.Name, entry.Type == cache.EntryTypeDirectory) {
			result = append(result, entry)
		}
	}
	return result
}
