// Package location provides the logical location identifiers used to address
// entries independently of OS path syntax, along with translation to and from
// native paths.
package location

import (
	"path"
	"strings"

	"github.com/pkg/errors"
)

const (
	// separator is the separator used in abstract paths.
	separator = "/"
	// schemeDelimiter separates a scheme from its path in formatted locations.
	schemeDelimiter = "://"
)

// Location is a scheme-qualified abstract path. Paths are forward-slash
// separated and absolute. Directory locations carry a trailing separator.
type Location struct {
	// Scheme identifies the adapter responsible for the location.
	Scheme string
	// Path is the abstract path.
	Path string
}

// validScheme determines whether or not a scheme is well-formed: a letter
// followed by letters, digits, '+', '-', or '.'.
func validScheme(scheme string) bool {
	if scheme == "" {
		return false
	}
	for i, r := range scheme {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// Parse parses a formatted location of the form scheme://path.
func Parse(raw string) (Location, error) {
	// Don't allow empty locations.
	if raw == "" {
		return Location{}, errors.New("empty location")
	}

	// Split the scheme from the path.
	index := strings.Index(raw, schemeDelimiter)
	if index == -1 {
		return Location{}, errors.Errorf("location missing scheme: %s", raw)
	}
	scheme, p := raw[:index], raw[index+len(schemeDelimiter):]
	if !validScheme(scheme) {
		return Location{}, errors.Errorf("invalid scheme: %s", scheme)
	} else if !IsAbsolute(p) {
		return Location{}, errors.Errorf("location path is not absolute: %s", p)
	}

	// Success.
	return Location{Scheme: strings.ToLower(scheme), Path: p}, nil
}

// String formats the location as scheme://path.
func (l Location) String() string {
	return l.Scheme + schemeDelimiter + l.Path
}

// IsDirectory returns whether or not the location uses the directory
// convention.
func (l Location) IsDirectory() bool {
	return IsDirectory(l.Path)
}

// AsDirectory returns the location with a trailing separator.
func (l Location) AsDirectory() Location {
	return Location{Scheme: l.Scheme, Path: AsDirectory(l.Path)}
}

// AsFile returns the location without a trailing separator.
func (l Location) AsFile() Location {
	return Location{Scheme: l.Scheme, Path: AsFile(l.Path)}
}

// Join returns the location of name beneath the location.
func (l Location) Join(name string) Location {
	return Location{Scheme: l.Scheme, Path: Join(l.Path, name)}
}

// Parent returns the location of the directory containing the location.
func (l Location) Parent() Location {
	return Location{Scheme: l.Scheme, Path: Parent(l.Path)}
}

// Name returns the base name of the location.
func (l Location) Name() string {
	return Name(l.Path)
}

// IsAbsolute returns whether or not an abstract path is absolute.
func IsAbsolute(p string) bool {
	return strings.HasPrefix(p, separator)
}

// IsDirectory returns whether or not an abstract path uses the directory
// convention.
func IsDirectory(p string) bool {
	return strings.HasSuffix(p, separator)
}

// AsDirectory ensures a trailing separator on an abstract path.
func AsDirectory(p string) string {
	if IsDirectory(p) {
		return p
	}
	return p + separator
}

// AsFile strips any trailing separator from an abstract path. The root path is
// returned unmodified.
func AsFile(p string) string {
	if p == separator {
		return p
	}
	return strings.TrimSuffix(p, separator)
}

// Join joins name onto base. The result uses the directory convention if name
// does.
func Join(base, name string) string {
	result := path.Join(base, name)
	if IsDirectory(name) {
		return AsDirectory(result)
	}
	return result
}

// Parent returns the directory containing an abstract path, in directory form.
func Parent(p string) string {
	return AsDirectory(path.Dir(AsFile(p)))
}

// Name returns the base name of an abstract path, ignoring any trailing
// separator. The root path has an empty name.
func Name(p string) string {
	if p = AsFile(p); p == separator {
		return ""
	}
	return path.Base(p)
}
