package filesystem

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// HomeDirectory is the cached path to the current user's home directory.
var HomeDirectory string

func init() {
	// Grab the current user's home directory. Check that it isn't empty,
	// because when compiling without cgo the $HOME environment variable is used
	// to compute the HomeDir field and we can't guarantee something isn't wonky
	// with the environment.
	if currentUser, err := user.Current(); err != nil {
		panic(errors.Wrap(err, "unable to lookup current user"))
	} else if currentUser.HomeDir == "" {
		panic(errors.New("unable to determine home directory"))
	} else {
		HomeDirectory = currentUser.HomeDir
	}
}

// within returns the path of target relative to base if target is base or lies
// beneath it.
func within(base, target string) (string, bool) {
	if base == "" {
		return "", false
	}
	relative, err := filepath.Rel(base, target)
	if err != nil {
		return "", false
	}
	if relative == ".." || strings.HasPrefix(relative, ".."+string(os.PathSeparator)) {
		return "", false
	}
	return relative, true
}

// Shorten abbreviates an absolute native path for display. Paths within
// workingDirectory are rendered relative to it, paths within homeDirectory are
// rendered with a leading ~ and all other paths are rendered as-is. Either base
// may be empty to disable the corresponding abbreviation. If directory is true,
// a trailing path separator is ensured.
func Shorten(path, workingDirectory, homeDirectory string, directory bool) string {
	// Compute the abbreviated form.
	result := path
	if relative, ok := within(workingDirectory, path); ok {
		result = relative
	} else if relative, ok := within(homeDirectory, path); ok {
		if relative == "." {
			result = "~"
		} else {
			result = "~" + string(os.PathSeparator) + relative
		}
	}

	// Ensure a trailing separator for directories.
	if directory && result != "" && !os.IsPathSeparator(result[len(result)-1]) {
		result += string(os.PathSeparator)
	}

	// Done.
	return result
}
