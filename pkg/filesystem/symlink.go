package filesystem

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// resolveLinkTarget resolves a link target against the directory containing
// the link. Absolute targets are returned unchanged.
func resolveLinkTarget(linkPath, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	return filepath.Join(filepath.Dir(linkPath), target)
}

// ReadSymbolicLink reads the target of the symbolic link at path and returns
// it along with a metadata snapshot of whatever it ultimately resolves to. A
// relative target is resolved against the directory containing the link. If
// the resolved target can't be queried (e.g. the link is dangling), the target
// is still returned and the snapshot is nil. Only a failure to read the link
// itself is an error.
func ReadSymbolicLink(path string) (string, *Stat, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", nil, errors.Wrap(err, "unable to read symbolic link")
	}
	stat, err := StatFollow(resolveLinkTarget(path, target))
	if err != nil {
		return target, nil, nil
	}
	return target, stat, nil
}
