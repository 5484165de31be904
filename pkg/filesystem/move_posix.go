//go:build !windows

package filesystem

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/unix"
)

// isCrossDevice determines whether or not a rename error indicates that the
// endpoints reside on different devices.
func isCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}
