package filesystem

import (
	"github.com/pkg/errors"

	"golang.org/x/sys/windows"
)

// isCrossDevice determines whether or not a rename error indicates that the
// endpoints reside on different volumes.
func isCrossDevice(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
}
