//go:build darwin || netbsd

package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// extractTimes extracts timestamps from a Stat_t structure.
func extractTimes(metadata *unix.Stat_t) (birth, modification, access, change time.Time) {
	birth = time.Unix(metadata.Birthtimespec.Unix())
	modification = time.Unix(metadata.Mtimespec.Unix())
	access = time.Unix(metadata.Atimespec.Unix())
	change = time.Unix(metadata.Ctimespec.Unix())
	return
}
