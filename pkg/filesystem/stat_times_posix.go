//go:build !windows && !darwin && !netbsd && !freebsd

package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// extractTimes extracts timestamps from a Stat_t structure. It's necessary
// since not all POSIX platforms use the same struct field names for these
// values. Platforms in this group don't expose a birth time through stat.
func extractTimes(metadata *unix.Stat_t) (birth, modification, access, change time.Time) {
	modification = time.Unix(metadata.Mtim.Unix())
	access = time.Unix(metadata.Atim.Unix())
	change = time.Unix(metadata.Ctim.Unix())
	return
}
