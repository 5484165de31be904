package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// extractTimes extracts timestamps from a Stat_t structure.
func extractTimes(metadata *unix.Stat_t) (birth, modification, access, change time.Time) {
	birth = time.Unix(metadata.Btim.Unix())
	modification = time.Unix(metadata.Mtim.Unix())
	access = time.Unix(metadata.Atim.Unix())
	change = time.Unix(metadata.Ctim.Unix())
	return
}
