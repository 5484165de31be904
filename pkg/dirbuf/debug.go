package dirbuf

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for dirbuf. It is
// set automatically based on the DIRBUF_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("DIRBUF_DEBUG") == "1"
}
