package filesystem

const (
	// TemporaryNamePrefix is the file name prefix used for all temporary files
	// and directories created by dirbuf. It may be suffixed with additional
	// elements if desired.
	TemporaryNamePrefix = ".dirbuf-"

	// copyStagingPrefix is the prefix used for the staging sibling into which
	// recursive copies are performed before being renamed into place.
	copyStagingPrefix = TemporaryNamePrefix + "copy-"
)
