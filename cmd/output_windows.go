package cmd

const (
	// statusLineFormat is the format string to use for status line printing.
	// Console carriage return wipes don't work once the last column of a line
	// has been written, so content is limited to 79 characters.
	statusLineFormat = "\r%-79.79s"
	// statusLineClearFormat is the format string to use for printing an empty
	// string to clear the status line. It returns the cursor to the beginning
	// of the line.
	statusLineClearFormat = statusLineFormat + "\r"
)
