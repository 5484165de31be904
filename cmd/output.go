package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// StatusLinePrinter provides printing facilities for dynamically updating
// status lines in the console. It supports colorized printing. A printer whose
// target stream isn't a terminal prints nothing, so that status lines never end
// up in redirected output.
type StatusLinePrinter struct {
	// UseStandardError causes the printer to use standard error for its output
	// instead of standard output (the default).
	UseStandardError bool
	// nonEmpty indicates whether or not the printer has printed any non-empty
	// content to the status line.
	nonEmpty bool
}

// enabled determines whether or not the target stream is a terminal.
func (p *StatusLinePrinter) enabled() bool {
	if p.UseStandardError {
		return StandardErrorIsTerminal()
	}
	return StandardOutputIsTerminal()
}

// output returns the color-aware target stream.
func (p *StatusLinePrinter) output() io.Writer {
	if p.UseStandardError {
		return color.Error
	}
	return color.Output
}

// raw returns the underlying target stream.
func (p *StatusLinePrinter) raw() io.Writer {
	if p.UseStandardError {
		return os.Stderr
	}
	return os.Stdout
}

// Print prints a message to the status line, overwriting any existing content.
// Color escape sequences are supported. Messages are truncated to a
// platform-dependent maximum length and padded appropriately.
func (p *StatusLinePrinter) Print(message string) {
	if !p.enabled() {
		return
	}
	fmt.Fprintf(p.output(), statusLineFormat, message)
	p.nonEmpty = true
}

// Printf formats a message and prints it to the status line.
func (p *StatusLinePrinter) Printf(format string, v ...interface{}) {
	p.Print(fmt.Sprintf(format, v...))
}

// Clear clears any content on the status line and moves the cursor back to the
// beginning of the line.
func (p *StatusLinePrinter) Clear() {
	if !p.nonEmpty {
		return
	}
	fmt.Fprintf(p.output(), statusLineClearFormat, "")
	p.nonEmpty = false
}

// BreakIfNonEmpty prints a newline character if the current line is non-empty.
func (p *StatusLinePrinter) BreakIfNonEmpty() {
	if p.nonEmpty {
		fmt.Fprintln(p.raw())
		p.nonEmpty = false
	}
}
