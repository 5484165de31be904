package cmd

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/dirbuf-io/dirbuf/pkg/logging"
)

func init() {
	// Silence the standard logger until logging is explicitly enabled.
	log.SetOutput(io.Discard)
}

// EnableLogging routes the standard logger to standard error and returns a
// root logger for the specified level. If level is LevelDisabled, output stays
// silenced and the returned logger emits nothing.
func EnableLogging(level logging.Level) *logging.Logger {
	if level == logging.LevelDisabled || PerformingShellCompletion {
		return nil
	}
	var output io.Writer = os.Stderr
	if StandardErrorIsTerminal() {
		output = color.Error
	}
	log.SetOutput(output)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logging.NewLogger(level)
}
