// Package must provides best-effort helpers for cleanup operations whose
// failures can't be meaningfully handled by the caller but should still be
// recorded.
package must

import (
	"io"
	"os"

	"github.com/dirbuf-io/dirbuf/pkg/logging"
)

// Close closes the closer, logging a warning on failure.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

// OSRemove removes the named file or empty directory, logging a warning on
// failure.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}

// OSRemoveAll recursively removes the named path, logging a warning on
// failure.
func OSRemoveAll(name string, logger *logging.Logger) {
	if err := os.RemoveAll(name); err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}

// Succeed logs a warning if err is non-nil, describing the task that failed.
func Succeed(err error, task string, logger *logging.Logger) {
	if err != nil {
		logger.Warnf("Unable to succeed at %s; %s", task, err.Error())
	}
}
