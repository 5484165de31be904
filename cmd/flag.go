package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/dirbuf-io/dirbuf/pkg/logging"
)

// LevelFlag is a command line flag value holding a log level name.
type LevelFlag struct {
	// level is the parsed level.
	level logging.Level
	// specified indicates whether or not the flag was set.
	specified bool
}

// Ensure that LevelFlag implements pflag.Value.
var _ pflag.Value = (*LevelFlag)(nil)

// String implements pflag.Value.String.
func (f *LevelFlag) String() string {
	if !f.specified {
		return ""
	}
	return f.level.String()
}

// Set implements pflag.Value.Set.
func (f *LevelFlag) Set(value string) error {
	level, ok := logging.NameToLevel(value)
	if !ok {
		return errors.Errorf("invalid log level: %s", value)
	}
	f.level = level
	f.specified = true
	return nil
}

// Type implements pflag.Value.Type.
func (f *LevelFlag) Type() string {
	return "level"
}

// Level returns the parsed level and whether or not the flag was set.
func (f *LevelFlag) Level() (logging.Level, bool) {
	return f.level, f.specified
}
