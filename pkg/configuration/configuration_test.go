package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dirbuf-io/dirbuf/pkg/logging"
)

// writeConfiguration writes configuration content to a temporary file and
// returns its path.
func writeConfiguration(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}
	return path
}

// TestLoadMissing verifies that a missing file yields the defaults.
func TestLoadMissing(t *testing.T) {
	result, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal("unable to load missing configuration:", err)
	}
	if result.Listing.BatchSize != DefaultBatchSize {
		t.Error("default batch size incorrect:", result.Listing.BatchSize)
	}
	if result.Cache.Capacity != DefaultCacheCapacity {
		t.Error("default cache capacity incorrect:", result.Cache.Capacity)
	}
	if result.Logging.Level != logging.LevelWarn {
		t.Error("default log level incorrect:", result.Logging.Level)
	}
	if len(result.View.Hidden) != 1 || result.View.Hidden[0] != ".*" {
		t.Error("default hidden patterns incorrect:", result.View.Hidden)
	}
}

// TestDefaultValid verifies that the defaults pass validation.
func TestDefaultValid(t *testing.T) {
	if err := Default().EnsureValid(); err != nil {
		t.Error("default configuration invalid:", err)
	}
}

// TestLoadOverrides verifies that file values override defaults while
// unspecified values keep their defaults.
func TestLoadOverrides(t *testing.T) {
	path := writeConfiguration(t, `listing:
  batchSize: 10
  columns: [size, type]
columns:
  timeFormat: "%Y-%m-%d"
logging:
  level: debug
`)
	result, err := Load(path)
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if result.Listing.BatchSize != 10 {
		t.Error("batch size not overridden:", result.Listing.BatchSize)
	}
	if len(result.Listing.Columns) != 2 || result.Listing.Columns[1] != "type" {
		t.Error("columns not overridden:", result.Listing.Columns)
	}
	if result.Columns.TimeFormat != "%Y-%m-%d" {
		t.Error("time format not overridden:", result.Columns.TimeFormat)
	}
	if result.Logging.Level != logging.LevelDebug {
		t.Error("log level not overridden:", result.Logging.Level)
	}
	if result.Cache.Capacity != DefaultCacheCapacity {
		t.Error("cache capacity not defaulted:", result.Cache.Capacity)
	}
}

// TestLoadInvalid verifies that invalid files are rejected.
func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		description string
		content     string
	}{
		{"unknown field", "listing:\n  bogus: 1\n"},
		{"zero batch size", "listing:\n  batchSize: 0\n"},
		{"unknown column", "listing:\n  columns: [color]\n"},
		{"zero capacity", "cache:\n  capacity: 0\n"},
		{"empty time format", "columns:\n  timeFormat: \"\"\n"},
		{"invalid pattern", "view:\n  hidden: [\"[a\"]\n"},
		{"invalid level", "logging:\n  level: loud\n"},
		{"malformed", "listing: [\n"},
	}
	for _, testCase := range testCases {
		if _, err := Load(writeConfiguration(t, testCase.content)); err == nil {
			t.Errorf("configuration with %s loaded successfully", testCase.description)
		}
	}
}

// TestDefaultPath verifies the configuration path computation.
func TestDefaultPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal("unable to compute home directory:", err)
	}
	if path, err := DefaultPath(); err != nil {
		t.Fatal("unable to compute configuration path:", err)
	} else if path != filepath.Join(home, FileName) {
		t.Error("configuration path incorrect:", path)
	}
}
