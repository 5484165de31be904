package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// TestNormalizeDirectoryConvention verifies that existing directories gain a
// trailing separator and that missing paths keep their convention.
func TestNormalizeDirectoryConvention(t *testing.T) {
	adapter, _, _ := newTestAdapter(t, Options{})
	native, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal("unable to resolve temporary directory:", err)
	}
	if err := os.Mkdir(filepath.Join(native, "sub"), 0755); err != nil {
		t.Fatal("unable to create directory:", err)
	}

	// An existing directory referenced without a trailing separator.
	normalized, err := adapter.Normalize(fileLocation(filepath.Join(native, "sub")))
	if err != nil {
		t.Fatal("normalization failed:", err)
	} else if !normalized.IsDirectory() || normalized != directoryLocation(filepath.Join(native, "sub")) {
		t.Error("existing directory normalized incorrectly:", normalized)
	}

	// A missing directory referenced with a trailing separator.
	normalized, err = adapter.Normalize(directoryLocation(filepath.Join(native, "new")))
	if err != nil {
		t.Fatal("normalization failed:", err)
	} else if !normalized.IsDirectory() {
		t.Error("missing directory lost trailing separator:", normalized)
	}

	// A missing file.
	normalized, err = adapter.Normalize(fileLocation(filepath.Join(native, "file")))
	if err != nil {
		t.Fatal("normalization failed:", err)
	} else if normalized.IsDirectory() {
		t.Error("missing file gained trailing separator:", normalized)
	}

	// Foreign schemes are rejected.
	if _, err := adapter.Normalize(location.Location{Scheme: "s3", Path: "/a"}); err == nil {
		t.Error("foreign location normalized")
	}
}

// TestNormalizePathRelative verifies normalization of relative native paths.
func TestNormalizePathRelative(t *testing.T) {
	workingDirectory, err := os.Getwd()
	if err != nil {
		t.Fatal("unable to compute working directory:", err)
	}
	canonical, err := filepath.EvalSymlinks(workingDirectory)
	if err != nil {
		t.Fatal("unable to resolve working directory:", err)
	}
	normalized, err := NormalizePath(".", false)
	if err != nil {
		t.Fatal("normalization failed:", err)
	}
	if normalized != directoryLocation(canonical) {
		t.Error("working directory normalized incorrectly:", normalized)
	}
}
