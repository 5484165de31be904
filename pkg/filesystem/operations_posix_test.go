//go:build !windows

package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

// TestReadSymbolicLinkRelative verifies that relative targets are resolved
// against the directory containing the link.
func TestReadSymbolicLinkRelative(t *testing.T) {
	directory := t.TempDir()
	if err := os.WriteFile(filepath.Join(directory, "target"), []byte("abc"), 0644); err != nil {
		t.Fatal("unable to create target:", err)
	}
	link := filepath.Join(directory, "link")
	if err := CreateSymbolicLink("target", link); err != nil {
		t.Fatal("unable to create link:", err)
	}
	target, stat, err := ReadSymbolicLink(link)
	if err != nil {
		t.Fatal("unable to read link:", err)
	}
	if target != "target" {
		t.Error("link target incorrect:", target)
	}
	if stat == nil {
		t.Fatal("resolved stat missing")
	} else if stat.Size != 3 {
		t.Error("resolved stat does not describe target")
	}
}

// TestReadSymbolicLinkDangling verifies that dangling links produce a target
// but no stat.
func TestReadSymbolicLinkDangling(t *testing.T) {
	link := filepath.Join(t.TempDir(), "link")
	if err := CreateSymbolicLink("nowhere", link); err != nil {
		t.Fatal("unable to create link:", err)
	}
	target, stat, err := ReadSymbolicLink(link)
	if err != nil {
		t.Fatal("dangling link read failed:", err)
	}
	if target != "nowhere" {
		t.Error("link target incorrect:", target)
	}
	if stat != nil {
		t.Error("dangling link produced stat")
	}
}

// TestReadSymbolicLinkNonLink verifies that reading a regular file fails.
func TestReadSymbolicLinkNonLink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal("unable to create file:", err)
	}
	if _, _, err := ReadSymbolicLink(path); err == nil {
		t.Error("reading non-link succeeded")
	}
}

// TestCopyPreservesLinksAndPermissions verifies that copies recreate symbolic
// links as links and carry over permission bits.
func TestCopyPreservesLinksAndPermissions(t *testing.T) {
	// Create the source hierarchy.
	temporary := t.TempDir()
	source := filepath.Join(temporary, "source")
	if err := os.Mkdir(source, 0750); err != nil {
		t.Fatal("unable to create source:", err)
	}
	script := filepath.Join(source, "script")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal("unable to create script:", err)
	}
	if err := SetPermissions(script, 0754); err != nil {
		t.Fatal("unable to set script permissions:", err)
	}
	if err := CreateSymbolicLink("script", filepath.Join(source, "link")); err != nil {
		t.Fatal("unable to create link:", err)
	}

	// Perform the copy.
	destination := filepath.Join(temporary, "destination")
	if err := Copy(source, destination, nil); err != nil {
		t.Fatal("copy failed:", err)
	}

	// Verify permissions.
	if stat, err := Lstat(filepath.Join(destination, "script")); err != nil {
		t.Fatal("unable to query copied script:", err)
	} else if stat.Mode.Editable() != 0754 {
		t.Errorf("copied script permissions incorrect: %o", stat.Mode.Editable())
	}
	if stat, err := Lstat(destination); err != nil {
		t.Fatal("unable to query copied directory:", err)
	} else if stat.Mode.Editable() != 0750 {
		t.Errorf("copied directory permissions incorrect: %o", stat.Mode.Editable())
	}

	// Verify the link.
	if stat, err := Lstat(filepath.Join(destination, "link")); err != nil {
		t.Fatal("unable to query copied link:", err)
	} else if !stat.IsSymbolicLink() {
		t.Error("copied link is not a symbolic link")
	}
	if target, err := os.Readlink(filepath.Join(destination, "link")); err != nil {
		t.Fatal("unable to read copied link:", err)
	} else if target != "script" {
		t.Error("copied link target incorrect:", target)
	}
}

// TestSetPermissionsPreservesType verifies a round trip through
// ReplacePermissions and SetPermissions.
func TestSetPermissionsPreservesType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	original, err := Lstat(path)
	if err != nil {
		t.Fatal("unable to query file:", err)
	}
	if err := SetPermissions(path, ReplacePermissions(original.Mode, 0755)); err != nil {
		t.Fatal("unable to set permissions:", err)
	}
	if updated, err := Lstat(path); err != nil {
		t.Fatal("unable to query file:", err)
	} else if updated.Mode != ModeTypeFile|0755 {
		t.Errorf("updated mode incorrect: %o", updated.Mode)
	}
}

// TestIsWritable verifies the writability probe against owner bits.
func TestIsWritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	directory := t.TempDir()
	if writable, err := IsWritable(directory); err != nil {
		t.Fatal("unable to probe writability:", err)
	} else if !writable {
		t.Error("temporary directory reported as not writable")
	}
	if err := SetPermissions(directory, 0555); err != nil {
		t.Fatal("unable to set permissions:", err)
	}
	defer SetPermissions(directory, 0755)
	if writable, err := IsWritable(directory); err != nil {
		t.Fatal("unable to probe writability:", err)
	} else if writable {
		t.Error("read-only directory reported as writable")
	}
}

// TestCanonicalizeResolvesLinks verifies that existing paths have symbolic
// links evaluated and missing paths are returned normalized.
func TestCanonicalizeResolvesLinks(t *testing.T) {
	directory, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal("unable to resolve temporary directory:", err)
	}
	target := filepath.Join(directory, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal("unable to create target:", err)
	}
	link := filepath.Join(directory, "link")
	if err := CreateSymbolicLink(target, link); err != nil {
		t.Fatal("unable to create link:", err)
	}
	if canonical, err := Canonicalize(link); err != nil {
		t.Fatal("unable to canonicalize link:", err)
	} else if canonical != target {
		t.Error("canonical path incorrect:", canonical)
	}
	missing := filepath.Join(directory, "missing", "..", "missing")
	if canonical, err := Canonicalize(missing); err != nil {
		t.Fatal("unable to canonicalize missing path:", err)
	} else if canonical != filepath.Join(directory, "missing") {
		t.Error("missing path not normalized:", canonical)
	}
}
