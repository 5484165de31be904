package filesystem

import (
	"testing"
)

// TestModePermissionMaskIsUnionOfPermissions is a sanity check that
// ModePermissionMask is equal to the union of individual permissions.
func TestModePermissionMaskIsUnionOfPermissions(t *testing.T) {
	permissionUnion := ModePermissionUserRead | ModePermissionUserWrite | ModePermissionUserExecute |
		ModePermissionGroupRead | ModePermissionGroupWrite | ModePermissionGroupExecute |
		ModePermissionOthersRead | ModePermissionOthersWrite | ModePermissionOthersExecute
	if ModePermissionsMask != permissionUnion {
		t.Error("ModePermissionsMask value not equal to union of permissions:", ModePermissionsMask, "!=", permissionUnion)
	}
}

// TestModeEditableMaskIncludesSpecialBits verifies that the editable mask
// covers the permission bits and the special bits but no type bits.
func TestModeEditableMaskIncludesSpecialBits(t *testing.T) {
	if ModeEditableMask != ModePermissionsMask|ModeSetUID|ModeSetGID|ModeSticky {
		t.Error("editable mask does not match permission and special bits")
	}
	if ModeEditableMask&ModeTypeMask != 0 {
		t.Error("editable mask overlaps type mask")
	}
}

// parseModeTestCase represents a test case for ParseMode.
type parseModeTestCase struct {
	// value is the value to parse.
	value string
	// mask is the mask to use in parsing.
	mask Mode
	// expectFailure indicates whether or not parsing failure is expected.
	expectFailure bool
	// expected indicates the expected result in the absence of failure.
	expected Mode
}

// run executes the test in the provided test context.
func (c *parseModeTestCase) run(t *testing.T) {
	// Mark ourselves as a helper function.
	t.Helper()

	// Perform parsing and verify that the expected behavior is observed.
	if result, err := ParseMode(c.value, c.mask); err == nil && c.expectFailure {
		t.Fatal("parsing succeeded when failure was expected")
	} else if err != nil && !c.expectFailure {
		t.Fatal("parsing failed unexpectedly:", err)
	} else if result != c.expected {
		t.Error("parsing result does not match expected:", result, "!=", c.expected)
	}
}

// TestParseMode tests ParseMode.
func TestParseMode(t *testing.T) {
	testCases := []parseModeTestCase{
		{"", ModePermissionsMask, true, 0},
		{"laksjfd", ModePermissionsMask, true, 0},
		{"888", ModePermissionsMask, true, 0},
		{"1000", ModePermissionsMask, true, 0},
		{"1000", ModeEditableMask, false, ModeSticky},
		{"755", ModePermissionsMask, false, 0755},
		{"0644", ModePermissionsMask, false, 0644},
		{"0000755", ModePermissionsMask, false, 0755},
		{"40000000000", ModeEditableMask, true, 0},
	}
	for _, testCase := range testCases {
		testCase.run(t)
	}
}

// TestReplacePermissions verifies that only the editable bits are replaced.
func TestReplacePermissions(t *testing.T) {
	testCases := []struct {
		original Mode
		value    Mode
		expected Mode
	}{
		{0100644, 0755, 0100755},
		{0040755, 0700, 0040700},
		{0100755, 04755, 0104755},
		{0104755, 0644, 0100644},
		{0120777, 0777, 0120777},
	}
	for _, testCase := range testCases {
		if result := ReplacePermissions(testCase.original, testCase.value); result != testCase.expected {
			t.Errorf("replacement of %o with %o produced %o, expected %o",
				testCase.original, testCase.value, result, testCase.expected,
			)
		}
	}
}

// TestPermissionsChanged verifies that change detection only considers the
// editable bits.
func TestPermissionsChanged(t *testing.T) {
	if PermissionsChanged(0100644, 0644) {
		t.Error("type bits considered a permission change")
	}
	if !PermissionsChanged(0100644, 0755) {
		t.Error("permission change not detected")
	}
	if !PermissionsChanged(0100755, 04755) {
		t.Error("setuid change not detected")
	}
}

// TestModeTypeQueries verifies the type query methods.
func TestModeTypeQueries(t *testing.T) {
	if !Mode(0040755).IsDirectory() {
		t.Error("directory mode not identified as directory")
	}
	if Mode(0100644).IsDirectory() {
		t.Error("file mode identified as directory")
	}
	if !Mode(0120777).IsSymbolicLink() {
		t.Error("symbolic link mode not identified as symbolic link")
	}
	if Mode(0104755).Editable() != 04755 {
		t.Error("editable bits incorrect")
	}
}
