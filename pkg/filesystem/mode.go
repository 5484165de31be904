package filesystem

import (
	"strconv"

	"github.com/pkg/errors"
)

// Mode is a raw file mode in POSIX st_mode layout: the low 12 bits hold the
// permission and special bits and the bits under ModeTypeMask encode the entry
// type. On Windows, modes are synthesized in the same layout from the os
// package's FileMode so that they can be handled uniformly.
type Mode uint32

const (
	// ModeTypeMask is a bit mask that isolates type information. After masking,
	// the resulting value can be compared with any of the ModeType* values
	// (other than ModeTypeMask).
	ModeTypeMask = Mode(0170000)
	// ModeTypeSocket represents a socket.
	ModeTypeSocket = Mode(0140000)
	// ModeTypeSymbolicLink represents a symbolic link.
	ModeTypeSymbolicLink = Mode(0120000)
	// ModeTypeFile represents a regular file.
	ModeTypeFile = Mode(0100000)
	// ModeTypeBlockDevice represents a block device.
	ModeTypeBlockDevice = Mode(0060000)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(0040000)
	// ModeTypeCharacterDevice represents a character device.
	ModeTypeCharacterDevice = Mode(0020000)
	// ModeTypeFIFO represents a named pipe.
	ModeTypeFIFO = Mode(0010000)

	// ModeEditableMask isolates the bits that a user is allowed to edit: the
	// permission bits plus the setuid, setgid, and sticky bits.
	ModeEditableMask = Mode(07777)
	// ModePermissionsMask is a bit mask that isolates portable permission bits.
	ModePermissionsMask = Mode(0777)

	// ModeSetUID is the set-user-ID bit.
	ModeSetUID = Mode(04000)
	// ModeSetGID is the set-group-ID bit.
	ModeSetGID = Mode(02000)
	// ModeSticky is the sticky bit.
	ModeSticky = Mode(01000)

	// ModePermissionUserRead is the user readable bit.
	ModePermissionUserRead = Mode(0400)
	// ModePermissionUserWrite is the user writable bit.
	ModePermissionUserWrite = Mode(0200)
	// ModePermissionUserExecute is the user executable bit.
	ModePermissionUserExecute = Mode(0100)
	// ModePermissionGroupRead is the group readable bit.
	ModePermissionGroupRead = Mode(0040)
	// ModePermissionGroupWrite is the group writable bit.
	ModePermissionGroupWrite = Mode(0020)
	// ModePermissionGroupExecute is the group executable bit.
	ModePermissionGroupExecute = Mode(0010)
	// ModePermissionOthersRead is the others readable bit.
	ModePermissionOthersRead = Mode(0004)
	// ModePermissionOthersWrite is the others writable bit.
	ModePermissionOthersWrite = Mode(0002)
	// ModePermissionOthersExecute is the others executable bit.
	ModePermissionOthersExecute = Mode(0001)
)

// Type returns the type bits of the mode.
func (m Mode) Type() Mode {
	return m & ModeTypeMask
}

// IsDirectory returns whether or not the mode describes a directory.
func (m Mode) IsDirectory() bool {
	return m.Type() == ModeTypeDirectory
}

// IsSymbolicLink returns whether or not the mode describes a symbolic link.
func (m Mode) IsSymbolicLink() bool {
	return m.Type() == ModeTypeSymbolicLink
}

// Editable returns the user-editable (low 12) bits of the mode.
func (m Mode) Editable() Mode {
	return m & ModeEditableMask
}

// ParseMode parses a user-specified octal string and verifies that it is
// limited to the bits specified in mask. It allows, but does not require, the
// string to begin with a 0 (or several 0s). The provided string must not be
// empty.
func ParseMode(value string, mask Mode) (Mode, error) {
	if m, err := strconv.ParseUint(value, 8, 32); err != nil {
		return 0, errors.Wrap(err, "unable to parse numeric value")
	} else if mode := Mode(m); mode&mask != mode {
		return 0, errors.New("mode contains disallowed bits")
	} else {
		return mode, nil
	}
}

// ReplacePermissions returns original with its low 12 bits replaced by those
// of value. Type bits and any other bits of original are preserved verbatim.
func ReplacePermissions(original, value Mode) Mode {
	return (original &^ ModeEditableMask) | (value & ModeEditableMask)
}

// PermissionsChanged returns whether or not the editable bits of original
// differ from value.
func PermissionsChanged(original, value Mode) bool {
	return original.Editable() != value&ModeEditableMask
}

// UnmarshalText implements the text unmarshalling interface used when loading
// from YAML files. Both octal and symbolic forms are accepted.
func (m *Mode) UnmarshalText(textBytes []byte) error {
	result, err := ParsePermissions(string(textBytes))
	if err != nil {
		return err
	}
	*m = result
	return nil
}
