package filesystem

import (
	"strings"

	"github.com/pkg/errors"
)

// permissionTriplet describes how one read/write/execute triplet is encoded in
// the symbolic representation.
type permissionTriplet struct {
	// read, write, and execute are the permission bits for the triplet.
	read, write, execute Mode
	// special is the special bit that shares the execute position.
	special Mode
	// specialExecutable and specialOnly are the characters used in the execute
	// position when the special bit is set with and without the execute bit.
	specialExecutable, specialOnly byte
}

// permissionTriplets are the user, group, and others triplets, in display
// order.
var permissionTriplets = [3]permissionTriplet{
	{ModePermissionUserRead, ModePermissionUserWrite, ModePermissionUserExecute, ModeSetUID, 's', 'S'},
	{ModePermissionGroupRead, ModePermissionGroupWrite, ModePermissionGroupExecute, ModeSetGID, 's', 'S'},
	{ModePermissionOthersRead, ModePermissionOthersWrite, ModePermissionOthersExecute, ModeSticky, 't', 'T'},
}

// typeCharacter returns the leading type character of the long permission
// representation.
func typeCharacter(mode Mode) byte {
	switch mode.Type() {
	case ModeTypeDirectory:
		return 'd'
	case ModeTypeSymbolicLink:
		return 'l'
	case ModeTypeCharacterDevice:
		return 'c'
	case ModeTypeBlockDevice:
		return 'b'
	case ModeTypeFIFO:
		return 'p'
	case ModeTypeSocket:
		return 's'
	default:
		return '-'
	}
}

// FormatPermissionBits renders the editable bits of a mode as a 9-character
// symbolic string (e.g. "rwxr-sr-T").
func FormatPermissionBits(mode Mode) string {
	var result [9]byte
	for t, triplet := range permissionTriplets {
		offset := t * 3
		result[offset], result[offset+1], result[offset+2] = '-', '-', '-'
		if mode&triplet.read != 0 {
			result[offset] = 'r'
		}
		if mode&triplet.write != 0 {
			result[offset+1] = 'w'
		}
		executable := mode&triplet.execute != 0
		if mode&triplet.special != 0 {
			if executable {
				result[offset+2] = triplet.specialExecutable
			} else {
				result[offset+2] = triplet.specialOnly
			}
		} else if executable {
			result[offset+2] = 'x'
		}
	}
	return string(result[:])
}

// FormatPermissions renders a mode using the conventional 10-character
// representation: a type character followed by the symbolic permission bits.
func FormatPermissions(mode Mode) string {
	return string(typeCharacter(mode)) + FormatPermissionBits(mode)
}

// parsePermissionBits parses a 9-character symbolic permission string.
func parsePermissionBits(value string) (Mode, error) {
	var result Mode
	for t, triplet := range permissionTriplets {
		offset := t * 3
		switch value[offset] {
		case 'r':
			result |= triplet.read
		case '-':
		default:
			return 0, errors.Errorf("invalid read character '%c'", value[offset])
		}
		switch value[offset+1] {
		case 'w':
			result |= triplet.write
		case '-':
		default:
			return 0, errors.Errorf("invalid write character '%c'", value[offset+1])
		}
		switch c := value[offset+2]; c {
		case 'x':
			result |= triplet.execute
		case '-':
		case triplet.specialExecutable:
			result |= triplet.execute | triplet.special
		case triplet.specialOnly:
			result |= triplet.special
		default:
			return 0, errors.Errorf("invalid execute character '%c'", c)
		}
	}
	return result, nil
}

// ParsePermissions parses a permission specification into its 12-bit value.
// It accepts the 10-character long form (whose type character is ignored), the
// 9-character symbolic form, or an octal string of between one and four
// digits.
func ParsePermissions(value string) (Mode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("empty permission specification")
	}

	// Octal specifications are short and purely numeric.
	if len(value) <= 4 && strings.Trim(value, "01234567") == "" {
		return ParseMode(value, ModeEditableMask)
	}

	// Handle symbolic specifications.
	switch len(value) {
	case 10:
		if strings.IndexByte("-dlcbps", value[0]) == -1 {
			return 0, errors.Errorf("invalid type character '%c'", value[0])
		}
		return parsePermissionBits(value[1:])
	case 9:
		return parsePermissionBits(value)
	default:
		return 0, errors.Errorf("invalid permission specification: %s", value)
	}
}
