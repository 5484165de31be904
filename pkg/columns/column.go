package columns

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/actions"
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

const (
	// NameSize is the size column.
	NameSize = "size"
	// NamePermissions is the permissions column.
	NamePermissions = "permissions"
	// NameModificationTime is the modification time column.
	NameModificationTime = "mtime"
	// NameChangeTime is the status change time column.
	NameChangeTime = "ctime"
	// NameAccessTime is the access time column.
	NameAccessTime = "atime"
	// NameBirthTime is the birth time column.
	NameBirthTime = "birthtime"
	// NameType is the entry type column.
	NameType = "type"

	// DefaultTimeFormat is the default strftime format for time columns.
	DefaultTimeFormat = "%b %d %H:%M"
)

// Column describes a single metadata column.
type Column struct {
	// Name is the column name.
	Name string
	// NeedsStat indicates whether or not the column requires entry metadata.
	NeedsStat bool
	// render renders the column value for an entry.
	render func(entry *cache.Entry) string
	// compare converts an edited column value to an action, if any.
	compare func(directory location.Location, entry *cache.Entry, text string) (actions.Action, error)
}

// Render renders the column value for an entry. Entries lacking the required
// metadata render as an empty string.
func (c *Column) Render(entry *cache.Entry) string {
	if c.NeedsStat && entry.Meta.Stat == nil {
		return ""
	}
	return c.render(entry)
}

// Editable indicates whether or not the column's values can be edited.
func (c *Column) Editable() bool {
	return c.compare != nil
}

// Compare converts an edited column value for entry (which resides within
// directory) to an action. It returns a nil action if the value is unchanged.
// Columns that aren't editable return an error.
func (c *Column) Compare(directory location.Location, entry *cache.Entry, text string) (actions.Action, error) {
	if c.compare == nil {
		return nil, errors.Errorf("column is not editable: %s", c.Name)
	}
	return c.compare(directory, entry, text)
}

// FormatSize renders a byte count using SI prefixes with one decimal place.
// Counts below 1000 are rendered without a prefix.
func FormatSize(size uint64) string {
	value, prefix := humanize.ComputeSI(float64(size))
	if prefix == "" {
		return fmt.Sprintf("%d", size)
	}
	return fmt.Sprintf("%.1f%s", value, prefix)
}

// renderSize renders the size column.
func renderSize(entry *cache.Entry) string {
	if entry.Type == cache.EntryTypeDirectory {
		return ""
	}
	return FormatSize(entry.Meta.Stat.Size)
}

// renderPermissions renders the permissions column.
func renderPermissions(entry *cache.Entry) string {
	return filesystem.FormatPermissionBits(entry.Meta.Stat.Mode)
}

// renderType renders the type column.
func renderType(entry *cache.Entry) string {
	return entry.Type.String()
}

// timeRenderer creates a renderer for a time column.
func timeRenderer(format string, extract func(*filesystem.Stat) time.Time) func(*cache.Entry) string {
	return func(entry *cache.Entry) string {
		value := extract(entry.Meta.Stat)
		if value.IsZero() {
			return ""
		}
		return strftime.Format(format, value.Local())
	}
}

// comparePermissions converts an edited permissions value to a chmod action.
func comparePermissions(directory location.Location, entry *cache.Entry, text string) (actions.Action, error) {
	// Parse the edited value.
	value, err := filesystem.ParsePermissions(text)
	if err != nil {
		return nil, errors.Wrap(err, "invalid permissions")
	}

	// Compare against the original value.
	if entry.Meta.Stat == nil {
		return nil, errors.Errorf("permissions unknown for %s", entry.Name)
	} else if !filesystem.PermissionsChanged(entry.Meta.Stat.Mode, value) {
		return nil, nil
	}

	// Compute the entry location.
	name := entry.Name
	if entry.Type == cache.EntryTypeDirectory {
		name = location.AsDirectory(name)
	}

	// Generate the action.
	return actions.Chmod{
		Location:  directory.AsDirectory().Join(name),
		Value:     value,
		EntryType: entry.Type,
	}, nil
}
