package files

import (
	"fmt"

	"github.com/dirbuf-io/dirbuf/pkg/actions"
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// shorten renders a location as an abbreviated native path.
func (a *Adapter) shorten(l location.Location, entryType cache.EntryType) string {
	return filesystem.Shorten(l.ToNative(), a.workingDirectory, a.homeDirectory, entryType == cache.EntryTypeDirectory)
}

// Render implements adapter.Adapter.Render. It panics if a move or copy
// destination belongs to another adapter or if the action type is unknown,
// since callers must exclude both before rendering.
func (a *Adapter) Render(action actions.Action) string {
	switch action := action.(type) {
	case actions.Create:
		line := "CREATE " + a.shorten(action.Location, action.EntryType)
		if action.EntryType == cache.EntryTypeLink {
			line += " -> " + action.LinkTarget
		}
		return line
	case actions.Delete:
		return "DELETE " + a.shorten(action.Location, action.EntryType)
	case actions.Move:
		if !a.owns(action.Destination) {
			panic("move destination belongs to another adapter")
		}
		return fmt.Sprintf("  MOVE %s -> %s",
			a.shorten(action.Source, action.EntryType),
			a.shorten(action.Destination, action.EntryType),
		)
	case actions.Copy:
		if !a.owns(action.Destination) {
			panic("copy destination belongs to another adapter")
		}
		return fmt.Sprintf("  COPY %s -> %s",
			a.shorten(action.Source, action.EntryType),
			a.shorten(action.Destination, action.EntryType),
		)
	case actions.Chmod:
		return fmt.Sprintf("CHMOD %03o %s",
			uint32(action.Value&filesystem.ModeEditableMask),
			a.shorten(action.Location, action.EntryType),
		)
	default:
		panic(fmt.Sprintf("unhandled action type: %T", action))
	}
}
