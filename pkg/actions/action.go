// Package actions defines the filesystem mutations that can be rendered and
// performed by adapters, along with decoding of YAML action files.
package actions

import (
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// Action is a single requested mutation. The set of implementations is closed:
// Create, Delete, Move, Copy, and Chmod.
type Action interface {
	// Kind returns the lowercase name of the action kind.
	Kind() string
	// Target returns the primary location affected by the action. For moves
	// and copies, this is the source.
	Target() location.Location
	// isAction seals the interface.
	isAction()
}

// Create creates an entry.
type Create struct {
	// Location is the location of the entry to create.
	Location location.Location
	// EntryType is the type of entry to create.
	EntryType cache.EntryType
	// LinkTarget is the target for link entries.
	LinkTarget string
}

// Delete recursively removes an entry.
type Delete struct {
	// Location is the location of the entry to delete.
	Location location.Location
	// EntryType is the type of the entry.
	EntryType cache.EntryType
}

// Move recursively relocates an entry within a single adapter.
type Move struct {
	// Source is the current location of the entry.
	Source location.Location
	// Destination is the new location of the entry.
	Destination location.Location
	// EntryType is the type of the entry.
	EntryType cache.EntryType
}

// Copy recursively duplicates an entry within a single adapter.
type Copy struct {
	// Source is the location of the entry to copy.
	Source location.Location
	// Destination is the location of the copy.
	Destination location.Location
	// EntryType is the type of the entry.
	EntryType cache.EntryType
}

// Chmod replaces the editable permission bits of an entry.
type Chmod struct {
	// Location is the location of the entry.
	Location location.Location
	// Value holds the new permission bits. Only the low 12 bits are used.
	Value filesystem.Mode
	// EntryType is the type of the entry.
	EntryType cache.EntryType
}

func (Create) Kind() string { return "create" }
func (Delete) Kind() string { return "delete" }
func (Move) Kind() string   { return "move" }
func (Copy) Kind() string   { return "copy" }
func (Chmod) Kind() string  { return "chmod" }

func (a Create) Target() location.Location { return a.Location }
func (a Delete) Target() location.Location { return a.Location }
func (a Move) Target() location.Location   { return a.Source }
func (a Copy) Target() location.Location   { return a.Source }
func (a Chmod) Target() location.Location  { return a.Location }

func (Create) isAction() {}
func (Delete) isAction() {}
func (Move) isAction()   {}
func (Copy) isAction()   {}
func (Chmod) isAction()  {}
