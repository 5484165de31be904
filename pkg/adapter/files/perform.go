package files

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/pkg/actions"
	"github.com/dirbuf-io/dirbuf/pkg/cache"
	"github.com/dirbuf-io/dirbuf/pkg/filesystem"
)

// PerformError is returned by PerformAll when an action fails.
type PerformError struct {
	// Index is the index of the failed action.
	Index int
	// Action is the failed action.
	Action actions.Action
	// Err is the underlying error.
	Err error
}

// Error implements error.Error.
func (e *PerformError) Error() string {
	return fmt.Sprintf("unable to perform %s action at index %d: %v", e.Action.Kind(), e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *PerformError) Unwrap() error {
	return e.Err
}

// Perform implements adapter.Adapter.Perform. Moves and copies whose
// destination belongs to another adapter are rejected with an error.
func (a *Adapter) Perform(ctx context.Context, action actions.Action) error {
	// Check for cancellation.
	if err := ctx.Err(); err != nil {
		return err
	}

	// Verify that the action targets this adapter.
	if target := action.Target(); !a.owns(target) {
		return errors.Errorf("location %s does not belong to the filesystem adapter", target)
	}

	// Perform the action.
	a.logger.Debugf("Performing %s action on %s", action.Kind(), action.Target())
	switch action := action.(type) {
	case actions.Create:
		return a.create(action)
	case actions.Delete:
		return filesystem.Remove(action.Location.ToNative())
	case actions.Move:
		if !a.owns(action.Destination) {
			return errors.Errorf("unable to move %s to %s: destination belongs to another adapter", action.Source, action.Destination)
		}
		return filesystem.Move(action.Source.ToNative(), action.Destination.ToNative(), a.logger)
	case actions.Copy:
		if !a.owns(action.Destination) {
			return errors.Errorf("unable to copy %s to %s: destination belongs to another adapter", action.Source, action.Destination)
		}
		return filesystem.Copy(action.Source.ToNative(), action.Destination.ToNative(), a.logger)
	case actions.Chmod:
		return a.chmod(action)
	default:
		return errors.Errorf("unknown action type: %T", action)
	}
}

// create performs creation actions.
func (a *Adapter) create(action actions.Create) error {
	path := action.Location.ToNative()

	// Directories are created along with any missing parents.
	if action.EntryType == cache.EntryTypeDirectory {
		return filesystem.CreateDirectory(path)
	}

	// Ensure that the parent exists.
	if err := filesystem.CreateDirectory(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "unable to create parent directory")
	}

	// Create the entry.
	if action.EntryType == cache.EntryTypeLink {
		if err := filesystem.CreateSymbolicLink(action.LinkTarget, path); err != nil {
			return errors.Wrapf(err, "unable to create symbolic link %s", path)
		}
		return nil
	}
	return filesystem.Touch(path)
}

// chmod performs permission change actions.
func (a *Adapter) chmod(action actions.Chmod) error {
	if !filesystem.PermissionsSupported {
		return errors.New("permission changes are not supported on this platform")
	}
	path := action.Location.ToNative()
	stat, err := filesystem.StatFollow(path)
	if err != nil {
		return errors.Wrapf(err, "unable to query %s", path)
	}
	if err := filesystem.SetPermissions(path, filesystem.ReplacePermissions(stat.Mode, action.Value)); err != nil {
		return errors.Wrapf(err, "unable to change permissions of %s", path)
	}
	return nil
}

// PerformAll performs actions in order, stopping at the first failure, which
// is returned as a *PerformError. Actions performed before the failure remain
// applied. If completed is non-nil, it's invoked after each successful action.
func (a *Adapter) PerformAll(ctx context.Context, list []actions.Action, completed func(index int, action actions.Action)) error {
	for i, action := range list {
		if err := a.Perform(ctx, action); err != nil {
			return &PerformError{Index: i, Action: action, Err: err}
		}
		if completed != nil {
			completed(i, action)
		}
	}
	return nil
}
