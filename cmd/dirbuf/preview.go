package main

import (
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/dirbuf-io/dirbuf/cmd"

	"github.com/dirbuf-io/dirbuf/pkg/actions"
	"github.com/dirbuf-io/dirbuf/pkg/adapter"
	"github.com/dirbuf-io/dirbuf/pkg/location"
)

// plannedAction is an action paired with the adapter responsible for it.
type plannedAction struct {
	// action is the action.
	action actions.Action
	// handler is the adapter responsible for the action's target.
	handler adapter.Adapter
}

// destination returns the destination of moves and copies.
func destination(action actions.Action) (location.Location, bool) {
	switch action := action.(type) {
	case actions.Move:
		return action.Destination, true
	case actions.Copy:
		return action.Destination, true
	default:
		return location.Location{}, false
	}
}

// plan resolves the adapters responsible for a list of actions. Moves and
// copies between adapters are rejected unless both adapters support transfers.
func (a *application) plan(list []actions.Action) ([]plannedAction, error) {
	result := make([]plannedAction, 0, len(list))
	for i, action := range list {
		handler, err := a.adapters.ForLocation(action.Target())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s action at index %d", action.Kind(), i)
		}
		if target, ok := destination(action); ok {
			other, err := a.adapters.ForLocation(target)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid %s action at index %d", action.Kind(), i)
			} else if other != handler && !(handler.SupportsTransfer() && other.SupportsTransfer()) {
				return nil, errors.Errorf("invalid %s action at index %d: transfer between %s and %s is unsupported",
					action.Kind(), i, handler.Scheme(), other.Scheme(),
				)
			}
		}
		result = append(result, plannedAction{action, handler})
	}
	return result, nil
}

// previewColors maps action kinds to their preview colors.
var previewColors = map[string]*color.Color{
	"create": color.New(color.FgGreen),
	"delete": color.New(color.FgRed),
	"move":   color.New(color.FgCyan),
	"copy":   color.New(color.FgBlue),
	"chmod":  color.New(color.FgYellow),
}

// previewLine renders a planned action. Lines are colorized per action kind
// when standard output is a terminal.
func previewLine(planned plannedAction) string {
	line := planned.handler.Render(planned.action)
	if !cmd.StandardOutputIsTerminal() {
		return line
	}
	if c, ok := previewColors[planned.action.Kind()]; ok {
		return c.Sprint(line)
	}
	return line
}
