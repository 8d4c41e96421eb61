// Package prompt holds the interactive dialogs used to author and pick
// combinations.
//
// Every dialog is synchronous and reports whether the user confirmed it.
// A dismissed dialog is not an error: it returns false with a nil error.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/combo"
)

// Action is a choice in the manage loop.
type Action int

const (
	ActionCreate Action = iota + 1
	ActionEdit
	ActionDelete
	ActionClose
)

// String returns the label shown for the action.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "Create"
	case ActionEdit:
		return "Edit"
	case ActionDelete:
		return "Delete"
	case ActionClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Actions lists the manage loop choices in display order.
func Actions() []Action {
	return []Action{ActionCreate, ActionEdit, ActionDelete, ActionClose}
}

// Prompter is the set of dialogs the command layer drives.
type Prompter interface {
	// ChooseAction asks what to do next in the manage loop.
	// Dismissing the dialog returns ActionClose.
	ChooseAction() (Action, error)

	// EditSet authors a new set (existing == nil) or edits a copy of existing.
	// A confirmed result always passes combo.Validate.
	EditSet(existing *combo.Set, items []catalog.Item) (combo.Set, bool, error)

	// SelectSet picks one set and returns its index.
	SelectSet(coll combo.Collection) (int, bool, error)

	// Confirm asks a yes/no question.
	Confirm(title, message string) (bool, error)

	// Notify shows a message and waits for acknowledgement.
	Notify(title, message string)
}

// dismissed maps a dialog error to the confirmed/cancelled contract.
// It returns true when the user backed out of the dialog.
func dismissed(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return true, nil
	}
	return false, err
}
