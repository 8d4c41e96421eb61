package engine

import "errors"

var (
	// ErrNoDocument indicates a command that needs the project document ran
	// without one configured.
	ErrNoDocument = errors.New("no project document configured")

	// ErrNoAnchor indicates a placement without any way to pick an anchor.
	ErrNoAnchor = errors.New("no anchor element available")
)
