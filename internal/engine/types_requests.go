package engine

import "github.com/danieljhkim/combos/internal/combo"

// PlaceRequest represents a request to place a combination.
type PlaceRequest struct {
	// Name selects the combination; empty prompts for one
	Name string

	// AnchorElementID selects the anchor element; empty prompts for one
	AnchorElementID string

	// Anchor is an explicit anchor point and takes precedence over elements
	Anchor *combo.Point

	// DryRun builds the plan without creating anything
	DryRun bool
}

// ImportRequest represents a request to import an exchange document.
type ImportRequest struct {
	// Replace discards the stored collection instead of merging into it
	Replace bool
}
