package engine

import "github.com/danieljhkim/combos/internal/combo"

// SetSummary is one line of a listing.
type SetSummary struct {
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`

	// Instances is the number of instances a full placement attempts
	Instances int `json:"instances"`
}

func summarize(s combo.Set) SetSummary {
	return SetSummary{Name: s.Name, ItemCount: len(s.Items), Instances: s.TotalQuantity()}
}

// ImportResult represents the result of an import.
type ImportResult struct {
	// Imported counts the sets read from the document
	Imported int `json:"imported"`

	// Total is the size of the stored collection afterwards
	Total int `json:"total"`

	// Replaced reports whether the previous collection was discarded
	Replaced bool `json:"replaced"`
}
