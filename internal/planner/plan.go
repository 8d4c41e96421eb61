package planner

import (
	"github.com/danieljhkim/combos/internal/combo"
)

// Plan represents a plan to place one combination at an anchor.
type Plan struct {
	// SetName is the combination being placed
	SetName string

	// Anchor is the point offsets are measured from
	Anchor combo.Point

	// Steps is the ordered list of per-item steps
	Steps []Step

	// Skipped lists items that contribute no instances
	Skipped []Skip
}

// Step places Count instances of one item.
type Step struct {
	// ItemIndex is the item's position in the combination
	ItemIndex int

	// Item is a copy of the combination item
	Item combo.Item

	// Position is where every repetition is created
	Position combo.Point

	// Count is the number of instantiation attempts
	Count int
}

// Operation is a single instantiation attempt, expanded from a Step.
type Operation struct {
	ItemIndex     int
	Repetition    int
	CatalogItemID string
	Identity      string
	Position      combo.Point
}

// Skip records an item left out of the plan.
type Skip struct {
	ItemIndex int
	Identity  string
	Reason    string
}

// NewPlan creates a new empty Plan.
func NewPlan(setName string, anchor combo.Point) *Plan {
	return &Plan{
		SetName: setName,
		Anchor:  anchor,
		Steps:   []Step{},
		Skipped: []Skip{},
	}
}

// AddStep adds a step to the plan.
func (p *Plan) AddStep(step Step) {
	p.Steps = append(p.Steps, step)
}

// AddSkip records a skipped item.
func (p *Plan) AddSkip(skip Skip) {
	p.Skipped = append(p.Skipped, skip)
}

// HasSkips returns true if any item was left out.
func (p *Plan) HasSkips() bool {
	return len(p.Skipped) > 0
}

// TotalAttempts returns the number of instantiations the plan asks for.
func (p *Plan) TotalAttempts() int {
	total := 0
	for _, s := range p.Steps {
		total += s.Count
	}
	return total
}

// Operations expands the steps into one Operation per attempt.
func (p *Plan) Operations() []Operation {
	ops := make([]Operation, 0, p.TotalAttempts())
	for _, s := range p.Steps {
		for r := 0; r < s.Count; r++ {
			ops = append(ops, Operation{
				ItemIndex:     s.ItemIndex,
				Repetition:    r,
				CatalogItemID: s.Item.CatalogItemID,
				Identity:      s.Item.DisplayIdentity(),
				Position:      s.Position,
			})
		}
	}
	return ops
}
