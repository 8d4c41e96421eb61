package planner

import (
	"github.com/danieljhkim/combos/internal/combo"
)

// ReasonQuantity is the skip reason for a non-positive quantity.
const ReasonQuantity = "quantity must be at least 1"

// Build generates the placement plan for set at anchor.
//
// Every repetition of an item lands on the same point,
// anchor + (offsetX, offsetY, 0); repetitions are not spread apart.
func Build(set combo.Set, anchor combo.Point) *Plan {
	plan := NewPlan(set.Name, anchor)

	for i, item := range set.Items {
		if item.Quantity < 1 {
			plan.AddSkip(Skip{
				ItemIndex: i,
				Identity:  item.DisplayIdentity(),
				Reason:    ReasonQuantity,
			})
			continue
		}

		plan.AddStep(Step{
			ItemIndex: i,
			Item:      item,
			Position:  anchor.Add(item.OffsetX, item.OffsetY, 0),
			Count:     item.Quantity,
		})
	}

	return plan
}
