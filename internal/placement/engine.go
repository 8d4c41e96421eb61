// Package placement materializes a combination as host instances.
//
// The engine walks a plan item by item: resolve the catalog reference,
// activate it if the host requires that, then attempt every repetition.
// Failures are counted and reported, never raised; the batch always runs to
// the end. Whatever unit of work the host uses to group the created
// instances belongs to the caller, which decides to commit or discard.
package placement

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/planner"
)

// Result summarizes one placement batch.
type Result struct {
	// SetName is the placed combination
	SetName string

	// TotalPlaced counts successful instantiations
	TotalPlaced int

	// Failed counts attempts that did not produce an instance,
	// including every attempt of an item whose activation failed
	Failed int

	// Missing lists distinct "family : type" identities that did not resolve,
	// in first-seen order
	Missing []string

	// Skipped lists items the plan left out
	Skipped []planner.Skip

	// Placed holds the handles of created instances
	Placed []catalog.InstanceHandle
}

// Report renders the user-facing summary.
func (r *Result) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Placed %d instances from combination '%s'.", r.TotalPlaced, r.SetName)

	if len(r.Missing) > 0 {
		b.WriteString("\n\nThe following items were missing:\n")
		for _, m := range r.Missing {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}
	if r.Failed > 0 {
		if len(r.Missing) == 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\n%d instance(s) could not be created.", r.Failed)
	}

	return b.String()
}

// Engine executes placement plans.
type Engine struct {
	logger *slog.Logger
}

// New creates an Engine. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Place plans and executes set at anchor against host.
func (e *Engine) Place(set combo.Set, anchor combo.Point, host catalog.Host) *Result {
	return e.Execute(planner.Build(set, anchor), host)
}

// Execute runs a plan against host.
func (e *Engine) Execute(plan *planner.Plan, host catalog.Host) *Result {
	result := &Result{
		SetName: plan.SetName,
		Missing: []string{},
		Skipped: append([]planner.Skip(nil), plan.Skipped...),
		Placed:  []catalog.InstanceHandle{},
	}
	seenMissing := make(map[string]bool)

	for _, step := range plan.Steps {
		item, err := host.Resolve(step.Item.CatalogItemID)
		if err != nil {
			identity := step.Item.DisplayIdentity()
			if !errors.Is(err, catalog.ErrNotFound) {
				e.logger.Debug("catalog lookup failed", "item", identity, "id", step.Item.CatalogItemID, "error", err)
			}
			if !seenMissing[identity] {
				seenMissing[identity] = true
				result.Missing = append(result.Missing, identity)
			}
			continue
		}

		if item.RequiresActivation() {
			if err := host.Activate(item); err != nil {
				e.logger.Debug("activation failed", "item", item.DisplayIdentity(), "error", err)
				result.Failed += step.Count
				continue
			}
			item.Active = true
		}

		for r := 0; r < step.Count; r++ {
			handle, err := host.Instantiate(item, step.Position)
			if err != nil {
				e.logger.Debug("instantiation failed",
					"item", item.DisplayIdentity(), "repetition", r, "position", step.Position.String(), "error", err)
				result.Failed++
				continue
			}
			result.TotalPlaced++
			result.Placed = append(result.Placed, handle)
		}
	}

	e.logger.Info("placement finished",
		"combination", plan.SetName,
		"placed", result.TotalPlaced,
		"failed", result.Failed,
		"missing", len(result.Missing))

	return result
}
