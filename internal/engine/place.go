package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/hostdoc"
	"github.com/danieljhkim/combos/internal/planner"
)

// User-facing placement messages.
const (
	msgNothingToPlace = "There are no saved combinations to place. Use 'manage' first."
	msgNoLocation     = "Selected element does not have a point location."
	msgNoElements     = "The project has no elements to anchor on. Use --at x,y to place at a point."
)

// Place materializes one combination at an anchor. Every instance is created
// inside a single unit of work that is committed once the batch finishes;
// partial failures are reported, not raised.
func (e *Engine) Place(ctx context.Context, req PlaceRequest) Outcome {
	coll := e.registry.List()
	if len(coll) == 0 {
		return cancelled(msgNothingToPlace)
	}

	set, ok, err := e.selectSet(coll, req.Name)
	if err != nil {
		return failed(err)
	}
	if !ok {
		return cancelled("")
	}

	var proj Project
	if req.Anchor == nil || !req.DryRun {
		if proj, err = e.project(); err != nil {
			return failed(err)
		}
		defer proj.Close()
	}

	anchor, out, ok := e.resolveAnchor(proj, req)
	if !ok {
		return out
	}

	plan := planner.Build(set, anchor)
	if req.DryRun {
		o := succeeded(RenderPlan(plan))
		o.Plan = plan
		return o
	}

	uow, err := proj.Begin(ctx)
	if err != nil {
		return failed(err)
	}

	result := e.placer.Execute(plan, uow)

	if err := uow.Commit(); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			e.logger.Warn("rollback after failed commit", "error", rbErr)
		}
		return failed(fmt.Errorf("failed to commit placement of %q: %w", set.Name, err))
	}

	o := succeeded(result.Report())
	o.Plan = plan
	o.Placement = result
	return o
}

func (e *Engine) selectSet(coll combo.Collection, name string) (combo.Set, bool, error) {
	if name != "" {
		idx := coll.IndexOf(name, -1)
		if idx < 0 {
			return combo.Set{}, false, fmt.Errorf("no combination named %q", name)
		}
		return coll[idx].Clone(), true, nil
	}

	if e.dialogs == nil {
		return combo.Set{}, false, errors.New("a combination name is required when not interactive")
	}
	idx, ok, err := e.dialogs.SelectSet(coll)
	if err != nil || !ok {
		return combo.Set{}, false, err
	}
	if idx < 0 || idx >= len(coll) {
		return combo.Set{}, false, fmt.Errorf("selected combination %d out of range", idx)
	}
	return coll[idx].Clone(), true, nil
}

// resolveAnchor derives the anchor point. When ok is false the returned
// Outcome ends the command.
func (e *Engine) resolveAnchor(proj Project, req PlaceRequest) (combo.Point, Outcome, bool) {
	if req.Anchor != nil {
		return *req.Anchor, Outcome{}, true
	}

	elementID := req.AnchorElementID
	if elementID == "" {
		if e.dialogs == nil {
			return combo.Point{}, failed(fmt.Errorf("%w: pass --anchor or --at", ErrNoAnchor)), false
		}
		elements, err := proj.ListElements()
		if err != nil {
			return combo.Point{}, failed(err), false
		}
		if len(elements) == 0 {
			return combo.Point{}, cancelled(msgNoElements), false
		}
		id, ok, err := e.dialogs.SelectAnchor(elements)
		if err != nil {
			return combo.Point{}, failed(err), false
		}
		if !ok {
			return combo.Point{}, cancelled(""), false
		}
		elementID = id
	}

	anchor, err := proj.AnchorFor(elementID)
	switch {
	case errors.Is(err, hostdoc.ErrNoLocation):
		return combo.Point{}, cancelled(msgNoLocation), false
	case err != nil:
		return combo.Point{}, failed(err), false
	}
	return anchor, Outcome{}, true
}

// RenderPlan describes a plan without executing it.
func RenderPlan(plan *planner.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan for combination '%s' at %s: %d instance(s).\n", plan.SetName, plan.Anchor, plan.TotalAttempts())
	for _, step := range plan.Steps {
		fmt.Fprintf(&b, "  %s x%d at %s\n", step.Item.DisplayIdentity(), step.Count, step.Position)
	}
	for _, skip := range plan.Skipped {
		fmt.Fprintf(&b, "  skipped %s: %s\n", skip.Identity, skip.Reason)
	}
	return strings.TrimRight(b.String(), "\n")
}
