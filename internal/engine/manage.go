package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/prompt"
	"github.com/danieljhkim/combos/internal/registry"
)

// User-facing manage messages.
const (
	msgCreated        = "Combination created and saved."
	msgUpdated        = "Combination updated and saved."
	msgDeleted        = "Combination deleted."
	msgCreateConflict = "A combination with this name already exists. Please choose a different name."
	msgUpdateConflict = "Another combination already uses this name. Please choose a different name."
	msgNothingToEdit  = "There are no combinations to edit."
	msgNothingToDel   = "There are no combinations to delete."
	titleManage       = "Combinations"
)

// Manage runs the interactive create / edit / delete loop until the user
// closes it. A failed save ends the loop with Failed; nothing else does.
func (e *Engine) Manage(ctx context.Context) Outcome {
	if e.dialogs == nil {
		return failed(errors.New("manage requires an interactive terminal"))
	}

	m := &manageSession{Engine: e}
	for {
		if err := ctx.Err(); err != nil {
			return failed(err)
		}

		action, err := e.dialogs.ChooseAction()
		if err != nil {
			return failed(err)
		}

		switch action {
		case prompt.ActionCreate:
			err = m.create()
		case prompt.ActionEdit:
			err = m.edit()
		case prompt.ActionDelete:
			err = m.delete()
		default:
			return succeeded("")
		}
		if err != nil {
			e.logger.Error("manage aborted", "action", action.String(), "error", err)
			return failed(err)
		}
	}
}

// manageSession caches the catalog for one Manage loop.
type manageSession struct {
	*Engine
	catalog []catalog.Item
	loaded  bool
}

func (m *manageSession) catalogItems() ([]catalog.Item, error) {
	if m.loaded {
		return m.catalog, nil
	}
	p, err := m.project()
	if err != nil {
		return nil, err
	}
	defer p.Close()

	items, err := p.ListCatalogItems()
	if err != nil {
		return nil, err
	}
	m.catalog, m.loaded = items, true
	return items, nil
}

func (m *manageSession) create() error {
	items, err := m.catalogItems()
	if err != nil {
		return err
	}

	set, ok, err := m.dialogs.EditSet(nil, items)
	if err != nil || !ok {
		return err
	}

	return m.report(m.registry.Create(set), msgCreated, msgCreateConflict, "created", set.Name)
}

func (m *manageSession) edit() error {
	coll := m.registry.List()
	if len(coll) == 0 {
		m.dialogs.Notify(titleManage, msgNothingToEdit)
		return nil
	}

	idx, ok, err := m.dialogs.SelectSet(coll)
	if err != nil || !ok {
		return err
	}

	items, err := m.catalogItems()
	if err != nil {
		return err
	}

	existing := coll[idx].Clone()
	set, ok, err := m.dialogs.EditSet(&existing, items)
	if err != nil || !ok {
		return err
	}

	return m.report(m.registry.Update(idx, set), msgUpdated, msgUpdateConflict, "updated", set.Name)
}

func (m *manageSession) delete() error {
	coll := m.registry.List()
	if len(coll) == 0 {
		m.dialogs.Notify(titleManage, msgNothingToDel)
		return nil
	}

	idx, ok, err := m.dialogs.SelectSet(coll)
	if err != nil || !ok {
		return err
	}

	name := coll[idx].Name
	yes, err := m.dialogs.Confirm("Delete Combination", fmt.Sprintf("Are you sure you want to delete '%s'?", name))
	if err != nil || !yes {
		return err
	}

	_, err = m.registry.Delete(idx)
	return m.report(err, msgDeleted, "", "deleted", name)
}

// report turns a registry error into a notification. Only save failures
// are returned.
func (m *manageSession) report(err error, success, conflict, verb, name string) error {
	switch {
	case err == nil:
		m.logger.Info("combination "+verb, "name", name)
		m.dialogs.Notify(titleManage, success)
		return nil
	case errors.Is(err, registry.ErrNameConflict) && conflict != "":
		m.dialogs.Notify(titleManage, conflict)
		return nil
	case errors.Is(err, combo.ErrValidation), errors.Is(err, registry.ErrOutOfRange):
		m.dialogs.Notify(titleManage, err.Error())
		return nil
	default:
		return err
	}
}
