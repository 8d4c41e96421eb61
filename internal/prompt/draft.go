package prompt

import (
	"errors"
	"strconv"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/combo"
)

// draft is the working copy behind the set editor.
type draft struct {
	name  string
	items []combo.Item
}

func newDraft(existing *combo.Set) *draft {
	if existing == nil {
		return &draft{items: []combo.Item{}}
	}
	clone := existing.Clone()
	return &draft{name: clone.Name, items: clone.Items}
}

func (d *draft) add(item combo.Item) {
	d.items = append(d.items, item)
}

func (d *draft) replace(i int, item combo.Item) bool {
	if i < 0 || i >= len(d.items) {
		return false
	}
	d.items[i] = item
	return true
}

func (d *draft) remove(i int) bool {
	if i < 0 || i >= len(d.items) {
		return false
	}
	d.items = append(d.items[:i], d.items[i+1:]...)
	return true
}

// set returns the draft as a validated set.
func (d *draft) set() (combo.Set, error) {
	s := combo.Set{Name: combo.NormalizeName(d.name), Items: append([]combo.Item{}, d.items...)}
	if err := combo.Validate(s); err != nil {
		return combo.Set{}, err
	}
	return s, nil
}

// itemFields holds the text typed into the item editor.
type itemFields struct {
	catalogID string
	quantity  string
	offsetX   string
	offsetY   string
}

func newItemFields(existing *combo.Item) itemFields {
	if existing == nil {
		return itemFields{quantity: "1", offsetX: "0", offsetY: "0"}
	}
	return itemFields{
		catalogID: existing.CatalogItemID,
		quantity:  strconv.Itoa(existing.Quantity),
		offsetX:   strconv.FormatFloat(existing.OffsetX, 'g', -1, 64),
		offsetY:   strconv.FormatFloat(existing.OffsetY, 'g', -1, 64),
	}
}

// item converts the fields into an item, snapshotting the display names of
// the chosen catalog entry.
func (f itemFields) item(items []catalog.Item) (combo.Item, error) {
	var picked *catalog.Item
	for i := range items {
		if items[i].ID == f.catalogID {
			picked = &items[i]
			break
		}
	}
	if picked == nil {
		return combo.Item{}, combo.ErrMissingCatalogItem
	}

	qty, err := combo.ParseQuantity(f.quantity)
	if err != nil {
		return combo.Item{}, err
	}
	dx, err := combo.ParseOffset(f.offsetX)
	if err != nil {
		return combo.Item{}, err
	}
	dy, err := combo.ParseOffset(f.offsetY)
	if err != nil {
		return combo.Item{}, err
	}

	return combo.Item{
		CatalogItemID: picked.ID,
		FamilyName:    picked.FamilyName,
		TypeName:      picked.TypeName,
		Quantity:      qty,
		OffsetX:       dx,
		OffsetY:       dy,
	}, nil
}

// Inline form messages.
var (
	errNameRequired     = errors.New("Combination name cannot be empty.")
	errQuantityPositive = errors.New("Quantity must be a positive integer.")
	errOffsetNumeric    = errors.New("Offset must be a number.")
)

func validateName(s string) error {
	if combo.NormalizeName(s) == "" {
		return errNameRequired
	}
	return nil
}

func validateQuantity(s string) error {
	if _, err := combo.ParseQuantity(s); err != nil {
		return errQuantityPositive
	}
	return nil
}

func validateOffset(s string) error {
	if _, err := combo.ParseOffset(s); err != nil {
		return errOffsetNumeric
	}
	return nil
}
