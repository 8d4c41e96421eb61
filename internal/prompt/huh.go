package prompt

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/combo"
)

var _ Prompter = (*HuhPrompter)(nil)

// editor menu entries; non-negative values select an item.
const (
	editAdd = -1 - iota
	editRemove
	editSave
	editCancel
)

// HuhPrompter renders dialogs as terminal forms.
type HuhPrompter struct {
	accessible bool
	out        io.Writer
}

// NewHuhPrompter creates a prompter on the process terminal. When stdin is
// not a terminal, forms fall back to huh's line-based accessible mode.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{accessible: !isTerminal(os.Stdin), out: os.Stderr}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func (p *HuhPrompter) run(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).
		WithAccessible(p.accessible).
		WithShowHelp(!p.accessible).
		Run()
}

// ChooseAction implements Prompter.
func (p *HuhPrompter) ChooseAction() (Action, error) {
	options := make([]huh.Option[Action], 0, len(Actions()))
	for _, a := range Actions() {
		options = append(options, huh.NewOption(a.String(), a))
	}

	action := ActionClose
	err := p.run(huh.NewSelect[Action]().
		Title("Manage Combinations").
		Options(options...).
		Value(&action))
	if gone, err := dismissed(err); gone || err != nil {
		return ActionClose, err
	}
	return action, nil
}

// EditSet implements Prompter.
func (p *HuhPrompter) EditSet(existing *combo.Set, items []catalog.Item) (combo.Set, bool, error) {
	title := "New Combination"
	if existing != nil {
		title = "Edit Combination"
	}

	d := newDraft(existing)
	err := p.run(huh.NewInput().
		Title(title).
		Description("Combination name").
		Value(&d.name).
		Validate(validateName))
	if gone, err := dismissed(err); gone || err != nil {
		return combo.Set{}, false, err
	}

	for {
		choice := editSave
		err := p.run(huh.NewSelect[int]().
			Title(fmt.Sprintf("%s: %s", title, combo.NormalizeName(d.name))).
			Description("Pick an item to edit it").
			Options(editorOptions(d)...).
			Value(&choice))
		if gone, err := dismissed(err); gone || err != nil {
			return combo.Set{}, false, err
		}

		switch {
		case choice == editCancel:
			return combo.Set{}, false, nil

		case choice == editSave:
			set, err := d.set()
			if err != nil {
				p.Notify("Combination", err.Error())
				continue
			}
			return set, true, nil

		case choice == editAdd:
			item, ok, err := p.editItem(nil, items)
			if err != nil {
				return combo.Set{}, false, err
			}
			if ok {
				d.add(item)
			}

		case choice == editRemove:
			i, ok, err := p.pickItem(d, "Remove Item")
			if err != nil {
				return combo.Set{}, false, err
			}
			if ok {
				d.remove(i)
			}

		default:
			current := d.items[choice]
			item, ok, err := p.editItem(&current, items)
			if err != nil {
				return combo.Set{}, false, err
			}
			if ok {
				d.replace(choice, item)
			}
		}
	}
}

func editorOptions(d *draft) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(d.items)+4)
	for i, item := range d.items {
		options = append(options, huh.NewOption(item.String(), i))
	}
	options = append(options, huh.NewOption("+ Add item", editAdd))
	if len(d.items) > 0 {
		options = append(options, huh.NewOption("- Remove item", editRemove))
	}
	options = append(options,
		huh.NewOption("Save", editSave),
		huh.NewOption("Cancel", editCancel),
	)
	return options
}

func (p *HuhPrompter) pickItem(d *draft, title string) (int, bool, error) {
	if len(d.items) == 0 {
		p.Notify("Combination", "Please select an item to remove.")
		return 0, false, nil
	}
	options := make([]huh.Option[int], len(d.items))
	for i, item := range d.items {
		options[i] = huh.NewOption(item.String(), i)
	}

	var idx int
	err := p.run(huh.NewSelect[int]().Title(title).Options(options...).Value(&idx))
	if gone, err := dismissed(err); gone || err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

func (p *HuhPrompter) editItem(existing *combo.Item, items []catalog.Item) (combo.Item, bool, error) {
	if len(items) == 0 {
		p.Notify("Item", "The project has no catalog items. Add one with 'combos catalog add'.")
		return combo.Item{}, false, nil
	}

	title := "Add Item"
	if existing != nil {
		title = "Edit Item"
	}

	fields := newItemFields(existing)
	options := make([]huh.Option[string], len(items))
	for i, it := range items {
		options[i] = huh.NewOption(it.DisplayIdentity(), it.ID)
	}
	if fields.catalogID == "" {
		fields.catalogID = items[0].ID
	}

	err := p.run(
		huh.NewSelect[string]().Title(title).Description("Family type").Options(options...).Value(&fields.catalogID),
		huh.NewInput().Title("Quantity").Value(&fields.quantity).Validate(validateQuantity),
		huh.NewInput().Title("Offset X").Value(&fields.offsetX).Validate(validateOffset),
		huh.NewInput().Title("Offset Y").Value(&fields.offsetY).Validate(validateOffset),
	)
	if gone, err := dismissed(err); gone || err != nil {
		return combo.Item{}, false, err
	}

	item, err := fields.item(items)
	if err != nil {
		// The stored reference no longer exists in the catalog.
		p.Notify(title, "Please pick a family type from the project.")
		return combo.Item{}, false, nil
	}
	return item, true, nil
}

// SelectSet implements Prompter.
func (p *HuhPrompter) SelectSet(coll combo.Collection) (int, bool, error) {
	labels := make([]string, len(coll))
	for i, s := range coll {
		labels[i] = s.Name
	}
	return p.Choose("Select Combination", labels)
}

// Choose picks one of labels and returns its index.
func (p *HuhPrompter) Choose(title string, labels []string) (int, bool, error) {
	if len(labels) == 0 {
		return 0, false, nil
	}
	options := make([]huh.Option[int], len(labels))
	for i, l := range labels {
		options[i] = huh.NewOption(l, i)
	}

	var idx int
	err := p.run(huh.NewSelect[int]().Title(title).Options(options...).Value(&idx))
	if gone, err := dismissed(err); gone || err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(title, message string) (bool, error) {
	var yes bool
	err := p.run(huh.NewConfirm().
		Title(title).
		Description(message).
		Affirmative("Yes").
		Negative("No").
		Value(&yes))
	if gone, err := dismissed(err); gone || err != nil {
		return false, err
	}
	return yes, nil
}

// Notify implements Prompter. In accessible mode the message is printed
// instead of waiting for a key press.
func (p *HuhPrompter) Notify(title, message string) {
	if p.accessible {
		fmt.Fprintf(p.out, "%s: %s\n", title, message)
		return
	}
	if err := p.run(huh.NewNote().Title(title).Description(message).Next(true).NextLabel("OK")); err != nil {
		fmt.Fprintf(p.out, "%s: %s\n", title, message)
	}
}
