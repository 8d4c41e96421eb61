// Package registry mediates every mutation of the combination collection.
//
// Each operation is a full load → check → save cycle against the Store; the
// registry keeps no collection in memory between calls. Concurrent writers
// are not coordinated and the last save wins.
package registry

import (
	"errors"
	"fmt"

	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/stores"
)

var (
	// ErrNameConflict indicates another set already uses the name.
	ErrNameConflict = errors.New("name conflict")

	// ErrOutOfRange indicates an index outside the stored collection.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNotFound indicates no set matches a name.
	ErrNotFound = errors.New("combination not found")
)

// Registry enforces name uniqueness over a Store.
type Registry struct {
	store stores.Store
}

// New creates a Registry backed by store.
func New(store stores.Store) *Registry {
	return &Registry{store: store}
}

// List returns the currently stored collection.
func (r *Registry) List() combo.Collection {
	return r.store.Load()
}

// Find returns the index and a copy of the set named name, compared
// case-insensitively.
func (r *Registry) Find(name string) (int, combo.Set, error) {
	coll := r.store.Load()
	idx := coll.IndexOf(name, -1)
	if idx < 0 {
		return -1, combo.Set{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return idx, coll[idx].Clone(), nil
}

// Create appends a new set.
func (r *Registry) Create(set combo.Set) error {
	set, err := prepare(set)
	if err != nil {
		return err
	}

	coll := r.store.Load()
	if coll.IndexOf(set.Name, -1) >= 0 {
		return fmt.Errorf("%w: a combination named %q already exists", ErrNameConflict, set.Name)
	}

	coll = append(coll, set)
	if err := r.store.Save(coll); err != nil {
		return fmt.Errorf("failed to save combinations: %w", err)
	}

	return nil
}

// Update replaces the set at index. The name may stay the same or change to
// one that no other set uses.
func (r *Registry) Update(index int, set combo.Set) error {
	coll := r.store.Load()
	if index < 0 || index >= len(coll) {
		return fmt.Errorf("%w: %d (have %d combinations)", ErrOutOfRange, index, len(coll))
	}

	set, err := prepare(set)
	if err != nil {
		return err
	}

	if coll.IndexOf(set.Name, index) >= 0 {
		return fmt.Errorf("%w: another combination already uses %q", ErrNameConflict, set.Name)
	}

	coll[index] = set
	if err := r.store.Save(coll); err != nil {
		return fmt.Errorf("failed to save combinations: %w", err)
	}

	return nil
}

// Delete removes the set at index and returns it.
func (r *Registry) Delete(index int) (combo.Set, error) {
	coll := r.store.Load()
	if index < 0 || index >= len(coll) {
		return combo.Set{}, fmt.Errorf("%w: %d (have %d combinations)", ErrOutOfRange, index, len(coll))
	}

	removed := coll[index]
	coll = append(coll[:index], coll[index+1:]...)
	if err := r.store.Save(coll); err != nil {
		return combo.Set{}, fmt.Errorf("failed to save combinations: %w", err)
	}

	return removed, nil
}

// Replace swaps the whole collection, used by import. Names must be unique.
func (r *Registry) Replace(coll combo.Collection) error {
	prepared := make(combo.Collection, 0, len(coll))
	for _, set := range coll {
		set, err := prepare(set)
		if err != nil {
			return err
		}
		if prepared.IndexOf(set.Name, -1) >= 0 {
			return fmt.Errorf("%w: %q appears twice", ErrNameConflict, set.Name)
		}
		prepared = append(prepared, set)
	}

	if err := r.store.Save(prepared); err != nil {
		return fmt.Errorf("failed to save combinations: %w", err)
	}
	return nil
}

// prepare validates a set and returns a normalized deep copy of it.
func prepare(set combo.Set) (combo.Set, error) {
	if err := combo.Validate(set); err != nil {
		return combo.Set{}, err
	}
	out := set.Clone()
	out.Name = combo.NormalizeName(set.Name)
	return out, nil
}
