package registry

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/danieljhkim/combos/internal/combo"
	"github.com/danieljhkim/combos/internal/fsops"
	"github.com/danieljhkim/combos/internal/stores"
)

// memStore is an in-memory Store that counts saves.
type memStore struct {
	coll    combo.Collection
	saves   int
	saveErr error
}

func (m *memStore) Load() combo.Collection {
	return m.coll.Clone()
}

func (m *memStore) Save(c combo.Collection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.coll = c.Clone()
	return nil
}

func benchSet(name string) combo.Set {
	return combo.Set{
		Name:  name,
		Items: []combo.Item{{CatalogItemID: "X1", FamilyName: "Bench", TypeName: "1800", Quantity: 2}},
	}
}

func TestRegistry_Create(t *testing.T) {
	t.Run("scenario A: create into empty file store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "combinations.json")
		store := stores.NewFileStore(fsops.NewRealFS(), path, nil)
		reg := New(store)

		if err := reg.Create(benchSet("Bench Set")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got := store.Load()
		if len(got) != 1 {
			t.Fatalf("expected 1 combination, got %d", len(got))
		}
		if got[0].Name != "Bench Set" {
			t.Errorf("Name = %q, want %q", got[0].Name, "Bench Set")
		}
		if len(got[0].Items) != 1 || got[0].Items[0].Quantity != 2 {
			t.Errorf("Items = %#v, want one item of quantity 2", got[0].Items)
		}
	})

	t.Run("scenario B: case-insensitive duplicate is rejected", func(t *testing.T) {
		store := &memStore{coll: combo.Collection{benchSet("A")}}
		reg := New(store)
		before := store.Load()

		err := reg.Create(benchSet("a"))
		if !errors.Is(err, ErrNameConflict) {
			t.Fatalf("Create() error = %v, want ErrNameConflict", err)
		}
		if store.saves != 0 {
			t.Errorf("store saved %d times on conflict", store.saves)
		}
		if !reflect.DeepEqual(store.Load(), before) {
			t.Errorf("collection changed on conflict: %#v", store.Load())
		}
	})

	t.Run("names are compared after trimming", func(t *testing.T) {
		store := &memStore{coll: combo.Collection{benchSet("Lounge")}}
		reg := New(store)

		if err := reg.Create(benchSet("  LOUNGE ")); !errors.Is(err, ErrNameConflict) {
			t.Fatalf("Create() error = %v, want ErrNameConflict", err)
		}
	})

	t.Run("stores trimmed name and appends in order", func(t *testing.T) {
		store := &memStore{coll: combo.Collection{benchSet("First")}}
		reg := New(store)

		if err := reg.Create(benchSet("  Second  ")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if names := store.coll.Names(); !reflect.DeepEqual(names, []string{"First", "Second"}) {
			t.Errorf("names = %v, want [First Second]", names)
		}
	})

	t.Run("invalid set is rejected before any mutation", func(t *testing.T) {
		store := &memStore{}
		reg := New(store)

		bad := combo.Set{Name: "Bad", Items: []combo.Item{{CatalogItemID: "X1", Quantity: 0}}}
		if err := reg.Create(bad); !errors.Is(err, combo.ErrInvalidQuantity) {
			t.Fatalf("Create() error = %v, want ErrInvalidQuantity", err)
		}
		if err := reg.Create(combo.Set{Name: " "}); !errors.Is(err, combo.ErrEmptyName) {
			t.Fatalf("Create() error = %v, want ErrEmptyName", err)
		}
		if store.saves != 0 {
			t.Errorf("store saved %d times for invalid input", store.saves)
		}
	})

	t.Run("save failure propagates", func(t *testing.T) {
		saveErr := errors.New("read-only filesystem")
		reg := New(&memStore{saveErr: saveErr})

		if err := reg.Create(benchSet("A")); !errors.Is(err, saveErr) {
			t.Fatalf("Create() error = %v, want wrapped %v", err, saveErr)
		}
	})

	t.Run("caller's set is not aliased", func(t *testing.T) {
		store := &memStore{}
		reg := New(store)
		set := benchSet("A")

		if err := reg.Create(set); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		set.Items[0].Quantity = 99
		if store.coll[0].Items[0].Quantity != 2 {
			t.Error("stored set shares item storage with caller")
		}
	})
}

func TestRegistry_Update(t *testing.T) {
	seed := func() *memStore {
		return &memStore{coll: combo.Collection{benchSet("A"), benchSet("B"), benchSet("C")}}
	}

	t.Run("keeps own name with different case", func(t *testing.T) {
		store := seed()
		reg := New(store)

		updated := benchSet("b")
		updated.Items[0].Quantity = 5
		if err := reg.Update(1, updated); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if store.coll[1].Name != "b" || store.coll[1].Items[0].Quantity != 5 {
			t.Errorf("set not replaced: %#v", store.coll[1])
		}
	})

	t.Run("rejects name used by another set", func(t *testing.T) {
		store := seed()
		reg := New(store)

		if err := reg.Update(1, benchSet("c")); !errors.Is(err, ErrNameConflict) {
			t.Fatalf("Update() error = %v, want ErrNameConflict", err)
		}
		if store.saves != 0 {
			t.Errorf("store saved on conflict")
		}
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		reg := New(seed())

		for _, idx := range []int{-1, 3, 100} {
			if err := reg.Update(idx, benchSet("Z")); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Update(%d) error = %v, want ErrOutOfRange", idx, err)
			}
		}
	})

	t.Run("preserves order of other sets", func(t *testing.T) {
		store := seed()
		reg := New(store)

		if err := reg.Update(0, benchSet("Renamed")); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if names := store.coll.Names(); !reflect.DeepEqual(names, []string{"Renamed", "B", "C"}) {
			t.Errorf("names = %v", names)
		}
	})
}

func TestRegistry_Delete(t *testing.T) {
	t.Run("removes the set at index", func(t *testing.T) {
		store := &memStore{coll: combo.Collection{benchSet("A"), benchSet("B"), benchSet("C")}}
		reg := New(store)

		removed, err := reg.Delete(1)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if removed.Name != "B" {
			t.Errorf("removed %q, want B", removed.Name)
		}
		if names := store.coll.Names(); !reflect.DeepEqual(names, []string{"A", "C"}) {
			t.Errorf("names = %v, want [A C]", names)
		}
	})

	t.Run("rejects out of range index", func(t *testing.T) {
		store := &memStore{coll: combo.Collection{benchSet("A")}}
		reg := New(store)

		if _, err := reg.Delete(1); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Delete() error = %v, want ErrOutOfRange", err)
		}
		if _, err := New(&memStore{}).Delete(0); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Delete() on empty error = %v, want ErrOutOfRange", err)
		}
		if store.saves != 0 {
			t.Errorf("store saved on rejected delete")
		}
	})
}

func TestRegistry_Find(t *testing.T) {
	reg := New(&memStore{coll: combo.Collection{benchSet("Bench Set"), benchSet("Desk")}})

	idx, set, err := reg.Find("DESK")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if idx != 1 || set.Name != "Desk" {
		t.Errorf("Find() = %d, %q; want 1, Desk", idx, set.Name)
	}

	if _, _, err := reg.Find("Kitchen"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestRegistry_Replace(t *testing.T) {
	store := &memStore{coll: combo.Collection{benchSet("Old")}}
	reg := New(store)

	if err := reg.Replace(combo.Collection{benchSet("X"), benchSet("x")}); !errors.Is(err, ErrNameConflict) {
		t.Fatalf("Replace() error = %v, want ErrNameConflict", err)
	}
	if store.saves != 0 {
		t.Fatal("store saved on rejected replace")
	}

	if err := reg.Replace(combo.Collection{benchSet("X"), benchSet("Y")}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if names := store.coll.Names(); !reflect.DeepEqual(names, []string{"X", "Y"}) {
		t.Errorf("names = %v, want [X Y]", names)
	}
}

func TestRegistry_List(t *testing.T) {
	store := &memStore{coll: combo.Collection{benchSet("A")}}
	reg := New(store)

	got := reg.List()
	got[0].Name = "mutated"
	if store.coll[0].Name != "A" {
		t.Error("List() result aliases stored collection")
	}
}
