package engine

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/danieljhkim/combos/internal/registry"
	"github.com/danieljhkim/combos/internal/stores"
)

func TestList(t *testing.T) {
	env := setupEngine(t)
	if got := env.engine.List(); len(got) != 0 {
		t.Fatalf("List() on empty store = %v", got)
	}

	env.seedSets(t, deskCluster(), benchSet())

	want := []SetSummary{
		{Name: "Desk Cluster", ItemCount: 2, Instances: 4},
		{Name: "Bench Set", ItemCount: 1, Instances: 1},
	}
	if got := env.engine.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("\nwanted:\n%v\ngot:\n%v", want, got)
	}
}

func TestShowAndRemove(t *testing.T) {
	env := setupEngine(t)
	env.seedSets(t, deskCluster(), benchSet())

	got, err := env.engine.Show("BENCH set")
	if err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if !reflect.DeepEqual(got, benchSet()) {
		t.Errorf("Show() = %v", got)
	}

	if _, err := env.engine.Show("nope"); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("Show(nope) err = %v, want ErrNotFound", err)
	}

	removed, err := env.engine.Remove("desk cluster")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed.Name != "Desk Cluster" {
		t.Errorf("removed %q", removed.Name)
	}
	if names := env.registry.List().Names(); !reflect.DeepEqual(names, []string{"Bench Set"}) {
		t.Errorf("names after remove = %v", names)
	}

	if _, err := env.engine.Remove("desk cluster"); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("second Remove() err = %v, want ErrNotFound", err)
	}
}

func TestExportImport(t *testing.T) {
	t.Run("export then import into an empty store", func(t *testing.T) {
		src := setupEngine(t)
		src.seedSets(t, deskCluster(), benchSet())

		var buf bytes.Buffer
		if err := src.engine.Export(&buf); err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if !strings.Contains(buf.String(), "catalogItemId: desk") {
			t.Errorf("export does not use document field names:\n%s", buf.String())
		}

		dst := setupEngine(t)
		res, err := dst.engine.Import(&buf, ImportRequest{})
		if err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		if *res != (ImportResult{Imported: 2, Total: 2}) {
			t.Errorf("result = %+v", *res)
		}
		if !reflect.DeepEqual(dst.registry.List(), src.registry.List()) {
			t.Errorf("\nwanted:\n%v\ngot:\n%v", src.registry.List(), dst.registry.List())
		}
	})

	t.Run("merge refuses names already stored", func(t *testing.T) {
		env := setupEngine(t)
		env.seedSets(t, benchSet())

		doc := "- name: bench set\n  items: []\n"
		_, err := env.engine.Import(strings.NewReader(doc), ImportRequest{})
		if !errors.Is(err, registry.ErrNameConflict) {
			t.Fatalf("err = %v, want ErrNameConflict", err)
		}
		if got := env.registry.List(); !reflect.DeepEqual(got.Names(), []string{"Bench Set"}) || len(got[0].Items) != 1 {
			t.Errorf("collection changed: %v", got)
		}
	})

	t.Run("replace discards the stored collection", func(t *testing.T) {
		env := setupEngine(t)
		env.seedSets(t, benchSet(), deskCluster())

		doc := "- name: Only\n  items:\n    - catalogItemId: x\n      displayFamilyName: F\n      displayTypeName: T\n      quantity: 3\n"
		res, err := env.engine.Import(strings.NewReader(doc), ImportRequest{Replace: true})
		if err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		if !res.Replaced || res.Total != 1 {
			t.Errorf("result = %+v", *res)
		}
		if names := env.registry.List().Names(); !reflect.DeepEqual(names, []string{"Only"}) {
			t.Errorf("names = %v", names)
		}
	})

	t.Run("invalid documents change nothing", func(t *testing.T) {
		env := setupEngine(t)
		env.seedSets(t, benchSet())

		dup := "- name: A\n  items: []\n- name: a\n  items: []\n"
		if _, err := env.engine.Import(strings.NewReader(dup), ImportRequest{Replace: true}); !errors.Is(err, stores.ErrDuplicateName) {
			t.Errorf("duplicate err = %v", err)
		}
		if len(env.registry.List()) != 1 {
			t.Error("collection changed after rejected import")
		}
	})
}
