package hostdoc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/danieljhkim/combos/internal/catalog"
)

func TestCatalogRepo(t *testing.T) {
	t.Run("should return an empty slice when the catalog is empty", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()

		items, err := doc.ListCatalogItems()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(items) != 0 {
			t.Fatalf("\nwanted:\n0\ngot:\n%d", len(items))
		}
	})

	t.Run("should list items ordered by family and type", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()

		mustAddItem(t, doc, catalog.Item{ID: "t", FamilyName: "Table", TypeName: "Round", Active: true})
		mustAddItem(t, doc, catalog.Item{ID: "c2", FamilyName: "Chair", TypeName: "Task"})
		mustAddItem(t, doc, catalog.Item{ID: "c1", FamilyName: "Chair", TypeName: "Stool", Active: true})

		got, err := doc.ListCatalogItems()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		want := []catalog.Item{
			{ID: "c1", FamilyName: "Chair", TypeName: "Stool", Active: true},
			{ID: "c2", FamilyName: "Chair", TypeName: "Task"},
			{ID: "t", FamilyName: "Table", TypeName: "Round", Active: true},
		}
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", want, got)
		}
	})

	t.Run("should generate an id when none is given", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()

		added := mustAddItem(t, doc, catalog.Item{FamilyName: " Desk ", TypeName: "1600"})
		if added.ID == "" {
			t.Fatal("expected generated id")
		}
		if added.FamilyName != "Desk" {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", "Desk", added.FamilyName)
		}

		got, err := doc.GetCatalogItem(added.ID)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if got != added {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", added, got)
		}
	})

	t.Run("should reject blank names and duplicate ids", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()

		if _, err := doc.AddCatalogItem(catalog.Item{FamilyName: "Desk"}); err == nil {
			t.Fatal("expected error for missing type name")
		}

		mustAddItem(t, doc, catalog.Item{ID: "dup", FamilyName: "A", TypeName: "B"})
		if _, err := doc.AddCatalogItem(catalog.Item{ID: "dup", FamilyName: "C", TypeName: "D"}); err == nil {
			t.Fatal("expected error for duplicate id")
		}
	})

	t.Run("should wrap ErrNotFound for unknown ids", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()

		_, err := doc.GetCatalogItem("nope")
		if !errors.Is(err, catalog.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", catalog.ErrNotFound, err)
		}
	})
}
