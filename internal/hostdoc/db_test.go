package hostdoc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/clock"
)

func setupTestDoc(t *testing.T) (*Document, func()) {
	t.Helper()

	tempFile, err := os.CreateTemp(t.TempDir(), "project_*.db")
	if err != nil {
		t.Fatalf("os.CreateTemp() failed: %v", err)
	}
	tempFile.Close()

	doc, err := Open(tempFile.Name(), nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	teardown := func() {
		doc.Close()
		os.Remove(tempFile.Name())
	}

	return doc, teardown
}

func mustAddItem(t *testing.T, doc *Document, item catalog.Item) catalog.Item {
	t.Helper()
	added, err := doc.AddCatalogItem(item)
	if err != nil {
		t.Fatalf("AddCatalogItem(%v) failed: %v", item, err)
	}
	return added
}

func TestOpen(t *testing.T) {
	t.Run("should create the file and apply migrations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "new.db")

		doc, err := Open(path, nil)
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		defer doc.Close()

		if _, err := os.Stat(path); err != nil {
			t.Fatalf("document file not created: %v", err)
		}
		if doc.Path() != path {
			t.Fatalf("\nwanted:\n%q\ngot:\n%q", path, doc.Path())
		}

		n, err := doc.CountInstances()
		if err != nil || n != 0 {
			t.Fatalf("\nwanted:\n0, nil\ngot:\n%d, %v", n, err)
		}
	})

	t.Run("should keep data across reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reopen.db")

		doc, err := Open(path, nil)
		if err != nil {
			t.Fatalf("Open() failed: %v", err)
		}
		mustAddItem(t, doc, catalog.Item{ID: "desk", FamilyName: "Desk", TypeName: "1600", Active: true})
		doc.Close()

		doc, err = Open(path, nil)
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		defer doc.Close()

		items, err := doc.ListCatalogItems()
		if err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
		if len(items) != 1 || items[0].ID != "desk" {
			t.Fatalf("\nwanted:\n[desk]\ngot:\n%v", items)
		}
	})

	t.Run("should fail when the parent directory is missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "dir", "doc.db")
		if doc, err := Open(path, nil); err == nil {
			doc.Close()
			t.Fatal("expected error for unreachable path")
		}
	})
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist instances on commit", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()
		item := mustAddItem(t, doc, catalog.Item{FamilyName: "Chair", TypeName: "Task", Active: true})
		start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		doc.SetClock(clock.NewStepping(start, time.Second))

		uow, err := doc.Begin(ctx)
		if err != nil {
			t.Fatalf("Begin() failed: %v", err)
		}
		for i := 0; i < 3; i++ {
			if _, err := uow.Instantiate(item, pointAt(1, 2, 0)); err != nil {
				t.Fatalf("Instantiate() failed: %v", err)
			}
		}
		if err := uow.Commit(); err != nil {
			t.Fatalf("Commit() failed: %v", err)
		}

		instances, err := doc.ListInstances()
		if err != nil {
			t.Fatalf("ListInstances() failed: %v", err)
		}
		if len(instances) != 3 {
			t.Fatalf("\nwanted:\n3\ngot:\n%d", len(instances))
		}
		got := instances[0]
		if got.CatalogItemID != item.ID || got.FamilyName != "Chair" || got.TypeName != "Task" {
			t.Fatalf("unexpected instance: %+v", got)
		}
		if got.Position != pointAt(1, 2, 0) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", pointAt(1, 2, 0), got.Position)
		}
		for i, in := range instances {
			want := start.Add(time.Duration(i) * time.Second)
			if !in.CreatedAt.Equal(want) {
				t.Fatalf("instance %d:\nwanted:\n%v\ngot:\n%v", i, want, in.CreatedAt)
			}
		}
	})

	t.Run("should discard instances and activation on rollback", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()
		item := mustAddItem(t, doc, catalog.Item{FamilyName: "Shelf", TypeName: "Tall"})

		uow, err := doc.Begin(ctx)
		if err != nil {
			t.Fatalf("Begin() failed: %v", err)
		}
		if err := uow.Activate(item); err != nil {
			t.Fatalf("Activate() failed: %v", err)
		}
		item.Active = true
		if _, err := uow.Instantiate(item, pointAt(0, 0, 0)); err != nil {
			t.Fatalf("Instantiate() failed: %v", err)
		}
		if err := uow.Rollback(); err != nil {
			t.Fatalf("Rollback() failed: %v", err)
		}

		n, err := doc.CountInstances()
		if err != nil || n != 0 {
			t.Fatalf("\nwanted:\n0, nil\ngot:\n%d, %v", n, err)
		}
		reloaded, err := doc.GetCatalogItem(item.ID)
		if err != nil {
			t.Fatalf("GetCatalogItem() failed: %v", err)
		}
		if reloaded.Active {
			t.Fatal("activation survived rollback")
		}
	})

	t.Run("should tolerate rollback after commit", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()

		uow, err := doc.Begin(ctx)
		if err != nil {
			t.Fatalf("Begin() failed: %v", err)
		}
		if err := uow.Commit(); err != nil {
			t.Fatalf("Commit() failed: %v", err)
		}
		if err := uow.Rollback(); err != nil {
			t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
		}
	})

	t.Run("should activate inactive items", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()
		item := mustAddItem(t, doc, catalog.Item{FamilyName: "Lamp", TypeName: "Floor"})

		uow, err := doc.Begin(ctx)
		if err != nil {
			t.Fatalf("Begin() failed: %v", err)
		}
		defer uow.Rollback()

		resolved, err := uow.Resolve(item.ID)
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if !resolved.RequiresActivation() {
			t.Fatal("new inactive item should require activation")
		}
		if _, err := uow.Instantiate(resolved, pointAt(0, 0, 0)); err == nil {
			t.Fatal("expected inactive item to be rejected")
		}

		if err := uow.Activate(resolved); err != nil {
			t.Fatalf("Activate() failed: %v", err)
		}
		resolved, err = uow.Resolve(item.ID)
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if resolved.RequiresActivation() {
			t.Fatal("item still requires activation")
		}
	})

	t.Run("should report unknown ids as not found", func(t *testing.T) {
		doc, teardown := setupTestDoc(t)
		defer teardown()

		uow, err := doc.Begin(ctx)
		if err != nil {
			t.Fatalf("Begin() failed: %v", err)
		}
		defer uow.Rollback()

		if _, err := uow.Resolve("missing-id"); !errors.Is(err, catalog.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", catalog.ErrNotFound, err)
		}
		err = uow.Activate(catalog.Item{ID: "missing-id", FamilyName: "F", TypeName: "T"})
		if !errors.Is(err, catalog.ErrNotFound) {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", catalog.ErrNotFound, err)
		}
	})
}
