package hostdoc

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// dbCatalogItem is a catalog item as stored in the document.
type dbCatalogItem struct {
	ID         string `db:"id"`
	FamilyName string `db:"family_name"`
	TypeName   string `db:"type_name"`
	Active     bool   `db:"active"`
}

func toCatalogItem(row dbCatalogItem) catalog.Item {
	return catalog.Item{
		ID:         row.ID,
		FamilyName: row.FamilyName,
		TypeName:   row.TypeName,
		Active:     row.Active,
	}
}

// AddCatalogItem inserts item. An empty ID is replaced with a generated one.
func (d *Document) AddCatalogItem(item catalog.Item) (catalog.Item, error) {
	item.FamilyName = strings.TrimSpace(item.FamilyName)
	item.TypeName = strings.TrimSpace(item.TypeName)
	if item.FamilyName == "" || item.TypeName == "" {
		return catalog.Item{}, errors.New("catalog item needs a family and a type name")
	}

	if item.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return catalog.Item{}, fmt.Errorf("generating uuid: %w", err)
		}
		item.ID = id.String()
	}

	query := `INSERT INTO catalog_item (id, family_name, type_name, active) VALUES (?, ?, ?, ?)`
	if _, err := d.dbConn.Exec(query, item.ID, item.FamilyName, item.TypeName, item.Active); err != nil {
		return catalog.Item{}, fmt.Errorf("adding catalog item %s: %w", item.DisplayIdentity(), err)
	}

	return item, nil
}

// ListCatalogItems returns every catalog item ordered by family then type.
func (d *Document) ListCatalogItems() ([]catalog.Item, error) {
	var rows []dbCatalogItem
	query := `SELECT id, family_name, type_name, active FROM catalog_item ORDER BY family_name, type_name`
	if err := d.dbConn.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("retrieving catalog items: %w", err)
	}

	items := make([]catalog.Item, len(rows))
	for i, row := range rows {
		items[i] = toCatalogItem(row)
	}
	return items, nil
}

// GetCatalogItem returns the item with id, or an error wrapping
// catalog.ErrNotFound.
func (d *Document) GetCatalogItem(id string) (catalog.Item, error) {
	return getCatalogItem(d.dbConn, id)
}

func getCatalogItem(q sqlx.Queryer, id string) (catalog.Item, error) {
	var row dbCatalogItem
	query := `SELECT id, family_name, type_name, active FROM catalog_item WHERE id = ?`
	if err := sqlx.Get(q, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Item{}, fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
		}
		return catalog.Item{}, fmt.Errorf("retrieving catalog item %s: %w", id, err)
	}
	return toCatalogItem(row), nil
}
