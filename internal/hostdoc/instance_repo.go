package hostdoc

import (
	"fmt"
	"time"

	"github.com/danieljhkim/combos/internal/combo"
)

// Instance is a placed instance of a catalog item.
type Instance struct {
	ID            string      `json:"id"`
	CatalogItemID string      `json:"catalogItemId"`
	FamilyName    string      `json:"familyName"`
	TypeName      string      `json:"typeName"`
	Position      combo.Point `json:"position"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type dbInstance struct {
	ID            string    `db:"id"`
	CatalogItemID string    `db:"catalog_item_id"`
	FamilyName    string    `db:"family_name"`
	TypeName      string    `db:"type_name"`
	X             float64   `db:"x"`
	Y             float64   `db:"y"`
	Z             float64   `db:"z"`
	CreatedAt     time.Time `db:"created_at"`
}

// ListInstances returns every instance in creation order.
func (d *Document) ListInstances() ([]Instance, error) {
	var rows []dbInstance
	query := `SELECT i.id, i.catalog_item_id, c.family_name, c.type_name, i.x, i.y, i.z, i.created_at
	          FROM instance i
	          JOIN catalog_item c ON c.id = i.catalog_item_id
	          ORDER BY i.created_at, i.id`
	if err := d.dbConn.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("retrieving instances: %w", err)
	}

	instances := make([]Instance, len(rows))
	for i, row := range rows {
		instances[i] = Instance{
			ID:            row.ID,
			CatalogItemID: row.CatalogItemID,
			FamilyName:    row.FamilyName,
			TypeName:      row.TypeName,
			Position:      combo.Point{X: row.X, Y: row.Y, Z: row.Z},
			CreatedAt:     row.CreatedAt,
		}
	}
	return instances, nil
}

// CountInstances returns the number of instances.
func (d *Document) CountInstances() (int, error) {
	var n int
	if err := d.dbConn.Get(&n, `SELECT COUNT(*) FROM instance`); err != nil {
		return 0, fmt.Errorf("counting instances: %w", err)
	}
	return n, nil
}
