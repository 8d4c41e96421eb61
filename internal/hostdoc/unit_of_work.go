package hostdoc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danieljhkim/combos/internal/catalog"
	"github.com/danieljhkim/combos/internal/clock"
	"github.com/danieljhkim/combos/internal/combo"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var _ catalog.Host = (*UnitOfWork)(nil)

// UnitOfWork groups the changes of one placement batch. Nothing it writes is
// visible until Commit; Rollback discards everything.
//
// The document has a single connection, so no other Document method may be
// called while a unit of work is open.
type UnitOfWork struct {
	tx    *sqlx.Tx
	clock clock.Clock
}

// Begin opens a unit of work.
func (d *Document) Begin(ctx context.Context) (*UnitOfWork, error) {
	tx, err := d.dbConn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}
	return &UnitOfWork{tx: tx, clock: d.clock}, nil
}

// Resolve looks up a catalog item inside the unit of work.
func (u *UnitOfWork) Resolve(id string) (catalog.Item, error) {
	return getCatalogItem(u.tx, id)
}

// Activate marks item as active.
func (u *UnitOfWork) Activate(item catalog.Item) error {
	res, err := u.tx.Exec(`UPDATE catalog_item SET active = 1 WHERE id = ?`, item.ID)
	if err != nil {
		return fmt.Errorf("activating %s: %w", item.DisplayIdentity(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking activation of %s: %w", item.DisplayIdentity(), err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", catalog.ErrNotFound, item.ID)
	}
	return nil
}

// Instantiate creates one instance of item at position.
func (u *UnitOfWork) Instantiate(item catalog.Item, position combo.Point) (catalog.InstanceHandle, error) {
	if !item.Active {
		return "", fmt.Errorf("%s is not active", item.DisplayIdentity())
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating uuid: %w", err)
	}

	query := `INSERT INTO instance (id, catalog_item_id, x, y, z, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	if _, err := u.tx.Exec(query, id.String(), item.ID, position.X, position.Y, position.Z, u.clock.Now().UTC()); err != nil {
		return "", fmt.Errorf("creating instance of %s: %w", item.DisplayIdentity(), err)
	}

	return catalog.InstanceHandle(id.String()), nil
}

// Commit makes every change of the unit of work durable.
func (u *UnitOfWork) Commit() error {
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("committing unit of work: %w", err)
	}
	return nil
}

// Rollback discards the unit of work. It is a no-op after Commit.
func (u *UnitOfWork) Rollback() error {
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rolling back unit of work: %w", err)
	}
	return nil
}
