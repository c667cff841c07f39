package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jeyren95/px-backend-hw3/internal/models"
)

// PostgresItemRepository implements item persistence against a PostgreSQL database.
type PostgresItemRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresItemRepository creates a new PostgresItemRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{DB: db}
}

// FindAll returns every item in the store.
func (r *PostgresItemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, quantity, uid FROM items`)
	if err != nil {
		return nil, fmt.Errorf("find all items: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// FindByOwner returns all items owned by the given user.
func (r *PostgresItemRepository) FindByOwner(ctx context.Context, ownerID int64) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, quantity, uid FROM items WHERE uid = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find items by owner: %w", err)
	}
	defer rows.Close()
	return scanItems(rows)
}

// FindByID returns the item with the given id.
// It returns (nil, nil) when no such item exists.
func (r *PostgresItemRepository) FindByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, name, quantity, uid FROM items WHERE id = $1`,
		id,
	).Scan(&item.ID, &item.Name, &item.Quantity, &item.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find item by id: %w", err)
	}
	return &item, nil
}

// InsertItem stores a new item and returns the row with the assigned id.
func (r *PostgresItemRepository) InsertItem(ctx context.Context, item models.Item) (*models.Item, error) {
	var inserted models.Item
	err := r.DB.QueryRowContext(
		ctx,
		`INSERT INTO items (name, quantity, uid) VALUES ($1, $2, $3) RETURNING id, name, quantity, uid`,
		item.Name, item.Quantity, item.OwnerID,
	).Scan(&inserted.ID, &inserted.Name, &inserted.Quantity, &inserted.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return &inserted, nil
}

// UpdateItem overwrites the item's fields and returns the stored row.
// It returns (nil, nil) when no row with that id exists.
func (r *PostgresItemRepository) UpdateItem(ctx context.Context, id int64, item models.Item) (*models.Item, error) {
	var updated models.Item
	err := r.DB.QueryRowContext(
		ctx,
		`UPDATE items SET name = $2, quantity = $3, uid = $4 WHERE id = $1 RETURNING id, name, quantity, uid`,
		id, item.Name, item.Quantity, item.OwnerID,
	).Scan(&updated.ID, &updated.Name, &updated.Quantity, &updated.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return &updated, nil
}

// DeleteItem removes the item with the given id and reports whether a row
// was actually deleted.
func (r *PostgresItemRepository) DeleteItem(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete item rows affected: %w", err)
	}
	return affected > 0, nil
}

// scanItems collects the rows of an item query into a slice.
func scanItems(rows *sql.Rows) ([]models.Item, error) {
	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.OwnerID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
