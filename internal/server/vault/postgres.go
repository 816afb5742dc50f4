package vault

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/passvault/internal/dbx"
)

// PostgresRepository implements vault item storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the item with a freshly assigned ID.
func (r *PostgresRepository) Create(ctx context.Context, item *Item) (*Item, error) {

	query :=
		`INSERT INTO vault_items (id, user_id, site_name, link, password)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	id := uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		id, item.UserID, item.SiteName, item.Link, item.Password).
		Scan(&item.ID, &item.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

// ListByUser returns the user's items, most recently created first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Item, error) {
	query :=
		`SELECT id, user_id, site_name, link, password, created_at FROM vault_items
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*Item{}
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.SiteName, &item.Link, &item.Password, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// Delete removes the item only when it belongs to userID. Zero rows affected
// (missing item or foreign owner) is not an error, which keeps deletion
// idempotent and avoids leaking which of the two happened.
func (r *PostgresRepository) Delete(ctx context.Context, userID string, itemID string) error {
	query :=
		`DELETE FROM vault_items
		 WHERE id = $1 AND user_id = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, itemID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
