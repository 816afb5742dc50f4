package vault

import (
	"context"
)

// Repository persists vault items. Single-item create/read/delete is atomic
// at the store level; no multi-item transactions are needed here.
type Repository interface {
	// Create inserts a new item and returns it with the assigned ID.
	Create(ctx context.Context, item *Item) (*Item, error)
	// ListByUser returns the user's items ordered by creation time,
	// most recent first. No items is an empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]*Item, error)
	// Delete removes the item if it exists and belongs to userID.
	// Deleting a missing or foreign item is a no-op.
	Delete(ctx context.Context, userID string, itemID string) error
}
