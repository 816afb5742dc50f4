package users

import (
	"context"
)

// Repository persists user records. Email uniqueness is enforced by the
// store itself, which makes it the sole arbiter of concurrent signups with
// the same email.
type Repository interface {
	// Create inserts a new user and returns it with the assigned ID.
	// A uniqueness violation on email is reported as common.ErrorDuplicateEmail.
	Create(ctx context.Context, user *User) (*User, error)
	// GetByEmail returns common.ErrorNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByID returns common.ErrorNotFound if the ID references no user.
	GetByID(ctx context.Context, id string) (*User, error)
}
