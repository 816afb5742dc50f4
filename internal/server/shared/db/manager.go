package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/passvault/internal/server/users"
	"github.com/dmitrijs2005/passvault/internal/server/vault"
)

// RepositoryManager vends the repositories backed by one shared store and
// exposes the schema migration hook run at startup.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	VaultItems() vault.Repository
}
