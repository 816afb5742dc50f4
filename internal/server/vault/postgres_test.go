package vault

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertItemQuery = `(?s)^INSERT\s+INTO\s+vault_items\s*\(id,\s*user_id,\s*site_name,\s*link,\s*password\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*created_at\s*$`
const listItemsQuery = `(?s)^SELECT\s+id,\s*user_id,\s*site_name,\s*link,\s*password,\s*created_at\s+FROM\s+vault_items\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s+DESC\s*$`
const deleteItemQuery = `(?s)^DELETE\s+FROM\s+vault_items\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow("i-1", now)
	mock.ExpectQuery(insertItemQuery).
		WithArgs(sqlmock.AnyArg(), "u-1", "github", "https://github.com", "aa:bb").
		WillReturnRows(rows)

	item := &Item{UserID: "u-1", SiteName: "github", Link: "https://github.com", Password: "aa:bb"}
	got, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "i-1" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertItemQuery).
		WithArgs(sqlmock.AnyArg(), "u-1", "github", "", "aa:bb").
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &Item{UserID: "u-1", SiteName: "github", Password: "aa:bb"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestListByUser_OrderedRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "user_id", "site_name", "link", "password", "created_at"}).
		AddRow("i-2", "u-1", "gitlab", "", "cc:dd", newer).
		AddRow("i-1", "u-1", "github", "https://github.com", "aa:bb", older)
	mock.ExpectQuery(listItemsQuery).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "i-2" || got[1].ID != "i-1" {
		t.Fatalf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "site_name", "link", "password", "created_at"})
	mock.ExpectQuery(listItemsQuery).
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestDelete_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteItemQuery).
		WithArgs("i-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "u-1", "i-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDelete_MissingItemIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteItemQuery).
		WithArgs("ghost", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "u-1", "ghost"); err != nil {
		t.Fatalf("Delete of missing item should not error, got %v", err)
	}
}
