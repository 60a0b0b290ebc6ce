package transactions

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	qInsert = `(?s)^INSERT\s+INTO\s+transactions\s*\(amount,\s*recipient,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`
	qList   = `(?s)^SELECT\s+id,\s*amount,\s*recipient,\s*user_id,\s*created_at\s+FROM\s+transactions\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), time.Now())
	mock.ExpectQuery(qInsert).
		WithArgs(50.0, "b@x.com", int64(1)).
		WillReturnRows(rows)

	tr := &models.Transaction{Amount: 50, Recipient: "b@x.com", UserID: 1}
	got, err := repo.Create(context.Background(), tr)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 5 || got.Amount != 50 || got.UserID != 1 {
		t.Fatalf("unexpected transaction: %+v", got)
	}
}

func TestCreate_MissingUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs(10.0, "b@x.com", int64(404)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "transactions_user_id_fkey"})

	_, err := repo.Create(context.Background(), &models.Transaction{Amount: 10, Recipient: "b@x.com", UserID: 404})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qInsert).
		WithArgs(10.0, "b@x.com", int64(1)).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Transaction{Amount: 10, Recipient: "b@x.com", UserID: 1})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByUserID_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qList).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "recipient", "user_id", "created_at"}))

	got, err := repo.ListByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUserID error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected no transactions, got %d", len(got))
	}
}

func TestListByUserID_ReturnsRowsInOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "amount", "recipient", "user_id", "created_at"}).
		AddRow(int64(1), 50.0, "b@x.com", int64(1), time.Now()).
		AddRow(int64(2), 12.5, "c@x.com", int64(1), time.Now())
	mock.ExpectQuery(qList).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByUserID(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUserID error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[1].Recipient != "c@x.com" || got[1].Amount != 12.5 {
		t.Fatalf("unexpected transaction: %+v", got[1])
	}
}

func TestListByUserID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qList).
		WithArgs(int64(1)).
		WillReturnError(errors.New("db err"))

	_, err := repo.ListByUserID(context.Background(), 1)
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
