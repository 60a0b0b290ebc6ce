package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/dbx"
	"github.com/dmitrijs2005/coinkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgForeignKeyViolation is the SQLSTATE for foreign_key_violation.
const pgForeignKeyViolation = "23503"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the transaction and fills in the generated id and creation
// time. Inserting for a user that no longer exists surfaces as
// common.ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, tr *models.Transaction) (*models.Transaction, error) {

	query :=
		`INSERT INTO transactions (amount, recipient, user_id)
         VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		tr.Amount, tr.Recipient, tr.UserID).Scan(&tr.ID, &tr.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tr, nil
}

// ListByUserID returns the user's transactions ordered by id. A user with no
// transactions yields an empty, non-nil slice.
func (r *PostgresRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query :=
		`SELECT id, amount, recipient, user_id, created_at FROM transactions
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Transaction, 0)
	for rows.Next() {
		var tr models.Transaction
		if err := rows.Scan(&tr.ID, &tr.Amount, &tr.Recipient, &tr.UserID, &tr.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
