package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coinkeeper/internal/common"
	"github.com/dmitrijs2005/coinkeeper/internal/server/models"
	"github.com/dmitrijs2005/coinkeeper/internal/server/repositories/repomanager"
)

// TransactionService records and lists a user's transactions. Each operation
// is a single write or read, so no cross-call coordination is needed.
type TransactionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTransactionService(db *sql.DB, m repomanager.RepositoryManager) *TransactionService {
	return &TransactionService{db: db, repomanager: m}
}

// Create records a transaction for userID. The user is referenced, not
// re-validated: the foreign key rejects an id that no longer exists, which
// surfaces as ErrorUnauthorized to match the token-holder contract.
func (s *TransactionService) Create(ctx context.Context, userID int64, amount float64, recipient string) (*models.Transaction, error) {
	repo := s.repomanager.Transactions(s.db)

	tr := &models.Transaction{Amount: amount, Recipient: recipient, UserID: userID}
	tr, err := repo.Create(ctx, tr)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error creating transaction: %w", err)
	}

	return tr, nil
}

// List returns the user's transactions, oldest first. A fresh user gets an
// empty slice, not nil.
func (s *TransactionService) List(ctx context.Context, userID int64) ([]models.Transaction, error) {
	repo := s.repomanager.Transactions(s.db)

	list, err := repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}

	return list, nil
}
