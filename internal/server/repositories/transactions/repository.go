package transactions

import (
	"context"

	"github.com/dmitrijs2005/coinkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tr *models.Transaction) (*models.Transaction, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.Transaction, error)
}
