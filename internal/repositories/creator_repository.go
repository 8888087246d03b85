package repositories

import (
	"context"
	"errors"

	"patron/internal/models"
)

var ErrCreatorNotFound = errors.New("creator not found")

// CreatorRepository reads creator identity and balance data. Available
// balances are written by the external ledger/reconciliation process;
// this service only ever reads them.
type CreatorRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Creator, error)
	AvailableBalance(ctx context.Context, id uint) (int64, error)
	InvalidateBalance(ctx context.Context, id uint) error
}
