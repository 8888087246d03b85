package repositories

import (
	"context"
	"errors"

	"patron/internal/models"
)

var (
	ErrPayoutRequestNotFound   = errors.New("payout request not found")
	ErrInvalidStatusTransition = errors.New("invalid payout status transition")
)

// PayoutRequestRepository persists confirmed payout quotes. Rows are
// immutable snapshots of the quote: only the status may change after
// creation, and only pending -> completed or pending -> failed, driven
// by the external reconciliation process.
type PayoutRequestRepository interface {
	Create(ctx context.Context, req *models.PayoutRequest) error
	GetByPublicID(ctx context.Context, publicID string) (*models.PayoutRequest, error)
	ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.PayoutRequest, error)
	CountByCreator(ctx context.Context, creatorID uint) (int64, error)
	UpdateStatus(ctx context.Context, publicID, status string) error
}
