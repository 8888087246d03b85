package repositories

import (
	"context"
	"errors"
	"fmt"

	"patron/internal/models"

	"gorm.io/gorm"
)

type payoutRequestRepository struct {
	db *gorm.DB
}

func NewPayoutRequestRepository(db *gorm.DB) PayoutRequestRepository {
	return &payoutRequestRepository{db: db}
}

func (r *payoutRequestRepository) Create(ctx context.Context, req *models.PayoutRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("failed to create payout request: %w", err)
	}
	return nil
}

func (r *payoutRequestRepository) GetByPublicID(ctx context.Context, publicID string) (*models.PayoutRequest, error) {
	var req models.PayoutRequest
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayoutRequestNotFound
		}
		return nil, fmt.Errorf("failed to get payout request: %w", err)
	}
	return &req, nil
}

func (r *payoutRequestRepository) ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.PayoutRequest, error) {
	var requests []models.PayoutRequest
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payout requests: %w", err)
	}
	return requests, nil
}

func (r *payoutRequestRepository) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.PayoutRequest{}).
		Where("creator_id = ?", creatorID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count payout requests: %w", err)
	}
	return total, nil
}

// UpdateStatus transitions a pending request to completed or failed.
// Everything else about the row is immutable, so only the status column
// is touched, guarded by the current status in the WHERE clause.
func (r *payoutRequestRepository) UpdateStatus(ctx context.Context, publicID, status string) error {
	if status != models.PayoutStatusCompleted && status != models.PayoutStatusFailed {
		return ErrInvalidStatusTransition
	}

	result := r.db.WithContext(ctx).
		Model(&models.PayoutRequest{}).
		Where("public_id = ? AND status = ?", publicID, models.PayoutStatusPending).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update payout status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the row does not exist or it already left pending.
		if _, err := r.GetByPublicID(ctx, publicID); err != nil {
			return err
		}
		return ErrInvalidStatusTransition
	}
	return nil
}
