package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"patron/internal/models"
	"patron/internal/repositories/cache"

	"gorm.io/gorm"
)

type creatorRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewCreatorRepository(db *gorm.DB, cacheService *cache.CacheService) CreatorRepository {
	return &creatorRepository{
		db:    db,
		cache: cacheService,
	}
}

func (r *creatorRepository) GetByID(ctx context.Context, id uint) (*models.Creator, error) {
	var creator models.Creator
	err := r.db.WithContext(ctx).First(&creator, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}
	return &creator, nil
}

func (r *creatorRepository) AvailableBalance(ctx context.Context, id uint) (int64, error) {
	if r.cache != nil {
		if balance, found, err := r.cache.GetBalance(ctx, id); err == nil && found {
			return balance, nil
		}
	}

	creator, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	if r.cache != nil {
		if err := r.cache.CacheBalance(ctx, id, creator.AvailableBalance); err != nil {
			log.Printf("failed to cache balance for creator %d: %v", id, err)
		}
	}
	return creator.AvailableBalance, nil
}

func (r *creatorRepository) InvalidateBalance(ctx context.Context, id uint) error {
	if r.cache == nil {
		return nil
	}
	return r.cache.InvalidateBalance(ctx, id)
}
