package repository

import (
	"context"

	"gorm.io/gorm"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
)

// payoutRepository implements the PayoutRepository interface
type payoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository creates a new payout repository
func NewPayoutRepository(db *gorm.DB) interfaces.PayoutRepository {
	return &payoutRepository{db: db}
}

// Save inserts a payout record. Payouts are append-only audit entries.
func (r *payoutRepository) Save(ctx context.Context, payout *entities.Payout) error {
	if err := r.db.WithContext(ctx).Create(payout).Error; err != nil {
		return &errors.RepositoryError{
			Operation: "Save",
			Entity:    "Payout",
			Err:       err,
		}
	}
	return nil
}

// FindByRound finds all payouts of a round in settlement order
func (r *payoutRepository) FindByRound(ctx context.Context, roundID uint64) ([]entities.Payout, error) {
	var payouts []entities.Payout
	err := r.db.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("id ASC").
		Find(&payouts).Error
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindByRound",
			Entity:    "Payout",
			Err:       err,
		}
	}
	return payouts, nil
}

// TotalPaid returns the sum of amounts paid for a round
func (r *payoutRepository) TotalPaid(ctx context.Context, roundID uint64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Payout{}).
		Where("round_id = ?", roundID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, &errors.RepositoryError{
			Operation: "TotalPaid",
			Entity:    "Payout",
			Err:       err,
		}
	}
	return total, nil
}
