package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
)

// roundRepository implements the RoundRepository interface
type roundRepository struct {
	db *gorm.DB
}

// NewRoundRepository creates a new round repository
func NewRoundRepository(db *gorm.DB) interfaces.RoundRepository {
	return &roundRepository{db: db}
}

// Save inserts or updates a round. Round ids are assigned by the engine, so
// the write is an upsert keyed on the id.
func (r *roundRepository) Save(ctx context.Context, round *entities.Round) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(round).Error
	if err != nil {
		return &errors.RepositoryError{
			Operation: "Save",
			Entity:    "Round",
			Err:       err,
		}
	}
	return nil
}

// FindByID finds a round by its id
func (r *roundRepository) FindByID(ctx context.Context, id uint64) (*entities.Round, error) {
	var round entities.Round
	err := r.db.WithContext(ctx).First(&round, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, &errors.RepositoryError{
			Operation: "FindByID",
			Entity:    "Round",
			Err:       err,
		}
	}
	return &round, nil
}

// FindLatest returns the round with the highest id
func (r *roundRepository) FindLatest(ctx context.Context) (*entities.Round, error) {
	var round entities.Round
	err := r.db.WithContext(ctx).Order("id DESC").First(&round).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, &errors.RepositoryError{
			Operation: "FindLatest",
			Entity:    "Round",
			Err:       err,
		}
	}
	return &round, nil
}

// FindAll returns all rounds ordered by id
func (r *roundRepository) FindAll(ctx context.Context) ([]entities.Round, error) {
	var rounds []entities.Round
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rounds).Error
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindAll",
			Entity:    "Round",
			Err:       err,
		}
	}
	return rounds, nil
}
