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

// stateRepository implements the StateRepository interface. The engine state
// is a singleton row with a fixed id.
type stateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new state repository
func NewStateRepository(db *gorm.DB) interfaces.StateRepository {
	return &stateRepository{db: db}
}

// Load reads the engine state
func (r *stateRepository) Load(ctx context.Context) (*entities.EngineState, error) {
	var state entities.EngineState
	err := r.db.WithContext(ctx).First(&state, "id = ?", entities.EngineStateID).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, &errors.RepositoryError{
			Operation: "Load",
			Entity:    "EngineState",
			Err:       err,
		}
	}
	return &state, nil
}

// Save writes the engine state
func (r *stateRepository) Save(ctx context.Context, state *entities.EngineState) error {
	state.ID = entities.EngineStateID
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(state).Error
	if err != nil {
		return &errors.RepositoryError{
			Operation: "Save",
			Entity:    "EngineState",
			Err:       err,
		}
	}
	return nil
}
