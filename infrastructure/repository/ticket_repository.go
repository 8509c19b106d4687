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

// ticketRepository implements the TicketRepository interface
type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) interfaces.TicketRepository {
	return &ticketRepository{db: db}
}

// Save inserts or updates a ticket. Ticket ids start at zero, so the write
// must be an upsert rather than relying on gorm primary-key detection.
func (r *ticketRepository) Save(ctx context.Context, ticket *entities.Ticket) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(ticket).Error
	if err != nil {
		return &errors.RepositoryError{
			Operation: "Save",
			Entity:    "Ticket",
			Err:       err,
		}
	}
	return nil
}

// FindByID finds a ticket by its id
func (r *ticketRepository) FindByID(ctx context.Context, id uint64) (*entities.Ticket, error) {
	var ticket entities.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrNotFound
		}
		return nil, &errors.RepositoryError{
			Operation: "FindByID",
			Entity:    "Ticket",
			Err:       err,
		}
	}
	return &ticket, nil
}

// FindByRound finds all tickets of a round in sale order
func (r *ticketRepository) FindByRound(ctx context.Context, roundID uint64) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	err := r.db.WithContext(ctx).
		Where("round_id = ?", roundID).
		Order("id ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindByRound",
			Entity:    "Ticket",
			Err:       err,
		}
	}
	return tickets, nil
}

// FindByOwner finds tickets held by an owner, newest first
func (r *ticketRepository) FindByOwner(ctx context.Context, owner entities.Address, limit int) ([]entities.Ticket, error) {
	var tickets []entities.Ticket

	query := r.db.WithContext(ctx).
		Where("owner = ?", owner.Hex()).
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&tickets).Error; err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindByOwner",
			Entity:    "Ticket",
			Err:       err,
		}
	}
	return tickets, nil
}

// FindAll returns all tickets ordered by id
func (r *ticketRepository) FindAll(ctx context.Context) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tickets).Error
	if err != nil {
		return nil, &errors.RepositoryError{
			Operation: "FindAll",
			Entity:    "Ticket",
			Err:       err,
		}
	}
	return tickets, nil
}
