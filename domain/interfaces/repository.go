package interfaces

import (
	"context"

	"lotto-engine/domain/entities"
)

// RoundRepository handles round persistence.
type RoundRepository interface {
	// Save inserts or updates a round.
	Save(ctx context.Context, round *entities.Round) error

	// FindByID finds a round by its id.
	FindByID(ctx context.Context, id uint64) (*entities.Round, error)

	// FindLatest returns the round with the highest id.
	FindLatest(ctx context.Context) (*entities.Round, error)

	// FindAll returns all rounds ordered by id.
	FindAll(ctx context.Context) ([]entities.Round, error)
}

// TicketRepository handles ticket persistence.
type TicketRepository interface {
	// Save inserts or updates a ticket.
	Save(ctx context.Context, ticket *entities.Ticket) error

	// FindByID finds a ticket by its id.
	FindByID(ctx context.Context, id uint64) (*entities.Ticket, error)

	// FindByRound finds all tickets of a round ordered by id.
	FindByRound(ctx context.Context, roundID uint64) ([]entities.Ticket, error)

	// FindByOwner finds tickets held by an owner.
	FindByOwner(ctx context.Context, owner entities.Address, limit int) ([]entities.Ticket, error)

	// FindAll returns all tickets ordered by id.
	FindAll(ctx context.Context) ([]entities.Ticket, error)
}

// PayoutRepository handles payout audit records.
type PayoutRepository interface {
	// Save inserts a payout record.
	Save(ctx context.Context, payout *entities.Payout) error

	// FindByRound finds all payouts of a round.
	FindByRound(ctx context.Context, roundID uint64) ([]entities.Payout, error)

	// TotalPaid returns the sum of amounts paid for a round.
	TotalPaid(ctx context.Context, roundID uint64) (int64, error)
}

// StateRepository handles the singleton engine state row.
type StateRepository interface {
	// Load reads the engine state. Returns ErrNotFound when the engine has
	// never been persisted.
	Load(ctx context.Context) (*entities.EngineState, error)

	// Save writes the engine state.
	Save(ctx context.Context, state *entities.EngineState) error
}

// UnitOfWork groups repository writes into a single transaction so a call's
// effects apply atomically or not at all.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin() error

	// Rounds returns the round repository bound to the transaction.
	Rounds() RoundRepository

	// Tickets returns the ticket repository bound to the transaction.
	Tickets() TicketRepository

	// Payouts returns the payout repository bound to the transaction.
	Payouts() PayoutRepository

	// State returns the state repository bound to the transaction.
	State() StateRepository

	// Commit commits the transaction.
	Commit() error

	// Rollback rolls back the transaction.
	Rollback() error
}
