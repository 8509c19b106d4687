package repository

import (
	"gorm.io/gorm"

	"lotto-engine/domain/interfaces"
)

// unitOfWork implements the UnitOfWork interface
type unitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	rounds  interfaces.RoundRepository
	tickets interfaces.TicketRepository
	payouts interfaces.PayoutRepository
	state   interfaces.StateRepository
}

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(db *gorm.DB) interfaces.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin() error {
	u.tx = u.db.Begin()
	if u.tx.Error != nil {
		return u.tx.Error
	}

	u.rounds = NewRoundRepository(u.tx)
	u.tickets = NewTicketRepository(u.tx)
	u.payouts = NewPayoutRepository(u.tx)
	u.state = NewStateRepository(u.tx)

	return nil
}

// Rounds returns the round repository
func (u *unitOfWork) Rounds() interfaces.RoundRepository {
	if u.rounds == nil {
		u.rounds = NewRoundRepository(u.handle())
	}
	return u.rounds
}

// Tickets returns the ticket repository
func (u *unitOfWork) Tickets() interfaces.TicketRepository {
	if u.tickets == nil {
		u.tickets = NewTicketRepository(u.handle())
	}
	return u.tickets
}

// Payouts returns the payout repository
func (u *unitOfWork) Payouts() interfaces.PayoutRepository {
	if u.payouts == nil {
		u.payouts = NewPayoutRepository(u.handle())
	}
	return u.payouts
}

// State returns the state repository
func (u *unitOfWork) State() interfaces.StateRepository {
	if u.state == nil {
		u.state = NewStateRepository(u.handle())
	}
	return u.state
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Commit().Error
	u.reset()
	return err
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback().Error
	u.reset()
	return err
}

// handle returns the transaction when one is open, the base handle otherwise.
func (u *unitOfWork) handle() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// reset clears the transaction-bound repositories.
func (u *unitOfWork) reset() {
	u.tx = nil
	u.rounds = nil
	u.tickets = nil
	u.payouts = nil
	u.state = nil
}
