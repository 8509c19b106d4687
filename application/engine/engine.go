// Package engine implements the deterministic lottery settlement core: round
// lifecycle, ticket ledger, draw coordination, payout classification, and
// treasury accounting. All state-mutating calls are serialized through a
// single mutex, mirroring the one-call-at-a-time execution of the host
// ledger. The engine never reads the wall clock; time progress is observed
// through the block height supplied with each call.
package engine

import (
	"sync"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
)

// Call carries the host-supplied execution context of one serialized call:
// the caller identity, the block height observed at call start, and the value
// attached to the call.
type Call struct {
	Caller entities.Address
	Height uint64
	Value  int64
}

// Engine is the settlement state machine. A failing call leaves all state
// exactly as it was; effects of a successful call apply atomically under the
// engine mutex.
type Engine struct {
	mu     sync.Mutex
	logger interfaces.Logger
	source interfaces.RandomnessSource

	operator     entities.Address
	config       entities.GameConfig
	payouts      entities.PayoutTable
	treasury     int64
	nextTicketID uint64
	rounds       []*entities.Round
	tickets      map[uint64]*entities.Ticket
	byRound      map[uint64][]uint64
}

// New creates an empty engine. The randomness source may be nil; the draw
// then fails with ErrOracleUnavailable until one is configured.
func New(source interfaces.RandomnessSource, logger interfaces.Logger) *Engine {
	return &Engine{
		logger:  logger,
		source:  source,
		tickets: make(map[uint64]*entities.Ticket),
		byRound: make(map[uint64][]uint64),
	}
}

// fail wraps a domain error with its call context.
func fail(op errors.Op, height uint64, err error) error {
	return &errors.EngineError{Op: op, Height: height, Err: err}
}

// current returns the latest round, or nil before the first start.
func (e *Engine) current() *entities.Round {
	if len(e.rounds) == 0 {
		return nil
	}
	return e.rounds[len(e.rounds)-1]
}

// roundByID returns a round pointer by id, or nil.
func (e *Engine) roundByID(id uint64) *entities.Round {
	if id == 0 || id > uint64(len(e.rounds)) {
		return nil
	}
	return e.rounds[id-1]
}

// Operator returns the configuring party.
func (e *Engine) Operator() entities.Address {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.operator
}

// Config returns the active configuration.
func (e *Engine) Config() entities.GameConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.config
}

// PayoutTable returns the configured payout table.
func (e *Engine) PayoutTable() entities.PayoutTable {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.payouts
}

// Balance returns the treasury balance.
func (e *Engine) Balance() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.treasury
}

// NextTicketID returns the id the next sold ticket will receive.
func (e *Engine) NextTicketID() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextTicketID
}

// CurrentRound returns a copy of the active round.
func (e *Engine) CurrentRound() (entities.Round, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.current()
	if r == nil {
		return entities.Round{}, false
	}
	return *r, true
}

// Round returns a copy of the round with the given id.
func (e *Engine) Round(id uint64) (entities.Round, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.roundByID(id)
	if r == nil {
		return entities.Round{}, errors.ErrNotFound
	}
	return *r, nil
}

// Rounds returns copies of all rounds ordered by id.
func (e *Engine) Rounds() []entities.Round {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]entities.Round, 0, len(e.rounds))
	for _, r := range e.rounds {
		out = append(out, *r)
	}
	return out
}

// State exports the persistable singleton state.
func (e *Engine) State() *entities.EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return &entities.EngineState{
		ID:              entities.EngineStateID,
		Operator:        e.operator,
		Config:          e.config,
		Payouts:         e.payouts,
		TreasuryBalance: e.treasury,
		NextTicketID:    e.nextTicketID,
	}
}

// roundTickets returns the ticket pointers of a round in sale order.
func (e *Engine) roundTickets(roundID uint64) []*entities.Ticket {
	ids := e.byRound[roundID]
	out := make([]*entities.Ticket, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.tickets[id])
	}
	return out
}
