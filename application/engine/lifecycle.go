package engine

import (
	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
)

// Configure stores the process-wide round configuration and credits any
// attached funding to the treasury. It is rejected while a round's claim
// window is still open. The first caller becomes the operator; later
// reconfiguration is restricted to that party.
func (e *Engine) Configure(call Call, cfg entities.GameConfig) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if r := e.current(); r != nil && !r.WithdrawalEligible(call.Height) {
		return fail(errors.OpConfigure, call.Height, errors.ErrRoundActive)
	}
	// Validate before requireOperator so a rejected first configure does not
	// pin its caller as the operator.
	if cfg.TicketPrice < 0 {
		return fail(errors.OpConfigure, call.Height, errors.ErrInvalidAmount)
	}
	if err := e.requireOperator(call); err != nil {
		return fail(errors.OpConfigure, call.Height, err)
	}

	cfg.Normalize()
	e.config = cfg
	e.treasury += call.Value

	e.logger.Info("configuration updated",
		"ticket_price", cfg.TicketPrice,
		"oracle", cfg.OracleRef,
		"sale_close_offset", cfg.SaleCloseOffset,
		"claim_deadline_offset", cfg.ClaimDeadlineOffset,
		"funding", call.Value,
		"treasury", e.treasury)
	return nil
}

// SetPayouts replaces the payout table. Like Configure, it is only allowed
// between rounds and only by the operator. The table persists across rounds.
func (e *Engine) SetPayouts(call Call, table entities.PayoutTable) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if r := e.current(); r != nil && !r.WithdrawalEligible(call.Height) {
		return fail(errors.OpSetPayouts, call.Height, errors.ErrRoundActive)
	}
	for _, pool := range table {
		if pool < 0 {
			return fail(errors.OpSetPayouts, call.Height, errors.ErrInvalidAmount)
		}
	}
	if err := e.requireOperator(call); err != nil {
		return fail(errors.OpSetPayouts, call.Height, err)
	}

	e.payouts = table
	e.logger.Info("payout table updated", "table", table.String())
	return nil
}

// StartRound opens a new round at the call height. It fails with
// ErrRoundActive while the previous round's claim deadline has not passed,
// so no two claim windows ever overlap. Attached value funds the treasury.
func (e *Engine) StartRound(call Call) (entities.Round, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if r := e.current(); r != nil && !r.WithdrawalEligible(call.Height) {
		return entities.Round{}, fail(errors.OpStartRound, call.Height, errors.ErrRoundActive)
	}

	round := &entities.Round{
		ID:             uint64(len(e.rounds)) + 1,
		StartHeight:    call.Height,
		CloseHeight:    call.Height + e.config.SaleCloseOffset,
		DeadlineHeight: call.Height + e.config.ClaimDeadlineOffset,
	}
	e.rounds = append(e.rounds, round)
	e.treasury += call.Value

	e.logger.Info("round started",
		"round_id", round.ID,
		"start_height", round.StartHeight,
		"close_height", round.CloseHeight,
		"deadline_height", round.DeadlineHeight,
		"funding", call.Value)
	return *round, nil
}

// Withdraw pays out treasury funds to the operator. It is locked while the
// active round has not passed its claim deadline.
func (e *Engine) Withdraw(call Call, amount int64) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if call.Caller != e.operator || e.operator.IsZero() {
		return 0, fail(errors.OpWithdraw, call.Height, errors.ErrNotOperator)
	}
	if r := e.current(); r != nil && !r.WithdrawalEligible(call.Height) {
		return 0, fail(errors.OpWithdraw, call.Height, errors.ErrLocked)
	}
	if amount < 0 || amount > e.treasury {
		return 0, fail(errors.OpWithdraw, call.Height, errors.ErrInsufficientFunds)
	}

	e.treasury -= amount
	e.logger.Info("treasury withdrawal",
		"amount", amount,
		"recipient", call.Caller.Hex(),
		"treasury", e.treasury)
	return amount, nil
}

// requireOperator pins the operator on first use and rejects other callers
// afterwards. Must be called with the engine lock held.
func (e *Engine) requireOperator(call Call) error {
	if e.operator.IsZero() {
		e.operator = call.Caller
		return nil
	}
	if call.Caller != e.operator {
		return errors.ErrNotOperator
	}
	return nil
}
