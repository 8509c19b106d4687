package engine

import (
	"context"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
)

// CheckWinners performs the draw for the current round. The draw is permitted
// once the sale window has closed and exactly once per round; any caller may
// trigger it. Winner counts per tier are computed and fixed at draw time so
// that later claims divide against a stable denominator regardless of claim
// order.
func (e *Engine) CheckWinners(ctx context.Context, call Call) (entities.Picks, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.current()
	if r == nil || call.Height < r.CloseHeight {
		return entities.Picks{}, fail(errors.OpCheckWinners, call.Height, errors.ErrTooEarly)
	}
	if r.Drawn {
		return entities.Picks{}, fail(errors.OpCheckWinners, call.Height, errors.ErrAlreadyDrawn)
	}
	if e.source == nil {
		return entities.Picks{}, fail(errors.OpCheckWinners, call.Height, errors.ErrOracleUnavailable)
	}

	snapshot := *r
	winning, err := e.source.Draw(ctx, &snapshot)
	if err != nil {
		e.logger.Error("randomness source failed", "round_id", r.ID, "error", err)
		return entities.Picks{}, fail(errors.OpCheckWinners, call.Height, errors.ErrOracleUnavailable)
	}

	r.WinningNumbers = winning
	r.Drawn = true
	r.WinnerCounts = entities.CountWinners(e.ticketsOfRoundLocked(r.ID), winning)

	e.logger.Info("round drawn",
		"round_id", r.ID,
		"height", call.Height,
		"winning_numbers", winning.String(),
		"tickets", r.TicketCount)
	return winning, nil
}

func (e *Engine) ticketsOfRoundLocked(roundID uint64) []entities.Ticket {
	ptrs := e.roundTickets(roundID)
	out := make([]entities.Ticket, 0, len(ptrs))
	for _, t := range ptrs {
		out = append(out, *t)
	}
	return out
}
