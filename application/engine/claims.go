package engine

import (
	"github.com/google/uuid"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
)

// ClaimWinnings pays out a winning ticket. The share is the tier pool divided
// by the tier's winner count fixed at draw time, rounded down; the division
// remainder stays in the treasury. A tier share of zero still marks the
// ticket claimed, so losing tickets cannot be retried.
func (e *Engine) ClaimWinnings(call Call, ticketID uint64) (*entities.Payout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[ticketID]
	if !ok {
		return nil, fail(errors.OpClaimWinnings, call.Height, errors.ErrNotFound)
	}
	if t.Owner != call.Caller {
		return nil, fail(errors.OpClaimWinnings, call.Height, errors.ErrNotOwner)
	}
	r := e.roundByID(t.RoundID)
	if r == nil {
		return nil, fail(errors.OpClaimWinnings, call.Height, errors.ErrNotFound)
	}
	if !r.ClaimEligible(call.Height) {
		return nil, fail(errors.OpClaimWinnings, call.Height, errors.ErrClaimWindowClosed)
	}
	if t.Claimed {
		return nil, fail(errors.OpClaimWinnings, call.Height, errors.ErrAlreadyClaimed)
	}

	tier := entities.TierIndex(t.Numbers, r.WinningNumbers)
	share := int64(0)
	if winners := r.WinnerCounts[tier]; winners > 0 {
		share = e.payouts[tier] / winners
	}
	if share > e.treasury {
		return nil, fail(errors.OpClaimWinnings, call.Height, errors.ErrInsufficientFunds)
	}

	t.Claimed = true
	e.treasury -= share

	p := &entities.Payout{
		CallID:    uuid.NewString(),
		RoundID:   r.ID,
		TicketID:  t.ID,
		Tier:      tier,
		Amount:    share,
		Recipient: t.Owner,
		Height:    call.Height,
	}
	e.logger.Info("winnings claimed",
		"ticket_id", t.ID,
		"round_id", r.ID,
		"tier", tier,
		"amount", share,
		"recipient", t.Owner.Hex())
	return p, nil
}
