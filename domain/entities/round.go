package entities

import "time"

// RoundStatus represents the lifecycle state of a round. Transitions driven
// by block height are observed, never scheduled: the status is recomputed
// from the stored heights on every call.
type RoundStatus string

// Round status constants.
const (
	RoundStatusOpen         RoundStatus = "Open"
	RoundStatusAwaitingDraw RoundStatus = "AwaitingDraw"
	RoundStatusDrawn        RoundStatus = "Drawn"
	RoundStatusFinalized    RoundStatus = "Finalized"
)

// Round represents one drawing cycle. Winning numbers are write-once: they
// are set by the first successful draw and never change afterwards. The
// per-tier winner counts are fixed at draw time so every claimant in a tier
// divides the same pool regardless of claim order.
type Round struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	StartHeight    uint64     `json:"start_height"`
	CloseHeight    uint64     `json:"close_height"`
	DeadlineHeight uint64     `json:"deadline_height"`
	Drawn          bool       `json:"drawn"`
	WinningNumbers Picks      `gorm:"type:text" json:"winning_numbers"`
	WinnerCounts   TierCounts `gorm:"type:text" json:"winner_counts"`
	TicketCount    int64      `json:"ticket_count"`
	Revenue        int64      `json:"revenue"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SaleOpen reports whether tickets may still be sold at the given height.
func (r *Round) SaleOpen(height uint64) bool {
	return height < r.CloseHeight
}

// DrawEligible reports whether the draw may be triggered at the given height.
func (r *Round) DrawEligible(height uint64) bool {
	return height >= r.CloseHeight && !r.Drawn
}

// ClaimEligible reports whether winnings may be claimed at the given height.
func (r *Round) ClaimEligible(height uint64) bool {
	return r.Drawn && height < r.DeadlineHeight
}

// WithdrawalEligible reports whether the operator may withdraw and a new
// round may start at the given height.
func (r *Round) WithdrawalEligible(height uint64) bool {
	return height >= r.DeadlineHeight
}

// Status computes the observed lifecycle state at the given height. Past the
// deadline the round is Finalized whether or not it was drawn: claims are
// impossible either way and withdrawal is open.
func (r *Round) Status(height uint64) RoundStatus {
	if height >= r.DeadlineHeight {
		return RoundStatusFinalized
	}
	if !r.Drawn {
		if r.SaleOpen(height) {
			return RoundStatusOpen
		}
		return RoundStatusAwaitingDraw
	}
	return RoundStatusDrawn
}
