package entities

import "time"

// GameConfig is the process-wide round configuration. It is mutable only
// while no round is in its sale, draw, or claim window, and persists across
// rounds until changed.
type GameConfig struct {
	// TicketPrice is the minimum payment for one ticket.
	TicketPrice int64 `json:"ticket_price"`

	// OracleRef names the randomness source. Empty means no oracle is
	// configured and the block-hash fallback applies.
	OracleRef string `json:"oracle_ref"`

	// SaleCloseOffset is the number of blocks after round start during
	// which ticket sales are open.
	SaleCloseOffset uint64 `json:"sale_close_offset"`

	// ClaimDeadlineOffset is the number of blocks after round start after
	// which claims close and withdrawal opens. Normalized at configure
	// time to be at least SaleCloseOffset.
	ClaimDeadlineOffset uint64 `json:"claim_deadline_offset"`
}

// Normalize clamps the claim deadline so it never precedes the sale close.
func (c *GameConfig) Normalize() {
	if c.ClaimDeadlineOffset < c.SaleCloseOffset {
		c.ClaimDeadlineOffset = c.SaleCloseOffset
	}
}

// EngineState is the persisted singleton row holding everything the engine
// needs beyond rounds and tickets to rebuild its deterministic state.
type EngineState struct {
	ID              uint32      `gorm:"primaryKey" json:"id"`
	Operator        Address     `gorm:"type:varchar(42)" json:"operator"`
	Config          GameConfig  `gorm:"embedded" json:"config"`
	Payouts         PayoutTable `gorm:"type:text" json:"payouts"`
	TreasuryBalance int64       `json:"treasury_balance"`
	NextTicketID    uint64      `json:"next_ticket_id"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// EngineStateID is the fixed primary key of the singleton state row.
const EngineStateID uint32 = 1
