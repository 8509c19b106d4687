package entities

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TierCount is the number of payout tiers: one per combination of main-match
// count (0-5) and bonus-match flag.
const TierCount = 12

// TierIndex classifies a ticket against a draw. Matching is positional: a
// main number counts only when it equals the winning number in the same slot.
func TierIndex(ticket, winning Picks) int {
	mainMatches := 0
	for i := 0; i < MainCount; i++ {
		if ticket[i] == winning[i] {
			mainMatches++
		}
	}
	bonusMismatch := 1
	if ticket[BonusSlot] == winning[BonusSlot] {
		bonusMismatch = 0
	}
	return 2*mainMatches + bonusMismatch
}

// PayoutTable is the configured prize pool per tier, indexed by TierIndex.
type PayoutTable [TierCount]int64

// ParsePayoutTable parses comma-separated text into a PayoutTable.
func ParsePayoutTable(s string) (PayoutTable, error) {
	var t PayoutTable
	if err := splitInt64s(s, t[:]); err != nil {
		return PayoutTable{}, fmt.Errorf("invalid payout table: %w", err)
	}
	return t, nil
}

// String renders the table as comma-separated text.
func (t PayoutTable) String() string {
	return joinInt64s(t[:])
}

// Scan implements the sql.Scanner interface.
func (t *PayoutTable) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = PayoutTable{}
		return nil
	case string:
		return splitInt64s(v, t[:])
	case []byte:
		return splitInt64s(string(v), t[:])
	default:
		return fmt.Errorf("cannot scan type %T into PayoutTable", value)
	}
}

// Value implements the driver.Valuer interface.
func (t PayoutTable) Value() (driver.Value, error) {
	return t.String(), nil
}

// TierCounts records how many tickets of a round classified into each tier.
type TierCounts [TierCount]int64

// String renders the counts as comma-separated text.
func (c TierCounts) String() string {
	return joinInt64s(c[:])
}

// Scan implements the sql.Scanner interface.
func (c *TierCounts) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*c = TierCounts{}
		return nil
	case string:
		return splitInt64s(v, c[:])
	case []byte:
		return splitInt64s(string(v), c[:])
	default:
		return fmt.Errorf("cannot scan type %T into TierCounts", value)
	}
}

// Value implements the driver.Valuer interface.
func (c TierCounts) Value() (driver.Value, error) {
	return c.String(), nil
}

// CountWinners classifies every ticket of a round against the draw. The
// result is stored on the round at draw time and never recomputed.
func CountWinners(tickets []Ticket, winning Picks) TierCounts {
	var counts TierCounts
	for i := range tickets {
		counts[TierIndex(tickets[i].Numbers, winning)]++
	}
	return counts
}

// Payout is the audit record of a single claim settlement.
type Payout struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CallID    string    `gorm:"type:varchar(36)" json:"call_id"`
	RoundID   uint64    `gorm:"index" json:"round_id"`
	TicketID  uint64    `gorm:"index" json:"ticket_id"`
	Tier      int       `json:"tier"`
	Amount    int64     `json:"amount"`
	Recipient Address   `gorm:"type:varchar(42)" json:"recipient"`
	Height    uint64    `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}
