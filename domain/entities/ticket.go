package entities

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Number layout of a ticket: five main numbers followed by one bonus slot.
const (
	PickCount = 6
	MainCount = 5
	BonusSlot = 5
)

// Picks holds the six numbers of a ticket or a draw. The first five are the
// main numbers, the last is the bonus slot.
type Picks [PickCount]int64

// ParsePicks parses comma-separated text into Picks.
func ParsePicks(s string) (Picks, error) {
	var p Picks
	if err := splitInt64s(s, p[:]); err != nil {
		return Picks{}, fmt.Errorf("invalid picks: %w", err)
	}
	return p, nil
}

// Valid reports whether the main numbers are pairwise distinct. The bonus
// slot may repeat a main number.
func (p Picks) Valid() bool {
	for i := 0; i < MainCount; i++ {
		for j := i + 1; j < MainCount; j++ {
			if p[i] == p[j] {
				return false
			}
		}
	}
	return true
}

// Mains returns the five main numbers.
func (p Picks) Mains() [MainCount]int64 {
	var m [MainCount]int64
	copy(m[:], p[:MainCount])
	return m
}

// Bonus returns the bonus number.
func (p Picks) Bonus() int64 {
	return p[BonusSlot]
}

// String renders the picks as comma-separated text.
func (p Picks) String() string {
	return joinInt64s(p[:])
}

// Scan implements the sql.Scanner interface.
func (p *Picks) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = Picks{}
		return nil
	case string:
		return splitInt64s(v, p[:])
	case []byte:
		return splitInt64s(string(v), p[:])
	default:
		return fmt.Errorf("cannot scan type %T into Picks", value)
	}
}

// Value implements the driver.Valuer interface.
func (p Picks) Value() (driver.Value, error) {
	return p.String(), nil
}

// Ticket represents a sold lottery ticket. Ids are unique across the engine's
// lifetime and monotonically increasing from 0; they are never reset between
// rounds. Only the owner and the claimed flag ever change after creation.
type Ticket struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	RoundID   uint64  `gorm:"index" json:"round_id"`
	Owner     Address `gorm:"type:varchar(42);index" json:"owner"`
	Numbers   Picks   `gorm:"type:text" json:"numbers"`
	Claimed   bool    `json:"claimed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
