// Package entities contains the core domain entities for the lottery
// settlement engine. It defines structures for rounds, tickets, payouts, and
// the persisted engine state.
package entities

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address is a wrapper for common.Address that persists as a hex string.
type Address struct {
	common.Address
}

// AddrFromHex creates an Address from a hex string.
func AddrFromHex(s string) Address {
	return Address{common.HexToAddress(s)}
}

// Scan implements the sql.Scanner interface.
func (a *Address) Scan(value interface{}) error {
	if value == nil {
		a.Address = common.Address{}
		return nil
	}

	switch v := value.(type) {
	case string:
		a.Address = common.HexToAddress(v)
		return nil
	case []byte:
		a.Address = common.HexToAddress(string(v))
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into Address", value)
	}
}

// Value implements the driver.Valuer interface.
func (a Address) Value() (driver.Value, error) {
	return a.Hex(), nil
}

// IsZero reports whether the address is the zero address.
func (a Address) IsZero() bool {
	return a.Address == (common.Address{})
}

// joinInt64s renders a fixed-width integer sequence as comma-separated text.
func joinInt64s(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

// splitInt64s parses comma-separated text into dst. The element count must
// match exactly.
func splitInt64s(s string, dst []int64) error {
	if s == "" {
		for i := range dst {
			dst[i] = 0
		}
		return nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != len(dst) {
		return fmt.Errorf("expected %d values, got %d", len(dst), len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q at position %d: %w", p, i, err)
		}
		dst[i] = v
	}
	return nil
}
