// Package errors defines the domain errors of the settlement engine and the
// mapping to the numeric wire codes of the historical call surface.
package errors

import (
	"errors"
	"fmt"
)

// Domain errors. Each sentinel names one failure class; the per-operation
// numeric code an external observer sees is derived with WireCode.
var (
	// ErrRoundActive is returned when a round's claim window is still open.
	ErrRoundActive = errors.New("round still active")

	// ErrSaleClosed is returned when the sale window has passed.
	ErrSaleClosed = errors.New("ticket sale closed")

	// ErrInsufficientPayment is returned when the attached value is below the ticket price.
	ErrInsufficientPayment = errors.New("insufficient payment")

	// ErrInvalidNumbers is returned when the main numbers contain a duplicate.
	ErrInvalidNumbers = errors.New("invalid ticket numbers")

	// ErrInvalidAmount is returned when a configured price or pool amount is negative.
	ErrInvalidAmount = errors.New("negative amount")

	// ErrTooEarly is returned when the draw is triggered before the sale close height.
	ErrTooEarly = errors.New("draw not yet eligible")

	// ErrAlreadyDrawn is returned when the round's winning numbers are already set.
	ErrAlreadyDrawn = errors.New("winning numbers already drawn")

	// ErrClaimWindowClosed is returned when the round is not drawn or the deadline has passed.
	ErrClaimWindowClosed = errors.New("claim window closed")

	// ErrAlreadyClaimed is returned when a ticket's winnings were already paid.
	ErrAlreadyClaimed = errors.New("winnings already claimed")

	// ErrLocked is returned when withdrawal is attempted before the deadline.
	ErrLocked = errors.New("treasury locked")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNotOwner is returned when the caller does not own the ticket.
	ErrNotOwner = errors.New("caller is not the ticket owner")

	// ErrNotOperator is returned when the caller is not the configuring party.
	ErrNotOperator = errors.New("caller is not the operator")

	// ErrOracleUnavailable is returned when the randomness source cannot
	// produce a draw. The round stays undrawn rather than settling against
	// a fabricated result.
	ErrOracleUnavailable = errors.New("randomness source unavailable")

	// ErrInsufficientFunds is returned when a payout or withdrawal would
	// drive the treasury balance negative.
	ErrInsufficientFunds = errors.New("insufficient treasury funds")
)

// Op identifies an operation of the external call surface.
type Op string

// Call surface operations.
const (
	OpConfigure      Op = "configure"
	OpStartRound     Op = "start_round"
	OpBuyTicket      Op = "buy_ticket"
	OpTransferTicket Op = "transfer_ticket"
	OpCheckWinners   Op = "check_winners"
	OpClaimWinnings  Op = "claim_winnings"
	OpSetPayouts     Op = "set_payouts"
	OpWithdraw       Op = "withdraw"
)

// WireCodeUnmapped is returned by WireCode for failures the historical
// surface had no code for (authorization and lookup errors surface out of
// band).
const WireCodeUnmapped int64 = -127

// WireCode maps a domain error to the numeric result code of the given
// operation. Codes are scoped per operation, mirroring the single-integer
// calling convention of the original ledger surface. A nil error maps to 0.
func WireCode(op Op, err error) int64 {
	if err == nil {
		return 0
	}

	switch op {
	case OpStartRound:
		if errors.Is(err, ErrRoundActive) {
			return -1
		}
	case OpBuyTicket:
		switch {
		case errors.Is(err, ErrInsufficientPayment):
			return -1
		case errors.Is(err, ErrSaleClosed):
			return -2
		case errors.Is(err, ErrInvalidNumbers):
			return -3
		}
	case OpCheckWinners:
		switch {
		case errors.Is(err, ErrTooEarly):
			return -1
		case errors.Is(err, ErrAlreadyDrawn):
			return -2
		case errors.Is(err, ErrOracleUnavailable):
			return -3
		}
	case OpClaimWinnings:
		switch {
		case errors.Is(err, ErrClaimWindowClosed):
			return -1
		case errors.Is(err, ErrAlreadyClaimed):
			return -2
		case errors.Is(err, ErrInsufficientFunds):
			return -3
		}
	case OpWithdraw:
		switch {
		case errors.Is(err, ErrLocked):
			return -1
		case errors.Is(err, ErrInsufficientFunds):
			return -2
		}
	}

	return WireCodeUnmapped
}

// EngineError wraps a domain error with the call context it occurred in.
type EngineError struct {
	Op     Op
	Height uint64
	Err    error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("%s at height %d: %v", e.Op, e.Height, e.Err)
}

// Is implements the errors.Is interface.
func (e *EngineError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// Unwrap implements the errors.Unwrap interface.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// ChainError represents a failure observing the host chain.
type ChainError struct {
	Operation   string
	ChainID     int64
	BlockNumber uint64
	Err         error
}

// Error implements the error interface.
func (e *ChainError) Error() string {
	return fmt.Sprintf("chain error during %s on chain %d at block %d: %v",
		e.Operation, e.ChainID, e.BlockNumber, e.Err)
}

// Unwrap implements the errors.Unwrap interface.
func (e *ChainError) Unwrap() error {
	return e.Err
}

// RepositoryError represents a persistence failure.
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface.
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s on %s: %v",
		e.Operation, e.Entity, e.Err)
}

// Unwrap implements the errors.Unwrap interface.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error with field-specific messages.
type ValidationError struct {
	Fields map[string][]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d fields", len(e.Fields))
}

// AddFieldError adds a field-specific error.
func (e *ValidationError) AddFieldError(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors returns true if there are any field errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
