package interfaces

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"lotto-engine/domain/entities"
)

// ChainReader observes the host ledger. The engine never waits on the chain;
// it reads the height once at the start of a call and compares it against the
// stored round windows.
type ChainReader interface {
	// BlockHeight returns the current block height.
	BlockHeight(ctx context.Context) (uint64, error)

	// BlockHash returns the hash of the block at the given height.
	BlockHash(ctx context.Context, height uint64) (common.Hash, error)

	// Close closes the chain connection.
	Close() error
}

// RandomnessSource supplies the six-number draw for a round. It is invoked at
// most once per round; the result becomes permanent ledger fact. A source
// that cannot produce a draw must return an error rather than a zero result.
type RandomnessSource interface {
	// Draw produces the winning numbers for the round.
	Draw(ctx context.Context, round *entities.Round) (entities.Picks, error)
}
