package blockchain

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/interfaces"
)

// drawNumberMax is the inclusive upper bound of generated draw numbers.
const drawNumberMax = 50

// blockHashSource derives the draw from the hash of the block that closed
// the sale window. The block is committed before the draw can be triggered,
// so the result is fixed the moment sales close and every node replays the
// same draw for the same round.
type blockHashSource struct {
	chain  interfaces.ChainReader
	logger interfaces.Logger
}

// NewBlockHashSource creates a randomness source seeded by block hashes.
func NewBlockHashSource(chain interfaces.ChainReader, logger interfaces.Logger) interfaces.RandomnessSource {
	return &blockHashSource{
		chain:  chain,
		logger: logger,
	}
}

// Draw produces the winning numbers for the round.
func (s *blockHashSource) Draw(ctx context.Context, round *entities.Round) (entities.Picks, error) {
	hash, err := s.chain.BlockHash(ctx, round.CloseHeight)
	if err != nil {
		return entities.Picks{}, err
	}

	var roundID [8]byte
	binary.BigEndian.PutUint64(roundID[:], round.ID)
	seed := crypto.Keccak256(hash.Bytes(), roundID[:])

	var picks entities.Picks
	seen := make(map[int64]bool, entities.MainCount)
	counter := uint64(0)
	for slot := 0; slot < entities.PickCount; {
		n := nextNumber(seed, counter)
		counter++
		// Main numbers must be pairwise distinct; the bonus slot may
		// repeat any of them.
		if slot < entities.MainCount && seen[n] {
			continue
		}
		picks[slot] = n
		seen[n] = true
		slot++
	}

	s.logger.Debug("block-hash draw derived",
		"round_id", round.ID,
		"close_height", round.CloseHeight,
		"numbers", picks.String())
	return picks, nil
}

// nextNumber expands the seed into the counter-th candidate number.
func nextNumber(seed []byte, counter uint64) int64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)
	digest := sha256.Sum256(append(seed, buf[:]...))
	return int64(binary.BigEndian.Uint64(digest[:8])%drawNumberMax) + 1
}

// staticSource always draws the same numbers. It exists for local runs and
// round replays where the draw has to be pinned up front.
type staticSource struct {
	numbers entities.Picks
}

// NewStaticSource creates a randomness source with a pinned draw.
func NewStaticSource(numbers entities.Picks) interfaces.RandomnessSource {
	return &staticSource{numbers: numbers}
}

// Draw returns the pinned numbers.
func (s *staticSource) Draw(_ context.Context, _ *entities.Round) (entities.Picks, error) {
	return s.numbers, nil
}

// NewRandomnessSource builds a source from its configured reference:
// "none" or empty disables the oracle, "blockhash" derives draws from chain
// data, and "fixed:n,n,n,n,n,n" pins the draw.
func NewRandomnessSource(ref string, chain interfaces.ChainReader, logger interfaces.Logger) (interfaces.RandomnessSource, error) {
	switch {
	case ref == "" || ref == "none":
		return nil, nil
	case ref == "blockhash":
		if chain == nil {
			return nil, fmt.Errorf("blockhash randomness requires a chain connection")
		}
		return NewBlockHashSource(chain, logger), nil
	case strings.HasPrefix(ref, "fixed:"):
		picks, err := entities.ParsePicks(strings.TrimPrefix(ref, "fixed:"))
		if err != nil {
			return nil, fmt.Errorf("invalid fixed randomness source %q: %w", ref, err)
		}
		return NewStaticSource(picks), nil
	default:
		return nil, fmt.Errorf("unknown randomness source %q", ref)
	}
}
