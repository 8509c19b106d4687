package usecases

import (
	"context"

	"lotto-engine/application/engine"
	"lotto-engine/domain/dto"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
)

// watchRoundUseCase implements the WatchRoundUseCase interface.
type watchRoundUseCase struct {
	engine *engine.Engine
	chain  interfaces.ChainReader
	draw   interfaces.DrawRoundUseCase
	logger interfaces.Logger
}

// NewWatchRoundUseCase creates a new watch round use case.
func NewWatchRoundUseCase(
	eng *engine.Engine,
	chain interfaces.ChainReader,
	draw interfaces.DrawRoundUseCase,
	logger interfaces.Logger,
) interfaces.WatchRoundUseCase {
	return &watchRoundUseCase{
		engine: eng,
		chain:  chain,
		draw:   draw,
		logger: logger,
	}
}

// Execute observes the active round's window state at the current chain
// height and, when enabled, triggers the draw the moment it is eligible.
func (uc *watchRoundUseCase) Execute(
	ctx context.Context,
	params interfaces.WatchRoundParams,
) (*dto.WatchResult, error) {
	height, err := uc.chain.BlockHeight(ctx)
	if err != nil {
		return nil, err
	}

	round, ok := uc.engine.CurrentRound()
	if !ok {
		return nil, errors.ErrNotFound
	}

	result := &dto.WatchResult{
		Height:        height,
		RoundID:       round.ID,
		Status:        round.Status(height),
		SaleOpen:      round.SaleOpen(height),
		DrawEligible:  round.DrawEligible(height),
		ClaimEligible: round.ClaimEligible(height),
	}

	uc.logger.Debug("Round observed",
		"round_id", round.ID,
		"height", height,
		"status", result.Status)

	if params.TriggerDraw && result.DrawEligible {
		drawResult, err := uc.draw.Execute(ctx, interfaces.DrawRoundParams{Height: &height})
		if err != nil {
			uc.logger.Error("Failed to trigger draw", "round_id", round.ID, "error", err)
			return nil, err
		}
		result.DrawTriggered = true
		result.Draw = drawResult
		if r, ok := uc.engine.CurrentRound(); ok {
			result.Status = r.Status(height)
		}
	}

	return result, nil
}
