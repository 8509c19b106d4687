// Package usecases contains application use cases that orchestrate the
// settlement engine. It implements the primary operations for drawing,
// watching, and reporting on lottery rounds.
package usecases

import (
	"context"

	"lotto-engine/application/engine"
	"lotto-engine/domain/dto"
	"lotto-engine/domain/interfaces"
)

// drawRoundUseCase implements the DrawRoundUseCase interface.
type drawRoundUseCase struct {
	engine   *engine.Engine
	chain    interfaces.ChainReader
	uow      interfaces.UnitOfWork
	notifier interfaces.Notifier
	logger   interfaces.Logger
}

// NewDrawRoundUseCase creates a new draw round use case.
func NewDrawRoundUseCase(
	eng *engine.Engine,
	chain interfaces.ChainReader,
	uow interfaces.UnitOfWork,
	notifier interfaces.Notifier,
	logger interfaces.Logger,
) interfaces.DrawRoundUseCase {
	return &drawRoundUseCase{
		engine:   eng,
		chain:    chain,
		uow:      uow,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute triggers the draw for the active round and persists the result.
func (uc *drawRoundUseCase) Execute(
	ctx context.Context,
	params interfaces.DrawRoundParams,
) (*dto.DrawResult, error) {
	height, err := uc.resolveHeight(ctx, params.Height)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Triggering draw", "height", height)

	winning, err := uc.engine.CheckWinners(ctx, engine.Call{
		Caller: uc.engine.Operator(),
		Height: height,
	})
	if err != nil {
		return nil, err
	}

	round, ok := uc.engine.CurrentRound()
	if !ok {
		// CheckWinners succeeded, so a round must exist.
		panic("draw succeeded without a round")
	}

	if err := uc.persist(ctx); err != nil {
		uc.logger.Error("Failed to persist draw", "round_id", round.ID, "error", err)
		return nil, err
	}

	result := &dto.DrawResult{
		RoundID:        round.ID,
		Height:         height,
		WinningNumbers: winning,
		WinnerCounts:   round.WinnerCounts,
		TicketCount:    round.TicketCount,
	}

	if uc.notifier != nil && uc.notifier.IsConfigured() {
		if err := uc.notifier.AnnounceDraw(ctx, result); err != nil {
			// The draw is already ledger fact; notification failures must
			// not surface as draw failures.
			uc.logger.Warn("Failed to announce draw", "error", err)
		}
	}

	return result, nil
}

// resolveHeight uses the override when given, otherwise reads the chain.
func (uc *drawRoundUseCase) resolveHeight(ctx context.Context, override *uint64) (uint64, error) {
	if override != nil {
		return *override, nil
	}
	return uc.chain.BlockHeight(ctx)
}

// persist writes the drawn round and engine state in one transaction.
func (uc *drawRoundUseCase) persist(ctx context.Context) error {
	if uc.uow == nil {
		return nil
	}
	if err := uc.uow.Begin(); err != nil {
		return err
	}
	round, _ := uc.engine.CurrentRound()
	if err := uc.uow.Rounds().Save(ctx, &round); err != nil {
		_ = uc.uow.Rollback()
		return err
	}
	if err := uc.uow.State().Save(ctx, uc.engine.State()); err != nil {
		_ = uc.uow.Rollback()
		return err
	}
	return uc.uow.Commit()
}
