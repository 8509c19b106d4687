package usecases

import (
	"context"
	"fmt"

	"lotto-engine/domain/entities"
	"lotto-engine/domain/errors"
	"lotto-engine/domain/interfaces"
)

// settlementReportUseCase implements the SettlementReportUseCase interface.
type settlementReportUseCase struct {
	rounds   interfaces.RoundRepository
	tickets  interfaces.TicketRepository
	payouts  interfaces.PayoutRepository
	state    interfaces.StateRepository
	chain    interfaces.ChainReader
	reporter interfaces.ReportBuilder
	logger   interfaces.Logger
}

// NewSettlementReportUseCase creates a new settlement report use case.
func NewSettlementReportUseCase(
	rounds interfaces.RoundRepository,
	tickets interfaces.TicketRepository,
	payouts interfaces.PayoutRepository,
	state interfaces.StateRepository,
	chain interfaces.ChainReader,
	reporter interfaces.ReportBuilder,
	logger interfaces.Logger,
) interfaces.SettlementReportUseCase {
	return &settlementReportUseCase{
		rounds:   rounds,
		tickets:  tickets,
		payouts:  payouts,
		state:    state,
		chain:    chain,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute builds the settlement report of a round from the persisted records
// and writes it to the output writer. A round id of zero selects the latest
// round.
func (uc *settlementReportUseCase) Execute(
	ctx context.Context,
	params interfaces.SettlementReportParams,
) error {
	if params.OutputWriter == nil {
		return fmt.Errorf("output writer is required")
	}

	round, err := uc.loadRound(ctx, params.RoundID)
	if err != nil {
		return err
	}

	tickets, err := uc.tickets.FindByRound(ctx, round.ID)
	if err != nil {
		return err
	}
	payouts, err := uc.payouts.FindByRound(ctx, round.ID)
	if err != nil {
		return err
	}
	state, err := uc.state.Load(ctx)
	if err != nil {
		return err
	}

	height, err := uc.chain.BlockHeight(ctx)
	if err != nil {
		return err
	}

	report, err := uc.reporter.BuildRoundReport(round, tickets, payouts, state.Payouts, height)
	if err != nil {
		return err
	}

	out, err := uc.reporter.Render(report, params.OutputFormat)
	if err != nil {
		return err
	}

	uc.logger.Info("Settlement report generated",
		"round_id", round.ID,
		"format", string(params.OutputFormat),
		"bytes", len(out))

	_, err = params.OutputWriter.Write(out)
	return err
}

func (uc *settlementReportUseCase) loadRound(ctx context.Context, id uint64) (*entities.Round, error) {
	if id == 0 {
		round, err := uc.rounds.FindLatest(ctx)
		if err != nil {
			return nil, err
		}
		if round == nil {
			return nil, errors.ErrNotFound
		}
		return round, nil
	}
	return uc.rounds.FindByID(ctx, id)
}
