package interfaces

import (
	"context"
	"io"

	"lotto-engine/domain/dto"
	"lotto-engine/domain/entities"
)

// DrawRoundUseCase triggers the draw for the active round once it is
// draw-eligible and persists the result.
type DrawRoundUseCase interface {
	// Execute performs the draw.
	Execute(ctx context.Context, params DrawRoundParams) (*dto.DrawResult, error)
}

// DrawRoundParams represents parameters for the draw trigger.
type DrawRoundParams struct {
	// Height overrides the chain height when set; otherwise the current
	// height is read from the chain.
	Height *uint64
}

// WatchRoundUseCase observes the active round's window state and optionally
// triggers the draw when it becomes eligible.
type WatchRoundUseCase interface {
	// Execute performs one observation.
	Execute(ctx context.Context, params WatchRoundParams) (*dto.WatchResult, error)
}

// WatchRoundParams represents parameters for a watch observation.
type WatchRoundParams struct {
	TriggerDraw bool
}

// SettlementReportUseCase builds and renders the settlement report of a round.
type SettlementReportUseCase interface {
	// Execute writes the report to the output writer.
	Execute(ctx context.Context, params SettlementReportParams) error
}

// SettlementReportParams represents parameters for report generation.
type SettlementReportParams struct {
	RoundID      uint64
	OutputWriter io.Writer
	OutputFormat OutputFormat
}

// OutputFormat represents the report output format.
type OutputFormat string

// OutputFormat constants.
const (
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// ReportBuilder assembles settlement reports from recorded state.
type ReportBuilder interface {
	// BuildRoundReport summarizes a round's settlement at the given height.
	BuildRoundReport(
		round *entities.Round,
		tickets []entities.Ticket,
		payouts []entities.Payout,
		table entities.PayoutTable,
		height uint64,
	) (*dto.RoundReport, error)

	// Render encodes a report in the given format.
	Render(report *dto.RoundReport, format OutputFormat) ([]byte, error)
}
