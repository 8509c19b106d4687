package services

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"

	"lotto-engine/domain/dto"
	"lotto-engine/domain/entities"
	"lotto-engine/domain/interfaces"
)

// settlementReporter implements the ReportBuilder interface
type settlementReporter struct {
	logger interfaces.Logger
}

// NewSettlementReporter creates a new settlement report builder
func NewSettlementReporter(logger interfaces.Logger) interfaces.ReportBuilder {
	return &settlementReporter{
		logger: logger,
	}
}

// BuildRoundReport summarizes a round's settlement at the given height. Tier
// shares are recomputed from the winner counts fixed at draw time, so the
// report reproduces exactly what each claimant was (or will be) paid.
func (r *settlementReporter) BuildRoundReport(
	round *entities.Round,
	tickets []entities.Ticket,
	payouts []entities.Payout,
	table entities.PayoutTable,
	height uint64,
) (*dto.RoundReport, error) {
	if round == nil {
		return nil, fmt.Errorf("round is required")
	}

	report := &dto.RoundReport{
		RoundID:        round.ID,
		Status:         round.Status(height),
		StartHeight:    round.StartHeight,
		CloseHeight:    round.CloseHeight,
		DeadlineHeight: round.DeadlineHeight,
		Drawn:          round.Drawn,
		TicketCount:    round.TicketCount,
		Revenue:        round.Revenue,
	}
	if int64(len(tickets)) != round.TicketCount {
		return nil, fmt.Errorf("round %d has %d tickets on record, got %d",
			round.ID, round.TicketCount, len(tickets))
	}
	if !round.Drawn {
		return report, nil
	}
	report.WinningNumbers = round.WinningNumbers.String()

	// Claims per tier, from the audit trail.
	claimed := make(map[int]int64)
	paid := make(map[int]int64)
	for _, p := range payouts {
		claimed[p.Tier]++
		paid[p.Tier] += p.Amount
		report.TotalPaid += p.Amount
	}

	for tier := 0; tier < entities.TierCount; tier++ {
		winners := round.WinnerCounts[tier]
		if winners == 0 && table[tier] == 0 {
			continue
		}
		tr := dto.TierReport{
			Tier:    tier,
			Pool:    table[tier],
			Winners: winners,
			Claimed: claimed[tier],
			Paid:    paid[tier],
		}
		if winners > 0 {
			tr.Share = table[tier] / winners
			tr.Remainder = table[tier] - tr.Share*winners
			report.TotalUnclaimed += tr.Share * (winners - tr.Claimed)
		}
		report.Tiers = append(report.Tiers, tr)
	}

	r.logger.Debug("round report built",
		"round_id", round.ID,
		"tiers", len(report.Tiers),
		"total_paid", report.TotalPaid,
		"total_unclaimed", report.TotalUnclaimed)
	return report, nil
}

// Render encodes a report in the given format
func (r *settlementReporter) Render(report *dto.RoundReport, format interfaces.OutputFormat) ([]byte, error) {
	switch format {
	case interfaces.OutputFormatJSON:
		return json.MarshalIndent(report, "", "  ")
	case interfaces.OutputFormatYAML:
		return yaml.Marshal(report)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
