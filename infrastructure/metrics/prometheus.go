// Package metrics provides Prometheus metrics for monitoring.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lotto-engine/domain/dto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Round lifecycle metrics
	currentRound   prometheus.Gauge
	roundTickets   *prometheus.GaugeVec
	roundRevenue   *prometheus.GaugeVec
	roundsStarted  prometheus.Counter
	drawsCompleted prometheus.Counter
	drawErrors     prometheus.Counter

	// Settlement metrics
	winnersByTier *prometheus.GaugeVec
	claimsPaid    prometheus.Counter
	amountPaid    prometheus.Counter

	// Treasury metric
	treasuryBalance prometheus.Gauge

	// Watch metrics
	lastObservedHeight prometheus.Gauge
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		currentRound: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lotto_engine_current_round",
				Help: "Id of the latest round",
			},
		),
		roundTickets: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lotto_engine_round_tickets",
				Help: "Number of tickets sold per round",
			},
			[]string{"round"},
		),
		roundRevenue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lotto_engine_round_revenue",
				Help: "Ticket revenue per round",
			},
			[]string{"round"},
		),
		roundsStarted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lotto_engine_rounds_started_total",
				Help: "Total number of rounds started",
			},
		),
		drawsCompleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lotto_engine_draws_completed_total",
				Help: "Total number of completed draws",
			},
		),
		drawErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lotto_engine_draw_errors_total",
				Help: "Total number of failed draw attempts",
			},
		),
		winnersByTier: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lotto_engine_winners",
				Help: "Winner count per round and tier, fixed at draw time",
			},
			[]string{"round", "tier"},
		),
		claimsPaid: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lotto_engine_claims_paid_total",
				Help: "Total number of settled claims",
			},
		),
		amountPaid: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lotto_engine_amount_paid_total",
				Help: "Total amount paid out to claimants",
			},
		),
		treasuryBalance: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lotto_engine_treasury_balance",
				Help: "Current treasury balance",
			},
		),
		lastObservedHeight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lotto_engine_last_observed_height",
				Help: "Block height of the last watch observation",
			},
		),
	}
}

// RecordRoundStarted records a new round.
func (m *Metrics) RecordRoundStarted(roundID uint64) {
	m.roundsStarted.Inc()
	m.currentRound.Set(float64(roundID))
}

// RecordDraw records a completed draw.
func (m *Metrics) RecordDraw(result *dto.DrawResult) {
	m.drawsCompleted.Inc()
	round := fmt.Sprintf("%d", result.RoundID)
	m.roundTickets.With(prometheus.Labels{"round": round}).Set(float64(result.TicketCount))
	for tier, winners := range result.WinnerCounts {
		if winners == 0 {
			continue
		}
		m.winnersByTier.With(prometheus.Labels{
			"round": round,
			"tier":  fmt.Sprintf("%d", tier),
		}).Set(float64(winners))
	}
}

// IncrementDrawErrors increments the failed draw counter.
func (m *Metrics) IncrementDrawErrors() {
	m.drawErrors.Inc()
}

// RecordClaim records a settled claim.
func (m *Metrics) RecordClaim(amount int64) {
	m.claimsPaid.Inc()
	m.amountPaid.Add(float64(amount))
}

// SetTreasuryBalance updates the treasury balance gauge.
func (m *Metrics) SetTreasuryBalance(balance int64) {
	m.treasuryBalance.Set(float64(balance))
}

// SetRoundRevenue updates the revenue gauge of a round.
func (m *Metrics) SetRoundRevenue(roundID uint64, revenue int64) {
	m.roundRevenue.With(prometheus.Labels{
		"round": fmt.Sprintf("%d", roundID),
	}).Set(float64(revenue))
}

// RecordObservation records the height of a watch observation.
func (m *Metrics) RecordObservation(height uint64) {
	m.lastObservedHeight.Set(float64(height))
}
