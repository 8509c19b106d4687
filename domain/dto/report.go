// Package dto contains data transfer objects for reports and notifications.
package dto

import "lotto-engine/domain/entities"

// DrawResult describes a completed draw.
type DrawResult struct {
	RoundID        uint64              `json:"round_id" yaml:"round_id"`
	Height         uint64              `json:"height" yaml:"height"`
	WinningNumbers entities.Picks      `json:"winning_numbers" yaml:"winning_numbers"`
	WinnerCounts   entities.TierCounts `json:"winner_counts" yaml:"winner_counts"`
	TicketCount    int64               `json:"ticket_count" yaml:"ticket_count"`
}

// TierReport summarizes settlement of one payout tier.
type TierReport struct {
	Tier      int   `json:"tier" yaml:"tier"`
	Pool      int64 `json:"pool" yaml:"pool"`
	Winners   int64 `json:"winners" yaml:"winners"`
	Share     int64 `json:"share" yaml:"share"`
	Claimed   int64 `json:"claimed" yaml:"claimed"`
	Paid      int64 `json:"paid" yaml:"paid"`
	Remainder int64 `json:"remainder" yaml:"remainder"`
}

// RoundReport is the full settlement report of one round.
type RoundReport struct {
	RoundID        uint64               `json:"round_id" yaml:"round_id"`
	Status         entities.RoundStatus `json:"status" yaml:"status"`
	StartHeight    uint64               `json:"start_height" yaml:"start_height"`
	CloseHeight    uint64               `json:"close_height" yaml:"close_height"`
	DeadlineHeight uint64               `json:"deadline_height" yaml:"deadline_height"`
	Drawn          bool                 `json:"drawn" yaml:"drawn"`
	WinningNumbers string               `json:"winning_numbers,omitempty" yaml:"winning_numbers,omitempty"`
	TicketCount    int64                `json:"ticket_count" yaml:"ticket_count"`
	Revenue        int64                `json:"revenue" yaml:"revenue"`
	Tiers          []TierReport         `json:"tiers" yaml:"tiers"`
	TotalPaid      int64                `json:"total_paid" yaml:"total_paid"`
	TotalUnclaimed int64                `json:"total_unclaimed" yaml:"total_unclaimed"`
}

// WatchResult is one observation of the active round's window state.
type WatchResult struct {
	Height        uint64               `json:"height" yaml:"height"`
	RoundID       uint64               `json:"round_id" yaml:"round_id"`
	Status        entities.RoundStatus `json:"status" yaml:"status"`
	SaleOpen      bool                 `json:"sale_open" yaml:"sale_open"`
	DrawEligible  bool                 `json:"draw_eligible" yaml:"draw_eligible"`
	ClaimEligible bool                 `json:"claim_eligible" yaml:"claim_eligible"`
	DrawTriggered bool                 `json:"draw_triggered" yaml:"draw_triggered"`
	Draw          *DrawResult          `json:"draw,omitempty" yaml:"draw,omitempty"`
}

// SlackMessage represents a Slack webhook payload.
type SlackMessage struct {
	Channel     string            `json:"channel,omitempty"`
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments,omitempty"`
}

// SlackAttachment represents a Slack message attachment.
type SlackAttachment struct {
	Color  string       `json:"color,omitempty"`
	Title  string       `json:"title,omitempty"`
	Text   string       `json:"text,omitempty"`
	Fields []SlackField `json:"fields,omitempty"`
}

// SlackField represents a field in a Slack attachment.
type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}
