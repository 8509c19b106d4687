// Package notifier provides notification service implementations.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"lotto-engine/domain/dto"
	"lotto-engine/domain/entities"
	"lotto-engine/domain/interfaces"
)

// slackNotifier implements the Notifier interface for Slack.
type slackNotifier struct {
	webhookURL   string
	channel      string
	mentionUsers []string
	logger       interfaces.Logger
	httpClient   *http.Client
}

// NewSlackNotifier creates a new Slack notifier.
func NewSlackNotifier(
	webhookURL string,
	channel string,
	mentionUsers []string,
	logger interfaces.Logger,
) interfaces.Notifier {
	return &slackNotifier{
		webhookURL:   webhookURL,
		channel:      channel,
		mentionUsers: mentionUsers,
		logger:       logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AnnounceDraw announces a completed draw to Slack.
func (n *slackNotifier) AnnounceDraw(ctx context.Context, result *dto.DrawResult) error {
	if !n.IsConfigured() {
		return errors.New("slack notifier not configured")
	}

	message := n.buildDrawMessage(result)
	return n.SendSlackMessage(ctx, message)
}

// SendSlackMessage sends a message to Slack.
func (n *slackNotifier) SendSlackMessage(ctx context.Context, message *dto.SlackMessage) error {
	if !n.IsConfigured() {
		return errors.New("slack webhook URL not configured")
	}

	// Override channel if configured
	if n.channel != "" && message.Channel == "" {
		message.Channel = n.channel
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}

	n.logger.Debug("Sending Slack message", "payload", string(payload))

	req, err := http.NewRequestWithContext(ctx, "POST", n.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("slack API returned status %d", resp.StatusCode)
	}

	n.logger.Info("Draw announcement sent to Slack")
	return nil
}

// IsConfigured checks if the notifier is properly configured.
func (n *slackNotifier) IsConfigured() bool {
	return n.webhookURL != ""
}

// buildDrawMessage constructs a Slack message from a draw result.
func (n *slackNotifier) buildDrawMessage(result *dto.DrawResult) *dto.SlackMessage {
	// Build mention string
	mentions := ""
	if len(n.mentionUsers) > 0 {
		mentionList := make([]string, len(n.mentionUsers))
		for i, user := range n.mentionUsers {
			if strings.HasPrefix(user, "@") {
				mentionList[i] = user
			} else {
				mentionList[i] = "<@" + user + ">"
			}
		}
		mentions = strings.Join(mentionList, " ") + " "
	}

	title := fmt.Sprintf("🎱 Lottery Round %d Drawn", result.RoundID)
	if mentions != "" {
		title = mentions + title
	}

	fields := []dto.SlackField{
		{Title: "Winning Numbers", Value: result.WinningNumbers.String(), Short: true},
		{Title: "Block Height", Value: fmt.Sprintf("%d", result.Height), Short: true},
		{Title: "Tickets Sold", Value: fmt.Sprintf("%d", result.TicketCount), Short: true},
	}
	// Tiers 0 and 1 hold tickets without a single main match.
	for tier := entities.TierCount - 1; tier >= 2; tier-- {
		if result.WinnerCounts[tier] == 0 {
			continue
		}
		fields = append(fields, dto.SlackField{
			Title: fmt.Sprintf("Tier %d", tier),
			Value: fmt.Sprintf("%d winner(s)", result.WinnerCounts[tier]),
			Short: true,
		})
	}

	return &dto.SlackMessage{
		Text: title,
		Attachments: []dto.SlackAttachment{
			{
				Color:  "#36a64f",
				Title:  fmt.Sprintf("Round %d settlement opened", result.RoundID),
				Fields: fields,
			},
		},
	}
}
