package interfaces

import (
	"context"

	"lotto-engine/domain/dto"
)

// Notifier publishes settlement events to external services.
type Notifier interface {
	// AnnounceDraw announces a completed draw.
	AnnounceDraw(ctx context.Context, result *dto.DrawResult) error

	// SendSlackMessage sends a custom Slack message.
	SendSlackMessage(ctx context.Context, message *dto.SlackMessage) error

	// IsConfigured checks if the notifier is properly configured.
	IsConfigured() bool
}
