package contract

import (
	"context"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackClient defines the Slack Web API calls the app makes with one token.
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// UserTimezoneOffset returns the user's tz_offset in seconds east of UTC
	UserTimezoneOffset(ctx context.Context, userID string) (int, error)

	// ScheduleMessage calls chat.scheduleMessage; fails with domain.ErrNotInChannel
	// when the token's user is not a member of the channel
	ScheduleMessage(ctx context.Context, channelID string, postAt time.Time, payload entity.MessagePayload) (*entity.ScheduledMessage, error)

	DeleteScheduledMessage(ctx context.Context, channelID, messageID string) error

	// ListScheduledMessages returns every pending message, following pagination
	ListScheduledMessages(ctx context.Context) ([]entity.ScheduledMessage, error)

	PostEphemeral(ctx context.Context, channelID, userID, text string) error
	OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error
	PublishHomeView(ctx context.Context, userID string, view slack.HomeTabViewRequest) error
}

// SlackClientFactory hands out clients bound to a bot or user token
type SlackClientFactory interface {
	ForToken(token string) SlackClient
}
