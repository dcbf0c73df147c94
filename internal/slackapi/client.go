// Package slackapi adapts slack-go to the narrow client the domain uses,
// one client per bot or user token.
package slackapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain"
	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

const listPageSize = 100

// Factory builds token-bound clients that share one outbound rate limiter.
type Factory struct {
	limiter *rate.Limiter
	options []slack.Option
}

// NewFactory returns a Factory. A nil limiter disables throttling.
func NewFactory(limiter *rate.Limiter, options ...slack.Option) *Factory {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Factory{limiter: limiter, options: options}
}

// ForToken returns a client that calls Slack with token.
func (f *Factory) ForToken(token string) contract.SlackClient {
	return &client{
		api:     slack.New(token, f.options...),
		limiter: f.limiter,
	}
}

type client struct {
	api     *slack.Client
	limiter *rate.Limiter
}

// wait throttles before each call. Failed calls are never retried here.
func (c *client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter context cancelled: %w", err)
	}
	return nil
}

func (c *client) UserTimezoneOffset(ctx context.Context, userID string) (int, error) {
	if err := c.wait(ctx); err != nil {
		return 0, err
	}

	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user info: %w", err)
	}

	return user.TZOffset, nil
}

func (c *client) ScheduleMessage(ctx context.Context, channelID string, postAt time.Time, payload entity.MessagePayload) (*entity.ScheduledMessage, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	options := []slack.MsgOption{slack.MsgOptionText(payload.Text, false)}
	if len(payload.Attachments) > 0 {
		options = append(options, slack.MsgOptionAttachments(payload.Attachments...))
	}
	if payload.HasBlocks() {
		options = append(options, slack.MsgOptionBlocks(payload.Blocks.BlockSet...))
	}

	respChannel, respID, err := c.api.ScheduleMessageContext(ctx, channelID, strconv.FormatInt(postAt.Unix(), 10), options...)
	if err != nil {
		if isSlackError(err, "not_in_channel") {
			return nil, domain.ErrNotInChannel
		}
		return nil, fmt.Errorf("failed to schedule message: %w", err)
	}

	if respChannel == "" {
		respChannel = channelID
	}

	return &entity.ScheduledMessage{
		ID:        respID,
		ChannelID: respChannel,
		Text:      payload.Text,
		PostAt:    postAt.Unix(),
	}, nil
}

func (c *client) DeleteScheduledMessage(ctx context.Context, channelID, messageID string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	_, err := c.api.DeleteScheduledMessageContext(ctx, &slack.DeleteScheduledMessageParameters{
		Channel:            channelID,
		ScheduledMessageID: messageID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete scheduled message: %w", err)
	}

	return nil
}

func (c *client) ListScheduledMessages(ctx context.Context) ([]entity.ScheduledMessage, error) {
	var (
		messages []entity.ScheduledMessage
		cursor   string
	)

	for {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		page, next, err := c.api.GetScheduledMessagesContext(ctx, &slack.GetScheduledMessagesParameters{
			Cursor: cursor,
			Limit:  listPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list scheduled messages: %w", err)
		}

		for _, msg := range page {
			messages = append(messages, entity.ScheduledMessage{
				ID:        msg.ID,
				ChannelID: msg.Channel,
				Text:      msg.Text,
				PostAt:    int64(msg.PostAt),
			})
		}

		if next == "" {
			return messages, nil
		}
		cursor = next
	}
}

func (c *client) PostEphemeral(ctx context.Context, channelID, userID, text string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	if _, err := c.api.PostEphemeralContext(ctx, channelID, userID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to post ephemeral message: %w", err)
	}
	return nil
}

func (c *client) OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	if _, err := c.api.OpenViewContext(ctx, triggerID, view); err != nil {
		return fmt.Errorf("failed to open view: %w", err)
	}
	return nil
}

func (c *client) PublishHomeView(ctx context.Context, userID string, view slack.HomeTabViewRequest) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	_, err := c.api.PublishViewContext(ctx, slack.PublishViewContextRequest{
		UserID: userID,
		View:   view,
	})
	if err != nil {
		return fmt.Errorf("failed to publish home view: %w", err)
	}
	return nil
}

func isSlackError(err error, code string) bool {
	var resp slack.SlackErrorResponse
	if errors.As(err, &resp) {
		return resp.Err == code
	}
	return err.Error() == code
}
