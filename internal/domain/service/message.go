package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/send-it-later/internal/domain"
	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/diegoclair/send-it-later/internal/domain/posttime"
	domainslack "github.com/diegoclair/send-it-later/internal/domain/slack"
	"github.com/diegoclair/send-it-later/internal/domain/view"
	"go.uber.org/zap"
)

type messageService struct {
	slackClients contract.SlackClientFactory
	resolver     *posttime.Resolver
	installURL   string
	log          *zap.Logger
}

func newMessage(slackClients contract.SlackClientFactory, resolver *posttime.Resolver, installURL string, log *zap.Logger) *messageService {
	return &messageService{
		slackClients: slackClients,
		resolver:     resolver,
		installURL:   installURL,
		log:          log,
	}
}

// PublishHome renders the actor's pending messages on their Home tab.
// Without a user token only the compose section is shown.
func (s *messageService) PublishHome(ctx context.Context, actor entity.Actor) error {
	if !actor.HasUserToken() {
		return s.publish(ctx, actor, nil, 0)
	}

	offset, err := s.slackClients.ForToken(actor.UserToken).UserTimezoneOffset(ctx, actor.UserID)
	if err != nil {
		return err
	}

	return s.refreshHome(ctx, actor, offset)
}

// OpenComposer opens the schedule modal, blank or prefilled from source.
func (s *messageService) OpenComposer(ctx context.Context, actor entity.Actor, triggerID string, source *entity.MessagePayload) error {
	bot := s.slackClients.ForToken(actor.BotToken)

	if !actor.HasUserToken() {
		return bot.OpenView(ctx, triggerID, view.InstallModal(s.installURL))
	}

	offset, err := s.slackClients.ForToken(actor.UserToken).UserTimezoneOffset(ctx, actor.UserID)
	if err != nil {
		return err
	}

	modal, err := view.ScheduleModal(source, offset, s.resolver)
	if err == nil {
		err = bot.OpenView(ctx, triggerID, modal)
	}
	if err != nil {
		if source == nil {
			return err
		}
		s.log.Warn("failed to open schedule modal for message", zap.String("user_id", actor.UserID), zap.Error(err))
		return bot.OpenView(ctx, triggerID, view.UnsupportedModal())
	}

	return nil
}

// Schedule validates a submitted schedule modal and hands the message to Slack.
// Field problems come back as *domain.ValidationError.
func (s *messageService) Schedule(ctx context.Context, actor entity.Actor, req entity.ScheduleRequest) error {
	if !actor.HasUserToken() {
		return domain.ErrInstallationRequired
	}

	user := s.slackClients.ForToken(actor.UserToken)

	offset, err := user.UserTimezoneOffset(ctx, actor.UserID)
	if err != nil {
		return err
	}
	req.TzOffset = offset

	payload, err := req.Payload()
	if err != nil {
		return err
	}

	postAt, err := s.resolver.Validate(req.TzOffset, req.TargetDate, req.TargetTime)
	if err != nil {
		return err
	}

	scheduled, err := user.ScheduleMessage(ctx, req.ChannelID, postAt, payload)
	if err != nil {
		if errors.Is(err, domain.ErrNotInChannel) {
			return domain.NewValidationError(domain.BlockChannel, domain.MsgNotInChannel)
		}
		return err
	}

	s.log.Info("message scheduled",
		zap.String("team_id", actor.TeamID),
		zap.String("user_id", actor.UserID),
		zap.String("channel_id", scheduled.ChannelID),
		zap.Int64("post_at", scheduled.PostAt),
	)

	if err := s.refreshHome(ctx, actor, req.TzOffset); err != nil {
		s.log.Error("failed to refresh home after scheduling", zap.String("user_id", actor.UserID), zap.Error(err))
	}

	if payload.FromMessage() {
		notice := fmt.Sprintf("_The message is scheduled to post in <#%s> at %s_",
			scheduled.ChannelID, posttime.Format(scheduled.PostAt, req.TzOffset))
		if err := s.slackClients.ForToken(actor.BotToken).PostEphemeral(ctx, payload.Channel, actor.UserID, notice); err != nil {
			s.log.Error("failed to post schedule confirmation", zap.String("channel_id", payload.Channel), zap.Error(err))
		}
	}

	return nil
}

// Cancel deletes the scheduled message a Delete button points at and
// refreshes the Home tab.
func (s *messageService) Cancel(ctx context.Context, actor entity.Actor, ref string) error {
	if !actor.HasUserToken() {
		return domain.ErrInstallationRequired
	}

	msgRef, err := domainslack.ParseMessageRef(ref)
	if err != nil {
		return err
	}

	user := s.slackClients.ForToken(actor.UserToken)
	if err := user.DeleteScheduledMessage(ctx, msgRef.ChannelID, msgRef.MessageID); err != nil {
		return err
	}

	s.log.Info("scheduled message deleted",
		zap.String("user_id", actor.UserID),
		zap.String("channel_id", msgRef.ChannelID),
		zap.String("message_id", msgRef.MessageID),
	)

	offset, err := user.UserTimezoneOffset(ctx, actor.UserID)
	if err != nil {
		return err
	}

	return s.refreshHome(ctx, actor, offset)
}

func (s *messageService) refreshHome(ctx context.Context, actor entity.Actor, offset int) error {
	messages, err := s.slackClients.ForToken(actor.UserToken).ListScheduledMessages(ctx)
	if err != nil {
		return err
	}
	return s.publish(ctx, actor, messages, offset)
}

func (s *messageService) publish(ctx context.Context, actor entity.Actor, messages []entity.ScheduledMessage, offset int) error {
	return s.slackClients.ForToken(actor.BotToken).PublishHomeView(ctx, actor.UserID, view.Home(messages, offset))
}
