package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/send-it-later/internal/domain"
	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
	domainslack "github.com/diegoclair/send-it-later/internal/domain/slack"
	"github.com/diegoclair/send-it-later/internal/domain/view"
	"github.com/diegoclair/send-it-later/internal/metrics"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// Router dispatches Events API callbacks and interaction payloads to the
// services. It is shared by the HTTP and Socket Mode transports.
type Router struct {
	authorizer    contract.Authorizer
	messages      contract.MessageService
	installations contract.InstallationService
	installURL    string
	recorder      *metrics.Recorder
	log           *zap.Logger
}

// NewRouter builds a Router. installations is nil in single-workspace mode,
// where token lifecycle events are ignored.
func NewRouter(authorizer contract.Authorizer, messages contract.MessageService, installations contract.InstallationService,
	installURL string, recorder *metrics.Recorder, log *zap.Logger) *Router {
	return &Router{
		authorizer:    authorizer,
		messages:      messages,
		installations: installations,
		installURL:    installURL,
		recorder:      recorder,
		log:           log,
	}
}

// HandleEvent handles one Events API callback. A returned error means the
// event was not handled and should not be acknowledged.
func (r *Router) HandleEvent(ctx context.Context, event slackevents.EventsAPIEvent) (err error) {
	if event.Type != slackevents.CallbackEvent {
		return nil
	}

	kind := event.InnerEvent.Type
	defer func() { r.recorder.Event(kind, err) }()

	switch kind {
	case domainslack.EventAppHomeOpened:
		ev, ok := event.InnerEvent.Data.(*slackevents.AppHomeOpenedEvent)
		if !ok {
			return fmt.Errorf("unexpected %s payload %T", kind, event.InnerEvent.Data)
		}
		if ev.Tab != domainslack.HomeTab {
			return nil
		}
		return r.handleHomeOpened(ctx, event.TeamID, ev.User)

	case domainslack.EventTokensRevoked:
		if r.installations == nil {
			return nil
		}
		ev, ok := event.InnerEvent.Data.(*slackevents.TokensRevokedEvent)
		if !ok {
			return fmt.Errorf("unexpected %s payload %T", kind, event.InnerEvent.Data)
		}
		if err := r.installations.RevokeTokens(ctx, event.TeamID, ev.Tokens.Oauth); err != nil {
			return err
		}
		r.recorder.TokensRevoked(len(ev.Tokens.Oauth))
		return nil

	case domainslack.EventAppUninstalled:
		if r.installations == nil {
			return nil
		}
		if err := r.installations.Uninstall(ctx, event.TeamID); err != nil {
			return err
		}
		r.recorder.Uninstalled()
		return nil
	}

	r.log.Debug("ignoring event", zap.String("type", kind))
	return nil
}

func (r *Router) handleHomeOpened(ctx context.Context, teamID, userID string) error {
	actor, err := r.authorizer.Authorize(ctx, teamID, userID)
	if err != nil {
		return err
	}
	return r.messages.PublishHome(ctx, actor)
}

// HandleInteraction handles a shortcut, block action or view submission.
// The returned response, when not nil, is the body of the acknowledgement.
func (r *Router) HandleInteraction(ctx context.Context, callback slack.InteractionCallback) (response any, err error) {
	kind := string(callback.Type)
	defer func() { r.recorder.Event(kind, err) }()

	switch callback.Type {
	case slack.InteractionTypeMessageAction:
		if callback.CallbackID != domainslack.ShortcutSendLater {
			return nil, nil
		}
		actor, err := r.authorizer.Authorize(ctx, callback.Team.ID, callback.User.ID)
		if err != nil {
			return nil, err
		}
		source := entity.NewMessagePayload(callback.Channel.ID, callback.Message.Msg)
		return nil, r.messages.OpenComposer(ctx, actor, callback.TriggerID, &source)

	case slack.InteractionTypeBlockActions:
		return nil, r.handleBlockActions(ctx, callback)

	case slack.InteractionTypeViewSubmission:
		if callback.View.CallbackID != domainslack.ViewScheduleMessage {
			return nil, nil
		}
		return r.handleScheduleSubmission(ctx, callback)
	}

	r.log.Debug("ignoring interaction", zap.String("type", kind), zap.String("callback_id", callback.CallbackID))
	return nil, nil
}

func (r *Router) handleBlockActions(ctx context.Context, callback slack.InteractionCallback) error {
	for _, action := range callback.ActionCallback.BlockActions {
		switch action.ActionID {
		case domainslack.ActionNewMessage:
			actor, err := r.authorizer.Authorize(ctx, callback.Team.ID, callback.User.ID)
			if err != nil {
				return err
			}
			if err := r.messages.OpenComposer(ctx, actor, callback.TriggerID, nil); err != nil {
				return err
			}

		case domainslack.ActionDeleteMessage:
			actor, err := r.authorizer.Authorize(ctx, callback.Team.ID, callback.User.ID)
			if err != nil {
				return err
			}
			if err := r.messages.Cancel(ctx, actor, action.Value); err != nil {
				return err
			}
			r.recorder.Cancelled()

		case domainslack.ActionLink:
			// the button opens a URL in the client; nothing to do but ack
		}
	}
	return nil
}

func (r *Router) handleScheduleSubmission(ctx context.Context, callback slack.InteractionCallback) (any, error) {
	actor, err := r.authorizer.Authorize(ctx, callback.Team.ID, callback.User.ID)
	if err != nil {
		return nil, err
	}

	err = r.messages.Schedule(ctx, actor, scheduleRequest(callback.View))

	var validationErr *domain.ValidationError
	switch {
	case err == nil:
		r.recorder.ScheduleRequest(metrics.OutcomeScheduled)
		return nil, nil

	case errors.As(err, &validationErr):
		outcome := metrics.OutcomeInvalidTime
		if _, ok := validationErr.Fields[domain.BlockChannel]; ok {
			outcome = metrics.OutcomeNotInChannel
		}
		r.recorder.ScheduleRequest(outcome)
		return slack.NewErrorsViewSubmissionResponse(validationErr.Fields), nil

	case errors.Is(err, domain.ErrInstallationRequired):
		r.recorder.ScheduleRequest(metrics.OutcomeNoToken)
		modal := view.InstallModal(r.installURL)
		return slack.NewUpdateViewSubmissionResponse(&modal), nil
	}

	r.recorder.ScheduleRequest(metrics.OutcomeError)
	return nil, err
}

// scheduleRequest reads the submitted schedule modal.
func scheduleRequest(v slack.View) entity.ScheduleRequest {
	req := entity.ScheduleRequest{Metadata: v.PrivateMetadata}
	if v.State == nil {
		return req
	}

	values := v.State.Values
	input := func(block string) slack.BlockAction {
		return values[block][domain.InputActionID]
	}

	req.ChannelID = input(domain.BlockChannel).SelectedChannel
	req.MessageText = input(domain.BlockMessage).Value
	req.TargetDate = input(domain.BlockDate).SelectedDate
	req.TargetTime = input(domain.BlockTime).SelectedTime

	return req
}
