package handlers

import (
	"context"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"go.uber.org/zap"
)

type acker interface {
	Ack(req socketmode.Request, payload ...interface{})
}

// SocketModeListener feeds Socket Mode envelopes to the Router. Envelopes
// are acknowledged only once they were handled.
type SocketModeListener struct {
	client *socketmode.Client
	acker  acker
	router *Router
	log    *zap.Logger
}

// NewSocketModeListener connects with the app-level token; api must carry
// the bot token and slack.OptionAppLevelToken.
func NewSocketModeListener(api *slack.Client, router *Router, log *zap.Logger) *SocketModeListener {
	client := socketmode.New(api)
	return &SocketModeListener{
		client: client,
		acker:  client,
		router: router,
		log:    log,
	}
}

// Run blocks until ctx is cancelled or the connection fails.
func (l *SocketModeListener) Run(ctx context.Context) error {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-l.client.Events:
				if !ok {
					return
				}
				l.handle(ctx, evt)
			}
		}
	}()

	return l.client.RunContext(ctx)
}

func (l *SocketModeListener) handle(ctx context.Context, evt socketmode.Event) {
	l.log.Debug("socket mode event", zap.String("type", string(evt.Type)), zap.Any("data", evt.Data))

	switch evt.Type {
	case socketmode.EventTypeConnecting:
		l.log.Info("connecting to socket mode")

	case socketmode.EventTypeConnected:
		l.log.Info("connected to socket mode")

	case socketmode.EventTypeConnectionError:
		l.log.Warn("socket mode connection error", zap.Any("data", evt.Data))

	case socketmode.EventTypeEventsAPI:
		event, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok || evt.Request == nil {
			return
		}
		if err := l.router.HandleEvent(ctx, event); err != nil {
			l.log.Error("failed to handle event", zap.String("type", event.InnerEvent.Type), zap.Error(err))
			return
		}
		l.acker.Ack(*evt.Request)

	case socketmode.EventTypeInteractive:
		callback, ok := evt.Data.(slack.InteractionCallback)
		if !ok || evt.Request == nil {
			return
		}
		response, err := l.router.HandleInteraction(ctx, callback)
		if err != nil {
			l.log.Error("failed to handle interaction", zap.String("type", string(callback.Type)), zap.Error(err))
			return
		}
		if response != nil {
			l.acker.Ack(*evt.Request, response)
			return
		}
		l.acker.Ack(*evt.Request)
	}
}
