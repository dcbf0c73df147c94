package handlers

import (
	"context"

	"github.com/slack-go/slack/socketmode"
)

func (l *SocketModeListener) Handle(ctx context.Context, evt socketmode.Event) {
	l.handle(ctx, evt)
}

func (l *SocketModeListener) SetAcker(a acker) {
	l.acker = a
}
