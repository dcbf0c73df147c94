package service

import (
	"context"

	"github.com/diegoclair/send-it-later/internal/domain/entity"
)

// staticAuthorizer hands every actor the tokens configured for a single workspace.
type staticAuthorizer struct {
	botToken  string
	userToken string
}

func newStaticAuthorizer(botToken, userToken string) *staticAuthorizer {
	return &staticAuthorizer{botToken: botToken, userToken: userToken}
}

func (a *staticAuthorizer) Authorize(_ context.Context, teamID, userID string) (entity.Actor, error) {
	return entity.Actor{
		TeamID:    teamID,
		UserID:    userID,
		BotToken:  a.botToken,
		UserToken: a.userToken,
	}, nil
}
