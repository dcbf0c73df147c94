package contract

import (
	"context"

	"github.com/diegoclair/send-it-later/internal/domain/entity"
)

// Authorizer resolves the tokens an inbound event acts with
type Authorizer interface {
	Authorize(ctx context.Context, teamID, userID string) (entity.Actor, error)
}

type MessageService interface {
	PublishHome(ctx context.Context, actor entity.Actor) error
	OpenComposer(ctx context.Context, actor entity.Actor, triggerID string, source *entity.MessagePayload) error
	Schedule(ctx context.Context, actor entity.Actor, req entity.ScheduleRequest) error
	Cancel(ctx context.Context, actor entity.Actor, ref string) error
}

type InstallationService interface {
	Authorizer
	IssueState(ctx context.Context) (string, error)
	ConsumeState(ctx context.Context, state string) (bool, error)
	SaveInstallation(ctx context.Context, installation *entity.Installation) error
	RevokeTokens(ctx context.Context, teamID string, userIDs []string) error
	Uninstall(ctx context.Context, teamID string) error
}
