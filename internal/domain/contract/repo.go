package contract

import (
	"context"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Installation() InstallationRepo
	Bot() BotRepo
	OAuthState() OAuthStateRepo
}

// InstallationRepo stores per-user installation rows keyed by team and user
type InstallationRepo interface {
	Save(installation *entity.Installation) error
	GetByTeamAndUser(teamID, userID string) (*entity.Installation, error)
	DeleteByTeamAndUser(teamID, userID string) (int64, error)
	DeleteByTeam(teamID string) (int64, error)
}

// BotRepo stores the team-level bot row
type BotRepo interface {
	Save(bot *entity.Bot) error
	GetByTeam(teamID string) (*entity.Bot, error)
	DeleteByTeam(teamID string) (int64, error)
}

// OAuthStateRepo stores single-use install states
type OAuthStateRepo interface {
	Create(state *entity.OAuthState) error
	Consume(state string, now time.Time) (bool, error)
	DeleteExpired(now time.Time) (int64, error)
}
