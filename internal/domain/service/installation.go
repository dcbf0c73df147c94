package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/send-it-later/internal/config"
	"github.com/diegoclair/send-it-later/internal/domain"
	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type installationService struct {
	dm  contract.DataManager
	now func() time.Time
	log *zap.Logger
}

func newInstallation(dm contract.DataManager, now func() time.Time, log *zap.Logger) *installationService {
	return &installationService{
		dm:  dm,
		now: now,
		log: log,
	}
}

// Authorize resolves the team's bot token and, when the user has installed
// the app for themselves, their user token.
func (s *installationService) Authorize(ctx context.Context, teamID, userID string) (entity.Actor, error) {
	bot, err := s.dm.Bot().GetByTeam(teamID)
	if err != nil {
		return entity.Actor{}, fmt.Errorf("failed to get bot for team %s: %w", teamID, err)
	}
	if bot == nil {
		return entity.Actor{}, domain.ErrNotInstalled
	}

	actor := entity.Actor{
		TeamID:   teamID,
		UserID:   userID,
		BotToken: bot.BotToken,
	}

	installation, err := s.dm.Installation().GetByTeamAndUser(teamID, userID)
	if err != nil {
		return entity.Actor{}, fmt.Errorf("failed to get installation for user %s: %w", userID, err)
	}
	if installation != nil {
		actor.UserToken = installation.UserToken
	}

	return actor, nil
}

// IssueState creates a single-use install state and sweeps expired ones.
func (s *installationService) IssueState(ctx context.Context) (string, error) {
	now := s.now()

	removed, err := s.dm.OAuthState().DeleteExpired(now)
	if err != nil {
		return "", fmt.Errorf("failed to delete expired states: %w", err)
	}
	if removed > 0 {
		s.log.Debug("swept expired oauth states", zap.Int64("count", removed))
	}

	state := &entity.OAuthState{
		State:    uuid.NewString(),
		ExpireAt: now.Add(config.OAuthStateExpiration),
	}
	if err := s.dm.OAuthState().Create(state); err != nil {
		return "", fmt.Errorf("failed to create oauth state: %w", err)
	}

	return state.State, nil
}

// ConsumeState reports whether state was issued and is still valid. A state
// can be consumed once.
func (s *installationService) ConsumeState(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}

	ok, err := s.dm.OAuthState().Consume(state, s.now())
	if err != nil {
		return false, fmt.Errorf("failed to consume oauth state: %w", err)
	}
	return ok, nil
}

// SaveInstallation stores the team's bot row and the installing user's row in
// one transaction. A zero InstalledAt is set to now.
func (s *installationService) SaveInstallation(ctx context.Context, installation *entity.Installation) error {
	if installation.InstalledAt.IsZero() {
		installation.InstalledAt = s.now()
	}

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Bot().Save(installation.Bot()); err != nil {
			return fmt.Errorf("failed to save bot: %w", err)
		}
		if err := dm.Installation().Save(installation); err != nil {
			return fmt.Errorf("failed to save installation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("installation saved",
		zap.String("team_id", installation.TeamID),
		zap.String("user_id", installation.UserID),
	)
	return nil
}

// RevokeTokens removes the installation rows of the listed users. The
// team's bot row is left alone; only an uninstall removes it.
func (s *installationService) RevokeTokens(ctx context.Context, teamID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}

	var removed int64
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		for _, userID := range userIDs {
			n, err := dm.Installation().DeleteByTeamAndUser(teamID, userID)
			if err != nil {
				return fmt.Errorf("failed to delete installation of user %s: %w", userID, err)
			}
			removed += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("user tokens revoked",
		zap.String("team_id", teamID),
		zap.Strings("user_ids", userIDs),
		zap.Int64("rows", removed),
	)
	return nil
}

// Uninstall removes every installation row and the bot row of a team.
func (s *installationService) Uninstall(ctx context.Context, teamID string) error {
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if _, err := dm.Installation().DeleteByTeam(teamID); err != nil {
			return fmt.Errorf("failed to delete installations: %w", err)
		}
		if _, err := dm.Bot().DeleteByTeam(teamID); err != nil {
			return fmt.Errorf("failed to delete bot: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("app uninstalled", zap.String("team_id", teamID))
	return nil
}
