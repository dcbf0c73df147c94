package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
)

type botRepo struct {
	db dbConn
}

func newBotRepo(db dbConn) contract.BotRepo {
	return &botRepo{db: db}
}

// Save keeps a single bot row per team, replacing the token on reinstall.
func (r *botRepo) Save(bot *entity.Bot) error {
	if bot.InstalledAt.IsZero() {
		bot.InstalledAt = time.Now()
	}

	query := `
		INSERT INTO slack_bots (app_id, enterprise_id, team_id, team_name,
			bot_token, bot_user_id, bot_scopes, is_enterprise_install, installed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (team_id) DO UPDATE SET
			app_id = excluded.app_id,
			enterprise_id = excluded.enterprise_id,
			team_name = excluded.team_name,
			bot_token = excluded.bot_token,
			bot_user_id = excluded.bot_user_id,
			bot_scopes = excluded.bot_scopes,
			is_enterprise_install = excluded.is_enterprise_install,
			installed_at = excluded.installed_at
	`

	_, err := r.db.Exec(query,
		bot.AppID,
		bot.EnterpriseID,
		bot.TeamID,
		bot.TeamName,
		bot.BotToken,
		bot.BotUserID,
		bot.BotScopes,
		bot.IsEnterpriseInstall,
		bot.InstalledAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save bot: %w", err)
	}

	err = r.db.QueryRow(`SELECT id FROM slack_bots WHERE team_id = ?`, bot.TeamID).Scan(&bot.ID)
	if err != nil {
		return fmt.Errorf("failed to get bot id: %w", err)
	}

	return nil
}

func (r *botRepo) GetByTeam(teamID string) (*entity.Bot, error) {
	bot := &entity.Bot{}
	query := `
		SELECT id, app_id, enterprise_id, team_id, team_name,
			bot_token, bot_user_id, bot_scopes, is_enterprise_install, installed_at
		FROM slack_bots
		WHERE team_id = ?
	`

	var installedAt int64
	err := r.db.QueryRow(query, teamID).Scan(
		&bot.ID,
		&bot.AppID,
		&bot.EnterpriseID,
		&bot.TeamID,
		&bot.TeamName,
		&bot.BotToken,
		&bot.BotUserID,
		&bot.BotScopes,
		&bot.IsEnterpriseInstall,
		&installedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bot: %w", err)
	}

	bot.InstalledAt = time.Unix(installedAt, 0)
	return bot, nil
}

func (r *botRepo) DeleteByTeam(teamID string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM slack_bots WHERE team_id = ?`, teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bot: %w", err)
	}

	return result.RowsAffected()
}
