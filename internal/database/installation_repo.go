package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
)

type installationRepo struct {
	db dbConn
}

func newInstallationRepo(db dbConn) contract.InstallationRepo {
	return &installationRepo{db: db}
}

// Save inserts the row for (team_id, user_id) or replaces its tokens.
func (r *installationRepo) Save(installation *entity.Installation) error {
	if installation.InstalledAt.IsZero() {
		installation.InstalledAt = time.Now()
	}

	query := `
		INSERT INTO slack_installations (app_id, enterprise_id, team_id, team_name, user_id,
			bot_token, bot_user_id, bot_scopes, user_token, user_scopes,
			is_enterprise_install, installed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (team_id, user_id) DO UPDATE SET
			app_id = excluded.app_id,
			enterprise_id = excluded.enterprise_id,
			team_name = excluded.team_name,
			bot_token = excluded.bot_token,
			bot_user_id = excluded.bot_user_id,
			bot_scopes = excluded.bot_scopes,
			user_token = excluded.user_token,
			user_scopes = excluded.user_scopes,
			is_enterprise_install = excluded.is_enterprise_install,
			installed_at = excluded.installed_at
	`

	_, err := r.db.Exec(query,
		installation.AppID,
		installation.EnterpriseID,
		installation.TeamID,
		installation.TeamName,
		installation.UserID,
		installation.BotToken,
		installation.BotUserID,
		installation.BotScopes,
		installation.UserToken,
		installation.UserScopes,
		installation.IsEnterpriseInstall,
		installation.InstalledAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save installation: %w", err)
	}

	// LastInsertId is not reliable for the update branch of an upsert
	err = r.db.QueryRow(
		`SELECT id FROM slack_installations WHERE team_id = ? AND user_id = ?`,
		installation.TeamID, installation.UserID,
	).Scan(&installation.ID)
	if err != nil {
		return fmt.Errorf("failed to get installation id: %w", err)
	}

	return nil
}

func (r *installationRepo) GetByTeamAndUser(teamID, userID string) (*entity.Installation, error) {
	installation := &entity.Installation{}
	query := `
		SELECT id, app_id, enterprise_id, team_id, team_name, user_id,
			bot_token, bot_user_id, bot_scopes, user_token, user_scopes,
			is_enterprise_install, installed_at
		FROM slack_installations
		WHERE team_id = ? AND user_id = ?
	`

	var installedAt int64
	err := r.db.QueryRow(query, teamID, userID).Scan(
		&installation.ID,
		&installation.AppID,
		&installation.EnterpriseID,
		&installation.TeamID,
		&installation.TeamName,
		&installation.UserID,
		&installation.BotToken,
		&installation.BotUserID,
		&installation.BotScopes,
		&installation.UserToken,
		&installation.UserScopes,
		&installation.IsEnterpriseInstall,
		&installedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get installation: %w", err)
	}

	installation.InstalledAt = time.Unix(installedAt, 0)
	return installation, nil
}

func (r *installationRepo) DeleteByTeamAndUser(teamID, userID string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM slack_installations WHERE team_id = ? AND user_id = ?`, teamID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete installation: %w", err)
	}

	return result.RowsAffected()
}

func (r *installationRepo) DeleteByTeam(teamID string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM slack_installations WHERE team_id = ?`, teamID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete team installations: %w", err)
	}

	return result.RowsAffected()
}
