package entity

import "time"

// Installation is the per-user record written on a successful OAuth install.
// It is keyed by (TeamID, UserID).
type Installation struct {
	ID                  int64     `json:"id" db:"id"`
	AppID               string    `json:"app_id" db:"app_id"`
	EnterpriseID        string    `json:"enterprise_id" db:"enterprise_id"`
	TeamID              string    `json:"team_id" db:"team_id"`
	TeamName            string    `json:"team_name" db:"team_name"`
	UserID              string    `json:"user_id" db:"user_id"`
	BotToken            string    `json:"bot_token" db:"bot_token"`
	BotUserID           string    `json:"bot_user_id" db:"bot_user_id"`
	BotScopes           string    `json:"bot_scopes" db:"bot_scopes"`
	UserToken           string    `json:"user_token" db:"user_token"`
	UserScopes          string    `json:"user_scopes" db:"user_scopes"`
	IsEnterpriseInstall bool      `json:"is_enterprise_install" db:"is_enterprise_install"`
	InstalledAt         time.Time `json:"installed_at" db:"installed_at"`
}

// Bot returns the team-level row derived from this installation.
func (i *Installation) Bot() *Bot {
	return &Bot{
		AppID:               i.AppID,
		EnterpriseID:        i.EnterpriseID,
		TeamID:              i.TeamID,
		TeamName:            i.TeamName,
		BotToken:            i.BotToken,
		BotUserID:           i.BotUserID,
		BotScopes:           i.BotScopes,
		IsEnterpriseInstall: i.IsEnterpriseInstall,
		InstalledAt:         i.InstalledAt,
	}
}

// Bot is the team-level installation row. There is at most one per team.
type Bot struct {
	ID                  int64     `json:"id" db:"id"`
	AppID               string    `json:"app_id" db:"app_id"`
	EnterpriseID        string    `json:"enterprise_id" db:"enterprise_id"`
	TeamID              string    `json:"team_id" db:"team_id"`
	TeamName            string    `json:"team_name" db:"team_name"`
	BotToken            string    `json:"bot_token" db:"bot_token"`
	BotUserID           string    `json:"bot_user_id" db:"bot_user_id"`
	BotScopes           string    `json:"bot_scopes" db:"bot_scopes"`
	IsEnterpriseInstall bool      `json:"is_enterprise_install" db:"is_enterprise_install"`
	InstalledAt         time.Time `json:"installed_at" db:"installed_at"`
}

// OAuthState is a single-use anti-CSRF nonce for the install flow.
type OAuthState struct {
	ID       int64     `json:"id" db:"id"`
	State    string    `json:"state" db:"state"`
	ExpireAt time.Time `json:"expire_at" db:"expire_at"`
}

// Actor is the user behind an inbound event together with the tokens
// resolved for them. UserToken is empty when the user has not connected
// their account.
type Actor struct {
	TeamID    string
	UserID    string
	BotToken  string
	UserToken string
}

// HasUserToken reports whether the actor can act as themselves.
func (a Actor) HasUserToken() bool {
	return a.UserToken != ""
}
