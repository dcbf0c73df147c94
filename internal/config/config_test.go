package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SLACK_BOT_TOKEN", "SLACK_USER_TOKEN", "SLACK_APP_TOKEN", "SLACK_SCOPES",
		"SLACK_USER_SCOPES", "SLACK_API_RPS", "APP_INSTALL_URL", "DATABASE_PATH", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ModeOAuth, cfg.Mode())
	assert.False(t, cfg.SocketMode())
	assert.Equal(t, []string{"commands", "chat:write"}, cfg.SlackScopes)
	assert.Equal(t, []string{"chat:write", "users:read", "channels:read"}, cfg.SlackUserScopes)
	assert.Equal(t, float64(20), cfg.SlackAPIRPS)
	assert.Equal(t, "https://j.mp/send-it-later", cfg.AppInstallURL)
	assert.Equal(t, "./local_dev.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SLACK_USER_TOKEN", "xoxp-user")
	t.Setenv("SLACK_APP_TOKEN", "xapp-1")
	t.Setenv("SLACK_SCOPES", " chat:write , ,commands")
	t.Setenv("SLACK_API_RPS", "not-a-number")

	cfg := Load()

	assert.Equal(t, ModeSingleWorkspace, cfg.Mode())
	assert.True(t, cfg.SocketMode())
	assert.Equal(t, []string{"chat:write", "commands"}, cfg.SlackScopes)
	assert.Equal(t, float64(20), cfg.SlackAPIRPS)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr []string
	}{
		{
			name: "Should accept single-workspace over HTTP",
			cfg:  Config{SlackUserToken: "xoxp", SlackBotToken: "xoxb", SlackSigningSecret: "s"},
		},
		{
			name: "Should accept oauth over socket mode",
			cfg:  Config{SlackClientID: "id", SlackClientSecret: "secret", SlackAppToken: "xapp-1"},
		},
		{
			name:    "Should require a bot token in single-workspace mode",
			cfg:     Config{SlackUserToken: "xoxp", SlackSigningSecret: "s"},
			wantErr: []string{"SLACK_BOT_TOKEN"},
		},
		{
			name:    "Should require client credentials and signing secret in oauth mode",
			cfg:     Config{},
			wantErr: []string{"SLACK_CLIENT_ID", "SLACK_CLIENT_SECRET", "SLACK_SIGNING_SECRET"},
		},
		{
			name:    "Should reject a malformed app token",
			cfg:     Config{SlackUserToken: "xoxp", SlackBotToken: "xoxb", SlackAppToken: "xoxb-wrong"},
			wantErr: []string{"xapp-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
