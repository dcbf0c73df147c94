package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain"
)

// OAuthStateExpiration is how long an install state stays valid.
const OAuthStateExpiration = 120 * time.Second

// Mode selects how tokens are resolved for inbound events.
type Mode string

const (
	// ModeSingleWorkspace acts with the static tokens from the environment.
	ModeSingleWorkspace Mode = "single-workspace"
	// ModeOAuth resolves per-team and per-user tokens from the installation store.
	ModeOAuth Mode = "oauth"
)

type Config struct {
	SlackBotToken      string
	SlackUserToken     string
	SlackAppToken      string
	SlackSigningSecret string
	SlackClientID      string
	SlackClientSecret  string
	SlackRedirectURI   string
	SlackScopes        []string
	SlackUserScopes    []string
	SlackAPIRPS        float64
	AppInstallURL      string
	DatabasePath       string
	Port               string
	LogLevel           string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackUserToken:     getEnv("SLACK_USER_TOKEN", ""),
		SlackAppToken:      getEnv("SLACK_APP_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackClientID:      getEnv("SLACK_CLIENT_ID", ""),
		SlackClientSecret:  getEnv("SLACK_CLIENT_SECRET", ""),
		SlackRedirectURI:   getEnv("SLACK_REDIRECT_URI", ""),
		SlackScopes:        getList("SLACK_SCOPES", "commands,chat:write"),
		SlackUserScopes:    getList("SLACK_USER_SCOPES", "chat:write,users:read,channels:read"),
		SlackAPIRPS:        getFloat("SLACK_API_RPS", 20),
		AppInstallURL:      getEnv("APP_INSTALL_URL", domain.DefaultInstallURL),
		DatabasePath:       getEnv("DATABASE_PATH", "./local_dev.db"),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

// Mode is single-workspace when a user token is configured, oauth otherwise.
func (c *Config) Mode() Mode {
	if c.SlackUserToken != "" {
		return ModeSingleWorkspace
	}
	return ModeOAuth
}

// SocketMode reports whether events arrive over Socket Mode instead of HTTP.
func (c *Config) SocketMode() bool {
	return c.SlackAppToken != ""
}

// Validate checks that the settings required by the active mode are present.
func (c *Config) Validate() error {
	var errs []error

	switch c.Mode() {
	case ModeSingleWorkspace:
		if c.SlackBotToken == "" {
			errs = append(errs, errors.New("SLACK_BOT_TOKEN is required in single-workspace mode"))
		}
	case ModeOAuth:
		if c.SlackClientID == "" {
			errs = append(errs, errors.New("SLACK_CLIENT_ID is required in oauth mode"))
		}
		if c.SlackClientSecret == "" {
			errs = append(errs, errors.New("SLACK_CLIENT_SECRET is required in oauth mode"))
		}
	}

	if !c.SocketMode() && c.SlackSigningSecret == "" {
		errs = append(errs, errors.New("SLACK_SIGNING_SECRET is required unless SLACK_APP_TOKEN is set"))
	}
	if c.SocketMode() && !strings.HasPrefix(c.SlackAppToken, "xapp-") {
		errs = append(errs, errors.New("SLACK_APP_TOKEN must start with xapp-"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getList(key, defaultValue string) []string {
	var out []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}
