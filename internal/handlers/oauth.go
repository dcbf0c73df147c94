package handlers

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/send-it-later/internal/config"
	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/diegoclair/send-it-later/internal/metrics"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Slack's OAuth v2 endpoints.
var slackEndpoint = oauth2.Endpoint{
	AuthURL:  "https://slack.com/oauth/v2/authorize",
	TokenURL: "https://slack.com/api/oauth.v2.access",
}

// OAuthExchanger trades an authorization code for an installation.
type OAuthExchanger func(ctx context.Context, code string) (*entity.Installation, error)

// SlackOAuthExchanger calls oauth.v2.access with the app credentials.
func SlackOAuthExchanger(cfg *config.Config, client *http.Client) OAuthExchanger {
	return func(ctx context.Context, code string) (*entity.Installation, error) {
		resp, err := slack.GetOAuthV2ResponseContext(ctx, client, cfg.SlackClientID, cfg.SlackClientSecret, code, cfg.SlackRedirectURI)
		if err != nil {
			return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
		}

		return &entity.Installation{
			AppID:               resp.AppID,
			EnterpriseID:        resp.Enterprise.ID,
			TeamID:              resp.Team.ID,
			TeamName:            resp.Team.Name,
			UserID:              resp.AuthedUser.ID,
			BotToken:            resp.AccessToken,
			BotUserID:           resp.BotUserID,
			BotScopes:           resp.Scope,
			UserToken:           resp.AuthedUser.AccessToken,
			UserScopes:          resp.AuthedUser.Scope,
			IsEnterpriseInstall: resp.IsEnterpriseInstall,
			InstalledAt:         time.Now(),
		}, nil
	}
}

var resultPage = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html>
<head><title>send-it-later</title></head>
<body><p>{{.}}</p></body>
</html>
`))

// OAuthHandler runs the "Add to Slack" flow in oauth mode.
type OAuthHandler struct {
	installations contract.InstallationService
	oauth         *oauth2.Config
	scopes        string
	userScopes    string
	exchange      OAuthExchanger
	recorder      *metrics.Recorder
	log           *zap.Logger
}

func NewOAuthHandler(cfg *config.Config, installations contract.InstallationService, exchange OAuthExchanger,
	recorder *metrics.Recorder, log *zap.Logger) *OAuthHandler {
	return &OAuthHandler{
		installations: installations,
		oauth: &oauth2.Config{
			ClientID:     cfg.SlackClientID,
			ClientSecret: cfg.SlackClientSecret,
			RedirectURL:  cfg.SlackRedirectURI,
			Endpoint:     slackEndpoint,
		},
		scopes:     strings.Join(cfg.SlackScopes, ","),
		userScopes: strings.Join(cfg.SlackUserScopes, ","),
		exchange:   exchange,
		recorder:   recorder,
		log:        log,
	}
}

// HandleInstall redirects to Slack's authorize page with a fresh state.
func (h *OAuthHandler) HandleInstall(w http.ResponseWriter, r *http.Request) {
	state, err := h.installations.IssueState(r.Context())
	if err != nil {
		h.log.Error("failed to issue oauth state", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Slack wants comma separated scopes; oauth2 would join them with spaces.
	url := h.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("scope", h.scopes),
		oauth2.SetAuthURLParam("user_scope", h.userScopes),
	)
	http.Redirect(w, r, url, http.StatusFound)
}

// HandleRedirect completes an install started by HandleInstall.
func (h *OAuthHandler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if reason := query.Get("error"); reason != "" {
		h.log.Info("installation declined", zap.String("error", reason))
		h.render(w, http.StatusBadRequest, "The installation was cancelled.")
		return
	}

	ok, err := h.installations.ConsumeState(r.Context(), query.Get("state"))
	if err != nil {
		h.log.Error("failed to consume oauth state", zap.Error(err))
		h.render(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if !ok {
		h.render(w, http.StatusBadRequest, "This installation link has expired. Please try again.")
		return
	}

	code := query.Get("code")
	if code == "" {
		h.render(w, http.StatusBadRequest, "Missing authorization code.")
		return
	}

	installation, err := h.exchange(r.Context(), code)
	if err != nil {
		h.log.Error("failed to complete installation", zap.Error(err))
		h.render(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	if err := h.installations.SaveInstallation(r.Context(), installation); err != nil {
		h.log.Error("failed to save installation", zap.String("team_id", installation.TeamID), zap.Error(err))
		h.render(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	h.recorder.Installed()

	h.render(w, http.StatusOK, "Thank you! The app is now installed. You can close this window.")
}

func (h *OAuthHandler) render(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := resultPage.Execute(w, message); err != nil {
		h.log.Error("failed to render page", zap.Error(err))
	}
}
