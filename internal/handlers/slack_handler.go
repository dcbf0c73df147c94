package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// SlackHandler receives signed Events API and interactivity requests.
type SlackHandler struct {
	router        *Router
	signingSecret string
	log           *zap.Logger
}

func New(router *Router, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		router:        router,
		signingSecret: signingSecret,
		log:           log,
	}
}

// HandleEvents serves the request URL configured for both Event
// Subscriptions and Interactivity.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected request with invalid signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	h.log.Debug("slack request", zap.ByteString("body", body))

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		h.handleInteraction(w, r)
		return
	}
	h.handleEvent(w, r, body)
}

func (h *SlackHandler) handleEvent(w http.ResponseWriter, r *http.Request, body []byte) {
	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.log.Error("failed to parse event", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if event.Type == slackevents.URLVerification {
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return
	}

	if err := h.router.HandleEvent(r.Context(), event); err != nil {
		h.log.Error("failed to handle event",
			zap.String("type", event.InnerEvent.Type),
			zap.String("team_id", event.TeamID),
			zap.Error(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleInteraction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.PostForm.Get("payload")), &callback); err != nil {
		h.log.Error("failed to parse interaction payload", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response, err := h.router.HandleInteraction(r.Context(), callback)
	if err != nil {
		h.log.Error("failed to handle interaction",
			zap.String("type", string(callback.Type)),
			zap.String("team_id", callback.Team.ID),
			zap.String("user_id", callback.User.ID),
			zap.Error(err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if response == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("failed to write interaction response", zap.Error(err))
	}
}
