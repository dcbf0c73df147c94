package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/send-it-later/internal/config"
	"github.com/diegoclair/send-it-later/internal/handlers"
	"github.com/diegoclair/send-it-later/internal/metrics"
	"github.com/diegoclair/send-it-later/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	SigningSecret = "test-signing-secret"
	InstallURL    = "https://example.com/slack/install"
)

type ServiceMocks struct {
	AuthorizerMock          *mocks.MockAuthorizer
	MessageServiceMock      *mocks.MockMessageService
	InstallationServiceMock *mocks.MockInstallationService
}

func newMocks(ctrl *gomock.Controller) ServiceMocks {
	return ServiceMocks{
		AuthorizerMock:          mocks.NewMockAuthorizer(ctrl),
		MessageServiceMock:      mocks.NewMockMessageService(ctrl),
		InstallationServiceMock: mocks.NewMockInstallationService(ctrl),
	}
}

func newRecorder(t *testing.T) *metrics.Recorder {
	t.Helper()

	recorder, err := metrics.NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)
	return recorder
}

// GetHandlerTest returns a SlackHandler wired to mocked services, as in oauth mode.
func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = newMocks(ctrl)

	router := handlers.NewRouter(m.AuthorizerMock, m.MessageServiceMock, m.InstallationServiceMock, InstallURL, newRecorder(t), zap.NewNop())
	handler = handlers.New(router, SigningSecret, zap.NewNop())

	return
}

// GetSocketModeTest returns a SocketModeListener wired to mocked services
// that logs to log. It never connects; envelopes are fed through Handle.
func GetSocketModeTest(t *testing.T, log *zap.Logger) (m ServiceMocks, listener *handlers.SocketModeListener, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = newMocks(ctrl)

	router := handlers.NewRouter(m.AuthorizerMock, m.MessageServiceMock, m.InstallationServiceMock, InstallURL, newRecorder(t), zap.NewNop())
	api := slack.New("xoxb-test", slack.OptionAppLevelToken("xapp-test"))
	listener = handlers.NewSocketModeListener(api, router, log)

	return
}

// GetOAuthHandlerTest returns an OAuthHandler that exchanges codes with exchange.
func GetOAuthHandlerTest(t *testing.T, exchange handlers.OAuthExchanger) (m ServiceMocks, handler *handlers.OAuthHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = newMocks(ctrl)

	cfg := &config.Config{
		SlackClientID:     "client-id",
		SlackClientSecret: "client-secret",
		SlackRedirectURI:  "https://example.com/slack/oauth_redirect",
		SlackScopes:       []string{"commands", "chat:write"},
		SlackUserScopes:   []string{"chat:write", "users:read"},
	}
	handler = handlers.NewOAuthHandler(cfg, m.InstallationServiceMock, exchange, newRecorder(t), zap.NewNop())

	return
}

// CreateEventRequest creates a properly signed Events API request
func CreateEventRequest(t *testing.T, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	sign(req, signingSecret, body)

	return req
}

// CreateInteractionRequest creates a properly signed interactivity request
// carrying payload as Slack does, in a form field.
func CreateInteractionRequest(t *testing.T, payload, signingSecret string) *http.Request {
	t.Helper()

	body := url.Values{"payload": {payload}}.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	sign(req, signingSecret, body)

	return req
}

func sign(req *http.Request, signingSecret, body string) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}
