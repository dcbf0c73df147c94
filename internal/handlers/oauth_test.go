package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/diegoclair/send-it-later/internal/handlers"
	"github.com/diegoclair/send-it-later/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOAuthHandler_HandleInstall(t *testing.T) {
	m, handler, ctrl := test.GetOAuthHandlerTest(t, nil)
	defer ctrl.Finish()

	m.InstallationServiceMock.EXPECT().IssueState(gomock.Any()).Return("state-1", nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/slack/install", nil)
	recorder := httptest.NewRecorder()

	handler.HandleInstall(recorder, req)

	require.Equal(t, http.StatusFound, recorder.Code)

	location, err := url.Parse(recorder.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "slack.com", location.Host)
	assert.Equal(t, "/oauth/v2/authorize", location.Path)

	query := location.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "state-1", query.Get("state"))
	assert.Equal(t, "commands,chat:write", query.Get("scope"))
	assert.Equal(t, "chat:write,users:read", query.Get("user_scope"))
	assert.Equal(t, "https://example.com/slack/oauth_redirect", query.Get("redirect_uri"))
}

func TestOAuthHandler_HandleInstall_StateFailure(t *testing.T) {
	m, handler, ctrl := test.GetOAuthHandlerTest(t, nil)
	defer ctrl.Finish()

	m.InstallationServiceMock.EXPECT().IssueState(gomock.Any()).Return("", errors.New("database is locked")).Times(1)

	recorder := httptest.NewRecorder()
	handler.HandleInstall(recorder, httptest.NewRequest(http.MethodGet, "/slack/install", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestOAuthHandler_HandleRedirect(t *testing.T) {
	installation := &entity.Installation{TeamID: "T1", UserID: "U1", BotToken: "xoxb-1", UserToken: "xoxp-1"}

	tests := []struct {
		name       string
		query      string
		exchange   handlers.OAuthExchanger
		buildMocks func(m test.ServiceMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "Should save the installation",
			query: "?code=abc&state=state-1",
			exchange: func(ctx context.Context, code string) (*entity.Installation, error) {
				assert.Equal(t, "abc", code)
				return installation, nil
			},
			buildMocks: func(m test.ServiceMocks) {
				m.InstallationServiceMock.EXPECT().ConsumeState(gomock.Any(), "state-1").Return(true, nil).Times(1)
				m.InstallationServiceMock.EXPECT().SaveInstallation(gomock.Any(), installation).Return(nil).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   "now installed",
		},
		{
			name:       "Should reject a cancelled install",
			query:      "?error=access_denied&state=state-1",
			buildMocks: func(m test.ServiceMocks) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "cancelled",
		},
		{
			name:  "Should reject an expired state",
			query: "?code=abc&state=old",
			buildMocks: func(m test.ServiceMocks) {
				m.InstallationServiceMock.EXPECT().ConsumeState(gomock.Any(), "old").Return(false, nil).Times(1)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "expired",
		},
		{
			name:  "Should reject a missing code",
			query: "?state=state-1",
			buildMocks: func(m test.ServiceMocks) {
				m.InstallationServiceMock.EXPECT().ConsumeState(gomock.Any(), "state-1").Return(true, nil).Times(1)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Missing authorization code",
		},
		{
			name:  "Should fail when the code exchange fails",
			query: "?code=abc&state=state-1",
			exchange: func(ctx context.Context, code string) (*entity.Installation, error) {
				return nil, errors.New("invalid_code")
			},
			buildMocks: func(m test.ServiceMocks) {
				m.InstallationServiceMock.EXPECT().ConsumeState(gomock.Any(), "state-1").Return(true, nil).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:  "Should fail when the installation cannot be saved",
			query: "?code=abc&state=state-1",
			exchange: func(ctx context.Context, code string) (*entity.Installation, error) {
				return installation, nil
			},
			buildMocks: func(m test.ServiceMocks) {
				m.InstallationServiceMock.EXPECT().ConsumeState(gomock.Any(), "state-1").Return(true, nil).Times(1)
				m.InstallationServiceMock.EXPECT().SaveInstallation(gomock.Any(), installation).Return(errors.New("disk full")).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetOAuthHandlerTest(t, tt.exchange)
			defer ctrl.Finish()

			tt.buildMocks(m)

			req := httptest.NewRequest(http.MethodGet, "/slack/oauth_redirect"+tt.query, nil)
			recorder := httptest.NewRecorder()

			handler.HandleRedirect(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}
