package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain/contract"
	"github.com/diegoclair/send-it-later/internal/domain/posttime"
	"github.com/diegoclair/send-it-later/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	testBotToken   = "xoxb-test"
	testUserToken  = "xoxp-test"
	testInstallURL = "https://example.com/slack/install"
	testTeamID     = "T123"
	testUserID     = "U123"
	testOffset     = 9 * 3600
)

// testNow is 2024-05-01 21:00 in UTC+09:00.
var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockInstallationRepo *mocks.MockInstallationRepo
	mockBotRepo          *mocks.MockBotRepo
	mockOAuthStateRepo   *mocks.MockOAuthStateRepo
	mockSlackClients     *mocks.MockSlackClientFactory
	mockBotClient        *mocks.MockSlackClient
	mockUserClient       *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	installationRepo := mocks.NewMockInstallationRepo(ctrl)
	dm.EXPECT().Installation().Return(installationRepo).AnyTimes()

	botRepo := mocks.NewMockBotRepo(ctrl)
	dm.EXPECT().Bot().Return(botRepo).AnyTimes()

	oauthStateRepo := mocks.NewMockOAuthStateRepo(ctrl)
	dm.EXPECT().OAuthState().Return(oauthStateRepo).AnyTimes()

	botClient := mocks.NewMockSlackClient(ctrl)
	userClient := mocks.NewMockSlackClient(ctrl)

	slackClients := mocks.NewMockSlackClientFactory(ctrl)
	slackClients.EXPECT().ForToken(testBotToken).Return(botClient).AnyTimes()
	slackClients.EXPECT().ForToken(testUserToken).Return(userClient).AnyTimes()

	m = allMocks{
		mockDataManager:      dm,
		mockInstallationRepo: installationRepo,
		mockBotRepo:          botRepo,
		mockOAuthStateRepo:   oauthStateRepo,
		mockSlackClients:     slackClients,
		mockBotClient:        botClient,
		mockUserClient:       userClient,
	}

	// validate service creation
	require.NotNil(t, newTestMessageService(m))
	require.NotNil(t, newTestInstallationService(m))

	return
}

func newTestMessageService(m allMocks) *messageService {
	resolver := posttime.NewWithClock(func() time.Time { return testNow })
	return newMessage(m.mockSlackClients, resolver, testInstallURL, zap.NewNop())
}

func newTestInstallationService(m allMocks) *installationService {
	return newInstallation(m.mockDataManager, func() time.Time { return testNow }, zap.NewNop())
}

// expectTransaction runs the transaction body against the same mocked DataManager.
func expectTransaction(m allMocks) *gomock.Call {
	return m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		})
}

type sameInstant struct {
	want time.Time
}

// atInstant matches a time.Time equal to want regardless of its location.
func atInstant(want time.Time) gomock.Matcher {
	return sameInstant{want: want}
}

func (m sameInstant) Matches(x any) bool {
	got, ok := x.(time.Time)
	return ok && got.Equal(m.want)
}

func (m sameInstant) String() string {
	return fmt.Sprintf("is the instant %s", m.want.UTC())
}
