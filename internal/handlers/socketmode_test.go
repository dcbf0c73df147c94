package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/diegoclair/send-it-later/internal/domain"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/diegoclair/send-it-later/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type sentAck struct {
	envelopeID string
	payload    []interface{}
}

type ackRecorder struct {
	acks []sentAck
}

func (r *ackRecorder) Ack(req socketmode.Request, payload ...interface{}) {
	r.acks = append(r.acks, sentAck{envelopeID: req.EnvelopeID, payload: payload})
}

func homeOpenedEnvelope(t *testing.T) socketmode.Event {
	t.Helper()

	event, err := slackevents.ParseEvent(
		json.RawMessage(eventBody(`{"type":"app_home_opened","user":"U1","channel":"D1","tab":"home","event_ts":"1714500000.000100"}`)),
		slackevents.OptionNoVerifyToken(),
	)
	require.NoError(t, err)

	return socketmode.Event{
		Type:    socketmode.EventTypeEventsAPI,
		Data:    event,
		Request: &socketmode.Request{EnvelopeID: "env-1"},
	}
}

func TestSocketModeListener_Events(t *testing.T) {
	tests := []struct {
		name       string
		buildMocks func(ctx context.Context, m test.ServiceMocks)
		wantAcks   int
	}{
		{
			name: "Should ack once the event was handled",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.AuthorizerMock.EXPECT().Authorize(gomock.Any(), "T1", "U1").Return(actor, nil).Times(1)
				m.MessageServiceMock.EXPECT().PublishHome(gomock.Any(), actor).Return(nil).Times(1)
			},
			wantAcks: 1,
		},
		{
			name: "Should not ack an event that failed",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.AuthorizerMock.EXPECT().Authorize(gomock.Any(), "T1", "U1").Return(actor, nil).Times(1)
				m.MessageServiceMock.EXPECT().PublishHome(gomock.Any(), actor).Return(errors.New("invalid_auth")).Times(1)
			},
			wantAcks: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, listener, ctrl := test.GetSocketModeTest(t, zap.NewNop())
			defer ctrl.Finish()

			acks := &ackRecorder{}
			listener.SetAcker(acks)

			ctx := context.Background()
			tt.buildMocks(ctx, m)

			listener.Handle(ctx, homeOpenedEnvelope(t))

			require.Len(t, acks.acks, tt.wantAcks)
			for _, a := range acks.acks {
				assert.Equal(t, "env-1", a.envelopeID)
				assert.Empty(t, a.payload)
			}
		})
	}
}

func TestSocketModeListener_ViewSubmission(t *testing.T) {
	m, listener, ctrl := test.GetSocketModeTest(t, zap.NewNop())
	defer ctrl.Finish()

	acks := &ackRecorder{}
	listener.SetAcker(acks)

	var callback slack.InteractionCallback
	require.NoError(t, json.Unmarshal([]byte(scheduleSubmission), &callback))

	m.AuthorizerMock.EXPECT().Authorize(gomock.Any(), "T1", "U1").Return(actor, nil).Times(1)
	m.MessageServiceMock.EXPECT().Schedule(gomock.Any(), actor, gomock.Any()).
		Return(domain.NewValidationError(domain.BlockChannel, domain.MsgNotInChannel)).Times(1)

	listener.Handle(context.Background(), socketmode.Event{
		Type:    socketmode.EventTypeInteractive,
		Data:    callback,
		Request: &socketmode.Request{EnvelopeID: "env-2"},
	})

	require.Len(t, acks.acks, 1)
	assert.Equal(t, "env-2", acks.acks[0].envelopeID)
	require.Len(t, acks.acks[0].payload, 1)

	body, err := json.Marshal(acks.acks[0].payload[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"response_action":"errors","errors":{"channel":"You are not in the channel!"}}`, string(body))
}

func TestSocketModeListener_InteractionFailure(t *testing.T) {
	m, listener, ctrl := test.GetSocketModeTest(t, zap.NewNop())
	defer ctrl.Finish()

	acks := &ackRecorder{}
	listener.SetAcker(acks)

	var callback slack.InteractionCallback
	require.NoError(t, json.Unmarshal([]byte(scheduleSubmission), &callback))

	m.AuthorizerMock.EXPECT().Authorize(gomock.Any(), "T1", "U1").Return(entity.Actor{}, domain.ErrNotInstalled).Times(1)

	listener.Handle(context.Background(), socketmode.Event{
		Type:    socketmode.EventTypeInteractive,
		Data:    callback,
		Request: &socketmode.Request{EnvelopeID: "env-3"},
	})

	assert.Empty(t, acks.acks)
}

func TestSocketModeListener_LogsEnvelopes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	m, listener, ctrl := test.GetSocketModeTest(t, zap.New(core))
	defer ctrl.Finish()

	listener.SetAcker(&ackRecorder{})

	m.AuthorizerMock.EXPECT().Authorize(gomock.Any(), "T1", "U1").Return(actor, nil).Times(1)
	m.MessageServiceMock.EXPECT().PublishHome(gomock.Any(), actor).Return(nil).Times(1)

	listener.Handle(context.Background(), homeOpenedEnvelope(t))

	entries := logs.FilterMessage("socket mode event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, string(socketmode.EventTypeEventsAPI), entries[0].ContextMap()["type"])
}
