package slackapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/send-it-later/internal/domain"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/diegoclair/send-it-later/internal/domain/view"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlack records form posts and answers with canned JSON per API method.
type fakeSlack struct {
	mu        sync.Mutex
	responses map[string][]string
	calls     map[string][]url.Values
}

func newFakeSlack(t *testing.T) (*fakeSlack, *Factory) {
	t.Helper()

	f := &fakeSlack{
		responses: map[string][]string{},
		calls:     map[string][]url.Values{},
	}
	server := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(server.Close)

	return f, NewFactory(nil, slack.OptionAPIURL(server.URL+"/"))
}

func (f *fakeSlack) on(method string, bodies ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[method] = append(f.responses[method], bodies...)
}

func (f *fakeSlack) callsTo(method string) []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeSlack) serve(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[1:]
	_ = r.ParseForm()

	f.mu.Lock()
	f.calls[method] = append(f.calls[method], r.PostForm)
	body := `{"ok":false,"error":"unknown_method"}`
	if queue := f.responses[method]; len(queue) > 0 {
		body = queue[0]
		if len(queue) > 1 {
			f.responses[method] = queue[1:]
		}
	}
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func TestClient_UserTimezoneOffset(t *testing.T) {
	fake, factory := newFakeSlack(t)
	fake.on("users.info", `{"ok":true,"user":{"id":"U1","tz_offset":-18000}}`)

	offset, err := factory.ForToken("xoxp-user").UserTimezoneOffset(context.Background(), "U1")

	require.NoError(t, err)
	assert.Equal(t, -18000, offset)
	require.Len(t, fake.callsTo("users.info"), 1)
	assert.Equal(t, "U1", fake.callsTo("users.info")[0].Get("user"))
}

func TestClient_ScheduleMessage(t *testing.T) {
	postAt := time.Date(2030, 1, 2, 3, 4, 0, 0, time.UTC)

	t.Run("Should send text, blocks and post_at", func(t *testing.T) {
		fake, factory := newFakeSlack(t)
		fake.on("chat.scheduleMessage", `{"ok":true,"channel":"C1","scheduled_message_id":"Q1","post_at":1893553440}`)

		payload := entity.MessagePayload{
			Text:        "hello",
			Attachments: []slack.Attachment{{Text: "attached"}},
			Blocks:      &slack.Blocks{BlockSet: []slack.Block{slack.NewDividerBlock()}},
		}
		scheduled, err := factory.ForToken("xoxp-user").ScheduleMessage(context.Background(), "C1", postAt, payload)

		require.NoError(t, err)
		assert.Equal(t, "C1", scheduled.ChannelID)
		assert.Equal(t, postAt.Unix(), scheduled.PostAt)

		calls := fake.callsTo("chat.scheduleMessage")
		require.Len(t, calls, 1)
		assert.Equal(t, "C1", calls[0].Get("channel"))
		assert.Equal(t, "1893553440", calls[0].Get("post_at"))
		assert.Equal(t, "hello", calls[0].Get("text"))
		assert.Contains(t, calls[0].Get("blocks"), `"divider"`)
		assert.Contains(t, calls[0].Get("attachments"), "attached")
	})

	t.Run("Should omit blocks when the payload has none", func(t *testing.T) {
		fake, factory := newFakeSlack(t)
		fake.on("chat.scheduleMessage", `{"ok":true,"channel":"C1","scheduled_message_id":"Q1"}`)

		_, err := factory.ForToken("xoxp-user").ScheduleMessage(context.Background(), "C1", postAt, entity.MessagePayload{Text: "plain"})

		require.NoError(t, err)
		assert.Empty(t, fake.callsTo("chat.scheduleMessage")[0].Get("blocks"))
	})

	t.Run("Should map not_in_channel", func(t *testing.T) {
		fake, factory := newFakeSlack(t)
		fake.on("chat.scheduleMessage", `{"ok":false,"error":"not_in_channel"}`)

		_, err := factory.ForToken("xoxp-user").ScheduleMessage(context.Background(), "C1", postAt, entity.MessagePayload{Text: "x"})

		assert.ErrorIs(t, err, domain.ErrNotInChannel)
	})

	t.Run("Should wrap other failures", func(t *testing.T) {
		fake, factory := newFakeSlack(t)
		fake.on("chat.scheduleMessage", `{"ok":false,"error":"time_in_past"}`)

		_, err := factory.ForToken("xoxp-user").ScheduleMessage(context.Background(), "C1", postAt, entity.MessagePayload{Text: "x"})

		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrNotInChannel))
		assert.Contains(t, err.Error(), "time_in_past")
	})
}

func TestClient_ListScheduledMessages(t *testing.T) {
	fake, factory := newFakeSlack(t)
	fake.on("chat.scheduledMessages.list",
		`{"ok":true,"scheduled_messages":[{"id":"Q2","channel_id":"C1","post_at":200,"text":"b"},{"id":"Q1","channel_id":"C2","post_at":100,"text":"a"}],"response_metadata":{"next_cursor":"page2"}}`,
		`{"ok":true,"scheduled_messages":[{"id":"Q3","channel_id":"C1","post_at":300,"text":"c"}],"response_metadata":{"next_cursor":""}}`,
	)

	messages, err := factory.ForToken("xoxp-user").ListScheduledMessages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []entity.ScheduledMessage{
		{ID: "Q2", ChannelID: "C1", Text: "b", PostAt: 200},
		{ID: "Q1", ChannelID: "C2", Text: "a", PostAt: 100},
		{ID: "Q3", ChannelID: "C1", Text: "c", PostAt: 300},
	}, messages)

	calls := fake.callsTo("chat.scheduledMessages.list")
	require.Len(t, calls, 2)
	assert.Empty(t, calls[0].Get("cursor"))
	assert.Equal(t, "page2", calls[1].Get("cursor"))
}

func TestClient_DeleteScheduledMessage(t *testing.T) {
	fake, factory := newFakeSlack(t)
	fake.on("chat.deleteScheduledMessage", `{"ok":true}`, `{"ok":false,"error":"invalid_scheduled_message_id"}`)
	c := factory.ForToken("xoxp-user")

	require.NoError(t, c.DeleteScheduledMessage(context.Background(), "C1", "Q1"))
	calls := fake.callsTo("chat.deleteScheduledMessage")
	require.Len(t, calls, 1)
	assert.Equal(t, "C1", calls[0].Get("channel"))
	assert.Equal(t, "Q1", calls[0].Get("scheduled_message_id"))

	require.Error(t, c.DeleteScheduledMessage(context.Background(), "C1", "Q404"))
}

func TestClient_PostEphemeral(t *testing.T) {
	fake, factory := newFakeSlack(t)
	fake.on("chat.postEphemeral", `{"ok":true,"message_ts":"1.2"}`)

	err := factory.ForToken("xoxb-bot").PostEphemeral(context.Background(), "C1", "U1", "scheduled")

	require.NoError(t, err)
	calls := fake.callsTo("chat.postEphemeral")
	require.Len(t, calls, 1)
	assert.Equal(t, "C1", calls[0].Get("channel"))
	assert.Equal(t, "U1", calls[0].Get("user"))
	assert.Equal(t, "scheduled", calls[0].Get("text"))
}

func TestClient_Views(t *testing.T) {
	fake, factory := newFakeSlack(t)
	fake.on("views.open", `{"ok":true,"view":{"id":"V1"}}`)
	fake.on("views.publish", `{"ok":true,"view":{"id":"V2"}}`, `{"ok":false,"error":"not_enabled"}`)
	c := factory.ForToken("xoxb-bot")

	require.NoError(t, c.OpenView(context.Background(), "trigger", view.UnsupportedModal()))
	require.NoError(t, c.PublishHomeView(context.Background(), "U1", view.Home(nil, 0)))
	require.Error(t, c.PublishHomeView(context.Background(), "U1", view.Home(nil, 0)))

	assert.Len(t, fake.callsTo("views.open"), 1)
	assert.Len(t, fake.callsTo("views.publish"), 2)
}

func TestIsSlackError(t *testing.T) {
	assert.True(t, isSlackError(slack.SlackErrorResponse{Err: "not_in_channel"}, "not_in_channel"))
	assert.False(t, isSlackError(slack.SlackErrorResponse{Err: "channel_not_found"}, "not_in_channel"))
	assert.True(t, isSlackError(errors.New("not_in_channel"), "not_in_channel"))
	assert.False(t, isSlackError(errors.New("connection reset"), "not_in_channel"))
}
