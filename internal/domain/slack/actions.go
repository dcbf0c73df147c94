package slack

import (
	"fmt"
	"strings"
)

// Callback and action identifiers the app registers with Slack.
const (
	ShortcutSendLater   = "send-this-message-later"
	ViewScheduleMessage = "schedule-new-message"
	ViewFailure         = "failure"

	ActionNewMessage    = "schedule-new-message-button"
	ActionDeleteMessage = "delete-scheduled-message-button"
	ActionLink          = "link-button"
)

// Event types the app subscribes to.
const (
	EventAppHomeOpened  = "app_home_opened"
	EventTokensRevoked  = "tokens_revoked"
	EventAppUninstalled = "app_uninstalled"
)

// HomeTab is the tab value of app_home_opened for the Home tab.
const HomeTab = "home"

// MessageRef addresses a single scheduled message.
type MessageRef struct {
	ChannelID string
	MessageID string
}

// String encodes the ref as the value of a delete button.
func (r MessageRef) String() string {
	return r.ChannelID + "_" + r.MessageID
}

// ParseMessageRef decodes a delete button value of the form channel_message.
func ParseMessageRef(value string) (MessageRef, error) {
	channelID, messageID, ok := strings.Cut(strings.TrimSpace(value), "_")
	if !ok || channelID == "" || messageID == "" {
		return MessageRef{}, fmt.Errorf("invalid scheduled message reference: %q", value)
	}

	return MessageRef{ChannelID: channelID, MessageID: messageID}, nil
}
