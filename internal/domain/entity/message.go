package entity

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// ScheduleRequest is the content of a submitted schedule modal.
type ScheduleRequest struct {
	ChannelID   string
	MessageText string
	// Metadata is the modal's private_metadata: a JSON MessagePayload when
	// the modal was opened from an existing message, empty otherwise.
	Metadata   string
	TargetDate string // YYYY-M-D
	TargetTime string // HH:MM
	TzOffset   int
}

// Payload returns the message to schedule. A payload carried in Metadata
// wins over the plain text field.
func (r ScheduleRequest) Payload() (MessagePayload, error) {
	if r.Metadata == "" {
		return MessagePayload{Text: r.MessageText}, nil
	}

	var payload MessagePayload
	if err := json.Unmarshal([]byte(r.Metadata), &payload); err != nil {
		return MessagePayload{}, fmt.Errorf("failed to decode message metadata: %w", err)
	}
	return payload, nil
}

// ScheduledMessage mirrors a message scheduled on Slack's side.
type ScheduledMessage struct {
	ID        string `json:"id"`
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
	PostAt    int64  `json:"post_at"`
}

// MessagePayload is the content handed to chat.scheduleMessage.
// Channel is set only when the payload was taken from an existing message;
// it is where the confirmation notice goes.
type MessagePayload struct {
	Channel     string             `json:"channel,omitempty"`
	Text        string             `json:"text"`
	Attachments []slack.Attachment `json:"attachments,omitempty"`
	Blocks      *slack.Blocks      `json:"blocks,omitempty"`
}

// NewMessagePayload copies an existing message for rescheduling. Rich text
// blocks are dropped since the compose modal cannot render them; when no
// block survives, the payload falls back to text and attachments.
func NewMessagePayload(channelID string, msg slack.Msg) MessagePayload {
	payload := MessagePayload{
		Channel:     channelID,
		Text:        msg.Text,
		Attachments: msg.Attachments,
	}

	var kept []slack.Block
	for _, block := range msg.Blocks.BlockSet {
		if block.BlockType() == slack.MBTRichText {
			continue
		}
		kept = append(kept, block)
	}
	if len(kept) > 0 {
		payload.Blocks = &slack.Blocks{BlockSet: kept}
	}

	return payload
}

// FromMessage reports whether the payload was taken from a channel message
// rather than typed into a blank compose modal.
func (p MessagePayload) FromMessage() bool {
	return p.Channel != ""
}

// HasBlocks reports whether the payload carries blocks.
func (p MessagePayload) HasBlocks() bool {
	return p.Blocks != nil && len(p.Blocks.BlockSet) > 0
}

// Metadata encodes the payload for a modal's private_metadata.
func (p MessagePayload) Metadata() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode message metadata: %w", err)
	}
	return string(b), nil
}
