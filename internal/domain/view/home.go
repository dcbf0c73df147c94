// Package view builds the Block Kit surfaces of the app: the Home tab and
// the modals opened from it.
package view

import (
	"fmt"

	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/diegoclair/send-it-later/internal/domain/posttime"
	domainslack "github.com/diegoclair/send-it-later/internal/domain/slack"
	"github.com/slack-go/slack"
)

// Home lays out the Home tab: a compose control followed by one row per
// scheduled message, in the order Slack returned them.
func Home(messages []entity.ScheduledMessage, offsetSeconds int) slack.HomeTabViewRequest {
	blocks := make([]slack.Block, 0, 1+2*len(messages))
	blocks = append(blocks, composeSection())

	for _, msg := range messages {
		blocks = append(blocks, slack.NewDividerBlock(), scheduledSection(msg, offsetSeconds))
	}

	return slack.HomeTabViewRequest{
		Type:   slack.VTHomeTab,
		Blocks: slack.Blocks{BlockSet: blocks},
	}
}

func composeSection() *slack.SectionBlock {
	button := slack.NewButtonBlockElement(
		domainslack.ActionNewMessage,
		"edit",
		plainText("New"),
	)
	button.Style = slack.StylePrimary

	return slack.NewSectionBlock(
		markdown("Schedule a message :point_right:"),
		nil,
		slack.NewAccessory(button),
	)
}

func scheduledSection(msg entity.ScheduledMessage, offsetSeconds int) *slack.SectionBlock {
	ref := domainslack.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}

	button := slack.NewButtonBlockElement(
		domainslack.ActionDeleteMessage,
		ref.String(),
		plainText("Delete"),
	)
	button.Style = slack.StyleDanger

	text := fmt.Sprintf("%s\n\n_This message will be posted in <#%s> at %s_",
		msg.Text, msg.ChannelID, posttime.Format(msg.PostAt, offsetSeconds))

	return slack.NewSectionBlock(markdown(text), nil, slack.NewAccessory(button))
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func markdown(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}
