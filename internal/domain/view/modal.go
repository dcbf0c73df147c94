package view

import (
	"github.com/diegoclair/send-it-later/internal/domain"
	"github.com/diegoclair/send-it-later/internal/domain/entity"
	"github.com/diegoclair/send-it-later/internal/domain/posttime"
	domainslack "github.com/diegoclair/send-it-later/internal/domain/slack"
	"github.com/slack-go/slack"
)

// ScheduleModal is the compose form. With a nil source it asks for the
// message text; otherwise it previews the copied message and carries it in
// private_metadata.
func ScheduleModal(source *entity.MessagePayload, offsetSeconds int, resolver *posttime.Resolver) (slack.ModalViewRequest, error) {
	modal := slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: domainslack.ViewScheduleMessage,
		Title:      plainText("Schedule a new message"),
		Submit:     plainText("Submit"),
		Close:      plainText("Cancel"),
	}

	var blocks []slack.Block
	if source == nil {
		input := slack.NewPlainTextInputBlockElement(nil, domain.InputActionID)
		input.Multiline = true
		blocks = append(blocks, slack.NewInputBlock(domain.BlockMessage, plainText("Message"), nil, input))
	} else {
		metadata, err := source.Metadata()
		if err != nil {
			return slack.ModalViewRequest{}, err
		}
		modal.PrivateMetadata = metadata

		if source.HasBlocks() {
			blocks = append(blocks, source.Blocks.BlockSet...)
		} else {
			blocks = append(blocks, slack.NewSectionBlock(markdown(source.Text), nil, nil))
		}
	}

	datePicker := slack.NewDatePickerBlockElement(domain.InputActionID)
	datePicker.InitialDate = resolver.SuggestedDate(offsetSeconds, domain.DefaultMinutesAhead)
	datePicker.Placeholder = plainText("Select a date")

	timePicker := slack.NewTimePickerBlockElement(domain.InputActionID)
	timePicker.InitialTime = resolver.SuggestedTime(offsetSeconds, domain.DefaultMinutesAhead)
	timePicker.Placeholder = plainText("Select time")

	channelSelect := slack.NewOptionsSelectBlockElement(
		slack.OptTypeChannels,
		plainText("Select the channel to post this message"),
		domain.InputActionID,
	)

	blocks = append(blocks,
		slack.NewInputBlock(domain.BlockDate, plainText("Date"), nil, datePicker),
		slack.NewInputBlock(domain.BlockTime, plainText("Time"), nil, timePicker),
		slack.NewInputBlock(domain.BlockChannel, plainText("Channel"), nil, channelSelect),
	)
	modal.Blocks = slack.Blocks{BlockSet: blocks}

	return modal, nil
}

// InstallModal asks the user to connect their account before scheduling.
func InstallModal(installURL string) slack.ModalViewRequest {
	button := slack.NewButtonBlockElement(domainslack.ActionLink, "link-click", plainText("Install This App"))
	button.URL = installURL

	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: domainslack.ViewFailure,
		Title:      plainText("Install This App!"),
		Close:      plainText("Cancel"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewSectionBlock(
				markdown("Connect your Slack account with this app first!"),
				nil,
				slack.NewAccessory(button),
			),
		}},
	}
}

// UnsupportedModal is shown when a message cannot be copied into the compose modal.
func UnsupportedModal() slack.ModalViewRequest {
	return slack.ModalViewRequest{
		Type:       slack.VTModal,
		CallbackID: domainslack.ViewFailure,
		Title:      plainText("Unsupported Message Type"),
		Close:      plainText("Cancel"),
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewSectionBlock(markdown("Sorry, I cannot schedule this message! :bow:"), nil, nil),
		}},
	}
}
