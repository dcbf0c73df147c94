package domain

// DefaultMinutesAhead is how far in the future the compose modal's
// date and time pickers start.
const DefaultMinutesAhead = 10

// DefaultInstallURL is shown in the install prompt when APP_INSTALL_URL is unset.
const DefaultInstallURL = "https://j.mp/send-it-later"

// Field-level messages shown in the schedule modal.
const (
	MsgFutureDate   = "Set a future date"
	MsgFutureTime   = "Set a future time"
	MsgNotInChannel = "You are not in the channel!"
	MsgInvalidDate  = "Select a valid date"
	MsgInvalidTime  = "Select a valid time"
)

// Modal block IDs, also used as keys for field errors.
const (
	BlockMessage = "message"
	BlockDate    = "date"
	BlockTime    = "time"
	BlockChannel = "channel"
)

// InputActionID is the action ID shared by every input element of the schedule modal.
const InputActionID = "input"
