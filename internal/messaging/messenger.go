// Package messaging abstracts the chat transport the creation flows run over.
// The orchestrators only ever talk to the Messenger interface; the Discord
// implementation lives in the discord subpackage.
package messaging

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_messenger.go -package=messagingmock github.com/KirkDiggler/dnd-companion/internal/messaging Messenger

// Card is a formatted message. Rendering specifics (colors, thumbnails) are
// the transport's concern.
type Card struct {
	Title       string
	Description string
	Fields      []Field
	Footer      string
}

// Field is a labeled section of a Card
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Messenger sends cards and conducts bounded waits for user input.
//
// Every wait takes an explicit timeout and returns either the user's input or
// an errors.DeadlineExceeded coded error; there is no indefinite blocking.
// A wait is a single-shot future keyed by (user, channel): at most one value
// is ever delivered to it.
type Messenger interface {
	// SendCard sends a card to a channel (public or DM)
	SendCard(ctx context.Context, channelID string, card *Card) error

	// OpenDM returns the channel ID of the user's private conversation,
	// creating it if needed
	OpenDM(ctx context.Context, userID string) (string, error)

	// PresentChoice sends a card with a single-choice menu and waits for the
	// selection. Returns errors.DeadlineExceeded when nothing is chosen in
	// time.
	PresentChoice(ctx context.Context, channelID string, card *Card, options []string, timeout time.Duration) (string, error)

	// AwaitReply waits for the next free-text message from the user in the
	// given channel. Returns errors.DeadlineExceeded on timeout.
	AwaitReply(ctx context.Context, userID, channelID string, timeout time.Duration) (string, error)
}
