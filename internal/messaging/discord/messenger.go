// Package discord implements messaging.Messenger over the Discord gateway.
package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/messaging"
	"github.com/KirkDiggler/dnd-companion/internal/pkg/idgen"
)

const embedColor = 0x5865F2

// Config holds the dependencies for the Discord messenger
type Config struct {
	Session *discordgo.Session

	// IDGenerator mints component custom IDs; defaults to UUIDs
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Session == nil {
		return errors.InvalidArgument("session is required")
	}
	return nil
}

// Messenger adapts a discordgo session to the messaging.Messenger interface.
// It installs gateway handlers on construction; call the session's Open and
// Close around its lifetime.
type Messenger struct {
	session *discordgo.Session
	idgen   idgen.Generator
	waiters *registry
}

// New creates a Discord messenger and registers its gateway handlers
func New(cfg *Config) (*Messenger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	m := &Messenger{
		session: cfg.Session,
		idgen:   cfg.IDGenerator,
		waiters: newRegistry(),
	}
	if m.idgen == nil {
		m.idgen = idgen.NewUUID("choice")
	}

	m.session.AddHandler(m.onMessageCreate)
	m.session.AddHandler(m.onInteractionCreate)
	return m, nil
}

var _ messaging.Messenger = (*Messenger)(nil)

// SendCard sends a card to a channel as an embed
func (m *Messenger) SendCard(_ context.Context, channelID string, card *messaging.Card) error {
	if _, err := m.session.ChannelMessageSendEmbed(channelID, toEmbed(card)); err != nil {
		return errors.Wrapf(err, "failed to send message to channel %s", channelID)
	}
	return nil
}

// OpenDM returns the user's DM channel, creating it if needed
func (m *Messenger) OpenDM(_ context.Context, userID string) (string, error) {
	channel, err := m.session.UserChannelCreate(userID)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open DM with user %s", userID)
	}
	return channel.ID, nil
}

// PresentChoice sends a card with a select menu and waits for the selection
func (m *Messenger) PresentChoice(ctx context.Context, channelID string, card *messaging.Card, options []string, timeout time.Duration) (string, error) {
	if len(options) == 0 {
		return "", errors.InvalidArgument("at least one option is required")
	}

	customID := m.idgen.Generate()
	menuOptions := make([]discordgo.SelectMenuOption, len(options))
	for i, option := range options {
		menuOptions[i] = discordgo.SelectMenuOption{Label: option, Value: option}
	}

	wait := m.waiters.registerChoice(customID)
	defer m.waiters.unregisterChoice(customID)

	_, err := m.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{toEmbed(card)},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    customID,
						Placeholder: "Select one",
						Options:     menuOptions,
					},
				},
			},
		},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to send choice to channel %s", channelID)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case value := <-wait:
		return value, nil
	case <-timer.C:
		return "", errors.DeadlineExceeded("timed out waiting for selection")
	case <-ctx.Done():
		return "", errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "wait aborted")
	}
}

// AwaitReply waits for the user's next message in the channel
func (m *Messenger) AwaitReply(ctx context.Context, userID, channelID string, timeout time.Duration) (string, error) {
	wait := m.waiters.registerText(userID, channelID)
	defer m.waiters.unregisterText(userID, channelID)

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case content := <-wait:
		return content, nil
	case <-timer.C:
		return "", errors.DeadlineExceeded("timed out waiting for reply")
	case <-ctx.Done():
		return "", errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "wait aborted")
	}
}

func (m *Messenger) onMessageCreate(s *discordgo.Session, event *discordgo.MessageCreate) {
	if event.Author == nil || event.Author.ID == s.State.User.ID {
		return
	}
	m.waiters.deliverText(event.Author.ID, event.ChannelID, event.Content)
}

func (m *Messenger) onInteractionCreate(s *discordgo.Session, event *discordgo.InteractionCreate) {
	if event.Type != discordgo.InteractionMessageComponent {
		return
	}
	data := event.MessageComponentData()
	if len(data.Values) == 0 {
		return
	}
	if !m.waiters.deliverChoice(data.CustomID, data.Values[0]) {
		return
	}
	// Ack so the client stops showing the interaction as pending
	_ = s.InteractionRespond(event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}

func toEmbed(card *messaging.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: card.Description,
		Color:       embedColor,
	}
	for _, field := range card.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	if card.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: card.Footer}
	}
	return embed
}
