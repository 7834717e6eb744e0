// Package commands routes chat commands to the character creation service.
// The handler is transport-thin: it parses the command line and delegates;
// all conversation and persistence live behind creation.Service.
package commands

import (
	"context"
	"strings"

	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

// Command names, without the prefix
const (
	CmdCreation       = "creation"
	CmdRandom         = "random"
	CmdViewCharacter  = "view_character"
	CmdListCharacters = "list_characters"
	CmdCreateNPC      = "create_npc"
	CmdListNPCs       = "list_npcs"
	CmdNPCDetail      = "npc_detail"
	CmdRemoveNPC      = "remove_npc"
)

const defaultPrefix = "!"

// Message is one inbound chat message
type Message struct {
	ChannelID string
	AuthorID  string
	Content   string
}

// Config holds the dependencies for the command handler
type Config struct {
	Service creation.Service

	// Prefix marks command messages; defaults to "!"
	Prefix string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("service is required")
	}
	return nil
}

// Handler dispatches prefixed chat commands to the creation service
type Handler struct {
	service creation.Service
	prefix  string
}

// New creates a new command handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	h := &Handler{
		service: cfg.Service,
		prefix:  cfg.Prefix,
	}
	if h.prefix == "" {
		h.prefix = defaultPrefix
	}
	return h, nil
}

// Handle parses and executes one message. Returns false when the message is
// not a known command; the error is the service's, already reported to the
// channel where that makes sense.
//
// The interactive commands block for the whole conversation, so callers
// should invoke Handle from a per-message goroutine.
func (h *Handler) Handle(ctx context.Context, msg *Message) (bool, error) {
	if msg == nil {
		return false, errors.InvalidArgument("message is required")
	}
	content := strings.TrimSpace(msg.Content)
	if !strings.HasPrefix(content, h.prefix) {
		return false, nil
	}

	name, args := splitCommand(strings.TrimPrefix(content, h.prefix))

	switch name {
	case CmdCreation:
		_, err := h.service.CreateCharacter(ctx, &creation.CreateCharacterInput{
			ChannelID: msg.ChannelID,
			ActorID:   msg.AuthorID,
		})
		return true, err

	case CmdRandom:
		_, err := h.service.CreateRandomCharacter(ctx, &creation.CreateRandomCharacterInput{
			ChannelID: msg.ChannelID,
			ActorID:   msg.AuthorID,
		})
		return true, err

	case CmdViewCharacter:
		_, err := h.service.GetCharacter(ctx, &creation.GetCharacterInput{
			ChannelID: msg.ChannelID,
			ActorID:   msg.AuthorID,
			TargetID:  parseMention(args),
		})
		return true, err

	case CmdListCharacters:
		_, err := h.service.ListCharacters(ctx, &creation.ListCharactersInput{
			ChannelID: msg.ChannelID,
		})
		return true, err

	case CmdCreateNPC:
		_, err := h.service.CreateNPC(ctx, &creation.CreateNPCInput{
			ChannelID: msg.ChannelID,
			ActorID:   msg.AuthorID,
			Name:      args,
		})
		return true, err

	case CmdListNPCs:
		_, err := h.service.ListNPCs(ctx, &creation.ListNPCsInput{
			ChannelID: msg.ChannelID,
		})
		return true, err

	case CmdNPCDetail:
		_, err := h.service.GetNPC(ctx, &creation.GetNPCInput{
			ChannelID: msg.ChannelID,
			Name:      args,
		})
		return true, err

	case CmdRemoveNPC:
		_, err := h.service.RemoveNPC(ctx, &creation.RemoveNPCInput{
			ChannelID: msg.ChannelID,
			ActorID:   msg.AuthorID,
			Name:      args,
		})
		return true, err
	}

	return false, nil
}

// splitCommand separates the command word from the rest of the line
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	name, args, _ := strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(args)
}

// parseMention extracts a user ID from a Discord mention token (<@id> or
// <@!id>); a bare ID or empty string passes through
func parseMention(arg string) string {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "<@") && strings.HasSuffix(arg, ">") {
		arg = strings.TrimSuffix(strings.TrimPrefix(arg, "<@"), ">")
		arg = strings.TrimPrefix(arg, "!")
	}
	return arg
}
