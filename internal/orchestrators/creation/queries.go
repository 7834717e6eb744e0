package creation

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/messaging"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

// GetCharacter posts and returns a player's character card. TargetID
// defaults to the acting player, so players can view each other's sheets.
func (o *Orchestrator) GetCharacter(ctx context.Context, input *creation.GetCharacterInput) (*creation.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("channelID", input.ChannelID, vb)
	errors.ValidateRequired("actorID", input.ActorID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	targetID := input.TargetID
	if targetID == "" {
		targetID = input.ActorID
	}

	sess, err := o.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	ch, ok := sess.Characters[targetID]
	if !ok || ch == nil {
		if targetID == input.ActorID {
			o.say(ctx, input.ChannelID, "You don't have a character yet. Use `!creation` or `!random` to make one.")
		} else {
			o.say(ctx, input.ChannelID, "That player doesn't have a character yet.")
		}
		return nil, errors.NotFoundf("no character for player %s", targetID)
	}

	card := characterCard(
		fmt.Sprintf("Character: %s", ch.Name),
		"",
		ch,
	)
	if err := o.messenger.SendCard(ctx, input.ChannelID, card); err != nil {
		return nil, errors.Wrap(err, "failed to send character card")
	}

	return &creation.GetCharacterOutput{OwnerID: targetID, Character: ch}, nil
}

// ListCharacters posts and returns every player character in the session
func (o *Orchestrator) ListCharacters(ctx context.Context, input *creation.ListCharactersInput) (*creation.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument("channel ID is required")
	}

	sess, err := o.getSession(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if len(sess.Characters) == 0 {
		o.say(ctx, input.ChannelID, "No characters have been created yet.")
		return &creation.ListCharactersOutput{Characters: sess.Characters}, nil
	}

	card := &messaging.Card{
		Title:       "Party Roster",
		Description: fmt.Sprintf("%d of %d players have characters.", len(sess.Characters), len(sess.PlayerIDs)),
	}
	// Iterate players in join order so the roster is stable across calls
	for _, playerID := range sess.PlayerIDs {
		ch, ok := sess.Characters[playerID]
		if !ok || ch == nil {
			continue
		}
		card.Fields = append(card.Fields, messaging.Field{
			Name:   ch.Name,
			Value:  fmt.Sprintf("Race: %s\nClass: %s\nLevel: %d", ch.Race, ch.Class, ch.Level),
			Inline: true,
		})
	}
	if err := o.messenger.SendCard(ctx, input.ChannelID, card); err != nil {
		return nil, errors.Wrap(err, "failed to send character roster")
	}

	return &creation.ListCharactersOutput{Characters: sess.Characters}, nil
}
