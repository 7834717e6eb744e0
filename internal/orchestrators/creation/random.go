package creation

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/repositories/gamesession"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

// CreateRandomCharacter runs the generate-and-confirm loop: synthesize a
// candidate, resolve name collisions, present it in the actor's private
// conversation, and either persist it, reroll, or stop.
//
// Timeout handling here deliberately differs from the wizard: a confirmation
// timeout ends the loop without persisting, rather than being one more
// reroll. This asymmetry is long-standing documented behavior; see the tests.
func (o *Orchestrator) CreateRandomCharacter(ctx context.Context, input *creation.CreateRandomCharacterInput) (*creation.CreateRandomCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("channelID", input.ChannelID, vb)
	errors.ValidateRequired("actorID", input.ActorID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	sess, err := o.playerSession(ctx, input.ChannelID, input.ActorID)
	if err != nil {
		return nil, err
	}

	if _, exists := sess.Characters[input.ActorID]; exists {
		proceed, gateErr := o.confirmReplace(ctx, input.ChannelID, input.ActorID)
		if gateErr != nil {
			if errors.IsDeadlineExceeded(gateErr) {
				o.say(ctx, input.ChannelID, "Timed out. Character creation cancelled.")
				return &creation.CreateRandomCharacterOutput{Outcome: creation.OutcomeTimedOut}, nil
			}
			return nil, gateErr
		}
		if !proceed {
			o.say(ctx, input.ChannelID, msgCreationCancelled)
			return &creation.CreateRandomCharacterOutput{Outcome: creation.OutcomeCancelled}, nil
		}
	}

	dmID, err := o.messenger.OpenDM(ctx, input.ActorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open private conversation")
	}

	rerolls := 0
	for {
		candidate := o.generator.Generate()

		// The session may have changed while we waited; collisions are
		// checked against a fresh read every iteration.
		out, getErr := o.sessionRepo.Get(ctx, gamesession.GetInput{ChannelID: input.ChannelID})
		if getErr != nil {
			return nil, errors.Wrap(getErr, "failed to reload session")
		}
		o.resolveDuplicateName(out.Session, input.ActorID, candidate)

		card := characterCard(
			fmt.Sprintf("Random Character: %s", candidate.Name),
			"Here's your randomly generated character! Reply with `yes` to accept or `no` to reroll.",
			candidate,
		)
		if sendErr := o.messenger.SendCard(ctx, dmID, card); sendErr != nil {
			return nil, errors.Wrap(sendErr, "failed to present candidate")
		}

		reply, waitErr := o.messenger.AwaitReply(ctx, input.ActorID, dmID, o.replyTimeout)
		if waitErr != nil {
			if errors.IsDeadlineExceeded(waitErr) {
				o.say(ctx, dmID, "Confirmation timed out. Character creation cancelled.")
				return &creation.CreateRandomCharacterOutput{
					Outcome: creation.OutcomeTimedOut,
					Rerolls: rerolls,
				}, nil
			}
			return nil, waitErr
		}

		reply = strings.TrimSpace(reply)
		switch {
		case isAffirmative(reply):
			if persistErr := o.persistCharacter(ctx, input.ChannelID, input.ActorID, candidate); persistErr != nil {
				return nil, persistErr
			}
			o.announceSuccess(ctx, input.ChannelID, candidate)
			o.announceIfReady(ctx, input.ChannelID)
			return &creation.CreateRandomCharacterOutput{
				Outcome:   creation.OutcomeAccepted,
				Character: candidate,
				Rerolls:   rerolls,
			}, nil

		case strings.EqualFold(reply, cancelToken):
			o.say(ctx, dmID, msgCreationCancelled)
			return &creation.CreateRandomCharacterOutput{
				Outcome: creation.OutcomeCancelled,
				Rerolls: rerolls,
			}, nil

		default:
			rerolls++
			o.say(ctx, dmID, "Generating a new character...")
		}
	}
}
