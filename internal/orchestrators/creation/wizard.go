package creation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/messaging"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

// wizardState is the ephemeral state of one in-flight guided creation. It is
// bound to an actor/channel pair and discarded on completion, cancellation or
// timeout; it is never persisted.
type wizardState struct {
	actorID   string
	channelID string // invoking (public) channel
	dmID      string // actor's private conversation
	character *dnd5e.Character
}

// CreateCharacter runs the guided creation wizard: a linear sequence of
// prompts in the actor's private conversation, ending in a single atomic
// write to the session store.
//
// Steps: Name -> Class -> Race -> Backstory -> Alignment -> Abilities ->
// Confirm. Every wait is bounded; a timeout or the cancel token aborts the
// whole wizard with nothing written.
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *creation.CreateCharacterInput) (*creation.CreateCharacterOutput, error) {
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

	// Replace gate: an existing character is only overwritten with explicit
	// consent, obtained in the invoking channel.
	if _, exists := sess.Characters[input.ActorID]; exists {
		proceed, gateErr := o.confirmReplace(ctx, input.ChannelID, input.ActorID)
		if gateErr != nil {
			if errors.IsDeadlineExceeded(gateErr) {
				o.say(ctx, input.ChannelID, "Timed out. Character creation cancelled.")
				return &creation.CreateCharacterOutput{Outcome: creation.OutcomeTimedOut}, nil
			}
			return nil, gateErr
		}
		if !proceed {
			o.say(ctx, input.ChannelID, msgCreationCancelled)
			return &creation.CreateCharacterOutput{Outcome: creation.OutcomeCancelled}, nil
		}
	}

	dmID, err := o.messenger.OpenDM(ctx, input.ActorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open private conversation")
	}

	st := &wizardState{
		actorID:   input.ActorID,
		channelID: input.ChannelID,
		dmID:      dmID,
		character: &dnd5e.Character{
			ID:        o.idgen.Generate(),
			Level:     1,
			Inventory: []string{},
			Skills:    []string{},
			Spells:    []string{},
			Cantrips:  []string{},
			CreatedAt: o.clock.Now().Unix(),
		},
	}

	if err := o.messenger.SendCard(ctx, st.dmID, &messaging.Card{
		Title:       "Character Creation",
		Description: "Let's craft your D&D legend step-by-step! Answer each prompt below.\nType `cancel` at any text step to stop.",
	}); err != nil {
		return nil, errors.Wrap(err, "failed to send intro")
	}

	steps := []func(context.Context, *wizardState) error{
		o.stepName,
		o.stepClass,
		o.stepRace,
		o.stepBackstory,
		o.stepAlignment,
		o.stepAbilities,
	}
	for _, step := range steps {
		if err := step(ctx, st); err != nil {
			return o.finishWizard(ctx, st, err)
		}
	}

	return o.confirmAndPersistWizard(ctx, st)
}

// finishWizard maps a step's flow error onto the wizard outcome, notifying
// the actor. Non-flow errors propagate.
func (o *Orchestrator) finishWizard(ctx context.Context, st *wizardState, err error) (*creation.CreateCharacterOutput, error) {
	switch {
	case errors.IsDeadlineExceeded(err):
		o.say(ctx, st.dmID, errors.GetMessage(err))
		return &creation.CreateCharacterOutput{Outcome: creation.OutcomeTimedOut}, nil
	case errors.IsCanceled(err):
		o.say(ctx, st.dmID, msgCreationCancelled)
		return &creation.CreateCharacterOutput{Outcome: creation.OutcomeCancelled}, nil
	default:
		return nil, err
	}
}

// stepName asks for the character name. An empty reply is a terminal
// cancellation, not a retry: a name is required and the wizard is strict
// about it.
func (o *Orchestrator) stepName(ctx context.Context, st *wizardState) error {
	card := &messaging.Card{
		Title:       "Step 1/6: Character Name",
		Description: "What's your character's name?\n**Example:** Thorin",
		Fields:      []messaging.Field{{Name: "Instructions", Value: "Reply with the name below."}},
	}
	if err := o.messenger.SendCard(ctx, st.dmID, card); err != nil {
		return errors.Wrap(err, "failed to send name prompt")
	}

	name, err := o.awaitText(ctx, st.actorID, st.dmID)
	if err != nil {
		if errors.IsDeadlineExceeded(err) {
			return errors.DeadlineExceeded("Timed out waiting for name. Character creation cancelled.")
		}
		return err
	}
	if name == "" {
		o.say(ctx, st.dmID, "Name is required. Character creation cancelled.")
		return errors.Canceled("empty name")
	}

	st.character.Name = name
	return nil
}

func (o *Orchestrator) stepClass(ctx context.Context, st *wizardState) error {
	options := make([]string, len(dnd5e.Classes))
	for i, class := range dnd5e.Classes {
		options[i] = class.String()
	}

	card := &messaging.Card{
		Title:       "Step 2/6: Character Class",
		Description: "What's your character's class?",
	}
	selected, err := o.messenger.PresentChoice(ctx, st.dmID, card, options, o.replyTimeout)
	if err != nil {
		if errors.IsDeadlineExceeded(err) {
			return errors.DeadlineExceeded("Timed out waiting for class selection. Character creation cancelled.")
		}
		return err
	}

	class := dnd5e.Class(selected)
	if !class.IsValid() {
		return errors.Internalf("transport returned unknown class %q", selected)
	}
	st.character.Class = class
	return nil
}

func (o *Orchestrator) stepRace(ctx context.Context, st *wizardState) error {
	options := make([]string, len(dnd5e.Races))
	for i, race := range dnd5e.Races {
		options[i] = race.String()
	}

	card := &messaging.Card{
		Title:       "Step 3/6: Character Race",
		Description: "What's your character's race?",
	}
	selected, err := o.messenger.PresentChoice(ctx, st.dmID, card, options, o.replyTimeout)
	if err != nil {
		if errors.IsDeadlineExceeded(err) {
			return errors.DeadlineExceeded("Timed out waiting for race selection. Character creation cancelled.")
		}
		return err
	}

	race := dnd5e.Race(selected)
	if !race.IsValid() {
		return errors.Internalf("transport returned unknown race %q", selected)
	}
	st.character.Race = race
	return nil
}

// stepBackstory is soft-optional: an empty reply simply omits the field
func (o *Orchestrator) stepBackstory(ctx context.Context, st *wizardState) error {
	card := &messaging.Card{
		Title:       "Step 4/6: Backstory",
		Description: "What's your character's backstory?\n**Example:** Raised in the mountains after a dragon attack.",
		Fields:      []messaging.Field{{Name: "Instructions", Value: "Reply with the backstory below."}},
	}
	if err := o.messenger.SendCard(ctx, st.dmID, card); err != nil {
		return errors.Wrap(err, "failed to send backstory prompt")
	}

	backstory, err := o.awaitText(ctx, st.actorID, st.dmID)
	if err != nil {
		if errors.IsDeadlineExceeded(err) {
			return errors.DeadlineExceeded("Timed out waiting for backstory. Character creation cancelled.")
		}
		return err
	}

	st.character.Backstory = backstory
	return nil
}

// stepAlignment is soft-optional like backstory
func (o *Orchestrator) stepAlignment(ctx context.Context, st *wizardState) error {
	card := &messaging.Card{
		Title:       "Step 5/6: Alignment",
		Description: "What's your character's alignment?\n**Example:** Lawful Good, Neutral Evil, etc.",
		Fields:      []messaging.Field{{Name: "Instructions", Value: "Reply with the alignment below."}},
	}
	if err := o.messenger.SendCard(ctx, st.dmID, card); err != nil {
		return errors.Wrap(err, "failed to send alignment prompt")
	}

	alignment, err := o.awaitText(ctx, st.actorID, st.dmID)
	if err != nil {
		if errors.IsDeadlineExceeded(err) {
			return errors.DeadlineExceeded("Timed out waiting for alignment. Character creation cancelled.")
		}
		return err
	}

	st.character.Alignment = alignment
	return nil
}

// confirmAndPersistWizard renders the finished record and, on an explicit
// affirmative, performs the single write plus the all-players-ready check.
// Nothing is written on any other outcome.
func (o *Orchestrator) confirmAndPersistWizard(ctx context.Context, st *wizardState) (*creation.CreateCharacterOutput, error) {
	ch := st.character
	ch.EnsureDefaults()

	card := characterCard(
		"Character Confirmation",
		"Here's your character! Reply `yes` to save, `no` to cancel.",
		ch,
	)
	if err := o.messenger.SendCard(ctx, st.dmID, card); err != nil {
		return nil, errors.Wrap(err, "failed to send confirmation")
	}

	reply, err := o.messenger.AwaitReply(ctx, st.actorID, st.dmID, o.replyTimeout)
	if err != nil {
		if errors.IsDeadlineExceeded(err) {
			o.say(ctx, st.dmID, "Confirmation timed out. Character creation cancelled.")
			return &creation.CreateCharacterOutput{Outcome: creation.OutcomeTimedOut}, nil
		}
		return nil, err
	}
	if !isAffirmative(reply) {
		o.say(ctx, st.dmID, msgCreationCancelled)
		return &creation.CreateCharacterOutput{Outcome: creation.OutcomeCancelled}, nil
	}

	if err := o.persistCharacter(ctx, st.channelID, st.actorID, ch); err != nil {
		return nil, err
	}

	o.announceSuccess(ctx, st.channelID, ch)
	o.announceIfReady(ctx, st.channelID)

	return &creation.CreateCharacterOutput{
		Outcome:   creation.OutcomeAccepted,
		Character: ch,
	}, nil
}

// announceSuccess posts the created character to the invoking channel
func (o *Orchestrator) announceSuccess(ctx context.Context, channelID string, ch *dnd5e.Character) {
	card := characterCard(fmt.Sprintf("Character: %s", ch.Name), "Character created successfully!", ch)
	if err := o.messenger.SendCard(ctx, channelID, card); err != nil {
		slog.Warn("failed to announce character", "channel_id", channelID, "error", err)
	}
}
