package creation

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/messaging"
)

const (
	abilityPointPool = 18
	abilityPointCap  = 7
	abilityBaseScore = 10
)

// stepAbilities runs the point-buy sub-protocol: 18 points distributed across
// the six abilities in canonical order, at most 7 per ability on top of the
// base 10. Invalid input re-prompts without limit; each attempt gets a fresh
// timeout. Leftover points are reported and forfeited, never redistributed.
func (o *Orchestrator) stepAbilities(ctx context.Context, st *wizardState) error {
	intro := &messaging.Card{
		Title: "Step 6/6: Ability Scores",
		Description: fmt.Sprintf(
			"You have %d points to assign to your abilities. Each ability starts at %d, and you can assign up to %d points per ability.\n"+
				"You will be prompted for each ability one by one. Reply with the number of points to assign for each.",
			abilityPointPool, abilityBaseScore, abilityPointCap),
		Fields: []messaging.Field{{Name: "Instructions", Value: "Wait for the prompts for each ability."}},
	}
	if err := o.messenger.SendCard(ctx, st.dmID, intro); err != nil {
		return errors.Wrap(err, "failed to send ability intro")
	}

	scores := dnd5e.NewAbilityScores()
	remaining := abilityPointPool

	for _, ability := range dnd5e.AbilityOrder {
		// Nothing left to spend: the rest stay at base without prompting
		if remaining == 0 {
			continue
		}

		points, err := o.promptAbilityPoints(ctx, st, ability, scores, remaining)
		if err != nil {
			return err
		}
		scores[ability] += points
		remaining -= points
	}

	if remaining > 0 {
		o.say(ctx, st.dmID, fmt.Sprintf("You have %d points left unassigned.", remaining))
	}

	st.character.AbilityScores = scores
	return nil
}

// promptAbilityPoints asks for one ability's allocation until a valid integer
// in [0, min(cap, remaining)] arrives. Non-numeric and out-of-range replies
// re-prompt; cancel and timeout abort.
func (o *Orchestrator) promptAbilityPoints(ctx context.Context, st *wizardState, ability dnd5e.Ability, scores dnd5e.AbilityScores, remaining int) (int, error) {
	maxPoints := abilityPointCap
	if remaining < maxPoints {
		maxPoints = remaining
	}

	for {
		card := &messaging.Card{
			Title: fmt.Sprintf("Assign points to %s", ability.Abbrev()),
			Description: fmt.Sprintf(
				"Current scores:\n%s\n\nRemaining points: %d\n\nHow many points do you want to assign to %s? (0 to %d)",
				currentScoresBlock(scores), remaining, ability.Abbrev(), maxPoints),
		}
		if err := o.messenger.SendCard(ctx, st.dmID, card); err != nil {
			return 0, errors.Wrap(err, "failed to send ability prompt")
		}

		reply, err := o.awaitText(ctx, st.actorID, st.dmID)
		if err != nil {
			if errors.IsDeadlineExceeded(err) {
				return 0, errors.DeadlineExceeded("Timed out. Character creation cancelled.")
			}
			return 0, err
		}

		points, convErr := strconv.Atoi(reply)
		if convErr != nil {
			o.say(ctx, st.dmID, "Please enter a valid number.")
			continue
		}
		if points < 0 || points > maxPoints {
			o.say(ctx, st.dmID, fmt.Sprintf("Invalid points. Must be between 0 and %d.", maxPoints))
			continue
		}
		return points, nil
	}
}
