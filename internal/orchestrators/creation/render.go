package creation

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-companion/internal/messaging"
)

// abilityScoreLine renders the six scores in the compact two-row layout used
// across every character card
func abilityScoreLine(scores dnd5e.AbilityScores) string {
	return fmt.Sprintf(
		"**STR:** %d | **DEX:** %d | **CON:** %d\n**INT:** %d | **WIS:** %d | **CHA:** %d",
		scores.Score(dnd5e.AbilityStrength),
		scores.Score(dnd5e.AbilityDexterity),
		scores.Score(dnd5e.AbilityConstitution),
		scores.Score(dnd5e.AbilityIntelligence),
		scores.Score(dnd5e.AbilityWisdom),
		scores.Score(dnd5e.AbilityCharisma),
	)
}

// characterFields builds the standard field block shared by confirmation,
// success and view cards
func characterFields(ch *dnd5e.Character) []messaging.Field {
	backstory := ch.Backstory
	if backstory == "" {
		backstory = "None"
	}
	alignment := ch.Alignment
	if alignment == "" {
		alignment = "Neutral"
	}

	return []messaging.Field{
		{Name: "Class", Value: ch.Class.String(), Inline: true},
		{Name: "Level", Value: fmt.Sprintf("%d", ch.Level), Inline: true},
		{Name: "Race", Value: ch.Race.String(), Inline: true},
		{Name: "Backstory", Value: backstory},
		{Name: "Alignment", Value: alignment, Inline: true},
		{Name: "Ability Scores", Value: abilityScoreLine(ch.AbilityScores)},
	}
}

// characterCard assembles a full character card
func characterCard(title, description string, ch *dnd5e.Character) *messaging.Card {
	return &messaging.Card{
		Title:       title,
		Description: description,
		Fields:      characterFields(ch),
	}
}

// npcDetailCard renders the detailed NPC view, including inventory and skills
// when present
func npcDetailCard(npc *dnd5e.Character) *messaging.Card {
	description := npc.Backstory
	if description == "" {
		description = "No backstory available."
	}

	card := &messaging.Card{
		Title:       fmt.Sprintf("NPC: %s", npc.Name),
		Description: description,
		Fields:      characterFields(npc),
	}
	if len(npc.Inventory) > 0 {
		card.Fields = append(card.Fields, messaging.Field{
			Name: "Inventory", Value: strings.Join(npc.Inventory, ", "),
		})
	}
	if len(npc.Skills) > 0 {
		card.Fields = append(card.Fields, messaging.Field{
			Name: "Skills", Value: strings.Join(npc.Skills, ", "),
		})
	}
	return card
}

// currentScoresBlock renders the running score list shown during point-buy
func currentScoresBlock(scores dnd5e.AbilityScores) string {
	lines := make([]string, 0, len(dnd5e.AbilityOrder))
	for _, ability := range dnd5e.AbilityOrder {
		name := strings.ToUpper(string(ability)[:1]) + string(ability)[1:]
		lines = append(lines, fmt.Sprintf("%s: %d", name, scores.Score(ability)))
	}
	return strings.Join(lines, "\n")
}
