// Package dnd5e implements the D&D 5e entities shared across the bot.
// These are data-only structs; flow logic lives in the orchestrators.
package dnd5e

// AbilityScores maps each of the six abilities to its score
type AbilityScores map[Ability]int

// NewAbilityScores returns a full score block with every ability at base 10
func NewAbilityScores() AbilityScores {
	scores := make(AbilityScores, len(AbilityOrder))
	for _, ability := range AbilityOrder {
		scores[ability] = 10
	}
	return scores
}

// Score returns the score for an ability, defaulting to base 10 when unset
func (s AbilityScores) Score(ability Ability) int {
	if v, ok := s[ability]; ok {
		return v
	}
	return 10
}

// Character is the unit of state produced by both the guided wizard and the
// procedural generator. NPCs are the same shape with IsNPC set.
type Character struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Class         Class         `json:"class"`
	Race          Race          `json:"race"`
	Backstory     string        `json:"backstory,omitempty"`
	Alignment     string        `json:"alignment,omitempty"`
	Level         int           `json:"level"`
	AbilityScores AbilityScores `json:"ability_scores"`
	IsNPC         bool          `json:"is_npc,omitempty"`
	Inventory     []string      `json:"inventory"`
	Skills        []string      `json:"skills"`
	Spells        []string      `json:"spells"`
	Cantrips      []string      `json:"cantrips"`
	CreatedAt     int64         `json:"created_at"`
}

// EnsureDefaults fills in the invariant defaults: level 1 and every ability
// present at base 10. Safe to call on any partially built record.
func (c *Character) EnsureDefaults() {
	if c.Level == 0 {
		c.Level = 1
	}
	if c.AbilityScores == nil {
		c.AbilityScores = NewAbilityScores()
		return
	}
	for _, ability := range AbilityOrder {
		if _, ok := c.AbilityScores[ability]; !ok {
			c.AbilityScores[ability] = 10
		}
	}
}
