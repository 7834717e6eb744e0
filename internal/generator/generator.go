// Package generator produces statistically biased random characters.
//
// Generated characters are mechanically plausible rather than uniform noise:
// the shuffled standard array is assigned by a class/race-aware priority
// ordering so primary stats trend high, then racial bonuses are added on top.
package generator

import (
	"math/rand"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-companion/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-companion/internal/pkg/idgen"
)

// Config holds the dependencies for the generator. All fields are optional;
// zero values get production defaults.
type Config struct {
	// Rand is the randomness source. Tests inject a seeded source.
	Rand *rand.Rand
	// Clock stamps CreatedAt
	Clock clock.Clock
	// IDGenerator mints character IDs
	IDGenerator idgen.Generator
}

// Generator synthesizes random characters from the curated tables
type Generator struct {
	rng   *rand.Rand
	clock clock.Clock
	idgen idgen.Generator
}

// New creates a new character generator
func New(cfg *Config) *Generator {
	if cfg == nil {
		cfg = &Config{}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 // game randomness, not crypto
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("char")
	}

	return &Generator{rng: rng, clock: clk, idgen: gen}
}

// Generate synthesizes a level-1 character. Race, class, name, backstory and
// alignment are drawn uniformly; ability scores are priority-assigned.
func (g *Generator) Generate() *dnd5e.Character {
	race := dnd5e.Races[g.rng.Intn(len(dnd5e.Races))]
	class := dnd5e.Classes[g.rng.Intn(len(dnd5e.Classes))]

	ch := &dnd5e.Character{
		ID:            g.idgen.Generate(),
		Name:          dnd5e.CharacterNames[g.rng.Intn(len(dnd5e.CharacterNames))],
		Class:         class,
		Race:          race,
		Backstory:     dnd5e.CharacterBackstories[g.rng.Intn(len(dnd5e.CharacterBackstories))],
		Alignment:     dnd5e.CharacterAlignments[g.rng.Intn(len(dnd5e.CharacterAlignments))],
		Level:         1,
		AbilityScores: g.rollAbilityScores(class, race),
		Inventory:     []string{},
		Skills:        []string{},
		Spells:        []string{},
		Cantrips:      []string{},
		CreatedAt:     g.clock.Now().Unix(),
	}

	return ch
}

// UnusedName draws uniformly from the curated names not present in used
// (lowercased names). Returns false when every name is taken.
func (g *Generator) UnusedName(used map[string]bool) (string, bool) {
	available := make([]string, 0, len(dnd5e.CharacterNames))
	for _, name := range dnd5e.CharacterNames {
		if !used[strings.ToLower(name)] {
			available = append(available, name)
		}
	}
	if len(available) == 0 {
		return "", false
	}
	return available[g.rng.Intn(len(available))], true
}

// rollAbilityScores shuffles the standard array, assigns it by priority order
// (class primaries, then race bonus abilities, then the canonical remainder),
// and applies racial bonuses on top of the assigned values.
func (g *Generator) rollAbilityScores(class dnd5e.Class, race dnd5e.Race) dnd5e.AbilityScores {
	base := make([]int, len(dnd5e.StandardArray))
	copy(base, dnd5e.StandardArray)
	g.rng.Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})

	priorities := abilityPriorities(class, race)

	scores := make(dnd5e.AbilityScores, len(dnd5e.AbilityOrder))
	for i, ability := range priorities {
		if i < len(base) {
			scores[ability] = base[i]
		} else {
			scores[ability] = 8
		}
	}
	for _, ability := range dnd5e.AbilityOrder {
		if _, ok := scores[ability]; !ok {
			scores[ability] = 8
		}
	}

	applyRacialBonuses(scores, race)

	return scores
}

// abilityPriorities builds the assignment order: the class's primary abilities
// first, then the race's bonus abilities not already present, then the
// remaining abilities in canonical order.
func abilityPriorities(class dnd5e.Class, race dnd5e.Race) []dnd5e.Ability {
	priorities := make([]dnd5e.Ability, 0, len(dnd5e.AbilityOrder))
	seen := make(map[dnd5e.Ability]bool)

	add := func(ability dnd5e.Ability) {
		if ability == dnd5e.AbilityAll || seen[ability] {
			return
		}
		seen[ability] = true
		priorities = append(priorities, ability)
	}

	for _, ability := range dnd5e.ClassPrimaryAbilities[class] {
		add(ability)
	}
	for _, ability := range dnd5e.RaceAbilityBonuses[race] {
		add(ability)
	}
	for _, ability := range dnd5e.AbilityOrder {
		add(ability)
	}

	return priorities
}

// applyRacialBonuses adds the race's bonuses to already-assigned scores:
// +1 to everything for the AbilityAll sentinel, otherwise +2 to the
// first-listed bonus ability and +1 to each subsequent one.
func applyRacialBonuses(scores dnd5e.AbilityScores, race dnd5e.Race) {
	bonuses := dnd5e.RaceAbilityBonuses[race]
	if len(bonuses) == 0 {
		return
	}

	if bonuses[0] == dnd5e.AbilityAll {
		for _, ability := range dnd5e.AbilityOrder {
			scores[ability]++
		}
		return
	}

	scores[bonuses[0]] += 2
	for _, ability := range bonuses[1:] {
		scores[ability]++
	}
}
