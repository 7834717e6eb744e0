package dnd5e

// Race is a playable character race
type Race string

// Race values
const (
	RaceHuman      Race = "Human"
	RaceElf        Race = "Elf"
	RaceDwarf      Race = "Dwarf"
	RaceHalfling   Race = "Halfling"
	RaceGnome      Race = "Gnome"
	RaceDragonborn Race = "Dragonborn"
	RaceTiefling   Race = "Tiefling"
	RaceHalfElf    Race = "Half-Elf"
	RaceHalfOrc    Race = "Half-Orc"
)

// Races lists every playable race in menu order
var Races = []Race{
	RaceHuman, RaceElf, RaceDwarf, RaceHalfling, RaceGnome,
	RaceDragonborn, RaceTiefling, RaceHalfElf, RaceHalfOrc,
}

// String returns the display name of the race
func (r Race) String() string {
	return string(r)
}

// IsValid checks if the race is one of the playable races
func (r Race) IsValid() bool {
	for _, race := range Races {
		if r == race {
			return true
		}
	}
	return false
}

// Class is a playable character class
type Class string

// Class values
const (
	ClassArtificer Class = "Artificer"
	ClassBarbarian Class = "Barbarian"
	ClassBard      Class = "Bard"
	ClassCleric    Class = "Cleric"
	ClassDruid     Class = "Druid"
	ClassFighter   Class = "Fighter"
	ClassMonk      Class = "Monk"
	ClassPaladin   Class = "Paladin"
	ClassRanger    Class = "Ranger"
	ClassRogue     Class = "Rogue"
	ClassSorcerer  Class = "Sorcerer"
	ClassWarlock   Class = "Warlock"
	ClassWizard    Class = "Wizard"
)

// Classes lists every playable class in menu order
var Classes = []Class{
	ClassArtificer, ClassBarbarian, ClassBard, ClassCleric, ClassDruid,
	ClassFighter, ClassMonk, ClassPaladin, ClassRanger, ClassRogue,
	ClassSorcerer, ClassWarlock, ClassWizard,
}

// String returns the display name of the class
func (c Class) String() string {
	return string(c)
}

// IsValid checks if the class is one of the playable classes
func (c Class) IsValid() bool {
	for _, class := range Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Ability identifies one of the six ability scores
type Ability string

// Ability values
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"

	// AbilityAll is the race-bonus sentinel meaning +1 to every ability
	AbilityAll Ability = "all"
)

// AbilityOrder is the canonical processing order for the six abilities
var AbilityOrder = []Ability{
	AbilityStrength, AbilityDexterity, AbilityConstitution,
	AbilityIntelligence, AbilityWisdom, AbilityCharisma,
}

// Abbrev returns the conventional three-letter abbreviation
func (a Ability) Abbrev() string {
	switch a {
	case AbilityStrength:
		return "STR"
	case AbilityDexterity:
		return "DEX"
	case AbilityConstitution:
		return "CON"
	case AbilityIntelligence:
		return "INT"
	case AbilityWisdom:
		return "WIS"
	case AbilityCharisma:
		return "CHA"
	default:
		return string(a)
	}
}
