package dnd5e

// Static lookup data for the procedural generator. Loaded once; never mutated.

// ClassPrimaryAbilities maps each class to its primary abilities, most
// important first. The generator assigns the highest rolled values to these.
var ClassPrimaryAbilities = map[Class][]Ability{
	ClassArtificer: {AbilityIntelligence},
	ClassBarbarian: {AbilityStrength, AbilityConstitution},
	ClassBard:      {AbilityCharisma, AbilityDexterity},
	ClassCleric:    {AbilityWisdom, AbilityConstitution},
	ClassDruid:     {AbilityWisdom, AbilityConstitution},
	ClassFighter:   {AbilityStrength, AbilityConstitution},
	ClassMonk:      {AbilityDexterity, AbilityWisdom},
	ClassPaladin:   {AbilityStrength, AbilityCharisma},
	ClassRanger:    {AbilityDexterity, AbilityWisdom},
	ClassRogue:     {AbilityDexterity, AbilityIntelligence},
	ClassSorcerer:  {AbilityCharisma, AbilityConstitution},
	ClassWarlock:   {AbilityCharisma, AbilityConstitution},
	ClassWizard:    {AbilityIntelligence, AbilityConstitution},
}

// RaceAbilityBonuses maps each race to its bonus abilities. The first listed
// ability gets +2, the rest +1. The AbilityAll sentinel (Humans) means +1 to
// every ability instead.
var RaceAbilityBonuses = map[Race][]Ability{
	RaceHuman:      {AbilityAll},
	RaceElf:        {AbilityDexterity, AbilityIntelligence},
	RaceDwarf:      {AbilityConstitution, AbilityWisdom},
	RaceHalfling:   {AbilityDexterity, AbilityCharisma},
	RaceGnome:      {AbilityIntelligence, AbilityDexterity},
	RaceDragonborn: {AbilityStrength, AbilityCharisma},
	RaceTiefling:   {AbilityCharisma, AbilityIntelligence},
	RaceHalfElf:    {AbilityCharisma, AbilityDexterity, AbilityIntelligence},
	RaceHalfOrc:    {AbilityStrength, AbilityConstitution},
}

// CharacterNames is the curated pool the generator and the duplicate-name
// resolver draw from.
var CharacterNames = []string{
	// Human names
	"Aldrich", "Blackwood", "Cedric", "Darius", "Edmund", "Frederick", "Gregory", "Henrik",
	"Isabella", "Jasper", "Katherine", "Lysander", "Magnus", "Nathaniel", "Octavia", "Percival",
	// Elven names
	"Aelindra", "Caelynn", "Eldrath", "Faelyn", "Galanodel", "Holimion", "Ilphukiir", "Liadon",
	"Meliamne", "Nailo", "Siannodel", "Xiloscient", "Yaeldrin", "Zylphara",
	// Dwarven names
	"Balderk", "Dankil", "Gorunn", "Holderhek", "Loderr", "Lutgehr", "Rumnaheim", "Torunn",
	// Halfling names
	"Alton", "Bramble", "Corrin", "Derrick", "Eldon", "Finnan", "Garret", "Lindal",
	// Dragonborn names
	"Arjhan", "Balasar", "Bharash", "Donaar", "Ghesh", "Heskan", "Kriv", "Medrash",
	// Tiefling names
	"Akmenos", "Barakas", "Damakos", "Ekemon", "Iados", "Kairon", "Leucis", "Melech",
	// Gnome names
	"Alvyn", "Boddynock", "Dimble", "Fonkin", "Gimble", "Glim", "Jellybean", "Namfoodle",
	// Orc names
	"Dench", "Feng", "Gell", "Henk", "Holg", "Imsh", "Keth", "Krusk", "Ront", "Shump",
	// Additional fantasy names
	"Azura", "Briar", "Caspian", "Drystan", "Elowen", "Faelan", "Galadriel", "Haldir",
	"Isolde", "Jareth", "Katniss", "Legolas", "Merlin", "Nimue", "Orion", "Phoenix",
	"Quill", "Rowan", "Seraphina", "Thorne", "Ulysses", "Vespera", "Willow", "Xanthe",
	"Yennefer", "Zephyr", "Arwen", "Boromir", "Celeborn", "Draco", "Eowyn", "Frodo",
	"Gimli", "Hermione", "Inigo", "Jaskier", "Kvothe", "Lyra", "Morpheus", "Neo",
	"Oberyn", "Poe", "Quentin", "Ripley", "Sauron", "Trinity", "Ursula", "Voldemort",
	"Wesley", "Xander", "Yvaine", "Zelda",
}

// CharacterBackstories is the curated backstory pool for generated characters
var CharacterBackstories = []string{
	"Raised by wolves in the wild forest, learning the ways of nature.",
	"Orphaned and trained by a secretive guild of assassins.",
	"A noble's child who ran away from home to pursue adventure.",
	"Survived a shipwreck and washed ashore on a mysterious island.",
	"Born during a rare celestial event, blessed with magical powers.",
	"Former soldier who deserted after witnessing war atrocities.",
	"Apprentice to a powerful wizard who mysteriously disappeared.",
	"Village healer who left home to find a cure for a deadly plague.",
	"Cursed by an ancient artifact, seeking ways to break free.",
	"Last survivor of a destroyed monastery, carrying ancient secrets.",
	"Former circus performer with a mysterious magical heritage.",
	"Exiled noble seeking to reclaim their rightful throne.",
	"Scholar who discovered forbidden knowledge in ancient ruins.",
	"Street urchin who discovered their innate magical abilities.",
	"Tribal warrior chosen by ancestral spirits for a sacred quest.",
	"Former pirate seeking redemption through noble deeds.",
	"Merchant's child who lost everything to supernatural forces.",
	"Raised in a cult, escaped after discovering dark truths.",
	"Wandering storyteller collecting tales of ancient heroes.",
	"Survivor of a dragon attack, sworn to protect others.",
	"Former gladiator who won their freedom through combat.",
	"Child of an interplanar romance seeking their otherworldly parent.",
	"Hermit who received visions from their deity.",
	"Apprentice blacksmith whose craft was enhanced by divine blessing.",
	"Former guard who uncovered corruption in their city.",
}

// CharacterAlignments is the alignment suggestion pool for generated characters
var CharacterAlignments = []string{
	"Lawful Good", "Neutral Good", "Chaotic Good",
	"Lawful Neutral", "True Neutral", "Chaotic Neutral",
	"Lawful Evil", "Neutral Evil", "Chaotic Evil",
	"Chaotic Good (with Lawful tendencies)",
	"Lawful Good (with Neutral tendencies)",
	"Neutral Good (with Chaotic tendencies)",
	"Chaotic Neutral (with Good tendencies)",
	"True Neutral (with Good tendencies)",
	"Lawful Neutral (with Good tendencies)",
	"Chaotic Neutral (with Evil tendencies)",
	"True Neutral (with Evil tendencies)",
	"Lawful Neutral (with Evil tendencies)",
	"Neutral Good (with Lawful tendencies)",
	"Neutral Evil (with Lawful tendencies)",
	"Neutral Evil (with Chaotic tendencies)",
}

// StandardArray is the fixed baseline multiset of ability-score values the
// generator distributes across the six abilities
var StandardArray = []int{15, 14, 13, 12, 10, 8}
