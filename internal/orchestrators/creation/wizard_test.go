package creation

import (
	"strings"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

func (s *orchestratorTestSuite) runWizard() (*creation.CreateCharacterOutput, error) {
	return s.orch.CreateCharacter(s.ctx, &creation.CreateCharacterInput{
		ChannelID: testChannelID,
		ActorID:   testPlayerID,
	})
}

func (s *orchestratorTestSuite) TestWizardHappyPath() {
	s.session = newSession(testPlayerID)
	s.queueReplies(
		"Thorin",                   // name
		"Raised in the mountains.", // backstory
		"Lawful Good",              // alignment
		"7", "7", "4",              // STR, DEX, CON exhaust the pool
		"yes",                      // confirm
	)
	s.queueChoices("Wizard", "Elf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Require().NotNil(out.Character)

	s.Equal(1, s.saveCount)
	saved := s.session.Characters[testPlayerID]
	s.Require().NotNil(saved)
	s.Equal("Thorin", saved.Name)
	s.Equal(dnd5e.ClassWizard, saved.Class)
	s.Equal(dnd5e.RaceElf, saved.Race)
	s.Equal("Raised in the mountains.", saved.Backstory)
	s.Equal("Lawful Good", saved.Alignment)
	s.Equal(1, saved.Level)

	s.Equal(17, saved.AbilityScores.Score(dnd5e.AbilityStrength))
	s.Equal(17, saved.AbilityScores.Score(dnd5e.AbilityDexterity))
	s.Equal(14, saved.AbilityScores.Score(dnd5e.AbilityConstitution))
	s.Equal(10, saved.AbilityScores.Score(dnd5e.AbilityIntelligence))
	s.Equal(10, saved.AbilityScores.Score(dnd5e.AbilityWisdom))
	s.Equal(10, saved.AbilityScores.Score(dnd5e.AbilityCharisma))

	// Scripted waits all consumed: INT/WIS/CHA were never prompted
	s.Empty(s.replies)

	// Last (only) player finished, so the ready notice goes to the channel
	s.Contains(s.sentText(testChannelID), "!campaign_setup")
}

func (s *orchestratorTestSuite) TestWizardEmptyNameCancels() {
	s.session = newSession(testPlayerID)
	s.queueReplies("")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeCancelled, out.Outcome)
	s.Nil(out.Character)
	s.Zero(s.saveCount)
	s.Contains(s.sentText(testDMID), "Name is required")
}

func (s *orchestratorTestSuite) TestWizardCancelTokenAtName() {
	s.session = newSession(testPlayerID)
	s.queueReplies("cancel")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeCancelled, out.Outcome)
	s.Zero(s.saveCount)
}

func (s *orchestratorTestSuite) TestWizardCancelTokenCaseInsensitive() {
	s.session = newSession(testPlayerID)
	s.queueReplies("Thorin", "CANCEL")
	s.queueChoices("Wizard", "Elf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeCancelled, out.Outcome)
	s.Zero(s.saveCount)
}

func (s *orchestratorTestSuite) TestWizardTimeoutAtName() {
	s.session = newSession(testPlayerID)
	s.queueReplies(timeoutErr())

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeTimedOut, out.Outcome)
	s.Zero(s.saveCount)
	s.Contains(s.sentText(testDMID), "Timed out waiting for name")
}

func (s *orchestratorTestSuite) TestWizardTimeoutAtClassSelection() {
	s.session = newSession(testPlayerID)
	s.queueReplies("Thorin")
	s.queueChoices(timeoutErr())

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeTimedOut, out.Outcome)
	s.Zero(s.saveCount)
}

func (s *orchestratorTestSuite) TestWizardConfirmDeclined() {
	s.session = newSession(testPlayerID)
	s.queueReplies(
		"Thorin", "A past.", "Neutral",
		"7", "7", "4",
		"no",
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeCancelled, out.Outcome)
	s.Zero(s.saveCount)
}

func (s *orchestratorTestSuite) TestWizardConfirmTimeout() {
	s.session = newSession(testPlayerID)
	s.queueReplies(
		"Thorin", "A past.", "Neutral",
		"7", "7", "4",
		timeoutErr(),
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeTimedOut, out.Outcome)
	s.Zero(s.saveCount)
	s.Contains(s.sentText(testDMID), "Confirmation timed out")
}

func (s *orchestratorTestSuite) TestWizardOptionalFieldsDefault() {
	s.session = newSession(testPlayerID)
	s.queueReplies(
		"Thorin", "", "", // empty backstory and alignment
		"7", "7", "4",
		"yes",
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)

	saved := s.session.Characters[testPlayerID]
	s.Empty(saved.Backstory)
	s.Empty(saved.Alignment)
}

func (s *orchestratorTestSuite) TestWizardManualNameNeverResolved() {
	s.session = newSession(testPlayerID, testPlayer2ID)
	s.session.Characters[testPlayer2ID] = newTestCharacter("Thorin")
	s.queueReplies(
		"Thorin", "A past.", "Neutral",
		"7", "7", "4",
		"yes",
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	// A typed name stands even when it duplicates another character's
	s.Equal("Thorin", s.session.Characters[testPlayerID].Name)
}

func (s *orchestratorTestSuite) TestWizardNoActiveGame() {
	s.session = nil

	_, err := s.runWizard()
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(s.sentText(testChannelID), "no active D&D game")
}

func (s *orchestratorTestSuite) TestWizardNotAPlayer() {
	s.session = newSession(testPlayer2ID)

	_, err := s.runWizard()
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
	s.Contains(s.sentText(testChannelID), "not a player")
}

func (s *orchestratorTestSuite) TestWizardValidation() {
	_, err := s.orch.CreateCharacter(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.CreateCharacter(s.ctx, &creation.CreateCharacterInput{ActorID: testPlayerID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.CreateCharacter(s.ctx, &creation.CreateCharacterInput{ChannelID: testChannelID})
	s.True(errors.IsInvalidArgument(err))
}

// --- replace gate ---

func (s *orchestratorTestSuite) TestWizardReplaceDeclined() {
	s.session = newSession(testPlayerID)
	s.session.Characters[testPlayerID] = newTestCharacter("Old Hero")
	s.queueReplies("no")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeCancelled, out.Outcome)
	s.Zero(s.saveCount)
	s.Equal("Old Hero", s.session.Characters[testPlayerID].Name)
}

func (s *orchestratorTestSuite) TestWizardReplaceTimeout() {
	s.session = newSession(testPlayerID)
	s.session.Characters[testPlayerID] = newTestCharacter("Old Hero")
	s.queueReplies(timeoutErr())

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeTimedOut, out.Outcome)
	s.Zero(s.saveCount)
	s.Equal("Old Hero", s.session.Characters[testPlayerID].Name)
}

func (s *orchestratorTestSuite) TestWizardReplaceAccepted() {
	s.session = newSession(testPlayerID)
	s.session.Characters[testPlayerID] = newTestCharacter("Old Hero")
	s.queueReplies(
		"yes", // replace gate, in the public channel
		"New Hero", "A fresh start.", "Chaotic Good",
		"7", "7", "4",
		"yes",
	)
	s.queueChoices("Rogue", "Halfling")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Equal(1, s.saveCount)
	s.Equal("New Hero", s.session.Characters[testPlayerID].Name)
}

// --- point-buy ---

func (s *orchestratorTestSuite) TestWizardAbilityInvalidInputReprompts() {
	s.session = newSession(testPlayerID)
	s.queueReplies(
		"Thorin", "A past.", "Neutral",
		"abc", // not a number
		"9",   // over the per-ability cap
		"-1",  // negative
		"7",   // finally valid for STR
		"7", "4",
		"yes",
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)

	dm := s.sentText(testDMID)
	s.Contains(dm, "Please enter a valid number.")
	s.Contains(dm, "Invalid points. Must be between 0 and 7.")
	s.Equal(17, s.session.Characters[testPlayerID].AbilityScores.Score(dnd5e.AbilityStrength))
}

func (s *orchestratorTestSuite) TestWizardAbilityRemainingCapsPrompt() {
	s.session = newSession(testPlayerID)
	s.queueReplies(
		"Thorin", "A past.", "Neutral",
		"7", "7",
		"5", // only 4 remain, rejected
		"4",
		"yes",
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Contains(s.sentText(testDMID), "Invalid points. Must be between 0 and 4.")
}

func (s *orchestratorTestSuite) TestWizardAbilityLeftoverForfeited() {
	s.session = newSession(testPlayerID)
	s.queueReplies(
		"Thorin", "A past.", "Neutral",
		"1", "0", "0", "0", "0", "0", // all six prompted, 17 left over
		"yes",
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Contains(s.sentText(testDMID), "You have 17 points left unassigned.")

	saved := s.session.Characters[testPlayerID]
	s.Equal(11, saved.AbilityScores.Score(dnd5e.AbilityStrength))
	s.Equal(10, saved.AbilityScores.Score(dnd5e.AbilityCharisma))
}

func (s *orchestratorTestSuite) TestWizardAbilityTimeoutAborts() {
	s.session = newSession(testPlayerID)
	s.queueReplies(
		"Thorin", "A past.", "Neutral",
		"3", timeoutErr(),
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeTimedOut, out.Outcome)
	s.Zero(s.saveCount)
}

// --- all-players-ready notice ---

func (s *orchestratorTestSuite) TestWizardReadyNoticeWaitsForLastPlayer() {
	s.session = newSession(testPlayerID, testPlayer2ID)
	s.queueReplies(
		"Thorin", "A past.", "Neutral",
		"7", "7", "4",
		"yes",
	)
	s.queueChoices("Fighter", "Dwarf")

	out, err := s.runWizard()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	// player-2 has no character yet
	s.NotContains(s.sentText(testChannelID), "!campaign_setup")

	// Now player-2 finishes and the notice fires exactly once
	s.queueReplies(
		"Gimli", "A past.", "Neutral",
		"7", "7", "4",
		"yes",
	)
	s.queueChoices("Fighter", "Dwarf")
	out, err = s.orch.CreateCharacter(s.ctx, &creation.CreateCharacterInput{
		ChannelID: testChannelID,
		ActorID:   testPlayer2ID,
	})
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)

	notices := 0
	for _, card := range s.sent[testChannelID] {
		if strings.Contains(card.Description, "!campaign_setup") {
			notices++
		}
	}
	s.Equal(1, notices)
}
