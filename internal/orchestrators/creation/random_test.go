package creation

import (
	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

func (s *orchestratorTestSuite) runRandom() (*creation.CreateRandomCharacterOutput, error) {
	return s.orch.CreateRandomCharacter(s.ctx, &creation.CreateRandomCharacterInput{
		ChannelID: testChannelID,
		ActorID:   testPlayerID,
	})
}

func (s *orchestratorTestSuite) TestRandomAcceptFirstCandidate() {
	s.session = newSession(testPlayerID)
	s.queueReplies("yes")

	out, err := s.runRandom()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Equal(0, out.Rerolls)
	s.Equal(1, s.generator.generated)
	s.Equal(1, s.saveCount)
	s.Equal("Generated Hero", s.session.Characters[testPlayerID].Name)
}

func (s *orchestratorTestSuite) TestRandomRerollThenAccept() {
	s.session = newSession(testPlayerID)
	s.queueReplies("no", "no", "yes")

	out, err := s.runRandom()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Equal(2, out.Rerolls)
	s.Equal(3, s.generator.generated)
	// Rejected candidates are never written
	s.Equal(1, s.saveCount)
	s.Contains(s.sentText(testDMID), "Generating a new character...")
}

// A confirmation timeout ends the loop without writing anything. This differs
// from a plain rejection, which rerolls; the asymmetry is intentional.
func (s *orchestratorTestSuite) TestRandomTimeoutExitsWithoutPersisting() {
	s.session = newSession(testPlayerID)
	s.queueReplies("no", timeoutErr())

	out, err := s.runRandom()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeTimedOut, out.Outcome)
	s.Equal(1, out.Rerolls)
	s.Zero(s.saveCount)
	s.Empty(s.session.Characters)
	s.Contains(s.sentText(testDMID), "Confirmation timed out")
}

func (s *orchestratorTestSuite) TestRandomCancelTokenStopsLoop() {
	s.session = newSession(testPlayerID)
	s.queueReplies("no", "cancel")

	out, err := s.runRandom()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeCancelled, out.Outcome)
	s.Equal(1, out.Rerolls)
	s.Zero(s.saveCount)
}

func (s *orchestratorTestSuite) TestRandomAnyOtherReplyRerolls() {
	s.session = newSession(testPlayerID)
	s.queueReplies("maybe", "  YES  ")

	out, err := s.runRandom()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Equal(1, out.Rerolls)
}

func (s *orchestratorTestSuite) TestRandomDuplicateNameResolved() {
	s.session = newSession(testPlayerID, testPlayer2ID)
	s.session.Characters[testPlayer2ID] = newTestCharacter("Generated Hero")
	s.generator.namePool = []string{"Generated Hero", "Baldric"}
	s.queueReplies("yes")

	out, err := s.runRandom()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Equal("Baldric", s.session.Characters[testPlayerID].Name)
}

func (s *orchestratorTestSuite) TestRandomReplaceDeclined() {
	s.session = newSession(testPlayerID)
	s.session.Characters[testPlayerID] = newTestCharacter("Old Hero")
	s.queueReplies("no")

	out, err := s.runRandom()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeCancelled, out.Outcome)
	s.Zero(s.generator.generated)
	s.Equal("Old Hero", s.session.Characters[testPlayerID].Name)
}

func (s *orchestratorTestSuite) TestRandomReplaceAccepted() {
	s.session = newSession(testPlayerID)
	s.session.Characters[testPlayerID] = newTestCharacter("Old Hero")
	s.queueReplies("yes", "yes")

	out, err := s.runRandom()
	s.Require().NoError(err)
	s.Equal(creation.OutcomeAccepted, out.Outcome)
	s.Equal("Generated Hero", s.session.Characters[testPlayerID].Name)
}

func (s *orchestratorTestSuite) TestRandomNotAPlayer() {
	s.session = newSession(testPlayer2ID)

	_, err := s.runRandom()
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *orchestratorTestSuite) TestRandomAcceptedCharacterIsComplete() {
	s.session = newSession(testPlayerID)
	s.queueReplies("yes")

	out, err := s.runRandom()
	s.Require().NoError(err)
	saved := s.session.Characters[testPlayerID]
	s.Equal(out.Character.Name, saved.Name)
	s.True(saved.Class.IsValid())
	s.True(saved.Race.IsValid())
	s.Len(saved.AbilityScores, len(dnd5e.AbilityOrder))
	s.False(saved.IsNPC)
}
