package creation

import (
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

func (s *orchestratorTestSuite) TestGetCharacterSelf() {
	s.session = newSession(testPlayerID)
	s.session.Characters[testPlayerID] = newTestCharacter("Thorin")

	out, err := s.orch.GetCharacter(s.ctx, &creation.GetCharacterInput{
		ChannelID: testChannelID,
		ActorID:   testPlayerID,
	})
	s.Require().NoError(err)
	s.Equal(testPlayerID, out.OwnerID)
	s.Equal("Thorin", out.Character.Name)
	s.Contains(s.sentText(testChannelID), "Character: Thorin")
}

func (s *orchestratorTestSuite) TestGetCharacterOtherPlayer() {
	s.session = newSession(testPlayerID, testPlayer2ID)
	s.session.Characters[testPlayer2ID] = newTestCharacter("Gimli")

	out, err := s.orch.GetCharacter(s.ctx, &creation.GetCharacterInput{
		ChannelID: testChannelID,
		ActorID:   testPlayerID,
		TargetID:  testPlayer2ID,
	})
	s.Require().NoError(err)
	s.Equal(testPlayer2ID, out.OwnerID)
	s.Equal("Gimli", out.Character.Name)
}

func (s *orchestratorTestSuite) TestGetCharacterNoneYet() {
	s.session = newSession(testPlayerID)

	_, err := s.orch.GetCharacter(s.ctx, &creation.GetCharacterInput{
		ChannelID: testChannelID,
		ActorID:   testPlayerID,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(s.sentText(testChannelID), "don't have a character yet")
}

func (s *orchestratorTestSuite) TestGetCharacterTargetHasNone() {
	s.session = newSession(testPlayerID, testPlayer2ID)

	_, err := s.orch.GetCharacter(s.ctx, &creation.GetCharacterInput{
		ChannelID: testChannelID,
		ActorID:   testPlayerID,
		TargetID:  testPlayer2ID,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(s.sentText(testChannelID), "That player doesn't have a character yet.")
}

func (s *orchestratorTestSuite) TestListCharactersEmpty() {
	s.session = newSession(testPlayerID)

	out, err := s.orch.ListCharacters(s.ctx, &creation.ListCharactersInput{ChannelID: testChannelID})
	s.Require().NoError(err)
	s.Empty(out.Characters)
	s.Contains(s.sentText(testChannelID), "No characters have been created yet.")
}

func (s *orchestratorTestSuite) TestListCharacters() {
	s.session = newSession(testPlayerID, testPlayer2ID)
	s.session.Characters[testPlayerID] = newTestCharacter("Thorin")
	s.session.Characters[testPlayer2ID] = newTestCharacter("Gimli")

	out, err := s.orch.ListCharacters(s.ctx, &creation.ListCharactersInput{ChannelID: testChannelID})
	s.Require().NoError(err)
	s.Len(out.Characters, 2)
	s.Contains(s.sentText(testChannelID), "2 of 2 players have characters.")
}

func (s *orchestratorTestSuite) TestListCharactersNoGame() {
	s.session = nil

	_, err := s.orch.ListCharacters(s.ctx, &creation.ListCharactersInput{ChannelID: testChannelID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
