package creation

import (
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	"github.com/KirkDiggler/dnd-companion/internal/services/creation"
)

func (s *orchestratorTestSuite) TestCreateNPCByGM() {
	s.session = newSession(testPlayerID)

	out, err := s.orch.CreateNPC(s.ctx, &creation.CreateNPCInput{
		ChannelID: testChannelID,
		ActorID:   testGMID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.NPC)
	s.True(out.NPC.IsNPC)
	s.Equal(1, s.saveCount)
	s.Require().Len(s.session.NPCs, 1)
	s.Equal("Generated Hero", s.session.NPCs[0].Name)
	s.Contains(s.sentText(testChannelID), "NPC Created")
}

func (s *orchestratorTestSuite) TestCreateNPCByPlayerDenied() {
	s.session = newSession(testPlayerID)

	_, err := s.orch.CreateNPC(s.ctx, &creation.CreateNPCInput{
		ChannelID: testChannelID,
		ActorID:   testPlayerID,
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
	s.Zero(s.saveCount)
	s.Empty(s.session.NPCs)
	s.Contains(s.sentText(testChannelID), "Only the Game Master or game creator")
}

func (s *orchestratorTestSuite) TestCreateNPCNameOverrideKeptVerbatim() {
	s.session = newSession(testPlayerID)
	s.session.Characters[testPlayerID] = newTestCharacter("Durnan")

	out, err := s.orch.CreateNPC(s.ctx, &creation.CreateNPCInput{
		ChannelID: testChannelID,
		ActorID:   testGMID,
		Name:      "Durnan", // collides, but overrides are never resolved
	})
	s.Require().NoError(err)
	s.Equal("Durnan", out.NPC.Name)
}

func (s *orchestratorTestSuite) TestCreateNPCGeneratedNameResolved() {
	s.session = newSession(testPlayerID)
	s.session.Characters[testPlayerID] = newTestCharacter("Generated Hero")
	s.generator.namePool = []string{"Generated Hero", "Baldric"}

	out, err := s.orch.CreateNPC(s.ctx, &creation.CreateNPCInput{
		ChannelID: testChannelID,
		ActorID:   testGMID,
	})
	s.Require().NoError(err)
	s.Equal("Baldric", out.NPC.Name)
}

func (s *orchestratorTestSuite) TestListNPCsEmpty() {
	s.session = newSession(testPlayerID)

	out, err := s.orch.ListNPCs(s.ctx, &creation.ListNPCsInput{ChannelID: testChannelID})
	s.Require().NoError(err)
	s.Empty(out.NPCs)
	s.Contains(s.sentText(testChannelID), "no NPCs in this game yet")
}

func (s *orchestratorTestSuite) TestListNPCs() {
	s.session = newSession(testPlayerID)
	barkeep := newTestCharacter("Durnan")
	barkeep.IsNPC = true
	guard := newTestCharacter("Mirt")
	guard.IsNPC = true
	s.session.NPCs = append(s.session.NPCs, barkeep, guard)

	out, err := s.orch.ListNPCs(s.ctx, &creation.ListNPCsInput{ChannelID: testChannelID})
	s.Require().NoError(err)
	s.Len(out.NPCs, 2)
	s.Contains(s.sentText(testChannelID), "2 NPCs")
}

func (s *orchestratorTestSuite) TestGetNPCCaseInsensitive() {
	s.session = newSession(testPlayerID)
	barkeep := newTestCharacter("Durnan")
	barkeep.IsNPC = true
	barkeep.Inventory = []string{"mug", "cudgel"}
	s.session.NPCs = append(s.session.NPCs, barkeep)

	out, err := s.orch.GetNPC(s.ctx, &creation.GetNPCInput{
		ChannelID: testChannelID,
		Name:      "dURNAN",
	})
	s.Require().NoError(err)
	s.Equal("Durnan", out.NPC.Name)

	text := s.sentText(testChannelID)
	s.Contains(text, "NPC: Durnan")
}

func (s *orchestratorTestSuite) TestGetNPCNotFound() {
	s.session = newSession(testPlayerID)

	_, err := s.orch.GetNPC(s.ctx, &creation.GetNPCInput{
		ChannelID: testChannelID,
		Name:      "Nobody",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(s.sentText(testChannelID), "No NPC named 'Nobody'")
}

func (s *orchestratorTestSuite) TestRemoveNPC() {
	s.session = newSession(testPlayerID)
	barkeep := newTestCharacter("Durnan")
	barkeep.IsNPC = true
	guard := newTestCharacter("Mirt")
	guard.IsNPC = true
	s.session.NPCs = append(s.session.NPCs, barkeep, guard)

	out, err := s.orch.RemoveNPC(s.ctx, &creation.RemoveNPCInput{
		ChannelID: testChannelID,
		ActorID:   testGMID,
		Name:      "durnan",
	})
	s.Require().NoError(err)
	s.Equal("Durnan", out.Removed.Name)
	s.Equal(1, s.saveCount)
	s.Require().Len(s.session.NPCs, 1)
	s.Equal("Mirt", s.session.NPCs[0].Name)
	s.Contains(s.sentText(testChannelID), "has been removed")
}

func (s *orchestratorTestSuite) TestRemoveNPCByPlayerDenied() {
	s.session = newSession(testPlayerID)
	barkeep := newTestCharacter("Durnan")
	barkeep.IsNPC = true
	s.session.NPCs = append(s.session.NPCs, barkeep)

	_, err := s.orch.RemoveNPC(s.ctx, &creation.RemoveNPCInput{
		ChannelID: testChannelID,
		ActorID:   testPlayerID,
		Name:      "Durnan",
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
	s.Len(s.session.NPCs, 1)
}

func (s *orchestratorTestSuite) TestRemoveNPCNotFound() {
	s.session = newSession(testPlayerID)

	_, err := s.orch.RemoveNPC(s.ctx, &creation.RemoveNPCInput{
		ChannelID: testChannelID,
		ActorID:   testGMID,
		Name:      "Nobody",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Zero(s.saveCount)
}

func (s *orchestratorTestSuite) TestNPCOpsWithoutGame() {
	s.session = nil

	_, err := s.orch.CreateNPC(s.ctx, &creation.CreateNPCInput{
		ChannelID: testChannelID, ActorID: testGMID,
	})
	s.True(errors.IsNotFound(err))

	_, err = s.orch.ListNPCs(s.ctx, &creation.ListNPCsInput{ChannelID: testChannelID})
	s.True(errors.IsNotFound(err))
}
