package dnd5e

import "strings"

// GameSession is the shared per-channel game state. It is owned by the session
// repository; callers follow a read-modify-write discipline and never cache a
// session across a user wait.
type GameSession struct {
	ChannelID   string                `json:"channel_id"`
	PlayerIDs   []string              `json:"player_ids"`
	GMID        string                `json:"gm_id"`
	CreatorID   string                `json:"creator_id"`
	Characters  map[string]*Character `json:"characters"`
	NPCs        []*Character          `json:"npcs"`
	LastUpdated int64                 `json:"last_updated"`
}

// IsPlayer checks whether the actor is in the session's player list
func (s *GameSession) IsPlayer(actorID string) bool {
	for _, id := range s.PlayerIDs {
		if id == actorID {
			return true
		}
	}
	return false
}

// CanManageNPCs checks whether the actor may create or remove NPCs.
// Only the GM or the session creator qualifies.
func (s *GameSession) CanManageNPCs(actorID string) bool {
	return actorID == s.GMID || actorID == s.CreatorID
}

// AllPlayersReady reports whether every player has a live character
func (s *GameSession) AllPlayersReady() bool {
	return len(s.Characters) == len(s.PlayerIDs)
}

// FindNPC returns the first NPC whose name matches case-insensitively,
// along with its index, or nil and -1
func (s *GameSession) FindNPC(name string) (*Character, int) {
	for i, npc := range s.NPCs {
		if strings.EqualFold(npc.Name, name) {
			return npc, i
		}
	}
	return nil, -1
}

// UsedCharacterNames returns the lowercased names already taken in this
// session, across both player characters and NPCs, excluding the given actor's
// own record
func (s *GameSession) UsedCharacterNames(excludeActorID string) map[string]bool {
	used := make(map[string]bool)
	for actorID, ch := range s.Characters {
		if actorID == excludeActorID {
			continue
		}
		used[strings.ToLower(ch.Name)] = true
	}
	for _, npc := range s.NPCs {
		used[strings.ToLower(npc.Name)] = true
	}
	return used
}
