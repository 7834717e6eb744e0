// Package creation defines the interface for character creation operations
package creation

//go:generate mockgen -destination=mock/mock_service.go -package=creationmock github.com/KirkDiggler/dnd-companion/internal/services/creation Service

import (
	"context"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
)

// Outcome is the terminal result of an interactive creation flow. Flow
// outcomes are values, not errors: only precondition, authorization and
// storage failures surface as errors.
type Outcome string

// Outcome values
const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeTimedOut  Outcome = "timed_out"
)

// Service defines the interface for character creation operations
type Service interface {
	// Interactive flows
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	CreateRandomCharacter(ctx context.Context, input *CreateRandomCharacterInput) (*CreateRandomCharacterOutput, error)

	// Character queries
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// NPC management (GM/creator only for mutations)
	CreateNPC(ctx context.Context, input *CreateNPCInput) (*CreateNPCOutput, error)
	ListNPCs(ctx context.Context, input *ListNPCsInput) (*ListNPCsOutput, error)
	GetNPC(ctx context.Context, input *GetNPCInput) (*GetNPCOutput, error)
	RemoveNPC(ctx context.Context, input *RemoveNPCInput) (*RemoveNPCOutput, error)
}

// CreateCharacterInput defines the request for the guided creation wizard
type CreateCharacterInput struct {
	ChannelID string
	ActorID   string
}

// CreateCharacterOutput defines the response for the guided creation wizard.
// Character is set only when Outcome is OutcomeAccepted.
type CreateCharacterOutput struct {
	Outcome   Outcome
	Character *dnd5e.Character
}

// CreateRandomCharacterInput defines the request for the generate-and-confirm loop
type CreateRandomCharacterInput struct {
	ChannelID string
	ActorID   string
}

// CreateRandomCharacterOutput defines the response for the generate-and-confirm
// loop. Rerolls counts the rejected candidates before the final outcome.
type CreateRandomCharacterOutput struct {
	Outcome   Outcome
	Character *dnd5e.Character
	Rerolls   int
}

// GetCharacterInput defines the request for viewing a character.
// TargetID defaults to ActorID when empty.
type GetCharacterInput struct {
	ChannelID string
	ActorID   string
	TargetID  string
}

// GetCharacterOutput defines the response for viewing a character
type GetCharacterOutput struct {
	OwnerID   string
	Character *dnd5e.Character
}

// ListCharactersInput defines the request for listing player characters
type ListCharactersInput struct {
	ChannelID string
}

// ListCharactersOutput defines the response for listing player characters,
// keyed by owning actor
type ListCharactersOutput struct {
	Characters map[string]*dnd5e.Character
}

// CreateNPCInput defines the request for creating an NPC. Name optionally
// overrides the generated name.
type CreateNPCInput struct {
	ChannelID string
	ActorID   string
	Name      string
}

// CreateNPCOutput defines the response for creating an NPC
type CreateNPCOutput struct {
	NPC *dnd5e.Character
}

// ListNPCsInput defines the request for listing NPCs
type ListNPCsInput struct {
	ChannelID string
}

// ListNPCsOutput defines the response for listing NPCs
type ListNPCsOutput struct {
	NPCs []*dnd5e.Character
}

// GetNPCInput defines the request for NPC detail by name (case-insensitive)
type GetNPCInput struct {
	ChannelID string
	Name      string
}

// GetNPCOutput defines the response for NPC detail
type GetNPCOutput struct {
	NPC *dnd5e.Character
}

// RemoveNPCInput defines the request for removing an NPC by name
type RemoveNPCInput struct {
	ChannelID string
	ActorID   string
	Name      string
}

// RemoveNPCOutput defines the response for removing an NPC
type RemoveNPCOutput struct {
	Removed *dnd5e.Character
}
