// Package gamesession defines the interface for game session persistence
package gamesession

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesessionmock github.com/KirkDiggler/dnd-companion/internal/repositories/gamesession Repository

import (
	"context"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
)

// Repository defines the interface for game session persistence.
// Session creation is handled elsewhere; this subsystem only reads and
// rewrites existing sessions.
type Repository interface {
	// Get retrieves the session for a channel
	// Returns errors.InvalidArgument for an empty channel ID
	// Returns errors.NotFound when no session exists for the channel
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save writes the full session record for a channel
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// GetInput defines the input for getting a session
type GetInput struct {
	ChannelID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *dnd5e.GameSession
}

// SaveInput defines the input for saving a session
type SaveInput struct {
	Session *dnd5e.GameSession
}

// SaveOutput defines the output for saving a session
type SaveOutput struct {
	// Empty for now, can be extended later
}
