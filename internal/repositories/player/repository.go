// Package player provides the interface for player persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/combat-api/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/combat-api/internal/entities"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Create creates a new player
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a player with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a player by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update updates an existing player
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a player by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a player
type CreateInput struct {
	Player *entities.Player
}

// CreateOutput defines the output for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.Player
}

// UpdateInput defines the input for updating a player
type UpdateInput struct {
	Player *entities.Player
}

// UpdateOutput defines the output for updating a player
type UpdateOutput struct {
	Player *entities.Player
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct {
	// Empty for now, can be extended later
}
