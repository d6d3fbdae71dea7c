// Package character defines the interface for durable character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/ChibiOne/RPGenerator-sub001/internal/repositories/character Repository

import (
	"context"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
)

// Repository defines the interface for character persistence.
// One character per user per guild; Save is an upsert because a character
// is only ever written by its owning user.
type Repository interface {
	// Save creates or replaces the user's character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a character by guild and user
	// Returns errors.NotFound if the user has no character in the guild
	// Returns errors.DataLoss if the stored record cannot be decoded
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a character; idempotent
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *entities.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	GuildID string
	UserID  string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	GuildID string
	UserID  string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
