// Package party defines the interface for party persistence
package party

//go:generate mockgen -destination=mock/mock_repository.go -package=partymock github.com/ChibiOne/RPGenerator-sub001/internal/repositories/party Repository

import (
	"context"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
)

// Repository defines the interface for party persistence.
//
// Party records are keyed by (guild, leader) and carry a version counter.
// Save is a compare-and-swap: it fails with errors.Aborted when the stored
// version no longer matches the version the caller loaded, so concurrent
// read-modify-write cycles never silently overwrite each other.
type Repository interface {
	// Create stores a brand-new party
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the leader already has a party in the guild
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a party by its leader's identity
	// Returns errors.NotFound if no party is stored under the leader
	// Returns errors.DataLoss if the stored record cannot be decoded
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByMember retrieves the party containing an arbitrary member. The
	// member index is consulted first; records written before the index
	// existed are found by a guild-prefix scan and their index is healed.
	// Returns errors.NotFound if the user is in no party
	GetByMember(ctx context.Context, input GetByMemberInput) (*GetByMemberOutput, error)

	// Save overwrites an existing party record, re-keying it when
	// leadership changed. The party's Version is bumped on success.
	// Returns errors.Aborted on a version conflict
	// Returns errors.NotFound if the record was deleted since it was loaded
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a party and its member index entries. Idempotent:
	// deleting an absent party is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a party
type CreateInput struct {
	Party *entities.Party
}

// CreateOutput defines the output for creating a party
type CreateOutput struct {
	Party *entities.Party
}

// GetInput defines the input for getting a party by leader
type GetInput struct {
	GuildID  string
	LeaderID string
}

// GetOutput defines the output for getting a party
type GetOutput struct {
	Party *entities.Party
}

// GetByMemberInput defines the input for finding a member's party
type GetByMemberInput struct {
	GuildID string
	UserID  string
}

// GetByMemberOutput defines the output for finding a member's party
type GetByMemberOutput struct {
	Party *entities.Party
}

// SaveInput defines the input for saving a party.
// PreviousLeaderID names the leader the record was loaded under; leave it
// empty when leadership did not change.
type SaveInput struct {
	Party            *entities.Party
	PreviousLeaderID string
}

// SaveOutput defines the output for saving a party
type SaveOutput struct {
	Party *entities.Party
}

// DeleteInput defines the input for deleting a party
type DeleteInput struct {
	GuildID  string
	LeaderID string
}

// DeleteOutput defines the output for deleting a party
type DeleteOutput struct{}
