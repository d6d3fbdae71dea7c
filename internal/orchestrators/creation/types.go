package creation

import (
	"context"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=creationmock github.com/ChibiOne/RPGenerator-sub001/internal/orchestrators/creation Service

// Service defines the character-creation wizard operations. Sessions are
// transient, per-user state; only FinalizeSession touches durable storage.
type Service interface {
	// StartSession begins a fresh wizard pass, replacing any session in
	// progress for the same user
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// GetSession returns the user's in-progress session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SetField records a collected string field on the session
	SetField(ctx context.Context, input *SetFieldInput) (*SetFieldOutput, error)

	// SetAbilityScore assigns one ability score under point-buy rules
	SetAbilityScore(ctx context.Context, input *SetAbilityScoreInput) (*SetAbilityScoreOutput, error)

	// AdvanceStep moves the session to the next wizard step
	AdvanceStep(ctx context.Context, input *AdvanceStepInput) (*AdvanceStepOutput, error)

	// FinalizeSession validates the session and persists the character
	FinalizeSession(ctx context.Context, input *FinalizeSessionInput) (*FinalizeSessionOutput, error)

	// AbandonSession discards the session without persisting anything
	AbandonSession(ctx context.Context, input *AbandonSessionInput) (*AbandonSessionOutput, error)
}

// StartSessionInput defines the input for starting a session
type StartSessionInput struct {
	GuildID string
	UserID  string
}

// StartSessionOutput defines the output for starting a session
type StartSessionOutput struct {
	Session *entities.CharacterSession

	// Replaced reports whether an in-progress session was discarded
	Replaced bool
}

// GetSessionInput defines the input for fetching a session
type GetSessionInput struct {
	GuildID string
	UserID  string
}

// GetSessionOutput defines the output for fetching a session
type GetSessionOutput struct {
	Session *entities.CharacterSession
}

// SetFieldInput defines the input for recording a string field
type SetFieldInput struct {
	GuildID string
	UserID  string
	Field   string
	Value   string
}

// SetFieldOutput defines the output for recording a string field
type SetFieldOutput struct {
	Session *entities.CharacterSession
}

// SetAbilityScoreInput defines the input for assigning an ability score
type SetAbilityScoreInput struct {
	GuildID string
	UserID  string
	Ability string
	Score   int
}

// SetAbilityScoreOutput defines the output for assigning an ability score
type SetAbilityScoreOutput struct {
	Session *entities.CharacterSession

	// PointsRemaining is the unspent point-buy budget after the assignment
	PointsRemaining int
}

// AdvanceStepInput defines the input for advancing the wizard
type AdvanceStepInput struct {
	GuildID string
	UserID  string
}

// AdvanceStepOutput defines the output for advancing the wizard
type AdvanceStepOutput struct {
	Session *entities.CharacterSession
	Step    entities.CreationStep
}

// FinalizeSessionInput defines the input for finalizing a session
type FinalizeSessionInput struct {
	GuildID string
	UserID  string
}

// FinalizeSessionOutput defines the output for finalizing a session
type FinalizeSessionOutput struct {
	Character *entities.Character
}

// AbandonSessionInput defines the input for abandoning a session
type AbandonSessionInput struct {
	GuildID string
	UserID  string
}

// AbandonSessionOutput defines the output for abandoning a session.
// Abandoning when no session exists is not an error.
type AbandonSessionOutput struct {
	Existed bool
}
