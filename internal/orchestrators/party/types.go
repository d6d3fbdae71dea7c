package party

import (
	"context"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=partymock github.com/ChibiOne/RPGenerator-sub001/internal/orchestrators/party Service,Notifier

// Service defines the party lifecycle operations. All operations take
// authenticated (guild, user) identity pairs; display names are never used
// for authorization.
type Service interface {
	// CreateParty creates a new party led by the caller
	CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error)

	// InviteMember records a pending invite for the target
	InviteMember(ctx context.Context, input *InviteMemberInput) (*InviteMemberOutput, error)

	// AcceptInvite converts a pending invite into membership
	AcceptInvite(ctx context.Context, input *AcceptInviteInput) (*AcceptInviteOutput, error)

	// LeaveParty removes the caller from their party
	LeaveParty(ctx context.Context, input *LeavePartyInput) (*LeavePartyOutput, error)

	// DisbandParty deletes the caller's party (leader only)
	DisbandParty(ctx context.Context, input *DisbandPartyInput) (*DisbandPartyOutput, error)

	// GetParty returns the caller's party with travel-pace summary
	GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error)
}

// Notifier delivers party events to members through the external messaging
// collaborator. Implementations must tolerate unreachable recipients;
// delivery failures never fail the triggering operation.
type Notifier interface {
	// PartyInvited tells the target they have a pending invite
	PartyInvited(ctx context.Context, input *PartyInvitedInput) error

	// PartyDisbanded tells former members their party is gone
	PartyDisbanded(ctx context.Context, input *PartyDisbandedInput) error
}

// PartyInvitedInput describes an invite notification
type PartyInvitedInput struct {
	GuildID   string
	InviterID string
	TargetID  string
	Party     *entities.Party
}

// PartyDisbandedInput describes a disband notification
type PartyDisbandedInput struct {
	GuildID   string
	LeaderID  string
	MemberIDs []string
}

// CreatePartyInput defines the input for creating a party
type CreatePartyInput struct {
	GuildID string
	UserID  string
}

// CreatePartyOutput defines the output for creating a party
type CreatePartyOutput struct {
	Party   *entities.Party
	Message string
}

// InviteMemberInput defines the input for inviting a member
type InviteMemberInput struct {
	GuildID   string
	InviterID string
	TargetID  string
}

// InviteMemberOutput defines the output for inviting a member
type InviteMemberOutput struct {
	Party   *entities.Party
	Message string
}

// AcceptInviteInput defines the input for accepting an invite.
// LeaderID names the party whose invite is being accepted.
type AcceptInviteInput struct {
	GuildID  string
	LeaderID string
	UserID   string
}

// AcceptInviteOutput defines the output for accepting an invite
type AcceptInviteOutput struct {
	Party   *entities.Party
	Message string
}

// LeavePartyInput defines the input for leaving a party
type LeavePartyInput struct {
	GuildID string
	UserID  string
}

// LeavePartyOutput defines the output for leaving a party.
// Party is nil when the departure emptied the party and it was deleted.
type LeavePartyOutput struct {
	Party       *entities.Party
	NewLeaderID string
	Message     string
}

// DisbandPartyInput defines the input for disbanding a party
type DisbandPartyInput struct {
	GuildID string
	UserID  string
}

// DisbandPartyOutput defines the output for disbanding a party
type DisbandPartyOutput struct {
	Message string
}

// GetPartyInput defines the input for fetching the caller's party
type GetPartyInput struct {
	GuildID string
	UserID  string
}

// GetPartyOutput defines the output for fetching a party
type GetPartyOutput struct {
	Party *entities.Party

	// Travel-pace summary derived from the roster
	AverageLevel    float64
	SlowestMemberID string
	TravelSpeed     int
}
