// Package party orchestrates the party lifecycle: creation, invites,
// membership churn, leadership succession, and disbanding.
package party

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
	"github.com/ChibiOne/RPGenerator-sub001/internal/errors"
	"github.com/ChibiOne/RPGenerator-sub001/internal/pkg/clock"
	characterrepo "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/character"
	partyrepo "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/party"
)

// casRetryAttempts bounds how many times a mutation is replayed after losing
// a version race. Each attempt reloads the record and revalidates before
// saving again.
const casRetryAttempts = 3

// Config holds the dependencies for the party orchestrator
type Config struct {
	PartyRepo     partyrepo.Repository
	CharacterRepo characterrepo.Repository
	Notifier      Notifier
	Clock         clock.Clock
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PartyRepo == nil {
		vb.RequiredField("partyRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("characterRepo")
	}

	return vb.Build()
}

// Orchestrator implements the party Service
type Orchestrator struct {
	partyRepo     partyrepo.Repository
	characterRepo characterrepo.Repository
	notifier      Notifier
	clock         clock.Clock
}

// New creates a new party orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = noopNotifier{}
	}

	return &Orchestrator{
		partyRepo:     cfg.PartyRepo,
		characterRepo: cfg.CharacterRepo,
		notifier:      notifier,
		clock:         clk,
	}, nil
}

// Ensure Orchestrator implements Service
var _ Service = (*Orchestrator)(nil)

// CreateParty creates a new party led by the caller. The caller must have a
// finalized character and must not already belong to a party in the guild.
func (o *Orchestrator) CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	_, err := o.partyRepo.GetByMember(ctx, partyrepo.GetByMemberInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err == nil {
		return nil, errors.AlreadyExists("you are already in a party; leave it before creating a new one")
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to check current party membership")
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPrecondition("you need a character before you can create a party")
		}
		return nil, errors.Wrapf(err, "failed to load character")
	}

	now := o.clock.Now().Unix()
	party := entities.NewParty(input.GuildID, charOut.Character.PartyMember(), now)

	createOut, err := o.partyRepo.Create(ctx, partyrepo.CreateInput{Party: party})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			return nil, errors.AlreadyExists("you already lead a party in this guild")
		}
		return nil, errors.Wrapf(err, "failed to create party")
	}

	slog.InfoContext(ctx, "party created",
		"guild_id", input.GuildID,
		"leader_id", input.UserID,
	)

	return &CreatePartyOutput{
		Party:   createOut.Party,
		Message: fmt.Sprintf("%s has formed a new party!", charOut.Character.Name),
	}, nil
}

// InviteMember records a pending invite for the target. Only the party
// leader may invite, and the invite is refused when the party is already at
// capacity so an accepted invite can never overflow it.
func (o *Orchestrator) InviteMember(ctx context.Context, input *InviteMemberInput) (*InviteMemberOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.InviterID); err != nil {
		return nil, err
	}
	if input.TargetID == "" {
		return nil, errors.InvalidArgument("targetID is required")
	}
	if input.TargetID == input.InviterID {
		return nil, errors.InvalidArgument("you cannot invite yourself")
	}

	var out *InviteMemberOutput
	err := o.retryOnConflict(ctx, "invite_member", func() error {
		memberOut, err := o.partyRepo.GetByMember(ctx, partyrepo.GetByMemberInput{
			GuildID: input.GuildID,
			UserID:  input.InviterID,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				return errors.NotFound("you are not in a party; create one first")
			}
			return errors.Wrapf(err, "failed to load party")
		}

		party := memberOut.Party
		if party.LeaderID != input.InviterID {
			return errors.PermissionDenied("only the party leader can send invitations")
		}
		if party.IsMember(input.TargetID) {
			return errors.AlreadyExists("that player is already in your party")
		}
		if party.HasInvite(input.TargetID) {
			return errors.AlreadyExists("that player already has a pending invitation")
		}
		if party.IsFull() {
			return errors.FailedPreconditionf("your party is full (max %d members)", party.MaxSize)
		}

		party.AddInvite(input.TargetID)
		party.UpdatedAt = o.clock.Now().Unix()

		saveOut, err := o.partyRepo.Save(ctx, partyrepo.SaveInput{Party: party})
		if err != nil {
			return err
		}

		out = &InviteMemberOutput{
			Party:   saveOut.Party,
			Message: "Invitation sent!",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if nerr := o.notifier.PartyInvited(ctx, &PartyInvitedInput{
		GuildID:   input.GuildID,
		InviterID: input.InviterID,
		TargetID:  input.TargetID,
		Party:     out.Party,
	}); nerr != nil {
		slog.WarnContext(ctx, "failed to notify invited player",
			"guild_id", input.GuildID,
			"target_id", input.TargetID,
			"error", nerr,
		)
	}

	slog.InfoContext(ctx, "party invite sent",
		"guild_id", input.GuildID,
		"leader_id", input.InviterID,
		"target_id", input.TargetID,
	)

	return out, nil
}

// AcceptInvite converts the caller's pending invite into membership. The
// caller must have a character; capacity is rechecked at accept time because
// the roster may have filled since the invite was sent.
func (o *Orchestrator) AcceptInvite(ctx context.Context, input *AcceptInviteInput) (*AcceptInviteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}
	if input.LeaderID == "" {
		return nil, errors.InvalidArgument("leaderID is required")
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPrecondition("you need a character before you can join a party")
		}
		return nil, errors.Wrapf(err, "failed to load character")
	}

	var out *AcceptInviteOutput
	err = o.retryOnConflict(ctx, "accept_invite", func() error {
		getOut, err := o.partyRepo.Get(ctx, partyrepo.GetInput{
			GuildID:  input.GuildID,
			LeaderID: input.LeaderID,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				return errors.NotFound("that party no longer exists")
			}
			return errors.Wrapf(err, "failed to load party")
		}

		party := getOut.Party
		if party.IsMember(input.UserID) {
			return errors.AlreadyExists("you are already in that party")
		}
		if !party.HasInvite(input.UserID) {
			return errors.NotFound("you have no pending invitation to that party")
		}
		if party.IsFull() {
			// The invite stays pending; a slot may open up later.
			return errors.FailedPreconditionf("that party is full (max %d members)", party.MaxSize)
		}

		now := o.clock.Now().Unix()
		party.AddMember(charOut.Character.PartyMember(), now)
		party.UpdatedAt = now

		saveOut, err := o.partyRepo.Save(ctx, partyrepo.SaveInput{Party: party})
		if err != nil {
			return err
		}

		out = &AcceptInviteOutput{
			Party:   saveOut.Party,
			Message: fmt.Sprintf("%s has joined the party!", charOut.Character.Name),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "party invite accepted",
		"guild_id", input.GuildID,
		"leader_id", input.LeaderID,
		"user_id", input.UserID,
		"party_size", out.Party.Size(),
	)

	return out, nil
}

// LeaveParty removes the caller from their party. When the leader leaves and
// members remain, leadership passes to the earliest-joined remaining member;
// when the last member leaves, the party record is deleted.
func (o *Orchestrator) LeaveParty(ctx context.Context, input *LeavePartyInput) (*LeavePartyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	var out *LeavePartyOutput
	err := o.retryOnConflict(ctx, "leave_party", func() error {
		memberOut, err := o.partyRepo.GetByMember(ctx, partyrepo.GetByMemberInput{
			GuildID: input.GuildID,
			UserID:  input.UserID,
		})
		if err != nil {
			if errors.IsNotFound(err) {
				return errors.NotFound("you are not in a party")
			}
			return errors.Wrapf(err, "failed to load party")
		}

		party := memberOut.Party
		previousLeaderID := party.LeaderID
		departing := party.Members[input.UserID]

		newLeaderID, removed := party.RemoveMember(input.UserID)
		if !removed {
			return errors.NotFound("you are not in a party")
		}

		if party.Size() == 0 {
			if _, err := o.partyRepo.Delete(ctx, partyrepo.DeleteInput{
				GuildID:  input.GuildID,
				LeaderID: previousLeaderID,
			}); err != nil {
				return errors.Wrapf(err, "failed to delete empty party")
			}
			out = &LeavePartyOutput{
				Message: fmt.Sprintf("%s has left. The party has disbanded.", departing.Name),
			}
			return nil
		}

		party.UpdatedAt = o.clock.Now().Unix()

		saveInput := partyrepo.SaveInput{Party: party}
		if newLeaderID != "" {
			saveInput.PreviousLeaderID = previousLeaderID
		}
		saveOut, err := o.partyRepo.Save(ctx, saveInput)
		if err != nil {
			return err
		}

		message := fmt.Sprintf("%s has left the party.", departing.Name)
		if newLeaderID != "" {
			newLeader := saveOut.Party.Members[newLeaderID]
			message = fmt.Sprintf("%s has left the party. %s is the new leader.", departing.Name, newLeader.Name)
		}

		out = &LeavePartyOutput{
			Party:       saveOut.Party,
			NewLeaderID: newLeaderID,
			Message:     message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "member left party",
		"guild_id", input.GuildID,
		"user_id", input.UserID,
		"new_leader_id", out.NewLeaderID,
		"party_deleted", out.Party == nil,
	)

	return out, nil
}

// DisbandParty deletes the caller's party. Only the leader may disband.
// Former members are notified on a best-effort basis.
func (o *Orchestrator) DisbandParty(ctx context.Context, input *DisbandPartyInput) (*DisbandPartyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	memberOut, err := o.partyRepo.GetByMember(ctx, partyrepo.GetByMemberInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("you are not in a party")
		}
		return nil, errors.Wrapf(err, "failed to load party")
	}

	party := memberOut.Party
	if party.LeaderID != input.UserID {
		return nil, errors.PermissionDenied("only the party leader can disband the party")
	}

	memberIDs := make([]string, 0, len(party.Members))
	for id := range party.Members {
		memberIDs = append(memberIDs, id)
	}

	if _, err := o.partyRepo.Delete(ctx, partyrepo.DeleteInput{
		GuildID:  input.GuildID,
		LeaderID: party.LeaderID,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete party")
	}

	if nerr := o.notifier.PartyDisbanded(ctx, &PartyDisbandedInput{
		GuildID:   input.GuildID,
		LeaderID:  party.LeaderID,
		MemberIDs: memberIDs,
	}); nerr != nil {
		slog.WarnContext(ctx, "failed to notify members of disband",
			"guild_id", input.GuildID,
			"leader_id", party.LeaderID,
			"error", nerr,
		)
	}

	slog.InfoContext(ctx, "party disbanded",
		"guild_id", input.GuildID,
		"leader_id", party.LeaderID,
		"member_count", len(memberIDs),
	)

	return &DisbandPartyOutput{Message: "The party has been disbanded."}, nil
}

// GetParty returns the caller's party along with the travel-pace summary:
// average level, and the slowest member whose speed sets the pace.
func (o *Orchestrator) GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	memberOut, err := o.partyRepo.GetByMember(ctx, partyrepo.GetByMemberInput{
		GuildID: input.GuildID,
		UserID:  input.UserID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("you are not in a party")
		}
		return nil, errors.Wrapf(err, "failed to load party")
	}

	party := memberOut.Party
	out := &GetPartyOutput{
		Party:        party,
		AverageLevel: party.AverageLevel(),
	}
	if slowest, ok := party.SlowestMember(); ok {
		out.SlowestMemberID = slowest.UserID
		out.TravelSpeed = slowest.MovementSpeed
	}

	return out, nil
}

// retryOnConflict runs fn, replaying it when the save loses a version race.
// fn must reload the record on every call so each attempt sees fresh state.
func (o *Orchestrator) retryOnConflict(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= casRetryAttempts; attempt++ {
		err = fn()
		if err == nil || !errors.IsAborted(err) {
			return err
		}
		slog.DebugContext(ctx, "replaying party mutation after version conflict",
			"op", op,
			"attempt", attempt,
		)
	}
	return err
}

// validateIdentity checks the (guild, user) pair common to every input.
func validateIdentity(guildID, userID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("guildID", guildID, vb)
	errors.ValidateRequired("userID", userID, vb)
	return vb.Build()
}

// noopNotifier is the default when no messaging collaborator is wired.
type noopNotifier struct{}

func (noopNotifier) PartyInvited(context.Context, *PartyInvitedInput) error     { return nil }
func (noopNotifier) PartyDisbanded(context.Context, *PartyDisbandedInput) error { return nil }
