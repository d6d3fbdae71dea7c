package party_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
	"github.com/ChibiOne/RPGenerator-sub001/internal/errors"
	"github.com/ChibiOne/RPGenerator-sub001/internal/orchestrators/party"
	orchmock "github.com/ChibiOne/RPGenerator-sub001/internal/orchestrators/party/mock"
	"github.com/ChibiOne/RPGenerator-sub001/internal/pkg/clock"
	characterrepo "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/character"
	charactermock "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/character/mock"
	partyrepo "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/party"
	partyrepomock "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/party/mock"
)

const (
	testGuildID  = "guild_123"
	testLeaderID = "user_leader"
	testMemberID = "user_member"
	testTargetID = "user_target"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockPartyRepo *partyrepomock.MockRepository
	mockCharRepo  *charactermock.MockRepository
	mockNotifier  *orchmock.MockNotifier
	clk           *clock.Fixed
	orchestrator  *party.Orchestrator
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPartyRepo = partyrepomock.NewMockRepository(s.ctrl)
	s.mockCharRepo = charactermock.NewMockRepository(s.ctrl)
	s.mockNotifier = orchmock.NewMockNotifier(s.ctrl)
	s.clk = clock.NewFixed(time.Unix(1700000000, 0))
	s.ctx = context.Background()

	orch, err := party.New(&party.Config{
		PartyRepo:     s.mockPartyRepo,
		CharacterRepo: s.mockCharRepo,
		Notifier:      s.mockNotifier,
		Clock:         s.clk,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) leaderCharacter() *entities.Character {
	return &entities.Character{
		ID:            "char_leader",
		UserID:        testLeaderID,
		GuildID:       testGuildID,
		Name:          "Rook",
		Class:         "Ranger",
		Level:         1,
		MovementSpeed: 30,
	}
}

// twoMemberParty returns a party led by testLeaderID with testMemberID as
// the second, later-joined member.
func (s *OrchestratorTestSuite) twoMemberParty() *entities.Party {
	p := entities.NewParty(testGuildID, entities.PartyMember{
		UserID:        testLeaderID,
		Name:          "Rook",
		Level:         1,
		MovementSpeed: 30,
	}, 1000)
	p.AddMember(entities.PartyMember{
		UserID:        testMemberID,
		Name:          "Wren",
		Level:         3,
		MovementSpeed: 25,
	}, 2000)
	p.Version = 4
	return p
}

func (s *OrchestratorTestSuite) TestCreateParty_Success() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, partyrepo.GetByMemberInput{GuildID: testGuildID, UserID: testLeaderID}).
		Return(nil, errors.NotFound("no party"))
	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{GuildID: testGuildID, UserID: testLeaderID}).
		Return(&characterrepo.GetOutput{Character: s.leaderCharacter()}, nil)
	s.mockPartyRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input partyrepo.CreateInput) (*partyrepo.CreateOutput, error) {
			s.Equal(testLeaderID, input.Party.LeaderID)
			s.True(input.Party.IsMember(testLeaderID))
			s.Equal(entities.DefaultPartyMaxSize, input.Party.MaxSize)
			return &partyrepo.CreateOutput{Party: input.Party}, nil
		})

	out, err := s.orchestrator.CreateParty(s.ctx, &party.CreatePartyInput{
		GuildID: testGuildID,
		UserID:  testLeaderID,
	})

	s.Require().NoError(err)
	s.Equal(testLeaderID, out.Party.LeaderID)
	s.Contains(out.Message, "Rook")
}

func (s *OrchestratorTestSuite) TestCreateParty_AlreadyInParty() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		Return(&partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil)

	_, err := s.orchestrator.CreateParty(s.ctx, &party.CreatePartyInput{
		GuildID: testGuildID,
		UserID:  testMemberID,
	})

	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestCreateParty_NoCharacter() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no party"))
	s.mockCharRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no character"))

	_, err := s.orchestrator.CreateParty(s.ctx, &party.CreatePartyInput{
		GuildID: testGuildID,
		UserID:  testLeaderID,
	})

	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestInviteMember_Success() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, partyrepo.GetByMemberInput{GuildID: testGuildID, UserID: testLeaderID}).
		Return(&partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil)
	s.mockPartyRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input partyrepo.SaveInput) (*partyrepo.SaveOutput, error) {
			s.True(input.Party.HasInvite(testTargetID))
			s.Empty(input.PreviousLeaderID)
			return &partyrepo.SaveOutput{Party: input.Party}, nil
		})
	s.mockNotifier.EXPECT().
		PartyInvited(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *party.PartyInvitedInput) error {
			s.Equal(testTargetID, input.TargetID)
			return nil
		})

	out, err := s.orchestrator.InviteMember(s.ctx, &party.InviteMemberInput{
		GuildID:   testGuildID,
		InviterID: testLeaderID,
		TargetID:  testTargetID,
	})

	s.Require().NoError(err)
	s.True(out.Party.HasInvite(testTargetID))
}

func (s *OrchestratorTestSuite) TestInviteMember_NotLeader() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, partyrepo.GetByMemberInput{GuildID: testGuildID, UserID: testMemberID}).
		Return(&partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil)

	_, err := s.orchestrator.InviteMember(s.ctx, &party.InviteMemberInput{
		GuildID:   testGuildID,
		InviterID: testMemberID,
		TargetID:  testTargetID,
	})

	s.Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestInviteMember_PartyFull() {
	p := s.twoMemberParty()
	for i := 0; p.Size() < p.MaxSize; i++ {
		p.AddMember(entities.PartyMember{UserID: string(rune('a' + i))}, 3000)
	}

	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		Return(&partyrepo.GetByMemberOutput{Party: p}, nil)

	_, err := s.orchestrator.InviteMember(s.ctx, &party.InviteMemberInput{
		GuildID:   testGuildID,
		InviterID: testLeaderID,
		TargetID:  testTargetID,
	})

	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestInviteMember_SelfInvite() {
	_, err := s.orchestrator.InviteMember(s.ctx, &party.InviteMemberInput{
		GuildID:   testGuildID,
		InviterID: testLeaderID,
		TargetID:  testLeaderID,
	})

	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestInviteMember_RetriesOnVersionConflict() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ partyrepo.GetByMemberInput) (*partyrepo.GetByMemberOutput, error) {
			return &partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil
		}).
		Times(2)

	gomock.InOrder(
		s.mockPartyRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			Return(nil, errors.Aborted("version conflict")),
		s.mockPartyRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input partyrepo.SaveInput) (*partyrepo.SaveOutput, error) {
				return &partyrepo.SaveOutput{Party: input.Party}, nil
			}),
	)
	s.mockNotifier.EXPECT().PartyInvited(s.ctx, gomock.Any()).Return(nil)

	out, err := s.orchestrator.InviteMember(s.ctx, &party.InviteMemberInput{
		GuildID:   testGuildID,
		InviterID: testLeaderID,
		TargetID:  testTargetID,
	})

	s.Require().NoError(err)
	s.True(out.Party.HasInvite(testTargetID))
}

func (s *OrchestratorTestSuite) TestInviteMember_GivesUpAfterRepeatedConflicts() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ partyrepo.GetByMemberInput) (*partyrepo.GetByMemberOutput, error) {
			return &partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil
		}).
		Times(3)
	s.mockPartyRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Aborted("version conflict")).
		Times(3)

	_, err := s.orchestrator.InviteMember(s.ctx, &party.InviteMemberInput{
		GuildID:   testGuildID,
		InviterID: testLeaderID,
		TargetID:  testTargetID,
	})

	s.Error(err)
	s.True(errors.IsAborted(err))
}

func (s *OrchestratorTestSuite) TestAcceptInvite_Success() {
	p := s.twoMemberParty()
	p.AddInvite(testTargetID)

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{GuildID: testGuildID, UserID: testTargetID}).
		Return(&characterrepo.GetOutput{Character: &entities.Character{
			UserID:        testTargetID,
			GuildID:       testGuildID,
			Name:          "Thorn",
			Level:         2,
			MovementSpeed: 30,
		}}, nil)
	s.mockPartyRepo.EXPECT().
		Get(s.ctx, partyrepo.GetInput{GuildID: testGuildID, LeaderID: testLeaderID}).
		Return(&partyrepo.GetOutput{Party: p}, nil)
	s.mockPartyRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input partyrepo.SaveInput) (*partyrepo.SaveOutput, error) {
			s.True(input.Party.IsMember(testTargetID))
			s.False(input.Party.HasInvite(testTargetID))
			return &partyrepo.SaveOutput{Party: input.Party}, nil
		})

	out, err := s.orchestrator.AcceptInvite(s.ctx, &party.AcceptInviteInput{
		GuildID:  testGuildID,
		LeaderID: testLeaderID,
		UserID:   testTargetID,
	})

	s.Require().NoError(err)
	s.Equal(3, out.Party.Size())
	s.Contains(out.Message, "Thorn")
}

func (s *OrchestratorTestSuite) TestAcceptInvite_NoInvite() {
	s.mockCharRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&characterrepo.GetOutput{Character: &entities.Character{
			UserID:  testTargetID,
			GuildID: testGuildID,
			Name:    "Thorn",
		}}, nil)
	s.mockPartyRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&partyrepo.GetOutput{Party: s.twoMemberParty()}, nil)

	_, err := s.orchestrator.AcceptInvite(s.ctx, &party.AcceptInviteInput{
		GuildID:  testGuildID,
		LeaderID: testLeaderID,
		UserID:   testTargetID,
	})

	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAcceptInvite_PartyFilledSinceInvite() {
	p := s.twoMemberParty()
	p.AddInvite(testTargetID)
	for i := 0; p.Size() < p.MaxSize; i++ {
		p.AddMember(entities.PartyMember{UserID: string(rune('a' + i))}, 3000)
	}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&characterrepo.GetOutput{Character: &entities.Character{
			UserID:  testTargetID,
			GuildID: testGuildID,
			Name:    "Thorn",
		}}, nil)
	s.mockPartyRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&partyrepo.GetOutput{Party: p}, nil)

	_, err := s.orchestrator.AcceptInvite(s.ctx, &party.AcceptInviteInput{
		GuildID:  testGuildID,
		LeaderID: testLeaderID,
		UserID:   testTargetID,
	})

	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
	// No Save expected, so the invite stays pending.
}

func (s *OrchestratorTestSuite) TestLeaveParty_PromotesNewLeader() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, partyrepo.GetByMemberInput{GuildID: testGuildID, UserID: testLeaderID}).
		Return(&partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil)
	s.mockPartyRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input partyrepo.SaveInput) (*partyrepo.SaveOutput, error) {
			s.Equal(testLeaderID, input.PreviousLeaderID)
			s.Equal(testMemberID, input.Party.LeaderID)
			s.False(input.Party.IsMember(testLeaderID))
			return &partyrepo.SaveOutput{Party: input.Party}, nil
		})

	out, err := s.orchestrator.LeaveParty(s.ctx, &party.LeavePartyInput{
		GuildID: testGuildID,
		UserID:  testLeaderID,
	})

	s.Require().NoError(err)
	s.Equal(testMemberID, out.NewLeaderID)
	s.Contains(out.Message, "Wren")
}

func (s *OrchestratorTestSuite) TestLeaveParty_LastMemberDeletesParty() {
	solo := entities.NewParty(testGuildID, entities.PartyMember{
		UserID: testLeaderID,
		Name:   "Rook",
	}, 1000)

	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		Return(&partyrepo.GetByMemberOutput{Party: solo}, nil)
	s.mockPartyRepo.EXPECT().
		Delete(s.ctx, partyrepo.DeleteInput{GuildID: testGuildID, LeaderID: testLeaderID}).
		Return(&partyrepo.DeleteOutput{}, nil)

	out, err := s.orchestrator.LeaveParty(s.ctx, &party.LeavePartyInput{
		GuildID: testGuildID,
		UserID:  testLeaderID,
	})

	s.Require().NoError(err)
	s.Nil(out.Party)
	s.Empty(out.NewLeaderID)
}

func (s *OrchestratorTestSuite) TestLeaveParty_NotInParty() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no party"))

	_, err := s.orchestrator.LeaveParty(s.ctx, &party.LeavePartyInput{
		GuildID: testGuildID,
		UserID:  testLeaderID,
	})

	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDisbandParty_Success() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, partyrepo.GetByMemberInput{GuildID: testGuildID, UserID: testLeaderID}).
		Return(&partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil)
	s.mockPartyRepo.EXPECT().
		Delete(s.ctx, partyrepo.DeleteInput{GuildID: testGuildID, LeaderID: testLeaderID}).
		Return(&partyrepo.DeleteOutput{}, nil)
	s.mockNotifier.EXPECT().
		PartyDisbanded(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *party.PartyDisbandedInput) error {
			s.ElementsMatch([]string{testLeaderID, testMemberID}, input.MemberIDs)
			return nil
		})

	out, err := s.orchestrator.DisbandParty(s.ctx, &party.DisbandPartyInput{
		GuildID: testGuildID,
		UserID:  testLeaderID,
	})

	s.Require().NoError(err)
	s.NotEmpty(out.Message)
}

func (s *OrchestratorTestSuite) TestDisbandParty_NotLeader() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, partyrepo.GetByMemberInput{GuildID: testGuildID, UserID: testMemberID}).
		Return(&partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil)

	_, err := s.orchestrator.DisbandParty(s.ctx, &party.DisbandPartyInput{
		GuildID: testGuildID,
		UserID:  testMemberID,
	})

	s.Error(err)
	s.True(errors.IsPermissionDenied(err))
	// No Delete or notification expected; stored state is untouched.
}

func (s *OrchestratorTestSuite) TestDisbandParty_NotificationFailureIsNotFatal() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		Return(&partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil)
	s.mockPartyRepo.EXPECT().
		Delete(s.ctx, gomock.Any()).
		Return(&partyrepo.DeleteOutput{}, nil)
	s.mockNotifier.EXPECT().
		PartyDisbanded(s.ctx, gomock.Any()).
		Return(errors.Unavailable("messaging down"))

	_, err := s.orchestrator.DisbandParty(s.ctx, &party.DisbandPartyInput{
		GuildID: testGuildID,
		UserID:  testLeaderID,
	})

	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestGetParty_TravelSummary() {
	s.mockPartyRepo.EXPECT().
		GetByMember(s.ctx, gomock.Any()).
		Return(&partyrepo.GetByMemberOutput{Party: s.twoMemberParty()}, nil)

	out, err := s.orchestrator.GetParty(s.ctx, &party.GetPartyInput{
		GuildID: testGuildID,
		UserID:  testMemberID,
	})

	s.Require().NoError(err)
	s.InDelta(2.0, out.AverageLevel, 0.001)
	s.Equal(testMemberID, out.SlowestMemberID)
	s.Equal(25, out.TravelSpeed)
}

func (s *OrchestratorTestSuite) TestValidation() {
	_, err := s.orchestrator.CreateParty(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.CreateParty(s.ctx, &party.CreatePartyInput{GuildID: testGuildID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.InviteMember(s.ctx, &party.InviteMemberInput{
		GuildID:   testGuildID,
		InviterID: testLeaderID,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.AcceptInvite(s.ctx, &party.AcceptInviteInput{
		GuildID: testGuildID,
		UserID:  testTargetID,
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNew_RequiresRepos(t *testing.T) {
	_, err := party.New(&party.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
