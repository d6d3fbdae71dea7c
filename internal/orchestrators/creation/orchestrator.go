// Package creation orchestrates the character-creation wizard: transient
// per-user sessions collecting fields and point-buy ability scores, finalized
// into a durable character record.
package creation

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
	"github.com/ChibiOne/RPGenerator-sub001/internal/errors"
	"github.com/ChibiOne/RPGenerator-sub001/internal/pkg/clock"
	"github.com/ChibiOne/RPGenerator-sub001/internal/pkg/idgen"
	characterrepo "github.com/ChibiOne/RPGenerator-sub001/internal/repositories/character"
)

// DefaultSessionTTL is how long an untouched session survives before it is
// treated as abandoned.
const DefaultSessionTTL = time.Hour

// Config holds the dependencies for the creation orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Clock         clock.Clock
	IDGenerator   idgen.Generator

	// SessionTTL overrides DefaultSessionTTL when positive
	SessionTTL time.Duration
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("characterRepo")
	}

	return vb.Build()
}

// Orchestrator implements the creation Service. Sessions live in process
// memory only; a restart abandons every session in progress, which is safe
// because nothing durable is written before finalization.
type Orchestrator struct {
	characterRepo characterrepo.Repository
	clock         clock.Clock
	idGen         idgen.Generator
	sessionTTL    time.Duration

	// mu is a plain mutex because even read paths may evict an expired
	// session.
	mu       sync.Mutex
	sessions map[string]*entities.CharacterSession
}

// New creates a new creation orchestrator
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
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("char")
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		clock:         clk,
		idGen:         idGen,
		sessionTTL:    ttl,
		sessions:      make(map[string]*entities.CharacterSession),
	}, nil
}

// Ensure Orchestrator implements Service
var _ Service = (*Orchestrator)(nil)

func sessionKey(guildID, userID string) string {
	return guildID + ":" + userID
}

// StartSession begins a fresh wizard pass. Any session already in progress
// for the user is discarded, matching a player restarting the wizard.
func (o *Orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	session := entities.NewCharacterSession(input.UserID, input.GuildID,
		now.Unix(), now.Add(o.sessionTTL).Unix())

	key := sessionKey(input.GuildID, input.UserID)

	o.mu.Lock()
	_, replaced := o.sessions[key]
	o.sessions[key] = session
	o.mu.Unlock()

	slog.InfoContext(ctx, "creation session started",
		"guild_id", input.GuildID,
		"user_id", input.UserID,
		"replaced", replaced,
	)

	return &StartSessionOutput{Session: session, Replaced: replaced}, nil
}

// GetSession returns the user's in-progress session.
func (o *Orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	session, err := o.liveSession(input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: session}, nil
}

// SetField records a collected string field and refreshes the session's
// expiry.
func (o *Orchestrator) SetField(ctx context.Context, input *SetFieldInput) (*SetFieldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Value) == "" {
		return nil, errors.InvalidArgumentf("%s cannot be blank", input.Field)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	session, err := o.liveSessionLocked(input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !session.SetField(input.Field, input.Value) {
		return nil, errors.InvalidArgumentf("unknown field %q", input.Field)
	}
	o.touchLocked(session)

	return &SetFieldOutput{Session: session}, nil
}

// SetAbilityScore assigns one ability score under point-buy rules. Scores
// outside 8..15 are rejected outright; an assignment that would blow the
// budget leaves the session unchanged.
func (o *Orchestrator) SetAbilityScore(ctx context.Context, input *SetAbilityScoreInput) (*SetAbilityScoreOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}
	if !isKnownAbility(input.Ability) {
		return nil, errors.InvalidArgumentf("unknown ability %q", input.Ability)
	}
	if _, ok := entities.ScoreCost(input.Score); !ok {
		return nil, errors.OutOfRangef("ability scores must be between %d and %d",
			entities.MinAbilityScore, entities.MaxAbilityScore)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	session, err := o.liveSessionLocked(input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !session.SetStat(input.Ability, input.Score) {
		return nil, errors.FailedPreconditionf("not enough points: %d of %d spent",
			session.PointsSpent, entities.PointBuyBudget)
	}
	o.touchLocked(session)

	return &SetAbilityScoreOutput{
		Session:         session,
		PointsRemaining: entities.PointBuyBudget - session.PointsSpent,
	}, nil
}

// AdvanceStep moves the session to the next wizard step, clamped at the
// final step.
func (o *Orchestrator) AdvanceStep(ctx context.Context, input *AdvanceStepInput) (*AdvanceStepOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	session, err := o.liveSessionLocked(input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	step := session.Advance()
	o.touchLocked(session)

	return &AdvanceStepOutput{Session: session, Step: step}, nil
}

// FinalizeSession validates the completed wizard and persists the character.
// The session is evicted only after the character is durably stored, so a
// storage failure leaves the player free to retry.
func (o *Orchestrator) FinalizeSession(ctx context.Context, input *FinalizeSessionInput) (*FinalizeSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	session, err := o.liveSessionLocked(input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	if missing := session.MissingFields(); len(missing) > 0 {
		return nil, errors.FailedPreconditionf("creation is incomplete, still needed: %s",
			strings.Join(missing, ", ")).
			WithMeta("missing_fields", missing)
	}
	if session.PointsSpent != entities.PointBuyBudget {
		return nil, errors.FailedPreconditionf("all %d ability points must be spent, %d spent so far",
			entities.PointBuyBudget, session.PointsSpent)
	}

	character := o.buildCharacter(session)
	if _, err := o.characterRepo.Save(ctx, characterrepo.SaveInput{Character: character}); err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}

	delete(o.sessions, sessionKey(input.GuildID, input.UserID))

	slog.InfoContext(ctx, "character finalized",
		"guild_id", input.GuildID,
		"user_id", input.UserID,
		"character_id", character.ID,
		"class", character.Class,
	)

	return &FinalizeSessionOutput{Character: character}, nil
}

// AbandonSession discards the session without persisting anything.
func (o *Orchestrator) AbandonSession(ctx context.Context, input *AbandonSessionInput) (*AbandonSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateIdentity(input.GuildID, input.UserID); err != nil {
		return nil, err
	}

	key := sessionKey(input.GuildID, input.UserID)

	o.mu.Lock()
	_, existed := o.sessions[key]
	delete(o.sessions, key)
	o.mu.Unlock()

	return &AbandonSessionOutput{Existed: existed}, nil
}

// buildCharacter assembles the durable record from a completed session.
func (o *Orchestrator) buildCharacter(session *entities.CharacterSession) *entities.Character {
	now := o.clock.Now().Unix()

	stats := make(map[string]int, len(session.Stats))
	for ability, score := range session.Stats {
		stats[ability] = score
	}

	character := &entities.Character{
		ID:            o.idGen.Generate(),
		UserID:        session.UserID,
		GuildID:       session.GuildID,
		Name:          session.Name,
		Gender:        session.Gender,
		Pronouns:      session.Pronouns,
		Species:       session.Species,
		Class:         session.Class,
		Description:   session.Description,
		Level:         entities.DefaultLevel,
		MovementSpeed: entities.DefaultMovementSpeed,
		Stats:         stats,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	hp := entities.BaseHitPoints + character.AbilityModifier(entities.AbilityConstitution)
	character.MaxHP = hp
	character.CurrentHP = hp

	return character
}

// liveSession returns the user's session, evicting it first if it has
// expired.
func (o *Orchestrator) liveSession(guildID, userID string) (*entities.CharacterSession, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.liveSessionLocked(guildID, userID)
}

// liveSessionLocked is liveSession for callers already holding the lock.
// Expiry is checked lazily on access rather than by a background sweeper.
func (o *Orchestrator) liveSessionLocked(guildID, userID string) (*entities.CharacterSession, error) {
	key := sessionKey(guildID, userID)
	session, ok := o.sessions[key]
	if !ok {
		return nil, errors.NotFound("no character creation in progress")
	}
	if o.clock.Now().Unix() >= session.ExpiresAt {
		delete(o.sessions, key)
		return nil, errors.NotFound("your character creation session expired")
	}
	return session, nil
}

// touchLocked refreshes UpdatedAt and pushes the expiry out by the TTL.
func (o *Orchestrator) touchLocked(session *entities.CharacterSession) {
	now := o.clock.Now()
	session.UpdatedAt = now.Unix()
	session.ExpiresAt = now.Add(o.sessionTTL).Unix()
}

func isKnownAbility(ability string) bool {
	for _, name := range entities.AbilityNames {
		if name == ability {
			return true
		}
	}
	return false
}

func validateIdentity(guildID, userID string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("guildID", guildID, vb)
	errors.ValidateRequired("userID", userID, vb)
	return vb.Build()
}
