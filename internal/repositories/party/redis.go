package party

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
	"github.com/ChibiOne/RPGenerator-sub001/internal/errors"
	redisclient "github.com/ChibiOne/RPGenerator-sub001/internal/redis"
)

const (
	partyKeyPrefix       = "party:"
	memberIndexKeyPrefix = "party:member:"
	scanCount            = 100

	// Current wire schema. Bump when the persisted party shape changes;
	// decode rejects unknown versions instead of guessing.
	currentSchemaVersion = 1

	// Error messages
	errPartyNil       = "party cannot be nil"
	errGuildIDEmpty   = "guild ID cannot be empty"
	errLeaderIDEmpty  = "leader ID cannot be empty"
	errUserIDEmpty    = "user ID cannot be empty"
	errLeaderNotInMem = "party leader must be a member"
)

// partyRecord is the versioned envelope written to the store.
type partyRecord struct {
	SchemaVersion int             `json:"schema_version"`
	Party         *entities.Party `json:"party"`
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed party repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func partyKey(guildID, leaderID string) string {
	return partyKeyPrefix + guildID + ":" + leaderID
}

func memberIndexKey(guildID, userID string) string {
	return memberIndexKeyPrefix + guildID + ":" + userID
}

func encodeParty(p *entities.Party) ([]byte, error) {
	data, err := json.Marshal(partyRecord{SchemaVersion: currentSchemaVersion, Party: p})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal party record")
	}
	return data, nil
}

func decodeParty(data []byte) (*entities.Party, error) {
	var rec partyRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode party record")
	}
	if rec.SchemaVersion != currentSchemaVersion || rec.Party == nil {
		return nil, errors.DataLossf("unsupported party record schema version %d", rec.SchemaVersion)
	}
	return rec.Party, nil
}

func validateParty(p *entities.Party) error {
	if p == nil {
		return errors.InvalidArgument(errPartyNil)
	}
	if p.GuildID == "" {
		return errors.InvalidArgument(errGuildIDEmpty)
	}
	if p.LeaderID == "" {
		return errors.InvalidArgument(errLeaderIDEmpty)
	}
	if !p.IsMember(p.LeaderID) {
		return errors.InvalidArgument(errLeaderNotInMem)
	}
	return nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateParty(input.Party); err != nil {
		return nil, err
	}

	input.Party.Version = 1
	data, err := encodeParty(input.Party)
	if err != nil {
		return nil, err
	}

	key := partyKey(input.Party.GuildID, input.Party.LeaderID)
	set, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create party")
	}
	if !set {
		return nil, errors.AlreadyExistsf("a party led by %s already exists in guild %s",
			input.Party.LeaderID, input.Party.GuildID)
	}

	// Member index entries ride behind the primary record; GetByMember
	// heals any gap left by a crash between the two writes.
	pipe := r.client.TxPipeline()
	for userID := range input.Party.Members {
		pipe.Set(ctx, memberIndexKey(input.Party.GuildID, userID), input.Party.LeaderID, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to index party members")
	}

	return &CreateOutput{Party: input.Party}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.LeaderID == "" {
		return nil, errors.InvalidArgument(errLeaderIDEmpty)
	}

	key := partyKey(input.GuildID, input.LeaderID)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no party led by %s in guild %s", input.LeaderID, input.GuildID)
		}
		return nil, errors.Wrapf(err, "failed to get party")
	}

	party, err := decodeParty([]byte(result))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Party: party}, nil
}

func (r *redisRepository) GetByMember(ctx context.Context, input GetByMemberInput) (*GetByMemberOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	idxKey := memberIndexKey(input.GuildID, input.UserID)
	leaderID, err := r.client.Get(ctx, idxKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get party member index")
	}

	if err == nil {
		out, getErr := r.Get(ctx, GetInput{GuildID: input.GuildID, LeaderID: leaderID})
		switch {
		case getErr == nil && out.Party.IsMember(input.UserID):
			return &GetByMemberOutput{Party: out.Party}, nil
		case getErr == nil || errors.IsNotFound(getErr):
			// Stale index entry; drop it and fall back to the scan
			r.client.Del(ctx, idxKey)
		default:
			return nil, getErr
		}
	}

	// Records written before the index existed (or whose index was lost)
	// are found by enumerating the guild's party keys. O(parties-in-guild),
	// acceptable because guild party counts are small.
	party, err := r.scanForMember(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, errors.NotFoundf("user %s is not in a party in guild %s", input.UserID, input.GuildID)
	}

	// Heal the index so the next lookup skips the scan
	r.client.Set(ctx, idxKey, party.LeaderID, 0)

	return &GetByMemberOutput{Party: party}, nil
}

func (r *redisRepository) scanForMember(ctx context.Context, guildID, userID string) (*entities.Party, error) {
	pattern := partyKeyPrefix + guildID + ":*"
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan party keys")
		}

		for _, key := range keys {
			result, err := r.client.Get(ctx, key).Result()
			if err == redis.Nil {
				continue // deleted mid-scan
			}
			if err != nil {
				return nil, errors.Wrapf(err, "failed to get party during scan")
			}

			party, decodeErr := decodeParty([]byte(result))
			if decodeErr != nil {
				// An undecodable record must not hide the rest of the guild
				continue
			}
			if party.IsMember(userID) {
				return party, nil
			}
		}

		if next == 0 {
			return nil, nil
		}
		cursor = next
	}
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateParty(input.Party); err != nil {
		return nil, err
	}

	prevLeaderID := input.PreviousLeaderID
	if prevLeaderID == "" {
		prevLeaderID = input.Party.LeaderID
	}

	watchKey := partyKey(input.Party.GuildID, prevLeaderID)
	newKey := partyKey(input.Party.GuildID, input.Party.LeaderID)
	loadedVersion := input.Party.Version

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		result, err := tx.Get(ctx, watchKey).Result()
		if err == redis.Nil {
			return errors.NotFoundf("no party led by %s in guild %s", prevLeaderID, input.Party.GuildID)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read party record")
		}

		stored, decodeErr := decodeParty([]byte(result))
		if decodeErr != nil {
			return decodeErr
		}
		if stored.Version != loadedVersion {
			return errors.Abortedf("party record changed concurrently: stored version %d, loaded version %d",
				stored.Version, loadedVersion)
		}

		input.Party.Version = loadedVersion + 1
		data, err := encodeParty(input.Party)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if newKey != watchKey {
				pipe.Del(ctx, watchKey)
			}
			pipe.Set(ctx, newKey, data, 0)
			for userID := range input.Party.Members {
				pipe.Set(ctx, memberIndexKey(input.Party.GuildID, userID), input.Party.LeaderID, 0)
			}
			for userID := range stored.Members {
				if !input.Party.IsMember(userID) {
					pipe.Del(ctx, memberIndexKey(input.Party.GuildID, userID))
				}
			}
			return nil
		})
		return err
	}, watchKey)

	if err != nil {
		input.Party.Version = loadedVersion
		if err == redis.TxFailedErr {
			return nil, errors.Aborted("party record changed concurrently")
		}
		var customErr *errors.Error
		if errors.As(err, &customErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to save party")
	}

	return &SaveOutput{Party: input.Party}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.LeaderID == "" {
		return nil, errors.InvalidArgument(errLeaderIDEmpty)
	}

	key := partyKey(input.GuildID, input.LeaderID)
	result, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &DeleteOutput{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get party for deletion")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if party, decodeErr := decodeParty([]byte(result)); decodeErr == nil {
		for userID := range party.Members {
			pipe.Del(ctx, memberIndexKey(input.GuildID, userID))
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete party")
	}

	return &DeleteOutput{}, nil
}
