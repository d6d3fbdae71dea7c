package character

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/ChibiOne/RPGenerator-sub001/internal/entities"
	"github.com/ChibiOne/RPGenerator-sub001/internal/errors"
	redisclient "github.com/ChibiOne/RPGenerator-sub001/internal/redis"
)

const (
	characterKeyPrefix = "character:"

	currentSchemaVersion = 1

	// Error messages
	errCharacterNil = "character cannot be nil"
	errGuildIDEmpty = "guild ID cannot be empty"
	errUserIDEmpty  = "user ID cannot be empty"
)

// characterRecord is the versioned envelope written to the store.
type characterRecord struct {
	SchemaVersion int                 `json:"schema_version"`
	Character     *entities.Character `json:"character"`
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func characterKey(guildID, userID string) string {
	return characterKeyPrefix + guildID + ":" + userID
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.Character.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	data, err := json.Marshal(characterRecord{
		SchemaVersion: currentSchemaVersion,
		Character:     input.Character,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character record")
	}

	key := characterKey(input.Character.GuildID, input.Character.UserID)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}

	return &SaveOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := characterKey(input.GuildID, input.UserID)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no character for user %s in guild %s", input.UserID, input.GuildID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var rec characterRecord
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode character record")
	}
	if rec.SchemaVersion != currentSchemaVersion || rec.Character == nil {
		return nil, errors.DataLossf("unsupported character record schema version %d", rec.SchemaVersion)
	}

	return &GetOutput{Character: rec.Character}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := characterKey(input.GuildID, input.UserID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}
