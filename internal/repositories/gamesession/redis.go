package gamesession

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-companion/internal/errors"
	redisclient "github.com/KirkDiggler/dnd-companion/internal/redis"
)

const (
	sessionKeyPrefix = "session:"

	errChannelIDEmpty = "channel ID cannot be empty"
	errSessionNil     = "session cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed game session repository.
// Sessions are stored as JSON under session:<channelID> with no TTL; a game
// lives until it is explicitly ended.
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}

	key := sessionKeyPrefix + input.ChannelID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no game session for channel %s", input.ChannelID)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var session dnd5e.GameSession
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}
	if session.Characters == nil {
		session.Characters = make(map[string]*dnd5e.Character)
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := sessionKeyPrefix + input.Session.ChannelID
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save session")
	}

	return &SaveOutput{}, nil
}
