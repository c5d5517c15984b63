package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"learnit-service/internal/domain/entities"
)

const profileKeyPrefix = "profile:"

// RedisService caches account profiles. A service without a client is
// disabled: every read misses and every write is a no-op.
type RedisService struct {
	client *redis.Client
}

// NewRedisService connects to redisURL. An empty url, a bad url or a
// failed ping all yield a disabled cache.
func NewRedisService(ctx context.Context, redisURL string, log logrus.FieldLogger) *RedisService {
	if redisURL == "" {
		log.Info("redis url not set, profile cache disabled")
		return &RedisService{}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.WithError(err).Warn("invalid redis url, profile cache disabled")
		return &RedisService{}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis unreachable, profile cache disabled")
		_ = client.Close()
		return &RedisService{}
	}

	log.WithField("addr", opt.Addr).Info("connected to redis")
	return NewRedisServiceWithClient(client)
}

func NewRedisServiceWithClient(client *redis.Client) *RedisService {
	return &RedisService{client: client}
}

// profile is the cached shape; it never carries the password hash.
type profile struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *RedisService) SetProfile(ctx context.Context, user *entities.User, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	data, err := json.Marshal(profile{
		Id:        user.Id,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, profileKeyPrefix+user.Id, data, ttl).Err()
}

// GetProfile returns (nil, nil) on a miss.
func (r *RedisService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	if r.client == nil {
		return nil, nil
	}
	data, err := r.client.Get(ctx, profileKeyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var p profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &entities.User{
		Id:        p.Id,
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func (r *RedisService) Enabled() bool {
	return r.client != nil
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
