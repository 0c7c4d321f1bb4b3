package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/config"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/internal/logger"
	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
	"github.com/redis/go-redis/v9"
)

const userCacheKeyPrefix = "legal:user:"

// UserCache keeps resolved directory entries close to the service layer.
type UserCache interface {
	Get(ctx context.Context, ids []int64) (map[int64]models.User, error)
	Set(ctx context.Context, users []models.User) error
}

type redisUserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisUserCache connects to Redis and verifies the connection.
func NewRedisUserCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (UserCache, *redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisUserCache").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, nil, err
	}
	log.Info().Str("func", "NewRedisUserCache").Msg("connected to redis successfully")

	return &redisUserCache{client: client, ttl: cfg.UserTTL}, client, nil
}

func userCacheKey(id int64) string {
	return userCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *redisUserCache) Get(ctx context.Context, ids []int64) (map[int64]models.User, error) {
	found := make(map[int64]models.User, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userCacheKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return found, err
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			continue
		}
		found[u.ID] = u
	}

	return found, nil
}

func (c *redisUserCache) Set(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()
	for _, u := range users {
		payload, err := json.Marshal(u)
		if err != nil {
			return err
		}
		pipe.Set(ctx, userCacheKey(u.ID), payload, c.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// cachedUserRepository serves directory lookups from a [UserCache] and
// falls back to the wrapped repository for misses. Cache failures are
// logged and otherwise ignored.
type cachedUserRepository struct {
	UserRepository
	cache UserCache
}

// NewCachedUserRepository decorates repo with cache.
func NewCachedUserRepository(repo UserRepository, cache UserCache) UserRepository {
	return &cachedUserRepository{UserRepository: repo, cache: cache}
}

func (r *cachedUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	users, err := r.FindUsersByIDs(ctx, []int64{id})
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrNotFound
	}
	return users[0], nil
}

func (r *cachedUserRepository) FindUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	hits, err := r.cache.Get(ctx, ids)
	if err != nil {
		log.Warn().Err(err).Str("func", "cachedUserRepository.FindUsersByIDs").Msg("user cache read failed")
	}
	if hits == nil {
		hits = make(map[int64]models.User, len(ids))
	}

	misses := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := hits[id]; !ok {
			misses = append(misses, id)
		}
	}

	if len(misses) > 0 {
		loaded, err := r.UserRepository.FindUsersByIDs(ctx, misses)
		if err != nil {
			return nil, err
		}
		if err := r.cache.Set(ctx, loaded); err != nil {
			log.Warn().Err(err).Str("func", "cachedUserRepository.FindUsersByIDs").Msg("user cache write failed")
		}
		for _, u := range loaded {
			hits[u.ID] = u
		}
	}

	users := make([]models.User, 0, len(hits))
	for _, id := range ids {
		if u, ok := hits[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}
