package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/medicore/clinic-system/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// ProfileCache stores user records as JSON with a TTL. It is best-effort:
// a Redis failure degrades to a repository read, never to a request error.
// The password hash is excluded from the cached document.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewProfileCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ProfileCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ProfileCache{client: client, ttl: ttl, log: log}
}

func (c *ProfileCache) Get(ctx context.Context, userID string) (*domain.User, bool) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("user_id", userID).Msg("profile cache read failed")
		}
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		c.log.Warn().Err(err).Str("user_id", userID).Msg("profile cache entry unreadable")
		return nil, false
	}
	return &user, true
}

func (c *ProfileCache) Set(ctx context.Context, user *domain.User) {
	// json.Marshal drops PasswordHash via its `json:"-"` tag.
	raw, err := json.Marshal(user)
	if err != nil {
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("profile cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(user.ID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("profile cache write failed")
	}
}

func (c *ProfileCache) key(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}
