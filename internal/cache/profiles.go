// Package cache provides a Redis read-through cache for user profiles.
// Role checks run on every request, so profile reads dominate database
// traffic; a short TTL plus explicit invalidation on role changes keeps
// them off the hot path. A Redis outage degrades to direct reads.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"esrs-platform/internal/config"
	"esrs-platform/internal/models"
)

// ErrProfileNotFound is returned when the user behind a valid token no
// longer exists.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileLoader loads a profile from the primary store
type ProfileLoader interface {
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
}

// ProfileCache is a read-through cache in front of the profile
// repository.
type ProfileCache struct {
	client *redis.Client
	loader ProfileLoader
	ttl    time.Duration
}

// NewProfileCache creates the cache. A nil client (Redis disabled or
// unreachable at startup) is allowed; every read then goes straight to
// the loader.
func NewProfileCache(client *redis.Client, loader ProfileLoader, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, loader: loader, ttl: ttl}
}

// NewRedisClient connects to Redis per configuration. Returns nil when
// the cache is disabled or the server is unreachable; the platform
// stays up without it.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("Redis unavailable, profile cache disabled", "error", err)
		return nil
	}

	return client
}

func profileKey(userID uint) string {
	return fmt.Sprintf("profile:%d", userID)
}

// GetProfile returns the cached profile or loads and caches it. Cache
// errors are logged and ignored; the database answer wins.
func (c *ProfileCache) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	if c.client != nil {
		data, err := c.client.Get(ctx, profileKey(userID)).Bytes()
		if err == nil {
			var profile models.Profile
			if err := json.Unmarshal(data, &profile); err == nil {
				return &profile, nil
			}
		} else if err != redis.Nil {
			slog.Warn("Profile cache read failed", "user_id", userID, "error", err)
		}
	}

	profile, err := c.loader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	if c.client != nil {
		if data, err := json.Marshal(profile); err == nil {
			if err := c.client.Set(ctx, profileKey(userID), data, c.ttl).Err(); err != nil {
				slog.Warn("Profile cache write failed", "user_id", userID, "error", err)
			}
		}
	}

	return profile, nil
}

// Invalidate drops the cached profile. Called after role updates and
// membership changes so stale roles never outlive the mutation.
func (c *ProfileCache) Invalidate(ctx context.Context, userID uint) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, profileKey(userID)).Err(); err != nil {
		slog.Warn("Profile cache invalidation failed", "user_id", userID, "error", err)
	}
}

// Close closes the underlying Redis connection if one exists
func (c *ProfileCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
